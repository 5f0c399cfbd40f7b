package service

import (
	"context"
	"testing"

	"github.com/flightlog-collective/skylog/internal/interfaces/config"
	"github.com/flightlog-collective/skylog/internal/interfaces/global"
	"github.com/flightlog-collective/skylog/internal/interfaces/operation"
)

type testLogger struct{}

func (testLogger) Init(_ bool) {}
func (testLogger) ShutdownCallback() global.Callable { return nil }
func (testLogger) Debug(_ string, _ ...interface{}) {}
func (testLogger) DebugF(_ string, _ ...interface{}) {}
func (testLogger) Info(_ string, _ ...interface{}) {}
func (testLogger) InfoF(_ string, _ ...interface{}) {}
func (testLogger) Warn(_ string, _ ...interface{}) {}
func (testLogger) WarnF(_ string, _ ...interface{}) {}
func (testLogger) Error(_ string, _ ...interface{}) {}
func (testLogger) ErrorF(_ string, _ ...interface{}) {}
func (testLogger) Fatal(_ string, _ ...interface{}) {}
func (testLogger) FatalF(_ string, _ ...interface{}) {}

// fakeUserOperation 只实现测试用到的方法, 其余方法panic
type fakeUserOperation struct {
	operation.UserOperationInterface
	getByProviderId func(providerId string) (*operation.User, error)
	addUser         func(user *operation.User) error
}

func (f *fakeUserOperation) GetUserByProviderId(providerId string) (*operation.User, error) {
	return f.getByProviderId(providerId)
}

func (f *fakeUserOperation) AddUser(user *operation.User) error {
	return f.addUser(user)
}

type fakePreferencesOperation struct {
	operation.PreferencesOperationInterface
	saved []*operation.Preferences
}

func (f *fakePreferencesOperation) SavePreferences(preferences *operation.Preferences) error {
	f.saved = append(f.saved, preferences)
	return nil
}

func TestReconcileRole(t *testing.T) {
	tests := []struct {
		name     string
		local    operation.Role
		inbound  operation.Role
		expected operation.Role
	}{
		{"admin sticky against user", operation.RoleAdmin, operation.RoleUser, operation.RoleAdmin},
		{"admin sticky against pilot", operation.RoleAdmin, operation.RolePilot, operation.RoleAdmin},
		{"admin sticky against invalid", operation.RoleAdmin, operation.Role("nonsense"), operation.RoleAdmin},
		{"user upgraded to pilot", operation.RoleUser, operation.RolePilot, operation.RolePilot},
		{"user upgraded to admin", operation.RoleUser, operation.RoleAdmin, operation.RoleAdmin},
		{"pilot downgraded to user", operation.RolePilot, operation.RoleUser, operation.RoleUser},
		{"invalid inbound keeps local", operation.RolePilot, operation.Role(""), operation.RolePilot},
	}

	passedCount, failedCount := 0, 0
	for _, test := range tests {
		if result := ReconcileRole(test.local, test.inbound); result != test.expected {
			t.Errorf("%s: ReconcileRole(%s, %s) = %s; expected %s", test.name, test.local, test.inbound, result, test.expected)
			failedCount++
		} else {
			passedCount++
		}
	}
	t.Logf("Total: %d, Passed: %d, Failed: %d", len(tests), passedCount, failedCount)
}

func TestDeriveRole(t *testing.T) {
	provisioner := &Provisioner{
		logger: testLogger{},
		config: &config.IdentityConfig{
			AdminProviderIds: []string{"user_admin"},
			AdminEmails:      []string{"boss@example.com"},
		},
	}

	tests := []struct {
		name         string
		providerId   string
		email        string
		metadataRole string
		expected     operation.Role
	}{
		{"provider id allowlist", "user_admin", "", "", operation.RoleAdmin},
		{"email allowlist", "user_1", "boss@example.com", "", operation.RoleAdmin},
		{"allowlist beats metadata", "user_admin", "", "USER", operation.RoleAdmin},
		{"metadata pilot", "user_1", "a@example.com", "PILOT", operation.RolePilot},
		{"metadata admin", "user_1", "a@example.com", "ADMIN", operation.RoleAdmin},
		{"invalid metadata falls back", "user_1", "a@example.com", "SUPERUSER", operation.RoleUser},
		{"no signal defaults to user", "user_1", "a@example.com", "", operation.RoleUser},
	}

	passedCount, failedCount := 0, 0
	for _, test := range tests {
		if result := provisioner.DeriveRole(test.providerId, test.email, test.metadataRole); result != test.expected {
			t.Errorf("%s: DeriveRole() = %s; expected %s", test.name, result, test.expected)
			failedCount++
		} else {
			passedCount++
		}
	}
	t.Logf("Total: %d, Passed: %d, Failed: %d", len(tests), passedCount, failedCount)
}

func TestEnsureUserExisting(t *testing.T) {
	existing := &operation.User{ID: "uid-1", ProviderId: "user_1"}
	provisioner := &Provisioner{
		logger: testLogger{},
		config: &config.IdentityConfig{},
		userOperation: &fakeUserOperation{
			getByProviderId: func(string) (*operation.User, error) { return existing, nil },
		},
	}

	user, created, err := provisioner.EnsureUser(context.Background(), "user_1", "a@example.com")
	if err != nil {
		t.Fatalf("EnsureUser() error = %v; expected nil", err)
	}
	if created {
		t.Error("EnsureUser() created = true; expected false for existing user")
	}
	if user != existing {
		t.Errorf("EnsureUser() user = %+v; expected the existing record", user)
	}
}

func TestEnsureUserCreates(t *testing.T) {
	var added *operation.User
	preferencesOperation := &fakePreferencesOperation{}
	provisioner := &Provisioner{
		logger: testLogger{},
		config: &config.IdentityConfig{},
		userOperation: &fakeUserOperation{
			getByProviderId: func(string) (*operation.User, error) { return nil, operation.ErrUserNotFound },
			addUser: func(user *operation.User) error {
				user.ID = "uid-new"
				added = user
				return nil
			},
		},
		preferencesOperation: preferencesOperation,
	}

	user, created, err := provisioner.EnsureUser(context.Background(), "user_2", "b@example.com")
	if err != nil {
		t.Fatalf("EnsureUser() error = %v; expected nil", err)
	}
	if !created {
		t.Error("EnsureUser() created = false; expected true for new user")
	}
	if added == nil || user.ProviderId != "user_2" || user.Email != "b@example.com" {
		t.Errorf("EnsureUser() user = %+v; expected new record for user_2", user)
	}
	if user.Role != operation.RoleUser {
		t.Errorf("EnsureUser() role = %s; expected USER", user.Role)
	}
	if len(preferencesOperation.saved) != 1 || preferencesOperation.saved[0].UserId != "uid-new" {
		t.Errorf("default preferences = %+v; expected one record for uid-new", preferencesOperation.saved)
	}
}

func TestEnsureUserDuplicateRace(t *testing.T) {
	winner := &operation.User{ID: "uid-race", ProviderId: "user_3"}
	calls := 0
	provisioner := &Provisioner{
		logger: testLogger{},
		config: &config.IdentityConfig{},
		userOperation: &fakeUserOperation{
			getByProviderId: func(string) (*operation.User, error) {
				calls++
				if calls == 1 {
					return nil, operation.ErrUserNotFound
				}
				return winner, nil
			},
			addUser: func(*operation.User) error { return operation.ErrUserDuplicate },
		},
	}

	user, created, err := provisioner.EnsureUser(context.Background(), "user_3", "")
	if err != nil {
		t.Fatalf("EnsureUser() error = %v; expected nil after duplicate race", err)
	}
	if created {
		t.Error("EnsureUser() created = true; expected false when another request won the race")
	}
	if user != winner {
		t.Errorf("EnsureUser() user = %+v; expected the winner's record", user)
	}
}
