package service

import (
	"encoding/json"
	"testing"

	"github.com/flightlog-collective/skylog/internal/interfaces/config"
	"github.com/flightlog-collective/skylog/internal/interfaces/operation"
	. "github.com/flightlog-collective/skylog/internal/interfaces/service"
)

type fakeSyncUserOperation struct {
	operation.UserOperationInterface
	users   map[string]*operation.User
	deleted []string
}

func (f *fakeSyncUserOperation) GetUserByProviderId(providerId string) (*operation.User, error) {
	if user, ok := f.users[providerId]; ok {
		return user, nil
	}
	return nil, operation.ErrUserNotFound
}

func (f *fakeSyncUserOperation) AddUser(user *operation.User) error {
	if _, ok := f.users[user.ProviderId]; ok {
		return operation.ErrUserDuplicate
	}
	user.ID = "uid-" + user.ProviderId
	f.users[user.ProviderId] = user
	return nil
}

func (f *fakeSyncUserOperation) UpdateUserInfo(user *operation.User, info map[string]interface{}) error {
	if email, ok := info["email"].(string); ok {
		user.Email = email
	}
	if role, ok := info["role"].(operation.Role); ok {
		user.Role = role
	}
	return nil
}

func (f *fakeSyncUserOperation) DeleteUserByProviderId(providerId string) error {
	delete(f.users, providerId)
	f.deleted = append(f.deleted, providerId)
	return nil
}

type fakeAuditService struct {
	events []operation.EventType
}

func (f *fakeAuditService) Record(eventType operation.EventType, _ string, _ string, _ string, _ string, _ string, _ any, _ any) {
	f.events = append(f.events, eventType)
}

func (f *fakeAuditService) GetAuditLogPage(_ *RequestGetAuditLog) *ApiResponse[ResponseGetAuditLog] {
	return nil
}

func newSyncService(users map[string]*operation.User) (*IdentitySyncService, *fakeSyncUserOperation, *fakeAuditService) {
	userOperation := &fakeSyncUserOperation{users: users}
	audit := &fakeAuditService{}
	provisioner := &Provisioner{
		logger:        testLogger{},
		config:        &config.IdentityConfig{},
		userOperation: nil,
	}
	return NewIdentitySyncService(testLogger{}, userOperation, provisioner, audit), userOperation, audit
}

func webhookUser(id, email, role string) json.RawMessage {
	metadata := "{}"
	if role != "" {
		metadata = `{"role":"` + role + `"}`
	}
	data, _ := json.Marshal(map[string]interface{}{
		"id": id,
		"email_addresses": []map[string]string{
			{"id": "em_1", "email_address": email},
		},
		"primary_email_address_id": "em_1",
		"public_metadata":          json.RawMessage(metadata),
	})
	return data
}

func TestHandleWebhookEventCreates(t *testing.T) {
	syncService, userOperation, _ := newSyncService(map[string]*operation.User{})

	res := syncService.HandleWebhookEvent(&RequestWebhookEvent{
		Type: "user.created",
		Data: webhookUser("user_1", "a@example.com", "PILOT"),
	})
	if res.HttpCode != Ok.Code() {
		t.Fatalf("HandleWebhookEvent() code = %d; expected %d", res.HttpCode, Ok.Code())
	}
	user := userOperation.users["user_1"]
	if user == nil {
		t.Fatal("user_1 not created")
	}
	if user.Email != "a@example.com" || user.Role != operation.RolePilot {
		t.Errorf("created user = %+v; expected a@example.com with PILOT role", user)
	}
}

func TestHandleWebhookEventDuplicateDelivery(t *testing.T) {
	syncService, userOperation, _ := newSyncService(map[string]*operation.User{})

	payload := webhookUser("user_1", "a@example.com", "")
	for i := 0; i < 2; i++ {
		if res := syncService.HandleWebhookEvent(&RequestWebhookEvent{Type: "user.created", Data: payload}); res.HttpCode != Ok.Code() {
			t.Fatalf("HandleWebhookEvent() delivery %d code = %d; expected %d", i+1, res.HttpCode, Ok.Code())
		}
	}
	if len(userOperation.users) != 1 {
		t.Errorf("len(users) = %d after duplicate delivery; expected 1", len(userOperation.users))
	}
}

func TestHandleWebhookEventAdminSticky(t *testing.T) {
	admin := &operation.User{ID: "uid-user_1", ProviderId: "user_1", Email: "a@example.com", Role: operation.RoleAdmin}
	syncService, userOperation, audit := newSyncService(map[string]*operation.User{"user_1": admin})

	res := syncService.HandleWebhookEvent(&RequestWebhookEvent{
		Type: "user.updated",
		Data: webhookUser("user_1", "a@example.com", "USER"),
	})
	if res.HttpCode != Ok.Code() {
		t.Fatalf("HandleWebhookEvent() code = %d; expected %d", res.HttpCode, Ok.Code())
	}
	if userOperation.users["user_1"].Role != operation.RoleAdmin {
		t.Errorf("role = %s after inbound USER payload; expected sticky ADMIN", userOperation.users["user_1"].Role)
	}
	for _, event := range audit.events {
		if event == operation.UserRoleChanged {
			t.Error("role change audited; expected no role change for sticky admin")
		}
	}
}

func TestHandleWebhookEventDelete(t *testing.T) {
	existing := &operation.User{ID: "uid-user_1", ProviderId: "user_1"}
	syncService, userOperation, _ := newSyncService(map[string]*operation.User{"user_1": existing})

	payload, _ := json.Marshal(map[string]string{"id": "user_1"})
	for i := 0; i < 2; i++ {
		if res := syncService.HandleWebhookEvent(&RequestWebhookEvent{Type: "user.deleted", Data: payload}); res.HttpCode != Ok.Code() {
			t.Fatalf("HandleWebhookEvent() delete %d code = %d; expected %d", i+1, res.HttpCode, Ok.Code())
		}
	}
	if len(userOperation.users) != 0 {
		t.Errorf("len(users) = %d after delete; expected 0", len(userOperation.users))
	}
}

func TestHandleWebhookEventBadPayload(t *testing.T) {
	syncService, _, _ := newSyncService(map[string]*operation.User{})

	res := syncService.HandleWebhookEvent(&RequestWebhookEvent{Type: "user.created", Data: json.RawMessage(`{"id":""}`)})
	if res.HttpCode != BadRequest.Code() {
		t.Errorf("HandleWebhookEvent() code = %d; expected %d for empty id", res.HttpCode, BadRequest.Code())
	}
}

func TestHandleWebhookEventUnknownType(t *testing.T) {
	syncService, _, _ := newSyncService(map[string]*operation.User{})

	res := syncService.HandleWebhookEvent(&RequestWebhookEvent{Type: "session.created", Data: json.RawMessage(`{}`)})
	if res.HttpCode != Ok.Code() {
		t.Errorf("HandleWebhookEvent() code = %d; expected %d for ignored type", res.HttpCode, Ok.Code())
	}
}
