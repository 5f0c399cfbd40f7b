// Package service
package service

import (
	"context"
	"errors"
	"slices"

	"github.com/flightlog-collective/skylog/internal/identity"
	"github.com/flightlog-collective/skylog/internal/interfaces/config"
	"github.com/flightlog-collective/skylog/internal/interfaces/log"
	"github.com/flightlog-collective/skylog/internal/interfaces/operation"
)

// Provisioner 把身份提供商的会话身份解析为本地用户, 不存在时按需创建
type Provisioner struct {
	logger               log.LoggerInterface
	config               *config.IdentityConfig
	userOperation        operation.UserOperationInterface
	preferencesOperation operation.PreferencesOperationInterface
	identityClient       *identity.Client
}

func NewProvisioner(
	logger log.LoggerInterface,
	config *config.IdentityConfig,
	userOperation operation.UserOperationInterface,
	preferencesOperation operation.PreferencesOperationInterface,
	identityClient *identity.Client,
) *Provisioner {
	return &Provisioner{
		logger:               logger,
		config:               config,
		userOperation:        userOperation,
		preferencesOperation: preferencesOperation,
		identityClient:       identityClient,
	}
}

// DeriveRole 根据白名单和提供商元数据推导角色
// 白名单优先于元数据, 两者都没有时默认USER
func (p *Provisioner) DeriveRole(providerId, email string, metadataRole string) operation.Role {
	if slices.Contains(p.config.AdminProviderIds, providerId) {
		return operation.RoleAdmin
	}
	if email != "" && slices.Contains(p.config.AdminEmails, email) {
		return operation.RoleAdmin
	}
	if role := operation.Role(metadataRole); role.Valid() {
		return role
	}
	return operation.RoleUser
}

// ReconcileRole 入站角色协调: 本地ADMIN具有粘性, 永不被入站数据降级
func ReconcileRole(local operation.Role, inbound operation.Role) operation.Role {
	if local == operation.RoleAdmin {
		return operation.RoleAdmin
	}
	if inbound.Valid() {
		return inbound
	}
	return local
}

// BackfillProfile 补齐本地缺失的档案字段, 失败不阻断同步
func (p *Provisioner) BackfillProfile(ctx context.Context, user *operation.User) {
	if p.identityClient == nil || !p.identityClient.Enabled() {
		return
	}
	if user.Email != "" && user.FirstName != nil && user.LastName != nil {
		return
	}
	providerUser, err := p.identityClient.GetUser(ctx, user.ProviderId)
	if err != nil {
		p.logger.WarnF("Failed to fetch provider user %s: %v", user.ProviderId, err)
		return
	}
	info := make(map[string]interface{})
	if user.Email == "" {
		if email := providerUser.PrimaryEmail(); email != "" {
			info["email"] = email
		}
	}
	if user.FirstName == nil && providerUser.FirstName != nil {
		info["first_name"] = *providerUser.FirstName
	}
	if user.LastName == nil && providerUser.LastName != nil {
		info["last_name"] = *providerUser.LastName
	}
	if len(info) == 0 {
		return
	}
	if err := p.userOperation.UpdateUserInfo(user, info); err != nil {
		p.logger.WarnF("Failed to backfill profile for user %s: %v", user.ID, err)
	}
}

// EnsureUser 解析会话身份到本地用户, 不存在时从身份提供商取数据创建
// 返回值created表示本次调用创建了用户
func (p *Provisioner) EnsureUser(ctx context.Context, providerId, email string) (user *operation.User, created bool, err error) {
	user, err = p.userOperation.GetUserByProviderId(providerId)
	if err == nil {
		return user, false, nil
	}
	if !errors.Is(err, operation.ErrUserNotFound) {
		return nil, false, err
	}

	var firstName, lastName *string
	metadataRole := ""
	if p.identityClient != nil && p.identityClient.Enabled() {
		if providerUser, fetchErr := p.identityClient.GetUser(ctx, providerId); fetchErr == nil {
			firstName = providerUser.FirstName
			lastName = providerUser.LastName
			if email == "" {
				email = providerUser.PrimaryEmail()
			}
			if value, ok := providerUser.PublicMetadata["role"].(string); ok {
				metadataRole = value
			}
		} else {
			p.logger.WarnF("Failed to fetch provider user %s: %v", providerId, fetchErr)
		}
	}

	user = &operation.User{
		ProviderId: providerId,
		Email:      email,
		FirstName:  firstName,
		LastName:   lastName,
		Role:       p.DeriveRole(providerId, email, metadataRole),
	}

	err = p.userOperation.AddUser(user)
	if errors.Is(err, operation.ErrUserDuplicate) {
		// 并发创建时重读既有记录
		user, err = p.userOperation.GetUserByProviderId(providerId)
		return user, false, err
	}
	if err != nil {
		return nil, false, err
	}

	// 新用户附带默认偏好, 失败不阻断
	if saveErr := p.preferencesOperation.SavePreferences(&operation.Preferences{UserId: user.ID}); saveErr != nil {
		p.logger.WarnF("Failed to create default preferences for user %s: %v", user.ID, saveErr)
	}
	return user, true, nil
}
