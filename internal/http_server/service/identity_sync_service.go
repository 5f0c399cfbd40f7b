// Package service
package service

import (
	"encoding/json"
	"errors"

	"github.com/flightlog-collective/skylog/internal/interfaces/log"
	"github.com/flightlog-collective/skylog/internal/interfaces/operation"
	. "github.com/flightlog-collective/skylog/internal/interfaces/service"
	"github.com/flightlog-collective/skylog/internal/metrics"
)

type IdentitySyncService struct {
	logger        log.LoggerInterface
	userOperation operation.UserOperationInterface
	provisioner   *Provisioner
	auditService  AuditServiceInterface
}

func NewIdentitySyncService(
	logger log.LoggerInterface,
	userOperation operation.UserOperationInterface,
	provisioner *Provisioner,
	auditService AuditServiceInterface,
) *IdentitySyncService {
	return &IdentitySyncService{
		logger:        logger,
		userOperation: userOperation,
		provisioner:   provisioner,
		auditService:  auditService,
	}
}

var (
	SuccessWebhookEvent = ApiStatus{StatusName: "WEBHOOK_EVENT", Description: "webhook event processed", HttpCode: Ok}
)

func webhookPrimaryEmail(data *WebhookUserData) string {
	for _, address := range data.EmailAddresses {
		if address.ID == data.PrimaryEmailAddressId {
			return address.EmailAddress
		}
	}
	if len(data.EmailAddresses) > 0 {
		return data.EmailAddresses[0].EmailAddress
	}
	return ""
}

func webhookMetadataRole(data *WebhookUserData) string {
	if len(data.PublicMetadata) == 0 {
		return ""
	}
	metadata := map[string]interface{}{}
	if err := json.Unmarshal(data.PublicMetadata, &metadata); err != nil {
		return ""
	}
	if role, ok := metadata["role"].(string); ok {
		return role
	}
	return ""
}

// upsertUser 重复投递同一事件不产生重复记录
func (identitySyncService *IdentitySyncService) upsertUser(data *WebhookUserData) error {
	email := webhookPrimaryEmail(data)
	inboundRole := identitySyncService.provisioner.DeriveRole(data.ID, email, webhookMetadataRole(data))

	user, err := identitySyncService.userOperation.GetUserByProviderId(data.ID)
	if errors.Is(err, operation.ErrUserNotFound) {
		user = &operation.User{
			ProviderId: data.ID,
			Email:      email,
			FirstName:  data.FirstName,
			LastName:   data.LastName,
			Role:       inboundRole,
		}
		err = identitySyncService.userOperation.AddUser(user)
		if errors.Is(err, operation.ErrUserDuplicate) {
			// 重复投递或并发创建, 继续走更新分支
			user, err = identitySyncService.userOperation.GetUserByProviderId(data.ID)
			if err != nil {
				return err
			}
		} else if err != nil {
			return err
		} else {
			identitySyncService.auditService.Record(operation.EntityCreated, "identity-provider", "user", user.ID, "", "", nil, user)
			return nil
		}
	} else if err != nil {
		return err
	}

	info := map[string]interface{}{
		"email":      email,
		"first_name": data.FirstName,
		"last_name":  data.LastName,
	}
	oldRole := user.Role
	newRole := ReconcileRole(user.Role, inboundRole)
	if newRole != oldRole {
		info["role"] = newRole
	}
	if err := identitySyncService.userOperation.UpdateUserInfo(user, info); err != nil {
		return err
	}
	if newRole != oldRole {
		identitySyncService.auditService.Record(operation.UserRoleChanged, "identity-provider", "user", user.ID, "", "",
			map[string]interface{}{"role": oldRole}, map[string]interface{}{"role": newRole})
	}
	return nil
}

func (identitySyncService *IdentitySyncService) HandleWebhookEvent(req *RequestWebhookEvent) *ApiResponse[ResponseWebhookEvent] {
	metrics.Default.WebhookEvents.WithLabelValues(req.Type).Inc()

	switch req.Type {
	case "user.created", "user.updated":
		data := &WebhookUserData{}
		if err := json.Unmarshal(req.Data, data); err != nil || data.ID == "" {
			return NewApiResponse[ResponseWebhookEvent](&ErrWebhookPayload, Unsatisfied, nil)
		}
		if err := identitySyncService.upsertUser(data); err != nil {
			identitySyncService.logger.ErrorF("Failed to sync webhook user %s: %v", data.ID, err)
			return NewApiResponse[ResponseWebhookEvent](&ErrDatabaseFail, Unsatisfied, nil)
		}
	case "user.deleted":
		data := &WebhookUserData{}
		if err := json.Unmarshal(req.Data, data); err != nil || data.ID == "" {
			return NewApiResponse[ResponseWebhookEvent](&ErrWebhookPayload, Unsatisfied, nil)
		}
		// 用户不存在时视为已处理, 保证幂等
		if err := identitySyncService.userOperation.DeleteUserByProviderId(data.ID); err != nil {
			identitySyncService.logger.ErrorF("Failed to delete webhook user %s: %v", data.ID, err)
			return NewApiResponse[ResponseWebhookEvent](&ErrDatabaseFail, Unsatisfied, nil)
		}
	default:
		identitySyncService.logger.DebugF("Ignoring webhook event type %s", req.Type)
	}

	return NewApiResponse(&SuccessWebhookEvent, Unsatisfied, &ResponseWebhookEvent{Handled: true})
}
