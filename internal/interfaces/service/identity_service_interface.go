// Package service
package service

import "encoding/json"

var (
	ErrWebhookSignature = ApiStatus{"WEBHOOK_SIGNATURE_INVALID", "webhook signature verification failed", Unauthorized}
	ErrWebhookPayload   = ApiStatus{"WEBHOOK_PAYLOAD_INVALID", "webhook payload malformed", BadRequest}
)

type IdentityServiceInterface interface {
	// HandleWebhookEvent 处理身份提供商回调, 签名校验由控制器完成
	HandleWebhookEvent(req *RequestWebhookEvent) *ApiResponse[ResponseWebhookEvent]
}

// WebhookUserData 身份提供商回调中的用户数据
type WebhookUserData struct {
	ID             string  `json:"id"`
	FirstName      *string `json:"first_name"`
	LastName       *string `json:"last_name"`
	EmailAddresses []struct {
		ID           string `json:"id"`
		EmailAddress string `json:"email_address"`
	} `json:"email_addresses"`
	PrimaryEmailAddressId string          `json:"primary_email_address_id"`
	PublicMetadata        json.RawMessage `json:"public_metadata"`
}

type RequestWebhookEvent struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

type ResponseWebhookEvent struct {
	Handled bool `json:"handled"`
}
