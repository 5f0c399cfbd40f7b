// Package controller
package controller

import (
	"encoding/json"
	"io"

	"github.com/flightlog-collective/skylog/internal/identity"
	"github.com/flightlog-collective/skylog/internal/interfaces/log"
	. "github.com/flightlog-collective/skylog/internal/interfaces/service"
	"github.com/labstack/echo/v4"
)

type WebhookControllerInterface interface {
	HandleIdentityWebhook(ctx echo.Context) error
}

type WebhookController struct {
	logger          log.LoggerInterface
	verifier        *identity.WebhookVerifier
	identityService IdentityServiceInterface
}

func NewWebhookController(logger log.LoggerInterface, verifier *identity.WebhookVerifier, identityService IdentityServiceInterface) *WebhookController {
	return &WebhookController{
		logger:          logger,
		verifier:        verifier,
		identityService: identityService,
	}
}

// HandleIdentityWebhook 签名校验通过后才解析载荷
func (controller *WebhookController) HandleIdentityWebhook(ctx echo.Context) error {
	if controller.verifier == nil {
		controller.logger.Warn("Webhook received but no webhook secret configured")
		return NewErrorResponse(ctx, &ErrWebhookSignature)
	}

	payload, err := io.ReadAll(ctx.Request().Body)
	if err != nil {
		controller.logger.ErrorF("WebhookController.HandleIdentityWebhook read body error: %v", err)
		return NewErrorResponse(ctx, &ErrWebhookPayload)
	}

	headers := ctx.Request().Header
	if err := controller.verifier.Verify(
		headers.Get("webhook-id"),
		headers.Get("webhook-timestamp"),
		headers.Get("webhook-signature"),
		payload,
	); err != nil {
		controller.logger.WarnF("Webhook signature verification failed: %v", err)
		return NewErrorResponse(ctx, &ErrWebhookSignature)
	}

	data := &RequestWebhookEvent{}
	if err := json.Unmarshal(payload, data); err != nil || data.Type == "" {
		return NewErrorResponse(ctx, &ErrWebhookPayload)
	}
	return controller.identityService.HandleWebhookEvent(data).Response(ctx)
}
