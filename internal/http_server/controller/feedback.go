// Package controller
package controller

import (
	"github.com/flightlog-collective/skylog/internal/interfaces/log"
	. "github.com/flightlog-collective/skylog/internal/interfaces/service"
	"github.com/labstack/echo/v4"
)

type FeedbackControllerInterface interface {
	SubmitFeedback(ctx echo.Context) error
	SubmitContact(ctx echo.Context) error
}

// FeedbackController 无需认证的公开入口
type FeedbackController struct {
	logger          log.LoggerInterface
	feedbackService FeedbackServiceInterface
}

func NewFeedbackController(logger log.LoggerInterface, feedbackService FeedbackServiceInterface) *FeedbackController {
	return &FeedbackController{
		logger:          logger,
		feedbackService: feedbackService,
	}
}

func (controller *FeedbackController) SubmitFeedback(ctx echo.Context) error {
	data := &RequestSubmitFeedback{}
	if err := ctx.Bind(data); err != nil {
		controller.logger.ErrorF("FeedbackController.SubmitFeedback bind error: %v", err)
		return NewErrorResponse(ctx, &ErrLackParam)
	}
	data.Ip = ctx.RealIP()
	return controller.feedbackService.SubmitFeedback(data).Response(ctx)
}

func (controller *FeedbackController) SubmitContact(ctx echo.Context) error {
	data := &RequestSubmitContact{}
	if err := ctx.Bind(data); err != nil {
		controller.logger.ErrorF("FeedbackController.SubmitContact bind error: %v", err)
		return NewErrorResponse(ctx, &ErrLackParam)
	}
	data.Ip = ctx.RealIP()
	return controller.feedbackService.SubmitContact(data).Response(ctx)
}
