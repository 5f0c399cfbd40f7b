// Package service
package service

import (
	"time"

	"github.com/flightlog-collective/skylog/internal/interfaces/config"
	"github.com/flightlog-collective/skylog/internal/interfaces/log"
	"github.com/flightlog-collective/skylog/internal/interfaces/operation"
	. "github.com/flightlog-collective/skylog/internal/interfaces/service"
	"github.com/flightlog-collective/skylog/internal/utils"
)

const (
	feedbackKind = "FEEDBACK"
	contactKind  = "CONTACT"
)

type FeedbackService struct {
	logger            log.LoggerInterface
	limits            *config.HttpServerLimit
	feedbackOperation operation.FeedbackOperationInterface
	userOperation     operation.UserOperationInterface
	emailService      EmailServiceInterface
}

func NewFeedbackService(
	logger log.LoggerInterface,
	limits *config.HttpServerLimit,
	feedbackOperation operation.FeedbackOperationInterface,
	userOperation operation.UserOperationInterface,
	emailService EmailServiceInterface,
) *FeedbackService {
	return &FeedbackService{
		logger:            logger,
		limits:            limits,
		feedbackOperation: feedbackOperation,
		userOperation:     userOperation,
		emailService:      emailService,
	}
}

var (
	SuccessSubmitMessage   = ApiStatus{StatusName: "SUBMIT_MESSAGE", Description: "message received", HttpCode: Ok}
	SuccessGetFeedbackPage = ApiStatus{StatusName: "GET_FEEDBACK_PAGE", Description: "feedback page fetched", HttpCode: Ok}
)

func (feedbackService *FeedbackService) submit(kind, name, email, message, ip string) (bool, []*FieldViolation) {
	violations := CheckMessage(name, email, message, feedbackService.limits)
	if len(violations) > 0 {
		return false, violations
	}

	feedback := &operation.Feedback{
		Kind:    kind,
		Name:    name,
		Email:   email,
		Message: message,
		Ip:      ip,
	}
	if err := feedbackService.feedbackOperation.SaveFeedback(feedback); err != nil {
		feedbackService.logger.ErrorF("Failed to persist %s message: %v", kind, err)
		return false, nil
	}

	// 邮件转发尽力而为
	if err := feedbackService.emailService.SendFeedbackEmail(feedback); err != nil {
		feedbackService.logger.WarnF("Failed to forward %s message by email: %v", kind, err)
	}
	return true, nil
}

func (feedbackService *FeedbackService) SubmitFeedback(req *RequestSubmitFeedback) *ApiResponse[ResponseSubmitFeedback] {
	saved, violations := feedbackService.submit(feedbackKind, req.Name, req.Email, req.Message, req.Ip)
	if len(violations) > 0 {
		return NewValidationErrorResponse[ResponseSubmitFeedback](violations)
	}
	if !saved {
		return NewApiResponse[ResponseSubmitFeedback](&ErrDatabaseFail, Unsatisfied, nil)
	}
	return NewApiResponse(&SuccessSubmitMessage, Unsatisfied, &ResponseSubmitFeedback{Received: true})
}

func (feedbackService *FeedbackService) SubmitContact(req *RequestSubmitContact) *ApiResponse[ResponseSubmitContact] {
	saved, violations := feedbackService.submit(contactKind, req.Name, req.Email, req.Message, req.Ip)
	if len(violations) > 0 {
		return NewValidationErrorResponse[ResponseSubmitContact](violations)
	}
	if !saved {
		return NewApiResponse[ResponseSubmitContact](&ErrDatabaseFail, Unsatisfied, nil)
	}
	return NewApiResponse(&SuccessSubmitMessage, Unsatisfied, &ResponseSubmitContact{Received: true})
}

func (feedbackService *FeedbackService) GetFeedbackPage(req *RequestFeedbackPage) *ApiResponse[ResponseFeedbackPage] {
	if _, res := GetUserAndCheckRole[ResponseFeedbackPage](feedbackService.userOperation, req.Uid, operation.RoleAdmin); res != nil {
		return res
	}
	if req.Page <= 0 {
		req.Page = 1
	}
	if req.PageSize <= 0 || req.PageSize > 100 {
		req.PageSize = 20
	}
	feedbacks, total, err := feedbackService.feedbackOperation.GetFeedbacks(req.Page, req.PageSize)
	if err != nil {
		return NewApiResponse[ResponseFeedbackPage](&ErrDatabaseFail, Unsatisfied, nil)
	}
	items := utils.MapTo(feedbacks, func(feedback *operation.Feedback) *FeedbackItem {
		return &FeedbackItem{
			ID:        feedback.ID,
			Kind:      feedback.Kind,
			Name:      feedback.Name,
			Email:     feedback.Email,
			Message:   feedback.Message,
			CreatedAt: feedback.CreatedAt.UTC().Format(time.RFC3339),
		}
	})
	return NewApiResponse(&SuccessGetFeedbackPage, Unsatisfied, &ResponseFeedbackPage{
		Items:    items,
		Page:     req.Page,
		PageSize: req.PageSize,
		Total:    total,
	})
}
