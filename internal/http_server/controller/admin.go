// Package controller
package controller

import (
	"github.com/flightlog-collective/skylog/internal/http_server/service"
	"github.com/flightlog-collective/skylog/internal/interfaces/log"
	. "github.com/flightlog-collective/skylog/internal/interfaces/service"
	"github.com/labstack/echo/v4"
)

type AdminControllerInterface interface {
	GetAdminStats(ctx echo.Context) error
	GetRecentUsers(ctx echo.Context) error
	GetUserList(ctx echo.Context) error
	VerifyPilot(ctx echo.Context) error
	EditUserRole(ctx echo.Context) error
	DeleteUser(ctx echo.Context) error
	GetSecurityEvents(ctx echo.Context) error
	GetAuditLogPage(ctx echo.Context) error
	GetFeedbackPage(ctx echo.Context) error
}

type AdminController struct {
	logger          log.LoggerInterface
	provisioner     *service.Provisioner
	adminService    AdminServiceInterface
	auditService    AuditServiceInterface
	feedbackService FeedbackServiceInterface
}

func NewAdminController(
	logger log.LoggerInterface,
	provisioner *service.Provisioner,
	adminService AdminServiceInterface,
	auditService AuditServiceInterface,
	feedbackService FeedbackServiceInterface,
) *AdminController {
	return &AdminController{
		logger:          logger,
		provisioner:     provisioner,
		adminService:    adminService,
		auditService:    auditService,
		feedbackService: feedbackService,
	}
}

func (controller *AdminController) GetAdminStats(ctx echo.Context) error {
	data := &RequestAdminStats{}
	if status := fillJwtHeader(ctx, controller.provisioner, &data.JwtHeader); status != nil {
		return NewErrorResponse(ctx, status)
	}
	return controller.adminService.GetAdminStats(data).Response(ctx)
}

func (controller *AdminController) GetRecentUsers(ctx echo.Context) error {
	data := &RequestRecentUsers{}
	if status := fillJwtHeader(ctx, controller.provisioner, &data.JwtHeader); status != nil {
		return NewErrorResponse(ctx, status)
	}
	return controller.adminService.GetRecentUsers(data).Response(ctx)
}

func (controller *AdminController) GetUserList(ctx echo.Context) error {
	data := &RequestAdminUserList{}
	if err := ctx.Bind(data); err != nil {
		controller.logger.ErrorF("AdminController.GetUserList bind error: %v", err)
		return NewErrorResponse(ctx, &ErrLackParam)
	}
	if status := fillJwtHeader(ctx, controller.provisioner, &data.JwtHeader); status != nil {
		return NewErrorResponse(ctx, status)
	}
	return controller.adminService.GetUserList(data).Response(ctx)
}

func (controller *AdminController) VerifyPilot(ctx echo.Context) error {
	data := &RequestVerifyPilot{}
	if err := ctx.Bind(data); err != nil {
		controller.logger.ErrorF("AdminController.VerifyPilot bind error: %v", err)
		return NewErrorResponse(ctx, &ErrLackParam)
	}
	if status := fillJwtHeader(ctx, controller.provisioner, &data.JwtHeader); status != nil {
		return NewErrorResponse(ctx, status)
	}
	return controller.adminService.VerifyPilot(data).Response(ctx)
}

func (controller *AdminController) EditUserRole(ctx echo.Context) error {
	data := &RequestEditUserRole{}
	if err := ctx.Bind(data); err != nil {
		controller.logger.ErrorF("AdminController.EditUserRole bind error: %v", err)
		return NewErrorResponse(ctx, &ErrLackParam)
	}
	if status := fillJwtHeader(ctx, controller.provisioner, &data.JwtHeader); status != nil {
		return NewErrorResponse(ctx, status)
	}
	return controller.adminService.EditUserRole(data).Response(ctx)
}

func (controller *AdminController) DeleteUser(ctx echo.Context) error {
	data := &RequestDeleteUser{}
	if err := ctx.Bind(data); err != nil {
		controller.logger.ErrorF("AdminController.DeleteUser bind error: %v", err)
		return NewErrorResponse(ctx, &ErrLackParam)
	}
	if status := fillJwtHeader(ctx, controller.provisioner, &data.JwtHeader); status != nil {
		return NewErrorResponse(ctx, status)
	}
	return controller.adminService.DeleteUser(data).Response(ctx)
}

func (controller *AdminController) GetSecurityEvents(ctx echo.Context) error {
	data := &RequestSecurityEvents{}
	if err := ctx.Bind(data); err != nil {
		controller.logger.ErrorF("AdminController.GetSecurityEvents bind error: %v", err)
		return NewErrorResponse(ctx, &ErrLackParam)
	}
	if status := fillJwtHeader(ctx, controller.provisioner, &data.JwtHeader); status != nil {
		return NewErrorResponse(ctx, status)
	}
	return controller.adminService.GetSecurityEvents(data).Response(ctx)
}

func (controller *AdminController) GetAuditLogPage(ctx echo.Context) error {
	data := &RequestGetAuditLog{}
	if err := ctx.Bind(data); err != nil {
		controller.logger.ErrorF("AdminController.GetAuditLogPage bind error: %v", err)
		return NewErrorResponse(ctx, &ErrLackParam)
	}
	if status := fillJwtHeader(ctx, controller.provisioner, &data.JwtHeader); status != nil {
		return NewErrorResponse(ctx, status)
	}
	return controller.auditService.GetAuditLogPage(data).Response(ctx)
}

func (controller *AdminController) GetFeedbackPage(ctx echo.Context) error {
	data := &RequestFeedbackPage{}
	if err := ctx.Bind(data); err != nil {
		controller.logger.ErrorF("AdminController.GetFeedbackPage bind error: %v", err)
		return NewErrorResponse(ctx, &ErrLackParam)
	}
	if status := fillJwtHeader(ctx, controller.provisioner, &data.JwtHeader); status != nil {
		return NewErrorResponse(ctx, status)
	}
	return controller.feedbackService.GetFeedbackPage(data).Response(ctx)
}
