// Package controller
package controller

import (
	"github.com/flightlog-collective/skylog/internal/http_server/service"
	"github.com/flightlog-collective/skylog/internal/interfaces/log"
	. "github.com/flightlog-collective/skylog/internal/interfaces/service"
	"github.com/labstack/echo/v4"
)

type UserControllerInterface interface {
	GetCurrentProfile(ctx echo.Context) error
	EditCurrentProfile(ctx echo.Context) error
	SyncCurrentUser(ctx echo.Context) error
}

type UserController struct {
	logger      log.LoggerInterface
	provisioner *service.Provisioner
	userService UserServiceInterface
}

func NewUserController(logger log.LoggerInterface, provisioner *service.Provisioner, userService UserServiceInterface) *UserController {
	return &UserController{
		logger:      logger,
		provisioner: provisioner,
		userService: userService,
	}
}

func (controller *UserController) GetCurrentProfile(ctx echo.Context) error {
	data := &RequestCurrentProfile{}
	if status := fillJwtHeader(ctx, controller.provisioner, &data.JwtHeader); status != nil {
		return NewErrorResponse(ctx, status)
	}
	return controller.userService.GetCurrentProfile(data).Response(ctx)
}

func (controller *UserController) EditCurrentProfile(ctx echo.Context) error {
	data := &RequestEditCurrentProfile{}
	if err := ctx.Bind(data); err != nil {
		controller.logger.ErrorF("UserController.EditCurrentProfile bind error: %v", err)
		return NewErrorResponse(ctx, &ErrLackParam)
	}
	if status := fillJwtHeader(ctx, controller.provisioner, &data.JwtHeader); status != nil {
		return NewErrorResponse(ctx, status)
	}
	return controller.userService.EditCurrentProfile(data).Response(ctx)
}

func (controller *UserController) SyncCurrentUser(ctx echo.Context) error {
	data := &RequestUserSync{}
	if status := fillJwtHeader(ctx, controller.provisioner, &data.JwtHeader); status != nil {
		return NewErrorResponse(ctx, status)
	}
	return controller.userService.SyncCurrentUser(data).Response(ctx)
}
