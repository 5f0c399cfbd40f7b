// Package controller
package controller

import (
	"github.com/flightlog-collective/skylog/internal/http_server/service"
	"github.com/flightlog-collective/skylog/internal/interfaces/log"
	. "github.com/flightlog-collective/skylog/internal/interfaces/service"
	"github.com/labstack/echo/v4"
)

type PreferencesControllerInterface interface {
	GetPreferences(ctx echo.Context) error
	EditPreferences(ctx echo.Context) error
}

type PreferencesController struct {
	logger             log.LoggerInterface
	provisioner        *service.Provisioner
	preferencesService PreferencesServiceInterface
}

func NewPreferencesController(logger log.LoggerInterface, provisioner *service.Provisioner, preferencesService PreferencesServiceInterface) *PreferencesController {
	return &PreferencesController{
		logger:             logger,
		provisioner:        provisioner,
		preferencesService: preferencesService,
	}
}

func (controller *PreferencesController) GetPreferences(ctx echo.Context) error {
	data := &RequestGetPreferences{}
	if status := fillJwtHeader(ctx, controller.provisioner, &data.JwtHeader); status != nil {
		return NewErrorResponse(ctx, status)
	}
	return controller.preferencesService.GetPreferences(data).Response(ctx)
}

func (controller *PreferencesController) EditPreferences(ctx echo.Context) error {
	data := &RequestEditPreferences{}
	if err := ctx.Bind(data); err != nil {
		controller.logger.ErrorF("PreferencesController.EditPreferences bind error: %v", err)
		return NewErrorResponse(ctx, &ErrLackParam)
	}
	if status := fillJwtHeader(ctx, controller.provisioner, &data.JwtHeader); status != nil {
		return NewErrorResponse(ctx, status)
	}
	return controller.preferencesService.EditPreferences(data).Response(ctx)
}
