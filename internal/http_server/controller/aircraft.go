// Package controller
package controller

import (
	"github.com/flightlog-collective/skylog/internal/http_server/service"
	"github.com/flightlog-collective/skylog/internal/interfaces/log"
	. "github.com/flightlog-collective/skylog/internal/interfaces/service"
	"github.com/labstack/echo/v4"
)

type AircraftControllerInterface interface {
	GetAircraftList(ctx echo.Context) error
	GetAircraft(ctx echo.Context) error
	CreateAircraft(ctx echo.Context) error
	EditAircraft(ctx echo.Context) error
	ArchiveAircraft(ctx echo.Context) error
	RestoreAircraft(ctx echo.Context) error
	DeleteAircraft(ctx echo.Context) error
}

type AircraftController struct {
	logger          log.LoggerInterface
	provisioner     *service.Provisioner
	aircraftService AircraftServiceInterface
}

func NewAircraftController(logger log.LoggerInterface, provisioner *service.Provisioner, aircraftService AircraftServiceInterface) *AircraftController {
	return &AircraftController{
		logger:          logger,
		provisioner:     provisioner,
		aircraftService: aircraftService,
	}
}

func (controller *AircraftController) GetAircraftList(ctx echo.Context) error {
	data := &RequestAircraftList{}
	if err := ctx.Bind(data); err != nil {
		controller.logger.ErrorF("AircraftController.GetAircraftList bind error: %v", err)
		return NewErrorResponse(ctx, &ErrLackParam)
	}
	if status := fillJwtHeader(ctx, controller.provisioner, &data.JwtHeader); status != nil {
		return NewErrorResponse(ctx, status)
	}
	return controller.aircraftService.GetAircraftList(data).Response(ctx)
}

func (controller *AircraftController) GetAircraft(ctx echo.Context) error {
	data := &RequestGetAircraft{}
	if err := ctx.Bind(data); err != nil {
		controller.logger.ErrorF("AircraftController.GetAircraft bind error: %v", err)
		return NewErrorResponse(ctx, &ErrLackParam)
	}
	if status := fillJwtHeader(ctx, controller.provisioner, &data.JwtHeader); status != nil {
		return NewErrorResponse(ctx, status)
	}
	return controller.aircraftService.GetAircraft(data).Response(ctx)
}

func (controller *AircraftController) CreateAircraft(ctx echo.Context) error {
	data := &RequestCreateAircraft{}
	if err := ctx.Bind(data); err != nil {
		controller.logger.ErrorF("AircraftController.CreateAircraft bind error: %v", err)
		return NewErrorResponse(ctx, &ErrLackParam)
	}
	if status := fillJwtHeader(ctx, controller.provisioner, &data.JwtHeader); status != nil {
		return NewErrorResponse(ctx, status)
	}
	return controller.aircraftService.CreateAircraft(data).Response(ctx)
}

func (controller *AircraftController) EditAircraft(ctx echo.Context) error {
	data := &RequestEditAircraft{}
	if err := ctx.Bind(data); err != nil {
		controller.logger.ErrorF("AircraftController.EditAircraft bind error: %v", err)
		return NewErrorResponse(ctx, &ErrLackParam)
	}
	if status := fillJwtHeader(ctx, controller.provisioner, &data.JwtHeader); status != nil {
		return NewErrorResponse(ctx, status)
	}
	return controller.aircraftService.EditAircraft(data).Response(ctx)
}

func (controller *AircraftController) ArchiveAircraft(ctx echo.Context) error {
	data := &RequestArchiveAircraft{}
	if err := ctx.Bind(data); err != nil {
		controller.logger.ErrorF("AircraftController.ArchiveAircraft bind error: %v", err)
		return NewErrorResponse(ctx, &ErrLackParam)
	}
	if status := fillJwtHeader(ctx, controller.provisioner, &data.JwtHeader); status != nil {
		return NewErrorResponse(ctx, status)
	}
	return controller.aircraftService.ArchiveAircraft(data).Response(ctx)
}

func (controller *AircraftController) RestoreAircraft(ctx echo.Context) error {
	data := &RequestRestoreAircraft{}
	if err := ctx.Bind(data); err != nil {
		controller.logger.ErrorF("AircraftController.RestoreAircraft bind error: %v", err)
		return NewErrorResponse(ctx, &ErrLackParam)
	}
	if status := fillJwtHeader(ctx, controller.provisioner, &data.JwtHeader); status != nil {
		return NewErrorResponse(ctx, status)
	}
	return controller.aircraftService.RestoreAircraft(data).Response(ctx)
}

func (controller *AircraftController) DeleteAircraft(ctx echo.Context) error {
	data := &RequestDeleteAircraft{}
	if err := ctx.Bind(data); err != nil {
		controller.logger.ErrorF("AircraftController.DeleteAircraft bind error: %v", err)
		return NewErrorResponse(ctx, &ErrLackParam)
	}
	if status := fillJwtHeader(ctx, controller.provisioner, &data.JwtHeader); status != nil {
		return NewErrorResponse(ctx, status)
	}
	return controller.aircraftService.DeleteAircraft(data).Response(ctx)
}
