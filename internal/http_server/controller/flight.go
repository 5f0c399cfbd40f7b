// Package controller
package controller

import (
	"github.com/flightlog-collective/skylog/internal/http_server/service"
	"github.com/flightlog-collective/skylog/internal/interfaces/log"
	. "github.com/flightlog-collective/skylog/internal/interfaces/service"
	"github.com/labstack/echo/v4"
)

type FlightControllerInterface interface {
	GetFlightList(ctx echo.Context) error
	GetRecentFlights(ctx echo.Context) error
	GetFlight(ctx echo.Context) error
	GetFlightsByAircraft(ctx echo.Context) error
	GetFlightAircraft(ctx echo.Context) error
	CreateFlight(ctx echo.Context) error
	EditFlight(ctx echo.Context) error
	DeleteFlight(ctx echo.Context) error
}

type FlightController struct {
	logger        log.LoggerInterface
	provisioner   *service.Provisioner
	flightService FlightServiceInterface
}

func NewFlightController(logger log.LoggerInterface, provisioner *service.Provisioner, flightService FlightServiceInterface) *FlightController {
	return &FlightController{
		logger:        logger,
		provisioner:   provisioner,
		flightService: flightService,
	}
}

func (controller *FlightController) GetFlightList(ctx echo.Context) error {
	data := &RequestFlightList{}
	if err := ctx.Bind(data); err != nil {
		controller.logger.ErrorF("FlightController.GetFlightList bind error: %v", err)
		return NewErrorResponse(ctx, &ErrLackParam)
	}
	if status := fillJwtHeader(ctx, controller.provisioner, &data.JwtHeader); status != nil {
		return NewErrorResponse(ctx, status)
	}
	return controller.flightService.GetFlightList(data).Response(ctx)
}

func (controller *FlightController) GetRecentFlights(ctx echo.Context) error {
	data := &RequestRecentFlights{}
	if err := ctx.Bind(data); err != nil {
		controller.logger.ErrorF("FlightController.GetRecentFlights bind error: %v", err)
		return NewErrorResponse(ctx, &ErrLackParam)
	}
	if status := fillJwtHeader(ctx, controller.provisioner, &data.JwtHeader); status != nil {
		return NewErrorResponse(ctx, status)
	}
	return controller.flightService.GetRecentFlights(data).Response(ctx)
}

func (controller *FlightController) GetFlight(ctx echo.Context) error {
	data := &RequestGetFlight{}
	if err := ctx.Bind(data); err != nil {
		controller.logger.ErrorF("FlightController.GetFlight bind error: %v", err)
		return NewErrorResponse(ctx, &ErrLackParam)
	}
	if status := fillJwtHeader(ctx, controller.provisioner, &data.JwtHeader); status != nil {
		return NewErrorResponse(ctx, status)
	}
	return controller.flightService.GetFlight(data).Response(ctx)
}

func (controller *FlightController) GetFlightsByAircraft(ctx echo.Context) error {
	data := &RequestFlightsByAircraft{}
	if err := ctx.Bind(data); err != nil {
		controller.logger.ErrorF("FlightController.GetFlightsByAircraft bind error: %v", err)
		return NewErrorResponse(ctx, &ErrLackParam)
	}
	if status := fillJwtHeader(ctx, controller.provisioner, &data.JwtHeader); status != nil {
		return NewErrorResponse(ctx, status)
	}
	return controller.flightService.GetFlightsByAircraft(data).Response(ctx)
}

func (controller *FlightController) GetFlightAircraft(ctx echo.Context) error {
	data := &RequestFlightAircraft{}
	if status := fillJwtHeader(ctx, controller.provisioner, &data.JwtHeader); status != nil {
		return NewErrorResponse(ctx, status)
	}
	return controller.flightService.GetFlightAircraft(data).Response(ctx)
}

func (controller *FlightController) CreateFlight(ctx echo.Context) error {
	data := &RequestCreateFlight{}
	if err := ctx.Bind(data); err != nil {
		controller.logger.ErrorF("FlightController.CreateFlight bind error: %v", err)
		return NewErrorResponse(ctx, &ErrLackParam)
	}
	if status := fillJwtHeader(ctx, controller.provisioner, &data.JwtHeader); status != nil {
		return NewErrorResponse(ctx, status)
	}
	return controller.flightService.CreateFlight(data).Response(ctx)
}

func (controller *FlightController) EditFlight(ctx echo.Context) error {
	data := &RequestEditFlight{}
	if err := ctx.Bind(data); err != nil {
		controller.logger.ErrorF("FlightController.EditFlight bind error: %v", err)
		return NewErrorResponse(ctx, &ErrLackParam)
	}
	if status := fillJwtHeader(ctx, controller.provisioner, &data.JwtHeader); status != nil {
		return NewErrorResponse(ctx, status)
	}
	return controller.flightService.EditFlight(data).Response(ctx)
}

func (controller *FlightController) DeleteFlight(ctx echo.Context) error {
	data := &RequestDeleteFlight{}
	if err := ctx.Bind(data); err != nil {
		controller.logger.ErrorF("FlightController.DeleteFlight bind error: %v", err)
		return NewErrorResponse(ctx, &ErrLackParam)
	}
	if status := fillJwtHeader(ctx, controller.provisioner, &data.JwtHeader); status != nil {
		return NewErrorResponse(ctx, status)
	}
	return controller.flightService.DeleteFlight(data).Response(ctx)
}
