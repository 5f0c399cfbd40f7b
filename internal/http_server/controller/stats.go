// Package controller
package controller

import (
	"github.com/flightlog-collective/skylog/internal/http_server/service"
	"github.com/flightlog-collective/skylog/internal/interfaces/log"
	. "github.com/flightlog-collective/skylog/internal/interfaces/service"
	"github.com/labstack/echo/v4"
)

type StatsControllerInterface interface {
	GetDashboardStats(ctx echo.Context) error
	GetMonthlyStats(ctx echo.Context) error
	GetAircraftStats(ctx echo.Context) error
}

type StatsController struct {
	logger       log.LoggerInterface
	provisioner  *service.Provisioner
	statsService StatsServiceInterface
}

func NewStatsController(logger log.LoggerInterface, provisioner *service.Provisioner, statsService StatsServiceInterface) *StatsController {
	return &StatsController{
		logger:       logger,
		provisioner:  provisioner,
		statsService: statsService,
	}
}

func (controller *StatsController) GetDashboardStats(ctx echo.Context) error {
	data := &RequestDashboardStats{}
	if status := fillJwtHeader(ctx, controller.provisioner, &data.JwtHeader); status != nil {
		return NewErrorResponse(ctx, status)
	}
	return controller.statsService.GetDashboardStats(data).Response(ctx)
}

func (controller *StatsController) GetMonthlyStats(ctx echo.Context) error {
	data := &RequestMonthlyStats{}
	if status := fillJwtHeader(ctx, controller.provisioner, &data.JwtHeader); status != nil {
		return NewErrorResponse(ctx, status)
	}
	return controller.statsService.GetMonthlyStats(data).Response(ctx)
}

func (controller *StatsController) GetAircraftStats(ctx echo.Context) error {
	data := &RequestAircraftStats{}
	if status := fillJwtHeader(ctx, controller.provisioner, &data.JwtHeader); status != nil {
		return NewErrorResponse(ctx, status)
	}
	return controller.statsService.GetAircraftStats(data).Response(ctx)
}
