// Package controller
package controller

import (
	"github.com/flightlog-collective/skylog/internal/http_server/service"
	"github.com/flightlog-collective/skylog/internal/interfaces/log"
	. "github.com/flightlog-collective/skylog/internal/interfaces/service"
	"github.com/labstack/echo/v4"
)

type WeatherControllerInterface interface {
	GetMetar(ctx echo.Context) error
}

type WeatherController struct {
	logger         log.LoggerInterface
	provisioner    *service.Provisioner
	weatherService WeatherServiceInterface
}

func NewWeatherController(logger log.LoggerInterface, provisioner *service.Provisioner, weatherService WeatherServiceInterface) *WeatherController {
	return &WeatherController{
		logger:         logger,
		provisioner:    provisioner,
		weatherService: weatherService,
	}
}

func (controller *WeatherController) GetMetar(ctx echo.Context) error {
	data := &RequestGetMetar{}
	if err := ctx.Bind(data); err != nil {
		controller.logger.ErrorF("WeatherController.GetMetar bind error: %v", err)
		return NewErrorResponse(ctx, &ErrLackParam)
	}
	if status := fillJwtHeader(ctx, controller.provisioner, &data.JwtHeader); status != nil {
		return NewErrorResponse(ctx, status)
	}
	return controller.weatherService.GetMetar(data).Response(ctx)
}
