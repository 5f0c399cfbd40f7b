// Package controller
package controller

import (
	"github.com/flightlog-collective/skylog/internal/http_server/service"
	"github.com/flightlog-collective/skylog/internal/interfaces/log"
	. "github.com/flightlog-collective/skylog/internal/interfaces/service"
	"github.com/labstack/echo/v4"
)

type FileControllerInterface interface {
	UploadImages(ctx echo.Context) error
}

type FileController struct {
	logger       log.LoggerInterface
	provisioner  *service.Provisioner
	storeService StoreServiceInterface
}

func NewFileController(logger log.LoggerInterface, provisioner *service.Provisioner, storeService StoreServiceInterface) *FileController {
	return &FileController{
		logger:       logger,
		provisioner:  provisioner,
		storeService: storeService,
	}
}

func (controller *FileController) UploadImages(ctx echo.Context) error {
	data := &RequestUploadFile{}
	if status := fillJwtHeader(ctx, controller.provisioner, &data.JwtHeader); status != nil {
		return NewErrorResponse(ctx, status)
	}
	file, err := ctx.FormFile("file")
	if err != nil {
		controller.logger.ErrorF("FileController.UploadImages form file error: %v", err)
		return NewErrorResponse(ctx, &ErrLackParam)
	}
	data.File = file
	return controller.storeService.SaveUploadImages(data).Response(ctx)
}
