// Package store
package store

import (
	"io"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"

	"github.com/flightlog-collective/skylog/internal/interfaces/config"
	"github.com/flightlog-collective/skylog/internal/interfaces/global"
	"github.com/flightlog-collective/skylog/internal/interfaces/log"
	. "github.com/flightlog-collective/skylog/internal/interfaces/service"
)

type LocalStoreService struct {
	logger log.LoggerInterface
	config *config.HttpServerStore
}

func NewLocalStoreService(logger log.LoggerInterface, config *config.HttpServerStore) *LocalStoreService {
	return &LocalStoreService{
		logger: logger,
		config: config,
	}
}

func (store *LocalStoreService) SaveImageFile(file *multipart.FileHeader) (*StoreInfo, *ApiStatus) {
	storeInfo, res := NewStoreInfo(store.config, file)
	if res != nil {
		return nil, res
	}
	src, err := file.Open()
	if err != nil {
		store.logger.ErrorF("LocalStoreService.SaveImageFile open file error: %v", err)
		return nil, &ErrFileSaveFail
	}
	defer func(src multipart.File) {
		_ = src.Close()
	}(src)
	dst, err := os.OpenFile(storeInfo.FilePath, os.O_WRONLY|os.O_CREATE, global.DefaultFilePermissions)
	if err != nil {
		store.logger.ErrorF("LocalStoreService.SaveImageFile create file error: %v", err)
		return nil, &ErrFileSaveFail
	}
	defer func(dst *os.File) {
		_ = dst.Close()
	}(dst)
	if _, err = io.Copy(dst, src); err != nil {
		store.logger.ErrorF("LocalStoreService.SaveImageFile copy file error: %v", err)
		return nil, &ErrFileSaveFail
	}
	return storeInfo, nil
}

func (store *LocalStoreService) SaveUploadImages(req *RequestUploadFile) *ApiResponse[ResponseUploadFile] {
	if req.Uid == "" {
		return NewApiResponse[ResponseUploadFile](&ErrUnauthenticated, Unsatisfied, nil)
	}
	storeInfo, res := store.SaveImageFile(req.File)
	if res != nil {
		return NewApiResponse[ResponseUploadFile](res, Unsatisfied, nil)
	}
	return NewApiResponse(&SuccessUploadFile, Unsatisfied, &ResponseUploadFile{
		FileSize:   req.File.Size,
		AccessPath: "/" + path.Join("files", filepath.ToSlash(storeInfo.FileName)),
	})
}
