// Package service
package service

import (
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"github.com/flightlog-collective/skylog/internal/interfaces/config"
)

var (
	ErrFilePathFail       = ApiStatus{"FILE_PATH_FAIL", "file upload failed", ServerInternalError}
	ErrFileSaveFail       = ApiStatus{"FILE_SAVE_FAIL", "file save failed", ServerInternalError}
	ErrFileUploadFail     = ApiStatus{"FILE_UPLOAD_FAIL", "file upload failed", ServerInternalError}
	ErrFileOverSize       = ApiStatus{"FILE_OVER_SIZE", "file too large", PayloadTooLarge}
	ErrFileExtUnsupported = ApiStatus{"FILE_EXT_UNSUPPORTED", "unsupported file type", BadRequest}
	ErrFileNameIllegal    = ApiStatus{"FILE_NAME_ILLEGAL", "illegal file name", BadRequest}
	SuccessUploadFile     = ApiStatus{"UPLOAD_FILE", "file uploaded", Ok}
)

// StoreInfo 图片存储信息
type StoreInfo struct {
	RootPath    string                // 存储根目录
	FilePath    string                // 本地存储路径
	RemotePath  string                // 远程存储路径
	FileName    string                // 文件名
	FileExt     string                // 文件扩展名
	FileContent *multipart.FileHeader // 文件内容
}

func NewStoreInfo(store *config.HttpServerStore, file *multipart.FileHeader) (*StoreInfo, *ApiStatus) {
	if strings.Contains(file.Filename, string(filepath.Separator)) {
		return nil, &ErrFileNameIllegal
	}

	ext := filepath.Ext(file.Filename)

	if !store.ExtAllowed(ext) {
		return nil, &ErrFileExtUnsupported
	}

	if file.Size > store.ImageMaxSize {
		return nil, &ErrFileOverSize
	}

	info := &StoreInfo{
		RootPath:    store.LocalStorePath,
		FileExt:     ext,
		FileContent: file,
	}
	info.FileName = filepath.Join(store.ImageDir, fmt.Sprintf("%d%s", time.Now().UnixNano(), ext))
	info.FilePath = filepath.Join(store.LocalStorePath, info.FileName)
	info.RemotePath = strings.Replace(filepath.Join(store.RemoteStorePath, info.FileName), "\\", "/", -1)

	return info, nil
}

type StoreServiceInterface interface {
	SaveImageFile(file *multipart.FileHeader) (*StoreInfo, *ApiStatus)
	SaveUploadImages(req *RequestUploadFile) *ApiResponse[ResponseUploadFile]
}

type RequestUploadFile struct {
	JwtHeader
	File *multipart.FileHeader
}

type ResponseUploadFile struct {
	FileSize   int64  `json:"file_size"`
	AccessPath string `json:"access_path"`
}
