// Package config
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/flightlog-collective/skylog/internal/interfaces/log"
)

type HttpServerStore struct {
	StoreType        int      `json:"store_type"`        // 文件存储类型, 0: 本地存储, 1: 阿里云OSS存储, 2: 腾讯云对象存储
	Region           string   `json:"region"`            // 云存储地域
	Bucket           string   `json:"bucket"`            // 云存储桶名
	AccessId         string   `json:"access_id"`         // 访问id
	AccessKey        string   `json:"access_key"`        // 访问秘钥
	CdnDomain        string   `json:"cdn_domain"`        // 自定义加速域名
	UseInternalUrl   bool     `json:"use_internal_url"`  // 上传使用内部域名
	LocalStorePath   string   `json:"local_store_path"`  // 本地存储路径
	RemoteStorePath  string   `json:"remote_store_path"` // 远程存储路径
	ImageDir         string   `json:"image_dir"`
	ImageMaxSize     int64    `json:"image_max_size"`
	AllowedImageExts []string `json:"allowed_image_exts"`
}

func defaultHttpServerStore() *HttpServerStore {
	return &HttpServerStore{
		StoreType:        0,
		Region:           "",
		Bucket:           "",
		AccessId:         "",
		AccessKey:        "",
		CdnDomain:        "",
		UseInternalUrl:   false,
		LocalStorePath:   "uploads",
		RemoteStorePath:  "",
		ImageDir:         "images",
		ImageMaxSize:     8 * 1024 * 1024,
		AllowedImageExts: []string{".jpg", ".jpeg", ".png", ".webp"},
	}
}

func (config *HttpServerStore) checkValid(_ log.LoggerInterface) *ValidResult {
	if config.LocalStorePath == "" {
		return ValidFail(errors.New("invalid json field http_server.store.local_store_path, path cannot be empty"))
	}
	if config.ImageDir == "" {
		return ValidFail(errors.New("invalid json field http_server.store.image_dir, path cannot be empty"))
	}
	if config.ImageMaxSize <= 0 {
		return ValidFail(errors.New("invalid json field http_server.store.image_max_size, value must larger than 0"))
	}
	if len(config.AllowedImageExts) == 0 {
		return ValidFail(errors.New("invalid json field http_server.store.allowed_image_exts, at least one extension required"))
	}
	for i, ext := range config.AllowedImageExts {
		config.AllowedImageExts[i] = strings.ToLower(ext)
	}

	imagePath := filepath.Join(filepath.Clean(config.LocalStorePath), config.ImageDir)
	if err := os.MkdirAll(imagePath, 0755); err != nil {
		return ValidFailWith(fmt.Errorf("error while creating local store path(%s)", imagePath), err)
	}

	switch config.StoreType {
	case 0:
		// 本地存储
		// 不用任何额外操作, 仅占位使用
	case 1, 2:
		// 阿里云OSS存储或者腾讯云对象存储
		if config.Region == "" {
			return ValidFail(errors.New("invalid json field http_server.store.region, region cannot be empty"))
		}
		if config.Bucket == "" {
			return ValidFail(errors.New("invalid json field http_server.store.bucket, bucket cannot be empty"))
		}
		if config.AccessId == "" {
			return ValidFail(errors.New("invalid json field http_server.store.access_id, access_id cannot be empty"))
		}
		if config.AccessKey == "" {
			return ValidFail(errors.New("invalid json field http_server.store.access_key, access_key cannot be empty"))
		}
	default:
		return ValidFail(fmt.Errorf("invalid json field http_server.store.store_type %d, only support 0, 1, 2", config.StoreType))
	}
	return ValidPass()
}

func (config *HttpServerStore) ExtAllowed(ext string) bool {
	return slices.Contains(config.AllowedImageExts, strings.ToLower(ext))
}
