// Package config
package config

import (
	"errors"
	"net/url"
	"os"
	"time"

	"github.com/flightlog-collective/skylog/internal/interfaces/global"
	"github.com/flightlog-collective/skylog/internal/interfaces/log"
	"github.com/flightlog-collective/skylog/internal/utils"
)

// IdentityConfig 外部身份提供商配置
// 管理员白名单从环境变量读取, 不写入配置文件
type IdentityConfig struct {
	BaseUrl          string        `json:"base_url"`
	ApiToken         string        `json:"api_token"`
	WebhookSecret    string        `json:"webhook_secret"`
	RequestTimeout   string        `json:"request_timeout"`
	RequestDuration  time.Duration `json:"-"`
	AdminProviderIds []string      `json:"-"`
	AdminEmails      []string      `json:"-"`
}

func defaultIdentityConfig() *IdentityConfig {
	return &IdentityConfig{
		BaseUrl:        "https://api.clerk.com/v1",
		ApiToken:       "",
		WebhookSecret:  "",
		RequestTimeout: "5s",
	}
}

func (config *IdentityConfig) checkValid(logger log.LoggerInterface) *ValidResult {
	if token := os.Getenv(global.EnvIdentityApiToken); token != "" {
		config.ApiToken = token
	}
	if secret := os.Getenv(global.EnvIdentityWebhookSecret); secret != "" {
		config.WebhookSecret = secret
	}

	if config.BaseUrl == "" {
		return ValidFail(errors.New("invalid json field http_server.identity.base_url, url cannot be empty"))
	}
	if _, err := url.Parse(config.BaseUrl); err != nil {
		return ValidFailWith(errors.New("invalid json field http_server.identity.base_url"), err)
	}

	if duration, err := time.ParseDuration(config.RequestTimeout); err != nil {
		return ValidFailWith(errors.New("invalid json field http_server.identity.request_timeout"), err)
	} else {
		config.RequestDuration = duration
	}

	config.AdminProviderIds = utils.SplitList(os.Getenv(global.EnvAdminProviderIds))
	config.AdminEmails = utils.SplitList(os.Getenv(global.EnvAdminEmails))

	if config.ApiToken == "" {
		logger.Warn("Identity api token is empty, profile sync to the provider will be skipped")
	}
	if config.WebhookSecret == "" {
		logger.Warn("Identity webhook secret is empty, webhook endpoint will reject all deliveries")
	}

	return ValidPass()
}
