// Package config
package config

import (
	"errors"
	"os"
	"time"

	"github.com/flightlog-collective/skylog/internal/interfaces/global"
	"github.com/flightlog-collective/skylog/internal/interfaces/log"
	"github.com/thanhpk/randstr"
)

type JWTConfig struct {
	Secret          string        `json:"secret"`
	ExpiresTime     string        `json:"expires_time"`
	ExpiresDuration time.Duration `json:"-"`
	RefreshTime     string        `json:"refresh_time"`
	RefreshDuration time.Duration `json:"-"`
}

func defaultJWTConfig() *JWTConfig {
	return &JWTConfig{
		Secret:      randstr.String(64),
		ExpiresTime: "15m",
		RefreshTime: "24h",
	}
}

func (config *JWTConfig) checkValid(logger log.LoggerInterface) *ValidResult {
	if duration, err := time.ParseDuration(config.ExpiresTime); err != nil {
		return ValidFailWith(errors.New("invalid json field http_server.jwt.expires_time"), err)
	} else {
		config.ExpiresDuration = duration
	}

	if duration, err := time.ParseDuration(config.RefreshTime); err != nil {
		return ValidFailWith(errors.New("invalid json field http_server.jwt.refresh_time"), err)
	} else {
		config.RefreshDuration = duration
	}

	if secret := os.Getenv(global.EnvSessionJwtSecret); secret != "" {
		config.Secret = secret
	}

	if config.Secret == "" {
		config.Secret = randstr.String(64)
		logger.DebugF("Generate random JWT Secret: %s", config.Secret)
	}

	return ValidPass()
}
