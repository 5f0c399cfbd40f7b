// Package config
package config

import (
	"errors"
	"time"

	"github.com/flightlog-collective/skylog/internal/interfaces/log"
)

type WeatherConfig struct {
	Enabled       bool          `json:"enabled"`
	BaseUrl       string        `json:"base_url"`
	ApiToken      string        `json:"api_token"`
	CacheTime     string        `json:"cache_time"`
	CacheDuration time.Duration `json:"-"`
}

func defaultWeatherConfig() *WeatherConfig {
	return &WeatherConfig{
		Enabled:   false,
		BaseUrl:   "https://avwx.rest/api",
		ApiToken:  "",
		CacheTime: "10m",
	}
}

func (config *WeatherConfig) checkValid(logger log.LoggerInterface) *ValidResult {
	if duration, err := time.ParseDuration(config.CacheTime); err != nil {
		return ValidFailWith(errors.New("invalid json field http_server.weather.cache_time"), err)
	} else {
		config.CacheDuration = duration
	}

	if config.Enabled && config.ApiToken == "" {
		logger.Warn("Weather api token is empty, metar lookups will return mock reports")
	}

	return ValidPass()
}
