// Package interfaces
package interfaces

import (
	. "github.com/flightlog-collective/skylog/internal/interfaces/config"
)

type ConfigManagerInterface interface {
	Config() *Config
	SaveConfig() error
}
