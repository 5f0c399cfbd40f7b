// Package interfaces
package interfaces

import (
	"github.com/flightlog-collective/skylog/internal/interfaces/global"
)

type CleanerInterface interface {
	Init()
	Add(callable global.Callable)
	Clean()
}
