// Package operation
package operation

import (
	"errors"
	"time"
)

var (
	// ErrFlightNotFound 飞行记录不存在或不属于该用户
	ErrFlightNotFound = errors.New("flight does not exist")
)

// FlightTimeFilter 飞行时间筛选
type FlightTimeFilter string

const (
	FilterAll  FlightTimeFilter = "ALL"
	FilterPic  FlightTimeFilter = "PIC"
	FilterDual FlightTimeFilter = "DUAL"
	FilterSolo FlightTimeFilter = "SOLO"
)

// FlightQuery 飞行记录查询条件
type FlightQuery struct {
	AircraftId string
	// Search 模糊匹配起降机场代码和备注
	Search     string
	From       *time.Time
	To         *time.Time
	TimeFilter FlightTimeFilter
}

// FlightOperationInterface 飞行记录操作接口定义
// 所有查询都以userId为范围, 不属于该用户的记录视为不存在
type FlightOperationInterface interface {
	GetFlightById(userId, flightId string) (flight *Flight, err error)
	// GetFlights 按查询条件获取飞行记录, 按日期倒序
	GetFlights(userId string, query *FlightQuery) (flights []*Flight, err error)
	// GetRecentFlights 获取最近的飞行记录, 按日期倒序
	GetRecentFlights(userId string, limit int) (flights []*Flight, err error)
	// GetFlightsByAircraft 获取某航空器的全部飞行记录
	GetFlightsByAircraft(userId, aircraftId string) (flights []*Flight, err error)
	// GetFlightAircraft 获取该用户飞行记录引用过的航空器, 去重
	GetFlightAircraft(userId string) (aircraft []*Aircraft, err error)
	AddFlight(flight *Flight) (err error)
	UpdateFlightInfo(flight *Flight, info map[string]interface{}) (err error)
	DeleteFlight(flight *Flight) (err error)
	GetTotalFlights() (total int64, err error)
}
