// Package operation
package operation

import "errors"

var (
	// ErrAircraftNotFound 航空器不存在或不属于该用户
	ErrAircraftNotFound = errors.New("aircraft does not exist")
	// ErrRegistrationTaken 注册号在该用户名下已存在
	ErrRegistrationTaken = errors.New("registration already in use")
	// ErrAircraftInUse 航空器仍有关联飞行记录
	ErrAircraftInUse = errors.New("aircraft has flights attached")
)

// AircraftOperationInterface 航空器操作接口定义
// 所有查询都以userId为范围, 不属于该用户的记录视为不存在
type AircraftOperationInterface interface {
	GetAircraftById(userId, aircraftId string) (aircraft *Aircraft, err error)
	GetAircraftByRegistration(userId, registration string) (aircraft *Aircraft, err error)
	// GetAircraftList 获取用户的航空器, includeArchived为false时过滤已归档的
	GetAircraftList(userId string, includeArchived bool) (aircraft []*Aircraft, err error)
	AddAircraft(aircraft *Aircraft) (err error)
	UpdateAircraftInfo(aircraft *Aircraft, info map[string]interface{}) (err error)
	// ArchiveAircraft 归档航空器, 软删除
	ArchiveAircraft(aircraft *Aircraft) (err error)
	// RestoreAircraft 恢复已归档的航空器
	RestoreAircraft(aircraft *Aircraft) (err error)
	// DeleteAircraft 永久删除航空器, 存在关联飞行记录时返回 ErrAircraftInUse
	DeleteAircraft(aircraft *Aircraft) (err error)
	// CountFlights 统计该航空器的飞行记录数
	CountFlights(aircraftId string) (total int64, err error)
	GetTotalAircraft() (total int64, err error)
}
