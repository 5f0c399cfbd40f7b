// Package database
package database

import (
	"context"
	"errors"
	"time"

	. "github.com/flightlog-collective/skylog/internal/interfaces/operation"
	"gorm.io/gorm"
)

type AircraftOperation struct {
	db           *gorm.DB
	queryTimeout time.Duration
}

func NewAircraftOperation(db *gorm.DB, queryTimeout time.Duration) *AircraftOperation {
	return &AircraftOperation{db: db, queryTimeout: queryTimeout}
}

func (aircraftOperation *AircraftOperation) GetAircraftById(userId, aircraftId string) (aircraft *Aircraft, err error) {
	aircraft = &Aircraft{}
	ctx, cancel := context.WithTimeout(context.Background(), aircraftOperation.queryTimeout)
	defer cancel()
	// 其他用户的记录与不存在的记录返回同一个错误
	err = aircraftOperation.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", aircraftId, userId).
		First(aircraft).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		err = ErrAircraftNotFound
	}
	return
}

func (aircraftOperation *AircraftOperation) GetAircraftByRegistration(userId, registration string) (aircraft *Aircraft, err error) {
	aircraft = &Aircraft{}
	ctx, cancel := context.WithTimeout(context.Background(), aircraftOperation.queryTimeout)
	defer cancel()
	err = aircraftOperation.db.WithContext(ctx).
		Where("user_id = ? AND registration = ?", userId, registration).
		First(aircraft).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		err = ErrAircraftNotFound
	}
	return
}

func (aircraftOperation *AircraftOperation) GetAircraftList(userId string, includeArchived bool) (aircraft []*Aircraft, err error) {
	aircraft = make([]*Aircraft, 0)
	ctx, cancel := context.WithTimeout(context.Background(), aircraftOperation.queryTimeout)
	defer cancel()
	tx := aircraftOperation.db.WithContext(ctx).Where("user_id = ?", userId)
	if !includeArchived {
		tx = tx.Where("is_archived = ?", false)
	}
	err = tx.Order("created_at desc").Find(&aircraft).Error
	return
}

func (aircraftOperation *AircraftOperation) AddAircraft(aircraft *Aircraft) (err error) {
	ctx, cancel := context.WithTimeout(context.Background(), aircraftOperation.queryTimeout)
	defer cancel()
	err = aircraftOperation.db.WithContext(ctx).Create(aircraft).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		err = ErrRegistrationTaken
	}
	return
}

func (aircraftOperation *AircraftOperation) UpdateAircraftInfo(aircraft *Aircraft, info map[string]interface{}) (err error) {
	ctx, cancel := context.WithTimeout(context.Background(), aircraftOperation.queryTimeout)
	defer cancel()
	err = aircraftOperation.db.WithContext(ctx).
		Model(aircraft).
		Updates(info).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		err = ErrRegistrationTaken
	}
	return
}

func (aircraftOperation *AircraftOperation) ArchiveAircraft(aircraft *Aircraft) (err error) {
	ctx, cancel := context.WithTimeout(context.Background(), aircraftOperation.queryTimeout)
	defer cancel()
	return aircraftOperation.db.WithContext(ctx).
		Model(aircraft).
		Update("is_archived", true).Error
}

func (aircraftOperation *AircraftOperation) RestoreAircraft(aircraft *Aircraft) (err error) {
	ctx, cancel := context.WithTimeout(context.Background(), aircraftOperation.queryTimeout)
	defer cancel()
	return aircraftOperation.db.WithContext(ctx).
		Model(aircraft).
		Update("is_archived", false).Error
}

func (aircraftOperation *AircraftOperation) DeleteAircraft(aircraft *Aircraft) (err error) {
	total, err := aircraftOperation.CountFlights(aircraft.ID)
	if err != nil {
		return err
	}
	if total > 0 {
		return ErrAircraftInUse
	}
	ctx, cancel := context.WithTimeout(context.Background(), aircraftOperation.queryTimeout)
	defer cancel()
	return aircraftOperation.db.WithContext(ctx).Delete(aircraft).Error
}

func (aircraftOperation *AircraftOperation) CountFlights(aircraftId string) (total int64, err error) {
	ctx, cancel := context.WithTimeout(context.Background(), aircraftOperation.queryTimeout)
	defer cancel()
	err = aircraftOperation.db.WithContext(ctx).Model(&Flight{}).
		Where("aircraft_id = ?", aircraftId).
		Select("id").Count(&total).Error
	return
}

func (aircraftOperation *AircraftOperation) GetTotalAircraft() (total int64, err error) {
	ctx, cancel := context.WithTimeout(context.Background(), aircraftOperation.queryTimeout)
	defer cancel()
	err = aircraftOperation.db.WithContext(ctx).Model(&Aircraft{}).Count(&total).Error
	return
}
