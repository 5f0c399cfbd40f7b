// Package database
package database

import (
	"context"
	"errors"
	"time"

	. "github.com/flightlog-collective/skylog/internal/interfaces/operation"
	"gorm.io/gorm"
)

type FlightOperation struct {
	db           *gorm.DB
	queryTimeout time.Duration
}

func NewFlightOperation(db *gorm.DB, queryTimeout time.Duration) *FlightOperation {
	return &FlightOperation{db: db, queryTimeout: queryTimeout}
}

func (flightOperation *FlightOperation) GetFlightById(userId, flightId string) (flight *Flight, err error) {
	flight = &Flight{}
	ctx, cancel := context.WithTimeout(context.Background(), flightOperation.queryTimeout)
	defer cancel()
	// 其他用户的记录与不存在的记录返回同一个错误
	err = flightOperation.db.WithContext(ctx).
		Preload("Aircraft").
		Where("id = ? AND user_id = ?", flightId, userId).
		First(flight).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		err = ErrFlightNotFound
	}
	return
}

func (flightOperation *FlightOperation) GetFlights(userId string, query *FlightQuery) (flights []*Flight, err error) {
	flights = make([]*Flight, 0)
	ctx, cancel := context.WithTimeout(context.Background(), flightOperation.queryTimeout)
	defer cancel()
	tx := flightOperation.db.WithContext(ctx).
		Preload("Aircraft").
		Where("user_id = ?", userId)
	if query != nil {
		if query.AircraftId != "" {
			tx = tx.Where("aircraft_id = ?", query.AircraftId)
		}
		if query.Search != "" {
			pattern := "%" + query.Search + "%"
			tx = tx.Where("departure_code LIKE ? OR arrival_code LIKE ? OR remarks LIKE ?", pattern, pattern, pattern)
		}
		if query.From != nil {
			tx = tx.Where("date >= ?", *query.From)
		}
		if query.To != nil {
			tx = tx.Where("date <= ?", *query.To)
		}
		switch query.TimeFilter {
		case FilterPic:
			tx = tx.Where("pic_time > 0")
		case FilterDual:
			tx = tx.Where("dual_time > 0")
		case FilterSolo:
			tx = tx.Where("pic_time > 0 AND dual_time = 0")
		}
	}
	err = tx.Order("date desc").Find(&flights).Error
	return
}

func (flightOperation *FlightOperation) GetRecentFlights(userId string, limit int) (flights []*Flight, err error) {
	flights = make([]*Flight, 0, limit)
	ctx, cancel := context.WithTimeout(context.Background(), flightOperation.queryTimeout)
	defer cancel()
	err = flightOperation.db.WithContext(ctx).
		Preload("Aircraft").
		Where("user_id = ?", userId).
		Order("date desc").
		Limit(limit).
		Find(&flights).Error
	return
}

func (flightOperation *FlightOperation) GetFlightsByAircraft(userId, aircraftId string) (flights []*Flight, err error) {
	flights = make([]*Flight, 0)
	ctx, cancel := context.WithTimeout(context.Background(), flightOperation.queryTimeout)
	defer cancel()
	err = flightOperation.db.WithContext(ctx).
		Where("user_id = ? AND aircraft_id = ?", userId, aircraftId).
		Order("date desc").
		Find(&flights).Error
	return
}

func (flightOperation *FlightOperation) GetFlightAircraft(userId string) (aircraft []*Aircraft, err error) {
	aircraft = make([]*Aircraft, 0)
	ctx, cancel := context.WithTimeout(context.Background(), flightOperation.queryTimeout)
	defer cancel()
	subQuery := flightOperation.db.Model(&Flight{}).
		Distinct("aircraft_id").
		Where("user_id = ?", userId)
	err = flightOperation.db.WithContext(ctx).
		Where("id IN (?)", subQuery).
		Order("created_at desc").
		Find(&aircraft).Error
	return
}

func (flightOperation *FlightOperation) AddFlight(flight *Flight) (err error) {
	ctx, cancel := context.WithTimeout(context.Background(), flightOperation.queryTimeout)
	defer cancel()
	return flightOperation.db.WithContext(ctx).Create(flight).Error
}

func (flightOperation *FlightOperation) UpdateFlightInfo(flight *Flight, info map[string]interface{}) (err error) {
	ctx, cancel := context.WithTimeout(context.Background(), flightOperation.queryTimeout)
	defer cancel()
	return flightOperation.db.WithContext(ctx).
		Model(flight).
		Updates(info).Error
}

func (flightOperation *FlightOperation) DeleteFlight(flight *Flight) (err error) {
	ctx, cancel := context.WithTimeout(context.Background(), flightOperation.queryTimeout)
	defer cancel()
	return flightOperation.db.WithContext(ctx).Delete(flight).Error
}

func (flightOperation *FlightOperation) GetTotalFlights() (total int64, err error) {
	ctx, cancel := context.WithTimeout(context.Background(), flightOperation.queryTimeout)
	defer cancel()
	err = flightOperation.db.WithContext(ctx).Model(&Flight{}).Select("id").Count(&total).Error
	return
}
