// Package database
package database

import (
	"context"
	"errors"
	"time"

	. "github.com/flightlog-collective/skylog/internal/interfaces/operation"
	"gorm.io/gorm"
)

type PreferencesOperation struct {
	db           *gorm.DB
	queryTimeout time.Duration
}

func NewPreferencesOperation(db *gorm.DB, queryTimeout time.Duration) *PreferencesOperation {
	return &PreferencesOperation{db: db, queryTimeout: queryTimeout}
}

func (preferencesOperation *PreferencesOperation) GetPreferencesByUserId(userId string) (preferences *Preferences, err error) {
	preferences = &Preferences{}
	ctx, cancel := context.WithTimeout(context.Background(), preferencesOperation.queryTimeout)
	defer cancel()
	err = preferencesOperation.db.WithContext(ctx).
		Where("user_id = ?", userId).
		First(preferences).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		err = ErrPreferencesNotFound
	}
	return
}

func (preferencesOperation *PreferencesOperation) SavePreferences(preferences *Preferences) (err error) {
	ctx, cancel := context.WithTimeout(context.Background(), preferencesOperation.queryTimeout)
	defer cancel()
	return preferencesOperation.db.WithContext(ctx).Save(preferences).Error
}

func (preferencesOperation *PreferencesOperation) UpdatePreferencesInfo(preferences *Preferences, info map[string]interface{}) (err error) {
	ctx, cancel := context.WithTimeout(context.Background(), preferencesOperation.queryTimeout)
	defer cancel()
	return preferencesOperation.db.WithContext(ctx).
		Model(preferences).
		Updates(info).Error
}
