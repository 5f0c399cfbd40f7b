package database

import (
	"context"
	"errors"
	"time"

	. "github.com/flightlog-collective/skylog/internal/interfaces/operation"
	"gorm.io/gorm"
)

type UserOperation struct {
	db           *gorm.DB
	queryTimeout time.Duration
}

func NewUserOperation(db *gorm.DB, queryTimeout time.Duration) *UserOperation {
	return &UserOperation{db: db, queryTimeout: queryTimeout}
}

func (userOperation *UserOperation) GetUserByUid(uid string) (user *User, err error) {
	user = &User{}
	ctx, cancel := context.WithTimeout(context.Background(), userOperation.queryTimeout)
	defer cancel()
	err = userOperation.db.WithContext(ctx).
		Where("id = ?", uid).
		First(user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		err = ErrUserNotFound
	}
	return
}

func (userOperation *UserOperation) GetUserByProviderId(providerId string) (user *User, err error) {
	user = &User{}
	ctx, cancel := context.WithTimeout(context.Background(), userOperation.queryTimeout)
	defer cancel()
	err = userOperation.db.WithContext(ctx).
		Where("provider_id = ?", providerId).
		First(user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		err = ErrUserNotFound
	}
	return
}

func (userOperation *UserOperation) GetUserByEmail(email string) (user *User, err error) {
	user = &User{}
	ctx, cancel := context.WithTimeout(context.Background(), userOperation.queryTimeout)
	defer cancel()
	err = userOperation.db.WithContext(ctx).
		Where("email = ?", email).
		First(user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		err = ErrUserNotFound
	}
	return
}

func (userOperation *UserOperation) GetUsers(page, pageSize int) (users []*User, total int64, err error) {
	users = make([]*User, 0, pageSize)
	ctx, cancel := context.WithTimeout(context.Background(), userOperation.queryTimeout)
	defer cancel()
	userOperation.db.WithContext(ctx).Model(&User{}).Select("id").Count(&total)
	err = userOperation.db.WithContext(ctx).
		Offset((page - 1) * pageSize).
		Order("created_at desc").
		Limit(pageSize).
		Find(&users).Error
	return
}

func (userOperation *UserOperation) GetRecentUsers(limit int) (users []*User, err error) {
	users = make([]*User, 0, limit)
	ctx, cancel := context.WithTimeout(context.Background(), userOperation.queryTimeout)
	defer cancel()
	err = userOperation.db.WithContext(ctx).
		Order("created_at desc").
		Limit(limit).
		Find(&users).Error
	return
}

func (userOperation *UserOperation) AddUser(user *User) (err error) {
	ctx, cancel := context.WithTimeout(context.Background(), userOperation.queryTimeout)
	defer cancel()
	err = userOperation.db.WithContext(ctx).Create(user).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		err = ErrUserDuplicate
	}
	return
}

func (userOperation *UserOperation) UpdateUserRole(user *User, role Role) (err error) {
	ctx, cancel := context.WithTimeout(context.Background(), userOperation.queryTimeout)
	defer cancel()
	err = userOperation.db.WithContext(ctx).
		Model(user).
		Update("role", role).Error
	return
}

func (userOperation *UserOperation) UpdateUserInfo(user *User, info map[string]interface{}) (err error) {
	ctx, cancel := context.WithTimeout(context.Background(), userOperation.queryTimeout)
	defer cancel()
	err = userOperation.db.WithContext(ctx).
		Model(user).
		Updates(info).Error
	return
}

func (userOperation *UserOperation) SaveUser(user *User) (err error) {
	ctx, cancel := context.WithTimeout(context.Background(), userOperation.queryTimeout)
	defer cancel()
	return userOperation.db.WithContext(ctx).Save(user).Error
}

func (userOperation *UserOperation) DeleteUser(user *User) (err error) {
	ctx, cancel := context.WithTimeout(context.Background(), userOperation.queryTimeout)
	defer cancel()
	return userOperation.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", user.ID).Delete(&Flight{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", user.ID).Delete(&Aircraft{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", user.ID).Delete(&Preferences{}).Error; err != nil {
			return err
		}
		return tx.Delete(user).Error
	})
}

func (userOperation *UserOperation) DeleteUserByProviderId(providerId string) (err error) {
	user, err := userOperation.GetUserByProviderId(providerId)
	if errors.Is(err, ErrUserNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	return userOperation.DeleteUser(user)
}

func (userOperation *UserOperation) GetTotalUsers() (total int64, err error) {
	ctx, cancel := context.WithTimeout(context.Background(), userOperation.queryTimeout)
	defer cancel()
	err = userOperation.db.WithContext(ctx).Model(&User{}).Select("id").Count(&total).Error
	return
}

func (userOperation *UserOperation) GetTotalPilots() (total int64, err error) {
	ctx, cancel := context.WithTimeout(context.Background(), userOperation.queryTimeout)
	defer cancel()
	err = userOperation.db.WithContext(ctx).Model(&User{}).
		Where("role IN ?", []Role{RolePilot, RoleAdmin}).
		Select("id").Count(&total).Error
	return
}
