// Package operation
package operation

import "errors"

var (
	// ErrUserNotFound 用户不存在
	ErrUserNotFound = errors.New("user does not exist")
	// ErrUserDuplicate 唯一性约束冲突
	ErrUserDuplicate = errors.New("user identifiers have been used")
)

// UserOperationInterface 用户操作接口定义
type UserOperationInterface interface {
	// GetUserByUid 通过主键ID获取用户, 当err为nil时返回值user有效
	GetUserByUid(uid string) (user *User, err error)
	// GetUserByProviderId 通过身份提供商ID获取用户, 当err为nil时返回值user有效
	GetUserByProviderId(providerId string) (user *User, err error)
	// GetUserByEmail 通过邮箱获取用户, 当err为nil时返回值user有效
	GetUserByEmail(email string) (user *User, err error)
	// GetUsers 获取分页用户数据, 当err为nil时返回值users有效, total表示数据总数目
	GetUsers(page, pageSize int) (users []*User, total int64, err error)
	// GetRecentUsers 获取最近注册的用户
	GetRecentUsers(limit int) (users []*User, err error)
	// AddUser 创建一个新用户(写入数据库), 当err为nil时表示创建成功
	AddUser(user *User) (err error)
	// UpdateUserRole 更新用户角色, 当err为nil时表示更新成功
	UpdateUserRole(user *User, role Role) (err error)
	// UpdateUserInfo 批量更新用户信息, 当err为nil时表示更新成功
	UpdateUserInfo(user *User, info map[string]interface{}) (err error)
	// SaveUser 保存用户数据, 强制整个用户结构体到数据库, 谨慎使用, 当err为nil时表示更新成功
	SaveUser(user *User) (err error)
	// DeleteUser 删除用户及其关联数据, 当err为nil时表示删除成功
	DeleteUser(user *User) (err error)
	// DeleteUserByProviderId 通过身份提供商ID删除用户, 用户不存在时不视为错误
	DeleteUserByProviderId(providerId string) (err error)
	GetTotalUsers() (total int64, err error)
	GetTotalPilots() (total int64, err error)
}
