// Package operation
package operation

import "errors"

var (
	// ErrPreferencesNotFound 用户偏好不存在
	ErrPreferencesNotFound = errors.New("preferences do not exist")
)

type PreferencesOperationInterface interface {
	GetPreferencesByUserId(userId string) (preferences *Preferences, err error)
	SavePreferences(preferences *Preferences) (err error)
	UpdatePreferencesInfo(preferences *Preferences, info map[string]interface{}) (err error)
}
