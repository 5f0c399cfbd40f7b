// Package service
package service

import (
	"time"

	"github.com/flightlog-collective/skylog/internal/interfaces/operation"
)

type UserServiceInterface interface {
	GetCurrentProfile(req *RequestCurrentProfile) *ApiResponse[ResponseCurrentProfile]
	EditCurrentProfile(req *RequestEditCurrentProfile) *ApiResponse[ResponseEditCurrentProfile]
	SyncCurrentUser(req *RequestUserSync) *ApiResponse[ResponseUserSync]
}

type RequestCurrentProfile struct {
	JwtHeader
}

type ResponseCurrentProfile struct {
	User         *operation.User `json:"user"`
	TotalFlights int64           `json:"total_flights"`
	TotalHours   float64         `json:"total_hours"`
}

type RequestEditCurrentProfile struct {
	JwtHeader
	FirstName     *string    `json:"first_name"`
	LastName      *string    `json:"last_name"`
	LicenseNumber *string    `json:"license_number"`
	LicenseExpiry *time.Time `json:"license_expiry"`
}

type ResponseEditCurrentProfile operation.User

type RequestUserSync struct {
	JwtHeader
}

type ResponseUserSync struct {
	User    *operation.User `json:"user"`
	Created bool            `json:"created"`
}
