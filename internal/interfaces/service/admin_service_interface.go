// Package service
package service

import "github.com/flightlog-collective/skylog/internal/interfaces/operation"

type AdminServiceInterface interface {
	GetAdminStats(req *RequestAdminStats) *ApiResponse[ResponseAdminStats]
	GetRecentUsers(req *RequestRecentUsers) *ApiResponse[ResponseRecentUsers]
	GetUserList(req *RequestAdminUserList) *ApiResponse[ResponseAdminUserList]
	VerifyPilot(req *RequestVerifyPilot) *ApiResponse[ResponseVerifyPilot]
	EditUserRole(req *RequestEditUserRole) *ApiResponse[ResponseEditUserRole]
	DeleteUser(req *RequestDeleteUser) *ApiResponse[ResponseDeleteUser]
	GetSecurityEvents(req *RequestSecurityEvents) *ApiResponse[ResponseSecurityEvents]
}

type RequestAdminStats struct {
	JwtHeader
}

type ResponseAdminStats struct {
	TotalUsers    int64 `json:"total_users"`
	TotalPilots   int64 `json:"total_pilots"`
	TotalAircraft int64 `json:"total_aircraft"`
	TotalFlights  int64 `json:"total_flights"`
}

type RequestRecentUsers struct {
	JwtHeader
}

type ResponseRecentUsers struct {
	Items []*operation.User `json:"items"`
}

type RequestAdminUserList struct {
	JwtHeader
	Page     int `query:"page_number"`
	PageSize int `query:"page_size"`
}

type ResponseAdminUserList struct {
	Items    []*operation.User `json:"items"`
	Page     int               `json:"page"`
	PageSize int               `json:"page_size"`
	Total    int64             `json:"total"`
}

type RequestVerifyPilot struct {
	JwtHeader
	TargetUid string `param:"uid"`
	Verified  bool   `json:"verified"`
}

type ResponseVerifyPilot operation.User

type RequestEditUserRole struct {
	JwtHeader
	TargetUid string `param:"uid"`
	Role      string `json:"role"`
}

type ResponseEditUserRole operation.User

type RequestDeleteUser struct {
	JwtHeader
	TargetUid string `param:"uid"`
}

type ResponseDeleteUser struct {
	Deleted bool `json:"deleted"`
}

// SecurityEvent 可疑请求载荷的记录
type SecurityEvent struct {
	Time     string   `json:"time"`
	Ip       string   `json:"ip"`
	Path     string   `json:"path"`
	Size     int      `json:"size"`
	Findings []string `json:"findings"`
}

type RequestSecurityEvents struct {
	JwtHeader
	Limit int `query:"limit"`
}

type ResponseSecurityEvents struct {
	Items []*SecurityEvent `json:"items"`
}
