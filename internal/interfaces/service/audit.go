// Package service
package service

import "github.com/flightlog-collective/skylog/internal/interfaces/operation"

type AuditServiceInterface interface {
	// Record 写入审计日志, 失败只记录日志不影响主流程
	Record(eventType operation.EventType, actor, entityType, entityId, ip, userAgent string, oldValues, newValues any)
	GetAuditLogPage(req *RequestGetAuditLog) *ApiResponse[ResponseGetAuditLog]
}

type RequestGetAuditLog struct {
	JwtHeader
	Page       int    `query:"page_number"`
	PageSize   int    `query:"page_size"`
	Action     string `query:"action"`
	EntityType string `query:"entity_type"`
	EntityId   string `query:"entity_id"`
	Actor      string `query:"actor"`
	From       string `query:"from"`
	To         string `query:"to"`
}

type ResponseGetAuditLog struct {
	Items    []*operation.AuditLog `json:"items"`
	Page     int                   `json:"page"`
	PageSize int                   `json:"page_size"`
	Total    int64                 `json:"total"`
}
