// Package service
package service

import (
	"encoding/json"

	"github.com/flightlog-collective/skylog/internal/interfaces/log"
	"github.com/flightlog-collective/skylog/internal/interfaces/operation"
	. "github.com/flightlog-collective/skylog/internal/interfaces/service"
)

// 单页审计日志数量上限
const maxAuditPageSize = 500

type AuditLogService struct {
	logger         log.LoggerInterface
	auditOperation operation.AuditLogOperationInterface
	userOperation  operation.UserOperationInterface
}

func NewAuditService(
	logger log.LoggerInterface,
	auditOperation operation.AuditLogOperationInterface,
	userOperation operation.UserOperationInterface,
) *AuditLogService {
	return &AuditLogService{
		logger:         logger,
		auditOperation: auditOperation,
		userOperation:  userOperation,
	}
}

var SuccessGetAuditLog = ApiStatus{StatusName: "GET_AUDIT_LOG", Description: "audit logs fetched", HttpCode: Ok}

func encodeValues(value any) string {
	if value == nil {
		return ""
	}
	data, err := json.Marshal(value)
	if err != nil {
		return ""
	}
	return string(data)
}

// Record 写入审计日志, 任何失败都只记录日志, 绝不影响主流程
func (auditLogService *AuditLogService) Record(eventType operation.EventType, actor, entityType, entityId, ip, userAgent string, oldValues, newValues any) {
	defer func() {
		if r := recover(); r != nil {
			auditLogService.logger.ErrorF("Audit record panic: %v", r)
		}
	}()

	old := encodeValues(oldValues)
	next := encodeValues(newValues)
	auditLog := auditLogService.auditOperation.NewAuditLog(eventType, actor, entityType, entityId, ip, userAgent, old, next, "")
	if err := auditLogService.auditOperation.SaveAuditLog(auditLog); err != nil {
		auditLogService.logger.ErrorF("Failed to save audit log %s/%s: %v", entityType, entityId, err)
	}
}

func (auditLogService *AuditLogService) GetAuditLogPage(req *RequestGetAuditLog) *ApiResponse[ResponseGetAuditLog] {
	if _, res := GetUserAndCheckRole[ResponseGetAuditLog](auditLogService.userOperation, req.Uid, operation.RoleAdmin); res != nil {
		return res
	}
	if req.Page <= 0 || req.PageSize <= 0 {
		return NewApiResponse[ResponseGetAuditLog](&ErrIllegalParam, Unsatisfied, nil)
	}
	if req.PageSize > maxAuditPageSize {
		req.PageSize = maxAuditPageSize
	}
	query := &operation.AuditLogQuery{
		Action:     operation.EventType(req.Action),
		EntityType: req.EntityType,
		EntityId:   req.EntityId,
		Actor:      req.Actor,
	}
	if req.From != "" {
		if date, ok := parseFlightDate(req.From); ok {
			query.From = &date
		} else {
			return NewApiResponse[ResponseGetAuditLog](&ErrIllegalParam, Unsatisfied, nil)
		}
	}
	if req.To != "" {
		if date, ok := parseFlightDate(req.To); ok {
			query.To = &date
		} else {
			return NewApiResponse[ResponseGetAuditLog](&ErrIllegalParam, Unsatisfied, nil)
		}
	}
	auditLogs, total, err := auditLogService.auditOperation.GetAuditLogs(query, req.Page, req.PageSize)
	if err != nil {
		return NewApiResponse[ResponseGetAuditLog](&ErrDatabaseFail, Unsatisfied, nil)
	}
	return NewApiResponse(&SuccessGetAuditLog, Unsatisfied, &ResponseGetAuditLog{
		Items:    auditLogs,
		Page:     req.Page,
		PageSize: req.PageSize,
		Total:    total,
	})
}
