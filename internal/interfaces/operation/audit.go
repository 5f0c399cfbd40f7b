// Package operation
package operation

import "time"

type EventType string

const (
	EntityCreated   EventType = "CREATE"
	EntityUpdated   EventType = "UPDATE"
	EntityDeleted   EventType = "DELETE"
	EntityRestored  EventType = "RESTORE"
	UserRoleChanged EventType = "ROLE_CHANGE"
	PilotVerified   EventType = "VERIFY"
	PilotUnverified EventType = "UNVERIFY"
)

// AuditLogQuery 审计日志查询条件, 零值字段不参与过滤
type AuditLogQuery struct {
	Action     EventType
	EntityType string
	EntityId   string
	Actor      string
	From       *time.Time
	To         *time.Time
}

type AuditLogOperationInterface interface {
	NewAuditLog(eventType EventType, actor, entityType, entityId, ip, userAgent string, oldValues, newValues, changes string) (auditLog *AuditLog)
	SaveAuditLog(auditLog *AuditLog) (err error)
	SaveAuditLogs(auditLogs []*AuditLog) (err error)
	// GetAuditLogs 按条件获取分页审计日志, 按时间倒序
	GetAuditLogs(query *AuditLogQuery, page, pageSize int) (auditLogs []*AuditLog, total int64, err error)
}
