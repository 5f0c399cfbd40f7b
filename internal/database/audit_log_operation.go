// Package database
package database

import (
	"context"
	"time"

	. "github.com/flightlog-collective/skylog/internal/interfaces/operation"
	"gorm.io/gorm"
)

type AuditLogOperation struct {
	db           *gorm.DB
	queryTimeout time.Duration
}

func NewAuditLogOperation(db *gorm.DB, queryTimeout time.Duration) *AuditLogOperation {
	return &AuditLogOperation{db: db, queryTimeout: queryTimeout}
}

func (auditLogOperation *AuditLogOperation) NewAuditLog(eventType EventType, actor, entityType, entityId, ip, userAgent string, oldValues, newValues, changes string) (auditLog *AuditLog) {
	return &AuditLog{
		Actor:      actor,
		Action:     eventType,
		EntityType: entityType,
		EntityId:   entityId,
		OldValues:  oldValues,
		NewValues:  newValues,
		Changes:    changes,
		Ip:         ip,
		UserAgent:  userAgent,
	}
}

func (auditLogOperation *AuditLogOperation) GetAuditLogs(query *AuditLogQuery, page, pageSize int) (auditLogs []*AuditLog, total int64, err error) {
	auditLogs = make([]*AuditLog, 0, pageSize)
	ctx, cancel := context.WithTimeout(context.Background(), auditLogOperation.queryTimeout)
	defer cancel()
	tx := auditLogOperation.db.WithContext(ctx).Model(&AuditLog{})
	if query != nil {
		if query.Action != "" {
			tx = tx.Where("action = ?", query.Action)
		}
		if query.EntityType != "" {
			tx = tx.Where("entity_type = ?", query.EntityType)
		}
		if query.EntityId != "" {
			tx = tx.Where("entity_id = ?", query.EntityId)
		}
		if query.Actor != "" {
			tx = tx.Where("actor = ?", query.Actor)
		}
		if query.From != nil {
			tx = tx.Where("created_at >= ?", *query.From)
		}
		if query.To != nil {
			tx = tx.Where("created_at <= ?", *query.To)
		}
	}
	tx.Count(&total)
	err = tx.
		Offset((page - 1) * pageSize).
		Order("created_at desc").
		Limit(pageSize).
		Find(&auditLogs).Error
	return
}

func (auditLogOperation *AuditLogOperation) SaveAuditLog(auditLog *AuditLog) (err error) {
	ctx, cancel := context.WithTimeout(context.Background(), auditLogOperation.queryTimeout)
	defer cancel()
	return auditLogOperation.db.WithContext(ctx).Create(auditLog).Error
}

func (auditLogOperation *AuditLogOperation) SaveAuditLogs(auditLogs []*AuditLog) (err error) {
	ctx, cancel := context.WithTimeout(context.Background(), auditLogOperation.queryTimeout)
	defer cancel()
	return auditLogOperation.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(auditLogs).Error
	})
}
