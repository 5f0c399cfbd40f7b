// Package database
package database

import (
	"context"
	"time"

	. "github.com/flightlog-collective/skylog/internal/interfaces/operation"
	"gorm.io/gorm"
)

type FeedbackOperation struct {
	db           *gorm.DB
	queryTimeout time.Duration
}

func NewFeedbackOperation(db *gorm.DB, queryTimeout time.Duration) *FeedbackOperation {
	return &FeedbackOperation{db: db, queryTimeout: queryTimeout}
}

func (feedbackOperation *FeedbackOperation) SaveFeedback(feedback *Feedback) (err error) {
	ctx, cancel := context.WithTimeout(context.Background(), feedbackOperation.queryTimeout)
	defer cancel()
	return feedbackOperation.db.WithContext(ctx).Create(feedback).Error
}

func (feedbackOperation *FeedbackOperation) GetFeedbacks(page, pageSize int) (feedbacks []*Feedback, total int64, err error) {
	feedbacks = make([]*Feedback, 0, pageSize)
	ctx, cancel := context.WithTimeout(context.Background(), feedbackOperation.queryTimeout)
	defer cancel()
	feedbackOperation.db.WithContext(ctx).Model(&Feedback{}).Select("id").Count(&total)
	err = feedbackOperation.db.WithContext(ctx).
		Offset((page - 1) * pageSize).
		Order("created_at desc").
		Limit(pageSize).
		Find(&feedbacks).Error
	return
}
