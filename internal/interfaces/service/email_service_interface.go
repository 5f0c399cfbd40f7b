// Package service
package service

import "github.com/flightlog-collective/skylog/internal/interfaces/operation"

type EmailServiceInterface interface {
	// SendFeedbackEmail 转发用户反馈到运营邮箱, 未启用邮件时为空操作
	SendFeedbackEmail(feedback *operation.Feedback) error
}
