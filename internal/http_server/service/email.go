// Package service
package service

import (
	"fmt"
	"time"

	"github.com/flightlog-collective/skylog/internal/interfaces/config"
	"github.com/flightlog-collective/skylog/internal/interfaces/log"
	"github.com/flightlog-collective/skylog/internal/interfaces/operation"
	"gopkg.in/gomail.v2"
)

type EmailService struct {
	logger log.LoggerInterface
	config *config.EmailConfig
}

func NewEmailService(logger log.LoggerInterface, config *config.EmailConfig) *EmailService {
	return &EmailService{logger: logger, config: config}
}

func (emailService *EmailService) SendFeedbackEmail(feedback *operation.Feedback) error {
	if !emailService.config.Enabled || emailService.config.EmailServer == nil {
		return nil
	}

	m := gomail.NewMessage()
	m.SetHeader("From", emailService.config.Sender)
	m.SetHeader("To", emailService.config.FeedbackTo)
	m.SetHeader("Subject", fmt.Sprintf("[%s] New message from %s", feedback.Kind, feedback.Name))
	m.SetBody("text/plain", fmt.Sprintf(
		"Kind: %s\nName: %s\nEmail: %s\nIP: %s\nTime: %s\n\n%s\n",
		feedback.Kind, feedback.Name, feedback.Email, feedback.Ip,
		time.Now().UTC().Format(time.RFC3339), feedback.Message,
	))

	emailService.logger.InfoF("Forwarding %s message from %s to %s", feedback.Kind, feedback.Email, emailService.config.FeedbackTo)

	return emailService.config.EmailServer.DialAndSend(m)
}
