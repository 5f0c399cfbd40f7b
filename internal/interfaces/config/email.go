// Package config
package config

import (
	"errors"
	"net/mail"

	"github.com/flightlog-collective/skylog/internal/interfaces/log"
	"gopkg.in/gomail.v2"
)

type EmailConfig struct {
	Enabled     bool           `json:"enabled"`
	Host        string         `json:"host"`
	Port        int            `json:"port"`
	EmailServer *gomail.Dialer `json:"-"`
	Username    string         `json:"username"`
	Password    string         `json:"password"`
	Sender      string         `json:"sender"`
	FeedbackTo  string         `json:"feedback_to"`
}

func defaultEmailConfig() *EmailConfig {
	return &EmailConfig{
		Enabled:    false,
		Host:       "smtp.example.com",
		Port:       465,
		Username:   "noreply@example.com",
		Password:   "",
		Sender:     "noreply@example.com",
		FeedbackTo: "support@example.com",
	}
}

func (config *EmailConfig) checkValid(logger log.LoggerInterface) *ValidResult {
	if !config.Enabled {
		logger.Info("Email delivery disabled, feedback will only be persisted")
		return ValidPass()
	}

	if _, err := mail.ParseAddress(config.Sender); err != nil {
		return ValidFailWith(errors.New("invalid json field http_server.email.sender"), err)
	}
	if _, err := mail.ParseAddress(config.FeedbackTo); err != nil {
		return ValidFailWith(errors.New("invalid json field http_server.email.feedback_to"), err)
	}

	config.EmailServer = gomail.NewDialer(config.Host, config.Port, config.Username, config.Password)
	dial, err := config.EmailServer.Dial()
	if err != nil {
		return ValidFailWith(errors.New("connecting to smtp server fail"), err)
	}
	_ = dial.Close()

	return ValidPass()
}
