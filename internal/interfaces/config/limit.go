// Package config
package config

import (
	"errors"
	"time"

	"github.com/flightlog-collective/skylog/internal/interfaces/log"
)

type HttpServerLimit struct {
	RateLimit           int           `json:"rate_limit"`
	RateLimitWindow     string        `json:"rate_limit_window"`
	RateLimitDuration   time.Duration `json:"-"`
	MakeLengthMax       int           `json:"make_length_max"`
	ModelLengthMax      int           `json:"model_length_max"`
	RegLengthMax        int           `json:"reg_length_max"`
	AirportCodeMin      int           `json:"airport_code_min"`
	AirportCodeMax      int           `json:"airport_code_max"`
	RemarksLengthMax    int           `json:"remarks_length_max"`
	FlightDurationMin   float64       `json:"flight_duration_min"`
	MessageLengthMax    int           `json:"message_length_max"`
	PayloadOversize     int           `json:"payload_oversize"`
	PayloadMinAnalyze   int           `json:"payload_min_analyze"`
	PayloadDiversityMin float64       `json:"payload_diversity_min"`
	PayloadHistorySize  int           `json:"payload_history_size"`
}

func defaultHttpServerLimit() *HttpServerLimit {
	return &HttpServerLimit{
		RateLimit:           5,
		RateLimitWindow:     "1m",
		MakeLengthMax:       100,
		ModelLengthMax:      100,
		RegLengthMax:        20,
		AirportCodeMin:      3,
		AirportCodeMax:      4,
		RemarksLengthMax:    500,
		FlightDurationMin:   0.1,
		MessageLengthMax:    5000,
		PayloadOversize:     5000,
		PayloadMinAnalyze:   100,
		PayloadDiversityMin: 0.05,
		PayloadHistorySize:  1000,
	}
}

func (config *HttpServerLimit) checkValid(_ log.LoggerInterface) *ValidResult {
	if duration, err := time.ParseDuration(config.RateLimitWindow); err != nil {
		return ValidFailWith(errors.New("invalid json field http_server.limits.rate_limit_window"), err)
	} else {
		config.RateLimitDuration = duration
	}

	if config.RateLimit <= 0 {
		return ValidFail(errors.New("invalid json field http_server.limits.rate_limit, value must larger than 0"))
	}

	if config.MakeLengthMax <= 0 {
		return ValidFail(errors.New("invalid json field http_server.limits.make_length_max, value must larger than 0"))
	}
	if config.ModelLengthMax <= 0 {
		return ValidFail(errors.New("invalid json field http_server.limits.model_length_max, value must larger than 0"))
	}
	if config.RegLengthMax <= 0 {
		return ValidFail(errors.New("invalid json field http_server.limits.reg_length_max, value must larger than 0"))
	}

	if config.AirportCodeMin <= 0 {
		return ValidFail(errors.New("invalid json field http_server.limits.airport_code_min, value must larger than 0"))
	}
	if config.AirportCodeMax < config.AirportCodeMin {
		return ValidFail(errors.New("invalid json field http_server.limits.airport_code_max, value must not less than http_server.limits.airport_code_min"))
	}

	if config.RemarksLengthMax <= 0 {
		return ValidFail(errors.New("invalid json field http_server.limits.remarks_length_max, value must larger than 0"))
	}
	if config.FlightDurationMin <= 0 {
		return ValidFail(errors.New("invalid json field http_server.limits.flight_duration_min, value must larger than 0"))
	}
	if config.MessageLengthMax <= 0 {
		return ValidFail(errors.New("invalid json field http_server.limits.message_length_max, value must larger than 0"))
	}

	if config.PayloadOversize <= 0 {
		return ValidFail(errors.New("invalid json field http_server.limits.payload_oversize, value must larger than 0"))
	}
	if config.PayloadMinAnalyze <= 0 {
		return ValidFail(errors.New("invalid json field http_server.limits.payload_min_analyze, value must larger than 0"))
	}
	if config.PayloadDiversityMin <= 0 || config.PayloadDiversityMin >= 1 {
		return ValidFail(errors.New("invalid json field http_server.limits.payload_diversity_min, value must between 0 and 1"))
	}
	if config.PayloadHistorySize <= 0 {
		return ValidFail(errors.New("invalid json field http_server.limits.payload_history_size, value must larger than 0"))
	}

	return ValidPass()
}
