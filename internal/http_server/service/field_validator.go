// Package service
package service

import (
	"fmt"
	"net/mail"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/flightlog-collective/skylog/internal/interfaces/config"
	. "github.com/flightlog-collective/skylog/internal/interfaces/service"
)

var airportCodePattern = regexp.MustCompile(`^[A-Z0-9]+$`)

// FlightValidator 飞行记录字段校验, 汇总所有违规而不是在第一个错误停下
type FlightValidator struct {
	limits *config.HttpServerLimit
	now    func() time.Time
}

// AircraftValidator 航空器字段校验
type AircraftValidator struct {
	limits *config.HttpServerLimit
}

var (
	flightValidator   *FlightValidator
	aircraftValidator *AircraftValidator
)

func InitValidator(limits *config.HttpServerLimit) {
	flightValidator = &FlightValidator{limits: limits, now: time.Now}
	aircraftValidator = &AircraftValidator{limits: limits}
}

func violation(field, message string) *FieldViolation {
	return &FieldViolation{Field: field, Message: message}
}

func checkAirportCode(field, value string, limits *config.HttpServerLimit, violations []*FieldViolation) []*FieldViolation {
	code := strings.ToUpper(strings.TrimSpace(value))
	if len(code) < limits.AirportCodeMin || len(code) > limits.AirportCodeMax {
		return append(violations, violation(field, fmt.Sprintf("airport code must be %d to %d characters", limits.AirportCodeMin, limits.AirportCodeMax)))
	}
	if !airportCodePattern.MatchString(code) {
		return append(violations, violation(field, "airport code must be alphanumeric"))
	}
	return violations
}

// FlightInput 待校验的飞行记录字段
type FlightInput struct {
	DepartureCode string
	ArrivalCode   string
	Duration      float64
	PicTime       float64
	DualTime      float64
	DayLandings   int
	NightLandings int
	Remarks       string
}

// CheckFlight 校验飞行记录字段, date已解析完成
func (v *FlightValidator) CheckFlight(date time.Time, fields *FlightInput) []*FieldViolation {
	violations := make([]*FieldViolation, 0)

	// 未来日期按UTC瞬时比较
	if date.After(v.now().UTC()) {
		violations = append(violations, violation("date", "flight date cannot be in the future"))
	}

	violations = checkAirportCode("departure_code", fields.DepartureCode, v.limits, violations)
	violations = checkAirportCode("arrival_code", fields.ArrivalCode, v.limits, violations)

	if fields.Duration < v.limits.FlightDurationMin {
		violations = append(violations, violation("duration", fmt.Sprintf("duration must be at least %.1f hours", v.limits.FlightDurationMin)))
	}
	if fields.PicTime < 0 {
		violations = append(violations, violation("pic_time", "pic time cannot be negative"))
	} else if fields.PicTime > fields.Duration {
		violations = append(violations, violation("pic_time", "pic time cannot exceed total duration"))
	}
	if fields.DualTime < 0 {
		violations = append(violations, violation("dual_time", "dual time cannot be negative"))
	} else if fields.DualTime > fields.Duration {
		violations = append(violations, violation("dual_time", "dual time cannot exceed total duration"))
	}
	if fields.DayLandings < 0 {
		violations = append(violations, violation("day_landings", "landings cannot be negative"))
	}
	if fields.NightLandings < 0 {
		violations = append(violations, violation("night_landings", "landings cannot be negative"))
	}
	if len(fields.Remarks) > v.limits.RemarksLengthMax {
		violations = append(violations, violation("remarks", fmt.Sprintf("remarks cannot exceed %d characters", v.limits.RemarksLengthMax)))
	}

	return violations
}

// CheckAircraft 校验航空器字段, status为自由文本不设白名单
func (v *AircraftValidator) CheckAircraft(makeName, model, registration, imageUrl string) []*FieldViolation {
	violations := make([]*FieldViolation, 0)

	if strings.TrimSpace(makeName) == "" {
		violations = append(violations, violation("make", "make is required"))
	} else if len(makeName) > v.limits.MakeLengthMax {
		violations = append(violations, violation("make", fmt.Sprintf("make cannot exceed %d characters", v.limits.MakeLengthMax)))
	}

	if strings.TrimSpace(model) == "" {
		violations = append(violations, violation("model", "model is required"))
	} else if len(model) > v.limits.ModelLengthMax {
		violations = append(violations, violation("model", fmt.Sprintf("model cannot exceed %d characters", v.limits.ModelLengthMax)))
	}

	if strings.TrimSpace(registration) == "" {
		violations = append(violations, violation("registration", "registration is required"))
	} else if len(registration) > v.limits.RegLengthMax {
		violations = append(violations, violation("registration", fmt.Sprintf("registration cannot exceed %d characters", v.limits.RegLengthMax)))
	}

	// 图片地址可留空, 非空时必须是带scheme和host的完整URL
	if imageUrl != "" {
		parsed, err := url.Parse(imageUrl)
		if err != nil || parsed.Scheme == "" || parsed.Host == "" {
			violations = append(violations, violation("image_url", "image url must be empty or a well-formed URL"))
		}
	}

	return violations
}

// CheckMessage 校验反馈与联系表单
func CheckMessage(name, email, message string, limits *config.HttpServerLimit) []*FieldViolation {
	violations := make([]*FieldViolation, 0)
	if strings.TrimSpace(name) == "" {
		violations = append(violations, violation("name", "name is required"))
	}
	if _, err := mail.ParseAddress(email); err != nil {
		violations = append(violations, violation("email", "email is invalid"))
	}
	if strings.TrimSpace(message) == "" {
		violations = append(violations, violation("message", "message is required"))
	} else if len(message) > limits.MessageLengthMax {
		violations = append(violations, violation("message", fmt.Sprintf("message cannot exceed %d characters", limits.MessageLengthMax)))
	}
	return violations
}
