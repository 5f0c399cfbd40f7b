package service

import (
	"testing"
	"time"

	"github.com/flightlog-collective/skylog/internal/interfaces/config"
	. "github.com/flightlog-collective/skylog/internal/interfaces/service"
)

func testLimits() *config.HttpServerLimit {
	return &config.HttpServerLimit{
		MakeLengthMax:     100,
		ModelLengthMax:    100,
		RegLengthMax:      20,
		AirportCodeMin:    3,
		AirportCodeMax:    4,
		RemarksLengthMax:  500,
		FlightDurationMin: 0.1,
		MessageLengthMax:  5000,
	}
}

func hasViolation(violations []*FieldViolation, field string) bool {
	for _, v := range violations {
		if v.Field == field {
			return true
		}
	}
	return false
}

func TestCheckAircraft(t *testing.T) {
	validator := &AircraftValidator{limits: testLimits()}

	tests := []struct {
		name          string
		makeName      string
		model         string
		registration  string
		imageUrl      string
		expectedField string
	}{
		{"valid without image", "Cessna", "172", "N12345", "", ""},
		{"valid with image url", "Cessna", "172", "N12345", "https://img.example.com/a.jpg", ""},
		{"missing make", "", "172", "N12345", "", "make"},
		{"missing model", "Cessna", "", "N12345", "", "model"},
		{"missing registration", "Cessna", "172", "", "", "registration"},
		{"image url without scheme", "Cessna", "172", "N12345", "img.example.com/a.jpg", "image_url"},
		{"image url relative path", "Cessna", "172", "N12345", "/uploads/a.jpg", "image_url"},
		{"image url garbage", "Cessna", "172", "N12345", "::not-a-url::", "image_url"},
	}

	passedCount, failedCount := 0, 0
	for _, test := range tests {
		violations := validator.CheckAircraft(test.makeName, test.model, test.registration, test.imageUrl)
		ok := true
		if test.expectedField == "" {
			if len(violations) != 0 {
				t.Errorf("%s: CheckAircraft() = %+v; expected no violations", test.name, violations[0])
				ok = false
			}
		} else if !hasViolation(violations, test.expectedField) {
			t.Errorf("%s: CheckAircraft() = %+v; expected a %s violation", test.name, violations, test.expectedField)
			ok = false
		}
		if ok {
			passedCount++
		} else {
			failedCount++
		}
	}
	t.Logf("Total: %d, Passed: %d, Failed: %d", len(tests), passedCount, failedCount)
}

func TestCheckFlight(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	validator := &FlightValidator{limits: testLimits(), now: func() time.Time { return now }}

	valid := &FlightInput{
		DepartureCode: "KJFK",
		ArrivalCode:   "KBOS",
		Duration:      1.5,
		PicTime:       1.5,
		DayLandings:   1,
	}
	if violations := validator.CheckFlight(now.AddDate(0, 0, -1), valid); len(violations) != 0 {
		t.Errorf("CheckFlight() = %+v; expected no violations for a valid flight", violations)
	}

	if violations := validator.CheckFlight(now.AddDate(0, 0, 1), valid); !hasViolation(violations, "date") {
		t.Errorf("CheckFlight() = %+v; expected a date violation for a future flight", violations)
	}

	overclaimed := &FlightInput{
		DepartureCode: "KJFK",
		ArrivalCode:   "KBOS",
		Duration:      1.0,
		PicTime:       2.0,
	}
	if violations := validator.CheckFlight(now.AddDate(0, 0, -1), overclaimed); !hasViolation(violations, "pic_time") {
		t.Errorf("CheckFlight() = %+v; expected a pic_time violation", violations)
	}
}
