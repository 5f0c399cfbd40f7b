package service

import (
	"testing"
	"time"

	"github.com/flightlog-collective/skylog/internal/interfaces/operation"
	. "github.com/flightlog-collective/skylog/internal/interfaces/service"
)

type fakeFlightOperation struct {
	operation.FlightOperationInterface
	flight  *operation.Flight
	updated map[string]interface{}
}

func (f *fakeFlightOperation) GetFlightById(_, _ string) (*operation.Flight, error) {
	if f.flight == nil {
		return nil, operation.ErrFlightNotFound
	}
	return f.flight, nil
}

func (f *fakeFlightOperation) UpdateFlightInfo(_ *operation.Flight, info map[string]interface{}) error {
	f.updated = info
	return nil
}

func newFlightService(flight *operation.Flight) (*FlightService, *fakeFlightOperation) {
	InitValidator(testLimits())
	flightOperation := &fakeFlightOperation{flight: flight}
	return NewFlightService(testLogger{}, flightOperation, &fakeAircraftOperation{}, &fakeAuditService{}), flightOperation
}

func loggedFlight() *operation.Flight {
	return &operation.Flight{
		ID:            "flight-1",
		UserId:        "uid-1",
		AircraftId:    "aircraft-1",
		Date:          time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC),
		DepartureCode: "KJFK",
		ArrivalCode:   "KBOS",
		Duration:      1.5,
		PicTime:       1.5,
		DayLandings:   1,
		Landings:      1,
		Remarks:       "pattern work",
	}
}

func TestEditFlightPartialUpdate(t *testing.T) {
	flightService, flightOperation := newFlightService(loggedFlight())

	duration := 2.0
	picTime := 2.0
	res := flightService.EditFlight(&RequestEditFlight{
		JwtHeader: JwtHeader{Uid: "uid-1"},
		FlightId:  "flight-1",
		Duration:  &duration,
		PicTime:   &picTime,
	})
	if res.HttpCode != Ok.Code() {
		t.Fatalf("EditFlight() code = %d; expected %d for a partial payload", res.HttpCode, Ok.Code())
	}
	if flightOperation.updated == nil {
		t.Fatal("UpdateFlightInfo was not called")
	}
	if got := flightOperation.updated["duration"]; got != 2.0 {
		t.Errorf("updated duration = %v; expected 2.0", got)
	}
	// 未提供的字段沿用原值
	if got := flightOperation.updated["departure_code"]; got != "KJFK" {
		t.Errorf("updated departure_code = %v; expected the original KJFK", got)
	}
	if got := flightOperation.updated["remarks"]; got != "pattern work" {
		t.Errorf("updated remarks = %v; expected the original text", got)
	}
	if got := flightOperation.updated["aircraft_id"]; got != "aircraft-1" {
		t.Errorf("updated aircraft_id = %v; expected the original aircraft", got)
	}
}

func TestEditFlightPartialStillValidated(t *testing.T) {
	flightService, flightOperation := newFlightService(loggedFlight())

	// 只改pic_time也要和完整记录一起校验
	picTime := 5.0
	res := flightService.EditFlight(&RequestEditFlight{
		JwtHeader: JwtHeader{Uid: "uid-1"},
		FlightId:  "flight-1",
		PicTime:   &picTime,
	})
	if res.HttpCode != BadRequest.Code() {
		t.Fatalf("EditFlight() code = %d; expected %d when pic time exceeds duration", res.HttpCode, BadRequest.Code())
	}
	if !hasViolation(res.Violations, "pic_time") {
		t.Errorf("violations = %+v; expected a pic_time violation", res.Violations)
	}
	if flightOperation.updated != nil {
		t.Error("UpdateFlightInfo was called despite the validation failure")
	}
}

func TestEditFlightRejectsBadDate(t *testing.T) {
	flightService, _ := newFlightService(loggedFlight())

	date := "02/01/2026"
	res := flightService.EditFlight(&RequestEditFlight{
		JwtHeader: JwtHeader{Uid: "uid-1"},
		FlightId:  "flight-1",
		Date:      &date,
	})
	if res.HttpCode != BadRequest.Code() {
		t.Fatalf("EditFlight() code = %d; expected %d for a non-ISO date", res.HttpCode, BadRequest.Code())
	}
	if !hasViolation(res.Violations, "date") {
		t.Errorf("violations = %+v; expected a date violation", res.Violations)
	}
}
