package service

import (
	"testing"

	"github.com/flightlog-collective/skylog/internal/interfaces/operation"
	. "github.com/flightlog-collective/skylog/internal/interfaces/service"
)

type fakeAircraftOperation struct {
	operation.AircraftOperationInterface
	added   []*operation.Aircraft
	getById func(userId, aircraftId string) (*operation.Aircraft, error)
	updated map[string]interface{}
}

func (f *fakeAircraftOperation) AddAircraft(aircraft *operation.Aircraft) error {
	aircraft.ID = "aircraft-1"
	f.added = append(f.added, aircraft)
	return nil
}

func (f *fakeAircraftOperation) GetAircraftById(userId, aircraftId string) (*operation.Aircraft, error) {
	return f.getById(userId, aircraftId)
}

func (f *fakeAircraftOperation) UpdateAircraftInfo(_ *operation.Aircraft, info map[string]interface{}) error {
	f.updated = info
	return nil
}

func newAircraftService() (*AircraftService, *fakeAircraftOperation) {
	InitValidator(testLimits())
	aircraftOperation := &fakeAircraftOperation{}
	return NewAircraftService(testLogger{}, aircraftOperation, &fakeAuditService{}), aircraftOperation
}

func TestCreateAircraftDefaultsStatus(t *testing.T) {
	aircraftService, aircraftOperation := newAircraftService()

	res := aircraftService.CreateAircraft(&RequestCreateAircraft{
		JwtHeader:    JwtHeader{Uid: "uid-1"},
		Make:         "Cessna",
		Model:        "172",
		Registration: "n12345",
	})
	if res.HttpCode != Ok.Code() {
		t.Fatalf("CreateAircraft() code = %d; expected %d", res.HttpCode, Ok.Code())
	}
	if len(aircraftOperation.added) != 1 {
		t.Fatalf("AddAircraft called %d times; expected 1", len(aircraftOperation.added))
	}
	if status := aircraftOperation.added[0].Status; status != "operational" {
		t.Errorf("default status = %q; expected \"operational\"", status)
	}
}

func TestCreateAircraftKeepsFreeTextStatus(t *testing.T) {
	aircraftService, aircraftOperation := newAircraftService()

	res := aircraftService.CreateAircraft(&RequestCreateAircraft{
		JwtHeader:    JwtHeader{Uid: "uid-1"},
		Make:         "Piper",
		Model:        "PA-28",
		Registration: "N54321",
		Status:       "winter storage",
	})
	if res.HttpCode != Ok.Code() {
		t.Fatalf("CreateAircraft() code = %d; expected free-text status to be accepted", res.HttpCode)
	}
	if status := aircraftOperation.added[0].Status; status != "winter storage" {
		t.Errorf("status = %q; expected the caller's text to be stored as-is", status)
	}
}

func TestCreateAircraftRejectsMalformedImageUrl(t *testing.T) {
	aircraftService, aircraftOperation := newAircraftService()

	imageUrl := "not a url"
	res := aircraftService.CreateAircraft(&RequestCreateAircraft{
		JwtHeader:    JwtHeader{Uid: "uid-1"},
		Make:         "Cessna",
		Model:        "172",
		Registration: "N12345",
		ImageUrl:     &imageUrl,
	})
	if res.HttpCode != BadRequest.Code() {
		t.Fatalf("CreateAircraft() code = %d; expected %d for a malformed image url", res.HttpCode, BadRequest.Code())
	}
	if !hasViolation(res.Violations, "image_url") {
		t.Errorf("violations = %+v; expected an image_url violation", res.Violations)
	}
	if len(aircraftOperation.added) != 0 {
		t.Error("AddAircraft was called despite the validation failure")
	}
}
