// Package service
package service

import (
	"strings"

	"github.com/flightlog-collective/skylog/internal/interfaces/log"
	"github.com/flightlog-collective/skylog/internal/interfaces/operation"
	. "github.com/flightlog-collective/skylog/internal/interfaces/service"
)

type AircraftService struct {
	logger            log.LoggerInterface
	aircraftOperation operation.AircraftOperationInterface
	auditService      AuditServiceInterface
}

func NewAircraftService(
	logger log.LoggerInterface,
	aircraftOperation operation.AircraftOperationInterface,
	auditService AuditServiceInterface,
) *AircraftService {
	return &AircraftService{
		logger:            logger,
		aircraftOperation: aircraftOperation,
		auditService:      auditService,
	}
}

var (
	SuccessGetAircraftList = ApiStatus{StatusName: "GET_AIRCRAFT_LIST", Description: "aircraft list fetched", HttpCode: Ok}
	SuccessGetAircraft     = ApiStatus{StatusName: "GET_AIRCRAFT", Description: "aircraft fetched", HttpCode: Ok}
	SuccessCreateAircraft  = ApiStatus{StatusName: "CREATE_AIRCRAFT", Description: "aircraft created", HttpCode: Ok}
	SuccessEditAircraft    = ApiStatus{StatusName: "EDIT_AIRCRAFT", Description: "aircraft updated", HttpCode: Ok}
	SuccessArchiveAircraft = ApiStatus{StatusName: "ARCHIVE_AIRCRAFT", Description: "aircraft archived", HttpCode: Ok}
	SuccessRestoreAircraft = ApiStatus{StatusName: "RESTORE_AIRCRAFT", Description: "aircraft restored", HttpCode: Ok}
	SuccessDeleteAircraft  = ApiStatus{StatusName: "DELETE_AIRCRAFT", Description: "aircraft permanently deleted", HttpCode: Ok}
)

func (aircraftService *AircraftService) GetAircraftList(req *RequestAircraftList) *ApiResponse[ResponseAircraftList] {
	aircraft, err := aircraftService.aircraftOperation.GetAircraftList(req.Uid, req.IncludeArchived)
	if err != nil {
		return NewApiResponse[ResponseAircraftList](&ErrDatabaseFail, Unsatisfied, nil)
	}
	return NewApiResponse(&SuccessGetAircraftList, Unsatisfied, &ResponseAircraftList{Items: aircraft})
}

func (aircraftService *AircraftService) GetAircraft(req *RequestGetAircraft) *ApiResponse[ResponseGetAircraft] {
	if req.AircraftId == "" {
		return NewApiResponse[ResponseGetAircraft](&ErrLackParam, Unsatisfied, nil)
	}
	aircraft, res := CallDBFuncAndCheckError[operation.Aircraft, ResponseGetAircraft](func() (*operation.Aircraft, error) {
		return aircraftService.aircraftOperation.GetAircraftById(req.Uid, req.AircraftId)
	})
	if res != nil {
		return res
	}
	total, err := aircraftService.aircraftOperation.CountFlights(aircraft.ID)
	if err != nil {
		return NewApiResponse[ResponseGetAircraft](&ErrDatabaseFail, Unsatisfied, nil)
	}
	return NewApiResponse(&SuccessGetAircraft, Unsatisfied, &ResponseGetAircraft{
		Aircraft:     aircraft,
		TotalFlights: total,
	})
}

func (aircraftService *AircraftService) CreateAircraft(req *RequestCreateAircraft) *ApiResponse[ResponseCreateAircraft] {
	imageUrl := ""
	if req.ImageUrl != nil {
		imageUrl = *req.ImageUrl
	}
	if violations := aircraftValidator.CheckAircraft(req.Make, req.Model, req.Registration, imageUrl); len(violations) > 0 {
		return NewValidationErrorResponse[ResponseCreateAircraft](violations)
	}

	status := strings.TrimSpace(req.Status)
	if status == "" {
		status = operation.AircraftStatusDefault
	}

	aircraft := &operation.Aircraft{
		UserId:       req.Uid,
		Make:         strings.TrimSpace(req.Make),
		Model:        strings.TrimSpace(req.Model),
		Registration: strings.ToUpper(strings.TrimSpace(req.Registration)),
		Status:       status,
		ImageUrl:     req.ImageUrl,
	}

	if _, res := CallDBFuncAndCheckError[interface{}, ResponseCreateAircraft](func() (*interface{}, error) {
		return nil, aircraftService.aircraftOperation.AddAircraft(aircraft)
	}); res != nil {
		return res
	}

	aircraftService.auditService.Record(operation.EntityCreated, req.Uid, "aircraft", aircraft.ID, req.Ip, req.UserAgent, nil, aircraft)

	return NewApiResponse(&SuccessCreateAircraft, Unsatisfied, (*ResponseCreateAircraft)(aircraft))
}

func (aircraftService *AircraftService) EditAircraft(req *RequestEditAircraft) *ApiResponse[ResponseEditAircraft] {
	aircraft, res := CallDBFuncAndCheckError[operation.Aircraft, ResponseEditAircraft](func() (*operation.Aircraft, error) {
		return aircraftService.aircraftOperation.GetAircraftById(req.Uid, req.AircraftId)
	})
	if res != nil {
		return res
	}

	makeName := aircraft.Make
	model := aircraft.Model
	registration := aircraft.Registration
	status := aircraft.Status
	imageUrl := ""
	if aircraft.ImageUrl != nil {
		imageUrl = *aircraft.ImageUrl
	}
	if req.Make != nil {
		makeName = *req.Make
	}
	if req.Model != nil {
		model = *req.Model
	}
	if req.Registration != nil {
		registration = *req.Registration
	}
	if req.Status != nil {
		status = *req.Status
	}
	if req.ImageUrl != nil {
		imageUrl = *req.ImageUrl
	}
	if violations := aircraftValidator.CheckAircraft(makeName, model, registration, imageUrl); len(violations) > 0 {
		return NewValidationErrorResponse[ResponseEditAircraft](violations)
	}

	info := map[string]interface{}{
		"make":         strings.TrimSpace(makeName),
		"model":        strings.TrimSpace(model),
		"registration": strings.ToUpper(strings.TrimSpace(registration)),
		"status":       status,
	}
	if req.ImageUrl != nil {
		info["image_url"] = *req.ImageUrl
	}

	oldValues := *aircraft
	if _, res := CallDBFuncAndCheckError[interface{}, ResponseEditAircraft](func() (*interface{}, error) {
		return nil, aircraftService.aircraftOperation.UpdateAircraftInfo(aircraft, info)
	}); res != nil {
		return res
	}

	aircraftService.auditService.Record(operation.EntityUpdated, req.Uid, "aircraft", aircraft.ID, req.Ip, req.UserAgent, &oldValues, aircraft)

	return NewApiResponse(&SuccessEditAircraft, Unsatisfied, (*ResponseEditAircraft)(aircraft))
}

func (aircraftService *AircraftService) ArchiveAircraft(req *RequestArchiveAircraft) *ApiResponse[ResponseArchiveAircraft] {
	aircraft, res := CallDBFuncAndCheckError[operation.Aircraft, ResponseArchiveAircraft](func() (*operation.Aircraft, error) {
		return aircraftService.aircraftOperation.GetAircraftById(req.Uid, req.AircraftId)
	})
	if res != nil {
		return res
	}
	if err := aircraftService.aircraftOperation.ArchiveAircraft(aircraft); err != nil {
		return NewApiResponse[ResponseArchiveAircraft](&ErrDatabaseFail, Unsatisfied, nil)
	}

	aircraftService.auditService.Record(operation.EntityDeleted, req.Uid, "aircraft", aircraft.ID, req.Ip, req.UserAgent, nil, nil)

	return NewApiResponse(&SuccessArchiveAircraft, Unsatisfied, (*ResponseArchiveAircraft)(aircraft))
}

func (aircraftService *AircraftService) RestoreAircraft(req *RequestRestoreAircraft) *ApiResponse[ResponseRestoreAircraft] {
	aircraft, res := CallDBFuncAndCheckError[operation.Aircraft, ResponseRestoreAircraft](func() (*operation.Aircraft, error) {
		return aircraftService.aircraftOperation.GetAircraftById(req.Uid, req.AircraftId)
	})
	if res != nil {
		return res
	}
	if err := aircraftService.aircraftOperation.RestoreAircraft(aircraft); err != nil {
		return NewApiResponse[ResponseRestoreAircraft](&ErrDatabaseFail, Unsatisfied, nil)
	}

	aircraftService.auditService.Record(operation.EntityRestored, req.Uid, "aircraft", aircraft.ID, req.Ip, req.UserAgent, nil, nil)

	return NewApiResponse(&SuccessRestoreAircraft, Unsatisfied, (*ResponseRestoreAircraft)(aircraft))
}

func (aircraftService *AircraftService) DeleteAircraft(req *RequestDeleteAircraft) *ApiResponse[ResponseDeleteAircraft] {
	aircraft, res := CallDBFuncAndCheckError[operation.Aircraft, ResponseDeleteAircraft](func() (*operation.Aircraft, error) {
		return aircraftService.aircraftOperation.GetAircraftById(req.Uid, req.AircraftId)
	})
	if res != nil {
		return res
	}
	if _, res := CallDBFuncAndCheckError[interface{}, ResponseDeleteAircraft](func() (*interface{}, error) {
		return nil, aircraftService.aircraftOperation.DeleteAircraft(aircraft)
	}); res != nil {
		return res
	}

	aircraftService.auditService.Record(operation.EntityDeleted, req.Uid, "aircraft", aircraft.ID, req.Ip, req.UserAgent, aircraft, nil)

	return NewApiResponse(&SuccessDeleteAircraft, Unsatisfied, &ResponseDeleteAircraft{Deleted: true})
}
