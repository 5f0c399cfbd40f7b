// Package service
package service

import (
	"strings"
	"time"

	"github.com/flightlog-collective/skylog/internal/interfaces/log"
	"github.com/flightlog-collective/skylog/internal/interfaces/operation"
	. "github.com/flightlog-collective/skylog/internal/interfaces/service"
	"github.com/flightlog-collective/skylog/internal/metrics"
)

const defaultRecentFlights = 5

type FlightService struct {
	logger            log.LoggerInterface
	flightOperation   operation.FlightOperationInterface
	aircraftOperation operation.AircraftOperationInterface
	auditService      AuditServiceInterface
}

func NewFlightService(
	logger log.LoggerInterface,
	flightOperation operation.FlightOperationInterface,
	aircraftOperation operation.AircraftOperationInterface,
	auditService AuditServiceInterface,
) *FlightService {
	return &FlightService{
		logger:            logger,
		flightOperation:   flightOperation,
		aircraftOperation: aircraftOperation,
		auditService:      auditService,
	}
}

var (
	SuccessGetFlightList     = ApiStatus{StatusName: "GET_FLIGHT_LIST", Description: "flight list fetched", HttpCode: Ok}
	SuccessGetFlight         = ApiStatus{StatusName: "GET_FLIGHT", Description: "flight fetched", HttpCode: Ok}
	SuccessGetFlightAircraft = ApiStatus{StatusName: "GET_FLIGHT_AIRCRAFT", Description: "flight aircraft fetched", HttpCode: Ok}
	SuccessCreateFlight      = ApiStatus{StatusName: "CREATE_FLIGHT", Description: "flight logged", HttpCode: Ok}
	SuccessEditFlight        = ApiStatus{StatusName: "EDIT_FLIGHT", Description: "flight updated", HttpCode: Ok}
	SuccessDeleteFlight      = ApiStatus{StatusName: "DELETE_FLIGHT", Description: "flight deleted", HttpCode: Ok}
)

func parseFlightDate(value string) (time.Time, bool) {
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if date, err := time.Parse(layout, value); err == nil {
			return date.UTC(), true
		}
	}
	return time.Time{}, false
}

func parseTimeFilter(value string) operation.FlightTimeFilter {
	switch strings.ToUpper(value) {
	case "PIC":
		return operation.FilterPic
	case "DUAL":
		return operation.FilterDual
	case "SOLO":
		return operation.FilterSolo
	default:
		return operation.FilterAll
	}
}

func (flightService *FlightService) GetFlightList(req *RequestFlightList) *ApiResponse[ResponseFlightList] {
	query := &operation.FlightQuery{
		AircraftId: req.AircraftId,
		Search:     strings.TrimSpace(req.Search),
		TimeFilter: parseTimeFilter(req.TimeFilter),
	}
	if req.From != "" {
		if date, ok := parseFlightDate(req.From); ok {
			query.From = &date
		} else {
			return NewApiResponse[ResponseFlightList](&ErrIllegalParam, Unsatisfied, nil)
		}
	}
	if req.To != "" {
		if date, ok := parseFlightDate(req.To); ok {
			query.To = &date
		} else {
			return NewApiResponse[ResponseFlightList](&ErrIllegalParam, Unsatisfied, nil)
		}
	}

	flights, err := flightService.flightOperation.GetFlights(req.Uid, query)
	if err != nil {
		return NewApiResponse[ResponseFlightList](&ErrDatabaseFail, Unsatisfied, nil)
	}
	return NewApiResponse(&SuccessGetFlightList, Unsatisfied, &ResponseFlightList{Items: flights})
}

func (flightService *FlightService) GetRecentFlights(req *RequestRecentFlights) *ApiResponse[ResponseRecentFlights] {
	limit := req.Limit
	if limit <= 0 {
		limit = defaultRecentFlights
	}
	flights, err := flightService.flightOperation.GetRecentFlights(req.Uid, limit)
	if err != nil {
		return NewApiResponse[ResponseRecentFlights](&ErrDatabaseFail, Unsatisfied, nil)
	}
	return NewApiResponse(&SuccessGetFlightList, Unsatisfied, &ResponseRecentFlights{Items: flights})
}

func (flightService *FlightService) GetFlight(req *RequestGetFlight) *ApiResponse[ResponseGetFlight] {
	if req.FlightId == "" {
		return NewApiResponse[ResponseGetFlight](&ErrLackParam, Unsatisfied, nil)
	}
	flight, res := CallDBFuncAndCheckError[operation.Flight, ResponseGetFlight](func() (*operation.Flight, error) {
		return flightService.flightOperation.GetFlightById(req.Uid, req.FlightId)
	})
	if res != nil {
		return res
	}
	return NewApiResponse(&SuccessGetFlight, Unsatisfied, (*ResponseGetFlight)(flight))
}

func (flightService *FlightService) GetFlightsByAircraft(req *RequestFlightsByAircraft) *ApiResponse[ResponseFlightsByAircraft] {
	// 先确认航空器归属
	if _, res := CallDBFuncAndCheckError[operation.Aircraft, ResponseFlightsByAircraft](func() (*operation.Aircraft, error) {
		return flightService.aircraftOperation.GetAircraftById(req.Uid, req.AircraftId)
	}); res != nil {
		return res
	}
	flights, err := flightService.flightOperation.GetFlightsByAircraft(req.Uid, req.AircraftId)
	if err != nil {
		return NewApiResponse[ResponseFlightsByAircraft](&ErrDatabaseFail, Unsatisfied, nil)
	}
	return NewApiResponse(&SuccessGetFlightList, Unsatisfied, &ResponseFlightsByAircraft{Items: flights})
}

func (flightService *FlightService) GetFlightAircraft(req *RequestFlightAircraft) *ApiResponse[ResponseFlightAircraft] {
	aircraft, err := flightService.flightOperation.GetFlightAircraft(req.Uid)
	if err != nil {
		return NewApiResponse[ResponseFlightAircraft](&ErrDatabaseFail, Unsatisfied, nil)
	}
	return NewApiResponse(&SuccessGetFlightAircraft, Unsatisfied, &ResponseFlightAircraft{Items: aircraft})
}

func (flightService *FlightService) validateFields(fields *FlightFields) (time.Time, []*FieldViolation) {
	date, ok := parseFlightDate(fields.Date)
	if !ok {
		return time.Time{}, []*FieldViolation{{Field: "date", Message: "date must be an ISO date"}}
	}
	violations := flightValidator.CheckFlight(date, &FlightInput{
		DepartureCode: fields.DepartureCode,
		ArrivalCode:   fields.ArrivalCode,
		Duration:      fields.Duration,
		PicTime:       fields.PicTime,
		DualTime:      fields.DualTime,
		DayLandings:   fields.DayLandings,
		NightLandings: fields.NightLandings,
		Remarks:       fields.Remarks,
	})
	return date, violations
}

func (flightService *FlightService) CreateFlight(req *RequestCreateFlight) *ApiResponse[ResponseCreateFlight] {
	date, violations := flightService.validateFields(&req.FlightFields)
	if len(violations) > 0 {
		return NewValidationErrorResponse[ResponseCreateFlight](violations)
	}

	// 归属校验, 其他用户的航空器视为不存在
	if _, res := CallDBFuncAndCheckError[operation.Aircraft, ResponseCreateFlight](func() (*operation.Aircraft, error) {
		return flightService.aircraftOperation.GetAircraftById(req.Uid, req.AircraftId)
	}); res != nil {
		return res
	}

	flight := &operation.Flight{
		UserId:        req.Uid,
		AircraftId:    req.AircraftId,
		Date:          date,
		DepartureCode: strings.ToUpper(strings.TrimSpace(req.DepartureCode)),
		ArrivalCode:   strings.ToUpper(strings.TrimSpace(req.ArrivalCode)),
		Duration:      req.Duration,
		PicTime:       req.PicTime,
		DualTime:      req.DualTime,
		DayLandings:   req.DayLandings,
		NightLandings: req.NightLandings,
		Landings:      req.DayLandings + req.NightLandings,
		Remarks:       req.Remarks,
	}

	if _, res := CallDBFuncAndCheckError[interface{}, ResponseCreateFlight](func() (*interface{}, error) {
		return nil, flightService.flightOperation.AddFlight(flight)
	}); res != nil {
		return res
	}

	metrics.Default.FlightsCreated.Inc()
	flightService.auditService.Record(operation.EntityCreated, req.Uid, "flight", flight.ID, req.Ip, req.UserAgent, nil, flight)

	return NewApiResponse(&SuccessCreateFlight, Unsatisfied, (*ResponseCreateFlight)(flight))
}

func (flightService *FlightService) EditFlight(req *RequestEditFlight) *ApiResponse[ResponseEditFlight] {
	flight, res := CallDBFuncAndCheckError[operation.Flight, ResponseEditFlight](func() (*operation.Flight, error) {
		return flightService.flightOperation.GetFlightById(req.Uid, req.FlightId)
	})
	if res != nil {
		return res
	}

	// 未提供的字段沿用原值再整体校验
	date := flight.Date
	if req.Date != nil {
		parsed, ok := parseFlightDate(*req.Date)
		if !ok {
			return NewValidationErrorResponse[ResponseEditFlight]([]*FieldViolation{{Field: "date", Message: "date must be an ISO date"}})
		}
		date = parsed
	}
	input := &FlightInput{
		DepartureCode: flight.DepartureCode,
		ArrivalCode:   flight.ArrivalCode,
		Duration:      flight.Duration,
		PicTime:       flight.PicTime,
		DualTime:      flight.DualTime,
		DayLandings:   flight.DayLandings,
		NightLandings: flight.NightLandings,
		Remarks:       flight.Remarks,
	}
	aircraftId := flight.AircraftId
	if req.AircraftId != nil {
		aircraftId = *req.AircraftId
	}
	if req.DepartureCode != nil {
		input.DepartureCode = *req.DepartureCode
	}
	if req.ArrivalCode != nil {
		input.ArrivalCode = *req.ArrivalCode
	}
	if req.Duration != nil {
		input.Duration = *req.Duration
	}
	if req.PicTime != nil {
		input.PicTime = *req.PicTime
	}
	if req.DualTime != nil {
		input.DualTime = *req.DualTime
	}
	if req.DayLandings != nil {
		input.DayLandings = *req.DayLandings
	}
	if req.NightLandings != nil {
		input.NightLandings = *req.NightLandings
	}
	if req.Remarks != nil {
		input.Remarks = *req.Remarks
	}
	if violations := flightValidator.CheckFlight(date, input); len(violations) > 0 {
		return NewValidationErrorResponse[ResponseEditFlight](violations)
	}

	if aircraftId != flight.AircraftId {
		if _, res := CallDBFuncAndCheckError[operation.Aircraft, ResponseEditFlight](func() (*operation.Aircraft, error) {
			return flightService.aircraftOperation.GetAircraftById(req.Uid, aircraftId)
		}); res != nil {
			return res
		}
	}

	oldValues := *flight
	info := map[string]interface{}{
		"date":           date,
		"aircraft_id":    aircraftId,
		"departure_code": strings.ToUpper(strings.TrimSpace(input.DepartureCode)),
		"arrival_code":   strings.ToUpper(strings.TrimSpace(input.ArrivalCode)),
		"duration":       input.Duration,
		"pic_time":       input.PicTime,
		"dual_time":      input.DualTime,
		"day_landings":   input.DayLandings,
		"night_landings": input.NightLandings,
		"landings":       input.DayLandings + input.NightLandings,
		"remarks":        input.Remarks,
	}

	if err := flightService.flightOperation.UpdateFlightInfo(flight, info); err != nil {
		return NewApiResponse[ResponseEditFlight](&ErrDatabaseFail, Unsatisfied, nil)
	}

	flightService.auditService.Record(operation.EntityUpdated, req.Uid, "flight", flight.ID, req.Ip, req.UserAgent, &oldValues, flight)

	return NewApiResponse(&SuccessEditFlight, Unsatisfied, (*ResponseEditFlight)(flight))
}

func (flightService *FlightService) DeleteFlight(req *RequestDeleteFlight) *ApiResponse[ResponseDeleteFlight] {
	flight, res := CallDBFuncAndCheckError[operation.Flight, ResponseDeleteFlight](func() (*operation.Flight, error) {
		return flightService.flightOperation.GetFlightById(req.Uid, req.FlightId)
	})
	if res != nil {
		return res
	}
	if err := flightService.flightOperation.DeleteFlight(flight); err != nil {
		return NewApiResponse[ResponseDeleteFlight](&ErrDatabaseFail, Unsatisfied, nil)
	}

	flightService.auditService.Record(operation.EntityDeleted, req.Uid, "flight", flight.ID, req.Ip, req.UserAgent, flight, nil)

	return NewApiResponse(&SuccessDeleteFlight, Unsatisfied, &ResponseDeleteFlight{Deleted: true})
}
