// Package service
package service

import "github.com/flightlog-collective/skylog/internal/interfaces/operation"

type FlightServiceInterface interface {
	GetFlightList(req *RequestFlightList) *ApiResponse[ResponseFlightList]
	GetRecentFlights(req *RequestRecentFlights) *ApiResponse[ResponseRecentFlights]
	GetFlight(req *RequestGetFlight) *ApiResponse[ResponseGetFlight]
	GetFlightsByAircraft(req *RequestFlightsByAircraft) *ApiResponse[ResponseFlightsByAircraft]
	GetFlightAircraft(req *RequestFlightAircraft) *ApiResponse[ResponseFlightAircraft]
	CreateFlight(req *RequestCreateFlight) *ApiResponse[ResponseCreateFlight]
	EditFlight(req *RequestEditFlight) *ApiResponse[ResponseEditFlight]
	DeleteFlight(req *RequestDeleteFlight) *ApiResponse[ResponseDeleteFlight]
}

type RequestFlightList struct {
	JwtHeader
	AircraftId string `query:"aircraft_id"`
	Search     string `query:"search"`
	From       string `query:"from"`
	To         string `query:"to"`
	TimeFilter string `query:"time_filter"`
}

type ResponseFlightList struct {
	Items []*operation.Flight `json:"items"`
}

type RequestRecentFlights struct {
	JwtHeader
	Limit int `query:"limit"`
}

type ResponseRecentFlights struct {
	Items []*operation.Flight `json:"items"`
}

type RequestGetFlight struct {
	JwtHeader
	FlightId string `param:"id"`
}

type ResponseGetFlight operation.Flight

type RequestFlightsByAircraft struct {
	JwtHeader
	AircraftId string `param:"id"`
}

type ResponseFlightsByAircraft struct {
	Items []*operation.Flight `json:"items"`
}

type RequestFlightAircraft struct {
	JwtHeader
}

type ResponseFlightAircraft struct {
	Items []*operation.Aircraft `json:"items"`
}

// FlightFields 创建飞行记录的完整字段
type FlightFields struct {
	Date          string  `json:"date"`
	AircraftId    string  `json:"aircraft_id"`
	DepartureCode string  `json:"departure_code"`
	ArrivalCode   string  `json:"arrival_code"`
	Duration      float64 `json:"duration"`
	PicTime       float64 `json:"pic_time"`
	DualTime      float64 `json:"dual_time"`
	DayLandings   int     `json:"day_landings"`
	NightLandings int     `json:"night_landings"`
	Remarks       string  `json:"remarks"`
}

type RequestCreateFlight struct {
	JwtHeader
	FlightFields
}

type ResponseCreateFlight operation.Flight

// RequestEditFlight 未提供的字段保持原值
type RequestEditFlight struct {
	JwtHeader
	FlightId      string   `param:"id"`
	Date          *string  `json:"date"`
	AircraftId    *string  `json:"aircraft_id"`
	DepartureCode *string  `json:"departure_code"`
	ArrivalCode   *string  `json:"arrival_code"`
	Duration      *float64 `json:"duration"`
	PicTime       *float64 `json:"pic_time"`
	DualTime      *float64 `json:"dual_time"`
	DayLandings   *int     `json:"day_landings"`
	NightLandings *int     `json:"night_landings"`
	Remarks       *string  `json:"remarks"`
}

type ResponseEditFlight operation.Flight

type RequestDeleteFlight struct {
	JwtHeader
	FlightId string `param:"id"`
}

type ResponseDeleteFlight struct {
	Deleted bool `json:"deleted"`
}
