// Package service
package service

import "github.com/flightlog-collective/skylog/internal/interfaces/operation"

type AircraftServiceInterface interface {
	GetAircraftList(req *RequestAircraftList) *ApiResponse[ResponseAircraftList]
	GetAircraft(req *RequestGetAircraft) *ApiResponse[ResponseGetAircraft]
	CreateAircraft(req *RequestCreateAircraft) *ApiResponse[ResponseCreateAircraft]
	EditAircraft(req *RequestEditAircraft) *ApiResponse[ResponseEditAircraft]
	ArchiveAircraft(req *RequestArchiveAircraft) *ApiResponse[ResponseArchiveAircraft]
	RestoreAircraft(req *RequestRestoreAircraft) *ApiResponse[ResponseRestoreAircraft]
	DeleteAircraft(req *RequestDeleteAircraft) *ApiResponse[ResponseDeleteAircraft]
}

type RequestAircraftList struct {
	JwtHeader
	IncludeArchived bool `query:"include_archived"`
}

type ResponseAircraftList struct {
	Items []*operation.Aircraft `json:"items"`
}

type RequestGetAircraft struct {
	JwtHeader
	AircraftId string `param:"id"`
}

type ResponseGetAircraft struct {
	Aircraft     *operation.Aircraft `json:"aircraft"`
	TotalFlights int64               `json:"total_flights"`
}

type RequestCreateAircraft struct {
	JwtHeader
	Make         string  `json:"make"`
	Model        string  `json:"model"`
	Registration string  `json:"registration"`
	Status       string  `json:"status"`
	ImageUrl     *string `json:"image_url"`
}

type ResponseCreateAircraft operation.Aircraft

type RequestEditAircraft struct {
	JwtHeader
	AircraftId   string  `param:"id"`
	Make         *string `json:"make"`
	Model        *string `json:"model"`
	Registration *string `json:"registration"`
	Status       *string `json:"status"`
	ImageUrl     *string `json:"image_url"`
}

type ResponseEditAircraft operation.Aircraft

type RequestArchiveAircraft struct {
	JwtHeader
	AircraftId string `param:"id"`
}

type ResponseArchiveAircraft operation.Aircraft

type RequestRestoreAircraft struct {
	JwtHeader
	AircraftId string `param:"id"`
}

type ResponseRestoreAircraft operation.Aircraft

type RequestDeleteAircraft struct {
	JwtHeader
	AircraftId string `param:"id"`
}

type ResponseDeleteAircraft struct {
	Deleted bool `json:"deleted"`
}
