// Package service
package service

import "github.com/flightlog-collective/skylog/internal/interfaces/operation"

type PreferencesServiceInterface interface {
	GetPreferences(req *RequestGetPreferences) *ApiResponse[ResponseGetPreferences]
	EditPreferences(req *RequestEditPreferences) *ApiResponse[ResponseEditPreferences]
}

type RequestGetPreferences struct {
	JwtHeader
}

type ResponseGetPreferences operation.Preferences

type RequestEditPreferences struct {
	JwtHeader
	HomeAirport       *string `json:"home_airport"`
	Theme             *string `json:"theme"`
	Units             *string `json:"units"`
	Currency          *string `json:"currency"`
	DefaultAircraftId *string `json:"default_aircraft_id"`
}

type ResponseEditPreferences operation.Preferences
