// Package service
package service

type StatsServiceInterface interface {
	GetDashboardStats(req *RequestDashboardStats) *ApiResponse[ResponseDashboardStats]
	GetMonthlyStats(req *RequestMonthlyStats) *ApiResponse[ResponseMonthlyStats]
	GetAircraftStats(req *RequestAircraftStats) *ApiResponse[ResponseAircraftStats]
}

type RequestDashboardStats struct {
	JwtHeader
}

// CurrencyStatus 近90天起降和载客资格状态
type CurrencyStatus struct {
	FlightsLast90Days  int  `json:"flights_last_90_days"`
	LandingsLast90Days int  `json:"landings_last_90_days"`
	IsCurrent          bool `json:"is_current"`
}

type ResponseDashboardStats struct {
	TotalFlights       int64           `json:"total_flights"`
	TotalHours         float64         `json:"total_hours"`
	TotalPicTime       float64         `json:"total_pic_time"`
	TotalDualTime      float64         `json:"total_dual_time"`
	TotalLandings      int             `json:"total_landings"`
	AverageFlightHours float64         `json:"average_flight_hours"`
	Currency           *CurrencyStatus `json:"currency"`
}

type RequestMonthlyStats struct {
	JwtHeader
}

// MonthlyBucket 单月统计, Label格式如 "Jan 2006"
type MonthlyBucket struct {
	Label    string  `json:"label"`
	Flights  int     `json:"flights"`
	Hours    float64 `json:"hours"`
	Landings int     `json:"landings"`
}

type ResponseMonthlyStats struct {
	Months []*MonthlyBucket `json:"months"`
}

type RequestAircraftStats struct {
	JwtHeader
}

type AircraftBucket struct {
	AircraftId string  `json:"aircraft_id"`
	Name       string  `json:"name"`
	Flights    int     `json:"flights"`
	Hours      float64 `json:"hours"`
}

type ResponseAircraftStats struct {
	Aircraft []*AircraftBucket `json:"aircraft"`
}
