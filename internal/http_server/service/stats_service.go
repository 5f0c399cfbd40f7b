// Package service
package service

import (
	"time"

	"github.com/flightlog-collective/skylog/internal/interfaces/log"
	"github.com/flightlog-collective/skylog/internal/interfaces/operation"
	. "github.com/flightlog-collective/skylog/internal/interfaces/service"
	"github.com/flightlog-collective/skylog/internal/utils"
)

const (
	currencyWindowDays  = 90
	currencyMinLandings = 3
	monthlyStatsMonths  = 12
)

type StatsService struct {
	logger          log.LoggerInterface
	flightOperation operation.FlightOperationInterface
	now             func() time.Time
}

func NewStatsService(logger log.LoggerInterface, flightOperation operation.FlightOperationInterface) *StatsService {
	return &StatsService{logger: logger, flightOperation: flightOperation, now: time.Now}
}

var (
	SuccessGetDashboardStats = ApiStatus{StatusName: "GET_DASHBOARD_STATS", Description: "dashboard stats computed", HttpCode: Ok}
	SuccessGetMonthlyStats   = ApiStatus{StatusName: "GET_MONTHLY_STATS", Description: "monthly stats computed", HttpCode: Ok}
	SuccessGetAircraftStats  = ApiStatus{StatusName: "GET_AIRCRAFT_STATS", Description: "aircraft stats computed", HttpCode: Ok}
)

func computeDashboardStats(flights []*operation.Flight, now time.Time) *ResponseDashboardStats {
	stats := &ResponseDashboardStats{TotalFlights: int64(len(flights))}
	windowStart := now.AddDate(0, 0, -currencyWindowDays)
	recentFlights := 0
	recentLandings := 0
	for _, flight := range flights {
		stats.TotalHours += flight.Duration
		stats.TotalPicTime += flight.PicTime
		stats.TotalDualTime += flight.DualTime
		stats.TotalLandings += flight.Landings
		if !flight.Date.Before(windowStart) {
			recentFlights++
			recentLandings += flight.Landings
		}
	}
	stats.TotalHours = utils.Round2(stats.TotalHours)
	stats.TotalPicTime = utils.Round2(stats.TotalPicTime)
	stats.TotalDualTime = utils.Round2(stats.TotalDualTime)
	if stats.TotalFlights > 0 {
		stats.AverageFlightHours = utils.Round2(stats.TotalHours / float64(stats.TotalFlights))
	}
	stats.Currency = &CurrencyStatus{
		FlightsLast90Days:  recentFlights,
		LandingsLast90Days: recentLandings,
		IsCurrent:          recentLandings >= currencyMinLandings,
	}
	return stats
}

// computeMonthlyStats 统计最近12个月, 空月份补零, 按时间正序
func computeMonthlyStats(flights []*operation.Flight, now time.Time) []*MonthlyBucket {
	buckets := make([]*MonthlyBucket, 0, monthlyStatsMonths)
	index := make(map[string]*MonthlyBucket, monthlyStatsMonths)
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -(monthlyStatsMonths - 1), 0)
	for i := 0; i < monthlyStatsMonths; i++ {
		month := start.AddDate(0, i, 0)
		bucket := &MonthlyBucket{Label: month.Format("Jan 2006")}
		buckets = append(buckets, bucket)
		index[month.Format("2006-01")] = bucket
	}
	for _, flight := range flights {
		bucket, ok := index[flight.Date.Format("2006-01")]
		if !ok {
			continue
		}
		bucket.Flights++
		bucket.Hours += flight.Duration
		bucket.Landings += flight.Landings
	}
	for _, bucket := range buckets {
		bucket.Hours = utils.Round2(bucket.Hours)
	}
	return buckets
}

func computeAircraftStats(flights []*operation.Flight) []*AircraftBucket {
	buckets := make([]*AircraftBucket, 0)
	index := make(map[string]*AircraftBucket)
	for _, flight := range flights {
		bucket, ok := index[flight.AircraftId]
		if !ok {
			name := "Unknown"
			if flight.Aircraft != nil {
				name = flight.Aircraft.Make + " " + flight.Aircraft.Model + " (" + flight.Aircraft.Registration + ")"
			}
			bucket = &AircraftBucket{AircraftId: flight.AircraftId, Name: name}
			index[flight.AircraftId] = bucket
			buckets = append(buckets, bucket)
		}
		bucket.Flights++
		bucket.Hours += flight.Duration
	}
	for _, bucket := range buckets {
		bucket.Hours = utils.Round2(bucket.Hours)
	}
	return buckets
}

func (statsService *StatsService) getAllFlights(uid string) ([]*operation.Flight, error) {
	return statsService.flightOperation.GetFlights(uid, &operation.FlightQuery{TimeFilter: operation.FilterAll})
}

func (statsService *StatsService) GetDashboardStats(req *RequestDashboardStats) *ApiResponse[ResponseDashboardStats] {
	flights, err := statsService.getAllFlights(req.Uid)
	if err != nil {
		return NewApiResponse[ResponseDashboardStats](&ErrDatabaseFail, Unsatisfied, nil)
	}
	return NewApiResponse(&SuccessGetDashboardStats, Unsatisfied, computeDashboardStats(flights, statsService.now()))
}

func (statsService *StatsService) GetMonthlyStats(req *RequestMonthlyStats) *ApiResponse[ResponseMonthlyStats] {
	flights, err := statsService.getAllFlights(req.Uid)
	if err != nil {
		return NewApiResponse[ResponseMonthlyStats](&ErrDatabaseFail, Unsatisfied, nil)
	}
	return NewApiResponse(&SuccessGetMonthlyStats, Unsatisfied, &ResponseMonthlyStats{Months: computeMonthlyStats(flights, statsService.now())})
}

func (statsService *StatsService) GetAircraftStats(req *RequestAircraftStats) *ApiResponse[ResponseAircraftStats] {
	flights, err := statsService.getAllFlights(req.Uid)
	if err != nil {
		return NewApiResponse[ResponseAircraftStats](&ErrDatabaseFail, Unsatisfied, nil)
	}
	return NewApiResponse(&SuccessGetAircraftStats, Unsatisfied, &ResponseAircraftStats{Aircraft: computeAircraftStats(flights)})
}
