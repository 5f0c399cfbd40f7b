package service

import (
	"testing"
	"time"

	"github.com/flightlog-collective/skylog/internal/interfaces/operation"
)

func statsFlight(date time.Time, duration, pic, dual float64, landings int) *operation.Flight {
	return &operation.Flight{
		Date:     date,
		Duration: duration,
		PicTime:  pic,
		DualTime: dual,
		Landings: landings,
	}
}

func TestComputeDashboardStats(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	flights := []*operation.Flight{
		statsFlight(now.AddDate(0, 0, -10), 1.5, 1.5, 0, 2),
		statsFlight(now.AddDate(0, 0, -40), 2.2, 0, 2.2, 1),
		statsFlight(now.AddDate(0, 0, -200), 3.0, 3.0, 0, 4),
	}

	stats := computeDashboardStats(flights, now)
	if stats.TotalFlights != 3 {
		t.Errorf("TotalFlights = %d; expected 3", stats.TotalFlights)
	}
	if stats.TotalHours != 6.7 {
		t.Errorf("TotalHours = %v; expected 6.7", stats.TotalHours)
	}
	if stats.TotalPicTime != 4.5 {
		t.Errorf("TotalPicTime = %v; expected 4.5", stats.TotalPicTime)
	}
	if stats.TotalDualTime != 2.2 {
		t.Errorf("TotalDualTime = %v; expected 2.2", stats.TotalDualTime)
	}
	if stats.TotalLandings != 7 {
		t.Errorf("TotalLandings = %d; expected 7", stats.TotalLandings)
	}
	if stats.AverageFlightHours != 2.23 {
		t.Errorf("AverageFlightHours = %v; expected 2.23", stats.AverageFlightHours)
	}
	if stats.Currency.FlightsLast90Days != 2 {
		t.Errorf("FlightsLast90Days = %d; expected 2", stats.Currency.FlightsLast90Days)
	}
	if stats.Currency.LandingsLast90Days != 3 {
		t.Errorf("LandingsLast90Days = %d; expected 3", stats.Currency.LandingsLast90Days)
	}
	if !stats.Currency.IsCurrent {
		t.Error("IsCurrent = false; expected true with 3 recent landings")
	}
}

func TestComputeDashboardStatsNotCurrent(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	flights := []*operation.Flight{
		statsFlight(now.AddDate(0, 0, -10), 1.0, 1.0, 0, 2),
		statsFlight(now.AddDate(0, 0, -91), 1.0, 1.0, 0, 5),
	}

	stats := computeDashboardStats(flights, now)
	if stats.Currency.LandingsLast90Days != 2 {
		t.Errorf("LandingsLast90Days = %d; expected 2", stats.Currency.LandingsLast90Days)
	}
	if stats.Currency.IsCurrent {
		t.Error("IsCurrent = true; expected false with 2 recent landings")
	}
}

func TestComputeDashboardStatsEmpty(t *testing.T) {
	stats := computeDashboardStats(nil, time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC))
	if stats.TotalFlights != 0 || stats.TotalHours != 0 || stats.TotalLandings != 0 || stats.AverageFlightHours != 0 {
		t.Errorf("empty stats = %+v; expected zero values", stats)
	}
	if stats.Currency == nil || stats.Currency.IsCurrent {
		t.Errorf("empty currency = %+v; expected not current", stats.Currency)
	}
}

func TestComputeMonthlyStats(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	flights := []*operation.Flight{
		statsFlight(time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), 1.5, 1.5, 0, 2),
		statsFlight(time.Date(2025, 6, 20, 0, 0, 0, 0, time.UTC), 2.0, 2.0, 0, 1),
		statsFlight(time.Date(2024, 7, 10, 0, 0, 0, 0, time.UTC), 3.0, 3.0, 0, 3),
		// 超出12个月窗口, 应被忽略
		statsFlight(time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC), 9.0, 9.0, 0, 9),
	}

	months := computeMonthlyStats(flights, now)
	if len(months) != 12 {
		t.Fatalf("len(months) = %d; expected 12", len(months))
	}
	if months[0].Label != "Jul 2024" {
		t.Errorf("months[0].Label = %q; expected \"Jul 2024\"", months[0].Label)
	}
	if months[11].Label != "Jun 2025" {
		t.Errorf("months[11].Label = %q; expected \"Jun 2025\"", months[11].Label)
	}
	if months[0].Flights != 1 || months[0].Hours != 3.0 || months[0].Landings != 3 {
		t.Errorf("months[0] = %+v; expected 1 flight, 3.0 hours, 3 landings", months[0])
	}
	if months[11].Flights != 2 || months[11].Hours != 3.5 || months[11].Landings != 3 {
		t.Errorf("months[11] = %+v; expected 2 flights, 3.5 hours, 3 landings", months[11])
	}
	for i := 1; i < 11; i++ {
		if months[i].Flights != 0 {
			t.Errorf("months[%d].Flights = %d; expected 0", i, months[i].Flights)
		}
	}
}

func TestComputeAircraftStats(t *testing.T) {
	cessna := &operation.Aircraft{Registration: "N12345", Make: "Cessna", Model: "172"}
	flights := []*operation.Flight{
		{AircraftId: "a1", Aircraft: cessna, Duration: 1.5},
		{AircraftId: "a1", Aircraft: cessna, Duration: 2.0},
		{AircraftId: "a2", Duration: 1.0},
	}

	buckets := computeAircraftStats(flights)
	if len(buckets) != 2 {
		t.Fatalf("len(buckets) = %d; expected 2", len(buckets))
	}
	if buckets[0].Name != "Cessna 172 (N12345)" {
		t.Errorf("buckets[0].Name = %q; expected \"Cessna 172 (N12345)\"", buckets[0].Name)
	}
	if buckets[0].Flights != 2 || buckets[0].Hours != 3.5 {
		t.Errorf("buckets[0] = %+v; expected 2 flights, 3.5 hours", buckets[0])
	}
	if buckets[1].Name != "Unknown" {
		t.Errorf("buckets[1].Name = %q; expected \"Unknown\" without preloaded aircraft", buckets[1].Name)
	}
	if buckets[1].Flights != 1 || buckets[1].Hours != 1.0 {
		t.Errorf("buckets[1] = %+v; expected 1 flight, 1.0 hours", buckets[1])
	}
}
