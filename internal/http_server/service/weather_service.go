// Package service
package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/flightlog-collective/skylog/internal/interfaces/config"
	"github.com/flightlog-collective/skylog/internal/interfaces/log"
	. "github.com/flightlog-collective/skylog/internal/interfaces/service"
	"github.com/flightlog-collective/skylog/internal/utils"
)

const metarRequestTimeout = 5 * time.Second

type WeatherService struct {
	logger     log.LoggerInterface
	config     *config.WeatherConfig
	httpClient *http.Client
	cache      map[string]*utils.CachedValue[ResponseGetMetar]
	mu         sync.Mutex
}

func NewWeatherService(logger log.LoggerInterface, config *config.WeatherConfig) *WeatherService {
	return &WeatherService{
		logger:     logger,
		config:     config,
		httpClient: &http.Client{Timeout: metarRequestTimeout},
		cache:      make(map[string]*utils.CachedValue[ResponseGetMetar]),
	}
}

var (
	SuccessGetMetar    = ApiStatus{StatusName: "GET_METAR", Description: "metar fetched", HttpCode: Ok}
	ErrWeatherUpstream = ApiStatus{StatusName: "WEATHER_UPSTREAM_ERROR", Description: "weather provider unavailable", HttpCode: ServerInternalError}
	ErrWeatherDisabled = ApiStatus{StatusName: "WEATHER_DISABLED", Description: "weather lookups are disabled", HttpCode: BadRequest}
	ErrInvalidStation  = ApiStatus{StatusName: "INVALID_STATION", Description: "invalid station code", HttpCode: BadRequest}
)

type metarPayload struct {
	Raw  string `json:"raw"`
	Time struct {
		Dt string `json:"dt"`
	} `json:"time"`
}

func validStation(station string) bool {
	if len(station) < 3 || len(station) > 4 {
		return false
	}
	for _, char := range station {
		if (char < 'A' || char > 'Z') && (char < '0' || char > '9') {
			return false
		}
	}
	return true
}

// mockMetar 无上游令牌时返回可辨识的占位报文
func mockMetar(station string) *ResponseGetMetar {
	now := time.Now().UTC()
	return &ResponseGetMetar{
		Station:  station,
		Raw:      fmt.Sprintf("%s %s 00000KT 9999 FEW040 15/05 Q1013", station, now.Format("021504Z")),
		Observed: now.Format(time.RFC3339),
		Mock:     true,
	}
}

func (weatherService *WeatherService) fetchMetar(station string) *ResponseGetMetar {
	ctx, cancel := context.WithTimeout(context.Background(), metarRequestTimeout)
	defer cancel()

	url := fmt.Sprintf("%s/metar/%s", strings.TrimSuffix(weatherService.config.BaseUrl, "/"), station)
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		weatherService.logger.ErrorF("Failed to build metar request for %s: %v", station, err)
		return nil
	}
	request.Header.Set("Authorization", "BEARER "+weatherService.config.ApiToken)

	response, err := weatherService.httpClient.Do(request)
	if err != nil {
		weatherService.logger.WarnF("Metar request for %s failed: %v", station, err)
		return nil
	}
	defer func() { _ = response.Body.Close() }()

	if response.StatusCode != http.StatusOK {
		weatherService.logger.WarnF("Metar request for %s returned status %d", station, response.StatusCode)
		return nil
	}

	body, err := io.ReadAll(io.LimitReader(response.Body, 64*1024))
	if err != nil {
		weatherService.logger.WarnF("Failed to read metar response for %s: %v", station, err)
		return nil
	}

	payload := &metarPayload{}
	if err := json.Unmarshal(body, payload); err != nil || payload.Raw == "" {
		weatherService.logger.WarnF("Failed to decode metar response for %s: %v", station, err)
		return nil
	}

	return &ResponseGetMetar{
		Station:  station,
		Raw:      payload.Raw,
		Observed: payload.Time.Dt,
	}
}

func (weatherService *WeatherService) stationCache(station string) *utils.CachedValue[ResponseGetMetar] {
	weatherService.mu.Lock()
	defer weatherService.mu.Unlock()
	cached, ok := weatherService.cache[station]
	if !ok {
		cached = utils.NewCachedValue(weatherService.config.CacheDuration, func() *ResponseGetMetar {
			return weatherService.fetchMetar(station)
		})
		weatherService.cache[station] = cached
	}
	return cached
}

func (weatherService *WeatherService) GetMetar(req *RequestGetMetar) *ApiResponse[ResponseGetMetar] {
	if !weatherService.config.Enabled {
		return NewApiResponse[ResponseGetMetar](&ErrWeatherDisabled, Unsatisfied, nil)
	}
	station := strings.ToUpper(strings.TrimSpace(req.Station))
	if !validStation(station) {
		return NewApiResponse[ResponseGetMetar](&ErrInvalidStation, Unsatisfied, nil)
	}
	if weatherService.config.ApiToken == "" {
		return NewApiResponse(&SuccessGetMetar, Unsatisfied, mockMetar(station))
	}
	metar := weatherService.stationCache(station).GetValue()
	if metar == nil {
		return NewApiResponse[ResponseGetMetar](&ErrWeatherUpstream, Unsatisfied, nil)
	}
	return NewApiResponse(&SuccessGetMetar, Unsatisfied, metar)
}
