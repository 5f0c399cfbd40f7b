// Package service
package service

import (
	"context"
	"errors"
	"regexp"
	"time"

	"github.com/flightlog-collective/skylog/internal/identity"
	"github.com/flightlog-collective/skylog/internal/interfaces/log"
	"github.com/flightlog-collective/skylog/internal/interfaces/operation"
	. "github.com/flightlog-collective/skylog/internal/interfaces/service"
)

var (
	homeAirportRegex = regexp.MustCompile(`^[A-Z]{4}$`)
	currencyRegex    = regexp.MustCompile(`^[A-Z]{3}$`)

	allowedThemes = map[string]bool{"LIGHT": true, "DARK": true, "SYSTEM": true}
	allowedUnits  = map[string]bool{"METRIC": true, "IMPERIAL": true}
)

type PreferencesService struct {
	logger               log.LoggerInterface
	preferencesOperation operation.PreferencesOperationInterface
	aircraftOperation    operation.AircraftOperationInterface
	identityClient       *identity.Client
}

func NewPreferencesService(
	logger log.LoggerInterface,
	preferencesOperation operation.PreferencesOperationInterface,
	aircraftOperation operation.AircraftOperationInterface,
	identityClient *identity.Client,
) *PreferencesService {
	return &PreferencesService{
		logger:               logger,
		preferencesOperation: preferencesOperation,
		aircraftOperation:    aircraftOperation,
		identityClient:       identityClient,
	}
}

var (
	SuccessGetPreferences  = ApiStatus{StatusName: "GET_PREFERENCES", Description: "preferences fetched", HttpCode: Ok}
	SuccessEditPreferences = ApiStatus{StatusName: "EDIT_PREFERENCES", Description: "preferences updated", HttpCode: Ok}
)

// getOrCreate 首次访问时落库默认偏好
func (preferencesService *PreferencesService) getOrCreate(uid string) (*operation.Preferences, error) {
	preferences, err := preferencesService.preferencesOperation.GetPreferencesByUserId(uid)
	if errors.Is(err, operation.ErrPreferencesNotFound) {
		preferences = &operation.Preferences{UserId: uid}
		if err := preferencesService.preferencesOperation.SavePreferences(preferences); err != nil {
			return nil, err
		}
		return preferencesService.preferencesOperation.GetPreferencesByUserId(uid)
	}
	return preferences, err
}

func (preferencesService *PreferencesService) GetPreferences(req *RequestGetPreferences) *ApiResponse[ResponseGetPreferences] {
	preferences, err := preferencesService.getOrCreate(req.Uid)
	if err != nil {
		return NewApiResponse[ResponseGetPreferences](&ErrDatabaseFail, Unsatisfied, nil)
	}
	return NewApiResponse(&SuccessGetPreferences, Unsatisfied, (*ResponseGetPreferences)(preferences))
}

func (preferencesService *PreferencesService) EditPreferences(req *RequestEditPreferences) *ApiResponse[ResponseEditPreferences] {
	violations := make([]*FieldViolation, 0)
	info := map[string]interface{}{}
	if req.HomeAirport != nil {
		if !homeAirportRegex.MatchString(*req.HomeAirport) {
			violations = append(violations, &FieldViolation{Field: "home_airport", Message: "home airport must be 4 uppercase letters"})
		} else {
			info["home_airport"] = *req.HomeAirport
		}
	}
	if req.Theme != nil {
		if !allowedThemes[*req.Theme] {
			violations = append(violations, &FieldViolation{Field: "theme", Message: "theme must be LIGHT, DARK or SYSTEM"})
		} else {
			info["theme"] = *req.Theme
		}
	}
	if req.Units != nil {
		if !allowedUnits[*req.Units] {
			violations = append(violations, &FieldViolation{Field: "units", Message: "units must be METRIC or IMPERIAL"})
		} else {
			info["units"] = *req.Units
		}
	}
	if req.Currency != nil {
		if !currencyRegex.MatchString(*req.Currency) {
			violations = append(violations, &FieldViolation{Field: "currency", Message: "currency must be a 3 letter code"})
		} else {
			info["currency"] = *req.Currency
		}
	}
	if req.DefaultAircraftId != nil {
		if *req.DefaultAircraftId == "" {
			info["default_aircraft_id"] = nil
		} else if _, err := preferencesService.aircraftOperation.GetAircraftById(req.Uid, *req.DefaultAircraftId); err != nil {
			violations = append(violations, &FieldViolation{Field: "default_aircraft_id", Message: "aircraft does not exist"})
		} else {
			info["default_aircraft_id"] = *req.DefaultAircraftId
		}
	}
	if len(violations) > 0 {
		return NewValidationErrorResponse[ResponseEditPreferences](violations)
	}
	if len(info) == 0 {
		return NewApiResponse[ResponseEditPreferences](&ErrLackParam, Unsatisfied, nil)
	}

	preferences, err := preferencesService.getOrCreate(req.Uid)
	if err != nil {
		return NewApiResponse[ResponseEditPreferences](&ErrDatabaseFail, Unsatisfied, nil)
	}
	if err := preferencesService.preferencesOperation.UpdatePreferencesInfo(preferences, info); err != nil {
		return NewApiResponse[ResponseEditPreferences](&ErrDatabaseFail, Unsatisfied, nil)
	}

	preferencesService.mirrorToProvider(req.ProviderId, info)

	return NewApiResponse(&SuccessEditPreferences, Unsatisfied, (*ResponseEditPreferences)(preferences))
}

// mirrorToProvider 将外观偏好同步到身份提供方, 失败仅记录日志
func (preferencesService *PreferencesService) mirrorToProvider(providerId string, info map[string]interface{}) {
	if !preferencesService.identityClient.Enabled() || providerId == "" {
		return
	}
	metadata := map[string]interface{}{}
	if theme, ok := info["theme"]; ok {
		metadata["theme"] = theme
	}
	if units, ok := info["units"]; ok {
		metadata["units"] = units
	}
	if len(metadata) == 0 {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := preferencesService.identityClient.UpdateUserMetadata(ctx, providerId, metadata); err != nil {
		preferencesService.logger.WarnF("Failed to mirror preferences to identity provider: %v", err)
	}
}
