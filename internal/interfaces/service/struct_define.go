// Package service
package service

import (
	"errors"
	"time"

	"github.com/flightlog-collective/skylog/internal/interfaces/config"
	"github.com/flightlog-collective/skylog/internal/interfaces/operation"
	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

type HttpCode int

const (
	Unsatisfied         HttpCode = 0
	Ok                  HttpCode = 200
	BadRequest          HttpCode = 400
	Unauthorized        HttpCode = 401
	PermissionDenied    HttpCode = 403
	NotFound            HttpCode = 404
	Conflict            HttpCode = 409
	PayloadTooLarge     HttpCode = 413
	TooManyRequests     HttpCode = 429
	ServerInternalError HttpCode = 500
)

func (hc HttpCode) Code() int {
	return int(hc)
}

type ApiStatus struct {
	StatusName  string
	Description string
	HttpCode    HttpCode
}

type ApiResponse[T any] struct {
	HttpCode   int               `json:"-"`
	Code       string            `json:"code"`
	Message    string            `json:"message"`
	Data       *T                `json:"data"`
	Violations []*FieldViolation `json:"violations,omitempty"`
}

// FieldViolation 单个字段的校验错误
type FieldViolation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Claims 会话令牌声明, subject为身份提供商的用户ID
type Claims struct {
	ProviderId string `json:"provider_id"`
	Email      string `json:"email"`
	config     *config.JWTConfig
	jwt.RegisteredClaims
}

// JwtHeader 控制器解析后注入请求的用户上下文
type JwtHeader struct {
	Uid        string
	ProviderId string
	Role       operation.Role
	Ip         string
	UserAgent  string
}

func NewClaims(config *config.JWTConfig, providerId, email string) *Claims {
	return &Claims{
		ProviderId: providerId,
		Email:      email,
		config:     config,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "SkylogServer",
			Subject:   providerId,
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			NotBefore: jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(config.ExpiresDuration)),
		},
	}
}

func (claim *Claims) GenerateKey() string {
	token := jwt.NewWithClaims(jwt.SigningMethodHS512, claim)
	tokenString, _ := token.SignedString([]byte(claim.config.Secret))
	return tokenString
}

func (res *ApiResponse[T]) Response(ctx echo.Context) error {
	return ctx.JSON(res.HttpCode, res)
}

var (
	ErrIllegalParam          = ApiStatus{"PARAM_ERROR", "invalid parameter", BadRequest}
	ErrLackParam             = ApiStatus{"PARAM_LACK_ERROR", "missing parameter", BadRequest}
	ErrValidationFail        = ApiStatus{"VALIDATION_ERROR", "request validation failed", BadRequest}
	ErrUnauthenticated       = ApiStatus{"UNAUTHENTICATED", "authentication required", Unauthorized}
	ErrNoPermission          = ApiStatus{"NO_PERMISSION", "operation not allowed", PermissionDenied}
	ErrDatabaseFail          = ApiStatus{"DATABASE_ERROR", "server internal error", ServerInternalError}
	ErrUserNotFound          = ApiStatus{"USER_NOT_FOUND", "user not found", NotFound}
	ErrAircraftNotFound      = ApiStatus{"AIRCRAFT_NOT_FOUND", "aircraft not found", NotFound}
	ErrFlightNotFound        = ApiStatus{"FLIGHT_NOT_FOUND", "flight not found", NotFound}
	ErrRegistrationTaken     = ApiStatus{"REGISTRATION_TAKEN", "registration already in use", Conflict}
	ErrAircraftInUse         = ApiStatus{"AIRCRAFT_IN_USE", "aircraft has flights attached", Conflict}
	ErrUserExists            = ApiStatus{"USER_EXISTS", "user already exists", Conflict}
	ErrRateLimited           = ApiStatus{"RATE_LIMITED", "too many requests", TooManyRequests}
	ErrPayloadTooLarge       = ApiStatus{"PAYLOAD_TOO_LARGE", "request payload too large", PayloadTooLarge}
	ErrMissingOrMalformedJwt = ApiStatus{"MISSING_OR_MALFORMED_JWT", "missing or malformed session token", Unauthorized}
	ErrInvalidOrExpiredJwt   = ApiStatus{"INVALID_OR_EXPIRED_JWT", "invalid or expired session token", Unauthorized}
	ErrUnknownJwt            = ApiStatus{"UNKNOWN_JWT_ERROR", "unknown session token error", ServerInternalError}
)

func NewErrorResponse(ctx echo.Context, codeStatus *ApiStatus) error {
	return NewApiResponse[any](codeStatus, Unsatisfied, nil).Response(ctx)
}

// NewValidationErrorResponse 携带字段级校验错误的响应
func NewValidationErrorResponse[T any](violations []*FieldViolation) *ApiResponse[T] {
	response := NewApiResponse[T](&ErrValidationFail, Unsatisfied, nil)
	response.Violations = violations
	return response
}

func NewApiResponse[T any](codeStatus *ApiStatus, httpCode HttpCode, data *T) *ApiResponse[T] {
	if httpCode == Unsatisfied {
		httpCode = codeStatus.HttpCode
	}
	if httpCode == Unsatisfied {
		httpCode = Ok
	}
	return &ApiResponse[T]{
		HttpCode: httpCode.Code(),
		Code:     codeStatus.StatusName,
		Message:  codeStatus.Description,
		Data:     data,
	}
}

// CallDBFuncAndCheckError 调用数据库操作函数并处理错误
func CallDBFuncAndCheckError[R any, T any](fc func() (*R, error)) (*R, *ApiResponse[T]) {
	result, err := fc()
	switch {
	case errors.Is(err, operation.ErrUserNotFound):
		return nil, NewApiResponse[T](&ErrUserNotFound, Unsatisfied, nil)
	case errors.Is(err, operation.ErrUserDuplicate):
		return nil, NewApiResponse[T](&ErrUserExists, Unsatisfied, nil)
	case errors.Is(err, operation.ErrAircraftNotFound):
		return nil, NewApiResponse[T](&ErrAircraftNotFound, Unsatisfied, nil)
	case errors.Is(err, operation.ErrRegistrationTaken):
		return nil, NewApiResponse[T](&ErrRegistrationTaken, Unsatisfied, nil)
	case errors.Is(err, operation.ErrAircraftInUse):
		return nil, NewApiResponse[T](&ErrAircraftInUse, Unsatisfied, nil)
	case errors.Is(err, operation.ErrFlightNotFound):
		return nil, NewApiResponse[T](&ErrFlightNotFound, Unsatisfied, nil)
	case err != nil:
		return nil, NewApiResponse[T](&ErrDatabaseFail, Unsatisfied, nil)
	default:
		return result, nil
	}
}

// GetUserAndCheckRole 从数据库获取实时用户数据并检查角色门槛
func GetUserAndCheckRole[T any](userOperation operation.UserOperationInterface, uid string, role operation.Role) (*operation.User, *ApiResponse[T]) {
	// 敏感操作获取实时数据
	user, res := CallDBFuncAndCheckError[operation.User, T](func() (*operation.User, error) { return userOperation.GetUserByUid(uid) })
	if res != nil {
		return nil, res
	}
	if !user.Role.AtLeast(role) {
		return nil, NewApiResponse[T](&ErrNoPermission, Unsatisfied, nil)
	}
	return user, nil
}
