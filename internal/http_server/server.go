// Package http_server
package http_server

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/flightlog-collective/skylog/internal/http_server/controller"
	mid "github.com/flightlog-collective/skylog/internal/http_server/middleware"
	impl "github.com/flightlog-collective/skylog/internal/http_server/service"
	"github.com/flightlog-collective/skylog/internal/http_server/service/store"
	"github.com/flightlog-collective/skylog/internal/identity"
	. "github.com/flightlog-collective/skylog/internal/interfaces"
	"github.com/flightlog-collective/skylog/internal/interfaces/service"
	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/samber/slog-echo"
)

type HttpServerShutdownCallback struct {
	serverHandler *echo.Echo
}

func NewHttpServerShutdownCallback(serverHandler *echo.Echo) *HttpServerShutdownCallback {
	return &HttpServerShutdownCallback{
		serverHandler: serverHandler,
	}
}

func (hc *HttpServerShutdownCallback) Invoke(ctx context.Context) error {
	timeoutCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	return hc.serverHandler.Shutdown(timeoutCtx)
}

func StartHttpServer(applicationContent *ApplicationContent) {
	config := applicationContent.ConfigManager().Config()
	logger := applicationContent.Logger()

	e := echo.New()
	e.Logger.SetOutput(io.Discard)
	e.Logger.SetLevel(log.OFF)
	httpConfig := config.Server.HttpServer

	switch httpConfig.ProxyType {
	case 0:
		e.IPExtractor = echo.ExtractIPDirect()
	case 1:
		e.IPExtractor = echo.ExtractIPFromXFFHeader()
	case 2:
		e.IPExtractor = echo.ExtractIPFromRealIPHeader()
	default:
		logger.WarnF("Invalid proxy type %d, using default (direct)", httpConfig.ProxyType)
		e.IPExtractor = echo.ExtractIPDirect()
	}

	if httpConfig.SSL.ForceSSL {
		e.Use(middleware.HTTPSRedirect())
	}

	e.Use(middleware.TimeoutWithConfig(middleware.TimeoutConfig{Timeout: 30 * time.Second}))
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		LogErrorFunc: func(ctx echo.Context, err error, stack []byte) error {
			logger.ErrorF("Recovered from a fatal error: %v, stack: %s", err, string(stack))
			return err
		},
	}))

	loggerConfig := slogecho.Config{
		DefaultLevel:     slog.LevelInfo,
		ClientErrorLevel: slog.LevelWarn,
		ServerErrorLevel: slog.LevelError,
	}
	e.Use(slogecho.NewWithConfig(slog.Default(), loggerConfig))
	e.Use(middleware.SecureWithConfig(middleware.SecureConfig{
		XSSProtection:         "1; mode=block",
		ContentTypeNosniff:    "nosniff",
		XFrameOptions:         "SAMEORIGIN",
		HSTSMaxAge:            httpConfig.SSL.HstsExpiredTime,
		HSTSExcludeSubdomains: !httpConfig.SSL.IncludeDomain,
	}))
	e.Use(middleware.CORS())
	if httpConfig.BodyLimit != "" {
		e.Use(middleware.BodyLimit(httpConfig.BodyLimit))
	}
	e.Use(middleware.GzipWithConfig(middleware.GzipConfig{
		Level: 5,
	}))

	if httpConfig.Limits.RateLimit <= 0 {
		logger.WarnF("Invalid rate limit value %d, using default 5", httpConfig.Limits.RateLimit)
		httpConfig.Limits.RateLimit = 5
	}

	if httpConfig.Limits.RateLimitDuration <= 0 {
		logger.WarnF("Invalid rate limit duration %v, using default 1m", httpConfig.Limits.RateLimitDuration)
		httpConfig.Limits.RateLimitDuration = time.Minute
	}

	// 公开入口独立限流, 免得匿名流量吃掉认证接口的配额
	publicLimiter := mid.NewFixedWindowLimiter(
		httpConfig.Limits.RateLimitDuration,
		httpConfig.Limits.RateLimit,
	)
	cleanupInterval := httpConfig.Limits.RateLimitDuration * 2
	if cleanupInterval > time.Hour {
		cleanupInterval = time.Hour
		logger.InfoF("Limiting cleanup interval to 1 hour for efficiency")
	}
	publicLimiter.StartCleanup(cleanupInterval)
	publicRateLimit := mid.RateLimitMiddleware(publicLimiter, mid.ClientKeyFunc)

	payloadMonitor := mid.NewPayloadMonitor(logger, httpConfig.Limits)

	jwtConfig := echojwt.Config{
		SigningKey:    []byte(httpConfig.JWT.Secret),
		TokenLookup:   "header:Authorization:Bearer ",
		SigningMethod: "HS512",
		NewClaimsFunc: func(c echo.Context) jwt.Claims {
			return new(service.Claims)
		},
		ErrorHandler: func(c echo.Context, err error) error {
			var data *service.ApiResponse[any]
			switch {
			case errors.Is(err, echojwt.ErrJWTMissing):
				data = service.NewApiResponse[any](&service.ErrMissingOrMalformedJwt, service.Unsatisfied, nil)
			case errors.Is(err, echojwt.ErrJWTInvalid):
				data = service.NewApiResponse[any](&service.ErrInvalidOrExpiredJwt, service.Unsatisfied, nil)
			default:
				data = service.NewApiResponse[any](&service.ErrUnknownJwt, service.Unsatisfied, nil)
			}
			return data.Response(c)
		},
	}

	jwtMiddleware := echojwt.WithConfig(jwtConfig)

	impl.InitValidator(httpConfig.Limits)
	emailService := impl.NewEmailService(logger, httpConfig.Email)

	var storeService service.StoreServiceInterface
	storeService = store.NewLocalStoreService(logger, httpConfig.Store)
	switch httpConfig.Store.StoreType {
	case 1:
		storeService = store.NewALiYunOssStoreService(logger, httpConfig.Store, storeService)
	case 2:
		storeService = store.NewTencentCosStoreService(logger, httpConfig.Store, storeService)
	}

	operations := applicationContent.Operations()
	userOperation := operations.UserOperation()
	aircraftOperation := operations.AircraftOperation()
	flightOperation := operations.FlightOperation()
	preferencesOperation := operations.PreferencesOperation()
	auditLogOperation := operations.AuditLogOperation()
	feedbackOperation := operations.FeedbackOperation()

	identityClient := identity.NewClient(logger, httpConfig.Identity)

	var webhookVerifier *identity.WebhookVerifier
	if httpConfig.Identity.WebhookSecret == "" {
		logger.WarnF("Identity webhook secret not configured, webhook deliveries will be rejected")
	} else if verifier, err := identity.NewWebhookVerifier(httpConfig.Identity.WebhookSecret); err != nil {
		logger.ErrorF("Invalid identity webhook secret: %v", err)
	} else {
		webhookVerifier = verifier
	}

	auditService := impl.NewAuditService(logger, auditLogOperation, userOperation)
	provisioner := impl.NewProvisioner(logger, httpConfig.Identity, userOperation, preferencesOperation, identityClient)
	userService := impl.NewUserService(logger, httpConfig, userOperation, flightOperation, provisioner, auditService)
	aircraftService := impl.NewAircraftService(logger, aircraftOperation, auditService)
	flightService := impl.NewFlightService(logger, flightOperation, aircraftOperation, auditService)
	statsService := impl.NewStatsService(logger, flightOperation)
	preferencesService := impl.NewPreferencesService(logger, preferencesOperation, aircraftOperation, identityClient)
	adminService := impl.NewAdminService(logger, userOperation, aircraftOperation, flightOperation, auditService, identityClient, payloadMonitor)
	feedbackService := impl.NewFeedbackService(logger, httpConfig.Limits, feedbackOperation, userOperation, emailService)
	weatherService := impl.NewWeatherService(logger, httpConfig.Weather)
	identityService := impl.NewIdentitySyncService(logger, userOperation, provisioner, auditService)

	userController := controller.NewUserController(logger, provisioner, userService)
	aircraftController := controller.NewAircraftController(logger, provisioner, aircraftService)
	flightController := controller.NewFlightController(logger, provisioner, flightService)
	statsController := controller.NewStatsController(logger, provisioner, statsService)
	preferencesController := controller.NewPreferencesController(logger, provisioner, preferencesService)
	adminController := controller.NewAdminController(logger, provisioner, adminService, auditService, feedbackService)
	feedbackController := controller.NewFeedbackController(logger, feedbackService)
	weatherController := controller.NewWeatherController(logger, provisioner, weatherService)
	fileController := controller.NewFileController(logger, provisioner, storeService)
	webhookController := controller.NewWebhookController(logger, webhookVerifier, identityService)

	apiGroup := e.Group("/api")
	apiGroup.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	// 匿名可达的消息入口, 叠加限流与载荷监控
	apiGroup.POST("/feedback", feedbackController.SubmitFeedback, publicRateLimit, mid.PayloadMonitorMiddleware(payloadMonitor))
	apiGroup.POST("/contact", feedbackController.SubmitContact, publicRateLimit, mid.PayloadMonitorMiddleware(payloadMonitor))

	webhookGroup := apiGroup.Group("/webhooks")
	webhookGroup.POST("/identity", webhookController.HandleIdentityWebhook)

	apiGroup.GET("/profile", userController.GetCurrentProfile, jwtMiddleware)
	apiGroup.PATCH("/profile", userController.EditCurrentProfile, jwtMiddleware)

	userGroup := apiGroup.Group("/users")
	userGroup.POST("/sync", userController.SyncCurrentUser, jwtMiddleware)

	aircraftGroup := apiGroup.Group("/aircraft")
	aircraftGroup.GET("", aircraftController.GetAircraftList, jwtMiddleware)
	aircraftGroup.POST("", aircraftController.CreateAircraft, jwtMiddleware)
	aircraftGroup.GET("/:id", aircraftController.GetAircraft, jwtMiddleware)
	aircraftGroup.PATCH("/:id", aircraftController.EditAircraft, jwtMiddleware)
	aircraftGroup.POST("/:id/archive", aircraftController.ArchiveAircraft, jwtMiddleware)
	aircraftGroup.POST("/:id/restore", aircraftController.RestoreAircraft, jwtMiddleware)
	aircraftGroup.DELETE("/:id/permanent", aircraftController.DeleteAircraft, jwtMiddleware)

	flightGroup := apiGroup.Group("/flights")
	flightGroup.GET("", flightController.GetFlightList, jwtMiddleware)
	flightGroup.POST("", flightController.CreateFlight, jwtMiddleware)
	flightGroup.GET("/recent", flightController.GetRecentFlights, jwtMiddleware)
	flightGroup.GET("/aircraft", flightController.GetFlightAircraft, jwtMiddleware)
	flightGroup.GET("/aircraft/:id", flightController.GetFlightsByAircraft, jwtMiddleware)
	flightGroup.GET("/:id", flightController.GetFlight, jwtMiddleware)
	flightGroup.PATCH("/:id", flightController.EditFlight, jwtMiddleware)
	flightGroup.DELETE("/:id", flightController.DeleteFlight, jwtMiddleware)

	statsGroup := apiGroup.Group("/stats")
	statsGroup.GET("/dashboard", statsController.GetDashboardStats, jwtMiddleware)
	statsGroup.GET("/monthly", statsController.GetMonthlyStats, jwtMiddleware)
	statsGroup.GET("/aircraft", statsController.GetAircraftStats, jwtMiddleware)

	apiGroup.GET("/preferences", preferencesController.GetPreferences, jwtMiddleware)
	apiGroup.PATCH("/preferences", preferencesController.EditPreferences, jwtMiddleware)

	apiGroup.GET("/weather/metar/:station", weatherController.GetMetar, jwtMiddleware)

	fileGroup := apiGroup.Group("/files")
	fileGroup.POST("/images", fileController.UploadImages, jwtMiddleware)

	adminGroup := apiGroup.Group("/admin")
	adminGroup.GET("/stats", adminController.GetAdminStats, jwtMiddleware)
	adminGroup.GET("/users/recent", adminController.GetRecentUsers, jwtMiddleware)
	adminGroup.GET("/users", adminController.GetUserList, jwtMiddleware)
	adminGroup.POST("/users/:uid/verify", adminController.VerifyPilot, jwtMiddleware)
	adminGroup.PUT("/users/:uid/role", adminController.EditUserRole, jwtMiddleware)
	adminGroup.DELETE("/users/:uid", adminController.DeleteUser, jwtMiddleware)
	adminGroup.GET("/security/events", adminController.GetSecurityEvents, jwtMiddleware)
	adminGroup.GET("/audits", adminController.GetAuditLogPage, jwtMiddleware)
	adminGroup.GET("/feedback", adminController.GetFeedbackPage, jwtMiddleware)

	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	apiGroup.Use(middleware.Static(httpConfig.Store.LocalStorePath))

	applicationContent.Cleaner().Add(NewHttpServerShutdownCallback(e))

	protocol := "http"
	if httpConfig.SSL.Enable {
		protocol = "https"
	}
	logger.InfoF("Starting %s server on %s", protocol, httpConfig.Address)
	logger.InfoF("Rate limit: %d requests per %v",
		httpConfig.Limits.RateLimit,
		httpConfig.Limits.RateLimitDuration)

	var err error
	if httpConfig.SSL.Enable {
		err = e.StartTLS(
			httpConfig.Address,
			httpConfig.SSL.CertFile,
			httpConfig.SSL.KeyFile,
		)
	} else {
		err = e.Start(httpConfig.Address)
	}

	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.FatalF("Http server error: %v", err)
	}
}
