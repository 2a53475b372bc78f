package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/parceltrack/carrier-gateway/docs" // swagger spec
	"github.com/parceltrack/carrier-gateway/internal/api/handler"
	"github.com/parceltrack/carrier-gateway/internal/api/middleware"
	"github.com/parceltrack/carrier-gateway/internal/core/ports"
)

const roleAdmin = "admin"

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(
	service ports.TrackingService,
	dispatcher handler.RefreshDispatcher,
	db *mongo.Database,
	rdb *redis.Client,
	jwtSecret string,
	log zerolog.Logger,
) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)
	e.Validator = handler.NewValidator()

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("carrier_gateway"))

	// --- Health probes and operational endpoints (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	// --- Tracking routes ---
	trackingHandler := handler.NewTrackingHandler(service, dispatcher)

	v1 := e.Group("/v1", middleware.Auth(jwtSecret))
	v1.GET("/tracking/:tracking_number", trackingHandler.Get)
	v1.GET("/tracking/:tracking_number/history", trackingHandler.History)
	v1.POST("/tracking/refresh", trackingHandler.Refresh, middleware.RequireRole(roleAdmin))

	return e
}
