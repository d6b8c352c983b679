package http

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/bookstore/catalog-api/docs"
	"github.com/bookstore/catalog-api/internal/infrastructure/http/handlers"
)

// RegisterOpsRoutes mounts the unauthenticated operational endpoints:
// liveness, readiness, Prometheus metrics and the Swagger UI.
func RegisterOpsRoutes(e *echo.Echo, gatherer prometheus.Gatherer, deps ...handlers.Pinger) {
	healthHandler := handlers.NewHealthHandler()
	healthDepsHandler := handlers.NewHealthDependenciesHandler(deps...)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthDepsHandler.Readiness)

	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{Gatherer: gatherer}))
	e.GET("/swagger/*", echoSwagger.WrapHandler)
}
