package api

import (
	"strings"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	"github.com/bookstore/catalog-api/internal/api/handler"
	"github.com/bookstore/catalog-api/internal/api/middleware"
	"github.com/bookstore/catalog-api/internal/core/domain"
	"github.com/bookstore/catalog-api/internal/core/ports"
	infrahttp "github.com/bookstore/catalog-api/internal/infrastructure/http"
	"github.com/bookstore/catalog-api/internal/infrastructure/http/handlers"
	"github.com/bookstore/catalog-api/pkg/logger"
)

// Deps holds everything the router needs. Services are constructed by the
// caller so tests can substitute stubs.
type Deps struct {
	Logger      zerolog.Logger
	AuthService ports.AuthService
	BookService ports.BookService
	Verifier    ports.TokenVerifier
	Readiness   []handlers.Pinger
	// Registry receives HTTP metrics. Nil uses the Prometheus default registry.
	Registry *prometheus.Registry
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(d Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(d.Logger)

	var (
		registerer prometheus.Registerer = prometheus.DefaultRegisterer
		gatherer   prometheus.Gatherer   = prometheus.DefaultGatherer
	)
	if d.Registry != nil {
		registerer, gatherer = d.Registry, d.Registry
	}

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(logger.EchoRequestLogger(d.Logger))
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Subsystem:  "bookstore",
		Registerer: registerer,
		Skipper: func(c echo.Context) bool {
			return c.Path() == "/metrics" || strings.HasPrefix(c.Path(), "/swagger")
		},
	}))

	// --- Auth routes (open) ---
	authHandler := handler.NewAuthHandler(d.AuthService)
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)

	// --- Book routes (bearer token + role policy) ---
	bookHandler := handler.NewBookHandler(d.BookService)
	books := e.Group("/books", middleware.Authenticate(d.Verifier))
	books.GET("", bookHandler.List, middleware.Authorize(domain.OpListBooks))
	books.GET("/:id", bookHandler.Get, middleware.Authorize(domain.OpGetBook))
	books.POST("", bookHandler.Create, middleware.Authorize(domain.OpCreateBook))
	books.PUT("/:id", bookHandler.Update, middleware.Authorize(domain.OpUpdateBook))
	books.DELETE("/:id", bookHandler.Delete, middleware.Authorize(domain.OpDeleteBook))

	// --- Ops routes (no auth required) ---
	infrahttp.RegisterOpsRoutes(e, gatherer, d.Readiness...)

	return e
}
