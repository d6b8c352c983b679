package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bookstore/catalog-api/internal/api/metrics"
	"github.com/bookstore/catalog-api/internal/core/domain"
)

// Authorize enforces the role policy attached to op. It must run after
// Authenticate; a request without an identity is treated as unauthenticated.
func Authorize(op domain.Operation) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, ok := c.Get(ContextRole).(domain.Role)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
			}
			if err := domain.Authorize(role, op); err != nil {
				metrics.AuthorizationDecisionsTotal.WithLabelValues(string(op), "deny").Inc()
				return echo.NewHTTPError(http.StatusForbidden, "access forbidden")
			}
			metrics.AuthorizationDecisionsTotal.WithLabelValues(string(op), "allow").Inc()
			return next(c)
		}
	}
}
