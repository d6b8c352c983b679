package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/bookstore/catalog-api/internal/core/domain"
)

func runAuthorize(t *testing.T, op domain.Operation, role any) (int, bool) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if role != nil {
		c.Set(ContextRole, role)
	}

	called := false
	handler := Authorize(op)(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})
	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	return rec.Code, called
}

func TestAuthorize(t *testing.T) {
	tests := []struct {
		name   string
		op     domain.Operation
		role   any
		want   int
		called bool
	}{
		{"user lists books", domain.OpListBooks, domain.RoleUser, http.StatusOK, true},
		{"user reads book", domain.OpGetBook, domain.RoleUser, http.StatusOK, true},
		{"user deletes book", domain.OpDeleteBook, domain.RoleUser, http.StatusForbidden, false},
		{"user creates book", domain.OpCreateBook, domain.RoleUser, http.StatusForbidden, false},
		{"admin deletes book", domain.OpDeleteBook, domain.RoleAdmin, http.StatusOK, true},
		{"admin lists books", domain.OpListBooks, domain.RoleAdmin, http.StatusOK, true},
		{"unknown operation", domain.Operation("books.export"), domain.RoleAdmin, http.StatusForbidden, false},
		{"no identity", domain.OpListBooks, nil, http.StatusUnauthorized, false},
		{"untyped role", domain.OpListBooks, "Admin", http.StatusUnauthorized, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			code, called := runAuthorize(t, tc.op, tc.role)
			if code != tc.want {
				t.Fatalf("expected %d, got %d", tc.want, code)
			}
			if called != tc.called {
				t.Fatalf("expected next called=%v, got %v", tc.called, called)
			}
		})
	}
}
