package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/gestoria/admin-api/internal/core/domain"
	"github.com/gestoria/admin-api/internal/core/token"
)

func contextWithClaims(e *echo.Echo, claims *token.Claims) echo.Context {
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	if claims != nil {
		c.Set(claimsKey, claims)
	}
	return c
}

func TestRequireRole_Allows(t *testing.T) {
	e := echo.New()
	c := contextWithClaims(e, &token.Claims{Rol: domain.RolAdmin})

	called := false
	handler := RequireRole(domain.RolAdmin)(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next handler not called")
	}
}

func TestRequireRole_MissingSession(t *testing.T) {
	e := echo.New()
	c := contextWithClaims(e, nil)

	handler := RequireRole(domain.RolAdmin)(func(c echo.Context) error {
		t.Fatalf("should not reach next handler")
		return nil
	})

	if err := handler(c); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestRequireRole_WrongRole(t *testing.T) {
	e := echo.New()
	c := contextWithClaims(e, &token.Claims{Rol: domain.RolCliente})

	handler := RequireRole(domain.RolAdmin, domain.RolUsuario)(func(c echo.Context) error {
		t.Fatalf("should not reach next handler")
		return nil
	})

	if err := handler(c); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestRequireRole_AnyAuthenticated(t *testing.T) {
	e := echo.New()

	handler := RequireRole()(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	if err := handler(contextWithClaims(e, &token.Claims{Rol: domain.RolCliente})); err != nil {
		t.Fatalf("any authenticated role should pass: %v", err)
	}
	if err := handler(contextWithClaims(e, nil)); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken without session, got %v", err)
	}
}
