package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/gestoria/admin-api/internal/core/domain"
	"github.com/gestoria/admin-api/internal/core/token"
)

// gatedApp wires Claims and Gate the way the router does, with a catch-all
// page handler behind them.
func gatedApp(t *testing.T, ts *token.Service) *echo.Echo {
	t.Helper()
	e := echo.New()
	e.Use(Claims(ts))
	e.Use(Gate())
	ok := func(c echo.Context) error { return c.NoContent(http.StatusOK) }
	for _, path := range []string{"/", "/login", "/nomina", "/usuarios", "/cliente/:id", "/calendario", "/api/ping"} {
		e.GET(path, ok)
	}
	return e
}

func gatedRequest(e *echo.Echo, path, cookie string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if cookie != "" {
		req.AddCookie(&http.Cookie{Name: CookieName, Value: cookie})
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestGate_PublicPathWithoutCookie(t *testing.T) {
	ts := newTokenService(t)
	e := gatedApp(t, ts)

	if rec := gatedRequest(e, "/login", ""); rec.Code != http.StatusOK {
		t.Fatalf("expected 200 for /login, got %d", rec.Code)
	}
}

func TestGate_AnonymousRedirectsToLogin(t *testing.T) {
	ts := newTokenService(t)
	e := gatedApp(t, ts)

	for _, path := range []string{"/", "/usuarios", "/calendario"} {
		rec := gatedRequest(e, path, "")
		if rec.Code != http.StatusFound {
			t.Fatalf("expected 302 for %s, got %d", path, rec.Code)
		}
		if loc := rec.Header().Get(echo.HeaderLocation); loc != "/login" {
			t.Fatalf("expected redirect to /login for %s, got %q", path, loc)
		}
	}
}

func TestGate_ClienteHomeRedirectsToNomina(t *testing.T) {
	ts := newTokenService(t)
	e := gatedApp(t, ts)

	rec := gatedRequest(e, "/", issueFor(t, ts, domain.RolCliente))
	if rec.Code != http.StatusFound {
		t.Fatalf("expected 302, got %d", rec.Code)
	}
	if loc := rec.Header().Get(echo.HeaderLocation); loc != "/nomina" {
		t.Fatalf("expected redirect to /nomina, got %q", loc)
	}
}

func TestGate_UsuariosRequiresAdmin(t *testing.T) {
	ts := newTokenService(t)
	e := gatedApp(t, ts)

	if rec := gatedRequest(e, "/usuarios", issueFor(t, ts, domain.RolAdmin)); rec.Code != http.StatusOK {
		t.Fatalf("expected 200 for admin, got %d", rec.Code)
	}

	rec := gatedRequest(e, "/usuarios", issueFor(t, ts, domain.RolUsuario))
	if rec.Code != http.StatusFound {
		t.Fatalf("expected 302 for non-admin, got %d", rec.Code)
	}
	if loc := rec.Header().Get(echo.HeaderLocation); loc != "/login" {
		t.Fatalf("expected redirect to /login, got %q", loc)
	}
}

func TestGate_ClientePageDeniedForCliente(t *testing.T) {
	ts := newTokenService(t)
	e := gatedApp(t, ts)

	if rec := gatedRequest(e, "/cliente/42", issueFor(t, ts, domain.RolUsuario)); rec.Code != http.StatusOK {
		t.Fatalf("expected 200 for staff, got %d", rec.Code)
	}
	if rec := gatedRequest(e, "/cliente/42", issueFor(t, ts, domain.RolCliente)); rec.Code != http.StatusFound {
		t.Fatalf("expected 302 for cliente role, got %d", rec.Code)
	}
}

func TestGate_SkipsAPIRoutes(t *testing.T) {
	ts := newTokenService(t)
	e := gatedApp(t, ts)

	// No cookie: the gate would redirect, but API prefixes bypass it.
	if rec := gatedRequest(e, "/api/ping", ""); rec.Code != http.StatusOK {
		t.Fatalf("expected 200 for excluded prefix, got %d", rec.Code)
	}
}

func TestGate_ExpiredSessionTreatedAsAnonymous(t *testing.T) {
	ts := newTokenService(t)
	e := gatedApp(t, ts)

	rec := gatedRequest(e, "/", "expired-or-garbage")
	if rec.Code != http.StatusFound {
		t.Fatalf("expected 302, got %d", rec.Code)
	}
	if loc := rec.Header().Get(echo.HeaderLocation); loc != "/login" {
		t.Fatalf("expected redirect to /login, got %q", loc)
	}
}
