package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/gestoria/admin-api/internal/api/metrics"
	"github.com/gestoria/admin-api/internal/api/middleware"
	"github.com/gestoria/admin-api/internal/core/domain"
	"github.com/gestoria/admin-api/internal/core/ports"
	"github.com/gestoria/admin-api/internal/core/token"
)

// AuthHandler implements login, logout and the identity endpoint.
type AuthHandler struct {
	authService ports.AuthService
	// secure marks the session cookie Secure; enabled in production.
	secure bool
}

func NewAuthHandler(authService ports.AuthService, secure bool) *AuthHandler {
	return &AuthHandler{authService: authService, secure: secure}
}

// Login authenticates a user, sets the session cookie and returns the token.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Credenciales"
// @Success      200   {object}  loginResponse
// @Failure      401   {object}  map[string]string
// @Router       /api/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, mensajeResponse{Mensaje: "Datos inválidos"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, mensajeResponse{Mensaje: err.Error()})
	}

	tkn, usuario, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		// Login failures keep the {mensaje} envelope the web client expects,
		// so they are rendered here instead of the central error handler.
		if errors.Is(err, domain.ErrInvalidCredentials) {
			metrics.LoginsTotal.WithLabelValues("invalid_credentials").Inc()
			return c.JSON(http.StatusUnauthorized, mensajeResponse{Mensaje: "Credenciales inválidas"})
		}
		metrics.LoginsTotal.WithLabelValues("error").Inc()
		return err
	}

	c.SetCookie(h.sessionCookie(tkn))
	metrics.LoginsTotal.WithLabelValues("success").Inc()

	return c.JSON(http.StatusOK, loginResponse{
		Mensaje: "Login exitoso",
		Usuario: toUsuarioSesion(usuario),
		Token:   tkn,
	})
}

// Logout clears the session cookie. The token itself is not revoked and
// stays valid until expiry; clearing twice yields the same response.
//
// @Summary      Logout
// @Tags         auth
// @Produce      json
// @Success      200  {object}  mensajeResponse
// @Router       /api/logout [get]
func (h *AuthHandler) Logout(c echo.Context) error {
	c.SetCookie(h.expiredCookie())
	return c.JSON(http.StatusOK, mensajeResponse{Mensaje: "Sesión cerrada"})
}

// Me returns the decoded claims of the current session.
//
// @Summary      Identidad de la sesión actual
// @Tags         auth
// @Produce      json
// @Success      200  {object}  meResponse
// @Failure      401  {object}  map[string]string
// @Router       /api/me [get]
func (h *AuthHandler) Me(c echo.Context) error {
	claims := middleware.ClaimsFrom(c)
	if claims == nil {
		return domain.ErrInvalidToken
	}
	return c.JSON(http.StatusOK, toMeResponse(claims))
}

func (h *AuthHandler) sessionCookie(value string) *http.Cookie {
	return &http.Cookie{
		Name:     middleware.CookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   int(token.Lifetime.Seconds()),
		HttpOnly: true,
		Secure:   h.secure,
		SameSite: http.SameSiteLaxMode,
	}
}

func (h *AuthHandler) expiredCookie() *http.Cookie {
	return &http.Cookie{
		Name:     middleware.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
		Secure:   h.secure,
		SameSite: http.SameSiteLaxMode,
	}
}
