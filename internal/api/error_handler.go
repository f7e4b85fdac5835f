package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/gestoria/admin-api/internal/core/domain"
)

// errorResponse is the canonical error envelope for all API errors.
type errorResponse struct {
	Error string `json:"error"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their appropriate HTTP status codes.
//   - Logs unexpected errors internally without leaking details to the client.
//   - Renders a consistent JSON envelope: {"error": "<message>"}.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := resolveError(err, log, c)
		_ = c.JSON(code, errorResponse{Error: msg})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	// Echo's own errors (bind failures, 404 from router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	// Known domain errors → deterministic HTTP codes. The messages mirror
	// the ones the web client already displays.
	switch {
	case errors.Is(err, domain.ErrInvalidCredentials), errors.Is(err, domain.ErrUserInactive):
		return http.StatusUnauthorized, "Credenciales inválidas"
	case errors.Is(err, domain.ErrInvalidToken):
		return http.StatusUnauthorized, "No autenticado"
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden, "No autorizado"
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, "Usuario no encontrado"
	case errors.Is(err, domain.ErrClienteNotFound):
		return http.StatusNotFound, "Cliente no encontrado"
	case errors.Is(err, domain.ErrEmpleadoNotFound):
		return http.StatusNotFound, "Empleado no existe"
	case errors.Is(err, domain.ErrEventoNotFound):
		return http.StatusNotFound, "Evento no encontrado"
	case errors.Is(err, domain.ErrDuplicateEmail):
		return http.StatusConflict, "Email ya registrado"
	case errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest, "Campos requeridos"
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "Error interno del servidor"
}
