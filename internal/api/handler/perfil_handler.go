package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/gestoria/admin-api/internal/api/middleware"
	"github.com/gestoria/admin-api/internal/core/domain"
	"github.com/gestoria/admin-api/internal/core/ports"
)

// PerfilHandler handles self-service profile mutations. Both operations act
// on the session subject only, regardless of any id in the payload.
type PerfilHandler struct {
	usuarios ports.UsuarioService
	auth     ports.AuthService
}

func NewPerfilHandler(usuarios ports.UsuarioService, auth ports.AuthService) *PerfilHandler {
	return &PerfilHandler{usuarios: usuarios, auth: auth}
}

type actualizarPerfilRequest struct {
	Nombre  *string `json:"nombre"`
	FotoURL *string `json:"fotoUrl"`
}

type cambiarPasswordRequest struct {
	PasswordActual string `json:"passwordActual" validate:"required"`
	PasswordNueva  string `json:"passwordNueva"  validate:"required,min=8"`
}

// Actualizar handles POST /api/perfil/actualizar.
func (h *PerfilHandler) Actualizar(c echo.Context) error {
	claims := middleware.ClaimsFrom(c)
	if claims == nil {
		return domain.ErrInvalidToken
	}

	var req actualizarPerfilRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Datos inválidos")
	}

	err := h.usuarios.ActualizarPerfil(c.Request().Context(), claims.UsuarioID(), ports.ActualizarPerfilInput{
		Nombre:  req.Nombre,
		FotoURL: req.FotoURL,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, mensajeResponse{Mensaje: "Perfil actualizado correctamente"})
}

// CambiarPassword handles POST /api/perfil/cambiar-password. The current
// password must verify before the new one is stored.
func (h *PerfilHandler) CambiarPassword(c echo.Context) error {
	claims := middleware.ClaimsFrom(c)
	if claims == nil {
		return domain.ErrInvalidToken
	}

	var req cambiarPasswordRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Datos inválidos")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.auth.CambiarPassword(c.Request().Context(), claims.UsuarioID(), req.PasswordActual, req.PasswordNueva); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, mensajeResponse{Mensaje: "Contraseña actualizada"})
}
