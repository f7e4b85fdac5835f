package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/gestoria/admin-api/internal/core/ports"
)

// UsuarioHandler handles the ADMIN-only user-management endpoints. The
// RequireRole middleware has already run; handlers assume an ADMIN session.
type UsuarioHandler struct {
	service ports.UsuarioService
}

func NewUsuarioHandler(service ports.UsuarioService) *UsuarioHandler {
	return &UsuarioHandler{service: service}
}

// List handles GET /api/usuarios?pagina=&filtro=.
//
// @Summary      Listar usuarios
// @Tags         usuarios
// @Produce      json
// @Success      200  {object}  listUsuariosResponse
// @Router       /api/usuarios [get]
func (h *UsuarioHandler) List(c echo.Context) error {
	pagina, _ := strconv.Atoi(c.QueryParam("pagina"))
	filtro := c.QueryParam("filtro")

	result, err := h.service.List(c.Request().Context(), filtro, pagina)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toListUsuariosResponse(result))
}

// Get handles GET /api/usuarios/:id.
func (h *UsuarioHandler) Get(c echo.Context) error {
	u, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toUsuarioResponse(u))
}

// Create handles POST /api/usuarios. The account is provisioned with the
// system default password.
//
// @Summary      Crear usuario
// @Tags         usuarios
// @Accept       json
// @Produce      json
// @Param        body  body      createUsuarioRequest  true  "Datos del usuario"
// @Success      201   {object}  usuarioResponse
// @Failure      409   {object}  map[string]string
// @Router       /api/usuarios [post]
func (h *UsuarioHandler) Create(c echo.Context) error {
	var req createUsuarioRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Datos inválidos")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	u, err := h.service.Create(c.Request().Context(), ports.CreateUsuarioInput{
		Nombre:  req.Nombre,
		Email:   req.Email,
		Rol:     req.Rol,
		FotoURL: req.FotoURL,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toUsuarioResponse(u))
}

// Update handles PUT /api/usuarios/:id. A body of exactly {"estado": false}
// performs a soft delete; anything else is a partial edit.
func (h *UsuarioHandler) Update(c echo.Context) error {
	var req updateUsuarioRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Datos inválidos")
	}

	u, err := h.service.Update(c.Request().Context(), c.Param("id"), ports.UpdateUsuarioInput{
		Nombre:  req.Nombre,
		Email:   req.Email,
		Rol:     req.Rol,
		Estado:  req.Estado,
		FotoURL: req.FotoURL,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toUsuarioResponse(u))
}

// Delete handles DELETE /api/usuarios/:id (hard delete).
func (h *UsuarioHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]bool{"ok": true})
}
