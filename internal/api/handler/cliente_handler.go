package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/gestoria/admin-api/internal/core/ports"
)

// ClienteHandler handles client management, available to ADMIN and USUARIO.
type ClienteHandler struct {
	service ports.ClienteService
}

func NewClienteHandler(service ports.ClienteService) *ClienteHandler {
	return &ClienteHandler{service: service}
}

// List handles GET /api/clientes?pagina=&filtro=. Only active clients are
// returned.
func (h *ClienteHandler) List(c echo.Context) error {
	pagina, _ := strconv.Atoi(c.QueryParam("pagina"))
	filtro := c.QueryParam("filtro")

	result, err := h.service.List(c.Request().Context(), filtro, pagina)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toListClientesResponse(result))
}

// Get handles GET /api/clientes/:id.
func (h *ClienteHandler) Get(c echo.Context) error {
	cliente, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toClienteResponse(cliente))
}

// Create handles POST /api/clientes. When an email is given, a CLIENTE
// login account is provisioned alongside with the default password.
func (h *ClienteHandler) Create(c echo.Context) error {
	var req createClienteRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Datos inválidos")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	cliente, err := h.service.Create(c.Request().Context(), ports.CreateClienteInput{
		Nombre:    req.Nombre,
		Apellido:  req.Apellido,
		Email:     req.Email,
		Profesion: req.Profesion,
		Compania:  req.Compania,
		Telefono:  req.Telefono,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toClienteResponse(cliente))
}

// Update handles PUT /api/clientes/:id.
func (h *ClienteHandler) Update(c echo.Context) error {
	var req updateClienteRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Datos inválidos")
	}

	cliente, err := h.service.Update(c.Request().Context(), c.Param("id"), ports.ClienteUpdate{
		Nombre:    req.Nombre,
		Apellido:  req.Apellido,
		Email:     req.Email,
		Profesion: req.Profesion,
		Compania:  req.Compania,
		Telefono:  req.Telefono,
		Estado:    req.Estado,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toClienteResponse(cliente))
}

// Delete handles DELETE /api/clientes/:id, a soft delete.
func (h *ClienteHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]bool{"ok": true})
}
