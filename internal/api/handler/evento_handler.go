package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/gestoria/admin-api/internal/api/middleware"
	"github.com/gestoria/admin-api/internal/core/domain"
	"github.com/gestoria/admin-api/internal/core/ports"
)

// EventoHandler handles the per-user calendar. The event owner is always the
// session subject; ids from other users behave as not found.
type EventoHandler struct {
	service ports.EventoService
}

func NewEventoHandler(service ports.EventoService) *EventoHandler {
	return &EventoHandler{service: service}
}

type createEventoRequest struct {
	Fecha string `json:"fecha" validate:"required"`
	Hora  string `json:"hora"  validate:"required"`
	Texto string `json:"texto" validate:"required"`
}

type updateEventoRequest struct {
	Fecha *string `json:"fecha"`
	Hora  *string `json:"hora"`
	Texto *string `json:"texto"`
}

// List handles GET /api/eventos?fecha=&desde=&hasta=.
func (h *EventoHandler) List(c echo.Context) error {
	claims := middleware.ClaimsFrom(c)
	if claims == nil {
		return domain.ErrInvalidToken
	}

	fechaStr := c.QueryParam("fecha")
	if fechaStr == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Fecha requerida")
	}
	fecha, err := time.Parse("2006-01-02", fechaStr)
	if err != nil {
		return domain.ErrValidation
	}

	eventos, err := h.service.List(c.Request().Context(), claims.UsuarioID(), fecha, c.QueryParam("desde"), c.QueryParam("hasta"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, eventos)
}

// Create handles POST /api/eventos.
func (h *EventoHandler) Create(c echo.Context) error {
	claims := middleware.ClaimsFrom(c)
	if claims == nil {
		return domain.ErrInvalidToken
	}

	var req createEventoRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Datos inválidos")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	fecha, err := time.Parse("2006-01-02", req.Fecha)
	if err != nil {
		return domain.ErrValidation
	}

	evento, err := h.service.Create(c.Request().Context(), claims.UsuarioID(), ports.CreateEventoInput{
		Fecha: fecha,
		Hora:  req.Hora,
		Texto: req.Texto,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, evento)
}

// Update handles PUT /api/eventos/:id.
func (h *EventoHandler) Update(c echo.Context) error {
	claims := middleware.ClaimsFrom(c)
	if claims == nil {
		return domain.ErrInvalidToken
	}

	var req updateEventoRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Datos inválidos")
	}

	upd := ports.EventoUpdate{Hora: req.Hora, Texto: req.Texto}
	if req.Fecha != nil {
		fecha, err := time.Parse("2006-01-02", *req.Fecha)
		if err != nil {
			return domain.ErrValidation
		}
		upd.Fecha = &fecha
	}

	evento, err := h.service.Update(c.Request().Context(), c.Param("id"), claims.UsuarioID(), upd)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, evento)
}

// Delete handles DELETE /api/eventos/:id.
func (h *EventoHandler) Delete(c echo.Context) error {
	claims := middleware.ClaimsFrom(c)
	if claims == nil {
		return domain.ErrInvalidToken
	}

	if err := h.service.Delete(c.Request().Context(), c.Param("id"), claims.UsuarioID()); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]bool{"ok": true})
}
