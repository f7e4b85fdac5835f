package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/gestoria/admin-api/internal/core/domain"
	"github.com/gestoria/admin-api/internal/core/ports"
)

// EmpleadoHandler handles payroll employees and their payments.
type EmpleadoHandler struct {
	service ports.EmpleadoService
}

func NewEmpleadoHandler(service ports.EmpleadoService) *EmpleadoHandler {
	return &EmpleadoHandler{service: service}
}

type createEmpleadoRequest struct {
	Nombre    string `json:"nombre"    validate:"required"`
	Apellido  string `json:"apellido"  validate:"required"`
	DNI       string `json:"dni"       validate:"required"`
	Empresa   string `json:"empresa"   validate:"required"`
	ClienteID string `json:"clienteId" validate:"required"`
}

type createPagoRequest struct {
	Fecha       string  `json:"fecha"       validate:"required"`
	Tipo        string  `json:"tipo"        validate:"required"`
	Monto       float64 `json:"monto"       validate:"required,gt=0"`
	Estado      string  `json:"estado"      validate:"required"`
	EmpleadoDNI string  `json:"empleadoDni" validate:"required"`
}

// GetByDNI handles GET /api/empleados?dni=.
func (h *EmpleadoHandler) GetByDNI(c echo.Context) error {
	dni := c.QueryParam("dni")
	if dni == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "DNI requerido")
	}

	emp, err := h.service.GetByDNI(c.Request().Context(), dni)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, emp)
}

// Create handles POST /api/empleados.
func (h *EmpleadoHandler) Create(c echo.Context) error {
	var req createEmpleadoRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Datos inválidos")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	emp, err := h.service.Create(c.Request().Context(), ports.CreateEmpleadoInput{
		Nombre:    req.Nombre,
		Apellido:  req.Apellido,
		DNI:       req.DNI,
		Empresa:   req.Empresa,
		ClienteID: req.ClienteID,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, emp)
}

// RegistrarPago handles POST /api/pagos. The employee is addressed by DNI;
// an unknown DNI yields 404.
func (h *EmpleadoHandler) RegistrarPago(c echo.Context) error {
	var req createPagoRequest
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

	pago, err := h.service.RegistrarPago(c.Request().Context(), ports.CreatePagoInput{
		Fecha:       fecha,
		Tipo:        req.Tipo,
		Monto:       req.Monto,
		Estado:      req.Estado,
		EmpleadoDNI: req.EmpleadoDNI,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, pago)
}
