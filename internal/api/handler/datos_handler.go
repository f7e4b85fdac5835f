package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/gestoria/admin-api/internal/core/ports"
)

// DatosHandler handles the ADMIN-only bulk export and import endpoints. The
// payloads are plain JSON; spreadsheet conversion happens client-side.
type DatosHandler struct {
	service ports.DatosService
}

func NewDatosHandler(service ports.DatosService) *DatosHandler {
	return &DatosHandler{service: service}
}

type importClienteRow struct {
	Nombre    string `json:"nombre"`
	Apellido  string `json:"apellido"`
	Email     string `json:"email"`
	Profesion string `json:"profesion"`
	Compania  string `json:"compania"`
	Telefono  string `json:"telefono"`
}

type importEmpleadoRow struct {
	Nombre    string `json:"nombre"`
	Apellido  string `json:"apellido"`
	DNI       string `json:"dni"`
	Empresa   string `json:"empresa"`
	ClienteID string `json:"clienteId"`
}

type importarRequest struct {
	Clientes  []importClienteRow  `json:"clientes"`
	Empleados []importEmpleadoRow `json:"empleados"`
}

type importarResponse struct {
	ClientesCreados  int `json:"clientesCreados"`
	EmpleadosCreados int `json:"empleadosCreados"`
	Rechazados       int `json:"rechazados"`
}

// Exportar handles GET /api/exportar-datos.
func (h *DatosHandler) Exportar(c echo.Context) error {
	snapshot, err := h.service.Exportar(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, snapshot)
}

// Importar handles POST /api/importar-datos.
func (h *DatosHandler) Importar(c echo.Context) error {
	var req importarRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Datos inválidos")
	}

	in := ports.ImportInput{
		Clientes:  make([]ports.CreateClienteInput, len(req.Clientes)),
		Empleados: make([]ports.CreateEmpleadoInput, len(req.Empleados)),
	}
	for i, row := range req.Clientes {
		in.Clientes[i] = ports.CreateClienteInput{
			Nombre:    row.Nombre,
			Apellido:  row.Apellido,
			Email:     row.Email,
			Profesion: row.Profesion,
			Compania:  row.Compania,
			Telefono:  row.Telefono,
		}
	}
	for i, row := range req.Empleados {
		in.Empleados[i] = ports.CreateEmpleadoInput{
			Nombre:    row.Nombre,
			Apellido:  row.Apellido,
			DNI:       row.DNI,
			Empresa:   row.Empresa,
			ClienteID: row.ClienteID,
		}
	}

	result, err := h.service.Importar(c.Request().Context(), in)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, importarResponse{
		ClientesCreados:  result.ClientesCreados,
		EmpleadosCreados: result.EmpleadosCreados,
		Rechazados:       result.Rechazados,
	})
}
