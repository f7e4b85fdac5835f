package ports

import (
	"context"

	"github.com/gestoria/admin-api/internal/core/domain"
)

// Snapshot is the full administrative data export. Password hashes are
// stripped before serialization by the service.
type Snapshot struct {
	Usuarios  []*domain.Usuario  `json:"usuarios"`
	Clientes  []*domain.Cliente  `json:"clientes"`
	Empleados []*domain.Empleado `json:"empleados"`
	Pagos     []*domain.Pago     `json:"pagos"`
}

// ImportInput is a batch of client and employee rows to load.
type ImportInput struct {
	Clientes  []CreateClienteInput
	Empleados []CreateEmpleadoInput
}

// ImportResult reports how many rows of each kind were created and how many
// were rejected.
type ImportResult struct {
	ClientesCreados  int
	EmpleadosCreados int
	Rechazados       int
}

// DatosService implements the admin-only bulk export/import endpoints.
type DatosService interface {
	Exportar(ctx context.Context) (*Snapshot, error)
	Importar(ctx context.Context, in ImportInput) (*ImportResult, error)
}
