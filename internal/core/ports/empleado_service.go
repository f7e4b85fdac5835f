package ports

import (
	"context"
	"time"

	"github.com/gestoria/admin-api/internal/core/domain"
)

// CreateEmpleadoInput carries the fields for registering an employee on a
// client's payroll.
type CreateEmpleadoInput struct {
	Nombre    string
	Apellido  string
	DNI       string
	Empresa   string
	ClienteID string
}

// CreatePagoInput registers a payment against an employee, addressed by DNI.
type CreatePagoInput struct {
	Fecha       time.Time
	Tipo        string
	Monto       float64
	Estado      string
	EmpleadoDNI string
}

// EmpleadoService defines the payroll use cases.
type EmpleadoService interface {
	GetByDNI(ctx context.Context, dni string) (*domain.Empleado, error)
	Create(ctx context.Context, in CreateEmpleadoInput) (*domain.Empleado, error)
	// RegistrarPago fails with domain.ErrEmpleadoNotFound when the DNI is
	// unknown.
	RegistrarPago(ctx context.Context, in CreatePagoInput) (*domain.Pago, error)
}
