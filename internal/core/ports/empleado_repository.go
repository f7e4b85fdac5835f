package ports

import (
	"context"

	"github.com/gestoria/admin-api/internal/core/domain"
)

// EmpleadoRepository defines persistence operations for payroll employees.
type EmpleadoRepository interface {
	// FindByDNI returns the employee with the given national id.
	FindByDNI(ctx context.Context, dni string) (*domain.Empleado, error)
	Create(ctx context.Context, e *domain.Empleado) (*domain.Empleado, error)
	ListAll(ctx context.Context) ([]*domain.Empleado, error)
}

// PagoRepository defines persistence operations for payroll payments.
type PagoRepository interface {
	Create(ctx context.Context, p *domain.Pago) (*domain.Pago, error)
	ListAll(ctx context.Context) ([]*domain.Pago, error)
}
