package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/gestoria/admin-api/internal/core/domain"
	"github.com/gestoria/admin-api/internal/core/ports"
)

// EmpleadoService implements payroll employee and payment registration.
type EmpleadoService struct {
	empleados ports.EmpleadoRepository
	pagos     ports.PagoRepository
	logger    zerolog.Logger
}

func NewEmpleadoService(empleados ports.EmpleadoRepository, pagos ports.PagoRepository, logger zerolog.Logger) *EmpleadoService {
	return &EmpleadoService{empleados: empleados, pagos: pagos, logger: logger}
}

func (s *EmpleadoService) GetByDNI(ctx context.Context, dni string) (*domain.Empleado, error) {
	if dni == "" {
		return nil, domain.ErrValidation
	}
	return s.empleados.FindByDNI(ctx, dni)
}

func (s *EmpleadoService) Create(ctx context.Context, in ports.CreateEmpleadoInput) (*domain.Empleado, error) {
	if in.Nombre == "" || in.Apellido == "" || in.DNI == "" || in.Empresa == "" || in.ClienteID == "" {
		return nil, domain.ErrValidation
	}

	creado, err := s.empleados.Create(ctx, &domain.Empleado{
		Nombre:    in.Nombre,
		Apellido:  in.Apellido,
		DNI:       in.DNI,
		Compania:  in.Empresa,
		ClienteID: in.ClienteID,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("empleado_id", creado.ID).Str("dni", creado.DNI).Msg("empleado creado")
	return creado, nil
}

// RegistrarPago resolves the employee by DNI before persisting the payment.
func (s *EmpleadoService) RegistrarPago(ctx context.Context, in ports.CreatePagoInput) (*domain.Pago, error) {
	if in.Fecha.IsZero() || in.Tipo == "" || in.Monto <= 0 || in.Estado == "" || in.EmpleadoDNI == "" {
		return nil, domain.ErrValidation
	}

	emp, err := s.empleados.FindByDNI(ctx, in.EmpleadoDNI)
	if err != nil {
		if errors.Is(err, domain.ErrEmpleadoNotFound) {
			return nil, domain.ErrEmpleadoNotFound
		}
		return nil, err
	}

	pago, err := s.pagos.Create(ctx, &domain.Pago{
		Fecha:      in.Fecha,
		Tipo:       in.Tipo,
		Monto:      in.Monto,
		Estado:     in.Estado,
		EmpleadoID: emp.ID,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("pago_id", pago.ID).Str("empleado_id", emp.ID).Msg("pago registrado")
	return pago, nil
}
