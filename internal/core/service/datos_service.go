package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/gestoria/admin-api/internal/core/ports"
)

// DatosService implements the admin-only bulk export and import. The
// transfer format is plain JSON; converting to or from spreadsheets happens
// outside this service.
type DatosService struct {
	usuarios     ports.UsuarioRepository
	clientes     ports.ClienteService
	empleados    ports.EmpleadoService
	clienteRepo  ports.ClienteRepository
	empleadoRepo ports.EmpleadoRepository
	pagoRepo     ports.PagoRepository
	logger       zerolog.Logger
}

func NewDatosService(
	usuarios ports.UsuarioRepository,
	clientes ports.ClienteService,
	empleados ports.EmpleadoService,
	clienteRepo ports.ClienteRepository,
	empleadoRepo ports.EmpleadoRepository,
	pagoRepo ports.PagoRepository,
	logger zerolog.Logger,
) *DatosService {
	return &DatosService{
		usuarios:     usuarios,
		clientes:     clientes,
		empleados:    empleados,
		clienteRepo:  clienteRepo,
		empleadoRepo: empleadoRepo,
		pagoRepo:     pagoRepo,
		logger:       logger,
	}
}

// Exportar assembles the full snapshot. Password hashes never leave the
// credential store: the domain type already excludes them from JSON, and the
// field is blanked here as well so the snapshot can be re-serialized safely.
func (s *DatosService) Exportar(ctx context.Context) (*ports.Snapshot, error) {
	usuarios, err := s.usuarios.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	for _, u := range usuarios {
		u.PasswordHash = ""
	}

	clientes, err := s.clienteRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	empleados, err := s.empleadoRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	pagos, err := s.pagoRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Int("usuarios", len(usuarios)).
		Int("clientes", len(clientes)).
		Int("empleados", len(empleados)).
		Int("pagos", len(pagos)).
		Msg("datos exportados")

	return &ports.Snapshot{
		Usuarios:  usuarios,
		Clientes:  clientes,
		Empleados: empleados,
		Pagos:     pagos,
	}, nil
}

// Importar loads client and employee rows through the regular services so
// every row gets the same validation and side effects as an interactive
// create. Invalid rows are counted, not fatal.
func (s *DatosService) Importar(ctx context.Context, in ports.ImportInput) (*ports.ImportResult, error) {
	result := &ports.ImportResult{}

	for _, c := range in.Clientes {
		if _, err := s.clientes.Create(ctx, c); err != nil {
			s.logger.Warn().Err(err).Str("nombre", c.Nombre).Msg("fila de cliente rechazada")
			result.Rechazados++
			continue
		}
		result.ClientesCreados++
	}

	for _, e := range in.Empleados {
		if _, err := s.empleados.Create(ctx, e); err != nil {
			s.logger.Warn().Err(err).Str("dni", e.DNI).Msg("fila de empleado rechazada")
			result.Rechazados++
			continue
		}
		result.EmpleadosCreados++
	}

	s.logger.Info().
		Int("clientes", result.ClientesCreados).
		Int("empleados", result.EmpleadosCreados).
		Int("rechazados", result.Rechazados).
		Msg("importación completada")

	return result, nil
}
