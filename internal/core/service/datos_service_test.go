package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"

	"github.com/gestoria/admin-api/internal/core/domain"
	"github.com/gestoria/admin-api/internal/core/ports"
)

func newDatosFixture() (*DatosService, *stubUsuarioRepo, *stubClienteRepo, *stubEmpleadoRepo, *stubPagoRepo) {
	usuarios := newStubUsuarioRepo()
	clienteRepo := newStubClienteRepo()
	empleadoRepo := newStubEmpleadoRepo()
	pagoRepo := &stubPagoRepo{}

	clientes := NewClienteService(clienteRepo, usuarios, nil, zerolog.Nop())
	empleados := NewEmpleadoService(empleadoRepo, pagoRepo, zerolog.Nop())

	svc := NewDatosService(usuarios, clientes, empleados, clienteRepo, empleadoRepo, pagoRepo, zerolog.Nop())
	return svc, usuarios, clienteRepo, empleadoRepo, pagoRepo
}

func TestDatosService_Exportar_StripsPasswordHashes(t *testing.T) {
	svc, usuarios, _, _, _ := newDatosFixture()
	_, _ = usuarios.Create(context.Background(), &domain.Usuario{
		Nombre:       "Marta",
		Email:        "marta@example.com",
		PasswordHash: "$2a$10$loquesea",
		Rol:          domain.RolAdmin,
		Estado:       true,
	})

	snapshot, err := svc.Exportar(context.Background())
	if err != nil {
		t.Fatalf("Exportar failed: %v", err)
	}
	if len(snapshot.Usuarios) != 1 {
		t.Fatalf("expected 1 usuario, got %d", len(snapshot.Usuarios))
	}
	if snapshot.Usuarios[0].PasswordHash != "" {
		t.Fatalf("password hash leaked into the export")
	}
}

func TestDatosService_Importar(t *testing.T) {
	svc, usuarios, clienteRepo, empleadoRepo, _ := newDatosFixture()

	cliente, err := NewClienteService(clienteRepo, usuarios, nil, zerolog.Nop()).
		Create(context.Background(), ports.CreateClienteInput{Nombre: "Base"})
	if err != nil {
		t.Fatalf("seed cliente failed: %v", err)
	}

	result, err := svc.Importar(context.Background(), ports.ImportInput{
		Clientes: []ports.CreateClienteInput{
			{Nombre: "Carla", Email: "carla@example.com"},
			{}, // missing nombre, rejected
		},
		Empleados: []ports.CreateEmpleadoInput{
			{Nombre: "Luis", Apellido: "Paz", DNI: "28999111", Empresa: "Acme SA", ClienteID: cliente.ID},
			{Nombre: "Sin", Apellido: "DNI"}, // rejected
		},
	})
	if err != nil {
		t.Fatalf("Importar failed: %v", err)
	}

	if result.ClientesCreados != 1 || result.EmpleadosCreados != 1 || result.Rechazados != 2 {
		t.Fatalf("unexpected result: %+v", result)
	}

	// Imported clients go through the regular service: the one with email
	// got a linked login account.
	if _, err := usuarios.FindByEmail(context.Background(), "carla@example.com"); err != nil {
		t.Fatalf("linked account missing for imported cliente: %v", err)
	}
	if _, err := empleadoRepo.FindByDNI(context.Background(), "28999111"); err != nil {
		t.Fatalf("imported empleado missing: %v", err)
	}
}
