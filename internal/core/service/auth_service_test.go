package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/gestoria/admin-api/internal/core/domain"
	"github.com/gestoria/admin-api/internal/core/ports"
	"github.com/gestoria/admin-api/internal/core/token"
)

type stubUsuarioRepo struct {
	usuarios map[string]*domain.Usuario
	seq      int
}

func newStubUsuarioRepo() *stubUsuarioRepo {
	return &stubUsuarioRepo{usuarios: make(map[string]*domain.Usuario)}
}

func cloneUsuario(u *domain.Usuario) *domain.Usuario {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUsuarioRepo) FindByEmail(_ context.Context, email string) (*domain.Usuario, error) {
	for _, u := range r.usuarios {
		if strings.EqualFold(u.Email, email) {
			return cloneUsuario(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUsuarioRepo) FindByID(_ context.Context, id string) (*domain.Usuario, error) {
	u, ok := r.usuarios[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUsuario(u), nil
}

func (r *stubUsuarioRepo) Create(_ context.Context, u *domain.Usuario) (*domain.Usuario, error) {
	for _, existing := range r.usuarios {
		if strings.EqualFold(existing.Email, u.Email) {
			return nil, domain.ErrDuplicateEmail
		}
	}
	r.seq++
	clone := cloneUsuario(u)
	clone.ID = fmt.Sprintf("u%d", r.seq)
	r.usuarios[clone.ID] = cloneUsuario(clone)
	return clone, nil
}

func (r *stubUsuarioRepo) Update(_ context.Context, id string, upd ports.UsuarioUpdate) (*domain.Usuario, error) {
	u, ok := r.usuarios[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	if upd.Nombre != nil {
		u.Nombre = *upd.Nombre
	}
	if upd.Email != nil {
		u.Email = *upd.Email
	}
	if upd.Rol != nil {
		u.Rol = *upd.Rol
	}
	if upd.Estado != nil {
		u.Estado = *upd.Estado
	}
	if upd.FotoURL != nil {
		u.FotoURL = *upd.FotoURL
	}
	if upd.PasswordHash != nil {
		u.PasswordHash = *upd.PasswordHash
	}
	return cloneUsuario(u), nil
}

func (r *stubUsuarioRepo) SetEstado(ctx context.Context, id string, estado bool) (*domain.Usuario, error) {
	return r.Update(ctx, id, ports.UsuarioUpdate{Estado: &estado})
}

func (r *stubUsuarioRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.usuarios[id]; !ok {
		return domain.ErrUserNotFound
	}
	delete(r.usuarios, id)
	return nil
}

func (r *stubUsuarioRepo) List(_ context.Context, filter ports.ListUsuariosFilter) ([]*domain.Usuario, int64, error) {
	var out []*domain.Usuario
	for _, u := range r.usuarios {
		if u.Rol != domain.RolUsuario {
			continue
		}
		if filter.Filtro != "" &&
			!strings.Contains(strings.ToLower(u.Nombre), strings.ToLower(filter.Filtro)) &&
			!strings.Contains(strings.ToLower(u.Email), strings.ToLower(filter.Filtro)) {
			continue
		}
		out = append(out, cloneUsuario(u))
	}
	return out, int64(len(out)), nil
}

func (r *stubUsuarioRepo) ListAll(_ context.Context) ([]*domain.Usuario, error) {
	var out []*domain.Usuario
	for _, u := range r.usuarios {
		out = append(out, cloneUsuario(u))
	}
	return out, nil
}

type stubClienteRepo struct {
	clientes map[string]*domain.Cliente
	seq      int
}

func newStubClienteRepo() *stubClienteRepo {
	return &stubClienteRepo{clientes: make(map[string]*domain.Cliente)}
}

func cloneCliente(c *domain.Cliente) *domain.Cliente {
	if c == nil {
		return nil
	}
	clone := *c
	return &clone
}

func (r *stubClienteRepo) FindByID(_ context.Context, id string) (*domain.Cliente, error) {
	c, ok := r.clientes[id]
	if !ok {
		return nil, domain.ErrClienteNotFound
	}
	return cloneCliente(c), nil
}

func (r *stubClienteRepo) FindByUsuarioID(_ context.Context, usuarioID string) (*domain.Cliente, error) {
	for _, c := range r.clientes {
		if c.UsuarioID == usuarioID {
			return cloneCliente(c), nil
		}
	}
	return nil, domain.ErrClienteNotFound
}

func (r *stubClienteRepo) Create(_ context.Context, c *domain.Cliente) (*domain.Cliente, error) {
	r.seq++
	clone := cloneCliente(c)
	clone.ID = fmt.Sprintf("c%d", r.seq)
	r.clientes[clone.ID] = cloneCliente(clone)
	return clone, nil
}

func (r *stubClienteRepo) Update(_ context.Context, id string, upd ports.ClienteUpdate) (*domain.Cliente, error) {
	c, ok := r.clientes[id]
	if !ok {
		return nil, domain.ErrClienteNotFound
	}
	if upd.Nombre != nil {
		c.Nombre = *upd.Nombre
	}
	if upd.Apellido != nil {
		c.Apellido = *upd.Apellido
	}
	if upd.Email != nil {
		c.Email = *upd.Email
	}
	if upd.Profesion != nil {
		c.Profesion = *upd.Profesion
	}
	if upd.Compania != nil {
		c.Compania = *upd.Compania
	}
	if upd.Telefono != nil {
		c.Telefono = *upd.Telefono
	}
	if upd.Estado != nil {
		c.Estado = *upd.Estado
	}
	return cloneCliente(c), nil
}

func (r *stubClienteRepo) SetEstado(ctx context.Context, id string, estado bool) error {
	_, err := r.Update(ctx, id, ports.ClienteUpdate{Estado: &estado})
	return err
}

func (r *stubClienteRepo) List(_ context.Context, filter ports.ListClientesFilter) ([]*domain.Cliente, int64, error) {
	var out []*domain.Cliente
	for _, c := range r.clientes {
		if !c.Estado {
			continue
		}
		if filter.Filtro != "" &&
			!strings.Contains(strings.ToLower(c.Nombre), strings.ToLower(filter.Filtro)) &&
			!strings.Contains(strings.ToLower(c.Profesion), strings.ToLower(filter.Filtro)) {
			continue
		}
		out = append(out, cloneCliente(c))
	}
	return out, int64(len(out)), nil
}

func (r *stubClienteRepo) ListAll(_ context.Context) ([]*domain.Cliente, error) {
	var out []*domain.Cliente
	for _, c := range r.clientes {
		out = append(out, cloneCliente(c))
	}
	return out, nil
}

func mustHash(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		t.Fatalf("bcrypt: %v", err)
	}
	return string(hash)
}

func newAuthFixture(t *testing.T) (*AuthService, *stubUsuarioRepo, *stubClienteRepo, *token.Service) {
	t.Helper()
	tokens, err := token.NewService("test-secret")
	if err != nil {
		t.Fatalf("token.NewService: %v", err)
	}
	usuarios := newStubUsuarioRepo()
	clientes := newStubClienteRepo()
	return NewAuthService(usuarios, clientes, tokens, zerolog.Nop()), usuarios, clientes, tokens
}

func TestAuthService_Login_Success(t *testing.T) {
	svc, usuarios, _, tokens := newAuthFixture(t)
	seeded, _ := usuarios.Create(context.Background(), &domain.Usuario{
		Nombre:       "Marta",
		Email:        "marta@example.com",
		PasswordHash: mustHash(t, "s3creta!"),
		Rol:          domain.RolAdmin,
		Estado:       true,
	})

	tkn, identidad, err := svc.Login(context.Background(), "marta@example.com", "s3creta!")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if tkn == "" {
		t.Fatalf("expected token, got empty")
	}
	if identidad.ID != seeded.ID || identidad.Rol != domain.RolAdmin {
		t.Fatalf("unexpected identity: %+v", identidad)
	}

	claims, err := tokens.Verify(tkn)
	if err != nil {
		t.Fatalf("issued token does not verify: %v", err)
	}
	if claims.UsuarioID() != seeded.ID || claims.Rol != domain.RolAdmin {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	svc, usuarios, _, _ := newAuthFixture(t)
	_, _ = usuarios.Create(context.Background(), &domain.Usuario{
		Email:        "marta@example.com",
		PasswordHash: mustHash(t, "s3creta!"),
		Rol:          domain.RolAdmin,
		Estado:       true,
	})

	if _, _, err := svc.Login(context.Background(), "marta@example.com", "otra"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	svc, _, _, _ := newAuthFixture(t)
	if _, _, err := svc.Login(context.Background(), "nadie@example.com", "pass"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_EmptyFields(t *testing.T) {
	svc, _, _, _ := newAuthFixture(t)
	if _, _, err := svc.Login(context.Background(), "", ""); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_EmailCaseInsensitive(t *testing.T) {
	svc, usuarios, _, _ := newAuthFixture(t)
	_, _ = usuarios.Create(context.Background(), &domain.Usuario{
		Email:        "Marta@Example.com",
		PasswordHash: mustHash(t, "s3creta!"),
		Rol:          domain.RolUsuario,
		Estado:       true,
	})

	if _, _, err := svc.Login(context.Background(), "marta@example.com", "s3creta!"); err != nil {
		t.Fatalf("login should match email case-insensitively: %v", err)
	}
}

func TestAuthService_Login_InactiveAccount(t *testing.T) {
	svc, usuarios, _, _ := newAuthFixture(t)
	_, _ = usuarios.Create(context.Background(), &domain.Usuario{
		Email:        "baja@example.com",
		PasswordHash: mustHash(t, "s3creta!"),
		Rol:          domain.RolUsuario,
		Estado:       false,
	})

	if _, _, err := svc.Login(context.Background(), "baja@example.com", "s3creta!"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for inactive account, got %v", err)
	}
}

func TestAuthService_Login_ClienteIncludesApellidoDNI(t *testing.T) {
	svc, usuarios, clientes, _ := newAuthFixture(t)
	cuenta, _ := usuarios.Create(context.Background(), &domain.Usuario{
		Nombre:       "Pedro",
		Email:        "pedro@example.com",
		PasswordHash: mustHash(t, "cliente1234"),
		Rol:          domain.RolCliente,
		Estado:       true,
	})
	_, _ = clientes.Create(context.Background(), &domain.Cliente{
		Nombre:    "Pedro",
		Apellido:  "Suárez",
		DNI:       "30111222",
		Estado:    true,
		UsuarioID: cuenta.ID,
	})

	_, identidad, err := svc.Login(context.Background(), "pedro@example.com", "cliente1234")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if identidad.Apellido != "Suárez" || identidad.DNI != "30111222" {
		t.Fatalf("expected linked cliente data, got %+v", identidad)
	}
}

func TestAuthService_CambiarPassword(t *testing.T) {
	svc, usuarios, _, _ := newAuthFixture(t)
	u, _ := usuarios.Create(context.Background(), &domain.Usuario{
		Email:        "marta@example.com",
		PasswordHash: mustHash(t, "vieja123"),
		Rol:          domain.RolAdmin,
		Estado:       true,
	})

	if err := svc.CambiarPassword(context.Background(), u.ID, "incorrecta", "nueva1234"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for wrong current password, got %v", err)
	}

	if err := svc.CambiarPassword(context.Background(), u.ID, "vieja123", "nueva1234"); err != nil {
		t.Fatalf("CambiarPassword failed: %v", err)
	}

	updated, _ := usuarios.FindByID(context.Background(), u.ID)
	if bcrypt.CompareHashAndPassword([]byte(updated.PasswordHash), []byte("nueva1234")) != nil {
		t.Fatalf("stored hash does not match the new password")
	}
	if bcrypt.CompareHashAndPassword([]byte(updated.PasswordHash), []byte("vieja123")) == nil {
		t.Fatalf("old password still verifies")
	}
}
