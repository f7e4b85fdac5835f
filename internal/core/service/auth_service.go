package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/gestoria/admin-api/internal/core/domain"
	"github.com/gestoria/admin-api/internal/core/ports"
	"github.com/gestoria/admin-api/internal/core/token"
)

// AuthService implements login and password changes.
type AuthService struct {
	usuarios ports.UsuarioRepository
	clientes ports.ClienteRepository
	tokens   *token.Service
	logger   zerolog.Logger
}

func NewAuthService(usuarios ports.UsuarioRepository, clientes ports.ClienteRepository, tokens *token.Service, logger zerolog.Logger) *AuthService {
	return &AuthService{usuarios: usuarios, clientes: clientes, tokens: tokens, logger: logger}
}

// Login verifies credentials against the credential store and issues a
// session token. A missing user, a wrong password and a deactivated account
// all surface as ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *ports.LoginUsuario, error) {
	if email == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	u, err := s.usuarios.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	// Soft-deleted accounts cannot open new sessions. Tokens issued before
	// deactivation stay valid until they expire.
	if !u.Estado {
		s.logger.Warn().Str("usuario_id", u.ID).Msg("login attempt on inactive account")
		return "", nil, domain.ErrInvalidCredentials
	}

	tkn, err := s.tokens.Issue(u)
	if err != nil {
		return "", nil, err
	}

	identidad := &ports.LoginUsuario{
		ID:     u.ID,
		Nombre: u.Nombre,
		Rol:    u.Rol,
		Email:  u.Email,
	}
	if u.Rol == domain.RolCliente {
		if cli, err := s.clientes.FindByUsuarioID(ctx, u.ID); err == nil {
			identidad.Apellido = cli.Apellido
			identidad.DNI = cli.DNI
		}
	}

	s.logger.Info().Str("usuario_id", u.ID).Str("rol", u.Rol).Msg("login exitoso")
	return tkn, identidad, nil
}

// CambiarPassword re-hashes the caller's password after verifying the
// current one.
func (s *AuthService) CambiarPassword(ctx context.Context, usuarioID, actual, nueva string) error {
	if nueva == "" {
		return domain.ErrValidation
	}

	u, err := s.usuarios.FindByID(ctx, usuarioID)
	if err != nil {
		return err
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(actual)) != nil {
		return domain.ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(nueva), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	hashStr := string(hash)
	if _, err := s.usuarios.Update(ctx, usuarioID, ports.UsuarioUpdate{PasswordHash: &hashStr}); err != nil {
		return err
	}

	s.logger.Info().Str("usuario_id", usuarioID).Msg("password actualizado")
	return nil
}
