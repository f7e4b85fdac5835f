package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/gestoria/admin-api/internal/core/domain"
	"github.com/gestoria/admin-api/internal/core/ports"
)

// SeedAdmin creates the bootstrap ADMIN account at startup when none exists
// for the configured email. With no email configured it is a no-op, so a
// deployment that provisions admins by hand is unaffected.
func SeedAdmin(ctx context.Context, repo ports.UsuarioRepository, email, password string, logger zerolog.Logger) error {
	if email == "" || password == "" {
		return nil
	}

	if _, err := repo.FindByEmail(ctx, email); err == nil {
		return nil
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	creado, err := repo.Create(ctx, &domain.Usuario{
		Nombre:       "Administrador",
		Email:        email,
		PasswordHash: string(hash),
		Rol:          domain.RolAdmin,
		Estado:       true,
	})
	if err != nil {
		// Lost a race against another instance seeding the same account.
		if errors.Is(err, domain.ErrDuplicateEmail) {
			return nil
		}
		return err
	}

	logger.Info().Str("usuario_id", creado.ID).Msg("administrador inicial creado")
	return nil
}
