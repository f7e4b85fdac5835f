package ports

import (
	"context"

	"github.com/gestoria/admin-api/internal/core/domain"
)

// ListUsuariosFilter carries the query parameters of the user listing.
// Only USUARIO-role accounts are listed; ADMIN and CLIENTE accounts are
// managed elsewhere.
type ListUsuariosFilter struct {
	Filtro string // optional: case-insensitive partial match on nombre or email
	Pagina int    // 1-based
	Limit  int    // rows per page
}

// UsuarioUpdate is a partial update; nil fields are left untouched.
type UsuarioUpdate struct {
	Nombre       *string
	Email        *string
	Rol          *string
	Estado       *bool
	FotoURL      *string
	PasswordHash *string
}

// UsuarioRepository is the credential store. Email uniqueness is
// case-insensitive and enforced by the store; violations surface as
// domain.ErrDuplicateEmail.
type UsuarioRepository interface {
	// FindByEmail matches email case-insensitively.
	FindByEmail(ctx context.Context, email string) (*domain.Usuario, error)
	FindByID(ctx context.Context, id string) (*domain.Usuario, error)
	Create(ctx context.Context, u *domain.Usuario) (*domain.Usuario, error)
	Update(ctx context.Context, id string, upd UsuarioUpdate) (*domain.Usuario, error)
	// SetEstado flips only the active flag (soft delete / reactivation).
	SetEstado(ctx context.Context, id string, estado bool) (*domain.Usuario, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filter ListUsuariosFilter) ([]*domain.Usuario, int64, error)
	ListAll(ctx context.Context) ([]*domain.Usuario, error)
}
