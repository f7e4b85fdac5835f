package ports

import (
	"context"

	"github.com/gestoria/admin-api/internal/core/domain"
)

// ListClientesFilter carries the query parameters of the client listing.
// Only active clients are listed.
type ListClientesFilter struct {
	Filtro string // optional: case-insensitive partial match on nombre or profesion
	Pagina int    // 1-based
	Limit  int
}

// ClienteUpdate is a partial update; nil fields are left untouched.
type ClienteUpdate struct {
	Nombre    *string
	Apellido  *string
	Email     *string
	Profesion *string
	Compania  *string
	Telefono  *string
	Estado    *bool
}

// ClienteRepository defines persistence operations for clients.
type ClienteRepository interface {
	FindByID(ctx context.Context, id string) (*domain.Cliente, error)
	// FindByUsuarioID resolves the cliente linked to a CLIENTE login account.
	FindByUsuarioID(ctx context.Context, usuarioID string) (*domain.Cliente, error)
	Create(ctx context.Context, c *domain.Cliente) (*domain.Cliente, error)
	Update(ctx context.Context, id string, upd ClienteUpdate) (*domain.Cliente, error)
	SetEstado(ctx context.Context, id string, estado bool) error
	List(ctx context.Context, filter ListClientesFilter) ([]*domain.Cliente, int64, error)
	ListAll(ctx context.Context) ([]*domain.Cliente, error)
}
