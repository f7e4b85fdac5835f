package ports

import (
	"context"
	"time"

	"github.com/gestoria/admin-api/internal/core/domain"
)

// ListEventosFilter selects one user's events on a single day, optionally
// bounded to an "HH:MM" time-of-day window.
type ListEventosFilter struct {
	UsuarioID string
	Fecha     time.Time
	Desde     string // optional lower bound, e.g. "08:00"
	Hasta     string // optional upper bound, e.g. "18:00"
}

// EventoRepository defines persistence operations for calendar events.
// Mutations are scoped by owner: an id belonging to another user behaves
// like a missing record.
type EventoRepository interface {
	List(ctx context.Context, filter ListEventosFilter) ([]*domain.Evento, error)
	Create(ctx context.Context, e *domain.Evento) (*domain.Evento, error)
	Update(ctx context.Context, id, usuarioID string, upd EventoUpdate) (*domain.Evento, error)
	Delete(ctx context.Context, id, usuarioID string) error
}

// EventoUpdate is a partial update; nil fields are left untouched.
type EventoUpdate struct {
	Fecha *time.Time
	Hora  *string
	Texto *string
}
