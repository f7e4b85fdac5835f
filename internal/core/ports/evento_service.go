package ports

import (
	"context"
	"time"

	"github.com/gestoria/admin-api/internal/core/domain"
)

// CreateEventoInput carries the fields for a new calendar entry. The owner
// always comes from the session claims, never from the request body.
type CreateEventoInput struct {
	Fecha time.Time
	Hora  string
	Texto string
}

// EventoService defines the calendar use cases, all scoped to the
// authenticated user.
type EventoService interface {
	List(ctx context.Context, usuarioID string, fecha time.Time, desde, hasta string) ([]*domain.Evento, error)
	Create(ctx context.Context, usuarioID string, in CreateEventoInput) (*domain.Evento, error)
	Update(ctx context.Context, id, usuarioID string, upd EventoUpdate) (*domain.Evento, error)
	Delete(ctx context.Context, id, usuarioID string) error
}
