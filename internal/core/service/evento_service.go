package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/gestoria/admin-api/internal/core/domain"
	"github.com/gestoria/admin-api/internal/core/ports"
)

// EventoService implements the per-user calendar. The owner id always comes
// from the session claims; the repository scopes every mutation by it.
type EventoService struct {
	repo   ports.EventoRepository
	logger zerolog.Logger
}

func NewEventoService(repo ports.EventoRepository, logger zerolog.Logger) *EventoService {
	return &EventoService{repo: repo, logger: logger}
}

func (s *EventoService) List(ctx context.Context, usuarioID string, fecha time.Time, desde, hasta string) ([]*domain.Evento, error) {
	if fecha.IsZero() {
		return nil, domain.ErrValidation
	}
	return s.repo.List(ctx, ports.ListEventosFilter{
		UsuarioID: usuarioID,
		Fecha:     fecha,
		Desde:     desde,
		Hasta:     hasta,
	})
}

func (s *EventoService) Create(ctx context.Context, usuarioID string, in ports.CreateEventoInput) (*domain.Evento, error) {
	if in.Fecha.IsZero() || in.Hora == "" || strings.TrimSpace(in.Texto) == "" {
		return nil, domain.ErrValidation
	}

	creado, err := s.repo.Create(ctx, &domain.Evento{
		Fecha:     in.Fecha,
		Hora:      in.Hora,
		Texto:     in.Texto,
		UsuarioID: usuarioID,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("evento_id", creado.ID).Str("usuario_id", usuarioID).Msg("evento creado")
	return creado, nil
}

func (s *EventoService) Update(ctx context.Context, id, usuarioID string, upd ports.EventoUpdate) (*domain.Evento, error) {
	return s.repo.Update(ctx, id, usuarioID, upd)
}

func (s *EventoService) Delete(ctx context.Context, id, usuarioID string) error {
	return s.repo.Delete(ctx, id, usuarioID)
}
