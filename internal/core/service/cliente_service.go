package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/gestoria/admin-api/internal/api/metrics"
	"github.com/gestoria/admin-api/internal/core/domain"
	"github.com/gestoria/admin-api/internal/core/ports"
)

const (
	clientesPorPagina = 15
	cacheClientes     = "clientes"

	// dniPendiente marks a client whose real DNI has not been loaded yet.
	dniPendiente = "00000000"
)

// ClienteService implements client management. Creating a client also
// provisions the linked CLIENTE login account with the default password.
type ClienteService struct {
	clientes ports.ClienteRepository
	usuarios ports.UsuarioRepository
	cache    ports.ListCache
	logger   zerolog.Logger
}

func NewClienteService(clientes ports.ClienteRepository, usuarios ports.UsuarioRepository, cache ports.ListCache, logger zerolog.Logger) *ClienteService {
	return &ClienteService{clientes: clientes, usuarios: usuarios, cache: cache, logger: logger}
}

func (s *ClienteService) List(ctx context.Context, filtro string, pagina int) (*ports.ListClientesResult, error) {
	if pagina < 1 {
		pagina = 1
	}

	key := fmt.Sprintf("%s:p%d:f%s", cacheClientes, pagina, filtro)
	if s.cache != nil {
		var cached ports.ListClientesResult
		if ok, err := s.cache.Get(ctx, key, &cached); err == nil && ok {
			metrics.CacheTotal.WithLabelValues("hit").Inc()
			return &cached, nil
		}
		metrics.CacheTotal.WithLabelValues("miss").Inc()
	}

	clientes, total, err := s.clientes.List(ctx, ports.ListClientesFilter{
		Filtro: filtro,
		Pagina: pagina,
		Limit:  clientesPorPagina,
	})
	if err != nil {
		return nil, err
	}

	result := &ports.ListClientesResult{Clientes: clientes, Total: total}
	if s.cache != nil {
		if err := s.cache.Set(ctx, key, result); err != nil {
			s.logger.Warn().Err(err).Msg("cache set failed")
		}
	}
	return result, nil
}

func (s *ClienteService) Get(ctx context.Context, id string) (*domain.Cliente, error) {
	return s.clientes.FindByID(ctx, id)
}

func (s *ClienteService) Create(ctx context.Context, in ports.CreateClienteInput) (*domain.Cliente, error) {
	if in.Nombre == "" {
		return nil, domain.ErrValidation
	}

	var usuarioID string
	if in.Email != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(PasswordPorDefecto), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		cuenta, err := s.usuarios.Create(ctx, &domain.Usuario{
			Nombre:       in.Nombre,
			Email:        in.Email,
			PasswordHash: string(hash),
			Rol:          domain.RolCliente,
			Estado:       true,
		})
		if err != nil {
			return nil, err
		}
		usuarioID = cuenta.ID
	}

	creado, err := s.clientes.Create(ctx, &domain.Cliente{
		Nombre:      in.Nombre,
		Apellido:    in.Apellido,
		Email:       in.Email,
		Profesion:   in.Profesion,
		RazonSocial: in.Nombre,
		Compania:    in.Compania,
		CUIT:        provisionalCUIT(),
		DNI:         dniPendiente,
		Telefono:    in.Telefono,
		Estado:      true,
		UsuarioID:   usuarioID,
	})
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx)
	s.logger.Info().Str("cliente_id", creado.ID).Msg("cliente creado")
	return creado, nil
}

func (s *ClienteService) Update(ctx context.Context, id string, upd ports.ClienteUpdate) (*domain.Cliente, error) {
	c, err := s.clientes.Update(ctx, id, upd)
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return c, nil
}

// Delete deactivates the client; the record is never removed.
func (s *ClienteService) Delete(ctx context.Context, id string) error {
	if err := s.clientes.SetEstado(ctx, id, false); err != nil {
		return err
	}
	s.invalidate(ctx)
	s.logger.Info().Str("cliente_id", id).Msg("cliente dado de baja")
	return nil
}

func (s *ClienteService) invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx, cacheClientes); err != nil {
		s.logger.Warn().Err(err).Msg("cache invalidation failed")
	}
}

// provisionalCUIT generates a placeholder tax id until the real one is
// loaded from documentation.
func provisionalCUIT() string {
	return uuid.NewString()[:13]
}
