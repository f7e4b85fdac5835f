package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/gestoria/admin-api/internal/api/metrics"
	"github.com/gestoria/admin-api/internal/core/domain"
	"github.com/gestoria/admin-api/internal/core/ports"
)

const (
	// PasswordPorDefecto is assigned to admin-provisioned accounts until the
	// user changes it.
	PasswordPorDefecto = "cliente1234"

	usuariosPorPagina = 15
	cacheUsuarios     = "usuarios"
)

// UsuarioService implements user management. The listing goes through the
// TTL cache; every mutation invalidates the whole usuarios prefix.
type UsuarioService struct {
	repo   ports.UsuarioRepository
	cache  ports.ListCache
	logger zerolog.Logger
}

func NewUsuarioService(repo ports.UsuarioRepository, cache ports.ListCache, logger zerolog.Logger) *UsuarioService {
	return &UsuarioService{repo: repo, cache: cache, logger: logger}
}

func (s *UsuarioService) List(ctx context.Context, filtro string, pagina int) (*ports.ListUsuariosResult, error) {
	if pagina < 1 {
		pagina = 1
	}

	key := fmt.Sprintf("%s:p%d:f%s", cacheUsuarios, pagina, filtro)
	if s.cache != nil {
		var cached ports.ListUsuariosResult
		if ok, err := s.cache.Get(ctx, key, &cached); err == nil && ok {
			metrics.CacheTotal.WithLabelValues("hit").Inc()
			return &cached, nil
		}
		metrics.CacheTotal.WithLabelValues("miss").Inc()
	}

	usuarios, total, err := s.repo.List(ctx, ports.ListUsuariosFilter{
		Filtro: filtro,
		Pagina: pagina,
		Limit:  usuariosPorPagina,
	})
	if err != nil {
		return nil, err
	}

	result := &ports.ListUsuariosResult{Usuarios: usuarios, Total: total}
	if s.cache != nil {
		if err := s.cache.Set(ctx, key, result); err != nil {
			s.logger.Warn().Err(err).Msg("cache set failed")
		}
	}
	return result, nil
}

func (s *UsuarioService) Get(ctx context.Context, id string) (*domain.Usuario, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *UsuarioService) Create(ctx context.Context, in ports.CreateUsuarioInput) (*domain.Usuario, error) {
	if in.Nombre == "" || in.Email == "" || !domain.RolValido(in.Rol) {
		return nil, domain.ErrValidation
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(PasswordPorDefecto), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	creado, err := s.repo.Create(ctx, &domain.Usuario{
		Nombre:       in.Nombre,
		Email:        in.Email,
		PasswordHash: string(hash),
		Rol:          in.Rol,
		Estado:       true,
		FotoURL:      in.FotoURL,
	})
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx)
	s.logger.Info().Str("usuario_id", creado.ID).Str("rol", creado.Rol).Msg("usuario creado")
	return creado, nil
}

func (s *UsuarioService) Update(ctx context.Context, id string, in ports.UpdateUsuarioInput) (*domain.Usuario, error) {
	// A body of exactly {estado: false} is the soft-delete form: only the
	// active flag changes, everything else is preserved.
	if in.SoloBaja() {
		u, err := s.repo.SetEstado(ctx, id, false)
		if err != nil {
			return nil, err
		}
		s.invalidate(ctx)
		s.logger.Info().Str("usuario_id", id).Msg("usuario dado de baja")
		return u, nil
	}

	if in.Rol != nil && !domain.RolValido(*in.Rol) {
		return nil, domain.ErrValidation
	}

	u, err := s.repo.Update(ctx, id, ports.UsuarioUpdate{
		Nombre:  in.Nombre,
		Email:   in.Email,
		Rol:     in.Rol,
		Estado:  in.Estado,
		FotoURL: in.FotoURL,
	})
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return u, nil
}

func (s *UsuarioService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx)
	s.logger.Info().Str("usuario_id", id).Msg("usuario eliminado")
	return nil
}

func (s *UsuarioService) ActualizarPerfil(ctx context.Context, usuarioID string, in ports.ActualizarPerfilInput) error {
	_, err := s.repo.Update(ctx, usuarioID, ports.UsuarioUpdate{
		Nombre:  in.Nombre,
		FotoURL: in.FotoURL,
	})
	if err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

func (s *UsuarioService) invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx, cacheUsuarios); err != nil {
		s.logger.Warn().Err(err).Msg("cache invalidation failed")
	}
}
