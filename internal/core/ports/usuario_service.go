package ports

import (
	"context"

	"github.com/gestoria/admin-api/internal/core/domain"
)

// CreateUsuarioInput carries the fields for admin provisioning of a user.
// The account starts active with the system default password.
type CreateUsuarioInput struct {
	Nombre  string
	Email   string
	Rol     string
	FotoURL string
}

// UpdateUsuarioInput is a partial update; nil fields are not modified.
// A body consisting solely of Estado=false is treated as a soft delete.
type UpdateUsuarioInput struct {
	Nombre  *string
	Email   *string
	Rol     *string
	Estado  *bool
	FotoURL *string
}

// SoloBaja reports whether the update is exactly {estado: false}, the
// wire form of a soft delete.
func (in UpdateUsuarioInput) SoloBaja() bool {
	return in.Estado != nil && !*in.Estado &&
		in.Nombre == nil && in.Email == nil && in.Rol == nil && in.FotoURL == nil
}

// ActualizarPerfilInput carries the self-service profile mutation fields.
type ActualizarPerfilInput struct {
	Nombre  *string
	FotoURL *string
}

// ListUsuariosResult is a page of users plus the unpaged total.
type ListUsuariosResult struct {
	Usuarios []*domain.Usuario
	Total    int64
}

// UsuarioService defines the user-management use cases.
type UsuarioService interface {
	List(ctx context.Context, filtro string, pagina int) (*ListUsuariosResult, error)
	Get(ctx context.Context, id string) (*domain.Usuario, error)
	Create(ctx context.Context, in CreateUsuarioInput) (*domain.Usuario, error)
	Update(ctx context.Context, id string, in UpdateUsuarioInput) (*domain.Usuario, error)
	Delete(ctx context.Context, id string) error
	// ActualizarPerfil mutates the caller's own record only.
	ActualizarPerfil(ctx context.Context, usuarioID string, in ActualizarPerfilInput) error
}
