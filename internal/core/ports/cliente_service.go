package ports

import (
	"context"

	"github.com/gestoria/admin-api/internal/core/domain"
)

// CreateClienteInput carries the fields for registering a new client.
// A CLIENTE-role login account is created alongside with the default
// password when an email is provided.
type CreateClienteInput struct {
	Nombre    string
	Apellido  string
	Email     string
	Profesion string
	Compania  string
	Telefono  string
}

// ListClientesResult is a page of clients plus the unpaged total.
type ListClientesResult struct {
	Clientes []*domain.Cliente
	Total    int64
}

// ClienteService defines the client-management use cases. Delete is a soft
// delete: the record is deactivated, never removed.
type ClienteService interface {
	List(ctx context.Context, filtro string, pagina int) (*ListClientesResult, error)
	Get(ctx context.Context, id string) (*domain.Cliente, error)
	Create(ctx context.Context, in CreateClienteInput) (*domain.Cliente, error)
	Update(ctx context.Context, id string, upd ClienteUpdate) (*domain.Cliente, error)
	Delete(ctx context.Context, id string) error
}
