package handler

import (
	"github.com/gestoria/admin-api/internal/core/domain"
	"github.com/gestoria/admin-api/internal/core/ports"
)

type createClienteRequest struct {
	Nombre    string `json:"nombre"    validate:"required"`
	Apellido  string `json:"apellido"`
	Email     string `json:"email"     validate:"omitempty,email"`
	Profesion string `json:"profesion"`
	Compania  string `json:"compania"`
	Telefono  string `json:"telefono"`
}

type updateClienteRequest struct {
	Nombre    *string `json:"nombre"`
	Apellido  *string `json:"apellido"`
	Email     *string `json:"email"`
	Profesion *string `json:"profesion"`
	Compania  *string `json:"compania"`
	Telefono  *string `json:"telefono"`
	Estado    *bool   `json:"estado"`
}

type clienteResponse struct {
	ID          string `json:"id"`
	Nombre      string `json:"nombre"`
	Apellido    string `json:"apellido"`
	Email       string `json:"email"`
	Profesion   string `json:"profesion"`
	RazonSocial string `json:"razonSocial"`
	Compania    string `json:"compania"`
	CUIT        string `json:"cuit"`
	DNI         string `json:"dni"`
	Telefono    string `json:"telefono"`
	Estado      bool   `json:"estado"`
}

type listClientesResponse struct {
	Clientes []clienteResponse `json:"clientes"`
	Total    int64             `json:"total"`
}

func toClienteResponse(c *domain.Cliente) clienteResponse {
	return clienteResponse{
		ID:          c.ID,
		Nombre:      c.Nombre,
		Apellido:    c.Apellido,
		Email:       c.Email,
		Profesion:   c.Profesion,
		RazonSocial: c.RazonSocial,
		Compania:    c.Compania,
		CUIT:        c.CUIT,
		DNI:         c.DNI,
		Telefono:    c.Telefono,
		Estado:      c.Estado,
	}
}

func toListClientesResponse(r *ports.ListClientesResult) listClientesResponse {
	clientes := make([]clienteResponse, len(r.Clientes))
	for i, c := range r.Clientes {
		clientes[i] = toClienteResponse(c)
	}
	return listClientesResponse{Clientes: clientes, Total: r.Total}
}
