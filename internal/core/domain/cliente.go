package domain

import "errors"

var ErrClienteNotFound = errors.New("cliente not found")

// Cliente is a managed client of the gestoría. When the client can log in,
// UsuarioID links to the CLIENTE-role account created alongside it.
type Cliente struct {
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
	UsuarioID   string `json:"usuarioId,omitempty"`
}
