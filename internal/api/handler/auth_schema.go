package handler

import (
	"github.com/gestoria/admin-api/internal/core/ports"
	"github.com/gestoria/admin-api/internal/core/token"
)

// mensajeResponse is the {mensaje} envelope used by the auth endpoints.
type mensajeResponse struct {
	Mensaje string `json:"mensaje"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// usuarioSesion is the identity block inside the login response. Apellido
// and DNI appear only for accounts linked to a cliente.
type usuarioSesion struct {
	ID       string `json:"id"`
	Nombre   string `json:"nombre"`
	Apellido string `json:"apellido,omitempty"`
	DNI      string `json:"dni,omitempty"`
	Rol      string `json:"rol"`
	Email    string `json:"email"`
}

type loginResponse struct {
	Mensaje string        `json:"mensaje"`
	Usuario usuarioSesion `json:"usuario"`
	Token   string        `json:"token"`
}

// meResponse mirrors the decoded token claims.
type meResponse struct {
	Sub    string `json:"sub"`
	Rol    string `json:"rol"`
	Nombre string `json:"nombre"`
	Email  string `json:"email"`
	Exp    int64  `json:"exp"`
}

func toUsuarioSesion(u *ports.LoginUsuario) usuarioSesion {
	return usuarioSesion{
		ID:       u.ID,
		Nombre:   u.Nombre,
		Apellido: u.Apellido,
		DNI:      u.DNI,
		Rol:      u.Rol,
		Email:    u.Email,
	}
}

func toMeResponse(claims *token.Claims) meResponse {
	resp := meResponse{
		Sub:    claims.Subject,
		Rol:    claims.Rol,
		Nombre: claims.Nombre,
		Email:  claims.Email,
	}
	if claims.ExpiresAt != nil {
		resp.Exp = claims.ExpiresAt.Unix()
	}
	return resp
}
