package handler

import (
	"time"

	"github.com/gestoria/admin-api/internal/core/domain"
	"github.com/gestoria/admin-api/internal/core/ports"
)

type createUsuarioRequest struct {
	Nombre  string `json:"nombre"  validate:"required"`
	Email   string `json:"email"   validate:"required,email"`
	Rol     string `json:"rol"     validate:"required,oneof=ADMIN USUARIO CLIENTE"`
	FotoURL string `json:"fotoUrl"`
}

// updateUsuarioRequest uses pointers so the handler can tell an omitted
// field from a zero value; the soft-delete form is exactly {"estado": false}.
type updateUsuarioRequest struct {
	Nombre  *string `json:"nombre"`
	Email   *string `json:"email"`
	Rol     *string `json:"rol"`
	Estado  *bool   `json:"estado"`
	FotoURL *string `json:"fotoUrl"`
}

type usuarioResponse struct {
	ID       string    `json:"id"`
	Nombre   string    `json:"nombre"`
	Email    string    `json:"email"`
	Rol      string    `json:"rol"`
	Estado   bool      `json:"estado"`
	FotoURL  string    `json:"fotoUrl,omitempty"`
	CreadoEn time.Time `json:"creadoEn"`
}

type listUsuariosResponse struct {
	Usuarios []usuarioResponse `json:"usuarios"`
	Total    int64             `json:"total"`
}

func toUsuarioResponse(u *domain.Usuario) usuarioResponse {
	return usuarioResponse{
		ID:       u.ID,
		Nombre:   u.Nombre,
		Email:    u.Email,
		Rol:      u.Rol,
		Estado:   u.Estado,
		FotoURL:  u.FotoURL,
		CreadoEn: u.CreadoEn,
	}
}

func toListUsuariosResponse(r *ports.ListUsuariosResult) listUsuariosResponse {
	usuarios := make([]usuarioResponse, len(r.Usuarios))
	for i, u := range r.Usuarios {
		usuarios[i] = toUsuarioResponse(u)
	}
	return listUsuariosResponse{Usuarios: usuarios, Total: r.Total}
}
