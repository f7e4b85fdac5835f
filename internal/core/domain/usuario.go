package domain

import (
	"errors"
	"time"
)

// Roles conocidos del sistema. Cada usuario tiene exactamente uno.
const (
	RolAdmin   = "ADMIN"
	RolUsuario = "USUARIO"
	RolCliente = "CLIENTE"
)

// RolValido reports whether rol is one of the known roles.
func RolValido(rol string) bool {
	return rol == RolAdmin || rol == RolUsuario || rol == RolCliente
}

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
	ErrForbidden          = errors.New("access forbidden")
	ErrUserNotFound       = errors.New("user not found")
	ErrUserInactive       = errors.New("user inactive")
	ErrDuplicateEmail     = errors.New("email already registered")
	ErrValidation         = errors.New("validation failed")
)

// Usuario models an authenticated actor in the system.
// Estado=false marks a soft-deleted account: the record survives but the
// user can no longer log in. Tokens already issued stay valid until expiry.
type Usuario struct {
	ID           string    `json:"id"`
	Nombre       string    `json:"nombre"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Rol          string    `json:"rol"`
	Estado       bool      `json:"estado"`
	FotoURL      string    `json:"fotoUrl,omitempty"`
	CreadoEn     time.Time `json:"creadoEn"`
}
