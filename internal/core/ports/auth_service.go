package ports

import "context"

// LoginUsuario is the identity block returned on successful login.
// Apellido and DNI are present only when the account is linked to a cliente
// record.
type LoginUsuario struct {
	ID       string
	Nombre   string
	Apellido string
	DNI      string
	Rol      string
	Email    string
}

// AuthService implements login and password changes on top of the
// credential store and the token service.
type AuthService interface {
	// Login verifies credentials and returns a signed session token.
	// Wrong email, wrong password and a deactivated account all fail with
	// domain.ErrInvalidCredentials so callers cannot enumerate accounts.
	Login(ctx context.Context, email, password string) (string, *LoginUsuario, error)
	// CambiarPassword verifies the current password before re-hashing.
	CambiarPassword(ctx context.Context, usuarioID, actual, nueva string) error
}
