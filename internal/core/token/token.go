// Package token issues and verifies the stateless HS256 session tokens used
// by the request gate and the API endpoints. Tokens are never persisted
// server-side: verification is a pure signature + expiry check, so logout is
// advisory and a captured token stays valid until its 2 hour lifetime ends.
package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/gestoria/admin-api/internal/core/domain"
)

// Lifetime is the fixed validity window of every issued token.
const Lifetime = 2 * time.Hour

// Claims is the decoded payload of a session token. The subject is the
// user id; jti carries a unique id so a revocation denylist can be added
// later without changing the wire format.
type Claims struct {
	Rol    string `json:"rol"`
	Nombre string `json:"nombre"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

// UsuarioID returns the subject user id.
func (c *Claims) UsuarioID() string {
	return c.Subject
}

// Service signs and verifies session tokens with a shared symmetric secret.
// The same secret must be configured on every verifying component.
type Service struct {
	secret []byte
	now    func() time.Time
}

// NewService returns a token Service. An empty secret is a fatal
// configuration error: nothing can be issued or verified without it.
func NewService(secret string) (*Service, error) {
	if secret == "" {
		return nil, errors.New("token: signing secret is not configured")
	}
	return &Service{secret: []byte(secret), now: time.Now}, nil
}

// WithClock overrides the time source. Intended for tests.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// Issue signs a token for u valid for Lifetime from now.
func (s *Service) Issue(u *domain.Usuario) (string, error) {
	now := s.now().UTC()
	claims := &Claims{
		Rol:    u.Rol,
		Nombre: u.Nombre,
		Email:  u.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   u.ID,
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(Lifetime)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// Verify parses and validates raw. Every failure mode (bad signature,
// malformed token, expired) collapses into domain.ErrInvalidToken: callers
// treat an expired session identically to no session at all. A token checked
// at exactly its expiry instant is already invalid.
func (s *Service) Verify(raw string) (*Claims, error) {
	claims := &Claims{}
	tkn, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil || !tkn.Valid {
		return nil, domain.ErrInvalidToken
	}
	return claims, nil
}
