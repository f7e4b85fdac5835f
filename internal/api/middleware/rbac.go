package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/gestoria/admin-api/internal/core/domain"
)

// RequireRole is the per-endpoint authorization re-check: API routes do not
// trust the gate and verify the session themselves. A missing or invalid
// token fails with ErrInvalidToken (401); a valid token with an insufficient
// role fails with ErrForbidden (403). With no roles given, any
// authenticated user passes.
func RequireRole(allowedRoles ...string) echo.MiddlewareFunc {
	allowed := make(map[string]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims := ClaimsFrom(c)
			if claims == nil {
				return domain.ErrInvalidToken
			}
			if len(allowed) > 0 {
				if _, ok := allowed[claims.Rol]; !ok {
					return domain.ErrForbidden
				}
			}
			return next(c)
		}
	}
}
