package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/gestoria/admin-api/internal/core/token"
)

// CookieName is the session cookie carrying the signed token.
const CookieName = "token"

const claimsKey = "claims"

// Claims extracts and verifies the session cookie on every request, storing
// the decoded claims in the context. Extraction is best effort: a missing,
// malformed or expired token leaves nil claims and the request continues.
// The gate and RequireRole decide what that means per route.
func Claims(ts *token.Service) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if cookie, err := c.Cookie(CookieName); err == nil && cookie.Value != "" {
				if claims, err := ts.Verify(cookie.Value); err == nil {
					c.Set(claimsKey, claims)
				}
			}
			return next(c)
		}
	}
}

// ClaimsFrom returns the verified claims of the current request, or nil when
// the request carried no valid token.
func ClaimsFrom(c echo.Context) *token.Claims {
	claims, _ := c.Get(claimsKey).(*token.Claims)
	return claims
}
