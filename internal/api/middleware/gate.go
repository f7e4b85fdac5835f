package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/gestoria/admin-api/internal/api/metrics"
	"github.com/gestoria/admin-api/internal/core/policy"
)

// gateExcluded prefixes bypass the gate entirely: API endpoints enforce
// their own authorization via RequireRole, and assets and operational
// endpoints carry no session semantics.
var gateExcluded = []string{"/api/", "/assets/", "/metrics", "/health"}

// Gate evaluates the access policy on every page request and short-circuits
// with a redirect when the policy denies. Downstream handlers never run on a
// denied request. Must be registered after Claims.
func Gate() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			path := c.Request().URL.Path
			for _, prefix := range gateExcluded {
				if strings.HasPrefix(path, prefix) {
					return next(c)
				}
			}

			decision := policy.Decide(path, ClaimsFrom(c))
			if !decision.Allow {
				metrics.GateDecisionsTotal.WithLabelValues("redirect").Inc()
				return c.Redirect(http.StatusFound, decision.Redirect)
			}

			metrics.GateDecisionsTotal.WithLabelValues("allow").Inc()
			return next(c)
		}
	}
}
