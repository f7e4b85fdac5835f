// Package policy holds the static route access rules evaluated by the
// request gate. Decide is a pure function so the rule table can be tested
// without any HTTP machinery.
package policy

import (
	"strings"

	"github.com/gestoria/admin-api/internal/core/domain"
	"github.com/gestoria/admin-api/internal/core/token"
)

const (
	// LoginPath is where every denied request is redirected.
	LoginPath = "/login"
	// NominaPath is the landing page for CLIENTE users.
	NominaPath = "/nomina"

	usuariosPrefix = "/usuarios"
	clientePrefix  = "/cliente"
)

// publicPaths never require a token. The allow-list is checked before
// anything else so an unauthenticated browser can always reach the login
// page and its backing API without a redirect loop.
var publicPaths = map[string]struct{}{
	LoginPath:      {},
	"/api/login":   {},
	"/logo.png":    {},
	"/favicon.ico": {},
}

// Decision is the outcome of evaluating a request path against the policy.
type Decision struct {
	Allow bool
	// Redirect is the target path when Allow is false.
	Redirect string
}

func redirect(to string) Decision {
	return Decision{Redirect: to}
}

// Decide maps (path, claims) to an allow/redirect decision. claims is nil
// when no token was presented or verification failed; the two cases are
// deliberately indistinguishable here. Rules are evaluated in order.
func Decide(path string, claims *token.Claims) Decision {
	if _, ok := publicPaths[path]; ok {
		return Decision{Allow: true}
	}
	if claims == nil {
		return redirect(LoginPath)
	}
	if path == "/" && claims.Rol == domain.RolCliente {
		return redirect(NominaPath)
	}
	if strings.HasPrefix(path, usuariosPrefix) && claims.Rol != domain.RolAdmin {
		return redirect(LoginPath)
	}
	if strings.HasPrefix(path, clientePrefix) && claims.Rol != domain.RolAdmin && claims.Rol != domain.RolUsuario {
		return redirect(LoginPath)
	}
	return Decision{Allow: true}
}
