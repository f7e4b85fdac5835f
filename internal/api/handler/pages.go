package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Page returns a handler for a gated page route. The web client renders the
// actual screens; the server only needs these routes registered so the gate
// can answer browser navigations with allow or redirect.
func Page(nombre string) echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"pagina": nombre})
	}
}
