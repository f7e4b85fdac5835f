package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/gestoria/admin-api/internal/api/handler"
	"github.com/gestoria/admin-api/internal/api/middleware"
	"github.com/gestoria/admin-api/internal/core/domain"
	"github.com/gestoria/admin-api/internal/core/service"
	"github.com/gestoria/admin-api/internal/core/token"
	"github.com/gestoria/admin-api/internal/infrastructure/config"
	mongorepo "github.com/gestoria/admin-api/internal/infrastructure/db/mongo"
	redisdb "github.com/gestoria/admin-api/internal/infrastructure/db/redis"
)

// NewRouter builds the Echo instance with every route registered. The token
// service is returned alongside so callers can issue tokens out of band.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) (*echo.Echo, error) {
	tokens, err := token.NewService(cfg.JWTSecret)
	if err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("gestoria"))
	e.Use(middleware.Claims(tokens))
	e.Use(middleware.Gate())

	// --- Dependencies ---
	usuarioRepo := mongorepo.NewUsuarioRepository(db)
	clienteRepo := mongorepo.NewClienteRepository(db)
	empleadoRepo := mongorepo.NewEmpleadoRepository(db)
	pagoRepo := mongorepo.NewPagoRepository(db)
	eventoRepo := mongorepo.NewEventoRepository(db)

	cache := redisdb.NewListCache(rdb, cfg.CacheTTL)

	authService := service.NewAuthService(usuarioRepo, clienteRepo, tokens, log)
	usuarioService := service.NewUsuarioService(usuarioRepo, cache, log)
	clienteService := service.NewClienteService(clienteRepo, usuarioRepo, cache, log)
	empleadoService := service.NewEmpleadoService(empleadoRepo, pagoRepo, log)
	eventoService := service.NewEventoService(eventoRepo, log)
	datosService := service.NewDatosService(usuarioRepo, clienteService, empleadoService, clienteRepo, empleadoRepo, pagoRepo, log)

	authHandler := handler.NewAuthHandler(authService, cfg.Production())
	usuarioHandler := handler.NewUsuarioHandler(usuarioService)
	clienteHandler := handler.NewClienteHandler(clienteService)
	empleadoHandler := handler.NewEmpleadoHandler(empleadoService)
	eventoHandler := handler.NewEventoHandler(eventoService)
	perfilHandler := handler.NewPerfilHandler(usuarioService, authService)
	datosHandler := handler.NewDatosHandler(datosService)
	healthHandler := handler.NewHealthHandler(db, rdb)

	// --- Session ---
	e.POST("/api/login", authHandler.Login)
	e.GET("/api/logout", authHandler.Logout)
	e.GET("/api/me", authHandler.Me)

	// --- Users (ADMIN only) ---
	usuarios := e.Group("/api/usuarios", middleware.RequireRole(domain.RolAdmin))
	usuarios.GET("", usuarioHandler.List)
	usuarios.POST("", usuarioHandler.Create)
	usuarios.GET("/:id", usuarioHandler.Get)
	usuarios.PUT("/:id", usuarioHandler.Update)
	usuarios.DELETE("/:id", usuarioHandler.Delete)

	// --- Clients (staff only) ---
	clientes := e.Group("/api/clientes", middleware.RequireRole(domain.RolAdmin, domain.RolUsuario))
	clientes.GET("", clienteHandler.List)
	clientes.POST("", clienteHandler.Create)
	clientes.GET("/:id", clienteHandler.Get)
	clientes.PUT("/:id", clienteHandler.Update)
	clientes.DELETE("/:id", clienteHandler.Delete)

	// --- Payroll (any authenticated session) ---
	autenticado := middleware.RequireRole()
	e.GET("/api/empleados", empleadoHandler.GetByDNI, autenticado)
	e.POST("/api/empleados", empleadoHandler.Create, autenticado)
	e.POST("/api/pagos", empleadoHandler.RegistrarPago, autenticado)

	// --- Calendar ---
	eventos := e.Group("/api/eventos", autenticado)
	eventos.GET("", eventoHandler.List)
	eventos.POST("", eventoHandler.Create)
	eventos.PUT("/:id", eventoHandler.Update)
	eventos.DELETE("/:id", eventoHandler.Delete)

	// --- Profile self-service ---
	perfil := e.Group("/api/perfil", autenticado)
	perfil.POST("/actualizar", perfilHandler.Actualizar)
	perfil.POST("/cambiar-password", perfilHandler.CambiarPassword)

	// --- Bulk data (ADMIN only) ---
	soloAdmin := middleware.RequireRole(domain.RolAdmin)
	e.GET("/api/exportar-datos", datosHandler.Exportar, soloAdmin)
	e.POST("/api/importar-datos", datosHandler.Importar, soloAdmin)

	// --- Operational endpoints ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthHandler.Readiness)

	// --- Gated pages ---
	// The gate runs before these handlers; each registration only gives the
	// route a 200 body once the policy allows it.
	e.GET("/login", handler.Page("login"))
	e.GET("/", handler.Page("inicio"))
	e.GET("/nomina", handler.Page("nomina"))
	e.GET("/usuarios", handler.Page("usuarios"))
	e.GET("/cliente/:id", handler.Page("cliente"))
	e.GET("/facturas", handler.Page("facturas"))
	e.GET("/calendario", handler.Page("calendario"))
	e.GET("/ajustes", handler.Page("ajustes"))
	e.GET("/perfil", handler.Page("perfil"))

	return e, nil
}
