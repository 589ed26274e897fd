package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/athletica/gym-api/internal/application/access"
	"github.com/athletica/gym-api/internal/application/auth"
	"github.com/athletica/gym-api/internal/application/pagos"
	"github.com/athletica/gym-api/internal/application/usecase"
	"github.com/athletica/gym-api/pkg/jwt"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC       *auth.AuthUseCase
	GimnasioUC   *usecase.GimnasioUseCase
	DashboardUC  *usecase.DashboardUseCase
	EmpleadoUC   *usecase.EmpleadoUseCase
	PlanUC       *usecase.PlanUseCase
	SocioUC      *usecase.SocioUseCase
	LookupUC     *access.LookupUseCase
	MovimientoUC *usecase.MovimientoUseCase
	MercaderiaUC *usecase.MercaderiaUseCase
	RutinaUC     *usecase.RutinaUseCase
	RegistrarUC  *pagos.RegistrarPagoUseCase
	ReciboUC     *pagos.ReciboUseCase
	PreferUC     *pagos.PreferenciaUseCase
	JWTSecret    string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/login", authHandler.LoginPlataforma)
	api.Post("/gym-login", authHandler.LoginGimnasio)

	// Checkout online (público: lo consume la página de pago del socio)
	pagoHandler := NewPagoHandler(deps.RegistrarUC, deps.PreferUC)
	api.Post("/mercadopago/preference", pagoHandler.Preference)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Plataforma (solo superadmin)
	plataforma := protected.Group("/", RequireRole(jwt.RolSuperadmin))
	gimnasioHandler := NewGimnasioHandler(deps.GimnasioUC)
	plataforma.Post("/gimnasios", gimnasioHandler.Create)
	plataforma.Get("/gimnasios", gimnasioHandler.List)
	plataforma.Put("/gimnasios/:id", gimnasioHandler.Update)
	plataforma.Delete("/gimnasios/:id", gimnasioHandler.Delete)
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	plataforma.Get("/dashboard", dashboardHandler.Resumen)

	// Tenant (admin o empleado de un gimnasio; GymID sale siempre del token)
	gym := protected.Group("/", RequireRole(jwt.RolAdmin, jwt.RolEmpleado), RequireTenant())

	// Empleados (solo admin)
	empleadoHandler := NewEmpleadoHandler(deps.EmpleadoUC)
	soloAdmin := RequireRole(jwt.RolAdmin)
	gym.Post("/empleados", soloAdmin, empleadoHandler.Create)
	gym.Get("/empleados", soloAdmin, empleadoHandler.List)
	gym.Put("/empleados/:id", soloAdmin, empleadoHandler.Update)
	gym.Delete("/empleados/:id", soloAdmin, empleadoHandler.Delete)

	// Planes
	planHandler := NewPlanHandler(deps.PlanUC)
	gym.Post("/planes", planHandler.Create)
	gym.Get("/planes", planHandler.List)
	gym.Put("/planes/:id", planHandler.Update)
	gym.Delete("/planes/:id", planHandler.Delete)

	// Socios + control de ingreso
	socioHandler := NewSocioHandler(deps.SocioUC, deps.LookupUC)
	gym.Post("/socios", socioHandler.Create)
	gym.Get("/socios", socioHandler.List)
	gym.Get("/socios/por-vencer", socioHandler.PorVencer)
	gym.Post("/socios/reconciliar", soloAdmin, socioHandler.Reconciliar)
	gym.Put("/socios/:documento", socioHandler.Update)
	gym.Delete("/socios/:documento", socioHandler.Delete)

	// Caja
	movimientoHandler := NewMovimientoHandler(deps.MovimientoUC, deps.ReciboUC)
	gym.Post("/movimientos", movimientoHandler.Create)
	gym.Get("/movimientos", movimientoHandler.List)
	gym.Get("/movimientos/balance", movimientoHandler.Balance)
	gym.Get("/movimientos/:id/recibo", movimientoHandler.Recibo)
	gym.Put("/movimientos/:id", soloAdmin, movimientoHandler.Update)
	gym.Delete("/movimientos/:id", soloAdmin, movimientoHandler.Delete)

	// Pagos (cobro de cuota en mostrador)
	gym.Post("/pagos", pagoHandler.Registrar)

	// Mercadería
	mercaderiaHandler := NewMercaderiaHandler(deps.MercaderiaUC)
	gym.Post("/mercaderia", mercaderiaHandler.Create)
	gym.Get("/mercaderia", mercaderiaHandler.List)
	gym.Put("/mercaderia/:id", mercaderiaHandler.Update)
	gym.Delete("/mercaderia/:id", mercaderiaHandler.Delete)

	// Rutinas
	rutinaHandler := NewRutinaHandler(deps.RutinaUC)
	gym.Post("/rutinas", rutinaHandler.Create)
	gym.Get("/rutinas", rutinaHandler.List)
	gym.Put("/rutinas/:id", rutinaHandler.Update)
	gym.Delete("/rutinas/:id", rutinaHandler.Delete)
}
