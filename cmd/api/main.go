package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/athletica/gym-api/internal/application/access"
	"github.com/athletica/gym-api/internal/application/auth"
	"github.com/athletica/gym-api/internal/application/pagos"
	"github.com/athletica/gym-api/internal/application/usecase"
	"github.com/athletica/gym-api/internal/infrastructure/mercadopago"
	infrapdf "github.com/athletica/gym-api/internal/infrastructure/pdf"
	"github.com/athletica/gym-api/internal/infrastructure/postgres"
	httpRouter "github.com/athletica/gym-api/internal/interfaces/http"
	"github.com/athletica/gym-api/pkg/config"
	"github.com/athletica/gym-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("configuración inválida")
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	adminRepo := postgres.NewAdminRepository(pool)
	gimnasioRepo := postgres.NewGimnasioRepository(pool)
	empleadoRepo := postgres.NewEmpleadoRepository(pool)
	planRepo := postgres.NewPlanRepository(pool)
	socioRepo := postgres.NewSocioRepository(pool)
	movimientoRepo := postgres.NewMovimientoRepository(pool)
	mercaderiaRepo := postgres.NewMercaderiaRepository(pool)
	rutinaRepo := postgres.NewRutinaRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	authUC := auth.NewAuthUseCase(adminRepo, gimnasioRepo, empleadoRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	gimnasioUC := usecase.NewGimnasioUseCase(gimnasioRepo)
	dashboardUC := usecase.NewDashboardUseCase(gimnasioRepo)
	empleadoUC := usecase.NewEmpleadoUseCase(empleadoRepo)
	planUC := usecase.NewPlanUseCase(planRepo)
	socioUC := usecase.NewSocioUseCase(socioRepo)
	lookupUC := access.NewLookupUseCase(socioRepo, planRepo)
	movimientoUC := usecase.NewMovimientoUseCase(movimientoRepo)
	mercaderiaUC := usecase.NewMercaderiaUseCase(mercaderiaRepo)
	rutinaUC := usecase.NewRutinaUseCase(rutinaRepo)

	registrarUC := pagos.NewRegistrarPagoUseCase(txRunner)
	reciboUC := pagos.NewReciboUseCase(movimientoRepo, gimnasioRepo, socioRepo, infrapdf.NewMarotoReciboGenerator())

	// Checkout online: opcional, se habilita solo con credenciales configuradas.
	var checkout pagos.CheckoutClient
	if client := mercadopago.NewClient(cfg.MP); client != nil {
		checkout = client
	} else {
		log.Warn().Msg("MercadoPago sin configurar: checkout online deshabilitado")
	}
	preferUC := pagos.NewPreferenciaUseCase(checkout)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Athletica API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:       authUC,
		GimnasioUC:   gimnasioUC,
		DashboardUC:  dashboardUC,
		EmpleadoUC:   empleadoUC,
		PlanUC:       planUC,
		SocioUC:      socioUC,
		LookupUC:     lookupUC,
		MovimientoUC: movimientoUC,
		MercaderiaUC: mercaderiaUC,
		RutinaUC:     rutinaUC,
		RegistrarUC:  registrarUC,
		ReciboUC:     reciboUC,
		PreferUC:     preferUC,
		JWTSecret:    cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
