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

	"github.com/tu-usuario/clinica-pro/internal/application/auth"
	"github.com/tu-usuario/clinica-pro/internal/application/clinic"
	"github.com/tu-usuario/clinica-pro/internal/application/seed"
	infrapdf "github.com/tu-usuario/clinica-pro/internal/infrastructure/pdf"
	"github.com/tu-usuario/clinica-pro/internal/infrastructure/postgres"
	httpRouter "github.com/tu-usuario/clinica-pro/internal/interfaces/http"
	"github.com/tu-usuario/clinica-pro/pkg/config"
	"github.com/tu-usuario/clinica-pro/pkg/logger"
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

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if err := postgres.EnsureSchema(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("creación del esquema")
	}

	clientRepo := postgres.NewClientRepository(pool)
	petRepo := postgres.NewPetRepository(pool)
	apptRepo := postgres.NewAppointmentRepository(pool)
	recordRepo := postgres.NewMedicalRecordRepository(pool)
	invoiceRepo := postgres.NewInvoiceRepository(pool)
	reviewRepo := postgres.NewReviewRepository(pool)
	userRepo := postgres.NewUserRepository(pool)

	clinicSvc := clinic.NewService(
		clientRepo, petRepo, apptRepo, recordRepo, invoiceRepo, reviewRepo, log,
	)
	authUC := auth.NewUseCase(userRepo, log)

	if err := authUC.EnsureDefaultAdmin(cfg.Admin.DefaultPassword); err != nil {
		log.Fatal().Err(err).Msg("bootstrap del usuario administrador")
	}

	// Datos de muestra: toda la carga corre dentro de una sola transacción,
	// atravesando las mismas validaciones del servicio.
	if cfg.Seed.Enabled {
		txRunner := postgres.NewTxRunner(pool)
		err := txRunner.Run(ctx, func(repos postgres.Repos) error {
			txSvc := clinic.NewService(
				repos.Clients, repos.Pets, repos.Appts,
				repos.Records, repos.Invoices, repos.Reviews, log,
			)
			return seed.NewSeeder(txSvc, log).Run()
		})
		if err != nil {
			log.Fatal().Err(err).Msg("carga de datos de muestra")
		}
	}

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
		Title:    "Clínica Pro API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		Clinic: clinicSvc,
		AuthUC: authUC,
		PDF:    infrapdf.NewMarotoPDFGenerator(cfg.App.Name),
		JWT: httpRouter.JWTConfig{
			Secret:     cfg.JWT.Secret,
			ExpMinutes: cfg.JWT.Expiration,
			Issuer:     cfg.JWT.Issuer,
		},
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
