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

	"github.com/opencomercio/gestion-api/internal/application/auth"
	"github.com/opencomercio/gestion-api/internal/application/usecase"
	"github.com/opencomercio/gestion-api/internal/infrastructure/notify"
	infrapdf "github.com/opencomercio/gestion-api/internal/infrastructure/pdf"
	"github.com/opencomercio/gestion-api/internal/infrastructure/postgres"
	httpRouter "github.com/opencomercio/gestion-api/internal/interfaces/http"
	"github.com/opencomercio/gestion-api/pkg/config"
	"github.com/opencomercio/gestion-api/pkg/format"
	"github.com/opencomercio/gestion-api/pkg/jwt"
	"github.com/opencomercio/gestion-api/pkg/logger"
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

	// Repositorios
	companyRepo := postgres.NewCompanyRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	roleRepo := postgres.NewRoleRepository(pool)
	customerRepo := postgres.NewCustomerRepository(pool)
	invoiceRepo := postgres.NewInvoiceRepository(pool)
	returnRepo := postgres.NewReturnRepository(pool)
	supplierRepo := postgres.NewSupplierRepository(pool)
	subscriptionRepo := postgres.NewSubscriptionRepository(pool)
	dashboardRepo := postgres.NewDashboardRepository(pool)

	// Infraestructura compartida
	notifier := notify.New(log)
	currency := format.NewCurrencyFormatter(cfg.Locale.Locale, cfg.Locale.CurrencyCode, cfg.Locale.CurrencyDigits)
	receiptGen := infrapdf.NewReturnReceiptGenerator(currency)

	tokens, err := jwt.NewManager(cfg.JWT.Secret, cfg.JWT.Issuer, cfg.JWT.Expiration)
	if err != nil {
		log.Fatal().Err(err).Msg("configuración JWT inválida")
	}

	// Casos de uso
	authUC := auth.NewAuthUseCase(userRepo, companyRepo, roleRepo, tokens)
	customerUC := usecase.NewCustomerUseCase(customerRepo, invoiceRepo, notifier)
	returnUC := usecase.NewReturnUseCase(returnRepo, notifier, currency, receiptGen, log)
	userUC := usecase.NewUserUseCase(userRepo, roleRepo, notifier)
	supplierUC := usecase.NewSupplierUseCase(supplierRepo, notifier)
	subscriptionUC := usecase.NewSubscriptionUseCase(subscriptionRepo, currency, log)
	dashboardUC := usecase.NewDashboardUseCase(dashboardRepo, invoiceRepo, currency, log)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	metrics := httpRouter.NewHTTPMetrics(cfg.App.Name)
	app.Use(metrics.Middleware())
	app.Get("/metrics", metrics.Handler())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Gestión API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:         authUC,
		CustomerUC:     customerUC,
		ReturnUC:       returnUC,
		UserUC:         userUC,
		SupplierUC:     supplierUC,
		SubscriptionUC: subscriptionUC,
		DashboardUC:    dashboardUC,
		Tokens:         tokens,
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
