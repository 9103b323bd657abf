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

	appanalytics "github.com/seu-usuario/gestao-pro/internal/application/analytics"
	"github.com/seu-usuario/gestao-pro/internal/application/auth"
	"github.com/seu-usuario/gestao-pro/internal/application/clients"
	appstock "github.com/seu-usuario/gestao-pro/internal/application/stock"
	infrapdf "github.com/seu-usuario/gestao-pro/internal/infrastructure/pdf"
	"github.com/seu-usuario/gestao-pro/internal/infrastructure/postgres"
	httpRouter "github.com/seu-usuario/gestao-pro/internal/interfaces/http"
	"github.com/seu-usuario/gestao-pro/pkg/config"
	"github.com/seu-usuario/gestao-pro/pkg/logger"

	_ "github.com/seu-usuario/gestao-pro/docs"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("carregar configuração: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicação")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexão com PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	movementRepo := postgres.NewMovementRepository(pool)
	alertReadRepo := postgres.NewAlertReadRepository(pool)
	clientRepo := postgres.NewClientRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	stockUC := appstock.NewStockUseCase(txRunner, productRepo, movementRepo, alertReadRepo)
	registerMovementUC := appstock.NewRegisterMovementUseCase(txRunner, productRepo)
	reportUC := appstock.NewReportUseCase(productRepo, infrapdf.NewMarotoReportGenerator(cfg.App.Name))
	clientUC := clients.NewClientUseCase(txRunner, clientRepo)
	dashboardUC := appanalytics.NewDashboardUseCase(productRepo, clientRepo, movementRepo)
	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI em local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Gestão Pro API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:           authUC,
		StockUC:          stockUC,
		RegisterMovement: registerMovementUC,
		ReportUC:         reportUC,
		ClientUC:         clientUC,
		DashboardUC:      dashboardUC,
		JWTSecret:        cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("sinal de desligamento recebido, encerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("desligamento do servidor")
	}

	log.Info().Msg("aplicação encerrada")
}
