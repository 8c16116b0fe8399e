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

	"github.com/claricinhas/atelier-api/internal/application/analytics"
	"github.com/claricinhas/atelier-api/internal/application/auth"
	"github.com/claricinhas/atelier-api/internal/application/expense"
	"github.com/claricinhas/atelier-api/internal/application/sales"
	"github.com/claricinhas/atelier-api/internal/application/stock"
	"github.com/claricinhas/atelier-api/internal/infrastructure/cache"
	infrapdf "github.com/claricinhas/atelier-api/internal/infrastructure/pdf"
	"github.com/claricinhas/atelier-api/internal/infrastructure/postgres"
	httpRouter "github.com/claricinhas/atelier-api/internal/interfaces/http"
	"github.com/claricinhas/atelier-api/pkg/config"
	"github.com/claricinhas/atelier-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   "info",
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	// Snapshot local: fallback de lectura cuando la DB no responde.
	snapshots, err := cache.NewFileSnapshotStore(cfg.Cache.Dir)
	if err != nil {
		log.Fatal().Err(err).Msg("directorio de snapshots")
	}

	stockRepo := postgres.NewStockItemRepository(pool)
	saleRepo := postgres.NewSaleRepository(pool)
	clientRepo := postgres.NewClientRepository(pool)
	expenseRepo := postgres.NewExpenseRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	analyticsRepo := postgres.NewAnalyticsRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	stockUC := stock.NewLedgerUseCase(stockRepo, snapshots)
	saleUC := sales.NewSaleUseCase(saleRepo, clientRepo, snapshots)
	clientUC := sales.NewClientUseCase(clientRepo, snapshots)
	expenseUC := expense.NewUseCase(expenseRepo, snapshots)
	dashboardUC := analytics.NewDashboardUseCase(analyticsRepo)

	receiptGenerator := infrapdf.NewMarotoReceiptGenerator()
	receiptUC := sales.NewReceiptUseCase(saleRepo, receiptGenerator, cfg.App.ShopName)

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

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    cfg.App.Name,
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		StockUC: stockUC,
		NewBuilder: func() *sales.Builder {
			return sales.NewBuilder(stockRepo, clientRepo, txRunner)
		},
		SaleUC:      saleUC,
		ReceiptUC:   receiptUC,
		ClientUC:    clientUC,
		ExpenseUC:   expenseUC,
		DashboardUC: dashboardUC,
		AuthUC:      authUC,
		JWTSecret:   cfg.JWT.Secret,
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
