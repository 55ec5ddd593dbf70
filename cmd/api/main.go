package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/Stock-api/internal/application/garbage"
	"github.com/jhoicas/Stock-api/internal/application/ports"
	"github.com/jhoicas/Stock-api/internal/application/sales"
	"github.com/jhoicas/Stock-api/internal/application/stock"
	"github.com/jhoicas/Stock-api/internal/application/transfer"
	"github.com/jhoicas/Stock-api/internal/infrastructure/memory"
	"github.com/jhoicas/Stock-api/internal/infrastructure/metrics"
	infrapdf "github.com/jhoicas/Stock-api/internal/infrastructure/pdf"
	"github.com/jhoicas/Stock-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/Stock-api/internal/interfaces/http"
	"github.com/jhoicas/Stock-api/pkg/config"
	"github.com/jhoicas/Stock-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("store", cfg.Store.Driver).
		Msg("iniciando aplicación")

	ctx := context.Background()

	var (
		txRunner ports.TxRunner
		repos    ports.TxRepos
	)
	switch cfg.Store.Driver {
	case config.StoreMemory:
		store := memory.NewStore()
		memory.SeedDemo(store)
		txRunner, repos = store, store.Repos()
		log.Warn().Msg("almacenamiento en memoria: los datos se pierden al reiniciar")
	default:
		if cfg.DB.Migrate {
			if err := postgres.Migrate(cfg.DB.ConnectionString(), log); err != nil {
				log.Fatal().Err(err).Msg("migraciones")
			}
		}
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		defer pool.Close()
		txRunner = postgres.NewTxRunner(pool, cfg.Tx.Isolation, cfg.Tx.MaxAttempts, log)
		repos = postgres.NewRepos(pool)
	}

	var (
		engineMetrics ports.EngineMetrics = ports.NopMetrics{}
		prom          *metrics.Prometheus
	)
	if cfg.Metrics.Enabled {
		prom = metrics.New(true)
		engineMetrics = prom
	}

	registry := stock.NewRegistry(txRunner, repos.Units, engineMetrics, log)
	processor := sales.NewProcessor(txRunner, registry, repos.Sales, engineMetrics, log)
	receipts := sales.NewReceiptUseCase(processor, repos.Units, repos.Catalog, repos.Customers, infrapdf.NewMarotoReceiptGenerator())
	transfers := transfer.NewWorkflow(txRunner, registry, repos.Transfers, log)
	garbageWF := garbage.NewWorkflow(txRunner, registry, repos.Garbage, log)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
		ErrorHandler: httpRouter.ErrorHandler(log),
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(log))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(httpRouter.Docs(cfg.App.Name))
	if prom != nil {
		app.Use(prom.Middleware())
		app.Get(cfg.Metrics.Path, prom.Handler())
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		Registry:  registry,
		Sales:     processor,
		Receipts:  receipts,
		Transfers: transfers,
		Garbage:   garbageWF,
		JWTSecret: cfg.JWT.Secret,
		Log:       log,
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
