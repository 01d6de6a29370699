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

	"github.com/invtrack/kardex-api/internal/application/prediction"
	"github.com/invtrack/kardex-api/internal/application/report"
	"github.com/invtrack/kardex-api/internal/infrastructure/excel"
	infrapdf "github.com/invtrack/kardex-api/internal/infrastructure/pdf"
	"github.com/invtrack/kardex-api/internal/infrastructure/postgres"
	httpRouter "github.com/invtrack/kardex-api/internal/interfaces/http"
	"github.com/invtrack/kardex-api/pkg/config"
	"github.com/invtrack/kardex-api/pkg/logger"
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

	itemRepo := postgres.NewItemRepository(pool)
	cardRepo := postgres.NewStockCardRepository(pool)
	auditRepo := postgres.NewReportAuditRepository(pool)

	stockCardUC := report.NewStockCardUseCase(
		itemRepo, cardRepo, auditRepo,
		infrapdf.NewStockCardPDFGenerator(),
		excel.NewWorkbookGenerator(),
	)

	predictionCache := prediction.NewCache(
		cfg.Prediction.CacheSize,
		time.Duration(cfg.Prediction.CacheTTLMinutes)*time.Minute,
	)
	leadTimeUC := prediction.NewLeadTimeUseCase(cardRepo, predictionCache, cfg.Prediction.HistoryDays)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Kardex API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		StockCardUC: stockCardUC,
		LeadTimeUC:  leadTimeUC,
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
