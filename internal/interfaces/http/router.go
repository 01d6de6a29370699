package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/invtrack/kardex-api/internal/application/prediction"
	"github.com/invtrack/kardex-api/internal/application/report"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	StockCardUC *report.StockCardUseCase
	LeadTimeUC  *prediction.LeadTimeUseCase
	JWTSecret   string
}

// Router registra las rutas de la API. Todas las rutas van protegidas: los
// tokens los emite el servicio de autenticación del sistema de adquisiciones.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api", AuthMiddleware(deps.JWTSecret))

	// Reportes kardex
	reports := api.Group("/reports")
	reportHandler := NewReportHandler(deps.StockCardUC)
	reports.Get("/stock-card/:nac", reportHandler.GetStockCard)
	reports.Get("/stock-card/:nac/export", reportHandler.ExportStockCard)

	// Listado crudo de movimientos por artículo
	items := api.Group("/items")
	items.Get("/:nac/movements", reportHandler.ListMovements)

	// Analítica predictiva
	predictions := api.Group("/predictions")
	predictionHandler := NewPredictionHandler(deps.LeadTimeUC)
	predictions.Get("/lead-time/:nac", predictionHandler.GetLeadTime)
}
