package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/invtrack/kardex-api/internal/application/dto"
	"github.com/invtrack/kardex-api/internal/application/report"
	"github.com/invtrack/kardex-api/internal/domain"
)

const dateLayout = "2006-01-02"

// ReportHandler maneja las peticiones HTTP del reporte kardex (protegido).
type ReportHandler struct {
	uc *report.StockCardUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *report.StockCardUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// GetStockCard godoc
// @Summary      Tarjeta kardex de un artículo
// @Description  Reconstruye el libro de movimientos con saldo corrido, dividiendo
//
//	las salidas que excedieron el stock disponible.
//
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        nac   path   string  true   "Código NAC del artículo"
// @Param        from  query  string  false  "Fecha inicial YYYY-MM-DD"
// @Param        to    query  string  false  "Fecha final YYYY-MM-DD"
// @Success      200   {object}  dto.StockCardReportDTO
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/reports/stock-card/{nac} [get]
func (h *ReportHandler) GetStockCard(c *fiber.Ctx) error {
	nacCode := c.Params("nac")
	from, to, err := parseDateRange(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_DATE", Message: "fechas en formato YYYY-MM-DD"})
	}

	rep, err := h.uc.Generate(c.Context(), nacCode, from, to)
	if err != nil {
		return mapReportError(c, err)
	}
	return c.JSON(rep)
}

// ExportStockCard godoc
// @Summary      Exportar la tarjeta kardex
// @Tags         reports
// @Security     Bearer
// @Produce      application/octet-stream
// @Param        nac     path   string  true   "Código NAC del artículo"
// @Param        format  query  string  true   "xlsx | pdf"
// @Param        from    query  string  false  "Fecha inicial YYYY-MM-DD"
// @Param        to      query  string  false  "Fecha final YYYY-MM-DD"
// @Success      200  {file}  binary
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/reports/stock-card/{nac}/export [get]
func (h *ReportHandler) ExportStockCard(c *fiber.Ctx) error {
	nacCode := c.Params("nac")
	format := c.Query("format", report.FormatXLSX)
	from, to, err := parseDateRange(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_DATE", Message: "fechas en formato YYYY-MM-DD"})
	}

	payload, filename, err := h.uc.Export(c.Context(), nacCode, format, GetUserID(c), from, to)
	if err != nil {
		return mapReportError(c, err)
	}

	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	switch format {
	case report.FormatPDF:
		c.Set(fiber.HeaderContentType, "application/pdf")
	default:
		c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	}
	return c.Send(payload)
}

// ListMovements godoc
// @Summary      Movimientos crudos de un artículo (paginado)
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        nac     path   string  true   "Código NAC del artículo"
// @Param        limit   query  int     false  "Tamaño de página (default 50)"
// @Param        offset  query  int     false  "Desplazamiento"
// @Success      200  {array}   dto.MovementDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/items/{nac}/movements [get]
func (h *ReportHandler) ListMovements(c *fiber.Ctx) error {
	nacCode := c.Params("nac")
	from, to, err := parseDateRange(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_DATE", Message: "fechas en formato YYYY-MM-DD"})
	}

	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "paginación inválida"})
	}

	list, err := h.uc.ListMovements(c.Context(), nacCode, from, to, page)
	if err != nil {
		return mapReportError(c, err)
	}
	page.DefaultPage()
	return c.JSON(fiber.Map{
		"movements": list,
		"page":      dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	})
}

// parseDateRange lee from/to del query string; cadenas vacías quedan como nil.
func parseDateRange(c *fiber.Ctx) (from, to *time.Time, err error) {
	if s := c.Query("from"); s != "" {
		t, perr := time.Parse(dateLayout, s)
		if perr != nil {
			return nil, nil, perr
		}
		from = &t
	}
	if s := c.Query("to"); s != "" {
		t, perr := time.Parse(dateLayout, s)
		if perr != nil {
			return nil, nil, perr
		}
		to = &t
	}
	return from, to, nil
}

// mapReportError traduce errores de dominio a códigos HTTP.
func mapReportError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput), errors.Is(err, domain.ErrInvalidDateRange):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"})
	case errors.Is(err, domain.ErrItemNotFound), errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "artículo no encontrado"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
