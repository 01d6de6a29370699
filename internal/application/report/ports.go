package report

import (
	"context"

	"github.com/invtrack/kardex-api/internal/application/dto"
)

// LedgerPDFGenerator renderiza la tarjeta kardex como PDF.
type LedgerPDFGenerator interface {
	GenerateStockCardPDF(ctx context.Context, report *dto.StockCardReportDTO) ([]byte, error)
}

// LedgerWorkbookGenerator renderiza la tarjeta kardex como libro XLSX.
type LedgerWorkbookGenerator interface {
	GenerateStockCardWorkbook(ctx context.Context, report *dto.StockCardReportDTO) ([]byte, error)
}
