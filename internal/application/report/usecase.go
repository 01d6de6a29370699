package report

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/invtrack/kardex-api/internal/application/dto"
	"github.com/invtrack/kardex-api/internal/domain"
	"github.com/invtrack/kardex-api/internal/domain/entity"
	"github.com/invtrack/kardex-api/internal/domain/repository"
	"github.com/invtrack/kardex-api/internal/domain/stockcard"
)

const dateLayout = "2006-01-02"

// Formatos de exportación soportados.
const (
	FormatJSON = "json"
	FormatXLSX = "xlsx"
	FormatPDF  = "pdf"
)

// StockCardUseCase genera la tarjeta kardex de un artículo: obtiene apertura y
// movimientos, ordena en la frontera (el reconstructor asume entrada ordenada),
// reconstruye los saldos y arma el DTO con las referencias ya limpias.
type StockCardUseCase struct {
	itemRepo  repository.ItemRepository
	cardRepo  repository.StockCardRepository
	auditRepo repository.ReportAuditRepository
	pdfGen    LedgerPDFGenerator
	xlsxGen   LedgerWorkbookGenerator
}

// NewStockCardUseCase construye el caso de uso.
func NewStockCardUseCase(
	itemRepo repository.ItemRepository,
	cardRepo repository.StockCardRepository,
	auditRepo repository.ReportAuditRepository,
	pdfGen LedgerPDFGenerator,
	xlsxGen LedgerWorkbookGenerator,
) *StockCardUseCase {
	return &StockCardUseCase{
		itemRepo:  itemRepo,
		cardRepo:  cardRepo,
		auditRepo: auditRepo,
		pdfGen:    pdfGen,
		xlsxGen:   xlsxGen,
	}
}

// Generate arma el reporte kardex del artículo en el rango dado (cotas nil =
// sin límite). Retorna domain.ErrItemNotFound si el artículo no existe y
// domain.ErrInvalidDateRange si from > to.
func (uc *StockCardUseCase) Generate(ctx context.Context, nacCode string, from, to *time.Time) (*dto.StockCardReportDTO, error) {
	if nacCode == "" {
		return nil, domain.ErrInvalidInput
	}
	if from != nil && to != nil && from.After(*to) {
		return nil, domain.ErrInvalidDateRange
	}

	item, err := uc.itemRepo.GetByNacCode(ctx, nacCode)
	if err != nil {
		return nil, fmt.Errorf("obtener artículo: %w", err)
	}
	if item == nil {
		return nil, domain.ErrItemNotFound
	}

	movements, err := uc.cardRepo.ListMovements(ctx, nacCode, from, to)
	if err != nil {
		return nil, fmt.Errorf("listar movimientos: %w", err)
	}

	// El reconstructor no reordena: la frontera garantiza el orden cronológico
	// (orden estable para conservar la secuencia de registro en empates de fecha).
	sort.SliceStable(movements, func(i, j int) bool {
		return movements[i].Date.Before(movements[j].Date)
	})

	processed := stockcard.Reconstruct(item.OpenQuantity, item.OpenAmount, movements, item.EquipmentNumber)

	report := &dto.StockCardReportDTO{
		NacCode:            item.NacCode,
		ItemName:           item.ItemName,
		PartNumber:         item.PartNumber,
		EquipmentNumber:    item.EquipmentNumber,
		Location:           item.Location,
		CardNumber:         item.CardNumber,
		OpeningBalanceDate: item.OpeningBalanceDate.Format(dateLayout),
		OpenQuantity:       item.OpenQuantity,
		OpenAmount:         item.OpenAmount,
		Rows:               make([]dto.StockCardRowDTO, 0, len(processed)),
		FinalBalance:       item.OpenQuantity,
	}

	for _, p := range processed {
		report.Rows = append(report.Rows, toRow(p))
		report.FinalBalance = p.BalanceQuantity
	}
	return report, nil
}

// toRow reparte el movimiento procesado en las columnas del libro: lado de
// recepción o lado de salida, con la referencia limpia según el tipo.
func toRow(p entity.ProcessedMovement) dto.StockCardRowDTO {
	row := dto.StockCardRowDTO{BalanceQuantity: p.BalanceQuantity}
	if p.IsReceive() {
		q, a, ba := p.Quantity, p.Amount, p.BalanceAmount
		row.ReceiveDate = p.Date.Format(dateLayout)
		row.ReceiveReference = stockcard.CleanReceiveReference(p.Reference)
		row.ReceiveQuantity = &q
		row.ReceiveAmount = &a
		row.BalanceAmount = &ba
		return row
	}
	q := p.Quantity
	row.IssueDate = p.Date.Format(dateLayout)
	row.IssueReference = stockcard.CleanIssueReference(p.Reference)
	row.IssueQuantity = &q
	row.EquipmentNumber = p.EquipmentNumber
	return row
}

// Export genera el reporte y lo renderiza en el formato pedido, registrando la
// exportación en la auditoría. Devuelve los bytes y el nombre de archivo.
func (uc *StockCardUseCase) Export(ctx context.Context, nacCode, format, userID string, from, to *time.Time) ([]byte, string, error) {
	report, err := uc.Generate(ctx, nacCode, from, to)
	if err != nil {
		return nil, "", err
	}

	var payload []byte
	switch format {
	case FormatXLSX:
		payload, err = uc.xlsxGen.GenerateStockCardWorkbook(ctx, report)
	case FormatPDF:
		payload, err = uc.pdfGen.GenerateStockCardPDF(ctx, report)
	default:
		return nil, "", domain.ErrInvalidInput
	}
	if err != nil {
		return nil, "", fmt.Errorf("renderizar %s: %w", format, err)
	}

	audit := &entity.ReportAudit{
		NacCode:     nacCode,
		Format:      format,
		RowCount:    len(report.Rows),
		GeneratedBy: userID,
		GeneratedAt: time.Now(),
	}
	if err := uc.auditRepo.Create(ctx, audit); err != nil {
		return nil, "", fmt.Errorf("registrar auditoría: %w", err)
	}

	filename := fmt.Sprintf("stock-card-%s.%s", nacCode, format)
	return payload, filename, nil
}

// ListMovements devuelve el listado crudo paginado (sin saldos) para la vista
// de movimientos del artículo.
func (uc *StockCardUseCase) ListMovements(ctx context.Context, nacCode string, from, to *time.Time, page dto.PageRequest) ([]dto.MovementDTO, error) {
	if nacCode == "" {
		return nil, domain.ErrInvalidInput
	}
	page.DefaultPage()

	movements, err := uc.cardRepo.ListMovementsPage(ctx, nacCode, from, to, page.Limit, page.Offset)
	if err != nil {
		return nil, fmt.Errorf("listar movimientos: %w", err)
	}

	list := make([]dto.MovementDTO, 0, len(movements))
	for _, m := range movements {
		ref := stockcard.CleanIssueReference(m.Reference)
		if m.IsReceive() {
			ref = stockcard.CleanReceiveReference(m.Reference)
		}
		list = append(list, dto.MovementDTO{
			Date:            m.Date.Format(dateLayout),
			Reference:       ref,
			Type:            m.Type,
			Quantity:        m.Quantity,
			Amount:          m.Amount,
			EquipmentNumber: m.EquipmentNumber,
		})
	}
	return list, nil
}
