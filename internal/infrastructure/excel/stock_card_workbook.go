// Package excel genera el libro XLSX de la tarjeta kardex: una hoja con la
// identidad del artículo, cabecera de dos niveles (lado recepción / lado
// salida / saldo) y una fila por movimiento procesado.
package excel

import (
	"bytes"
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/invtrack/kardex-api/internal/application/dto"
	"github.com/invtrack/kardex-api/internal/application/report"
)

const sheetName = "StockCard"

var _ report.LedgerWorkbookGenerator = (*WorkbookGenerator)(nil)

// WorkbookGenerator implementa report.LedgerWorkbookGenerator usando excelize.
type WorkbookGenerator struct{}

// NewWorkbookGenerator construye el generador.
func NewWorkbookGenerator() *WorkbookGenerator { return &WorkbookGenerator{} }

// GenerateStockCardWorkbook genera el XLSX y devuelve sus bytes.
func (g *WorkbookGenerator) GenerateStockCardWorkbook(_ context.Context, rep *dto.StockCardReportDTO) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, fmt.Errorf("renombrar hoja: %w", err)
	}

	// Identidad del artículo y apertura.
	head := [][]any{
		{"NAC Code", rep.NacCode, "", "Item", rep.ItemName},
		{"Part Number", rep.PartNumber, "", "Equipment", rep.EquipmentNumber},
		{"Location", rep.Location, "", "Card No.", rep.CardNumber},
		{"Opening Date", rep.OpeningBalanceDate, "", "Open Qty", rep.OpenQuantity.String(), "Open Amount", rep.OpenAmount.String()},
	}
	for i, row := range head {
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		if err := f.SetSheetRow(sheetName, cell, &row); err != nil {
			return nil, fmt.Errorf("cabecera: %w", err)
		}
	}

	// Cabecera del libro: columnas de recepción, de salida y saldo compartido.
	const headerRowIdx = 6
	header := []any{
		"Receive Date", "Receive Ref", "Receive Qty", "Receive Amount",
		"Issue Date", "Issue Ref", "Issue Qty", "Equipment",
		"Balance Qty", "Balance Amount",
	}
	cell, _ := excelize.CoordinatesToCellName(1, headerRowIdx)
	if err := f.SetSheetRow(sheetName, cell, &header); err != nil {
		return nil, fmt.Errorf("cabecera de columnas: %w", err)
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err == nil {
		last, _ := excelize.CoordinatesToCellName(len(header), headerRowIdx)
		_ = f.SetCellStyle(sheetName, cell, last, bold)
	}

	for i, r := range rep.Rows {
		row := []any{
			r.ReceiveDate, r.ReceiveReference, decimalCell(r.ReceiveQuantity), decimalCell(r.ReceiveAmount),
			r.IssueDate, r.IssueReference, decimalCell(r.IssueQuantity), r.EquipmentNumber,
			r.BalanceQuantity.String(), decimalCell(r.BalanceAmount),
		}
		cell, _ := excelize.CoordinatesToCellName(1, headerRowIdx+1+i)
		if err := f.SetSheetRow(sheetName, cell, &row); err != nil {
			return nil, fmt.Errorf("fila %d: %w", i+1, err)
		}
	}

	// Fila de cierre con el saldo final.
	closing := []any{"", "", "", "", "", "", "", "Final Balance", rep.FinalBalance.String(), ""}
	cell, _ = excelize.CoordinatesToCellName(1, headerRowIdx+1+len(rep.Rows))
	if err := f.SetSheetRow(sheetName, cell, &closing); err != nil {
		return nil, fmt.Errorf("fila de cierre: %w", err)
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("escribir workbook: %w", err)
	}
	return buf.Bytes(), nil
}

// decimalCell devuelve la representación del decimal o cadena vacía si la
// columna no aplica a esta fila.
func decimalCell(d *decimal.Decimal) any {
	if d == nil {
		return ""
	}
	return d.String()
}
