// Package pdf genera la tarjeta kardex en PDF: identidad del artículo en la
// cabecera, tabla con el lado de recepciones, el lado de salidas y la columna
// compartida de saldo, y el saldo final al pie.
//
// Layout de la página A4 (apaisada):
//
//	┌────────────────────────────────────────────────────────────────────┐
//	│  HEADER: NAC Code + Nombre  │  Part No. / Ubicación / Tarjeta      │
//	│  ────────────────────────────────────────────────────────────────  │
//	│  APERTURA: fecha, cantidad y valor de apertura                     │
//	│  TABLA: Recepción (fecha/ref/cant/valor) | Salida (fecha/ref/cant/ │
//	│         equipo) | Saldo                                            │
//	│  ────────────────────────────────────────────────────────────────  │
//	│  PIE: saldo final                                                  │
//	└────────────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/invtrack/kardex-api/internal/application/dto"
	"github.com/invtrack/kardex-api/internal/application/report"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var _ report.LedgerPDFGenerator = (*StockCardPDFGenerator)(nil)

// StockCardPDFGenerator implementa report.LedgerPDFGenerator usando Maroto v2.
type StockCardPDFGenerator struct{}

// NewStockCardPDFGenerator construye el generador.
func NewStockCardPDFGenerator() *StockCardPDFGenerator { return &StockCardPDFGenerator{} }

// GenerateStockCardPDF genera el PDF y devuelve sus bytes.
func (g *StockCardPDFGenerator) GenerateStockCardPDF(_ context.Context, rep *dto.StockCardReportDTO) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithOrientation(orientation.Horizontal).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 8}).
		WithTitle("Tarjeta Kardex "+rep.NacCode, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(rep))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(openingRow(rep))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableRows(rep.Rows) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(finalBalanceRow(rep.FinalBalance))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: NAC code + nombre (izq) y part number / ubicación / tarjeta (der).
func headerRow(rep *dto.StockCardReportDTO) core.Row {
	return row.New(16).Add(
		col.New(7).Add(
			text.New("TARJETA DE EXISTENCIAS (KARDEX)", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(rep.NacCode+" — "+rep.ItemName, props.Text{
				Style: fontstyle.Bold, Size: 12, Top: 6,
			}),
		),
		col.New(5).Add(
			text.New("P/N: "+nonEmpty(rep.PartNumber, "—"), props.Text{
				Size: 8, Align: align.Right, Top: 1, Color: colorGray,
			}),
			text.New("Ubicación: "+nonEmpty(rep.Location, "—"), props.Text{
				Size: 8, Align: align.Right, Top: 6, Color: colorGray,
			}),
			text.New("Tarjeta: "+nonEmpty(rep.CardNumber, "—"), props.Text{
				Size: 8, Align: align.Right, Top: 11, Color: colorGray,
			}),
		),
	)
}

// openingRow: saldo de apertura del período.
func openingRow(rep *dto.StockCardReportDTO) core.Row {
	return row.New(8).Add(
		col.New(12).Add(
			text.New(fmt.Sprintf("Apertura al %s   |   Cantidad: %s   |   Valor: %s   |   Categoría: %s",
				rep.OpeningBalanceDate,
				rep.OpenQuantity.String(),
				rep.OpenAmount.String(),
				nonEmpty(rep.EquipmentNumber, "—"),
			), props.Text{Size: 8, Top: 2, Color: colorGray}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla del libro.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 7, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("F. Recep.", 1, align.Left),
		h("Ref. Recep.", 2, align.Left),
		h("Cant.", 1, align.Right),
		h("Valor", 1, align.Right),
		h("F. Salida", 1, align.Left),
		h("Ref. Salida", 2, align.Left),
		h("Cant.", 1, align.Right),
		h("Equipo", 1, align.Left),
		h("Saldo", 1, align.Right),
		h("Saldo $", 1, align.Right),
	)
}

// tableRows: una fila del PDF por movimiento procesado.
func tableRows(rows []dto.StockCardRowDTO) []core.Row {
	cell := func(s string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(s, props.Text{
			Size: 7, Align: a, Top: 1, Left: 1, Right: 1,
		}))
	}
	result := make([]core.Row, 0, len(rows))
	for _, r := range rows {
		result = append(result, row.New(6).Add(
			cell(r.ReceiveDate, 1, align.Left),
			cell(r.ReceiveReference, 2, align.Left),
			cell(decimalText(r.ReceiveQuantity), 1, align.Right),
			cell(decimalText(r.ReceiveAmount), 1, align.Right),
			cell(r.IssueDate, 1, align.Left),
			cell(r.IssueReference, 2, align.Left),
			cell(decimalText(r.IssueQuantity), 1, align.Right),
			cell(r.EquipmentNumber, 1, align.Left),
			cell(r.BalanceQuantity.String(), 1, align.Right),
			cell(decimalText(r.BalanceAmount), 1, align.Right),
		))
	}
	return result
}

// finalBalanceRow: saldo final alineado a la derecha.
func finalBalanceRow(balance decimal.Decimal) core.Row {
	return row.New(10).Add(
		col.New(9),
		col.New(2).Add(text.New("SALDO FINAL:", props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right,
			Color: colorPrimary, Right: 2, Top: 2,
		})),
		col.New(1).Add(text.New(balance.String(), props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right,
			Color: colorPrimary, Right: 1, Top: 2,
		})),
	)
}

func decimalText(d *decimal.Decimal) string {
	if d == nil {
		return ""
	}
	return d.String()
}

func nonEmpty(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
