package dto

import "github.com/shopspring/decimal"

// StockCardRowDTO es una fila del libro kardex. Las columnas de recepción solo
// se pueblan en filas de recepción y las de salida solo en filas de salida; la
// columna de saldo es compartida. Las fechas van como YYYY-MM-DD.
type StockCardRowDTO struct {
	ReceiveDate      string           `json:"receive_date,omitempty"`
	ReceiveReference string           `json:"receive_reference,omitempty"`
	ReceiveQuantity  *decimal.Decimal `json:"receive_quantity,omitempty"`
	ReceiveAmount    *decimal.Decimal `json:"receive_amount,omitempty"`

	IssueDate       string           `json:"issue_date,omitempty"`
	IssueReference  string           `json:"issue_reference,omitempty"`
	IssueQuantity   *decimal.Decimal `json:"issue_quantity,omitempty"`
	EquipmentNumber string           `json:"equipment_number,omitempty"`

	BalanceQuantity decimal.Decimal  `json:"balance_quantity"`
	BalanceAmount   *decimal.Decimal `json:"balance_amount,omitempty"`
}

// StockCardReportDTO es la tarjeta kardex completa de un artículo: identidad,
// apertura y filas con saldo corrido, lista para renderizar o exportar.
type StockCardReportDTO struct {
	NacCode            string            `json:"nac_code"`
	ItemName           string            `json:"item_name"`
	PartNumber         string            `json:"part_number"`
	EquipmentNumber    string            `json:"equipment_number"` // categoría del artículo
	Location           string            `json:"location"`
	CardNumber         string            `json:"card_number"`
	OpeningBalanceDate string            `json:"opening_balance_date"`
	OpenQuantity       decimal.Decimal   `json:"open_quantity"`
	OpenAmount         decimal.Decimal   `json:"open_amount"`
	Rows               []StockCardRowDTO `json:"rows"`
	FinalBalance       decimal.Decimal   `json:"final_balance"`
}

// MovementDTO fila del listado crudo paginado de movimientos.
type MovementDTO struct {
	Date            string          `json:"date"`
	Reference       string          `json:"reference"`
	Type            string          `json:"type"`
	Quantity        decimal.Decimal `json:"quantity"`
	Amount          decimal.Decimal `json:"amount"`
	EquipmentNumber string          `json:"equipment_number,omitempty"`
}
