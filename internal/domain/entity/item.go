package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Item es la ficha maestra de un artículo de almacén con su saldo de apertura.
// Los campos de identidad se copian tal cual al reporte; no participan en el
// cálculo de saldos salvo EquipmentNumber (categoría), que decide la supresión
// de equipos en artículos consumibles.
type Item struct {
	NacCode            string
	ItemName           string
	PartNumber         string
	EquipmentNumber    string // categoría de equipo del artículo; "consumable" suprime equipos
	Location           string
	CardNumber         string
	OpenQuantity       decimal.Decimal // saldo de apertura, nunca negativo
	OpenAmount         decimal.Decimal
	OpeningBalanceDate time.Time
}

// ReportAudit registra la generación de un reporte kardex (auditoría de exportaciones).
type ReportAudit struct {
	ID          string
	NacCode     string
	Format      string // json | xlsx | pdf
	RowCount    int
	GeneratedBy string // UserID del token
	GeneratedAt time.Time
}
