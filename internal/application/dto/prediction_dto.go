package dto

import "github.com/shopspring/decimal"

// LeadTimePredictionDTO resultado de la predicción de tiempo de entrega de un
// artículo a partir de su historial solicitud→recepción.
type LeadTimePredictionDTO struct {
	NacCode           string          `json:"nac_code"`
	SampleCount       int             `json:"sample_count"`
	AvgLeadTimeDays   decimal.Decimal `json:"avg_lead_time_days"`
	MaxLeadTimeDays   decimal.Decimal `json:"max_lead_time_days"`
	P90LeadTimeDays   decimal.Decimal `json:"p90_lead_time_days"`
	LastReceiveDate   string          `json:"last_receive_date"`         // YYYY-MM-DD
	SuggestedLeadDays decimal.Decimal `json:"suggested_order_lead_days"` // P90 con margen
	FromCache         bool            `json:"from_cache"`
}
