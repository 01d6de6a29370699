package prediction

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/invtrack/kardex-api/internal/application/dto"
	"github.com/invtrack/kardex-api/internal/domain"
	"github.com/invtrack/kardex-api/internal/domain/repository"
)

const dateLayout = "2006-01-02"

// safetyFactor margen sobre el P90 para la sugerencia de anticipación de pedido.
var safetyFactor = decimal.NewFromFloat(1.2)

// LeadTimeUseCase predice el tiempo de entrega de un artículo a partir de los
// intervalos históricos solicitud→recepción, con memoización por código.
type LeadTimeUseCase struct {
	historyRepo repository.ProcurementHistoryRepository
	cache       *Cache
	historyDays int
}

// NewLeadTimeUseCase construye el caso de uso. historyDays acota la ventana de
// historia considerada (<= 0 usa 365).
func NewLeadTimeUseCase(historyRepo repository.ProcurementHistoryRepository, cache *Cache, historyDays int) *LeadTimeUseCase {
	if historyDays <= 0 {
		historyDays = 365
	}
	return &LeadTimeUseCase{
		historyRepo: historyRepo,
		cache:       cache,
		historyDays: historyDays,
	}
}

// Predict devuelve la predicción de tiempo de entrega del artículo. Sirve desde
// caché cuando hay una entrada viva; si no, consulta el historial y calcula
// promedio, máximo y P90 de los días solicitud→recepción. Retorna
// domain.ErrNoReceiveHistory si no hay pares utilizables.
func (uc *LeadTimeUseCase) Predict(ctx context.Context, nacCode string) (dto.LeadTimePredictionDTO, error) {
	if nacCode == "" {
		return dto.LeadTimePredictionDTO{}, domain.ErrInvalidInput
	}

	if cached, ok := uc.cache.Get(nacCode); ok {
		cached.FromCache = true
		return cached, nil
	}

	since := time.Now().AddDate(0, 0, -uc.historyDays)
	events, err := uc.historyRepo.ListReceiveEvents(ctx, nacCode, since)
	if err != nil {
		return dto.LeadTimePredictionDTO{}, fmt.Errorf("historial de recepciones: %w", err)
	}

	// Días de entrega por evento; se descartan pares incoherentes
	// (recepción antes de la solicitud).
	leadDays := make([]float64, 0, len(events))
	var lastReceive time.Time
	for _, e := range events {
		if e.ReceiveDate.Before(e.RequestDate) {
			continue
		}
		leadDays = append(leadDays, e.ReceiveDate.Sub(e.RequestDate).Hours()/24)
		if e.ReceiveDate.After(lastReceive) {
			lastReceive = e.ReceiveDate
		}
	}
	if len(leadDays) == 0 {
		return dto.LeadTimePredictionDTO{}, domain.ErrNoReceiveHistory
	}

	sort.Float64s(leadDays)

	sum := 0.0
	for _, d := range leadDays {
		sum += d
	}
	avg := decimal.NewFromFloat(sum / float64(len(leadDays))).Round(1)
	max := decimal.NewFromFloat(leadDays[len(leadDays)-1]).Round(1)
	p90 := decimal.NewFromFloat(percentile(leadDays, 0.90)).Round(1)

	result := dto.LeadTimePredictionDTO{
		NacCode:           nacCode,
		SampleCount:       len(leadDays),
		AvgLeadTimeDays:   avg,
		MaxLeadTimeDays:   max,
		P90LeadTimeDays:   p90,
		LastReceiveDate:   lastReceive.Format(dateLayout),
		SuggestedLeadDays: p90.Mul(safetyFactor).Round(0),
	}
	uc.cache.Put(nacCode, result)
	return result, nil
}

// percentile calcula el percentil p (0..1) por el método del rango más cercano
// sobre una serie ya ordenada ascendente.
func percentile(sorted []float64, p float64) float64 {
	if len(sorted) == 0 {
		return 0
	}
	rank := int(p*float64(len(sorted))+0.5) - 1
	if rank < 0 {
		rank = 0
	}
	if rank >= len(sorted) {
		rank = len(sorted) - 1
	}
	return sorted[rank]
}
