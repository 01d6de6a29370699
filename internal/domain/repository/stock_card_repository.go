package repository

import (
	"context"
	"time"

	"github.com/invtrack/kardex-api/internal/domain/entity"
)

// StockCardRepository define el puerto de lectura de movimientos de la tarjeta
// kardex. Las implementaciones son read-only: la historia de movimientos la
// escribe el sistema de adquisiciones, no este servicio.
type StockCardRepository interface {
	// ListMovements devuelve recepciones y salidas del artículo en el rango
	// [from, to] (nil = sin cota), ordenados ascendente por fecha. El use case
	// reordena de todas formas antes de reconstruir la tarjeta.
	ListMovements(ctx context.Context, nacCode string, from, to *time.Time) ([]entity.Movement, error)

	// ListMovementsPage versión paginada para el listado crudo de movimientos.
	ListMovementsPage(ctx context.Context, nacCode string, from, to *time.Time, limit, offset int) ([]entity.Movement, error)
}

// ReceiveEvent es un par solicitud→recepción usado para la predicción de
// tiempos de entrega.
type ReceiveEvent struct {
	RequestDate time.Time
	ReceiveDate time.Time
}

// ProcurementHistoryRepository define el puerto de lectura del historial de
// adquisiciones (solicitudes y sus recepciones) para analítica predictiva.
type ProcurementHistoryRepository interface {
	// ListReceiveEvents devuelve los pares solicitud→recepción del artículo
	// desde la fecha dada, ordenados por fecha de recepción ascendente.
	ListReceiveEvents(ctx context.Context, nacCode string, since time.Time) ([]ReceiveEvent, error)
}
