package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/invtrack/kardex-api/internal/domain/entity"
	"github.com/invtrack/kardex-api/internal/domain/repository"
)

var _ repository.StockCardRepository = (*StockCardRepo)(nil)
var _ repository.ProcurementHistoryRepository = (*StockCardRepo)(nil)

// StockCardRepo lectura de movimientos kardex e historial de adquisiciones
// sobre PostgreSQL. Read-only: las tablas las escribe el sistema de
// adquisiciones aguas arriba.
type StockCardRepo struct {
	q Querier
}

// NewStockCardRepository construye el adaptador. Pasar pool o tx (Querier).
func NewStockCardRepository(q Querier) *StockCardRepo {
	return &StockCardRepo{q: q}
}

// movementsBaseQuery une recepciones y salidas en una sola serie cronológica.
// Las salidas llevan amount 0 (el valor solo se rastrea en recepciones) y las
// recepciones no tienen equipo consumidor.
const movementsBaseQuery = `
	SELECT date, reference, type, quantity, amount, equipment_number FROM (
		SELECT r.receive_date AS date, r.reference, 'receive' AS type,
		       r.quantity, r.amount, '' AS equipment_number
		FROM receive_details r WHERE r.nac_code = $1
		UNION ALL
		SELECT i.issue_date AS date, i.reference, 'issue' AS type,
		       i.quantity, 0 AS amount, COALESCE(i.equipment_number, '') AS equipment_number
		FROM issue_details i WHERE i.nac_code = $1
	) mov`

// ListMovements devuelve todos los movimientos del artículo en el rango dado,
// ascendente por fecha (recepciones antes que salidas en empate de fecha, para
// que la reposición del día quede disponible para las salidas del mismo día).
func (r *StockCardRepo) ListMovements(ctx context.Context, nacCode string, from, to *time.Time) ([]entity.Movement, error) {
	query, args := movementsQuery(nacCode, from, to)
	query += " ORDER BY mov.date ASC, mov.type DESC"
	return r.scanMovements(ctx, query, args)
}

// ListMovementsPage versión paginada del listado crudo.
func (r *StockCardRepo) ListMovementsPage(ctx context.Context, nacCode string, from, to *time.Time, limit, offset int) ([]entity.Movement, error) {
	query, args := movementsQuery(nacCode, from, to)
	query += fmt.Sprintf(" ORDER BY mov.date ASC, mov.type DESC LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
	args = append(args, limit, offset)
	return r.scanMovements(ctx, query, args)
}

func movementsQuery(nacCode string, from, to *time.Time) (string, []any) {
	query := movementsBaseQuery
	args := []any{nacCode}
	if from != nil {
		query += fmt.Sprintf(" WHERE mov.date >= $%d", len(args)+1)
		args = append(args, *from)
	}
	if to != nil {
		kw := " WHERE"
		if from != nil {
			kw = " AND"
		}
		query += fmt.Sprintf("%s mov.date <= $%d", kw, len(args)+1)
		args = append(args, *to)
	}
	return query, args
}

func (r *StockCardRepo) scanMovements(ctx context.Context, query string, args []any) ([]entity.Movement, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	defer rows.Close()

	var list []entity.Movement
	for rows.Next() {
		var m entity.Movement
		if err := rows.Scan(&m.Date, &m.Reference, &m.Type, &m.Quantity, &m.Amount, &m.EquipmentNumber); err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		list = append(list, m)
	}
	return list, rows.Err()
}

// ListReceiveEvents devuelve los pares solicitud→recepción del artículo desde
// la fecha dada, para la predicción de tiempos de entrega.
func (r *StockCardRepo) ListReceiveEvents(ctx context.Context, nacCode string, since time.Time) ([]repository.ReceiveEvent, error) {
	query := `
		SELECT rq.request_date, rc.receive_date
		FROM receive_details rc
		JOIN request_details rq ON rq.id = rc.request_id
		WHERE rc.nac_code = $1 AND rc.receive_date >= $2
		ORDER BY rc.receive_date ASC`
	rows, err := r.q.Query(ctx, query, nacCode, since)
	if err != nil {
		return nil, fmt.Errorf("list receive events: %w", err)
	}
	defer rows.Close()

	var list []repository.ReceiveEvent
	for rows.Next() {
		var e repository.ReceiveEvent
		if err := rows.Scan(&e.RequestDate, &e.ReceiveDate); err != nil {
			return nil, fmt.Errorf("scan receive event: %w", err)
		}
		list = append(list, e)
	}
	return list, rows.Err()
}
