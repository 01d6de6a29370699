// Package stockcard implementa la reconstrucción de la tarjeta kardex de un
// artículo: dado el saldo de apertura y los movimientos ordenados por fecha,
// produce la secuencia de movimientos con saldo corrido, dividiendo las salidas
// que exceden el saldo disponible y difiriendo el remanente hasta que una
// recepción posterior lo cubra (FIFO). Función pura, sin I/O ni estado global.
package stockcard

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/invtrack/kardex-api/internal/domain/entity"
)

// consumableTag subcadena (case-insensitive) de la categoría de equipo que marca
// un artículo consumible: sus salidas no se rastrean por equipo.
const consumableTag = "consumable"

// deferredIssue es el remanente no satisfecho de una salida. Conserva la
// identidad de la salida original para que las filas emitidas al satisfacerlo
// muestren su fecha y referencia, no las de la recepción que lo cubrió.
type deferredIssue struct {
	quantity     decimal.Decimal
	reference    string
	equipment    string
	originalDate time.Time
}

// deferredQueue cola FIFO explícita de salidas diferidas.
// pop/push en extremos opuestos; nunca se itera mutando índices.
type deferredQueue struct {
	items []deferredIssue
}

func (q *deferredQueue) empty() bool { return len(q.items) == 0 }

func (q *deferredQueue) push(d deferredIssue) { q.items = append(q.items, d) }

// front devuelve un puntero a la primera salida diferida (para descontar parciales).
func (q *deferredQueue) front() *deferredIssue { return &q.items[0] }

func (q *deferredQueue) pop() deferredIssue {
	d := q.items[0]
	q.items = q.items[1:]
	return d
}

// Reconstruct aplica los movimientos (ya ordenados por fecha por el caller; aquí
// no se reordena) sobre el saldo de apertura y devuelve la secuencia procesada:
//
//   - Recepción: suma al saldo, emite la fila y luego intenta satisfacer las
//     salidas diferidas pendientes en orden FIFO.
//   - Salida cubierta: resta del saldo y emite una sola fila.
//   - Salida parcial: emite la parte disponible con saldo 0 y difiere el resto.
//   - Salida sin saldo: no emite nada todavía; difiere la cantidad completa.
//
// Al agotar los movimientos, toda salida aún diferida se emite con saldo 0 en su
// fecha y referencia originales (emitida exactamente una vez).
//
// El saldo corrido nunca es negativo: el sobregiro se resuelve por diferimiento,
// no por error. La suma de cantidades de las filas derivadas de una misma salida
// es exactamente la cantidad original (conservación).
//
// Se asume entrada bien formada (cantidades no negativas, fechas ordenadas); no
// hay validación ni canal de error. equipmentCategory con la subcadena
// "consumable" (sin distinguir mayúsculas) deja en blanco el equipo de todas las
// filas de salida.
func Reconstruct(openQuantity, openAmount decimal.Decimal, movements []entity.Movement, equipmentCategory string) []entity.ProcessedMovement {
	suppressEquipment := strings.Contains(strings.ToLower(equipmentCategory), consumableTag)

	balance := openQuantity
	balanceAmount := openAmount
	var queue deferredQueue

	out := make([]entity.ProcessedMovement, 0, len(movements))

	emit := func(p entity.ProcessedMovement) {
		if suppressEquipment {
			p.EquipmentNumber = ""
		}
		out = append(out, p)
	}

	// emitDeferred emite la porción qty de la salida diferida d con el saldo dado.
	emitDeferred := func(d deferredIssue, qty, balanceAfter decimal.Decimal) {
		emit(entity.ProcessedMovement{
			Movement: entity.Movement{
				Date:            d.originalDate,
				Reference:       d.reference,
				Type:            entity.MovementTypeIssue,
				Quantity:        qty,
				Amount:          decimal.Zero,
				EquipmentNumber: d.equipment,
			},
			BalanceQuantity: balanceAfter,
			BalanceAmount:   decimal.Zero,
		})
	}

	for _, m := range movements {
		switch {
		case m.IsReceive():
			balance = balance.Add(m.Quantity)
			balanceAmount = balanceAmount.Add(m.Amount)
			emit(entity.ProcessedMovement{
				Movement:        m,
				BalanceQuantity: balance,
				BalanceAmount:   balanceAmount,
			})

			// Satisfacer salidas diferidas contra el saldo recién repuesto, FIFO.
			for !queue.empty() && balance.IsPositive() {
				d := queue.front()
				if balance.GreaterThanOrEqual(d.quantity) {
					// Cubierta completa: sale de la cola.
					full := queue.pop()
					balance = balance.Sub(full.quantity)
					emitDeferred(full, full.quantity, balance)
					continue
				}
				// Cubierta parcial: emite lo disponible y sigue debiendo el resto.
				satisfied := balance
				balance = decimal.Zero
				d.quantity = d.quantity.Sub(satisfied)
				emitDeferred(*d, satisfied, decimal.Zero)
				break
			}
			// La última fila del lote de esta recepción debe reflejar el saldo final.
			out[len(out)-1].BalanceQuantity = balance

		case m.IsIssue():
			switch {
			case balance.GreaterThanOrEqual(m.Quantity):
				balance = balance.Sub(m.Quantity)
				emit(entity.ProcessedMovement{
					Movement:        m,
					BalanceQuantity: balance,
					BalanceAmount:   decimal.Zero,
				})
			case balance.IsPositive():
				// Parcial: emite lo disponible con saldo 0 y difiere el remanente.
				available := balance
				balance = decimal.Zero
				partial := m
				partial.Quantity = available
				partial.Amount = decimal.Zero
				emit(entity.ProcessedMovement{
					Movement:        partial,
					BalanceQuantity: decimal.Zero,
					BalanceAmount:   decimal.Zero,
				})
				queue.push(deferredIssue{
					quantity:     m.Quantity.Sub(available),
					reference:    m.Reference,
					equipment:    m.EquipmentNumber,
					originalDate: m.Date,
				})
			default:
				// Sin saldo: no se emite nada todavía; se difiere completa.
				queue.push(deferredIssue{
					quantity:     m.Quantity,
					reference:    m.Reference,
					equipment:    m.EquipmentNumber,
					originalDate: m.Date,
				})
			}
		}
	}

	// Salidas que ninguna recepción posterior cubrió: filas finales con saldo 0.
	for !queue.empty() {
		d := queue.pop()
		emitDeferred(d, d.quantity, decimal.Zero)
	}

	return out
}
