package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimiento de la tarjeta kardex.
const (
	MovementTypeReceive = "receive" // recepción (entrada por compra/recibo)
	MovementTypeIssue   = "issue"   // salida (entrega a equipo/consumo)
)

// Movement representa un movimiento crudo de la tarjeta kardex (recepción o salida)
// tal como lo devuelve la persistencia, antes de calcular saldos o dividir salidas.
type Movement struct {
	Date            time.Time
	Reference       string // número de recibo o vale de salida; puede traer sufijo interno
	Type            string // receive | issue
	Quantity        decimal.Decimal
	Amount          decimal.Decimal // valor monetario; relevante solo en recepciones
	EquipmentNumber string          // equipo consumidor; relevante solo en salidas
}

// IsReceive indica si el movimiento es una recepción.
func (m Movement) IsReceive() bool { return m.Type == MovementTypeReceive }

// IsIssue indica si el movimiento es una salida.
func (m Movement) IsIssue() bool { return m.Type == MovementTypeIssue }

// ProcessedMovement es un movimiento ya aplicado a la tarjeta: conserva los campos
// del movimiento original y añade el saldo resultante. Una salida que no pudo
// satisfacerse completa puede producir varios ProcessedMovement (divisiones).
type ProcessedMovement struct {
	Movement
	BalanceQuantity decimal.Decimal // saldo en cantidad inmediatamente después de aplicar
	BalanceAmount   decimal.Decimal // saldo monetario; solo se acumula con recepciones
}
