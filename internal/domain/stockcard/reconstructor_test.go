package stockcard_test

import (
	"math/rand"
	"strconv"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/invtrack/kardex-api/internal/domain/entity"
	"github.com/invtrack/kardex-api/internal/domain/stockcard"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

var testBase = time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

func day(n int) time.Time { return testBase.AddDate(0, 0, n) }

func qty(n int64) decimal.Decimal { return decimal.NewFromInt(n) }

func receive(dayN int, ref string, quantity, amount int64) entity.Movement {
	return entity.Movement{
		Date:      day(dayN),
		Reference: ref,
		Type:      entity.MovementTypeReceive,
		Quantity:  qty(quantity),
		Amount:    qty(amount),
	}
}

func issue(dayN int, ref string, quantity int64, equipment string) entity.Movement {
	return entity.Movement{
		Date:            day(dayN),
		Reference:       ref,
		Type:            entity.MovementTypeIssue,
		Quantity:        qty(quantity),
		EquipmentNumber: equipment,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Casos de camino directo
// ──────────────────────────────────────────────────────────────────────────────

// Salida totalmente cubierta por el saldo de apertura: una sola fila, saldo 60.
func TestReconstruct_SalidaCubiertaPorApertura(t *testing.T) {
	movs := []entity.Movement{
		receive(1, "R-001", 0, 0),
		issue(2, "I-001", 40, "EQ-9"),
	}

	out := stockcard.Reconstruct(qty(100), qty(5000), movs, "rotable")

	require.Len(t, out, 2)
	assert.Equal(t, entity.MovementTypeReceive, out[0].Type)
	assert.True(t, out[0].BalanceQuantity.Equal(qty(100)), "recepción de 0 no altera el saldo")

	assert.Equal(t, entity.MovementTypeIssue, out[1].Type)
	assert.True(t, out[1].Quantity.Equal(qty(40)))
	assert.True(t, out[1].BalanceQuantity.Equal(qty(60)))
	assert.Equal(t, "EQ-9", out[1].EquipmentNumber)
}

// Sin movimientos: secuencia vacía, sin filas sintéticas.
func TestReconstruct_SinMovimientos(t *testing.T) {
	out := stockcard.Reconstruct(qty(10), qty(100), nil, "")
	assert.Empty(t, out)
}

// Salida que agota exactamente el saldo: fila única con saldo 0, nada diferido.
func TestReconstruct_SalidaExacta(t *testing.T) {
	out := stockcard.Reconstruct(qty(25), decimal.Zero, []entity.Movement{
		issue(1, "I-001", 25, ""),
	}, "")

	require.Len(t, out, 1)
	assert.True(t, out[0].BalanceQuantity.IsZero())
	assert.True(t, out[0].Quantity.Equal(qty(25)))
}

// ──────────────────────────────────────────────────────────────────────────────
// Diferimiento y división de salidas
// ──────────────────────────────────────────────────────────────────────────────

// Camino de diferimiento parcial del diseño: apertura 0, salida 50 (todo
// diferido, sin fila), recepción 30 (fila de recepción saldo 30 + fila sintética
// de 30 con saldo 0; quedan debiendo 20), recepción 25 (fila de recepción saldo
// 25 + fila sintética de 20 con saldo 5). Cola vacía, saldo final 5.
func TestReconstruct_DiferimientoParcialEncadenado(t *testing.T) {
	movs := []entity.Movement{
		issue(1, "I-050", 50, "EQ-1"),
		receive(5, "R-030", 30, 300),
		receive(9, "R-025", 25, 250),
	}

	out := stockcard.Reconstruct(decimal.Zero, decimal.Zero, movs, "")

	require.Len(t, out, 4)

	// Recepción de 30 con su saldo antes de satisfacer diferidos.
	assert.Equal(t, "R-030", out[0].Reference)
	assert.True(t, out[0].BalanceQuantity.Equal(qty(30)))

	// División de 30 unidades de la salida original, fechada en el día de la salida.
	assert.Equal(t, entity.MovementTypeIssue, out[1].Type)
	assert.Equal(t, "I-050", out[1].Reference)
	assert.True(t, out[1].Quantity.Equal(qty(30)))
	assert.True(t, out[1].BalanceQuantity.IsZero())
	assert.Equal(t, day(1), out[1].Date, "la fila sintética conserva la fecha de la salida original")
	assert.Equal(t, "EQ-1", out[1].EquipmentNumber)

	// Segunda recepción y remanente de 20.
	assert.Equal(t, "R-025", out[2].Reference)
	assert.True(t, out[2].BalanceQuantity.Equal(qty(25)))

	assert.Equal(t, "I-050", out[3].Reference)
	assert.True(t, out[3].Quantity.Equal(qty(20)))
	assert.True(t, out[3].BalanceQuantity.Equal(qty(5)), "saldo final tras cubrir el remanente")
}

// Salida mayor que el saldo parcial disponible y sin recepciones posteriores:
// fila inmediata por lo disponible (saldo 0) y fila final por el resto (saldo 0),
// ambas con la fecha y referencia de la salida original.
func TestReconstruct_SalidaNoSatisfechaAlFinal(t *testing.T) {
	movs := []entity.Movement{
		issue(3, "I-099", 30, "EQ-7"),
	}

	out := stockcard.Reconstruct(qty(10), decimal.Zero, movs, "")

	require.Len(t, out, 2)

	assert.True(t, out[0].Quantity.Equal(qty(10)))
	assert.True(t, out[0].BalanceQuantity.IsZero())
	assert.Equal(t, "I-099", out[0].Reference)

	assert.True(t, out[1].Quantity.Equal(qty(20)))
	assert.True(t, out[1].BalanceQuantity.IsZero())
	assert.Equal(t, "I-099", out[1].Reference)
	assert.Equal(t, day(3), out[1].Date)
	assert.Equal(t, "EQ-7", out[1].EquipmentNumber)
}

// Varias salidas diferidas se satisfacen en el orden en que quedaron pendientes
// (primera diferida, primera satisfecha).
func TestReconstruct_DiferidasSeSatisfacenFIFO(t *testing.T) {
	movs := []entity.Movement{
		issue(1, "I-A", 10, "EQ-A"),
		issue(2, "I-B", 15, "EQ-B"),
		receive(5, "R-1", 12, 120),
	}

	out := stockcard.Reconstruct(decimal.Zero, decimal.Zero, movs, "")

	// Recepción, I-A completa (10), I-B parcial (2); al final I-B debe 13.
	require.Len(t, out, 4)
	assert.Equal(t, "R-1", out[0].Reference)

	assert.Equal(t, "I-A", out[1].Reference)
	assert.True(t, out[1].Quantity.Equal(qty(10)))
	assert.True(t, out[1].BalanceQuantity.Equal(qty(2)))

	assert.Equal(t, "I-B", out[2].Reference)
	assert.True(t, out[2].Quantity.Equal(qty(2)))
	assert.True(t, out[2].BalanceQuantity.IsZero())

	assert.Equal(t, "I-B", out[3].Reference)
	assert.True(t, out[3].Quantity.Equal(qty(13)))
	assert.True(t, out[3].BalanceQuantity.IsZero())
}

// Una recepción que cubre varias diferidas completas: la fila de recepción
// lleva el saldo inmediatamente después de sumar la recepción, cada diferida
// descuenta en orden, y la última fila emitida del lote queda con el saldo
// final del lote.
func TestReconstruct_RecepcionCubreVariasDiferidas(t *testing.T) {
	movs := []entity.Movement{
		issue(1, "I-A", 5, ""),
		issue(2, "I-B", 7, ""),
		receive(3, "R-1", 20, 200),
	}

	out := stockcard.Reconstruct(decimal.Zero, decimal.Zero, movs, "")

	require.Len(t, out, 3)
	assert.True(t, out[0].BalanceQuantity.Equal(qty(20)), "la recepción muestra el saldo recién repuesto")
	assert.True(t, out[1].BalanceQuantity.Equal(qty(15)))
	assert.True(t, out[2].BalanceQuantity.Equal(qty(8)), "la última fila del lote lleva el saldo final")
}

// ──────────────────────────────────────────────────────────────────────────────
// Saldo monetario y supresión de equipos
// ──────────────────────────────────────────────────────────────────────────────

// El saldo monetario solo acumula apertura + recepciones; las filas de salida
// (incluidas las sintéticas) llevan saldo monetario cero.
func TestReconstruct_SaldoMonetarioSoloRecepciones(t *testing.T) {
	movs := []entity.Movement{
		receive(1, "R-1", 10, 150),
		issue(2, "I-1", 4, ""),
		receive(3, "R-2", 5, 75),
	}

	out := stockcard.Reconstruct(qty(2), qty(30), movs, "")

	require.Len(t, out, 3)
	assert.True(t, out[0].BalanceAmount.Equal(qty(180)), "30 apertura + 150")
	assert.True(t, out[1].BalanceAmount.IsZero())
	assert.True(t, out[2].BalanceAmount.Equal(qty(255)), "180 + 75")
}

// Artículo consumible (cualquier combinación de mayúsculas): todas las filas
// salen sin número de equipo aunque la salida lo traiga registrado.
func TestReconstruct_ConsumibleSuprimeEquipos(t *testing.T) {
	movs := []entity.Movement{
		issue(1, "I-1", 5, "EQ-1"),
		receive(2, "R-1", 3, 30),
	}

	for _, categoria := range []string{"consumable", "CONSUMABLE", "Consumable spares"} {
		out := stockcard.Reconstruct(qty(4), decimal.Zero, movs, categoria)
		require.NotEmpty(t, out, categoria)
		for _, row := range out {
			assert.Empty(t, row.EquipmentNumber, "categoría %q debe suprimir equipos", categoria)
		}
	}

	// Categoría no consumible conserva el equipo.
	out := stockcard.Reconstruct(qty(4), decimal.Zero, movs, "rotable")
	assert.Equal(t, "EQ-1", out[0].EquipmentNumber)
}

// ──────────────────────────────────────────────────────────────────────────────
// Propiedades: conservación, no-negatividad y aritmética del saldo
// ──────────────────────────────────────────────────────────────────────────────

// Para cada salida de entrada, la suma de cantidades de todas las filas que se
// derivan de ella (por referencia) es exactamente su cantidad original.
func TestReconstruct_ConservacionPorSalida(t *testing.T) {
	movs := []entity.Movement{
		issue(1, "I-A", 50, ""),
		receive(2, "R-1", 30, 300),
		issue(3, "I-B", 10, ""),
		receive(4, "R-2", 25, 250),
		issue(5, "I-C", 100, ""),
	}

	out := stockcard.Reconstruct(decimal.Zero, decimal.Zero, movs, "")

	emitted := map[string]decimal.Decimal{}
	for _, row := range out {
		if row.Type == entity.MovementTypeIssue {
			emitted[row.Reference] = emitted[row.Reference].Add(row.Quantity)
		}
	}
	assert.True(t, emitted["I-A"].Equal(qty(50)))
	assert.True(t, emitted["I-B"].Equal(qty(10)))
	assert.True(t, emitted["I-C"].Equal(qty(100)))
}

// Generación aleatoria de movimientos: el saldo nunca es negativo, cada salida
// conserva su cantidad y el saldo final cuadra con la aritmética
// apertura + recepciones − salidas satisfechas.
func TestReconstruct_PropiedadesConEntradaAleatoria(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for iter := 0; iter < 200; iter++ {
		open := qty(int64(rng.Intn(50)))
		n := rng.Intn(30)

		movs := make([]entity.Movement, 0, n)
		issued := map[string]decimal.Decimal{}
		totalReceived := decimal.Zero
		for i := 0; i < n; i++ {
			q := int64(rng.Intn(40))
			if rng.Intn(2) == 0 {
				movs = append(movs, receive(i, refN("R", i), q, q*10))
				totalReceived = totalReceived.Add(qty(q))
			} else {
				ref := refN("I", i)
				movs = append(movs, issue(i, ref, q, "EQ"))
				issued[ref] = qty(q)
			}
		}

		out := stockcard.Reconstruct(open, decimal.Zero, movs, "")

		emitted := map[string]decimal.Decimal{}
		finalBalance := open
		for _, row := range out {
			require.False(t, row.BalanceQuantity.IsNegative(),
				"iteración %d: saldo negativo en fila %s", iter, row.Reference)
			if row.Type == entity.MovementTypeIssue {
				emitted[row.Reference] = emitted[row.Reference].Add(row.Quantity)
			}
			finalBalance = row.BalanceQuantity
		}

		// Conservación por salida: emitido == registrado, exactamente.
		for ref, want := range issued {
			got := emitted[ref]
			require.True(t, got.Equal(want),
				"iteración %d: salida %s emitió %s de %s", iter, ref, got, want)
		}

		// Aritmética del saldo final: apertura + recepciones − salidas emitidas
		// nunca queda por debajo de cero, y el saldo reportado coincide cuando
		// todas las salidas quedaron cubiertas.
		if len(out) > 0 {
			totalEmittedIssues := decimal.Zero
			for _, v := range emitted {
				totalEmittedIssues = totalEmittedIssues.Add(v)
			}
			implied := open.Add(totalReceived).Sub(totalEmittedIssues)
			if !implied.IsNegative() {
				require.True(t, finalBalance.Equal(implied),
					"iteración %d: saldo final %s, esperado %s", iter, finalBalance, implied)
			} else {
				require.True(t, finalBalance.IsZero(),
					"iteración %d: con sobregiro el saldo final debe ser 0", iter)
			}
		}
	}
}

func refN(prefix string, i int) string {
	return prefix + "-" + strconv.Itoa(i)
}
