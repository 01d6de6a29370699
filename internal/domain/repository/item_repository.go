package repository

import (
	"context"

	"github.com/invtrack/kardex-api/internal/domain/entity"
)

// ItemRepository define el puerto de lectura de la ficha maestra de artículos.
type ItemRepository interface {
	// GetByNacCode devuelve la ficha del artículo con su saldo de apertura,
	// o nil si no existe.
	GetByNacCode(ctx context.Context, nacCode string) (*entity.Item, error)
}
