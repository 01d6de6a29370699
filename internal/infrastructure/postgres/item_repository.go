package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/invtrack/kardex-api/internal/domain/entity"
	"github.com/invtrack/kardex-api/internal/domain/repository"
)

var _ repository.ItemRepository = (*ItemRepo)(nil)

// ItemRepo implementación de ItemRepository sobre PostgreSQL (usable con pool o tx).
type ItemRepo struct {
	q Querier
}

// NewItemRepository construye el adaptador de la ficha maestra. Pasar pool o tx (Querier).
func NewItemRepository(q Querier) *ItemRepo {
	return &ItemRepo{q: q}
}

// GetByNacCode obtiene la ficha del artículo con su saldo de apertura, o nil si no existe.
func (r *ItemRepo) GetByNacCode(ctx context.Context, nacCode string) (*entity.Item, error) {
	query := `
		SELECT nac_code, item_name, part_number, equipment_number, location, card_number,
		       open_quantity, open_amount, opening_balance_date
		FROM items WHERE nac_code = $1`
	var it entity.Item
	err := r.q.QueryRow(ctx, query, nacCode).Scan(
		&it.NacCode, &it.ItemName, &it.PartNumber, &it.EquipmentNumber, &it.Location,
		&it.CardNumber, &it.OpenQuantity, &it.OpenAmount, &it.OpeningBalanceDate,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get item: %w", err)
	}
	return &it, nil
}
