package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/retail-backoffice/internal/domain/entity"
	"github.com/jhoicas/retail-backoffice/internal/domain/repository"
)

var _ repository.InventoryHistoryRepository = (*InventoryHistoryRepo)(nil)

// InventoryHistoryRepo implementación sobre PostgreSQL (usable con pool o tx).
// El historial es append-only: solo INSERT y SELECT.
type InventoryHistoryRepo struct {
	q Querier
}

// NewInventoryHistoryRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInventoryHistoryRepository(q Querier) *InventoryHistoryRepo {
	return &InventoryHistoryRepo{q: q}
}

// Create persiste una entrada de historial y deja el id generado.
func (r *InventoryHistoryRepo) Create(entry *entity.InventoryHistory) error {
	query := `
		INSERT INTO inventory_history (inventory_id, product_id, change_qty, reason, adjustment_id, changed_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		entry.InventoryID, entry.ProductID, entry.ChangeQty,
		entry.Reason, entry.AdjustmentID, entry.ChangedAt,
	).Scan(&entry.ID)
	if err != nil {
		return fmt.Errorf("insert inventory history: %w", err)
	}
	return nil
}

// List devuelve entradas de historial, más recientes primero, con filtros
// opcionales por inventario y/o producto (AND).
func (r *InventoryHistoryRepo) List(filter repository.HistoryFilter, limit, offset int) ([]*entity.InventoryHistory, error) {
	query := `
		SELECT id, inventory_id, product_id, change_qty, reason, adjustment_id, changed_at
		FROM inventory_history WHERE 1=1`
	var args []any
	pos := 1
	if filter.InventoryID != nil {
		query += fmt.Sprintf(" AND inventory_id = $%d", pos)
		args = append(args, *filter.InventoryID)
		pos++
	}
	if filter.ProductID != nil {
		query += fmt.Sprintf(" AND product_id = $%d", pos)
		args = append(args, *filter.ProductID)
		pos++
	}
	query += fmt.Sprintf(" ORDER BY changed_at DESC, id DESC LIMIT $%d OFFSET $%d", pos, pos+1)
	args = append(args, limit, offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list inventory history: %w", err)
	}
	defer rows.Close()
	var list []*entity.InventoryHistory
	for rows.Next() {
		var h entity.InventoryHistory
		if err := rows.Scan(&h.ID, &h.InventoryID, &h.ProductID, &h.ChangeQty, &h.Reason, &h.AdjustmentID, &h.ChangedAt); err != nil {
			return nil, fmt.Errorf("scan inventory history: %w", err)
		}
		list = append(list, &h)
	}
	return list, rows.Err()
}
