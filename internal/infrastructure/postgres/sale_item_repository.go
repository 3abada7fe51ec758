package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/retail-backoffice/internal/domain/entity"
	"github.com/jhoicas/retail-backoffice/internal/domain/repository"
)

var _ repository.SaleItemRepository = (*SaleItemRepo)(nil)

// SaleItemRepo implementación de SaleItemRepository sobre PostgreSQL (usable con pool o tx).
type SaleItemRepo struct {
	q Querier
}

// NewSaleItemRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSaleItemRepository(q Querier) *SaleItemRepo {
	return &SaleItemRepo{q: q}
}

// CreateBatch inserta las líneas de una venta y deja los ids generados.
// Llamar dentro de la misma tx que insertó la venta.
func (r *SaleItemRepo) CreateBatch(items []entity.SaleItem) error {
	query := `
		INSERT INTO sale_items (sale_id, product_id, quantity, unit_price, line_total)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`
	for i := range items {
		err := r.q.QueryRow(context.Background(), query,
			items[i].SaleID, items[i].ProductID, items[i].Quantity,
			items[i].UnitPrice, items[i].LineTotal,
		).Scan(&items[i].ID)
		if err != nil {
			return fmt.Errorf("insert sale item: %w", err)
		}
	}
	return nil
}

// ListBySale devuelve las líneas de una venta en orden de inserción.
func (r *SaleItemRepo) ListBySale(saleID int64) ([]entity.SaleItem, error) {
	query := `
		SELECT id, sale_id, product_id, quantity, unit_price, line_total
		FROM sale_items WHERE sale_id = $1
		ORDER BY id`
	rows, err := r.q.Query(context.Background(), query, saleID)
	if err != nil {
		return nil, fmt.Errorf("list sale items by sale: %w", err)
	}
	defer rows.Close()
	var list []entity.SaleItem
	for rows.Next() {
		var it entity.SaleItem
		if err := rows.Scan(&it.ID, &it.SaleID, &it.ProductID, &it.Quantity, &it.UnitPrice, &it.LineTotal); err != nil {
			return nil, fmt.Errorf("scan sale item: %w", err)
		}
		list = append(list, it)
	}
	return list, rows.Err()
}

// List listado crudo de líneas de venta (paginado, orden de inserción).
func (r *SaleItemRepo) List(limit, offset int) ([]entity.SaleItem, error) {
	query := `
		SELECT id, sale_id, product_id, quantity, unit_price, line_total
		FROM sale_items
		ORDER BY id LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list sale items: %w", err)
	}
	defer rows.Close()
	var list []entity.SaleItem
	for rows.Next() {
		var it entity.SaleItem
		if err := rows.Scan(&it.ID, &it.SaleID, &it.ProductID, &it.Quantity, &it.UnitPrice, &it.LineTotal); err != nil {
			return nil, fmt.Errorf("scan sale item: %w", err)
		}
		list = append(list, it)
	}
	return list, rows.Err()
}
