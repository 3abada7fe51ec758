package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/retail-backoffice/internal/domain"
	"github.com/jhoicas/retail-backoffice/internal/domain/entity"
	"github.com/jhoicas/retail-backoffice/internal/domain/repository"
)

var _ repository.InventoryRepository = (*InventoryRepo)(nil)

// InventoryRepo implementación de InventoryRepository sobre PostgreSQL (usable con pool o tx).
type InventoryRepo struct {
	q Querier
}

// NewInventoryRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInventoryRepository(q Querier) *InventoryRepo {
	return &InventoryRepo{q: q}
}

// GetByProductID obtiene el inventario de un producto; nil si no existe.
func (r *InventoryRepo) GetByProductID(productID int64) (*entity.Inventory, error) {
	query := `
		SELECT id, product_id, quantity_on_hand, reorder_threshold
		FROM inventory WHERE product_id = $1`
	var inv entity.Inventory
	err := r.q.QueryRow(context.Background(), query, productID).Scan(
		&inv.ID, &inv.ProductID, &inv.QuantityOnHand, &inv.ReorderThreshold,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get inventory: %w", err)
	}
	return &inv, nil
}

// GetByProductIDForUpdate obtiene el inventario y bloquea la fila
// (SELECT FOR UPDATE) para serializar ajustes concurrentes al mismo producto.
func (r *InventoryRepo) GetByProductIDForUpdate(productID int64) (*entity.Inventory, error) {
	query := `
		SELECT id, product_id, quantity_on_hand, reorder_threshold
		FROM inventory WHERE product_id = $1
		FOR UPDATE`
	var inv entity.Inventory
	err := r.q.QueryRow(context.Background(), query, productID).Scan(
		&inv.ID, &inv.ProductID, &inv.QuantityOnHand, &inv.ReorderThreshold,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get inventory for update: %w", err)
	}
	return &inv, nil
}

// Create persiste un registro de inventario nuevo (declaración inicial).
// product_id es único: ErrDuplicate si el producto ya tiene inventario.
func (r *InventoryRepo) Create(inv *entity.Inventory) error {
	query := `
		INSERT INTO inventory (product_id, quantity_on_hand, reorder_threshold)
		VALUES ($1, $2, $3)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		inv.ProductID, inv.QuantityOnHand, inv.ReorderThreshold,
	).Scan(&inv.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert inventory: %w", err)
	}
	return nil
}

// Update persiste cantidad y umbral. Llamar con la fila ya bloqueada
// (GetByProductIDForUpdate) dentro de la tx del ledger.
func (r *InventoryRepo) Update(inv *entity.Inventory) error {
	query := `
		UPDATE inventory SET quantity_on_hand = $2, reorder_threshold = $3
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		inv.ID, inv.QuantityOnHand, inv.ReorderThreshold,
	)
	if err != nil {
		return fmt.Errorf("update inventory: %w", err)
	}
	return nil
}

// List devuelve los inventarios en orden de inserción (id ascendente).
func (r *InventoryRepo) List(limit, offset int) ([]*entity.Inventory, error) {
	query := `
		SELECT id, product_id, quantity_on_hand, reorder_threshold
		FROM inventory
		ORDER BY id LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list inventory: %w", err)
	}
	defer rows.Close()
	var list []*entity.Inventory
	for rows.Next() {
		var inv entity.Inventory
		if err := rows.Scan(&inv.ID, &inv.ProductID, &inv.QuantityOnHand, &inv.ReorderThreshold); err != nil {
			return nil, fmt.Errorf("scan inventory: %w", err)
		}
		list = append(list, &inv)
	}
	return list, rows.Err()
}

// ListLowStock devuelve los inventarios con cantidad <= umbral de reorden,
// mayor déficit primero. Escaneo completo de la tabla (escala de back-office).
func (r *InventoryRepo) ListLowStock() ([]*entity.Inventory, error) {
	query := `
		SELECT id, product_id, quantity_on_hand, reorder_threshold
		FROM inventory
		WHERE quantity_on_hand <= reorder_threshold
		ORDER BY (reorder_threshold - quantity_on_hand) DESC, id`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list low stock: %w", err)
	}
	defer rows.Close()
	var list []*entity.Inventory
	for rows.Next() {
		var inv entity.Inventory
		if err := rows.Scan(&inv.ID, &inv.ProductID, &inv.QuantityOnHand, &inv.ReorderThreshold); err != nil {
			return nil, fmt.Errorf("scan inventory: %w", err)
		}
		list = append(list, &inv)
	}
	return list, rows.Err()
}
