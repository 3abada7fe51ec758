package repository

import "github.com/jhoicas/retail-backoffice/internal/domain/entity"

// InventoryRepository define el puerto de persistencia para Inventory (DIP).
// GetByProductIDForUpdate bloquea la fila (SELECT FOR UPDATE) y solo tiene
// sentido dentro de una transacción del TxRunner.
type InventoryRepository interface {
	GetByProductID(productID int64) (*entity.Inventory, error)
	GetByProductIDForUpdate(productID int64) (*entity.Inventory, error)
	Create(inv *entity.Inventory) error
	Update(inv *entity.Inventory) error
	List(limit, offset int) ([]*entity.Inventory, error)
	ListLowStock() ([]*entity.Inventory, error)
}
