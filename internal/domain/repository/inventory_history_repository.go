package repository

import "github.com/jhoicas/retail-backoffice/internal/domain/entity"

// HistoryFilter filtros opcionales para listar historial; se combinan con AND.
type HistoryFilter struct {
	InventoryID *int64
	ProductID   *int64
}

// InventoryHistoryRepository define el puerto de persistencia para el historial
// de inventario. Las entradas son append-only: solo Create y lecturas.
type InventoryHistoryRepository interface {
	Create(entry *entity.InventoryHistory) error
	List(filter HistoryFilter, limit, offset int) ([]*entity.InventoryHistory, error)
}
