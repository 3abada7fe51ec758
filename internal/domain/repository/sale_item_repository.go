package repository

import "github.com/jhoicas/retail-backoffice/internal/domain/entity"

// SaleItemRepository define el puerto de persistencia para SaleItem (DIP).
type SaleItemRepository interface {
	CreateBatch(items []entity.SaleItem) error
	ListBySale(saleID int64) ([]entity.SaleItem, error)
	List(limit, offset int) ([]entity.SaleItem, error)
}
