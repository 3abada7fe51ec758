package repository

import (
	"time"

	"github.com/jhoicas/retail-backoffice/internal/domain/entity"
)

// SaleFilter predicados opcionales para la consulta de ventas. Los filtros se
// aplican conjuntivamente; ProductID y CategoryID se resuelven con EXISTS sobre
// las líneas de venta, de modo que cada venta aparece una sola vez aunque tenga
// varias líneas que coincidan.
type SaleFilter struct {
	StartDate  *time.Time // inclusive
	EndDate    *time.Time // inclusive
	ProductID  *int64
	CategoryID *int64
}

// SaleRepository define el puerto de persistencia para Sale (DIP).
// Las ventas se insertan junto con sus líneas en una misma transacción
// (usar los repos atados a la tx del TxRunner).
type SaleRepository interface {
	Create(sale *entity.Sale) error
	GetByID(id int64) (*entity.Sale, error)
	Find(filter SaleFilter, limit, offset int) ([]*entity.Sale, error)
}
