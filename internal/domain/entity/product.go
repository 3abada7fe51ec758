package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo. SKU es único; cada producto
// pertenece a exactamente una categoría y tiene a lo sumo un registro Inventory.
type Product struct {
	ID          int64
	Name        string
	Description string
	SKU         string // código único
	Price       decimal.Decimal
	CategoryID  int64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
