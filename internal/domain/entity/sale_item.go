package entity

import "github.com/shopspring/decimal"

// SaleItem representa una línea de venta. LineTotal == Quantity × UnitPrice
// (se valida al crear la venta, nunca se confía en el valor del caller).
type SaleItem struct {
	ID        int64
	SaleID    int64
	ProductID int64
	Quantity  int
	UnitPrice decimal.Decimal
	LineTotal decimal.Decimal
}
