package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale representa una transacción de venta. Se crea junto con todas sus líneas
// en una sola transacción y es inmutable después.
// TotalAmount siempre es igual a la suma de los LineTotal de sus líneas
// (se valida al crear).
type Sale struct {
	ID           int64
	SaleDate     time.Time
	CustomerName string // vacío si no se registró cliente
	TotalAmount  decimal.Decimal
	CreatedAt    time.Time
	Items        []SaleItem
}
