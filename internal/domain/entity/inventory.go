package entity

// Inventory representa el nivel de stock actual de un producto (uno a uno).
// Se crea de forma perezosa en el primer ajuste de stock.
//
// Invariante del ledger: QuantityOnHand == suma de ChangeQty de todas sus
// entradas de historial. Ambas vías de mutación (ajuste absoluto y apunte
// de auditoría) escriben cantidad e historial en la misma transacción.
type Inventory struct {
	ID               int64
	ProductID        int64 // único
	QuantityOnHand   int
	ReorderThreshold int
}

// LowStock reporta si el stock está en o por debajo del umbral de reorden.
func (i Inventory) LowStock() bool {
	return i.QuantityOnHand <= i.ReorderThreshold
}
