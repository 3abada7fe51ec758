package entity

import "time"

// Razón por defecto cuando un ajuste de stock no trae motivo explícito.
const DefaultAdjustmentReason = "Manual adjustment"

// InventoryHistory representa una entrada del historial de inventario
// (append-only; nunca se modifica ni se borra, salvo cascada del Inventory).
// ChangeQty positivo = entrada de stock, negativo = salida.
// AdjustmentID agrupa las escrituras de una misma operación de ajuste.
type InventoryHistory struct {
	ID           int64
	InventoryID  int64
	ProductID    int64 // desnormalizado para filtrar sin join
	ChangeQty    int
	Reason       string
	AdjustmentID string
	ChangedAt    time.Time
}
