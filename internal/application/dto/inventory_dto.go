package dto

import (
	"time"

	"github.com/jhoicas/retail-backoffice/internal/domain/entity"
)

// UpdateInventoryRequest cuerpo de PATCH /api/inventory/{productId}.
// Campos nil conservan el valor actual. Reason vacío usa la razón por defecto.
type UpdateInventoryRequest struct {
	QuantityOnHand   *int   `json:"quantity_on_hand"`
	ReorderThreshold *int   `json:"reorder_threshold"`
	Reason           string `json:"reason"`
}

// RecordAdjustmentRequest cuerpo de POST /api/inventory/{productId}/history.
// ChangeQty es un delta firmado que se aplica al stock y queda en el historial.
type RecordAdjustmentRequest struct {
	ChangeQty int    `json:"change_qty"`
	Reason    string `json:"reason"`
}

// HistoryQuery parámetros de GET /api/inventory/history.
type HistoryQuery struct {
	InventoryID int64 `query:"inventory_id"`
	ProductID   int64 `query:"product_id"`
	PageRequest
}

// InventoryResponse representación JSON de un registro de inventario.
type InventoryResponse struct {
	ID               int64 `json:"id"`
	ProductID        int64 `json:"product_id"`
	QuantityOnHand   int   `json:"quantity_on_hand"`
	ReorderThreshold int   `json:"reorder_threshold"`
}

// NewInventoryResponse convierte la entidad en DTO.
func NewInventoryResponse(inv *entity.Inventory) InventoryResponse {
	return InventoryResponse{
		ID:               inv.ID,
		ProductID:        inv.ProductID,
		QuantityOnHand:   inv.QuantityOnHand,
		ReorderThreshold: inv.ReorderThreshold,
	}
}

// NewInventoryResponses convierte un listado de inventarios.
func NewInventoryResponses(list []*entity.Inventory) []InventoryResponse {
	out := make([]InventoryResponse, 0, len(list))
	for _, inv := range list {
		out = append(out, NewInventoryResponse(inv))
	}
	return out
}

// HistoryResponse representación JSON de una entrada del historial.
type HistoryResponse struct {
	ID           int64     `json:"id"`
	InventoryID  int64     `json:"inventory_id"`
	ProductID    int64     `json:"product_id"`
	ChangeQty    int       `json:"change_qty"`
	Reason       string    `json:"reason"`
	AdjustmentID string    `json:"adjustment_id"`
	ChangedAt    time.Time `json:"changed_at"`
}

// NewHistoryResponse convierte la entidad en DTO.
func NewHistoryResponse(h *entity.InventoryHistory) HistoryResponse {
	return HistoryResponse{
		ID:           h.ID,
		InventoryID:  h.InventoryID,
		ProductID:    h.ProductID,
		ChangeQty:    h.ChangeQty,
		Reason:       h.Reason,
		AdjustmentID: h.AdjustmentID,
		ChangedAt:    h.ChangedAt,
	}
}

// NewHistoryResponses convierte un listado de entradas de historial.
func NewHistoryResponses(list []*entity.InventoryHistory) []HistoryResponse {
	out := make([]HistoryResponse, 0, len(list))
	for _, h := range list {
		out = append(out, NewHistoryResponse(h))
	}
	return out
}
