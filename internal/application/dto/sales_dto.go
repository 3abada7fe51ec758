package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/retail-backoffice/internal/domain/entity"
)

// ── Creación ──────────────────────────────────────────────────────────────────

// SaleItemRequest línea de venta en POST /api/sales.
// LineTotal es opcional: si viene, debe coincidir con Quantity × UnitPrice.
type SaleItemRequest struct {
	ProductID int64           `json:"product_id"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	LineTotal decimal.Decimal `json:"line_total"`
}

// CreateSaleRequest cuerpo de POST /api/sales.
// TotalAmount es opcional: cero significa "calcularlo"; un valor distinto de la
// suma de las líneas se rechaza.
type CreateSaleRequest struct {
	SaleDate     time.Time         `json:"sale_date"`
	CustomerName string            `json:"customer_name"`
	TotalAmount  decimal.Decimal   `json:"total_amount"`
	Items        []SaleItemRequest `json:"items"`
}

// ── Listados ──────────────────────────────────────────────────────────────────

// SaleListQuery parámetros de GET /api/sales (fechas YYYY-MM-DD, inclusivas).
type SaleListQuery struct {
	StartDate  string `query:"start_date"`
	EndDate    string `query:"end_date"`
	ProductID  int64  `query:"product_id"`
	CategoryID int64  `query:"category_id"`
	PageRequest
}

// ── Respuestas ────────────────────────────────────────────────────────────────

// SaleItemResponse línea de venta en respuestas.
type SaleItemResponse struct {
	ID        int64           `json:"id"`
	SaleID    int64           `json:"sale_id"`
	ProductID int64           `json:"product_id"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	LineTotal decimal.Decimal `json:"line_total"`
}

// SaleResponse representación JSON de una venta con sus líneas.
type SaleResponse struct {
	ID           int64              `json:"id"`
	SaleDate     time.Time          `json:"sale_date"`
	CustomerName string             `json:"customer_name,omitempty"`
	TotalAmount  decimal.Decimal    `json:"total_amount"`
	CreatedAt    time.Time          `json:"created_at"`
	Items        []SaleItemResponse `json:"items"`
}

// NewSaleResponse convierte la entidad en DTO.
func NewSaleResponse(s *entity.Sale) SaleResponse {
	items := make([]SaleItemResponse, 0, len(s.Items))
	for _, it := range s.Items {
		items = append(items, SaleItemResponse{
			ID:        it.ID,
			SaleID:    it.SaleID,
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
			LineTotal: it.LineTotal,
		})
	}
	return SaleResponse{
		ID:           s.ID,
		SaleDate:     s.SaleDate,
		CustomerName: s.CustomerName,
		TotalAmount:  s.TotalAmount,
		CreatedAt:    s.CreatedAt,
		Items:        items,
	}
}

// NewSaleResponses convierte un listado de ventas.
func NewSaleResponses(sales []*entity.Sale) []SaleResponse {
	out := make([]SaleResponse, 0, len(sales))
	for _, s := range sales {
		out = append(out, NewSaleResponse(s))
	}
	return out
}
