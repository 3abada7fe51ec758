package dto

import "github.com/shopspring/decimal"

// ── Query parameters ──────────────────────────────────────────────────────────

// RevenueStatsRequest parámetros para GET /api/sales/stats.
type RevenueStatsRequest struct {
	Period    string `query:"period"`     // daily|weekly|monthly|yearly (obligatorio)
	StartDate string `query:"start_date"` // YYYY-MM-DD, inclusivo; vacío = sin límite
	EndDate   string `query:"end_date"`   // YYYY-MM-DD, inclusivo; vacío = sin límite
}

// CompareRequest parámetros para GET /api/sales/compare. Las cuatro fechas son
// obligatorias; los rangos pueden solaparse o venir en cualquier orden.
type CompareRequest struct {
	P1Start    string `query:"p1_start"`
	P1End      string `query:"p1_end"`
	P2Start    string `query:"p2_start"`
	P2End      string `query:"p2_end"`
	CategoryID int64  `query:"category_id"`
}

// ── Respuestas ────────────────────────────────────────────────────────────────

// RevenueBucketDTO un bucket del resumen de ingresos.
type RevenueBucketDTO struct {
	Period      string          `json:"period"`       // clave con año explícito, ej. "2024-W05"
	TotalAmount decimal.Decimal `json:"total_amount"`
}

// PeriodRevenueDTO ingresos de un rango de fechas.
type PeriodRevenueDTO struct {
	Start   string          `json:"start"`
	End     string          `json:"end"`
	Revenue decimal.Decimal `json:"revenue"`
}

// SalesComparisonDTO respuesta de GET /api/sales/compare.
// PercentChange es nil (JSON null) cuando el período 1 no tuvo ingresos:
// el cambio porcentual es indefinido, nunca infinito ni NaN.
type SalesComparisonDTO struct {
	Period1       PeriodRevenueDTO `json:"period1"`
	Period2       PeriodRevenueDTO `json:"period2"`
	Difference    decimal.Decimal  `json:"difference"`
	PercentChange *decimal.Decimal `json:"percent_change"`
}
