package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/retail-backoffice/internal/domain/analytics"
)

// RevenueBucket resultado crudo de la consulta de ingresos por período.
// PeriodKey lleva el año explícito (ver analytics.BucketKey) y ordena
// lexicográficamente en orden cronológico.
type RevenueBucket struct {
	PeriodKey   string
	TotalAmount decimal.Decimal
}

// AnalyticsRepository define las consultas de lectura para los reportes de ventas.
// Las implementaciones son read-only (no modifican datos) y nunca fallan por
// "no hay filas": devuelven slices vacíos o cero.
type AnalyticsRepository interface {
	// RevenueByPeriod agrupa el total de ventas por bucket de período, en orden
	// ascendente de clave. Los buckets sin ventas se omiten (salida dispersa).
	// Los límites de fecha son inclusivos; nil = sin límite.
	RevenueByPeriod(
		ctx context.Context,
		period analytics.Period,
		startDate, endDate *time.Time,
	) ([]RevenueBucket, error)

	// SumRevenue suma total_amount de las ventas del rango inclusivo.
	// Si categoryID no es nil, restringe a ventas con al menos una línea cuyo
	// producto pertenece a esa categoría, contando cada venta una sola vez.
	// Devuelve cero si no hay ventas en el rango.
	SumRevenue(
		ctx context.Context,
		startDate, endDate time.Time,
		categoryID *int64,
	) (decimal.Decimal, error)
}
