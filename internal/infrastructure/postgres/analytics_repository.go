package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/retail-backoffice/internal/domain/analytics"
	"github.com/jhoicas/retail-backoffice/internal/domain/repository"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo consultas de solo lectura para los reportes de ventas.
type AnalyticsRepo struct {
	pool *pgxpool.Pool
}

// NewAnalyticsRepository construye el adaptador de analítica.
func NewAnalyticsRepository(pool *pgxpool.Pool) *AnalyticsRepo {
	return &AnalyticsRepo{pool: pool}
}

// periodKeyFormat devuelve el patrón to_char que produce la misma clave que
// analytics.BucketKey para cada período. Las claves llevan el año (IYYY para
// semanas ISO) y ordenan lexicográficamente en orden cronológico.
func periodKeyFormat(p analytics.Period) (string, error) {
	switch p {
	case analytics.PeriodDaily:
		return "YYYY-MM-DD", nil
	case analytics.PeriodWeekly:
		return `IYYY-"W"IW`, nil
	case analytics.PeriodMonthly:
		return "YYYY-MM", nil
	case analytics.PeriodYearly:
		return "YYYY", nil
	}
	return "", fmt.Errorf("período no soportado: %q", p)
}

// RevenueByPeriod agrupa el total de ventas por bucket del período, en orden
// ascendente de clave. Buckets sin ventas no aparecen (salida dispersa);
// un rango sin ventas devuelve un slice vacío.
//
// El bucket se calcula en UTC (AT TIME ZONE 'UTC'), la misma zona en la que el
// caso de uso interpreta los límites del rango. Sin el pin, to_char usaría la
// TimeZone de la sesión y una venta cerca de medianoche caería en el bucket
// diario vecino cuando servidor y base de datos no coinciden en zona.
func (r *AnalyticsRepo) RevenueByPeriod(
	ctx context.Context,
	period analytics.Period,
	startDate, endDate *time.Time,
) ([]repository.RevenueBucket, error) {
	format, err := periodKeyFormat(period)
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf(`
	SELECT
	    to_char(sale_date AT TIME ZONE 'UTC', '%s') AS period,
	    SUM(total_amount)        AS total_amount
	FROM sales
	WHERE 1=1`, format)
	var args []any
	pos := 1
	if startDate != nil {
		query += fmt.Sprintf(" AND sale_date >= $%d", pos)
		args = append(args, *startDate)
		pos++
	}
	if endDate != nil {
		query += fmt.Sprintf(" AND sale_date <= $%d", pos)
		args = append(args, *endDate)
		pos++
	}
	query += " GROUP BY 1 ORDER BY 1"

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("analytics.RevenueByPeriod: %w", err)
	}
	defer rows.Close()

	var buckets []repository.RevenueBucket
	for rows.Next() {
		var b repository.RevenueBucket
		if err := rows.Scan(&b.PeriodKey, &b.TotalAmount); err != nil {
			return nil, fmt.Errorf("analytics.RevenueByPeriod scan: %w", err)
		}
		buckets = append(buckets, b)
	}
	return buckets, rows.Err()
}

// SumRevenue suma total_amount de las ventas del rango inclusivo. El filtro de
// categoría se resuelve con EXISTS sobre las líneas de venta: una venta con
// varias líneas de la categoría cuenta una sola vez (un join multiplicaría el
// total). COALESCE devuelve cero si el rango no tiene ventas.
func (r *AnalyticsRepo) SumRevenue(
	ctx context.Context,
	startDate, endDate time.Time,
	categoryID *int64,
) (decimal.Decimal, error) {
	query := `
	SELECT COALESCE(SUM(total_amount), 0)
	FROM sales
	WHERE sale_date >= $1 AND sale_date <= $2`
	args := []any{startDate, endDate}
	if categoryID != nil {
		query += `
	  AND EXISTS (
	      SELECT 1 FROM sale_items si
	      JOIN products p ON p.id = si.product_id
	      WHERE si.sale_id = sales.id AND p.category_id = $3)`
		args = append(args, *categoryID)
	}

	var total decimal.Decimal
	if err := r.pool.QueryRow(ctx, query, args...).Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("analytics.SumRevenue: %w", err)
	}
	return total, nil
}
