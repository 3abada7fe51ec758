package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/retail-backoffice/internal/domain/entity"
	"github.com/jhoicas/retail-backoffice/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo implementación de SaleRepository sobre PostgreSQL (usable con pool o tx).
type SaleRepo struct {
	q Querier
}

// NewSaleRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

// Create persiste la cabecera de la venta y deja el id generado en la entidad.
// Las líneas se insertan aparte (SaleItemRepository) dentro de la misma tx.
func (r *SaleRepo) Create(sale *entity.Sale) error {
	query := `
		INSERT INTO sales (sale_date, customer_name, total_amount, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id`
	customerName := (*string)(nil)
	if sale.CustomerName != "" {
		customerName = &sale.CustomerName
	}
	err := r.q.QueryRow(context.Background(), query,
		sale.SaleDate, customerName, sale.TotalAmount, sale.CreatedAt,
	).Scan(&sale.ID)
	if err != nil {
		return fmt.Errorf("insert sale: %w", err)
	}
	return nil
}

// GetByID obtiene una venta por ID (sin líneas); nil si no existe.
func (r *SaleRepo) GetByID(id int64) (*entity.Sale, error) {
	query := `
		SELECT id, sale_date, customer_name, total_amount, created_at
		FROM sales WHERE id = $1`
	var s entity.Sale
	var customerName *string
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&s.ID, &s.SaleDate, &customerName, &s.TotalAmount, &s.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sale: %w", err)
	}
	if customerName != nil {
		s.CustomerName = *customerName
	}
	return &s, nil
}

// Find lista ventas con filtros opcionales conjuntivos. Los filtros de
// producto y categoría usan EXISTS sobre sale_items: cada venta sale una sola
// vez aunque varias líneas coincidan (semántica de conjunto, no de join), y
// el LIMIT/OFFSET se aplica después del filtrado.
func (r *SaleRepo) Find(filter repository.SaleFilter, limit, offset int) ([]*entity.Sale, error) {
	query := `
		SELECT id, sale_date, customer_name, total_amount, created_at
		FROM sales WHERE 1=1`
	var args []any
	pos := 1
	if filter.StartDate != nil {
		query += fmt.Sprintf(" AND sale_date >= $%d", pos)
		args = append(args, *filter.StartDate)
		pos++
	}
	if filter.EndDate != nil {
		query += fmt.Sprintf(" AND sale_date <= $%d", pos)
		args = append(args, *filter.EndDate)
		pos++
	}
	if filter.ProductID != nil {
		query += fmt.Sprintf(`
		AND EXISTS (
			SELECT 1 FROM sale_items si
			WHERE si.sale_id = sales.id AND si.product_id = $%d)`, pos)
		args = append(args, *filter.ProductID)
		pos++
	}
	if filter.CategoryID != nil {
		query += fmt.Sprintf(`
		AND EXISTS (
			SELECT 1 FROM sale_items si
			JOIN products p ON p.id = si.product_id
			WHERE si.sale_id = sales.id AND p.category_id = $%d)`, pos)
		args = append(args, *filter.CategoryID)
		pos++
	}
	query += fmt.Sprintf(" ORDER BY sale_date DESC, id DESC LIMIT $%d OFFSET $%d", pos, pos+1)
	args = append(args, limit, offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("find sales: %w", err)
	}
	defer rows.Close()
	var list []*entity.Sale
	for rows.Next() {
		var s entity.Sale
		var customerName *string
		if err := rows.Scan(&s.ID, &s.SaleDate, &customerName, &s.TotalAmount, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan sale: %w", err)
		}
		if customerName != nil {
			s.CustomerName = *customerName
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}
