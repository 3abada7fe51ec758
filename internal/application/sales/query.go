package sales

import (
	"time"

	"github.com/jhoicas/retail-backoffice/internal/application/dto"
	"github.com/jhoicas/retail-backoffice/internal/domain"
	"github.com/jhoicas/retail-backoffice/internal/domain/entity"
	"github.com/jhoicas/retail-backoffice/internal/domain/repository"
)

// QueryUseCase resuelve listados de ventas por rango de fechas, producto y/o
// categoría. Los filtros de producto/categoría se evalúan con EXISTS en el
// repositorio: ventas distintas aunque varias líneas coincidan, y la
// paginación se aplica después del filtrado.
type QueryUseCase struct {
	saleRepo repository.SaleRepository
	itemRepo repository.SaleItemRepository
}

// NewQueryUseCase construye el caso de uso.
func NewQueryUseCase(saleRepo repository.SaleRepository, itemRepo repository.SaleItemRepository) *QueryUseCase {
	return &QueryUseCase{saleRepo: saleRepo, itemRepo: itemRepo}
}

// FindSales devuelve las ventas que cumplen todos los filtros, con sus líneas.
func (uc *QueryUseCase) FindSales(q dto.SaleListQuery) ([]*entity.Sale, error) {
	q.DefaultPage()

	filter := repository.SaleFilter{}
	if q.StartDate != "" {
		start, err := parseDay(q.StartDate)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		filter.StartDate = &start
	}
	if q.EndDate != "" {
		end, err := parseDay(q.EndDate)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		end = endOfDay(end)
		filter.EndDate = &end
	}
	if q.ProductID > 0 {
		filter.ProductID = &q.ProductID
	}
	if q.CategoryID > 0 {
		filter.CategoryID = &q.CategoryID
	}

	list, err := uc.saleRepo.Find(filter, q.Limit, q.Skip)
	if err != nil {
		return nil, err
	}
	for _, s := range list {
		items, err := uc.itemRepo.ListBySale(s.ID)
		if err != nil {
			return nil, err
		}
		s.Items = items
	}
	return list, nil
}

// GetSale devuelve una venta con sus líneas.
func (uc *QueryUseCase) GetSale(id int64) (*entity.Sale, error) {
	sale, err := uc.saleRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, domain.ErrNotFound
	}
	items, err := uc.itemRepo.ListBySale(sale.ID)
	if err != nil {
		return nil, err
	}
	sale.Items = items
	return sale, nil
}

// ListSaleItems listado crudo de líneas de venta (paginado).
func (uc *QueryUseCase) ListSaleItems(limit, offset int) ([]entity.SaleItem, error) {
	return uc.itemRepo.List(limit, offset)
}

// parseDay interpreta una fecha YYYY-MM-DD como día UTC, la misma convención
// que usan los reportes para los límites de rango.
func parseDay(s string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02", s, time.UTC)
}

// endOfDay corre la fecha al último instante del día para que el límite
// superior del rango sea inclusivo a nivel de día.
func endOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location()).
		Add(24*time.Hour - time.Nanosecond)
}
