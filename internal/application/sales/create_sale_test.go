package sales_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/retail-backoffice/internal/application/dto"
	"github.com/jhoicas/retail-backoffice/internal/application/sales"
	"github.com/jhoicas/retail-backoffice/internal/domain"
	"github.com/jhoicas/retail-backoffice/internal/domain/entity"
	"github.com/jhoicas/retail-backoffice/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type saleStore struct {
	nextSaleID int64
	nextItemID int64
	products   map[int64]*entity.Product
	sales      []*entity.Sale
	items      []entity.SaleItem
}

func newSaleStore(productIDs ...int64) *saleStore {
	s := &saleStore{nextSaleID: 1, nextItemID: 1, products: map[int64]*entity.Product{}}
	for _, id := range productIDs {
		s.products[id] = &entity.Product{ID: id, Name: "producto", SKU: "SKU", Price: decimal.Zero}
	}
	return s
}

type fakeSaleRepo struct{ s *saleStore }

func (r *fakeSaleRepo) Create(sale *entity.Sale) error {
	sale.ID = r.s.nextSaleID
	r.s.nextSaleID++
	cp := *sale
	r.s.sales = append(r.s.sales, &cp)
	return nil
}

func (r *fakeSaleRepo) GetByID(id int64) (*entity.Sale, error) {
	for _, s := range r.s.sales {
		if s.ID == id {
			cp := *s
			return &cp, nil
		}
	}
	return nil, nil
}

// saleHasProduct reproduce el EXISTS sobre las líneas: basta con que alguna
// línea de la venta referencie el producto.
func (s *saleStore) saleHasProduct(saleID, productID int64) bool {
	for _, it := range s.items {
		if it.SaleID == saleID && it.ProductID == productID {
			return true
		}
	}
	return false
}

// saleHasCategory igual, pero pasando por la categoría del producto de la línea.
func (s *saleStore) saleHasCategory(saleID, categoryID int64) bool {
	for _, it := range s.items {
		if it.SaleID != saleID {
			continue
		}
		if p, ok := s.products[it.ProductID]; ok && p.CategoryID == categoryID {
			return true
		}
	}
	return false
}

func (r *fakeSaleRepo) Find(filter repository.SaleFilter, limit, offset int) ([]*entity.Sale, error) {
	var out []*entity.Sale
	for _, s := range r.s.sales {
		if filter.StartDate != nil && s.SaleDate.Before(*filter.StartDate) {
			continue
		}
		if filter.EndDate != nil && s.SaleDate.After(*filter.EndDate) {
			continue
		}
		if filter.ProductID != nil && !r.s.saleHasProduct(s.ID, *filter.ProductID) {
			continue
		}
		if filter.CategoryID != nil && !r.s.saleHasCategory(s.ID, *filter.CategoryID) {
			continue
		}
		cp := *s
		out = append(out, &cp)
	}
	// Paginación después del filtrado, como en el repositorio real.
	if offset >= len(out) {
		return nil, nil
	}
	out = out[offset:]
	if limit > 0 && limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}

type fakeItemRepo struct{ s *saleStore }

func (r *fakeItemRepo) CreateBatch(items []entity.SaleItem) error {
	for i := range items {
		items[i].ID = r.s.nextItemID
		r.s.nextItemID++
		r.s.items = append(r.s.items, items[i])
	}
	return nil
}

func (r *fakeItemRepo) ListBySale(saleID int64) ([]entity.SaleItem, error) {
	var out []entity.SaleItem
	for _, it := range r.s.items {
		if it.SaleID == saleID {
			out = append(out, it)
		}
	}
	return out, nil
}

func (r *fakeItemRepo) List(limit, offset int) ([]entity.SaleItem, error) {
	return append([]entity.SaleItem(nil), r.s.items...), nil
}

type fakeProductRepo struct{ s *saleStore }

func (r *fakeProductRepo) Create(p *entity.Product) error         { return nil }
func (r *fakeProductRepo) Update(p *entity.Product) error         { return nil }
func (r *fakeProductRepo) GetBySKU(string) (*entity.Product, error) { return nil, nil }
func (r *fakeProductRepo) List(int, int) ([]*entity.Product, error) { return nil, nil }

func (r *fakeProductRepo) GetByID(id int64) (*entity.Product, error) {
	p, ok := r.s.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

type fakeSaleTxRunner struct{ s *saleStore }

func (r *fakeSaleTxRunner) RunSale(ctx context.Context, fn func(
	saleRepo repository.SaleRepository,
	itemRepo repository.SaleItemRepository,
	productRepo repository.ProductRepository,
) error) error {
	return fn(&fakeSaleRepo{s: r.s}, &fakeItemRepo{s: r.s}, &fakeProductRepo{s: r.s})
}

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

// ──────────────────────────────────────────────────────────────────────────────
// CreateSale
// ──────────────────────────────────────────────────────────────────────────────

// Venta de dos líneas: 2 × 10.00 + 1 × 5.00 = 25.00, calculado en el servidor.
func TestCreateSale_TotalCalculadoEnServidor(t *testing.T) {
	store := newSaleStore(1, 2)
	uc := sales.NewCreateSaleUseCase(&fakeSaleTxRunner{s: store})

	sale, err := uc.CreateSale(context.Background(), dto.CreateSaleRequest{
		SaleDate:     time.Date(2026, 8, 15, 12, 0, 0, 0, time.UTC),
		CustomerName: "Ana",
		Items: []dto.SaleItemRequest{
			{ProductID: 1, Quantity: 2, UnitPrice: dec("10.00")},
			{ProductID: 2, Quantity: 1, UnitPrice: dec("5.00")},
		},
	})
	require.NoError(t, err)

	assert.True(t, sale.TotalAmount.Equal(dec("25.00")),
		"total esperado 25.00, obtenido %s", sale.TotalAmount)
	require.Len(t, sale.Items, 2)
	assert.True(t, sale.Items[0].LineTotal.Equal(dec("20.00")))
	assert.True(t, sale.Items[1].LineTotal.Equal(dec("5.00")))
	assert.Equal(t, sale.ID, sale.Items[0].SaleID)
}

// Un total del caller que coincide con la suma se acepta.
func TestCreateSale_TotalDelCallerCoincidente(t *testing.T) {
	store := newSaleStore(1)
	uc := sales.NewCreateSaleUseCase(&fakeSaleTxRunner{s: store})

	sale, err := uc.CreateSale(context.Background(), dto.CreateSaleRequest{
		SaleDate:    time.Now(),
		TotalAmount: dec("20.00"),
		Items: []dto.SaleItemRequest{
			{ProductID: 1, Quantity: 2, UnitPrice: dec("10.00"), LineTotal: dec("20.00")},
		},
	})
	require.NoError(t, err)
	assert.True(t, sale.TotalAmount.Equal(dec("20.00")))
}

// Un total que no coincide con la suma de las líneas se rechaza.
func TestCreateSale_TotalInconsistenteRechazado(t *testing.T) {
	store := newSaleStore(1)
	uc := sales.NewCreateSaleUseCase(&fakeSaleTxRunner{s: store})

	_, err := uc.CreateSale(context.Background(), dto.CreateSaleRequest{
		SaleDate:    time.Now(),
		TotalAmount: dec("99.99"),
		Items: []dto.SaleItemRequest{
			{ProductID: 1, Quantity: 2, UnitPrice: dec("10.00")},
		},
	})
	assert.ErrorIs(t, err, domain.ErrTotalMismatch)
	assert.Empty(t, store.sales, "el rechazo no debe persistir nada")
}

// line_total del caller inconsistente con cantidad × precio.
func TestCreateSale_LineTotalInconsistenteRechazado(t *testing.T) {
	store := newSaleStore(1)
	uc := sales.NewCreateSaleUseCase(&fakeSaleTxRunner{s: store})

	_, err := uc.CreateSale(context.Background(), dto.CreateSaleRequest{
		SaleDate: time.Now(),
		Items: []dto.SaleItemRequest{
			{ProductID: 1, Quantity: 2, UnitPrice: dec("10.00"), LineTotal: dec("15.00")},
		},
	})
	assert.ErrorIs(t, err, domain.ErrTotalMismatch)
}

func TestCreateSale_SinLineasEsInvalido(t *testing.T) {
	store := newSaleStore()
	uc := sales.NewCreateSaleUseCase(&fakeSaleTxRunner{s: store})

	_, err := uc.CreateSale(context.Background(), dto.CreateSaleRequest{
		SaleDate: time.Now(),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCreateSale_CantidadCeroEsInvalida(t *testing.T) {
	store := newSaleStore(1)
	uc := sales.NewCreateSaleUseCase(&fakeSaleTxRunner{s: store})

	_, err := uc.CreateSale(context.Background(), dto.CreateSaleRequest{
		SaleDate: time.Now(),
		Items: []dto.SaleItemRequest{
			{ProductID: 1, Quantity: 0, UnitPrice: dec("10.00")},
		},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Producto inexistente: nada se persiste.
func TestCreateSale_ProductoInexistente(t *testing.T) {
	store := newSaleStore(1)
	uc := sales.NewCreateSaleUseCase(&fakeSaleTxRunner{s: store})

	_, err := uc.CreateSale(context.Background(), dto.CreateSaleRequest{
		SaleDate: time.Now(),
		Items: []dto.SaleItemRequest{
			{ProductID: 42, Quantity: 1, UnitPrice: dec("10.00")},
		},
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, store.sales)
	assert.Empty(t, store.items)
}

// Precio unitario cero es válido (regalos, promociones).
func TestCreateSale_PrecioCeroEsValido(t *testing.T) {
	store := newSaleStore(1)
	uc := sales.NewCreateSaleUseCase(&fakeSaleTxRunner{s: store})

	sale, err := uc.CreateSale(context.Background(), dto.CreateSaleRequest{
		SaleDate: time.Now(),
		Items: []dto.SaleItemRequest{
			{ProductID: 1, Quantity: 3, UnitPrice: decimal.Zero},
		},
	})
	require.NoError(t, err)
	assert.True(t, sale.TotalAmount.IsZero())
}
