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
)

func newQueryFixture(t *testing.T, store *saleStore) (*sales.QueryUseCase, *sales.CreateSaleUseCase) {
	t.Helper()
	createUC := sales.NewCreateSaleUseCase(&fakeSaleTxRunner{s: store})
	queryUC := sales.NewQueryUseCase(&fakeSaleRepo{s: store}, &fakeItemRepo{s: store})
	return queryUC, createUC
}

// mustSell registra una venta o aborta el test.
func mustSell(t *testing.T, uc *sales.CreateSaleUseCase, day string, items ...dto.SaleItemRequest) *entity.Sale {
	t.Helper()
	date, err := time.Parse("2006-01-02", day)
	require.NoError(t, err)
	sale, err := uc.CreateSale(context.Background(), dto.CreateSaleRequest{
		SaleDate: date.Add(12 * time.Hour),
		Items:    items,
	})
	require.NoError(t, err)
	return sale
}

func line(productID int64, qty int, price string) dto.SaleItemRequest {
	return dto.SaleItemRequest{ProductID: productID, Quantity: qty, UnitPrice: dec(price)}
}

// ──────────────────────────────────────────────────────────────────────────────
// FindSales
// ──────────────────────────────────────────────────────────────────────────────

// Una venta con dos líneas del mismo producto aparece exactamente una vez en el
// listado filtrado por ese producto.
func TestFindSales_DosLineasDelProductoUnaSolaVenta(t *testing.T) {
	store := newSaleStore(1, 2)
	queryUC, createUC := newQueryFixture(t, store)

	repeated := mustSell(t, createUC, "2026-08-10",
		line(1, 2, "10.00"),
		line(1, 1, "8.50"), // segunda línea del mismo producto
		line(2, 1, "3.00"))
	mustSell(t, createUC, "2026-08-11", line(2, 4, "3.00"))

	out, err := queryUC.FindSales(dto.SaleListQuery{ProductID: 1})
	require.NoError(t, err)

	require.Len(t, out, 1, "la venta no debe duplicarse por tener varias líneas coincidentes")
	assert.Equal(t, repeated.ID, out[0].ID)
	assert.Len(t, out[0].Items, 3, "la venta sale completa, con todas sus líneas")
}

// Filtro por categoría: cada venta cuenta una vez aunque varias de sus líneas
// pertenezcan a la categoría.
func TestFindSales_FiltroPorCategoriaSinDuplicados(t *testing.T) {
	store := newSaleStore(1, 2, 3)
	store.products[1].CategoryID = 10
	store.products[2].CategoryID = 10
	store.products[3].CategoryID = 20
	queryUC, createUC := newQueryFixture(t, store)

	inCategory := mustSell(t, createUC, "2026-08-10",
		line(1, 1, "10.00"),
		line(2, 1, "5.00")) // dos líneas de la categoría 10
	mustSell(t, createUC, "2026-08-11", line(3, 1, "7.00"))

	out, err := queryUC.FindSales(dto.SaleListQuery{CategoryID: 10})
	require.NoError(t, err)

	require.Len(t, out, 1)
	assert.Equal(t, inCategory.ID, out[0].ID)
}

// El rango de fechas es inclusivo a nivel de día y se combina con el filtro de
// producto en conjunción.
func TestFindSales_RangoYProductoEnConjuncion(t *testing.T) {
	store := newSaleStore(1, 2)
	queryUC, createUC := newQueryFixture(t, store)

	inRange := mustSell(t, createUC, "2026-08-10", line(1, 1, "10.00"))
	mustSell(t, createUC, "2026-08-20", line(1, 1, "10.00")) // fuera del rango
	mustSell(t, createUC, "2026-08-10", line(2, 1, "5.00"))  // otro producto

	out, err := queryUC.FindSales(dto.SaleListQuery{
		StartDate: "2026-08-10",
		EndDate:   "2026-08-10",
		ProductID: 1,
	})
	require.NoError(t, err)

	require.Len(t, out, 1)
	assert.Equal(t, inRange.ID, out[0].ID)
}

func TestFindSales_FechaMalformada(t *testing.T) {
	store := newSaleStore(1)
	queryUC, _ := newQueryFixture(t, store)

	_, err := queryUC.FindSales(dto.SaleListQuery{StartDate: "10/08/2026"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// La suma de los totales de las ventas filtradas por categoría coincide con lo
// que cada venta aporta una sola vez: 15.00 + 7.00, no 10.00 + 5.00 + 15.00.
func TestFindSales_TotalesSinMultiplicarPorLineas(t *testing.T) {
	store := newSaleStore(1, 2)
	store.products[1].CategoryID = 10
	store.products[2].CategoryID = 10
	queryUC, createUC := newQueryFixture(t, store)

	mustSell(t, createUC, "2026-08-10", line(1, 1, "10.00"), line(2, 1, "5.00"))
	mustSell(t, createUC, "2026-08-11", line(1, 1, "7.00"))

	out, err := queryUC.FindSales(dto.SaleListQuery{CategoryID: 10})
	require.NoError(t, err)

	total := decimal.Zero
	for _, s := range out {
		total = total.Add(s.TotalAmount)
	}
	assert.True(t, total.Equal(dec("22.00")),
		"total esperado 22.00, obtenido %s", total)
}
