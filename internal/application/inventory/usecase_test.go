package inventory_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/retail-backoffice/internal/application/inventory"
	"github.com/jhoicas/retail-backoffice/internal/domain"
	"github.com/jhoicas/retail-backoffice/internal/domain/entity"
	"github.com/jhoicas/retail-backoffice/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

// memStore agrupa el estado compartido entre los repos fake y el runner.
type memStore struct {
	nextInvID  int64
	nextHistID int64
	inventory  map[int64]*entity.Inventory // por product_id
	history    []*entity.InventoryHistory
}

func newMemStore() *memStore {
	return &memStore{nextInvID: 1, nextHistID: 1, inventory: map[int64]*entity.Inventory{}}
}

type fakeInvRepo struct{ s *memStore }

func (r *fakeInvRepo) GetByProductID(productID int64) (*entity.Inventory, error) {
	inv, ok := r.s.inventory[productID]
	if !ok {
		return nil, nil
	}
	cp := *inv
	return &cp, nil
}

func (r *fakeInvRepo) GetByProductIDForUpdate(productID int64) (*entity.Inventory, error) {
	return r.GetByProductID(productID)
}

func (r *fakeInvRepo) Create(inv *entity.Inventory) error {
	inv.ID = r.s.nextInvID
	r.s.nextInvID++
	cp := *inv
	r.s.inventory[inv.ProductID] = &cp
	return nil
}

func (r *fakeInvRepo) Update(inv *entity.Inventory) error {
	cp := *inv
	r.s.inventory[inv.ProductID] = &cp
	return nil
}

func (r *fakeInvRepo) List(limit, offset int) ([]*entity.Inventory, error) {
	var out []*entity.Inventory
	for _, inv := range r.s.inventory {
		cp := *inv
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeInvRepo) ListLowStock() ([]*entity.Inventory, error) {
	var out []*entity.Inventory
	for _, inv := range r.s.inventory {
		if inv.LowStock() {
			cp := *inv
			out = append(out, &cp)
		}
	}
	return out, nil
}

type fakeHistRepo struct{ s *memStore }

func (r *fakeHistRepo) Create(entry *entity.InventoryHistory) error {
	entry.ID = r.s.nextHistID
	r.s.nextHistID++
	cp := *entry
	r.s.history = append(r.s.history, &cp)
	return nil
}

func (r *fakeHistRepo) List(filter repository.HistoryFilter, limit, offset int) ([]*entity.InventoryHistory, error) {
	var out []*entity.InventoryHistory
	for _, h := range r.s.history {
		if filter.InventoryID != nil && h.InventoryID != *filter.InventoryID {
			continue
		}
		if filter.ProductID != nil && h.ProductID != *filter.ProductID {
			continue
		}
		cp := *h
		out = append(out, &cp)
	}
	return out, nil
}

// fakeTxRunner ejecuta el callback directamente sobre los fakes; sin
// transacción real, pero con la misma forma que el runner de producción.
type fakeTxRunner struct{ s *memStore }

func (r *fakeTxRunner) Run(ctx context.Context, fn func(
	invRepo repository.InventoryRepository,
	histRepo repository.InventoryHistoryRepository,
) error) error {
	return fn(&fakeInvRepo{s: r.s}, &fakeHistRepo{s: r.s})
}

func newLedger() (*inventory.LedgerUseCase, *memStore) {
	s := newMemStore()
	uc := inventory.NewLedgerUseCase(&fakeTxRunner{s: s}, &fakeInvRepo{s: s}, &fakeHistRepo{s: s})
	return uc, s
}

func intPtr(n int) *int { return &n }

// sumHistory suma los deltas del historial de un producto.
func sumHistory(s *memStore, productID int64) int {
	total := 0
	for _, h := range s.history {
		if h.ProductID == productID {
			total += h.ChangeQty
		}
	}
	return total
}

// ──────────────────────────────────────────────────────────────────────────────
// UpdateStock
// ──────────────────────────────────────────────────────────────────────────────

// Primera escritura: crea el registro sin historial (no hay cantidad previa
// contra la cual calcular un delta).
func TestUpdateStock_CreacionPerezosaSinHistorial(t *testing.T) {
	uc, s := newLedger()

	inv, err := uc.UpdateStock(context.Background(), 7, intPtr(40), intPtr(5), "")
	require.NoError(t, err)

	assert.Equal(t, 40, inv.QuantityOnHand)
	assert.Equal(t, 5, inv.ReorderThreshold)
	assert.Empty(t, s.history, "la declaración inicial no debe generar historial")
}

// Cambio de cantidad sobre un registro existente: delta en el historial,
// escrito en la misma operación.
func TestUpdateStock_DeltaQuedaEnHistorial(t *testing.T) {
	uc, s := newLedger()

	_, err := uc.UpdateStock(context.Background(), 7, intPtr(40), intPtr(5), "")
	require.NoError(t, err)

	inv, err := uc.UpdateStock(context.Background(), 7, intPtr(25), nil, "Conteo físico")
	require.NoError(t, err)

	assert.Equal(t, 25, inv.QuantityOnHand)
	require.Len(t, s.history, 1)
	entry := s.history[0]
	assert.Equal(t, -15, entry.ChangeQty, "el delta debe ser nueva − anterior")
	assert.Equal(t, "Conteo físico", entry.Reason)
	assert.NotEmpty(t, entry.AdjustmentID)
}

// Fijar la misma cantidad no es un ajuste: sin entrada de historial.
func TestUpdateStock_SinCambioNoGeneraHistorial(t *testing.T) {
	uc, s := newLedger()

	_, err := uc.UpdateStock(context.Background(), 7, intPtr(40), nil, "")
	require.NoError(t, err)
	_, err = uc.UpdateStock(context.Background(), 7, intPtr(40), nil, "")
	require.NoError(t, err)

	assert.Empty(t, s.history)
}

// Cambiar solo el umbral no toca la cantidad ni el historial.
func TestUpdateStock_SoloUmbral(t *testing.T) {
	uc, s := newLedger()

	_, err := uc.UpdateStock(context.Background(), 7, intPtr(40), intPtr(5), "")
	require.NoError(t, err)

	inv, err := uc.UpdateStock(context.Background(), 7, nil, intPtr(10), "")
	require.NoError(t, err)

	assert.Equal(t, 40, inv.QuantityOnHand)
	assert.Equal(t, 10, inv.ReorderThreshold)
	assert.Empty(t, s.history)
}

// Razón vacía usa la razón por defecto.
func TestUpdateStock_RazonPorDefecto(t *testing.T) {
	uc, s := newLedger()

	_, err := uc.UpdateStock(context.Background(), 7, intPtr(40), nil, "")
	require.NoError(t, err)
	_, err = uc.UpdateStock(context.Background(), 7, intPtr(38), nil, "")
	require.NoError(t, err)

	require.Len(t, s.history, 1)
	assert.Equal(t, entity.DefaultAdjustmentReason, s.history[0].Reason)
}

func TestUpdateStock_SinCamposEsInvalido(t *testing.T) {
	uc, _ := newLedger()

	_, err := uc.UpdateStock(context.Background(), 7, nil, nil, "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestUpdateStock_UmbralNegativoEsInvalido(t *testing.T) {
	uc, _ := newLedger()

	_, err := uc.UpdateStock(context.Background(), 7, intPtr(10), intPtr(-1), "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// ListLowStock
// ──────────────────────────────────────────────────────────────────────────────

// El umbral es inclusivo: cantidad igual al umbral cuenta como stock bajo,
// umbral + 1 queda fuera.
func TestListLowStock_UmbralInclusivo(t *testing.T) {
	uc, _ := newLedger()
	ctx := context.Background()

	_, err := uc.UpdateStock(ctx, 1, intPtr(5), intPtr(5), "") // en el umbral
	require.NoError(t, err)
	_, err = uc.UpdateStock(ctx, 2, intPtr(6), intPtr(5), "") // justo encima
	require.NoError(t, err)
	_, err = uc.UpdateStock(ctx, 3, intPtr(0), intPtr(5), "") // agotado
	require.NoError(t, err)

	low, err := uc.ListLowStock()
	require.NoError(t, err)

	var ids []int64
	for _, inv := range low {
		ids = append(ids, inv.ProductID)
	}
	assert.ElementsMatch(t, []int64{1, 3}, ids,
		"cantidad == umbral entra, umbral + 1 queda fuera")
}

// ──────────────────────────────────────────────────────────────────────────────
// RecordAdjustment
// ──────────────────────────────────────────────────────────────────────────────

func TestRecordAdjustment_AplicaDeltaYRegistra(t *testing.T) {
	uc, _ := newLedger()

	_, err := uc.UpdateStock(context.Background(), 7, intPtr(40), nil, "")
	require.NoError(t, err)

	entry, err := uc.RecordAdjustment(context.Background(), 7, -3, "Merma")
	require.NoError(t, err)

	assert.Equal(t, -3, entry.ChangeQty)
	assert.Equal(t, "Merma", entry.Reason)

	inv, err := uc.Get(7)
	require.NoError(t, err)
	assert.Equal(t, 37, inv.QuantityOnHand, "el delta debe aplicarse al stock")
}

func TestRecordAdjustment_DeltaCeroEsInvalido(t *testing.T) {
	uc, _ := newLedger()

	_, err := uc.RecordAdjustment(context.Background(), 7, 0, "nada")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRecordAdjustment_ProductoSinInventario(t *testing.T) {
	uc, _ := newLedger()

	_, err := uc.RecordAdjustment(context.Background(), 99, 5, "")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Un delta que dejaría el stock en negativo se rechaza sin tocar nada.
func TestRecordAdjustment_StockNegativoRechazado(t *testing.T) {
	uc, s := newLedger()

	_, err := uc.UpdateStock(context.Background(), 7, intPtr(2), nil, "")
	require.NoError(t, err)

	_, err = uc.RecordAdjustment(context.Background(), 7, -5, "")
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	inv, err := uc.Get(7)
	require.NoError(t, err)
	assert.Equal(t, 2, inv.QuantityOnHand, "el rechazo no debe modificar el stock")
	assert.Empty(t, s.history)
}

// Tras cualquier secuencia de ajustes, la cantidad en mano es la cantidad
// inicial más la suma de los deltas del historial.
func TestLedger_CantidadIgualInicialMasSumaDeltas(t *testing.T) {
	uc, s := newLedger()
	ctx := context.Background()

	_, err := uc.UpdateStock(ctx, 7, intPtr(100), intPtr(10), "")
	require.NoError(t, err)

	_, err = uc.RecordAdjustment(ctx, 7, -12, "Venta")
	require.NoError(t, err)
	_, err = uc.RecordAdjustment(ctx, 7, 30, "Reposición")
	require.NoError(t, err)
	_, err = uc.UpdateStock(ctx, 7, intPtr(95), nil, "Conteo físico")
	require.NoError(t, err)

	inv, err := uc.Get(7)
	require.NoError(t, err)
	assert.Equal(t, 95, inv.QuantityOnHand)
	assert.Equal(t, 100+sumHistory(s, 7), inv.QuantityOnHand,
		"cantidad == inicial + suma de deltas del historial")
}
