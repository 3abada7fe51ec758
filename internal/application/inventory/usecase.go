// Package inventory implementa el ledger de stock: nivel actual por producto
// más un historial de auditoría append-only, con la regla de consistencia de
// que la cantidad en mano siempre es igual a la suma de los deltas del historial.
package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/retail-backoffice/internal/domain"
	"github.com/jhoicas/retail-backoffice/internal/domain/entity"
	"github.com/jhoicas/retail-backoffice/internal/domain/repository"
)

// LedgerUseCase mantiene el nivel de stock por producto y su historial.
// Toda mutación pasa por una transacción con bloqueo de fila (SELECT FOR
// UPDATE), de modo que el invariante cantidad == suma(historial) no puede
// romperse por un lost update ni por una escritura a medias.
type LedgerUseCase struct {
	txRunner TxRunner
	invRepo  repository.InventoryRepository
	histRepo repository.InventoryHistoryRepository
}

// NewLedgerUseCase construye el caso de uso. invRepo y histRepo van atados al
// pool y solo se usan para lecturas; las mutaciones usan los repos de la tx.
func NewLedgerUseCase(
	txRunner TxRunner,
	invRepo repository.InventoryRepository,
	histRepo repository.InventoryHistoryRepository,
) *LedgerUseCase {
	return &LedgerUseCase{txRunner: txRunner, invRepo: invRepo, histRepo: histRepo}
}

// Get devuelve el inventario de un producto.
func (uc *LedgerUseCase) Get(productID int64) (*entity.Inventory, error) {
	inv, err := uc.invRepo.GetByProductID(productID)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, domain.ErrNotFound
	}
	return inv, nil
}

// List devuelve los inventarios en orden de inserción (id ascendente).
func (uc *LedgerUseCase) List(limit, offset int) ([]*entity.Inventory, error) {
	return uc.invRepo.List(limit, offset)
}

// ListLowStock devuelve los inventarios con cantidad en o por debajo de su
// umbral de reorden. Escaneo completo: aceptable a escala de back-office.
func (uc *LedgerUseCase) ListLowStock() ([]*entity.Inventory, error) {
	return uc.invRepo.ListLowStock()
}

// ListHistory devuelve entradas de historial, más recientes primero,
// opcionalmente filtradas por inventario y/o producto (AND).
func (uc *LedgerUseCase) ListHistory(filter repository.HistoryFilter, limit, offset int) ([]*entity.InventoryHistory, error) {
	return uc.histRepo.List(filter, limit, offset)
}

// UpdateStock fija la cantidad y/o el umbral de un producto.
//
// Si no existe registro, lo crea con los valores dados y SIN historial: es una
// declaración inicial, no hay cantidad previa contra la cual calcular un delta.
// Si existe, calcula delta = nueva − anterior y, si es distinto de cero,
// añade la entrada de historial en la misma transacción. Campos nil conservan
// el valor actual; reason vacío usa la razón por defecto.
func (uc *LedgerUseCase) UpdateStock(
	ctx context.Context,
	productID int64,
	newQuantity, newThreshold *int,
	reason string,
) (*entity.Inventory, error) {
	if newQuantity == nil && newThreshold == nil {
		return nil, domain.ErrInvalidInput
	}
	if newThreshold != nil && *newThreshold < 0 {
		return nil, domain.ErrInvalidInput
	}
	if reason == "" {
		reason = entity.DefaultAdjustmentReason
	}

	var result *entity.Inventory
	err := uc.txRunner.Run(ctx, func(
		invRepo repository.InventoryRepository,
		histRepo repository.InventoryHistoryRepository,
	) error {
		inv, err := invRepo.GetByProductIDForUpdate(productID)
		if err != nil {
			return err
		}
		if inv == nil {
			inv = &entity.Inventory{ProductID: productID}
			if newQuantity != nil {
				inv.QuantityOnHand = *newQuantity
			}
			if newThreshold != nil {
				inv.ReorderThreshold = *newThreshold
			}
			if err := invRepo.Create(inv); err != nil {
				return err
			}
			result = inv
			return nil
		}

		delta := 0
		if newQuantity != nil {
			delta = *newQuantity - inv.QuantityOnHand
			inv.QuantityOnHand = *newQuantity
		}
		if newThreshold != nil {
			inv.ReorderThreshold = *newThreshold
		}
		if err := invRepo.Update(inv); err != nil {
			return err
		}
		if delta != 0 {
			entry := &entity.InventoryHistory{
				InventoryID:  inv.ID,
				ProductID:    inv.ProductID,
				ChangeQty:    delta,
				Reason:       reason,
				AdjustmentID: uuid.New().String(),
				ChangedAt:    time.Now(),
			}
			if err := histRepo.Create(entry); err != nil {
				return err
			}
		}
		result = inv
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// RecordAdjustment aplica un delta firmado al stock y deja la entrada de
// auditoría, todo en una transacción. A diferencia de UpdateStock no fija un
// absoluto sino que suma changeQty a la cantidad actual; un delta que dejaría
// el stock en negativo se rechaza.
func (uc *LedgerUseCase) RecordAdjustment(
	ctx context.Context,
	productID int64,
	changeQty int,
	reason string,
) (*entity.InventoryHistory, error) {
	if changeQty == 0 {
		return nil, domain.ErrInvalidInput
	}
	if reason == "" {
		reason = entity.DefaultAdjustmentReason
	}

	var entry *entity.InventoryHistory
	err := uc.txRunner.Run(ctx, func(
		invRepo repository.InventoryRepository,
		histRepo repository.InventoryHistoryRepository,
	) error {
		inv, err := invRepo.GetByProductIDForUpdate(productID)
		if err != nil {
			return err
		}
		if inv == nil {
			return domain.ErrNotFound
		}
		newQty := inv.QuantityOnHand + changeQty
		if newQty < 0 {
			return domain.ErrInsufficientStock
		}
		inv.QuantityOnHand = newQty
		if err := invRepo.Update(inv); err != nil {
			return err
		}
		entry = &entity.InventoryHistory{
			InventoryID:  inv.ID,
			ProductID:    inv.ProductID,
			ChangeQty:    changeQty,
			Reason:       reason,
			AdjustmentID: uuid.New().String(),
			ChangedAt:    time.Now(),
		}
		return histRepo.Create(entry)
	})
	if err != nil {
		return nil, err
	}
	return entry, nil
}
