// Package sales implementa la creación atómica de ventas y las consultas
// filtradas de ventas del back-office.
package sales

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/retail-backoffice/internal/application/dto"
	"github.com/jhoicas/retail-backoffice/internal/domain"
	"github.com/jhoicas/retail-backoffice/internal/domain/entity"
	"github.com/jhoicas/retail-backoffice/internal/domain/repository"
)

// CreateSaleUseCase crea una venta con sus líneas en una sola transacción.
// Los totales derivados no se confían al caller: line_total y total_amount se
// recalculan en el servidor y un valor suministrado que no coincida se rechaza.
type CreateSaleUseCase struct {
	txRunner TxRunner
}

// NewCreateSaleUseCase construye el caso de uso.
func NewCreateSaleUseCase(txRunner TxRunner) *CreateSaleUseCase {
	return &CreateSaleUseCase{txRunner: txRunner}
}

// CreateSale valida, recalcula totales e inserta venta + líneas atómicamente.
// Errores: ErrInvalidInput (sin líneas, cantidad ≤ 0, precio negativo),
// ErrTotalMismatch (totales del caller inconsistentes), ErrNotFound (producto).
func (uc *CreateSaleUseCase) CreateSale(ctx context.Context, in dto.CreateSaleRequest) (*entity.Sale, error) {
	if len(in.Items) == 0 || in.SaleDate.IsZero() {
		return nil, domain.ErrInvalidInput
	}

	total := decimal.Zero
	items := make([]entity.SaleItem, 0, len(in.Items))
	for _, it := range in.Items {
		if it.Quantity <= 0 || it.UnitPrice.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		lineTotal := it.UnitPrice.Mul(decimal.NewFromInt(int64(it.Quantity)))
		if !it.LineTotal.IsZero() && !it.LineTotal.Equal(lineTotal) {
			return nil, domain.ErrTotalMismatch
		}
		total = total.Add(lineTotal)
		items = append(items, entity.SaleItem{
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
			LineTotal: lineTotal,
		})
	}
	if !in.TotalAmount.IsZero() && !in.TotalAmount.Equal(total) {
		return nil, domain.ErrTotalMismatch
	}

	sale := &entity.Sale{
		SaleDate:     in.SaleDate,
		CustomerName: in.CustomerName,
		TotalAmount:  total,
		CreatedAt:    time.Now(),
	}

	err := uc.txRunner.RunSale(ctx, func(
		saleRepo repository.SaleRepository,
		itemRepo repository.SaleItemRepository,
		productRepo repository.ProductRepository,
	) error {
		// Todos los productos referenciados deben existir antes de escribir nada.
		for _, it := range items {
			p, err := productRepo.GetByID(it.ProductID)
			if err != nil {
				return err
			}
			if p == nil {
				return domain.ErrNotFound
			}
		}
		if err := saleRepo.Create(sale); err != nil {
			return err
		}
		for i := range items {
			items[i].SaleID = sale.ID
		}
		if err := itemRepo.CreateBatch(items); err != nil {
			return err
		}
		sale.Items = items
		return nil
	})
	if err != nil {
		return nil, err
	}
	return sale, nil
}
