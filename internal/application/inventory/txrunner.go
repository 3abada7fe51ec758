package inventory

import (
	"context"

	"github.com/jhoicas/retail-backoffice/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza atomicidad para el ledger:
// la cantidad y su entrada de historial se escriben juntas o no se escriben.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		invRepo repository.InventoryRepository,
		histRepo repository.InventoryHistoryRepository,
	) error) error
}
