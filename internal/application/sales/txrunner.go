package sales

import (
	"context"

	"github.com/jhoicas/retail-backoffice/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD con los
// repositorios de venta atados a esa tx. La venta y todas sus líneas se
// insertan juntas o no se inserta nada: nunca queda visible una venta sin
// líneas ni líneas sin venta.
type TxRunner interface {
	RunSale(ctx context.Context, fn func(
		saleRepo repository.SaleRepository,
		itemRepo repository.SaleItemRepository,
		productRepo repository.ProductRepository,
	) error) error
}
