package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/retail-backoffice/internal/application/analytics"
	"github.com/jhoicas/retail-backoffice/internal/application/inventory"
	"github.com/jhoicas/retail-backoffice/internal/application/sales"
	"github.com/jhoicas/retail-backoffice/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CategoryUC *usecase.CategoryUseCase
	ProductUC  *usecase.ProductUseCase
	LedgerUC   *inventory.LedgerUseCase
	CreateSale *sales.CreateSaleUseCase
	SalesQuery *sales.QueryUseCase
	Reports    *analytics.ReportUseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Categorías
	categories := api.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories.Post("/", categoryHandler.Create)
	categories.Get("/", categoryHandler.List)
	categories.Get("/:id", categoryHandler.GetByID)
	categories.Patch("/:id", categoryHandler.Update)

	// Productos
	products := api.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)

	// Ventas y reportes. Las rutas literales van antes de /:id para que
	// /sales/stats no se interprete como un ID.
	salesGroup := api.Group("/sales")
	salesHandler := NewSalesHandler(deps.CreateSale, deps.SalesQuery, deps.Reports)
	salesGroup.Post("/", salesHandler.Create)
	salesGroup.Get("/", salesHandler.List)
	salesGroup.Get("/stats/export", salesHandler.ExportStats)
	salesGroup.Get("/stats", salesHandler.Stats)
	salesGroup.Get("/compare", salesHandler.Compare)
	salesGroup.Get("/by-product/:id", salesHandler.ListByProduct)
	salesGroup.Get("/by-category/:id", salesHandler.ListByCategory)
	salesGroup.Get("/:id", salesHandler.GetByID)

	api.Get("/sale-items", salesHandler.ListItems)

	// Inventario
	invGroup := api.Group("/inventory")
	inventoryHandler := NewInventoryHandler(deps.LedgerUC)
	invGroup.Get("/", inventoryHandler.List)
	invGroup.Get("/low-stock", inventoryHandler.ListLowStock)
	invGroup.Get("/history", inventoryHandler.ListHistory)
	invGroup.Get("/:productId", inventoryHandler.GetByProduct)
	invGroup.Patch("/:productId", inventoryHandler.UpdateStock)
	invGroup.Post("/:productId/history", inventoryHandler.RecordAdjustment)
}
