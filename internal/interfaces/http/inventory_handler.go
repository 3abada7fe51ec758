package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/retail-backoffice/internal/application/dto"
	"github.com/jhoicas/retail-backoffice/internal/application/inventory"
	"github.com/jhoicas/retail-backoffice/internal/domain/repository"
)

// InventoryHandler maneja las peticiones HTTP del libro de inventario.
type InventoryHandler struct {
	uc *inventory.LedgerUseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(uc *inventory.LedgerUseCase) *InventoryHandler {
	return &InventoryHandler{uc: uc}
}

// List godoc
// @Summary      Listar inventario
// @Tags         inventory
// @Produce      json
// @Param        skip   query  int  false  "Offset"  default(0)
// @Param        limit  query  int  false  "Límite"  default(100)
// @Success      200    {array}  dto.InventoryResponse
// @Router       /api/inventory [get]
func (h *InventoryHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_PARAMS", Message: "parámetros de consulta inválidos"})
	}
	page.DefaultPage()
	list, err := h.uc.List(page.Limit, page.Skip)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.NewInventoryResponses(list))
}

// ListLowStock godoc
// @Summary      Productos en o bajo su umbral de reposición
// @Description  Ordenados por urgencia: mayor déficit respecto al umbral primero.
// @Tags         inventory
// @Produce      json
// @Success      200  {array}  dto.InventoryResponse
// @Router       /api/inventory/low-stock [get]
func (h *InventoryHandler) ListLowStock(c *fiber.Ctx) error {
	list, err := h.uc.ListLowStock()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.NewInventoryResponses(list))
}

// ListHistory godoc
// @Summary      Historial de ajustes de inventario
// @Description  Entradas más recientes primero, con filtros opcionales por
//               inventario y/o producto.
// @Tags         inventory
// @Produce      json
// @Param        inventory_id  query  int  false  "Filtrar por registro de inventario"
// @Param        product_id    query  int  false  "Filtrar por producto"
// @Param        skip          query  int  false  "Offset"  default(0)
// @Param        limit         query  int  false  "Límite"  default(100)
// @Success      200  {array}  dto.HistoryResponse
// @Router       /api/inventory/history [get]
func (h *InventoryHandler) ListHistory(c *fiber.Ctx) error {
	var q dto.HistoryQuery
	if err := c.QueryParser(&q); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_PARAMS", Message: "parámetros de consulta inválidos"})
	}
	q.DefaultPage()
	var filter repository.HistoryFilter
	if q.InventoryID > 0 {
		filter.InventoryID = &q.InventoryID
	}
	if q.ProductID > 0 {
		filter.ProductID = &q.ProductID
	}
	entries, err := h.uc.ListHistory(filter, q.Limit, q.Skip)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.NewHistoryResponses(entries))
}

// GetByProduct godoc
// @Summary      Obtener inventario de un producto
// @Tags         inventory
// @Produce      json
// @Param        productId  path  int  true  "ID del producto"
// @Success      200  {object}  dto.InventoryResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inventory/{productId} [get]
func (h *InventoryHandler) GetByProduct(c *fiber.Ctx) error {
	productID, err := c.ParamsInt("productId")
	if err != nil || productID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "productId inválido"})
	}
	inv, err := h.uc.Get(int64(productID))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.NewInventoryResponse(inv))
}

// UpdateStock godoc
// @Summary      Fijar cantidad y/o umbral de reposición
// @Description  Si el producto no tiene inventario lo crea sin historial. Si ya
//               existe y la cantidad cambia, la entrada de historial con el delta
//               se escribe en la misma transacción.
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Param        productId  path  int  true  "ID del producto"
// @Param        body       body  dto.UpdateInventoryRequest  true  "Nuevos valores"
// @Success      200  {object}  dto.InventoryResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/inventory/{productId} [patch]
func (h *InventoryHandler) UpdateStock(c *fiber.Ctx) error {
	productID, err := c.ParamsInt("productId")
	if err != nil || productID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "productId inválido"})
	}
	var in dto.UpdateInventoryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	inv, err := h.uc.UpdateStock(c.Context(), int64(productID), in.QuantityOnHand, in.ReorderThreshold, in.Reason)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.NewInventoryResponse(inv))
}

// RecordAdjustment godoc
// @Summary      Registrar ajuste de inventario (delta firmado)
// @Description  Aplica change_qty al stock y deja la entrada de auditoría en la
//               misma transacción. Un delta que dejaría el stock en negativo se rechaza.
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Param        productId  path  int  true  "ID del producto"
// @Param        body       body  dto.RecordAdjustmentRequest  true  "Ajuste"
// @Success      201  {object}  dto.HistoryResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/inventory/{productId}/history [post]
func (h *InventoryHandler) RecordAdjustment(c *fiber.Ctx) error {
	productID, err := c.ParamsInt("productId")
	if err != nil || productID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "productId inválido"})
	}
	var in dto.RecordAdjustmentRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	entry, err := h.uc.RecordAdjustment(c.Context(), int64(productID), in.ChangeQty, in.Reason)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.NewHistoryResponse(entry))
}
