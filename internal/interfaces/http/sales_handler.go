package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/retail-backoffice/internal/application/analytics"
	"github.com/jhoicas/retail-backoffice/internal/application/dto"
	"github.com/jhoicas/retail-backoffice/internal/application/sales"
)

// SalesHandler maneja las peticiones HTTP de ventas: registro, consulta
// filtrada y reportes de ingresos.
type SalesHandler struct {
	createUC *sales.CreateSaleUseCase
	queryUC  *sales.QueryUseCase
	reportUC *analytics.ReportUseCase
}

// NewSalesHandler construye el handler.
func NewSalesHandler(
	createUC *sales.CreateSaleUseCase,
	queryUC *sales.QueryUseCase,
	reportUC *analytics.ReportUseCase,
) *SalesHandler {
	return &SalesHandler{createUC: createUC, queryUC: queryUC, reportUC: reportUC}
}

// Create godoc
// @Summary      Registrar venta
// @Description  Crea la venta con sus líneas en una transacción. Los totales se
//               recalculan en el servidor; un total enviado que no coincida se rechaza.
// @Tags         sales
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateSaleRequest  true  "Venta con líneas"
// @Success      201   {object}  dto.SaleResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/sales [post]
func (h *SalesHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateSaleRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	sale, err := h.createUC.CreateSale(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.NewSaleResponse(sale))
}

// List godoc
// @Summary      Listar ventas con filtros opcionales
// @Description  Filtra por rango de fechas (inclusivo), producto y/o categoría.
//               Una venta con varias líneas del mismo producto aparece una sola vez.
// @Tags         sales
// @Produce      json
// @Param        start_date   query  string  false  "Inicio (YYYY-MM-DD)"
// @Param        end_date     query  string  false  "Fin (YYYY-MM-DD)"
// @Param        product_id   query  int     false  "Filtrar por producto"
// @Param        category_id  query  int     false  "Filtrar por categoría"
// @Param        skip         query  int     false  "Offset"  default(0)
// @Param        limit        query  int     false  "Límite"  default(100)
// @Success      200  {array}  dto.SaleResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/sales [get]
func (h *SalesHandler) List(c *fiber.Ctx) error {
	var q dto.SaleListQuery
	if err := c.QueryParser(&q); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_PARAMS", Message: "parámetros de consulta inválidos"})
	}
	q.DefaultPage()
	found, err := h.queryUC.FindSales(q)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.NewSaleResponses(found))
}

// GetByID godoc
// @Summary      Obtener venta por ID con sus líneas
// @Tags         sales
// @Produce      json
// @Param        id   path  int  true  "ID de la venta"
// @Success      200  {object}  dto.SaleResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/sales/{id} [get]
func (h *SalesHandler) GetByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id inválido"})
	}
	sale, err := h.queryUC.GetSale(int64(id))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.NewSaleResponse(sale))
}

// ListByProduct godoc
// @Summary      Listar ventas que incluyen un producto
// @Tags         sales
// @Produce      json
// @Param        id     path   int  true   "ID del producto"
// @Param        skip   query  int  false  "Offset"  default(0)
// @Param        limit  query  int  false  "Límite"  default(100)
// @Success      200  {array}  dto.SaleResponse
// @Router       /api/sales/by-product/{id} [get]
func (h *SalesHandler) ListByProduct(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id inválido"})
	}
	var q dto.SaleListQuery
	if err := c.QueryParser(&q); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_PARAMS", Message: "parámetros de consulta inválidos"})
	}
	q.ProductID = int64(id)
	q.DefaultPage()
	found, err := h.queryUC.FindSales(q)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.NewSaleResponses(found))
}

// ListByCategory godoc
// @Summary      Listar ventas con productos de una categoría
// @Tags         sales
// @Produce      json
// @Param        id     path   int  true   "ID de la categoría"
// @Param        skip   query  int  false  "Offset"  default(0)
// @Param        limit  query  int  false  "Límite"  default(100)
// @Success      200  {array}  dto.SaleResponse
// @Router       /api/sales/by-category/{id} [get]
func (h *SalesHandler) ListByCategory(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id inválido"})
	}
	var q dto.SaleListQuery
	if err := c.QueryParser(&q); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_PARAMS", Message: "parámetros de consulta inválidos"})
	}
	q.CategoryID = int64(id)
	q.DefaultPage()
	found, err := h.queryUC.FindSales(q)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.NewSaleResponses(found))
}

// Stats godoc
// @Summary      Resumen de ingresos agrupado por período
// @Description  Agrupa el total de ventas en buckets diarios, semanales (ISO),
//               mensuales o anuales. Las claves llevan el año explícito, ej. "2024-W05".
// @Tags         analytics
// @Produce      json
// @Param        period      query  string  true   "daily|weekly|monthly|yearly"
// @Param        start_date  query  string  false  "Inicio (YYYY-MM-DD)"
// @Param        end_date    query  string  false  "Fin (YYYY-MM-DD)"
// @Success      200  {array}  dto.RevenueBucketDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/sales/stats [get]
func (h *SalesHandler) Stats(c *fiber.Ctx) error {
	var req dto.RevenueStatsRequest
	if err := c.QueryParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_PARAMS", Message: "parámetros de consulta inválidos"})
	}
	buckets, err := h.reportUC.SummarizeRevenue(c.Context(), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(buckets)
}

// ExportStats godoc
// @Summary      Resumen de ingresos en PDF
// @Tags         analytics
// @Produce      application/pdf
// @Param        period      query  string  true   "daily|weekly|monthly|yearly"
// @Param        start_date  query  string  false  "Inicio (YYYY-MM-DD)"
// @Param        end_date    query  string  false  "Fin (YYYY-MM-DD)"
// @Success      200  {file}    binary
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/sales/stats/export [get]
func (h *SalesHandler) ExportStats(c *fiber.Ctx) error {
	var req dto.RevenueStatsRequest
	if err := c.QueryParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_PARAMS", Message: "parámetros de consulta inválidos"})
	}
	pdfBytes, err := h.reportUC.ExportRevenuePDF(c.Context(), req)
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="resumen-ingresos.pdf"`)
	return c.Send(pdfBytes)
}

// Compare godoc
// @Summary      Comparar ingresos de dos períodos
// @Description  Calcula ingresos de cada rango, la diferencia absoluta y el
//               cambio porcentual. percent_change es null si el período 1 no tuvo ingresos.
// @Tags         analytics
// @Produce      json
// @Param        p1_start     query  string  true   "Inicio período 1 (YYYY-MM-DD)"
// @Param        p1_end       query  string  true   "Fin período 1 (YYYY-MM-DD)"
// @Param        p2_start     query  string  true   "Inicio período 2 (YYYY-MM-DD)"
// @Param        p2_end       query  string  true   "Fin período 2 (YYYY-MM-DD)"
// @Param        category_id  query  int     false  "Limitar a ventas con productos de la categoría"
// @Success      200  {object}  dto.SalesComparisonDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/sales/compare [get]
func (h *SalesHandler) Compare(c *fiber.Ctx) error {
	var req dto.CompareRequest
	if err := c.QueryParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_PARAMS", Message: "parámetros de consulta inválidos"})
	}
	out, err := h.reportUC.Compare(c.Context(), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ListItems godoc
// @Summary      Listar líneas de venta
// @Tags         sales
// @Produce      json
// @Param        skip   query  int  false  "Offset"  default(0)
// @Param        limit  query  int  false  "Límite"  default(100)
// @Success      200    {array}  dto.SaleItemResponse
// @Router       /api/sale-items [get]
func (h *SalesHandler) ListItems(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_PARAMS", Message: "parámetros de consulta inválidos"})
	}
	page.DefaultPage()
	items, err := h.queryUC.ListSaleItems(page.Limit, page.Skip)
	if err != nil {
		return respondError(c, err)
	}
	out := make([]dto.SaleItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, dto.SaleItemResponse{
			ID:        it.ID,
			SaleID:    it.SaleID,
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
			LineTotal: it.LineTotal,
		})
	}
	return c.JSON(out)
}
