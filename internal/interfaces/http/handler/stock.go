package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	inventoryapp "github.com/stockflow/backend/internal/application/inventory"
)

// StockHandler handles stock level query endpoints
type StockHandler struct {
	BaseHandler
	stockService *inventoryapp.StockService
}

// NewStockHandler creates a new StockHandler
func NewStockHandler(stockService *inventoryapp.StockService) *StockHandler {
	return &StockHandler{stockService: stockService}
}

// List returns stock levels across all warehouses
func (h *StockHandler) List(c *gin.Context) {
	filter, err := bindListFilter(c)
	if err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	if warehouseID := c.Query("warehouse_id"); warehouseID != "" {
		id, err := uuid.Parse(warehouseID)
		if err != nil {
			h.BadRequest(c, "Invalid warehouse ID")
			return
		}
		levels, err := h.stockService.ListByWarehouse(c.Request.Context(), id, filter)
		if err != nil {
			h.HandleError(c, err)
			return
		}
		h.Success(c, levels)
		return
	}

	if productID := c.Query("product_id"); productID != "" {
		id, err := uuid.Parse(productID)
		if err != nil {
			h.BadRequest(c, "Invalid product ID")
			return
		}
		levels, err := h.stockService.ListByProduct(c.Request.Context(), id, filter)
		if err != nil {
			h.HandleError(c, err)
			return
		}
		h.Success(c, levels)
		return
	}

	levels, total, err := h.stockService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, levels, total, filter.Page, filter.PageSize)
}

// Get returns the stock level for one product in one warehouse
func (h *StockHandler) Get(c *gin.Context) {
	productID, err := uuid.Parse(c.Param("productId"))
	if err != nil {
		h.BadRequest(c, "Invalid product ID")
		return
	}
	warehouseID, err := uuid.Parse(c.Param("warehouseId"))
	if err != nil {
		h.BadRequest(c, "Invalid warehouse ID")
		return
	}

	level, err := h.stockService.GetStockLevel(c.Request.Context(), productID, warehouseID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, level)
}

// LowStock returns rows at or below their product's minimum stock level
func (h *StockHandler) LowStock(c *gin.Context) {
	filter, err := bindListFilter(c)
	if err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	levels, err := h.stockService.ListLowStock(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, levels)
}

// WarehouseUsage returns capacity utilization for a warehouse
func (h *StockHandler) WarehouseUsage(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		h.BadRequest(c, "Invalid warehouse ID")
		return
	}

	usage, err := h.stockService.GetWarehouseUsage(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, usage)
}
