package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	inventoryapp "github.com/stockflow/backend/internal/application/inventory"
)

// AdjustmentHandler handles credit/debit notes and manual stock adjustments
type AdjustmentHandler struct {
	BaseHandler
	adjustmentService *inventoryapp.AdjustmentService
}

// NewAdjustmentHandler creates a new AdjustmentHandler
func NewAdjustmentHandler(adjustmentService *inventoryapp.AdjustmentService) *AdjustmentHandler {
	return &AdjustmentHandler{adjustmentService: adjustmentService}
}

// CreateNote records a credit or debit note, applying the stock change when
// possible. A debit note against missing stock is still recorded.
func (h *AdjustmentHandler) CreateNote(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req inventoryapp.CreateNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	note, err := h.adjustmentService.CreateNote(c.Request.Context(), userID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, note)
}

// ListNotes returns notes matching the filter
func (h *AdjustmentHandler) ListNotes(c *gin.Context) {
	filter, err := bindListFilter(c)
	if err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	if productID := c.Query("product_id"); productID != "" {
		id, err := uuid.Parse(productID)
		if err != nil {
			h.BadRequest(c, "Invalid product ID")
			return
		}
		filter.Filters["product_id"] = id
	}
	if warehouseID := c.Query("warehouse_id"); warehouseID != "" {
		id, err := uuid.Parse(warehouseID)
		if err != nil {
			h.BadRequest(c, "Invalid warehouse ID")
			return
		}
		filter.Filters["warehouse_id"] = id
	}

	notes, total, err := h.adjustmentService.ListNotes(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, notes, total, filter.Page, filter.PageSize)
}

// GetNote returns a single note
func (h *AdjustmentHandler) GetNote(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		h.BadRequest(c, "Invalid note ID")
		return
	}

	note, err := h.adjustmentService.GetNote(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, note)
}

// Adjust removes stock for a product in a warehouse and records the
// compensating debit note
func (h *AdjustmentHandler) Adjust(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req inventoryapp.AdjustInventoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	result, err := h.adjustmentService.Adjust(c.Request.Context(), userID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}
