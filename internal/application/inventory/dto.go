package inventory

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stockflow/backend/internal/domain/inventory"
)

// StockLevelResponse represents the stock of one product in one warehouse
type StockLevelResponse struct {
	ID            uuid.UUID `json:"id"`
	ProductID     uuid.UUID `json:"product_id"`
	WarehouseID   uuid.UUID `json:"warehouse_id"`
	ItemQuantity  int       `json:"item_quantity"`
	BoxQuantity   int       `json:"box_quantity"`
	TotalUnits    int       `json:"total_units"`
	BelowMinimum  bool      `json:"below_minimum"`
	UpdatedAt     time.Time `json:"updated_at"`
	ProductName   string    `json:"product_name,omitempty"`
	ProductSKU    string    `json:"product_sku,omitempty"`
	WarehouseName string    `json:"warehouse_name,omitempty"`
}

// WarehouseUsageResponse reports capacity utilization for a warehouse
type WarehouseUsageResponse struct {
	WarehouseID uuid.UUID `json:"warehouse_id"`
	Name        string    `json:"name"`
	Capacity    int       `json:"capacity"`
	UsedUnits   int       `json:"used_units"`
	FreeUnits   int       `json:"free_units"`
}

// CreateTransferRequest initiates a stock transfer between warehouses
type CreateTransferRequest struct {
	ProductID       uuid.UUID `json:"product_id" binding:"required"`
	FromWarehouseID uuid.UUID `json:"from_warehouse_id" binding:"required"`
	ToWarehouseID   uuid.UUID `json:"to_warehouse_id" binding:"required"`
	ItemQuantity    int       `json:"item_quantity" binding:"min=0"`
	BoxQuantity     int       `json:"box_quantity" binding:"min=0"`
}

// TransferResponse represents a stock transfer
type TransferResponse struct {
	ID              uuid.UUID                `json:"id"`
	ProductID       uuid.UUID                `json:"product_id"`
	FromWarehouseID uuid.UUID                `json:"from_warehouse_id"`
	ToWarehouseID   uuid.UUID                `json:"to_warehouse_id"`
	ItemQuantity    int                      `json:"item_quantity"`
	BoxQuantity     int                      `json:"box_quantity"`
	Status          inventory.TransferStatus `json:"status"`
	CreatedByID     uuid.UUID                `json:"created_by_id"`
	ApprovedByID    *uuid.UUID               `json:"approved_by_id,omitempty"`
	CreatedAt       time.Time                `json:"created_at"`
	ResolvedAt      *time.Time               `json:"resolved_at,omitempty"`
}

// CreateNoteRequest records a manual credit or debit note
type CreateNoteRequest struct {
	Type         inventory.NoteType `json:"type" binding:"required"`
	Amount       decimal.Decimal    `json:"amount" binding:"required"`
	Reason       string             `json:"reason" binding:"required"`
	ProductID    *uuid.UUID         `json:"product_id,omitempty"`
	WarehouseID  *uuid.UUID         `json:"warehouse_id,omitempty"`
	ItemQuantity int                `json:"item_quantity" binding:"min=0"`
	BoxQuantity  int                `json:"box_quantity" binding:"min=0"`
}

// NoteResponse represents a credit/debit note. AmountFormatted is the
// display form with currency.
type NoteResponse struct {
	ID              uuid.UUID          `json:"id"`
	Type            inventory.NoteType `json:"type"`
	Amount          decimal.Decimal    `json:"amount"`
	AmountFormatted string             `json:"amount_formatted"`
	Reason          string             `json:"reason"`
	ProductID    *uuid.UUID         `json:"product_id,omitempty"`
	WarehouseID  *uuid.UUID         `json:"warehouse_id,omitempty"`
	ItemQuantity int                `json:"item_quantity"`
	BoxQuantity  int                `json:"box_quantity"`
	StockApplied bool               `json:"stock_applied"`
	CreatedByID  uuid.UUID          `json:"created_by_id"`
	CreatedAt    time.Time          `json:"created_at"`
}

// AdjustmentMode selects how the administrative adjustment removes stock
type AdjustmentMode string

const (
	AdjustmentDeleteAll      AdjustmentMode = "DELETE_ALL"
	AdjustmentDeleteSpecific AdjustmentMode = "DELETE_SPECIFIC"
)

// AdjustInventoryRequest is the administrative stock removal request
type AdjustInventoryRequest struct {
	ProductID   uuid.UUID      `json:"product_id" binding:"required"`
	WarehouseID uuid.UUID      `json:"warehouse_id" binding:"required"`
	Mode        AdjustmentMode `json:"mode" binding:"required,oneof=DELETE_ALL DELETE_SPECIFIC"`
	Quantity    int            `json:"quantity"`
	Reason      string         `json:"reason" binding:"required"`
}

// AdjustInventoryResponse reports the outcome of an adjustment
type AdjustInventoryResponse struct {
	RemovedUnits int           `json:"removed_units"`
	Remaining    int           `json:"remaining_units"`
	Note         *NoteResponse `json:"note"`
}

// ToStockLevelResponse converts an inventory item to its response form
func ToStockLevelResponse(item *inventory.InventoryItem, boxSize int) StockLevelResponse {
	return StockLevelResponse{
		ID:           item.ID,
		ProductID:    item.ProductID,
		WarehouseID:  item.WarehouseID,
		ItemQuantity: item.ItemQuantity,
		BoxQuantity:  item.BoxQuantity,
		TotalUnits:   item.NormalizedTotal(boxSize),
		UpdatedAt:    item.UpdatedAt,
	}
}

// ToTransferResponse converts a stock transfer to its response form
func ToTransferResponse(t *inventory.StockTransfer) TransferResponse {
	return TransferResponse{
		ID:              t.ID,
		ProductID:       t.ProductID,
		FromWarehouseID: t.FromWarehouseID,
		ToWarehouseID:   t.ToWarehouseID,
		ItemQuantity:    t.ItemQuantity,
		BoxQuantity:     t.BoxQuantity,
		Status:          t.Status,
		CreatedByID:     t.CreatedByID,
		ApprovedByID:    t.ApprovedByID,
		CreatedAt:       t.CreatedAt,
		ResolvedAt:      t.ResolvedAt,
	}
}

// ToNoteResponse converts a credit/debit note to its response form.
// stockApplied reports whether the linked inventory mutation was performed;
// it is computed by the service, not stored on the note.
func ToNoteResponse(n *inventory.CreditDebitNote, stockApplied bool) NoteResponse {
	return NoteResponse{
		ID:              n.ID,
		Type:            n.Type,
		Amount:          n.Amount,
		AmountFormatted: n.GetAmountMoney().String(),
		Reason:          n.Reason,
		ProductID:    n.ProductID,
		WarehouseID:  n.WarehouseID,
		ItemQuantity: n.ItemQuantity,
		BoxQuantity:  n.BoxQuantity,
		StockApplied: stockApplied,
		CreatedByID:  n.CreatedByID,
		CreatedAt:    n.CreatedAt,
	}
}
