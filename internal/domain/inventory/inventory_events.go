package inventory

import (
	"github.com/google/uuid"
	"github.com/stockflow/backend/internal/domain/shared"
)

// Aggregate type constants
const (
	AggregateTypeInventoryItem = "InventoryItem"
	AggregateTypeStockTransfer = "StockTransfer"
)

// Event type constants
const (
	EventTypeStockIncreased    = "StockIncreased"
	EventTypeStockDecreased    = "StockDecreased"
	EventTypeTransferCompleted = "TransferCompleted"
	EventTypeTransferRejected  = "TransferRejected"
	EventTypeWarehouseUpdated  = "WarehouseUpdated"
)

// StockIncreasedEvent is published when stock is credited to a ledger row.
// ItemChange and BoxChange are the net per-field deltas.
type StockIncreasedEvent struct {
	shared.BaseDomainEvent
	ProductID   uuid.UUID `json:"product_id"`
	WarehouseID uuid.UUID `json:"warehouse_id"`
	ItemChange  int       `json:"item_change"`
	BoxChange   int       `json:"box_change"`
}

// NewStockIncreasedEvent creates a new StockIncreasedEvent
func NewStockIncreasedEvent(item *InventoryItem, itemChange, boxChange int) *StockIncreasedEvent {
	return &StockIncreasedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeStockIncreased, AggregateTypeInventoryItem, item.ID),
		ProductID:       item.ProductID,
		WarehouseID:     item.WarehouseID,
		ItemChange:      itemChange,
		BoxChange:       boxChange,
	}
}

// StockDecreasedEvent is published when stock is debited from a ledger row.
// ItemChange and BoxChange are the net per-field deltas; a renormalizing
// removal may report a negative ItemChange alongside a positive BoxChange.
type StockDecreasedEvent struct {
	shared.BaseDomainEvent
	ProductID   uuid.UUID `json:"product_id"`
	WarehouseID uuid.UUID `json:"warehouse_id"`
	ItemChange  int       `json:"item_change"`
	BoxChange   int       `json:"box_change"`
}

// NewStockDecreasedEvent creates a new StockDecreasedEvent
func NewStockDecreasedEvent(item *InventoryItem, itemChange, boxChange int) *StockDecreasedEvent {
	return &StockDecreasedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeStockDecreased, AggregateTypeInventoryItem, item.ID),
		ProductID:       item.ProductID,
		WarehouseID:     item.WarehouseID,
		ItemChange:      itemChange,
		BoxChange:       boxChange,
	}
}

// TransferCompletedEvent is published when a transfer is approved and applied
type TransferCompletedEvent struct {
	shared.BaseDomainEvent
	TransferID      uuid.UUID `json:"transfer_id"`
	ProductID       uuid.UUID `json:"product_id"`
	FromWarehouseID uuid.UUID `json:"from_warehouse_id"`
	ToWarehouseID   uuid.UUID `json:"to_warehouse_id"`
	ItemQuantity    int       `json:"item_quantity"`
	BoxQuantity     int       `json:"box_quantity"`
}

// NewTransferCompletedEvent creates a new TransferCompletedEvent
func NewTransferCompletedEvent(t *StockTransfer) *TransferCompletedEvent {
	return &TransferCompletedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeTransferCompleted, AggregateTypeStockTransfer, t.ID),
		TransferID:      t.ID,
		ProductID:       t.ProductID,
		FromWarehouseID: t.FromWarehouseID,
		ToWarehouseID:   t.ToWarehouseID,
		ItemQuantity:    t.ItemQuantity,
		BoxQuantity:     t.BoxQuantity,
	}
}

// TransferRejectedEvent is published when a transfer is rejected
type TransferRejectedEvent struct {
	shared.BaseDomainEvent
	TransferID uuid.UUID `json:"transfer_id"`
	ProductID  uuid.UUID `json:"product_id"`
}

// NewTransferRejectedEvent creates a new TransferRejectedEvent
func NewTransferRejectedEvent(t *StockTransfer) *TransferRejectedEvent {
	return &TransferRejectedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeTransferRejected, AggregateTypeStockTransfer, t.ID),
		TransferID:      t.ID,
		ProductID:       t.ProductID,
	}
}

// WarehouseUpdatedEvent broadcasts a full warehouse usage snapshot to the
// management audience after an inventory adjustment.
type WarehouseUpdatedEvent struct {
	shared.BaseDomainEvent
	WarehouseID uuid.UUID `json:"warehouse_id"`
	Capacity    int       `json:"capacity"`
	UsedUnits   int       `json:"used_units"`
}

// NewWarehouseUpdatedEvent creates a new WarehouseUpdatedEvent
func NewWarehouseUpdatedEvent(warehouseID uuid.UUID, capacity, usedUnits int) *WarehouseUpdatedEvent {
	return &WarehouseUpdatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeWarehouseUpdated, AggregateTypeInventoryItem, warehouseID),
		WarehouseID:     warehouseID,
		Capacity:        capacity,
		UsedUnits:       usedUnits,
	}
}
