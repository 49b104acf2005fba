package trade

import (
	"github.com/google/uuid"
	"github.com/stockflow/backend/internal/domain/shared"
)

// Aggregate type constants
const (
	AggregateTypePurchaseOrder = "PurchaseOrder"
	AggregateTypeSalesOrder    = "SalesOrder"
)

// Event type constants
const (
	EventTypePurchaseOrderReceived = "PurchaseOrderReceived"
	EventTypeSalesOrderCreated     = "SalesOrderCreated"
)

// PurchaseOrderReceivedEvent is published when a purchase order reaches
// RECEIVED and its goods are about to be credited to the warehouse.
type PurchaseOrderReceivedEvent struct {
	shared.BaseDomainEvent
	OrderID     uuid.UUID `json:"order_id"`
	WarehouseID uuid.UUID `json:"warehouse_id"`
	SupplierID  uuid.UUID `json:"supplier_id"`
}

// NewPurchaseOrderReceivedEvent creates a new PurchaseOrderReceivedEvent
func NewPurchaseOrderReceivedEvent(o *PurchaseOrder) *PurchaseOrderReceivedEvent {
	return &PurchaseOrderReceivedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypePurchaseOrderReceived, AggregateTypePurchaseOrder, o.ID),
		OrderID:         o.ID,
		WarehouseID:     o.WarehouseID,
		SupplierID:      o.SupplierID,
	}
}

// SalesOrderCreatedEvent is published when a customer order is created and
// its stock deducted.
type SalesOrderCreatedEvent struct {
	shared.BaseDomainEvent
	OrderID    uuid.UUID `json:"order_id"`
	CustomerID uuid.UUID `json:"customer_id"`
	LineCount  int       `json:"line_count"`
}

// NewSalesOrderCreatedEvent creates a new SalesOrderCreatedEvent
func NewSalesOrderCreatedEvent(o *SalesOrder) *SalesOrderCreatedEvent {
	return &SalesOrderCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeSalesOrderCreated, AggregateTypeSalesOrder, o.ID),
		OrderID:         o.ID,
		CustomerID:      o.CustomerID,
		LineCount:       len(o.Items),
	}
}
