package notification

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stockflow/backend/internal/domain/catalog"
	"github.com/stockflow/backend/internal/domain/inventory"
	"github.com/stockflow/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// Outbound event names and stock-update direction discriminators.
const (
	EventStockUpdate      = "stock_update"
	EventWarehouseUpdated = "warehouse_updated"

	DirectionIncrease = "increase"
	DirectionDecrease = "decrease"
)

// StockUpdateMessage is the wire format for per-row stock notifications.
// Type carries the direction ("increase" or "decrease") and Change the
// signed normalized-unit delta, so clients can branch on either.
type StockUpdateMessage struct {
	Event       string    `json:"event"`
	Type        string    `json:"type"`
	ProductID   uuid.UUID `json:"product_id"`
	WarehouseID uuid.UUID `json:"warehouse_id"`
	Change      int       `json:"change"`
	ItemChange  int       `json:"item_change"`
	BoxChange   int       `json:"box_change"`
	At          time.Time `json:"at"`
}

// WarehouseSnapshotMessage is the wire format for warehouse usage
// broadcasts to the management audience.
type WarehouseSnapshotMessage struct {
	Event       string    `json:"event"`
	WarehouseID uuid.UUID `json:"warehouse_id"`
	Capacity    int       `json:"capacity"`
	UsedUnits   int       `json:"used_units"`
	At          time.Time `json:"at"`
}

// StockUpdateHandler turns inventory domain events into outbound
// notifications. Ledger events carry per-field deltas only; the
// handler looks up the product's box size to compute the signed
// normalized change the clients display.
type StockUpdateHandler struct {
	publisher   Publisher
	productRepo catalog.ProductRepository
	logger      *zap.Logger
}

// NewStockUpdateHandler creates a new StockUpdateHandler
func NewStockUpdateHandler(publisher Publisher, productRepo catalog.ProductRepository, logger *zap.Logger) *StockUpdateHandler {
	return &StockUpdateHandler{
		publisher:   publisher,
		productRepo: productRepo,
		logger:      logger,
	}
}

// EventTypes returns the event types this handler is interested in
func (h *StockUpdateHandler) EventTypes() []string {
	return []string{
		inventory.EventTypeStockIncreased,
		inventory.EventTypeStockDecreased,
		inventory.EventTypeWarehouseUpdated,
	}
}

// Handle processes a domain event
func (h *StockUpdateHandler) Handle(ctx context.Context, event shared.DomainEvent) error {
	switch e := event.(type) {
	case *inventory.StockIncreasedEvent:
		return h.publishStockUpdate(ctx, e.ProductID, e.WarehouseID, e.ItemChange, e.BoxChange, 1, e.OccurredAt())
	case *inventory.StockDecreasedEvent:
		return h.publishStockUpdate(ctx, e.ProductID, e.WarehouseID, e.ItemChange, e.BoxChange, -1, e.OccurredAt())
	case *inventory.WarehouseUpdatedEvent:
		return h.publisher.Publish(ctx, ChannelManagement, WarehouseSnapshotMessage{
			Event:       EventWarehouseUpdated,
			WarehouseID: e.WarehouseID,
			Capacity:    e.Capacity,
			UsedUnits:   e.UsedUnits,
			At:          e.OccurredAt(),
		})
	default:
		h.logger.Debug("ignoring event", zap.String("event_type", event.EventType()))
		return nil
	}
}

// publishStockUpdate computes the signed normalized delta and publishes
// it. sign is +1 for increases and -1 for decreases; events store the
// removed/added magnitudes per field, so the normalized magnitude is
// items + boxes*boxSize.
func (h *StockUpdateHandler) publishStockUpdate(ctx context.Context, productID, warehouseID uuid.UUID, itemChange, boxChange, sign int, at time.Time) error {
	boxSize := 0
	product, err := h.productRepo.FindByID(ctx, productID)
	if err != nil {
		// Missing product only degrades the message, it does not block it
		h.logger.Warn("product lookup failed for notification",
			zap.String("product_id", productID.String()),
			zap.Error(err),
		)
	} else {
		boxSize = product.BoxSizeOrZero()
	}

	change := sign * (itemChange + boxChange*boxSize)

	direction := DirectionIncrease
	if sign < 0 {
		direction = DirectionDecrease
	}

	return h.publisher.Publish(ctx, ChannelStock, StockUpdateMessage{
		Event:       EventStockUpdate,
		Type:        direction,
		ProductID:   productID,
		WarehouseID: warehouseID,
		Change:      change,
		ItemChange:  itemChange,
		BoxChange:   boxChange,
		At:          at,
	})
}

var _ shared.EventHandler = (*StockUpdateHandler)(nil)
