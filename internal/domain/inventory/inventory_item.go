package inventory

import (
	"github.com/google/uuid"
	"github.com/stockflow/backend/internal/domain/shared"
)

// InventoryItem is the stock ledger row for a product at a warehouse.
// It is the aggregate root for all stock mutations; the composite
// (ProductID, WarehouseID) pair is unique. Quantities are discrete counts
// and must never go negative.
type InventoryItem struct {
	shared.BaseAggregateRoot
	ProductID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_inventory_product_warehouse,priority:1"`
	WarehouseID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_inventory_product_warehouse,priority:2"`
	ItemQuantity int       `gorm:"not null;default:0"` // Loose items
	BoxQuantity  int       `gorm:"not null;default:0"` // Unopened boxes
}

// TableName returns the table name for GORM
func (InventoryItem) TableName() string {
	return "inventory_items"
}

// NewInventoryItem creates an empty ledger row for a product-warehouse pair.
// Rows come into existence on first credit, never ahead of stock history.
func NewInventoryItem(productID, warehouseID uuid.UUID) (*InventoryItem, error) {
	if productID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_PRODUCT", "Product ID cannot be empty")
	}
	if warehouseID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_WAREHOUSE", "Warehouse ID cannot be empty")
	}

	return &InventoryItem{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		ProductID:         productID,
		WarehouseID:       warehouseID,
	}, nil
}

// NormalizedTotal returns the row's stock as normalized units for the
// product's boxSize (0 when boxes do not apply).
func (i *InventoryItem) NormalizedTotal(boxSize int) int {
	return NormalizedUnits(i.ItemQuantity, i.BoxQuantity, boxSize)
}

// Credit adds stock to the row.
func (i *InventoryItem) Credit(itemDelta, boxDelta int) error {
	if itemDelta < 0 || boxDelta < 0 {
		return shared.NewDomainError("INVALID_QUANTITY", "Credit quantities cannot be negative")
	}
	if itemDelta == 0 && boxDelta == 0 {
		return shared.NewDomainError("INVALID_QUANTITY", "Credit requires a positive quantity")
	}

	i.ItemQuantity += itemDelta
	i.BoxQuantity += boxDelta
	i.Touch()
	i.IncrementVersion()

	i.AddDomainEvent(NewStockIncreasedEvent(i, itemDelta, boxDelta))

	return nil
}

// CanDebit reports whether the row holds at least the requested quantities.
func (i *InventoryItem) CanDebit(itemDelta, boxDelta int) bool {
	return i.ItemQuantity >= itemDelta && i.BoxQuantity >= boxDelta
}

// Debit removes stock from the row. The sufficiency check happens here,
// before any mutation, so a failed debit leaves the row untouched.
func (i *InventoryItem) Debit(itemDelta, boxDelta int) error {
	if itemDelta < 0 || boxDelta < 0 {
		return shared.NewDomainError("INVALID_QUANTITY", "Debit quantities cannot be negative")
	}
	if itemDelta == 0 && boxDelta == 0 {
		return shared.NewDomainError("INVALID_QUANTITY", "Debit requires a positive quantity")
	}
	if !i.CanDebit(itemDelta, boxDelta) {
		return shared.ErrInsufficientStock
	}

	i.ItemQuantity -= itemDelta
	i.BoxQuantity -= boxDelta
	i.Touch()
	i.IncrementVersion()

	i.AddDomainEvent(NewStockDecreasedEvent(i, itemDelta, boxDelta))

	return nil
}

// RemoveNormalized removes a normalized-unit total from the row and
// redistributes what remains into the minimal box+item split for the given
// boxSize. This is a replace, not a decrement in place: the box/item split
// is intentionally renormalized.
func (i *InventoryItem) RemoveNormalized(units, boxSize int) error {
	if units <= 0 {
		return shared.NewDomainError("INVALID_QUANTITY", "Removal quantity must be positive")
	}
	current := i.NormalizedTotal(boxSize)
	if units > current {
		return shared.ErrInsufficientStock
	}

	oldItems, oldBoxes := i.ItemQuantity, i.BoxQuantity
	i.ItemQuantity, i.BoxQuantity = Decompose(current-units, boxSize)
	i.Touch()
	i.IncrementVersion()

	i.AddDomainEvent(NewStockDecreasedEvent(i, oldItems-i.ItemQuantity, oldBoxes-i.BoxQuantity))

	return nil
}

// IsEmpty reports whether the row holds no stock at all
func (i *InventoryItem) IsEmpty() bool {
	return i.ItemQuantity == 0 && i.BoxQuantity == 0
}
