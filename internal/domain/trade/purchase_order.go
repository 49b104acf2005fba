package trade

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stockflow/backend/internal/domain/shared"
	"github.com/stockflow/backend/internal/domain/shared/valueobject"
)

// PurchaseOrderStatus represents the status of a purchase order
type PurchaseOrderStatus string

const (
	PurchaseOrderStatusPending   PurchaseOrderStatus = "PENDING"
	PurchaseOrderStatusConfirmed PurchaseOrderStatus = "CONFIRMED"
	PurchaseOrderStatusDelivered PurchaseOrderStatus = "DELIVERED"
	PurchaseOrderStatusReceived  PurchaseOrderStatus = "RECEIVED"
	PurchaseOrderStatusCancelled PurchaseOrderStatus = "CANCELLED"
)

// IsValid checks if the status is a valid PurchaseOrderStatus
func (s PurchaseOrderStatus) IsValid() bool {
	switch s {
	case PurchaseOrderStatusPending, PurchaseOrderStatusConfirmed, PurchaseOrderStatusDelivered,
		PurchaseOrderStatusReceived, PurchaseOrderStatusCancelled:
		return true
	}
	return false
}

// String returns the string representation of PurchaseOrderStatus
func (s PurchaseOrderStatus) String() string {
	return string(s)
}

// rank orders the forward progression of statuses
func (s PurchaseOrderStatus) rank() int {
	switch s {
	case PurchaseOrderStatusPending:
		return 0
	case PurchaseOrderStatusConfirmed:
		return 1
	case PurchaseOrderStatusDelivered:
		return 2
	case PurchaseOrderStatusReceived:
		return 3
	}
	return -1
}

// CanTransitionTo checks if the status can move to the target status.
// The progression is monotonic; CANCELLED is reachable from any state
// before goods are received.
func (s PurchaseOrderStatus) CanTransitionTo(target PurchaseOrderStatus) bool {
	if s == PurchaseOrderStatusReceived || s == PurchaseOrderStatusCancelled {
		return false
	}
	if target == PurchaseOrderStatusCancelled {
		return true
	}
	return target.rank() > s.rank()
}

// PurchaseOrderItem represents a line item in a purchase order
type PurchaseOrderItem struct {
	ID        uuid.UUID       `gorm:"type:uuid;primary_key"`
	OrderID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductID uuid.UUID       `gorm:"type:uuid;not null"`
	Quantity  int             `gorm:"not null"`                    // Ordered item count
	UnitCost  decimal.Decimal `gorm:"type:decimal(18,4);not null"` // Cost per item
	CreatedAt time.Time       `gorm:"not null"`
	UpdatedAt time.Time       `gorm:"not null"`
}

// TableName returns the table name for GORM
func (PurchaseOrderItem) TableName() string {
	return "purchase_order_items"
}

// Amount returns the line total
func (i *PurchaseOrderItem) Amount() decimal.Decimal {
	return i.UnitCost.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// GetUnitCostMoney returns the unit cost as Money
func (i *PurchaseOrderItem) GetUnitCostMoney() valueobject.Money {
	return valueobject.NewMoneyUSD(i.UnitCost)
}

// PurchaseOrder is an order placed with a supplier for a single warehouse.
// Only the transition into RECEIVED has ledger side effects; those are
// applied by the application layer under the capacity check.
type PurchaseOrder struct {
	shared.BaseAggregateRoot
	SupplierID   uuid.UUID           `gorm:"type:uuid;not null;index"`
	WarehouseID  uuid.UUID           `gorm:"type:uuid;not null;index"`
	Status       PurchaseOrderStatus `gorm:"type:varchar(20);not null;default:'PENDING'"`
	TotalAmount  decimal.Decimal     `gorm:"type:decimal(18,4);not null;default:0"`
	DeliveryDate *time.Time          `gorm:"type:timestamptz"`
	Items        []PurchaseOrderItem `gorm:"foreignKey:OrderID;references:ID"`
}

// TableName returns the table name for GORM
func (PurchaseOrder) TableName() string {
	return "purchase_orders"
}

// NewPurchaseOrder creates a pending purchase order
func NewPurchaseOrder(supplierID, warehouseID uuid.UUID, deliveryDate *time.Time) (*PurchaseOrder, error) {
	if supplierID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_SUPPLIER", "Supplier ID cannot be empty")
	}
	if warehouseID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_WAREHOUSE", "Warehouse ID cannot be empty")
	}

	return &PurchaseOrder{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		SupplierID:        supplierID,
		WarehouseID:       warehouseID,
		Status:            PurchaseOrderStatusPending,
		TotalAmount:       decimal.Zero,
		DeliveryDate:      deliveryDate,
		Items:             make([]PurchaseOrderItem, 0),
	}, nil
}

// AddItem adds a line item to the order. Only allowed while PENDING.
func (o *PurchaseOrder) AddItem(productID uuid.UUID, quantity int, unitCost decimal.Decimal) (*PurchaseOrderItem, error) {
	if o.Status != PurchaseOrderStatusPending {
		return nil, shared.ErrInvalidState
	}
	if productID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_PRODUCT", "Product ID cannot be empty")
	}
	if quantity <= 0 {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Quantity must be positive")
	}
	if unitCost.IsNegative() {
		return nil, shared.NewDomainError("INVALID_COST", "Unit cost cannot be negative")
	}

	now := time.Now()
	item := PurchaseOrderItem{
		ID:        uuid.New(),
		OrderID:   o.ID,
		ProductID: productID,
		Quantity:  quantity,
		UnitCost:  unitCost,
		CreatedAt: now,
		UpdatedAt: now,
	}
	o.Items = append(o.Items, item)
	o.recalculateTotal()
	o.UpdatedAt = now
	o.IncrementVersion()

	return &o.Items[len(o.Items)-1], nil
}

// TransitionTo advances the order status. The RECEIVED transition itself is
// only a status change here; crediting stock is the caller's responsibility
// and must happen in the same transaction.
func (o *PurchaseOrder) TransitionTo(target PurchaseOrderStatus) error {
	if !target.IsValid() {
		return shared.NewDomainError("INVALID_STATUS", "Unknown purchase order status")
	}
	if !o.Status.CanTransitionTo(target) {
		return shared.ErrInvalidState
	}

	o.Status = target
	o.Touch()
	o.IncrementVersion()

	if target == PurchaseOrderStatusReceived {
		o.AddDomainEvent(NewPurchaseOrderReceivedEvent(o))
	}

	return nil
}

// IsReceived reports whether goods have already been credited for this order
func (o *PurchaseOrder) IsReceived() bool {
	return o.Status == PurchaseOrderStatusReceived
}

// TotalQuantity sums the ordered item counts across all lines
func (o *PurchaseOrder) TotalQuantity() int {
	total := 0
	for _, item := range o.Items {
		total += item.Quantity
	}
	return total
}

// GetTotalAmountMoney returns the order total as Money
func (o *PurchaseOrder) GetTotalAmountMoney() valueobject.Money {
	return valueobject.NewMoneyUSD(o.TotalAmount)
}

func (o *PurchaseOrder) recalculateTotal() {
	total := decimal.Zero
	for _, item := range o.Items {
		total = total.Add(item.Amount())
	}
	o.TotalAmount = total
}
