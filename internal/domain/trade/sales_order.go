package trade

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stockflow/backend/internal/domain/shared"
	"github.com/stockflow/backend/internal/domain/shared/valueobject"
)

// SalesOrderStatus represents the status of a customer order
type SalesOrderStatus string

const (
	SalesOrderStatusPending    SalesOrderStatus = "PENDING"
	SalesOrderStatusProcessing SalesOrderStatus = "PROCESSING"
	SalesOrderStatusShipped    SalesOrderStatus = "SHIPPED"
	SalesOrderStatusDelivered  SalesOrderStatus = "DELIVERED"
	SalesOrderStatusCancelled  SalesOrderStatus = "CANCELLED"
)

// IsValid checks if the status is a valid SalesOrderStatus
func (s SalesOrderStatus) IsValid() bool {
	switch s {
	case SalesOrderStatusPending, SalesOrderStatusProcessing, SalesOrderStatusShipped,
		SalesOrderStatusDelivered, SalesOrderStatusCancelled:
		return true
	}
	return false
}

// rank orders the forward progression of statuses
func (s SalesOrderStatus) rank() int {
	switch s {
	case SalesOrderStatusPending:
		return 0
	case SalesOrderStatusProcessing:
		return 1
	case SalesOrderStatusShipped:
		return 2
	case SalesOrderStatusDelivered:
		return 3
	}
	return -1
}

// CanTransitionTo checks if the status can move to the target status
func (s SalesOrderStatus) CanTransitionTo(target SalesOrderStatus) bool {
	if s == SalesOrderStatusDelivered || s == SalesOrderStatusCancelled {
		return false
	}
	if target == SalesOrderStatusCancelled {
		return true
	}
	return target.rank() > s.rank()
}

// SalesOrderItem is a line item on a customer order. WarehouseID records
// which warehouse the stock was drawn from, for revenue attribution.
type SalesOrderItem struct {
	ID          uuid.UUID       `gorm:"type:uuid;primary_key"`
	OrderID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductID   uuid.UUID       `gorm:"type:uuid;not null"`
	WarehouseID uuid.UUID       `gorm:"type:uuid;not null"`
	Quantity    int             `gorm:"not null"`
	UnitPrice   decimal.Decimal `gorm:"type:decimal(18,4);not null"` // Price at time of sale
	CreatedAt   time.Time       `gorm:"not null"`
}

// TableName returns the table name for GORM
func (SalesOrderItem) TableName() string {
	return "sales_order_items"
}

// Amount returns the line total
func (i *SalesOrderItem) Amount() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// SalesOrder is a customer order. Its creation deducts stock in the same
// transaction that persists the order and its lines.
type SalesOrder struct {
	shared.BaseAggregateRoot
	CustomerID  uuid.UUID        `gorm:"type:uuid;not null;index"`
	Status      SalesOrderStatus `gorm:"type:varchar(20);not null;default:'PENDING'"`
	TotalAmount decimal.Decimal  `gorm:"type:decimal(18,4);not null;default:0"`
	Items       []SalesOrderItem `gorm:"foreignKey:OrderID;references:ID"`
}

// TableName returns the table name for GORM
func (SalesOrder) TableName() string {
	return "sales_orders"
}

// NewSalesOrder creates a pending customer order
func NewSalesOrder(customerID uuid.UUID) (*SalesOrder, error) {
	if customerID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_CUSTOMER", "Customer ID cannot be empty")
	}

	return &SalesOrder{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		CustomerID:        customerID,
		Status:            SalesOrderStatusPending,
		TotalAmount:       decimal.Zero,
		Items:             make([]SalesOrderItem, 0),
	}, nil
}

// AddItem adds a fulfilled line to the order, recording the warehouse the
// stock was drawn from.
func (o *SalesOrder) AddItem(productID, warehouseID uuid.UUID, quantity int, unitPrice decimal.Decimal) (*SalesOrderItem, error) {
	if productID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_PRODUCT", "Product ID cannot be empty")
	}
	if warehouseID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_WAREHOUSE", "Warehouse ID cannot be empty")
	}
	if quantity <= 0 {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Quantity must be positive")
	}
	if unitPrice.IsNegative() {
		return nil, shared.NewDomainError("INVALID_PRICE", "Unit price cannot be negative")
	}

	item := SalesOrderItem{
		ID:          uuid.New(),
		OrderID:     o.ID,
		ProductID:   productID,
		WarehouseID: warehouseID,
		Quantity:    quantity,
		UnitPrice:   unitPrice,
		CreatedAt:   time.Now(),
	}
	o.Items = append(o.Items, item)
	o.recalculateTotal()
	o.Touch()

	return &o.Items[len(o.Items)-1], nil
}

// TransitionTo advances the order status
func (o *SalesOrder) TransitionTo(target SalesOrderStatus) error {
	if !target.IsValid() {
		return shared.NewDomainError("INVALID_STATUS", "Unknown order status")
	}
	if !o.Status.CanTransitionTo(target) {
		return shared.ErrInvalidState
	}

	o.Status = target
	o.Touch()
	o.IncrementVersion()

	return nil
}

// GetTotalAmountMoney returns the order total as Money
func (o *SalesOrder) GetTotalAmountMoney() valueobject.Money {
	return valueobject.NewMoneyUSD(o.TotalAmount)
}

func (o *SalesOrder) recalculateTotal() {
	total := decimal.Zero
	for _, item := range o.Items {
		total = total.Add(item.Amount())
	}
	o.TotalAmount = total
}
