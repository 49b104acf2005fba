package inventory

import (
	"time"

	"github.com/google/uuid"
	"github.com/stockflow/backend/internal/domain/shared"
)

// TransferStatus represents the lifecycle state of a stock transfer
type TransferStatus string

const (
	TransferStatusPending   TransferStatus = "PENDING"
	TransferStatusCompleted TransferStatus = "COMPLETED"
	TransferStatusRejected  TransferStatus = "REJECTED"
)

// IsValid checks if the status is a valid TransferStatus
func (s TransferStatus) IsValid() bool {
	switch s {
	case TransferStatusPending, TransferStatusCompleted, TransferStatusRejected:
		return true
	}
	return false
}

// IsTerminal reports whether the status is terminal
func (s TransferStatus) IsTerminal() bool {
	return s == TransferStatusCompleted || s == TransferStatusRejected
}

// StockTransfer is a request to move stock between two warehouses.
// It transitions exactly once from PENDING to COMPLETED or REJECTED and is
// never mutated afterwards. Creating a transfer does not reserve stock;
// the source balance is re-validated at approval time.
type StockTransfer struct {
	shared.BaseAggregateRoot
	ProductID       uuid.UUID      `gorm:"type:uuid;not null;index"`
	FromWarehouseID uuid.UUID      `gorm:"type:uuid;not null;index"`
	ToWarehouseID   uuid.UUID      `gorm:"type:uuid;not null;index"`
	ItemQuantity    int            `gorm:"not null;default:0"`
	BoxQuantity     int            `gorm:"not null;default:0"`
	Status          TransferStatus `gorm:"type:varchar(20);not null;default:'PENDING'"`
	CreatedByID     uuid.UUID      `gorm:"type:uuid;not null"`
	ApprovedByID    *uuid.UUID     `gorm:"type:uuid"`
	ResolvedAt      *time.Time
}

// TableName returns the table name for GORM
func (StockTransfer) TableName() string {
	return "stock_transfers"
}

// NewStockTransfer creates a pending transfer request
func NewStockTransfer(productID, fromWarehouseID, toWarehouseID, createdByID uuid.UUID, itemQuantity, boxQuantity int) (*StockTransfer, error) {
	if productID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_PRODUCT", "Product ID cannot be empty")
	}
	if fromWarehouseID == uuid.Nil || toWarehouseID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_WAREHOUSE", "Warehouse IDs cannot be empty")
	}
	if fromWarehouseID == toWarehouseID {
		return nil, shared.NewDomainError("SAME_WAREHOUSE", "Source and destination warehouses must differ")
	}
	if itemQuantity < 0 || boxQuantity < 0 {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Transfer quantities cannot be negative")
	}
	if itemQuantity == 0 && boxQuantity == 0 {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Transfer requires a positive quantity")
	}
	if createdByID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_USER", "Requesting user cannot be empty")
	}

	return &StockTransfer{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		ProductID:         productID,
		FromWarehouseID:   fromWarehouseID,
		ToWarehouseID:     toWarehouseID,
		ItemQuantity:      itemQuantity,
		BoxQuantity:       boxQuantity,
		Status:            TransferStatusPending,
		CreatedByID:       createdByID,
	}, nil
}

// Complete marks the transfer as applied. Only valid from PENDING.
func (t *StockTransfer) Complete(approvedByID uuid.UUID) error {
	if t.Status != TransferStatusPending {
		return shared.ErrInvalidState
	}

	now := time.Now()
	t.Status = TransferStatusCompleted
	t.ApprovedByID = &approvedByID
	t.ResolvedAt = &now
	t.UpdatedAt = now
	t.IncrementVersion()

	t.AddDomainEvent(NewTransferCompletedEvent(t))

	return nil
}

// Reject marks the transfer as rejected without moving stock.
// Rejecting a transfer already in a terminal state is an error.
func (t *StockTransfer) Reject(rejectedByID uuid.UUID) error {
	if t.Status != TransferStatusPending {
		return shared.ErrInvalidState
	}

	now := time.Now()
	t.Status = TransferStatusRejected
	t.ApprovedByID = &rejectedByID
	t.ResolvedAt = &now
	t.UpdatedAt = now
	t.IncrementVersion()

	t.AddDomainEvent(NewTransferRejectedEvent(t))

	return nil
}

// IsPending reports whether the transfer is still awaiting a decision
func (t *StockTransfer) IsPending() bool {
	return t.Status == TransferStatusPending
}
