package inventory

import (
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stockflow/backend/internal/domain/shared"
	"github.com/stockflow/backend/internal/domain/shared/valueobject"
)

// NoteType classifies a credit/debit note
type NoteType string

const (
	NoteTypeCredit NoteType = "CREDIT"
	NoteTypeDebit  NoteType = "DEBIT"
)

// IsValid checks if the note type is valid
func (t NoteType) IsValid() bool {
	return t == NoteTypeCredit || t == NoteTypeDebit
}

// CreditDebitNote is the append-only audit record for stock corrections
// with a financial dimension. Notes are never updated or deleted.
type CreditDebitNote struct {
	shared.BaseEntity
	Type         NoteType        `gorm:"type:varchar(10);not null;index"`
	Amount       decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	Reason       string          `gorm:"type:text;not null"`
	ProductID    *uuid.UUID      `gorm:"type:uuid;index"`
	WarehouseID  *uuid.UUID      `gorm:"type:uuid;index"`
	ItemQuantity int             `gorm:"not null;default:0"`
	BoxQuantity  int             `gorm:"not null;default:0"`
	CreatedByID  uuid.UUID       `gorm:"type:uuid;not null"`
}

// TableName returns the table name for GORM
func (CreditDebitNote) TableName() string {
	return "credit_debit_notes"
}

// NewCreditDebitNote creates an audit note. Product/warehouse linkage is
// optional; when absent the note records a purely financial correction.
func NewCreditDebitNote(noteType NoteType, amount decimal.Decimal, reason string, productID, warehouseID *uuid.UUID, itemQuantity, boxQuantity int, createdByID uuid.UUID) (*CreditDebitNote, error) {
	if !noteType.IsValid() {
		return nil, shared.NewDomainError("INVALID_NOTE_TYPE", "Note type must be CREDIT or DEBIT")
	}
	if len(strings.TrimSpace(reason)) < 3 {
		return nil, shared.NewDomainError("INVALID_REASON", "Reason must be at least 3 characters")
	}
	if amount.IsNegative() {
		return nil, shared.NewDomainError("INVALID_AMOUNT", "Amount cannot be negative")
	}
	if itemQuantity < 0 || boxQuantity < 0 {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Note quantities cannot be negative")
	}
	if createdByID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_USER", "Creating user cannot be empty")
	}

	return &CreditDebitNote{
		BaseEntity:   shared.NewBaseEntity(),
		Type:         noteType,
		Amount:       amount,
		Reason:       reason,
		ProductID:    productID,
		WarehouseID:  warehouseID,
		ItemQuantity: itemQuantity,
		BoxQuantity:  boxQuantity,
		CreatedByID:  createdByID,
	}, nil
}

// HasInventoryLinkage reports whether the note targets a concrete ledger row
func (n *CreditDebitNote) HasInventoryLinkage() bool {
	return n.ProductID != nil && n.WarehouseID != nil && (n.ItemQuantity > 0 || n.BoxQuantity > 0)
}

// GetAmountMoney returns the note amount as a Money value object
func (n *CreditDebitNote) GetAmountMoney() valueobject.Money {
	return valueobject.NewMoneyUSD(n.Amount)
}
