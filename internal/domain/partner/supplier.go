package partner

import (
	"strings"

	"github.com/stockflow/backend/internal/domain/shared"
)

// Supplier represents a goods supplier
type Supplier struct {
	shared.BaseAggregateRoot
	Name        string `gorm:"type:varchar(200);not null"`
	ContactName string `gorm:"type:varchar(100)"`
	Phone       string `gorm:"type:varchar(50)"`
	Email       string `gorm:"type:varchar(200);index"`
	Address     string `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (Supplier) TableName() string {
	return "suppliers"
}

// NewSupplier creates a new supplier
func NewSupplier(name, contactName, phone, email, address string) (*Supplier, error) {
	if strings.TrimSpace(name) == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Supplier name cannot be empty")
	}

	return &Supplier{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              name,
		ContactName:       contactName,
		Phone:             phone,
		Email:             email,
		Address:           address,
	}, nil
}

// Update updates the supplier's information
func (s *Supplier) Update(name, contactName, phone, email, address string) error {
	if strings.TrimSpace(name) == "" {
		return shared.NewDomainError("INVALID_NAME", "Supplier name cannot be empty")
	}

	s.Name = name
	s.ContactName = contactName
	s.Phone = phone
	s.Email = email
	s.Address = address
	s.Touch()
	s.IncrementVersion()

	return nil
}
