package partner

import (
	"strings"

	"github.com/stockflow/backend/internal/domain/shared"
)

// Warehouse represents a storage location with a declared capacity.
// Capacity is measured in normalized item units, not boxes.
type Warehouse struct {
	shared.BaseAggregateRoot
	Name     string `gorm:"type:varchar(200);not null;uniqueIndex"`
	Location string `gorm:"type:varchar(300)"`
	Capacity int    `gorm:"not null"` // Maximum normalized units this warehouse can hold
}

// TableName returns the table name for GORM
func (Warehouse) TableName() string {
	return "warehouses"
}

// NewWarehouse creates a new warehouse
func NewWarehouse(name, location string, capacity int) (*Warehouse, error) {
	if strings.TrimSpace(name) == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Warehouse name cannot be empty")
	}
	if capacity <= 0 {
		return nil, shared.NewDomainError("INVALID_CAPACITY", "Warehouse capacity must be positive")
	}

	warehouse := &Warehouse{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              name,
		Location:          location,
		Capacity:          capacity,
	}

	return warehouse, nil
}

// Update updates the warehouse's basic information
func (w *Warehouse) Update(name, location string, capacity int) error {
	if strings.TrimSpace(name) == "" {
		return shared.NewDomainError("INVALID_NAME", "Warehouse name cannot be empty")
	}
	if capacity <= 0 {
		return shared.NewDomainError("INVALID_CAPACITY", "Warehouse capacity must be positive")
	}

	w.Name = name
	w.Location = location
	w.Capacity = capacity
	w.Touch()
	w.IncrementVersion()

	return nil
}
