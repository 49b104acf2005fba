package inventory

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/stockflow/backend/internal/domain/partner"
	"github.com/stockflow/backend/internal/domain/shared"
)

// WarehouseUsageReader reports the occupied normalized units of a warehouse.
// The sum spans every ledger row in the warehouse, valuing boxes at the
// product's boxSize (0 when unknown).
type WarehouseUsageReader interface {
	SumNormalizedUnits(ctx context.Context, warehouseID uuid.UUID) (int, error)
}

// CapacityChecker guards stock increases against a warehouse's declared
// capacity. It is consulted only before increases; decreases never need it.
type CapacityChecker struct {
	usage WarehouseUsageReader
}

// NewCapacityChecker creates a new CapacityChecker
func NewCapacityChecker(usage WarehouseUsageReader) *CapacityChecker {
	return &CapacityChecker{usage: usage}
}

// Check rejects the proposed increase when it would push the warehouse over
// capacity. The read is not separately locked; callers run it inside the
// same transaction as the mutation it guards.
func (c *CapacityChecker) Check(ctx context.Context, warehouse *partner.Warehouse, additionalUnits int) error {
	if additionalUnits <= 0 {
		return shared.NewDomainError("INVALID_QUANTITY", "Additional units must be positive")
	}

	used, err := c.usage.SumNormalizedUnits(ctx, warehouse.ID)
	if err != nil {
		return err
	}

	if used+additionalUnits > warehouse.Capacity {
		return shared.NewDomainError("CAPACITY_EXCEEDED",
			fmt.Sprintf("warehouse %s capacity %d exceeded: %d units in use, %d requested",
				warehouse.Name, warehouse.Capacity, used, additionalUnits))
	}

	return nil
}

// Usage returns the current occupied normalized units for a warehouse
func (c *CapacityChecker) Usage(ctx context.Context, warehouseID uuid.UUID) (int, error) {
	return c.usage.SumNormalizedUnits(ctx, warehouseID)
}
