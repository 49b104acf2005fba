package partner

import (
	"context"

	"github.com/google/uuid"
	"github.com/stockflow/backend/internal/domain/inventory"
	"github.com/stockflow/backend/internal/domain/partner"
	"github.com/stockflow/backend/internal/domain/shared"
)

// WarehouseService handles warehouse management
type WarehouseService struct {
	warehouseRepo partner.WarehouseRepository
	usageReader   inventory.WarehouseUsageReader
}

// NewWarehouseService creates a new WarehouseService
func NewWarehouseService(warehouseRepo partner.WarehouseRepository, usageReader inventory.WarehouseUsageReader) *WarehouseService {
	return &WarehouseService{
		warehouseRepo: warehouseRepo,
		usageReader:   usageReader,
	}
}

// Create creates a new warehouse
func (s *WarehouseService) Create(ctx context.Context, req CreateWarehouseRequest) (*WarehouseResponse, error) {
	warehouse, err := partner.NewWarehouse(req.Name, req.Location, req.Capacity)
	if err != nil {
		return nil, err
	}
	if err := s.warehouseRepo.Save(ctx, warehouse); err != nil {
		return nil, err
	}
	response := ToWarehouseResponse(warehouse)
	return &response, nil
}

// Update updates a warehouse. Shrinking capacity below current usage
// is rejected so the capacity invariant cannot be violated by a
// configuration edit.
func (s *WarehouseService) Update(ctx context.Context, warehouseID uuid.UUID, req UpdateWarehouseRequest) (*WarehouseResponse, error) {
	warehouse, err := s.warehouseRepo.FindByID(ctx, warehouseID)
	if err != nil {
		return nil, err
	}

	if req.Capacity < warehouse.Capacity {
		used, err := s.usageReader.SumNormalizedUnits(ctx, warehouseID)
		if err != nil {
			return nil, err
		}
		if req.Capacity < used {
			return nil, shared.NewDomainError("CAPACITY_BELOW_USAGE", "Capacity cannot be set below current stock level")
		}
	}

	if err := warehouse.Update(req.Name, req.Location, req.Capacity); err != nil {
		return nil, err
	}
	if err := s.warehouseRepo.Save(ctx, warehouse); err != nil {
		return nil, err
	}
	response := ToWarehouseResponse(warehouse)
	return &response, nil
}

// GetByID returns a warehouse by ID
func (s *WarehouseService) GetByID(ctx context.Context, warehouseID uuid.UUID) (*WarehouseResponse, error) {
	warehouse, err := s.warehouseRepo.FindByID(ctx, warehouseID)
	if err != nil {
		return nil, err
	}
	response := ToWarehouseResponse(warehouse)
	return &response, nil
}

// List returns warehouses matching the filter
func (s *WarehouseService) List(ctx context.Context, filter shared.Filter) ([]WarehouseResponse, int64, error) {
	warehouses, err := s.warehouseRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.warehouseRepo.Count(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]WarehouseResponse, len(warehouses))
	for i := range warehouses {
		responses[i] = ToWarehouseResponse(&warehouses[i])
	}
	return responses, total, nil
}

// Delete removes a warehouse
func (s *WarehouseService) Delete(ctx context.Context, warehouseID uuid.UUID) error {
	if _, err := s.warehouseRepo.FindByID(ctx, warehouseID); err != nil {
		return err
	}

	used, err := s.usageReader.SumNormalizedUnits(ctx, warehouseID)
	if err != nil {
		return err
	}
	if used > 0 {
		return shared.NewDomainError("WAREHOUSE_NOT_EMPTY", "Cannot delete a warehouse that still holds stock")
	}

	return s.warehouseRepo.Delete(ctx, warehouseID)
}
