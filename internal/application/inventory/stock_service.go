package inventory

import (
	"context"

	"github.com/google/uuid"
	"github.com/stockflow/backend/internal/domain/catalog"
	"github.com/stockflow/backend/internal/domain/inventory"
	"github.com/stockflow/backend/internal/domain/partner"
	"github.com/stockflow/backend/internal/domain/shared"
)

// StockService answers read-side questions about the inventory ledger:
// stock levels, warehouse utilization, and reorder alerts.
type StockService struct {
	inventoryRepo   inventory.InventoryItemRepository
	productRepo     catalog.ProductRepository
	warehouseRepo   partner.WarehouseRepository
	capacityChecker *inventory.CapacityChecker
}

// NewStockService creates a new StockService
func NewStockService(inventoryRepo inventory.InventoryItemRepository, productRepo catalog.ProductRepository, warehouseRepo partner.WarehouseRepository) *StockService {
	return &StockService{
		inventoryRepo:   inventoryRepo,
		productRepo:     productRepo,
		warehouseRepo:   warehouseRepo,
		capacityChecker: inventory.NewCapacityChecker(inventoryRepo),
	}
}

// GetStockLevel returns the ledger row for a product-warehouse pair
func (s *StockService) GetStockLevel(ctx context.Context, productID, warehouseID uuid.UUID) (*StockLevelResponse, error) {
	item, err := s.inventoryRepo.FindByProductAndWarehouse(ctx, productID, warehouseID)
	if err != nil {
		return nil, err
	}
	product, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	response := s.toResponse(item, product)
	return &response, nil
}

// ListByWarehouse returns all stock levels in a warehouse
func (s *StockService) ListByWarehouse(ctx context.Context, warehouseID uuid.UUID, filter shared.Filter) ([]StockLevelResponse, error) {
	items, err := s.inventoryRepo.FindByWarehouse(ctx, warehouseID, filter)
	if err != nil {
		return nil, err
	}
	return s.enrich(ctx, items)
}

// ListByProduct returns a product's stock across all warehouses
func (s *StockService) ListByProduct(ctx context.Context, productID uuid.UUID, filter shared.Filter) ([]StockLevelResponse, error) {
	items, err := s.inventoryRepo.FindByProduct(ctx, productID, filter)
	if err != nil {
		return nil, err
	}
	return s.enrich(ctx, items)
}

// List returns stock levels matching the filter
func (s *StockService) List(ctx context.Context, filter shared.Filter) ([]StockLevelResponse, int64, error) {
	items, err := s.inventoryRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.inventoryRepo.Count(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	responses, err := s.enrich(ctx, items)
	if err != nil {
		return nil, 0, err
	}
	return responses, total, nil
}

// GetWarehouseUsage reports capacity utilization for one warehouse
func (s *StockService) GetWarehouseUsage(ctx context.Context, warehouseID uuid.UUID) (*WarehouseUsageResponse, error) {
	warehouse, err := s.warehouseRepo.FindByID(ctx, warehouseID)
	if err != nil {
		return nil, err
	}
	used, err := s.capacityChecker.Usage(ctx, warehouseID)
	if err != nil {
		return nil, err
	}

	free := warehouse.Capacity - used
	if free < 0 {
		free = 0
	}
	return &WarehouseUsageResponse{
		WarehouseID: warehouse.ID,
		Name:        warehouse.Name,
		Capacity:    warehouse.Capacity,
		UsedUnits:   used,
		FreeUnits:   free,
	}, nil
}

// ListLowStock returns rows whose normalized total is below the
// product's reorder threshold
func (s *StockService) ListLowStock(ctx context.Context, filter shared.Filter) ([]StockLevelResponse, error) {
	items, err := s.inventoryRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}
	responses, err := s.enrich(ctx, items)
	if err != nil {
		return nil, err
	}

	low := responses[:0]
	for _, r := range responses {
		if r.BelowMinimum {
			low = append(low, r)
		}
	}
	return low, nil
}

// enrich joins ledger rows with their products for normalized totals
// and display names
func (s *StockService) enrich(ctx context.Context, items []inventory.InventoryItem) ([]StockLevelResponse, error) {
	if len(items) == 0 {
		return []StockLevelResponse{}, nil
	}

	productIDs := make([]uuid.UUID, 0, len(items))
	seen := make(map[uuid.UUID]bool, len(items))
	for i := range items {
		if !seen[items[i].ProductID] {
			seen[items[i].ProductID] = true
			productIDs = append(productIDs, items[i].ProductID)
		}
	}

	products, err := s.productRepo.FindByIDs(ctx, productIDs)
	if err != nil {
		return nil, err
	}
	byID := make(map[uuid.UUID]*catalog.Product, len(products))
	for i := range products {
		byID[products[i].ID] = &products[i]
	}

	responses := make([]StockLevelResponse, len(items))
	for i := range items {
		responses[i] = s.toResponse(&items[i], byID[items[i].ProductID])
	}
	return responses, nil
}

func (s *StockService) toResponse(item *inventory.InventoryItem, product *catalog.Product) StockLevelResponse {
	boxSize := 0
	if product != nil {
		boxSize = product.BoxSizeOrZero()
	}
	response := ToStockLevelResponse(item, boxSize)
	if product != nil {
		response.ProductName = product.Name
		response.ProductSKU = product.SKU
		response.BelowMinimum = response.TotalUnits < product.MinStockLevel
	}
	return response
}
