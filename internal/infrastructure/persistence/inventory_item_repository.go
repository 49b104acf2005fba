package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/stockflow/backend/internal/domain/inventory"
	"github.com/stockflow/backend/internal/domain/shared"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormInventoryItemRepository implements inventory.InventoryItemRepository
type GormInventoryItemRepository struct {
	db *gorm.DB
}

// NewGormInventoryItemRepository creates a new inventory item repository
func NewGormInventoryItemRepository(db *gorm.DB) *GormInventoryItemRepository {
	return &GormInventoryItemRepository{db: db}
}

func (r *GormInventoryItemRepository) FindByID(ctx context.Context, id uuid.UUID) (*inventory.InventoryItem, error) {
	var item inventory.InventoryItem
	if err := r.db.WithContext(ctx).First(&item, "id = ?", id).Error; err != nil {
		return nil, notFound(err)
	}
	return &item, nil
}

func (r *GormInventoryItemRepository) FindByProductAndWarehouse(ctx context.Context, productID, warehouseID uuid.UUID) (*inventory.InventoryItem, error) {
	var item inventory.InventoryItem
	err := r.db.WithContext(ctx).
		First(&item, "product_id = ? AND warehouse_id = ?", productID, warehouseID).Error
	if err != nil {
		return nil, notFound(err)
	}
	return &item, nil
}

func (r *GormInventoryItemRepository) FindByProductAndWarehouseForUpdate(ctx context.Context, productID, warehouseID uuid.UUID) (*inventory.InventoryItem, error) {
	var item inventory.InventoryItem
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&item, "product_id = ? AND warehouse_id = ?", productID, warehouseID).Error
	if err != nil {
		return nil, notFound(err)
	}
	return &item, nil
}

func (r *GormInventoryItemRepository) FindByWarehouse(ctx context.Context, warehouseID uuid.UUID, filter shared.Filter) ([]inventory.InventoryItem, error) {
	var items []inventory.InventoryItem
	query := r.db.WithContext(ctx).Where("warehouse_id = ?", warehouseID)
	query = applyFilter(query, filter)
	if err := query.Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *GormInventoryItemRepository) FindByProduct(ctx context.Context, productID uuid.UUID, filter shared.Filter) ([]inventory.InventoryItem, error) {
	var items []inventory.InventoryItem
	query := r.db.WithContext(ctx).Where("product_id = ?", productID)
	query = applyFilter(query, filter)
	if err := query.Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// FindSourcesForUpdate locks candidate rows for a single-warehouse deduction.
// Rows are ordered richest-first so the caller can take the top candidate.
func (r *GormInventoryItemRepository) FindSourcesForUpdate(ctx context.Context, productID uuid.UUID, minItems int) ([]inventory.InventoryItem, error) {
	var items []inventory.InventoryItem
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("product_id = ? AND item_quantity >= ?", productID, minItems).
		Order("item_quantity DESC").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *GormInventoryItemRepository) FindAll(ctx context.Context, filter shared.Filter) ([]inventory.InventoryItem, error) {
	var items []inventory.InventoryItem
	query := applyFilter(r.db.WithContext(ctx).Model(&inventory.InventoryItem{}), filter)
	if err := query.Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// GetOrCreate returns the ledger row for the pair, inserting an empty row when
// none exists. Concurrent inserts are absorbed by the unique index: on
// conflict the insert is a no-op and the winner's row is re-fetched.
func (r *GormInventoryItemRepository) GetOrCreate(ctx context.Context, productID, warehouseID uuid.UUID) (*inventory.InventoryItem, error) {
	item, err := r.FindByProductAndWarehouse(ctx, productID, warehouseID)
	if err == nil {
		return item, nil
	}
	if !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}

	fresh, err := inventory.NewInventoryItem(productID, warehouseID)
	if err != nil {
		return nil, err
	}
	err = r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "product_id"}, {Name: "warehouse_id"}},
			DoNothing: true,
		}).
		Create(fresh).Error
	if err != nil {
		return nil, err
	}

	return r.FindByProductAndWarehouse(ctx, productID, warehouseID)
}

func (r *GormInventoryItemRepository) Save(ctx context.Context, item *inventory.InventoryItem) error {
	return r.db.WithContext(ctx).Save(item).Error
}

// SaveWithLock persists quantity changes guarded by the optimistic version
// check. The domain mutators have already incremented Version, so the row must
// still be at Version-1 for the write to land.
func (r *GormInventoryItemRepository) SaveWithLock(ctx context.Context, item *inventory.InventoryItem) error {
	result := r.db.WithContext(ctx).
		Model(&inventory.InventoryItem{}).
		Where("id = ? AND version = ?", item.ID, item.Version-1).
		Updates(map[string]interface{}{
			"item_quantity": item.ItemQuantity,
			"box_quantity":  item.BoxQuantity,
			"version":       item.Version,
			"updated_at":    time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.NewDomainError("OPTIMISTIC_LOCK_FAILED", "inventory row was modified concurrently")
	}
	return nil
}

// SumNormalizedUnits totals item_quantity + box_quantity * box_size across a
// warehouse, joining products to resolve each row's box size.
func (r *GormInventoryItemRepository) SumNormalizedUnits(ctx context.Context, warehouseID uuid.UUID) (int, error) {
	var total int64
	err := r.db.WithContext(ctx).
		Model(&inventory.InventoryItem{}).
		Joins("JOIN products ON products.id = inventory_items.product_id").
		Where("inventory_items.warehouse_id = ?", warehouseID).
		Select("COALESCE(SUM(inventory_items.item_quantity + inventory_items.box_quantity * COALESCE(products.box_size, 0)), 0)").
		Scan(&total).Error
	if err != nil {
		return 0, err
	}
	return int(total), nil
}

func (r *GormInventoryItemRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := applyFilterWithoutPagination(r.db.WithContext(ctx).Model(&inventory.InventoryItem{}), filter)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
