package inventory

import (
	"context"

	"github.com/google/uuid"
	"github.com/stockflow/backend/internal/domain/shared"
)

// InventoryItemRepository defines the interface for ledger persistence.
// Every stock mutation in the system funnels through rows loaded here;
// check-then-mutate sequences must use the ForUpdate variants so the row
// stays locked for the span of the owning transaction.
type InventoryItemRepository interface {
	// FindByID finds a ledger row by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*InventoryItem, error)

	// FindByProductAndWarehouse finds the unique row for a product-warehouse pair
	FindByProductAndWarehouse(ctx context.Context, productID, warehouseID uuid.UUID) (*InventoryItem, error)

	// FindByProductAndWarehouseForUpdate locks the row (SELECT ... FOR UPDATE)
	// for the remainder of the current transaction
	FindByProductAndWarehouseForUpdate(ctx context.Context, productID, warehouseID uuid.UUID) (*InventoryItem, error)

	// FindByWarehouse finds all rows in a warehouse
	FindByWarehouse(ctx context.Context, warehouseID uuid.UUID, filter shared.Filter) ([]InventoryItem, error)

	// FindByProduct finds all rows for a product across warehouses
	FindByProduct(ctx context.Context, productID uuid.UUID, filter shared.Filter) ([]InventoryItem, error)

	// FindSourcesForUpdate finds rows for a product holding at least minItems
	// loose items, ordered by item quantity descending, locking each row
	FindSourcesForUpdate(ctx context.Context, productID uuid.UUID, minItems int) ([]InventoryItem, error)

	// FindAll finds all rows matching the filter
	FindAll(ctx context.Context, filter shared.Filter) ([]InventoryItem, error)

	// GetOrCreate returns the row for the pair, creating an empty one if absent
	GetOrCreate(ctx context.Context, productID, warehouseID uuid.UUID) (*InventoryItem, error)

	// Save creates or updates a ledger row
	Save(ctx context.Context, item *InventoryItem) error

	// SaveWithLock saves quantities with an optimistic version check
	SaveWithLock(ctx context.Context, item *InventoryItem) error

	// SumNormalizedUnits sums normalized units across a warehouse's rows
	SumNormalizedUnits(ctx context.Context, warehouseID uuid.UUID) (int, error)

	// Count counts rows matching the filter
	Count(ctx context.Context, filter shared.Filter) (int64, error)
}

// StockTransferRepository defines the interface for transfer persistence
type StockTransferRepository interface {
	// FindByID finds a transfer by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*StockTransfer, error)

	// FindByIDForUpdate locks the transfer row for the current transaction
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*StockTransfer, error)

	// FindAll finds transfers matching the filter
	FindAll(ctx context.Context, filter shared.Filter) ([]StockTransfer, error)

	// FindByStatus finds transfers in a given status
	FindByStatus(ctx context.Context, status TransferStatus, filter shared.Filter) ([]StockTransfer, error)

	// Save creates or updates a transfer
	Save(ctx context.Context, transfer *StockTransfer) error

	// Count counts transfers matching the filter
	Count(ctx context.Context, filter shared.Filter) (int64, error)
}

// CreditDebitNoteRepository defines the interface for audit note persistence.
// Notes are append-only: there is deliberately no update or delete.
type CreditDebitNoteRepository interface {
	// FindByID finds a note by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*CreditDebitNote, error)

	// FindAll finds notes matching the filter
	FindAll(ctx context.Context, filter shared.Filter) ([]CreditDebitNote, error)

	// Create appends a new note
	Create(ctx context.Context, note *CreditDebitNote) error

	// Count counts notes matching the filter
	Count(ctx context.Context, filter shared.Filter) (int64, error)
}
