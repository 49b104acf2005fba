package inventory

import (
	"context"

	"github.com/stockflow/backend/internal/domain/catalog"
	"github.com/stockflow/backend/internal/domain/identity"
	"github.com/stockflow/backend/internal/domain/inventory"
	"github.com/stockflow/backend/internal/domain/partner"
)

// TransactionalRepositories bundles the repositories that participate in a
// single inventory transaction. All of them operate on the same underlying
// database transaction, so row locks taken through one repository are held
// until the scope commits or rolls back.
type TransactionalRepositories struct {
	InventoryItems inventory.InventoryItemRepository
	Transfers      inventory.StockTransferRepository
	Notes          inventory.CreditDebitNoteRepository
	Products       catalog.ProductRepository
	Warehouses     partner.WarehouseRepository
	Users          identity.UserRepository
}

// TransactionScope executes a function within a database transaction.
// If fn returns an error the transaction is rolled back, otherwise committed.
type TransactionScope interface {
	Execute(ctx context.Context, fn func(repos TransactionalRepositories) error) error
}
