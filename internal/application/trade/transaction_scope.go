package trade

import (
	"context"

	"github.com/stockflow/backend/internal/domain/catalog"
	"github.com/stockflow/backend/internal/domain/inventory"
	"github.com/stockflow/backend/internal/domain/partner"
	"github.com/stockflow/backend/internal/domain/trade"
)

// TransactionalRepositories bundles the repositories that participate
// in a single trade transaction. Order creation and purchase-order
// receiving mutate the inventory ledger in the same transaction as the
// order rows, so both sets of repositories share one database
// transaction here.
type TransactionalRepositories struct {
	PurchaseOrders trade.PurchaseOrderRepository
	SalesOrders    trade.SalesOrderRepository
	InventoryItems inventory.InventoryItemRepository
	Products       catalog.ProductRepository
	Warehouses     partner.WarehouseRepository
	Customers      partner.CustomerRepository
	Suppliers      partner.SupplierRepository
}

// TransactionScope executes a function within a database transaction.
// If fn returns an error the transaction is rolled back, otherwise committed.
type TransactionScope interface {
	Execute(ctx context.Context, fn func(repos TransactionalRepositories) error) error
}
