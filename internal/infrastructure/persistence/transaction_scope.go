package persistence

import (
	"context"

	appinventory "github.com/stockflow/backend/internal/application/inventory"
	apptrade "github.com/stockflow/backend/internal/application/trade"
	"gorm.io/gorm"
)

// GormInventoryTransactionScope implements the inventory transaction scope.
// Each Execute call opens one database transaction and hands the caller a
// repository bundle bound to it, so row locks survive until commit.
type GormInventoryTransactionScope struct {
	db *gorm.DB
}

// NewGormInventoryTransactionScope creates an inventory transaction scope
func NewGormInventoryTransactionScope(db *gorm.DB) *GormInventoryTransactionScope {
	return &GormInventoryTransactionScope{db: db}
}

func (s *GormInventoryTransactionScope) Execute(ctx context.Context, fn func(repos appinventory.TransactionalRepositories) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(appinventory.TransactionalRepositories{
			InventoryItems: NewGormInventoryItemRepository(tx),
			Transfers:      NewGormStockTransferRepository(tx),
			Notes:          NewGormCreditDebitNoteRepository(tx),
			Products:       NewGormProductRepository(tx),
			Warehouses:     NewGormWarehouseRepository(tx),
			Users:          NewGormUserRepository(tx),
		})
	})
}

// GormTradeTransactionScope implements the trade transaction scope. Order
// rows and ledger rows are written in the same transaction so a failed
// deduction or capacity breach rolls back the order too.
type GormTradeTransactionScope struct {
	db *gorm.DB
}

// NewGormTradeTransactionScope creates a trade transaction scope
func NewGormTradeTransactionScope(db *gorm.DB) *GormTradeTransactionScope {
	return &GormTradeTransactionScope{db: db}
}

func (s *GormTradeTransactionScope) Execute(ctx context.Context, fn func(repos apptrade.TransactionalRepositories) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(apptrade.TransactionalRepositories{
			PurchaseOrders: NewGormPurchaseOrderRepository(tx),
			SalesOrders:    NewGormSalesOrderRepository(tx),
			InventoryItems: NewGormInventoryItemRepository(tx),
			Products:       NewGormProductRepository(tx),
			Warehouses:     NewGormWarehouseRepository(tx),
			Customers:      NewGormCustomerRepository(tx),
			Suppliers:      NewGormSupplierRepository(tx),
		})
	})
}

var (
	_ appinventory.TransactionScope = (*GormInventoryTransactionScope)(nil)
	_ apptrade.TransactionScope     = (*GormTradeTransactionScope)(nil)
)
