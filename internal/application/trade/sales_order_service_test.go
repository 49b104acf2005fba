package trade

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stockflow/backend/internal/domain/inventory"
	"github.com/stockflow/backend/internal/domain/partner"
	"github.com/stockflow/backend/internal/domain/shared"
	"github.com/stockflow/backend/internal/domain/trade"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type salesOrderFixture struct {
	service   *SalesOrderService
	orders    *MockSalesOrderRepository
	items     *MockInventoryItemRepository
	products  *MockProductRepository
	customers *MockCustomerRepository
}

func newSalesOrderFixture() *salesOrderFixture {
	f := &salesOrderFixture{
		orders:    new(MockSalesOrderRepository),
		items:     new(MockInventoryItemRepository),
		products:  new(MockProductRepository),
		customers: new(MockCustomerRepository),
	}
	scope := &fakeScope{repos: TransactionalRepositories{
		SalesOrders:    f.orders,
		InventoryItems: f.items,
		Products:       f.products,
		Customers:      f.customers,
	}}
	f.service = NewSalesOrderService(scope, f.orders)
	return f
}

func newTestCustomer(t *testing.T) *partner.Customer {
	t.Helper()
	customer, err := partner.NewCustomer("R. Okafor", "+155502000", "r.okafor@example.com", "5 Hill St")
	require.NoError(t, err)
	return customer
}

// sourceRow returns a ledger row holding the given loose items with its
// creation events drained.
func sourceRow(t *testing.T, productID, warehouseID uuid.UUID, items int) inventory.InventoryItem {
	t.Helper()
	row, err := inventory.NewInventoryItem(productID, warehouseID)
	require.NoError(t, err)
	require.NoError(t, row.Credit(items, 0))
	row.ClearDomainEvents()
	return *row
}

func TestSalesOrderService_Create_Success(t *testing.T) {
	f := newSalesOrderFixture()
	ctx := context.Background()
	customer := newTestCustomer(t)
	product := newItemProduct(t)
	bigWarehouseID := uuid.New()
	smallWarehouseID := uuid.New()

	req := CreateSalesOrderRequest{
		CustomerID: customer.ID,
		Items: []CreateSalesOrderItemRequest{
			{ProductID: product.ID, Quantity: 6},
		},
	}

	// Sources arrive ordered by loose items descending; the richest row wins.
	sources := []inventory.InventoryItem{
		sourceRow(t, product.ID, bigWarehouseID, 50),
		sourceRow(t, product.ID, smallWarehouseID, 8),
	}

	f.customers.On("FindByID", ctx, customer.ID).Return(customer, nil)
	f.products.On("FindByID", ctx, product.ID).Return(product, nil)
	f.items.On("FindSourcesForUpdate", ctx, product.ID, 6).Return(sources, nil)
	f.items.On("SaveWithLock", ctx, mock.AnythingOfType("*inventory.InventoryItem")).Return(nil)
	f.orders.On("Save", ctx, mock.AnythingOfType("*trade.SalesOrder")).Return(nil)

	result, err := f.service.Create(ctx, req)

	require.NoError(t, err)
	assert.Equal(t, trade.SalesOrderStatusPending, result.Status)
	require.Len(t, result.Items, 1)
	assert.Equal(t, bigWarehouseID, result.Items[0].WarehouseID)
	// Line is priced from the product catalog: 8 * 6.
	assert.True(t, result.Items[0].UnitPrice.Equal(product.Price))
	assert.True(t, result.TotalAmount.Equal(decimal.NewFromInt(48)))
	assert.Equal(t, "48.00 USD", result.TotalAmountFormatted)
	f.items.AssertNumberOfCalls(t, "SaveWithLock", 1)
}

func TestSalesOrderService_Create_MultipleLines(t *testing.T) {
	f := newSalesOrderFixture()
	ctx := context.Background()
	customer := newTestCustomer(t)
	productA := newItemProduct(t)
	productB := newItemProduct(t)
	warehouseID := uuid.New()

	req := CreateSalesOrderRequest{
		CustomerID: customer.ID,
		Items: []CreateSalesOrderItemRequest{
			{ProductID: productA.ID, Quantity: 2},
			{ProductID: productB.ID, Quantity: 3},
		},
	}

	f.customers.On("FindByID", ctx, customer.ID).Return(customer, nil)
	f.products.On("FindByID", ctx, productA.ID).Return(productA, nil)
	f.products.On("FindByID", ctx, productB.ID).Return(productB, nil)
	f.items.On("FindSourcesForUpdate", ctx, productA.ID, 2).
		Return([]inventory.InventoryItem{sourceRow(t, productA.ID, warehouseID, 10)}, nil)
	f.items.On("FindSourcesForUpdate", ctx, productB.ID, 3).
		Return([]inventory.InventoryItem{sourceRow(t, productB.ID, warehouseID, 10)}, nil)
	f.items.On("SaveWithLock", ctx, mock.AnythingOfType("*inventory.InventoryItem")).Return(nil)
	f.orders.On("Save", ctx, mock.AnythingOfType("*trade.SalesOrder")).Return(nil)

	result, err := f.service.Create(ctx, req)

	require.NoError(t, err)
	require.Len(t, result.Items, 2)
	assert.True(t, result.TotalAmount.Equal(decimal.NewFromInt(40)))
	f.items.AssertNumberOfCalls(t, "SaveWithLock", 2)
}

func TestSalesOrderService_Create_NoSingleWarehouseCanFulfill(t *testing.T) {
	f := newSalesOrderFixture()
	ctx := context.Background()
	customer := newTestCustomer(t)
	product := newItemProduct(t)

	req := CreateSalesOrderRequest{
		CustomerID: customer.ID,
		Items: []CreateSalesOrderItemRequest{
			{ProductID: product.ID, Quantity: 100},
		},
	}

	f.customers.On("FindByID", ctx, customer.ID).Return(customer, nil)
	f.products.On("FindByID", ctx, product.ID).Return(product, nil)
	// Plenty of total stock across warehouses, but no single row can
	// cover the line, so the query returns nothing.
	f.items.On("FindSourcesForUpdate", ctx, product.ID, 100).
		Return([]inventory.InventoryItem{}, nil)

	result, err := f.service.Create(ctx, req)

	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "INSUFFICIENT_STOCK", domainErr.Code)
	assert.Nil(t, result)
	f.orders.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	f.items.AssertNotCalled(t, "SaveWithLock", mock.Anything, mock.Anything)
}

func TestSalesOrderService_Create_UnknownCustomer(t *testing.T) {
	f := newSalesOrderFixture()
	ctx := context.Background()
	customerID := uuid.New()

	req := CreateSalesOrderRequest{
		CustomerID: customerID,
		Items: []CreateSalesOrderItemRequest{
			{ProductID: uuid.New(), Quantity: 1},
		},
	}

	f.customers.On("FindByID", ctx, customerID).Return(nil, shared.ErrNotFound)

	_, err := f.service.Create(ctx, req)

	require.ErrorIs(t, err, shared.ErrNotFound)
}

func TestSalesOrderService_UpdateStatus(t *testing.T) {
	f := newSalesOrderFixture()
	ctx := context.Background()

	order, err := trade.NewSalesOrder(uuid.New())
	require.NoError(t, err)

	f.orders.On("FindByID", ctx, order.ID).Return(order, nil)
	f.orders.On("Save", ctx, order).Return(nil)

	result, err := f.service.UpdateStatus(ctx, order.ID, trade.SalesOrderStatusShipped)

	require.NoError(t, err)
	assert.Equal(t, trade.SalesOrderStatusShipped, result.Status)
	// A status change after creation never moves stock.
	f.items.AssertNotCalled(t, "FindSourcesForUpdate", mock.Anything, mock.Anything, mock.Anything)
}

func TestSalesOrderService_UpdateStatus_Regression(t *testing.T) {
	f := newSalesOrderFixture()
	ctx := context.Background()

	order, err := trade.NewSalesOrder(uuid.New())
	require.NoError(t, err)
	require.NoError(t, order.TransitionTo(trade.SalesOrderStatusDelivered))

	f.orders.On("FindByID", ctx, order.ID).Return(order, nil)

	_, err = f.service.UpdateStatus(ctx, order.ID, trade.SalesOrderStatusProcessing)

	require.ErrorIs(t, err, shared.ErrInvalidState)
	f.orders.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}
