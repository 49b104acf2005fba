package inventory

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stockflow/backend/internal/domain/inventory"
	"github.com/stockflow/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type adjustmentFixture struct {
	service   *AdjustmentService
	items     *MockInventoryItemRepository
	notes     *MockCreditDebitNoteRepository
	products  *MockProductRepository
	warehouse *MockWarehouseRepository
}

func newAdjustmentFixture() *adjustmentFixture {
	f := &adjustmentFixture{
		items:     new(MockInventoryItemRepository),
		notes:     new(MockCreditDebitNoteRepository),
		products:  new(MockProductRepository),
		warehouse: new(MockWarehouseRepository),
	}
	scope := &fakeScope{repos: TransactionalRepositories{
		InventoryItems: f.items,
		Notes:          f.notes,
		Products:       f.products,
		Warehouses:     f.warehouse,
	}}
	f.service = NewAdjustmentService(scope, f.notes)
	return f
}

func TestAdjustmentService_CreateNote_FinancialOnly(t *testing.T) {
	f := newAdjustmentFixture()
	ctx := context.Background()

	req := CreateNoteRequest{
		Type:   inventory.NoteTypeCredit,
		Amount: decimal.NewFromInt(120),
		Reason: "Supplier rebate for Q3",
	}

	f.notes.On("Create", ctx, mock.AnythingOfType("*inventory.CreditDebitNote")).Return(nil)

	result, err := f.service.CreateNote(ctx, uuid.New(), req)

	require.NoError(t, err)
	assert.False(t, result.StockApplied)
	f.notes.AssertExpectations(t)
	f.items.AssertNotCalled(t, "GetOrCreate", mock.Anything, mock.Anything, mock.Anything)
}

func TestAdjustmentService_CreateNote_CreditAppliesStock(t *testing.T) {
	f := newAdjustmentFixture()
	ctx := context.Background()
	productID := uuid.New()
	warehouseID := uuid.New()
	row := stockedItem(t, productID, warehouseID, 0, 0)

	req := CreateNoteRequest{
		Type:         inventory.NoteTypeCredit,
		Amount:       decimal.NewFromInt(50),
		Reason:       "Found pallet during stocktake",
		ProductID:    &productID,
		WarehouseID:  &warehouseID,
		ItemQuantity: 5,
		BoxQuantity:  2,
	}

	f.notes.On("Create", ctx, mock.AnythingOfType("*inventory.CreditDebitNote")).Return(nil)
	f.items.On("GetOrCreate", ctx, productID, warehouseID).Return(row, nil)
	f.items.On("SaveWithLock", ctx, row).Return(nil)

	result, err := f.service.CreateNote(ctx, uuid.New(), req)

	require.NoError(t, err)
	assert.True(t, result.StockApplied)
	assert.Equal(t, 5, row.ItemQuantity)
	assert.Equal(t, 2, row.BoxQuantity)
	f.items.AssertExpectations(t)
}

func TestAdjustmentService_CreateNote_DebitAppliesStock(t *testing.T) {
	f := newAdjustmentFixture()
	ctx := context.Background()
	productID := uuid.New()
	warehouseID := uuid.New()
	row := stockedItem(t, productID, warehouseID, 10, 3)

	req := CreateNoteRequest{
		Type:         inventory.NoteTypeDebit,
		Amount:       decimal.NewFromInt(30),
		Reason:       "Water damage writeoff",
		ProductID:    &productID,
		WarehouseID:  &warehouseID,
		ItemQuantity: 4,
		BoxQuantity:  1,
	}

	f.notes.On("Create", ctx, mock.AnythingOfType("*inventory.CreditDebitNote")).Return(nil)
	f.items.On("FindByProductAndWarehouseForUpdate", ctx, productID, warehouseID).Return(row, nil)
	f.items.On("SaveWithLock", ctx, row).Return(nil)

	result, err := f.service.CreateNote(ctx, uuid.New(), req)

	require.NoError(t, err)
	assert.True(t, result.StockApplied)
	assert.Equal(t, 6, row.ItemQuantity)
	assert.Equal(t, 2, row.BoxQuantity)
}

func TestAdjustmentService_CreateNote_DebitShortStockSkips(t *testing.T) {
	f := newAdjustmentFixture()
	ctx := context.Background()
	productID := uuid.New()
	warehouseID := uuid.New()
	row := stockedItem(t, productID, warehouseID, 2, 0)

	req := CreateNoteRequest{
		Type:         inventory.NoteTypeDebit,
		Amount:       decimal.NewFromInt(30),
		Reason:       "Writeoff exceeding stock",
		ProductID:    &productID,
		WarehouseID:  &warehouseID,
		ItemQuantity: 10,
	}

	f.notes.On("Create", ctx, mock.AnythingOfType("*inventory.CreditDebitNote")).Return(nil)
	f.items.On("FindByProductAndWarehouseForUpdate", ctx, productID, warehouseID).Return(row, nil)

	result, err := f.service.CreateNote(ctx, uuid.New(), req)

	// The note still commits as an audit record of the attempt.
	require.NoError(t, err)
	assert.False(t, result.StockApplied)
	assert.Equal(t, 2, row.ItemQuantity)
	f.notes.AssertExpectations(t)
	f.items.AssertNotCalled(t, "SaveWithLock", mock.Anything, mock.Anything)
}

func TestAdjustmentService_CreateNote_DebitMissingRowSkips(t *testing.T) {
	f := newAdjustmentFixture()
	ctx := context.Background()
	productID := uuid.New()
	warehouseID := uuid.New()

	req := CreateNoteRequest{
		Type:         inventory.NoteTypeDebit,
		Amount:       decimal.NewFromInt(30),
		Reason:       "Writeoff against untracked stock",
		ProductID:    &productID,
		WarehouseID:  &warehouseID,
		ItemQuantity: 1,
	}

	f.notes.On("Create", ctx, mock.AnythingOfType("*inventory.CreditDebitNote")).Return(nil)
	f.items.On("FindByProductAndWarehouseForUpdate", ctx, productID, warehouseID).Return(nil, shared.ErrNotFound)

	result, err := f.service.CreateNote(ctx, uuid.New(), req)

	require.NoError(t, err)
	assert.False(t, result.StockApplied)
	f.notes.AssertExpectations(t)
}

func TestAdjustmentService_Adjust_DeleteSpecific(t *testing.T) {
	f := newAdjustmentFixture()
	ctx := context.Background()
	product := newTestProduct(t, 12)
	warehouse := newTestWarehouse(t, "East")
	// 10 items + 4 boxes of 12 = 58 normalized units.
	row := stockedItem(t, product.ID, warehouse.ID, 10, 4)

	req := AdjustInventoryRequest{
		ProductID:   product.ID,
		WarehouseID: warehouse.ID,
		Mode:        AdjustmentDeleteSpecific,
		Quantity:    20,
		Reason:      "Recall batch 20260815",
	}

	var savedNote *inventory.CreditDebitNote
	f.products.On("FindByID", ctx, product.ID).Return(product, nil)
	f.warehouse.On("FindByID", ctx, warehouse.ID).Return(warehouse, nil)
	f.items.On("FindByProductAndWarehouseForUpdate", ctx, product.ID, warehouse.ID).Return(row, nil)
	f.items.On("SaveWithLock", ctx, row).Return(nil)
	f.notes.On("Create", ctx, mock.AnythingOfType("*inventory.CreditDebitNote")).
		Run(func(args mock.Arguments) {
			savedNote = args.Get(1).(*inventory.CreditDebitNote)
		}).Return(nil)
	f.items.On("SumNormalizedUnits", ctx, warehouse.ID).Return(38, nil)

	result, err := f.service.Adjust(ctx, uuid.New(), req)

	require.NoError(t, err)
	assert.Equal(t, 20, result.RemovedUnits)
	assert.Equal(t, 38, result.Remaining)
	assert.Equal(t, 38, row.NormalizedTotal(12))

	require.NotNil(t, savedNote)
	assert.Equal(t, inventory.NoteTypeDebit, savedNote.Type)
	// Note value is unit price times units removed: 10 * 20.
	assert.True(t, savedNote.Amount.Equal(decimal.NewFromInt(200)))
	require.NotNil(t, result.Note)
	assert.Equal(t, "200.00 USD", result.Note.AmountFormatted)
}

func TestAdjustmentService_Adjust_DeleteAll(t *testing.T) {
	f := newAdjustmentFixture()
	ctx := context.Background()
	product := newTestProduct(t, 12)
	warehouse := newTestWarehouse(t, "East")
	row := stockedItem(t, product.ID, warehouse.ID, 10, 4)

	req := AdjustInventoryRequest{
		ProductID:   product.ID,
		WarehouseID: warehouse.ID,
		Mode:        AdjustmentDeleteAll,
		Reason:      "Warehouse decommissioned",
	}

	f.products.On("FindByID", ctx, product.ID).Return(product, nil)
	f.warehouse.On("FindByID", ctx, warehouse.ID).Return(warehouse, nil)
	f.items.On("FindByProductAndWarehouseForUpdate", ctx, product.ID, warehouse.ID).Return(row, nil)
	f.items.On("SaveWithLock", ctx, row).Return(nil)
	f.notes.On("Create", ctx, mock.AnythingOfType("*inventory.CreditDebitNote")).Return(nil)
	f.items.On("SumNormalizedUnits", ctx, warehouse.ID).Return(0, nil)

	result, err := f.service.Adjust(ctx, uuid.New(), req)

	require.NoError(t, err)
	assert.Equal(t, 58, result.RemovedUnits)
	assert.Equal(t, 0, result.Remaining)
	assert.Equal(t, 0, row.ItemQuantity)
	assert.Equal(t, 0, row.BoxQuantity)
}

func TestAdjustmentService_Adjust_DeleteAllEmptyRow(t *testing.T) {
	f := newAdjustmentFixture()
	ctx := context.Background()
	product := newTestProduct(t, 12)
	warehouse := newTestWarehouse(t, "East")
	row := stockedItem(t, product.ID, warehouse.ID, 0, 0)

	req := AdjustInventoryRequest{
		ProductID:   product.ID,
		WarehouseID: warehouse.ID,
		Mode:        AdjustmentDeleteAll,
		Reason:      "Warehouse decommissioned",
	}

	f.products.On("FindByID", ctx, product.ID).Return(product, nil)
	f.warehouse.On("FindByID", ctx, warehouse.ID).Return(warehouse, nil)
	f.items.On("FindByProductAndWarehouseForUpdate", ctx, product.ID, warehouse.ID).Return(row, nil)

	result, err := f.service.Adjust(ctx, uuid.New(), req)

	// An already empty row clears to a no-op, not an error.
	require.NoError(t, err)
	assert.Equal(t, 0, result.RemovedUnits)
	assert.Equal(t, 0, result.Remaining)
	assert.Nil(t, result.Note)
	f.notes.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	f.items.AssertNotCalled(t, "SaveWithLock", mock.Anything, mock.Anything)
}

func TestAdjustmentService_Adjust_RemoveBeyondStock(t *testing.T) {
	f := newAdjustmentFixture()
	ctx := context.Background()
	product := newTestProduct(t, 0)
	warehouse := newTestWarehouse(t, "East")
	row := stockedItem(t, product.ID, warehouse.ID, 5, 0)

	req := AdjustInventoryRequest{
		ProductID:   product.ID,
		WarehouseID: warehouse.ID,
		Mode:        AdjustmentDeleteSpecific,
		Quantity:    6,
		Reason:      "Overshoot",
	}

	f.products.On("FindByID", ctx, product.ID).Return(product, nil)
	f.warehouse.On("FindByID", ctx, warehouse.ID).Return(warehouse, nil)
	f.items.On("FindByProductAndWarehouseForUpdate", ctx, product.ID, warehouse.ID).Return(row, nil)

	result, err := f.service.Adjust(ctx, uuid.New(), req)

	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "INSUFFICIENT_STOCK", domainErr.Code)
	assert.Nil(t, result)
	f.notes.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	f.items.AssertNotCalled(t, "SaveWithLock", mock.Anything, mock.Anything)
}

func TestAdjustmentService_Adjust_UnknownMode(t *testing.T) {
	f := newAdjustmentFixture()
	ctx := context.Background()
	product := newTestProduct(t, 0)
	warehouse := newTestWarehouse(t, "East")
	row := stockedItem(t, product.ID, warehouse.ID, 5, 0)

	req := AdjustInventoryRequest{
		ProductID:   product.ID,
		WarehouseID: warehouse.ID,
		Mode:        AdjustmentMode("PURGE"),
		Reason:      "Bad mode",
	}

	f.products.On("FindByID", ctx, product.ID).Return(product, nil)
	f.warehouse.On("FindByID", ctx, warehouse.ID).Return(warehouse, nil)
	f.items.On("FindByProductAndWarehouseForUpdate", ctx, product.ID, warehouse.ID).Return(row, nil)

	_, err := f.service.Adjust(ctx, uuid.New(), req)

	require.ErrorIs(t, err, shared.ErrInvalidInput)
}
