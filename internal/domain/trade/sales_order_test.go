package trade

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stockflow/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSalesOrder(t *testing.T) {
	t.Run("starts pending and empty", func(t *testing.T) {
		order, err := NewSalesOrder(uuid.New())
		require.NoError(t, err)

		assert.Equal(t, SalesOrderStatusPending, order.Status)
		assert.Empty(t, order.Items)
		assert.True(t, order.TotalAmount.IsZero())
	})

	t.Run("rejects empty customer", func(t *testing.T) {
		_, err := NewSalesOrder(uuid.Nil)
		require.Error(t, err)
	})
}

func TestSalesOrder_AddItem(t *testing.T) {
	t.Run("records the source warehouse and accumulates the total", func(t *testing.T) {
		order, err := NewSalesOrder(uuid.New())
		require.NoError(t, err)

		warehouseID := uuid.New()
		item, err := order.AddItem(uuid.New(), warehouseID, 4, decimal.NewFromInt(25))
		require.NoError(t, err)
		_, err = order.AddItem(uuid.New(), uuid.New(), 1, decimal.NewFromInt(50))
		require.NoError(t, err)

		assert.Equal(t, warehouseID, item.WarehouseID)
		assert.Equal(t, order.ID, item.OrderID)
		assert.True(t, order.TotalAmount.Equal(decimal.NewFromInt(150)))
	})

	t.Run("rejects invalid lines", func(t *testing.T) {
		order, err := NewSalesOrder(uuid.New())
		require.NoError(t, err)

		_, err = order.AddItem(uuid.Nil, uuid.New(), 1, decimal.NewFromInt(1))
		assert.Error(t, err)
		_, err = order.AddItem(uuid.New(), uuid.Nil, 1, decimal.NewFromInt(1))
		assert.Error(t, err)
		_, err = order.AddItem(uuid.New(), uuid.New(), 0, decimal.NewFromInt(1))
		assert.Error(t, err)
		_, err = order.AddItem(uuid.New(), uuid.New(), 1, decimal.NewFromInt(-1))
		assert.Error(t, err)
	})
}

func TestSalesOrderStatus_CanTransitionTo(t *testing.T) {
	t.Run("forward only", func(t *testing.T) {
		assert.True(t, SalesOrderStatusPending.CanTransitionTo(SalesOrderStatusProcessing))
		assert.True(t, SalesOrderStatusProcessing.CanTransitionTo(SalesOrderStatusDelivered))
		assert.False(t, SalesOrderStatusShipped.CanTransitionTo(SalesOrderStatusProcessing))
	})

	t.Run("cancellable until delivered", func(t *testing.T) {
		assert.True(t, SalesOrderStatusShipped.CanTransitionTo(SalesOrderStatusCancelled))
		assert.False(t, SalesOrderStatusDelivered.CanTransitionTo(SalesOrderStatusCancelled))
		assert.False(t, SalesOrderStatusCancelled.CanTransitionTo(SalesOrderStatusPending))
	})
}

func TestSalesOrder_TransitionTo(t *testing.T) {
	t.Run("advances and bumps the version", func(t *testing.T) {
		order, err := NewSalesOrder(uuid.New())
		require.NoError(t, err)
		before := order.Version

		require.NoError(t, order.TransitionTo(SalesOrderStatusShipped))

		assert.Equal(t, SalesOrderStatusShipped, order.Status)
		assert.Equal(t, before+1, order.Version)
	})

	t.Run("rejects regressions", func(t *testing.T) {
		order, err := NewSalesOrder(uuid.New())
		require.NoError(t, err)
		require.NoError(t, order.TransitionTo(SalesOrderStatusDelivered))

		err = order.TransitionTo(SalesOrderStatusProcessing)
		require.ErrorIs(t, err, shared.ErrInvalidState)
	})

	t.Run("rejects unknown status", func(t *testing.T) {
		order, err := NewSalesOrder(uuid.New())
		require.NoError(t, err)
		require.Error(t, order.TransitionTo(SalesOrderStatus("RETURNED")))
	})
}
