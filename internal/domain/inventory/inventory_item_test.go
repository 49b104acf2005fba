package inventory

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stockflow/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestItem(t *testing.T) *InventoryItem {
	t.Helper()
	item, err := NewInventoryItem(uuid.New(), uuid.New())
	require.NoError(t, err)
	return item
}

func TestNewInventoryItem(t *testing.T) {
	t.Run("creates an empty row", func(t *testing.T) {
		productID := uuid.New()
		warehouseID := uuid.New()

		item, err := NewInventoryItem(productID, warehouseID)

		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, item.ID)
		assert.Equal(t, productID, item.ProductID)
		assert.Equal(t, warehouseID, item.WarehouseID)
		assert.True(t, item.IsEmpty())
		assert.Equal(t, 1, item.Version)
	})

	t.Run("fails with nil product ID", func(t *testing.T) {
		_, err := NewInventoryItem(uuid.Nil, uuid.New())
		require.Error(t, err)
	})

	t.Run("fails with nil warehouse ID", func(t *testing.T) {
		_, err := NewInventoryItem(uuid.New(), uuid.Nil)
		require.Error(t, err)
	})
}

func TestInventoryItem_Credit(t *testing.T) {
	t.Run("adds stock and bumps version", func(t *testing.T) {
		item := newTestItem(t)

		err := item.Credit(10, 4)

		require.NoError(t, err)
		assert.Equal(t, 10, item.ItemQuantity)
		assert.Equal(t, 4, item.BoxQuantity)
		assert.Equal(t, 2, item.Version)
		assert.Len(t, item.GetDomainEvents(), 1)
	})

	t.Run("rejects negative quantities", func(t *testing.T) {
		item := newTestItem(t)
		require.Error(t, item.Credit(-1, 0))
		assert.True(t, item.IsEmpty())
	})

	t.Run("rejects zero credit", func(t *testing.T) {
		item := newTestItem(t)
		require.Error(t, item.Credit(0, 0))
	})
}

func TestInventoryItem_Debit(t *testing.T) {
	t.Run("removes stock", func(t *testing.T) {
		item := newTestItem(t)
		require.NoError(t, item.Credit(10, 4))

		err := item.Debit(3, 1)

		require.NoError(t, err)
		assert.Equal(t, 7, item.ItemQuantity)
		assert.Equal(t, 3, item.BoxQuantity)
	})

	t.Run("insufficient stock leaves row untouched", func(t *testing.T) {
		item := newTestItem(t)
		require.NoError(t, item.Credit(5, 2))

		err := item.Debit(6, 0)

		require.ErrorIs(t, err, shared.ErrInsufficientStock)
		assert.Equal(t, 5, item.ItemQuantity)
		assert.Equal(t, 2, item.BoxQuantity)
	})

	t.Run("items and boxes checked independently", func(t *testing.T) {
		// 5 items + 2 boxes cannot satisfy a 3-box debit even though the
		// normalized total would cover it
		item := newTestItem(t)
		require.NoError(t, item.Credit(5, 2))

		err := item.Debit(0, 3)

		require.ErrorIs(t, err, shared.ErrInsufficientStock)
	})
}

func TestInventoryItem_RemoveNormalized(t *testing.T) {
	t.Run("redistributes the remainder into minimal boxes", func(t *testing.T) {
		// 10 items + 4 boxes of 12 = 58 units; removing 20 leaves 38 = 2 items + 3 boxes
		item := newTestItem(t)
		require.NoError(t, item.Credit(10, 4))

		err := item.RemoveNormalized(20, 12)

		require.NoError(t, err)
		assert.Equal(t, 2, item.ItemQuantity)
		assert.Equal(t, 3, item.BoxQuantity)
	})

	t.Run("removing everything empties the row", func(t *testing.T) {
		item := newTestItem(t)
		require.NoError(t, item.Credit(10, 4))

		err := item.RemoveNormalized(58, 12)

		require.NoError(t, err)
		assert.True(t, item.IsEmpty())
	})

	t.Run("rejects removal beyond current total", func(t *testing.T) {
		item := newTestItem(t)
		require.NoError(t, item.Credit(10, 0))

		err := item.RemoveNormalized(11, 12)

		require.ErrorIs(t, err, shared.ErrInsufficientStock)
		assert.Equal(t, 10, item.ItemQuantity)
	})

	t.Run("box size zero treats everything as loose", func(t *testing.T) {
		item := newTestItem(t)
		require.NoError(t, item.Credit(10, 0))

		require.NoError(t, item.RemoveNormalized(4, 0))
		assert.Equal(t, 6, item.ItemQuantity)
		assert.Equal(t, 0, item.BoxQuantity)
	})

	t.Run("rejects non-positive removal", func(t *testing.T) {
		item := newTestItem(t)
		require.NoError(t, item.Credit(10, 0))
		require.Error(t, item.RemoveNormalized(0, 12))
	})
}

func TestInventoryItem_DomainErrors(t *testing.T) {
	item := newTestItem(t)

	err := item.Debit(1, 0)

	var domainErr *shared.DomainError
	require.True(t, errors.As(err, &domainErr))
	assert.Equal(t, "INSUFFICIENT_STOCK", domainErr.Code)
}
