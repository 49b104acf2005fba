package inventory

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stockflow/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPendingTransfer(t *testing.T) *StockTransfer {
	t.Helper()
	transfer, err := NewStockTransfer(uuid.New(), uuid.New(), uuid.New(), uuid.New(), 5, 1)
	require.NoError(t, err)
	return transfer
}

func TestNewStockTransfer(t *testing.T) {
	t.Run("creates a pending request", func(t *testing.T) {
		createdBy := uuid.New()
		transfer, err := NewStockTransfer(uuid.New(), uuid.New(), uuid.New(), createdBy, 5, 1)

		require.NoError(t, err)
		assert.Equal(t, TransferStatusPending, transfer.Status)
		assert.Equal(t, createdBy, transfer.CreatedByID)
		assert.Nil(t, transfer.ApprovedByID)
		assert.Nil(t, transfer.ResolvedAt)
	})

	t.Run("rejects identical source and destination", func(t *testing.T) {
		warehouseID := uuid.New()
		_, err := NewStockTransfer(uuid.New(), warehouseID, warehouseID, uuid.New(), 5, 0)

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "SAME_WAREHOUSE", domainErr.Code)
	})

	t.Run("rejects zero quantity", func(t *testing.T) {
		_, err := NewStockTransfer(uuid.New(), uuid.New(), uuid.New(), uuid.New(), 0, 0)
		require.Error(t, err)
	})

	t.Run("rejects negative quantity", func(t *testing.T) {
		_, err := NewStockTransfer(uuid.New(), uuid.New(), uuid.New(), uuid.New(), -1, 2)
		require.Error(t, err)
	})
}

func TestStockTransfer_Complete(t *testing.T) {
	t.Run("transitions from pending and records the approver", func(t *testing.T) {
		transfer := newPendingTransfer(t)
		approver := uuid.New()

		err := transfer.Complete(approver)

		require.NoError(t, err)
		assert.Equal(t, TransferStatusCompleted, transfer.Status)
		require.NotNil(t, transfer.ApprovedByID)
		assert.Equal(t, approver, *transfer.ApprovedByID)
		assert.NotNil(t, transfer.ResolvedAt)
	})

	t.Run("fails on a completed transfer", func(t *testing.T) {
		transfer := newPendingTransfer(t)
		require.NoError(t, transfer.Complete(uuid.New()))

		err := transfer.Complete(uuid.New())
		require.ErrorIs(t, err, shared.ErrInvalidState)
	})

	t.Run("fails on a rejected transfer", func(t *testing.T) {
		transfer := newPendingTransfer(t)
		require.NoError(t, transfer.Reject(uuid.New()))

		err := transfer.Complete(uuid.New())
		require.ErrorIs(t, err, shared.ErrInvalidState)
	})
}

func TestStockTransfer_Reject(t *testing.T) {
	t.Run("transitions from pending", func(t *testing.T) {
		transfer := newPendingTransfer(t)

		err := transfer.Reject(uuid.New())

		require.NoError(t, err)
		assert.Equal(t, TransferStatusRejected, transfer.Status)
		assert.False(t, transfer.IsPending())
	})

	t.Run("fails on a terminal transfer", func(t *testing.T) {
		transfer := newPendingTransfer(t)
		require.NoError(t, transfer.Reject(uuid.New()))

		err := transfer.Reject(uuid.New())
		require.ErrorIs(t, err, shared.ErrInvalidState)
	})
}
