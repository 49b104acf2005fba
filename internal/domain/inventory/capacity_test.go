package inventory

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stockflow/backend/internal/domain/partner"
	"github.com/stockflow/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubUsageReader struct {
	used int
	err  error
}

func (s *stubUsageReader) SumNormalizedUnits(ctx context.Context, warehouseID uuid.UUID) (int, error) {
	return s.used, s.err
}

func testWarehouse(t *testing.T, capacity int) *partner.Warehouse {
	t.Helper()
	warehouse, err := partner.NewWarehouse("Test Warehouse", "Pier 4", capacity)
	require.NoError(t, err)
	return warehouse
}

func TestCapacityChecker_Check(t *testing.T) {
	ctx := context.Background()

	t.Run("allows an increase within capacity", func(t *testing.T) {
		checker := NewCapacityChecker(&stubUsageReader{used: 90})
		err := checker.Check(ctx, testWarehouse(t, 100), 10)
		assert.NoError(t, err)
	})

	t.Run("rejects an increase over capacity", func(t *testing.T) {
		checker := NewCapacityChecker(&stubUsageReader{used: 90})
		err := checker.Check(ctx, testWarehouse(t, 100), 11)

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "CAPACITY_EXCEEDED", domainErr.Code)
	})

	t.Run("rejects a non-positive increase", func(t *testing.T) {
		checker := NewCapacityChecker(&stubUsageReader{used: 0})
		assert.Error(t, checker.Check(ctx, testWarehouse(t, 100), 0))
	})

	t.Run("propagates reader errors", func(t *testing.T) {
		checker := NewCapacityChecker(&stubUsageReader{err: shared.ErrNotFound})
		err := checker.Check(ctx, testWarehouse(t, 100), 5)
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}
