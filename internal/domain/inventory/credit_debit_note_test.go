package inventory

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stockflow/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreditDebitNote(t *testing.T) {
	productID := uuid.New()
	warehouseID := uuid.New()
	createdBy := uuid.New()

	t.Run("creates a linked note", func(t *testing.T) {
		note, err := NewCreditDebitNote(NoteTypeDebit, decimal.NewFromInt(250), "damaged in transit",
			&productID, &warehouseID, 5, 0, createdBy)

		require.NoError(t, err)
		assert.Equal(t, NoteTypeDebit, note.Type)
		assert.True(t, note.HasInventoryLinkage())
		assert.Equal(t, createdBy, note.CreatedByID)
	})

	t.Run("creates a purely financial note", func(t *testing.T) {
		note, err := NewCreditDebitNote(NoteTypeCredit, decimal.NewFromInt(100), "invoice correction",
			nil, nil, 0, 0, createdBy)

		require.NoError(t, err)
		assert.False(t, note.HasInventoryLinkage())
	})

	t.Run("rejects an invalid type", func(t *testing.T) {
		_, err := NewCreditDebitNote(NoteType("REFUND"), decimal.NewFromInt(10), "whatever reason",
			nil, nil, 0, 0, createdBy)

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_NOTE_TYPE", domainErr.Code)
	})

	t.Run("rejects a too-short reason", func(t *testing.T) {
		_, err := NewCreditDebitNote(NoteTypeDebit, decimal.NewFromInt(10), " a ",
			nil, nil, 0, 0, createdBy)
		require.Error(t, err)
	})

	t.Run("rejects a negative amount", func(t *testing.T) {
		_, err := NewCreditDebitNote(NoteTypeDebit, decimal.NewFromInt(-1), "negative amount",
			nil, nil, 0, 0, createdBy)
		require.Error(t, err)
	})

	t.Run("rejects a missing creator", func(t *testing.T) {
		_, err := NewCreditDebitNote(NoteTypeDebit, decimal.NewFromInt(10), "missing creator",
			nil, nil, 0, 0, uuid.Nil)
		require.Error(t, err)
	})
}
