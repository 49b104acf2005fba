package persistence

import (
	"context"

	"github.com/google/uuid"
	"github.com/stockflow/backend/internal/domain/inventory"
	"github.com/stockflow/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormCreditDebitNoteRepository implements inventory.CreditDebitNoteRepository.
// The note ledger is append-only, so only Create and reads are offered.
type GormCreditDebitNoteRepository struct {
	db *gorm.DB
}

// NewGormCreditDebitNoteRepository creates a new credit/debit note repository
func NewGormCreditDebitNoteRepository(db *gorm.DB) *GormCreditDebitNoteRepository {
	return &GormCreditDebitNoteRepository{db: db}
}

func (r *GormCreditDebitNoteRepository) FindByID(ctx context.Context, id uuid.UUID) (*inventory.CreditDebitNote, error) {
	var note inventory.CreditDebitNote
	if err := r.db.WithContext(ctx).First(&note, "id = ?", id).Error; err != nil {
		return nil, notFound(err)
	}
	return &note, nil
}

func (r *GormCreditDebitNoteRepository) FindAll(ctx context.Context, filter shared.Filter) ([]inventory.CreditDebitNote, error) {
	var notes []inventory.CreditDebitNote
	query := applyFilter(r.db.WithContext(ctx).Model(&inventory.CreditDebitNote{}), filter, "reason")
	if err := query.Find(&notes).Error; err != nil {
		return nil, err
	}
	return notes, nil
}

func (r *GormCreditDebitNoteRepository) Create(ctx context.Context, note *inventory.CreditDebitNote) error {
	return r.db.WithContext(ctx).Create(note).Error
}

func (r *GormCreditDebitNoteRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := applyFilterWithoutPagination(r.db.WithContext(ctx).Model(&inventory.CreditDebitNote{}), filter)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
