package inventory

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/stockflow/backend/internal/domain/inventory"
	"github.com/stockflow/backend/internal/domain/shared"
)

// AdjustmentService applies manual stock corrections. Every correction
// produces an append-only credit/debit note; inventory mutation happens
// only when the note carries a full product/warehouse linkage.
type AdjustmentService struct {
	scope          TransactionScope
	noteRepo       inventory.CreditDebitNoteRepository
	eventPublisher shared.EventPublisher
}

// NewAdjustmentService creates a new AdjustmentService
func NewAdjustmentService(scope TransactionScope, noteRepo inventory.CreditDebitNoteRepository) *AdjustmentService {
	return &AdjustmentService{
		scope:    scope,
		noteRepo: noteRepo,
	}
}

// SetEventPublisher sets the event publisher for publishing domain events
func (s *AdjustmentService) SetEventPublisher(publisher shared.EventPublisher) {
	s.eventPublisher = publisher
}

// CreateNote records a manual credit or debit note. The note always
// commits. When the note carries product, warehouse and a nonzero
// quantity, a CREDIT also increments the ledger row (creating it on
// first credit) and a DEBIT decrements it when sufficient stock exists.
// A DEBIT against a missing or short row skips the decrement and keeps
// the note as the audit record of the attempt.
func (s *AdjustmentService) CreateNote(ctx context.Context, createdByID uuid.UUID, req CreateNoteRequest) (*NoteResponse, error) {
	note, err := inventory.NewCreditDebitNote(req.Type, req.Amount, req.Reason, req.ProductID, req.WarehouseID, req.ItemQuantity, req.BoxQuantity, createdByID)
	if err != nil {
		return nil, err
	}

	var (
		events       []shared.DomainEvent
		stockApplied bool
	)

	err = s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		if err := repos.Notes.Create(ctx, note); err != nil {
			return err
		}
		if !note.HasInventoryLinkage() {
			return nil
		}

		switch note.Type {
		case inventory.NoteTypeCredit:
			item, err := repos.InventoryItems.GetOrCreate(ctx, *note.ProductID, *note.WarehouseID)
			if err != nil {
				return err
			}
			if err := item.Credit(note.ItemQuantity, note.BoxQuantity); err != nil {
				return err
			}
			if err := repos.InventoryItems.SaveWithLock(ctx, item); err != nil {
				return err
			}
			stockApplied = true
			events = collectEvents(item)

		case inventory.NoteTypeDebit:
			item, err := repos.InventoryItems.FindByProductAndWarehouseForUpdate(ctx, *note.ProductID, *note.WarehouseID)
			if err != nil {
				if errors.Is(err, shared.ErrNotFound) {
					// No ledger row: keep the note, skip the decrement.
					return nil
				}
				return err
			}
			if !item.CanDebit(note.ItemQuantity, note.BoxQuantity) {
				// Short stock: keep the note, skip the decrement.
				return nil
			}
			if err := item.Debit(note.ItemQuantity, note.BoxQuantity); err != nil {
				return err
			}
			if err := repos.InventoryItems.SaveWithLock(ctx, item); err != nil {
				return err
			}
			stockApplied = true
			events = collectEvents(item)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publishEvents(ctx, events)

	response := ToNoteResponse(note, stockApplied)
	return &response, nil
}

// Adjust is the administrative stock removal tool. DELETE_ALL clears
// the row's stock; DELETE_SPECIFIC removes a given number of normalized
// units and redistributes the remainder into boxes and loose items.
// A DEBIT note valued at unit price times units removed is written for
// every removal, and a warehouse usage snapshot event is broadcast.
// Clearing a row that is already empty is a no-op.
func (s *AdjustmentService) Adjust(ctx context.Context, adjustedByID uuid.UUID, req AdjustInventoryRequest) (*AdjustInventoryResponse, error) {
	var (
		note      *inventory.CreditDebitNote
		events    []shared.DomainEvent
		removed   int
		remaining int
	)

	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		product, err := repos.Products.FindByID(ctx, req.ProductID)
		if err != nil {
			return err
		}
		warehouse, err := repos.Warehouses.FindByID(ctx, req.WarehouseID)
		if err != nil {
			return err
		}

		item, err := repos.InventoryItems.FindByProductAndWarehouseForUpdate(ctx, req.ProductID, req.WarehouseID)
		if err != nil {
			return err
		}

		boxSize := product.BoxSizeOrZero()
		current := item.NormalizedTotal(boxSize)

		switch req.Mode {
		case AdjustmentDeleteAll:
			if current == 0 {
				// Clearing an already empty row is a no-op: nothing to
				// remove, nothing to record.
				return nil
			}
			removed = current
		case AdjustmentDeleteSpecific:
			if req.Quantity <= 0 {
				return shared.NewDomainError("INVALID_QUANTITY", "Quantity to remove must be positive")
			}
			if req.Quantity > current {
				return shared.NewDomainError("INSUFFICIENT_STOCK",
					fmt.Sprintf("Cannot remove %d units, only %d available", req.Quantity, current))
			}
			removed = req.Quantity
		default:
			return shared.ErrInvalidInput
		}

		if err := item.RemoveNormalized(removed, boxSize); err != nil {
			return err
		}
		if err := repos.InventoryItems.SaveWithLock(ctx, item); err != nil {
			return err
		}
		remaining = item.NormalizedTotal(boxSize)

		amount := product.GetPriceMoney().MulInt(int64(removed))
		removedItems, removedBoxes := inventory.Decompose(removed, boxSize)
		note, err = inventory.NewCreditDebitNote(inventory.NoteTypeDebit, amount.Amount(), req.Reason, &req.ProductID, &req.WarehouseID, removedItems, removedBoxes, adjustedByID)
		if err != nil {
			return err
		}
		if err := repos.Notes.Create(ctx, note); err != nil {
			return err
		}

		events = collectEvents(item)

		usedUnits, err := repos.InventoryItems.SumNormalizedUnits(ctx, warehouse.ID)
		if err != nil {
			return err
		}
		events = append(events, inventory.NewWarehouseUpdatedEvent(warehouse.ID, warehouse.Capacity, usedUnits))

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publishEvents(ctx, events)

	return &AdjustInventoryResponse{
		RemovedUnits: removed,
		Remaining:    remaining,
		Note:         noteResponsePtr(note),
	}, nil
}

// ListNotes returns audit notes matching the filter
func (s *AdjustmentService) ListNotes(ctx context.Context, filter shared.Filter) ([]NoteResponse, int64, error) {
	notes, err := s.noteRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.noteRepo.Count(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]NoteResponse, len(notes))
	for i := range notes {
		responses[i] = ToNoteResponse(&notes[i], false)
	}
	return responses, total, nil
}

// GetNote returns a single audit note
func (s *AdjustmentService) GetNote(ctx context.Context, noteID uuid.UUID) (*NoteResponse, error) {
	note, err := s.noteRepo.FindByID(ctx, noteID)
	if err != nil {
		return nil, err
	}
	response := ToNoteResponse(note, false)
	return &response, nil
}

func (s *AdjustmentService) publishEvents(ctx context.Context, events []shared.DomainEvent) {
	if s.eventPublisher == nil || len(events) == 0 {
		return
	}
	_ = s.eventPublisher.Publish(ctx, events...)
}

func noteResponsePtr(note *inventory.CreditDebitNote) *NoteResponse {
	if note == nil {
		return nil
	}
	response := ToNoteResponse(note, true)
	return &response
}
