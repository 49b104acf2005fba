package inventory

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/stockflow/backend/internal/domain/inventory"
	"github.com/stockflow/backend/internal/domain/shared"
)

// TransferService coordinates inter-warehouse stock transfers.
// Creation validates the source balance but does not reserve stock;
// approval re-validates under row locks inside a single transaction.
type TransferService struct {
	scope          TransactionScope
	transferRepo   inventory.StockTransferRepository
	eventPublisher shared.EventPublisher
}

// NewTransferService creates a new TransferService
func NewTransferService(scope TransactionScope, transferRepo inventory.StockTransferRepository) *TransferService {
	return &TransferService{
		scope:        scope,
		transferRepo: transferRepo,
	}
}

// SetEventPublisher sets the event publisher for publishing domain events
func (s *TransferService) SetEventPublisher(publisher shared.EventPublisher) {
	s.eventPublisher = publisher
}

// Create validates and persists a PENDING transfer request.
// The source warehouse must currently hold at least the requested
// quantities, but nothing is deducted until approval.
func (s *TransferService) Create(ctx context.Context, requestedByID uuid.UUID, req CreateTransferRequest) (*TransferResponse, error) {
	transfer, err := inventory.NewStockTransfer(req.ProductID, req.FromWarehouseID, req.ToWarehouseID, requestedByID, req.ItemQuantity, req.BoxQuantity)
	if err != nil {
		return nil, err
	}

	err = s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		if _, err := repos.Products.FindByID(ctx, req.ProductID); err != nil {
			return err
		}
		if _, err := repos.Warehouses.FindByID(ctx, req.FromWarehouseID); err != nil {
			return err
		}
		if _, err := repos.Warehouses.FindByID(ctx, req.ToWarehouseID); err != nil {
			return err
		}

		source, err := repos.InventoryItems.FindByProductAndWarehouse(ctx, req.ProductID, req.FromWarehouseID)
		if err != nil {
			if errors.Is(err, shared.ErrNotFound) {
				return shared.ErrInsufficientStock
			}
			return err
		}
		if !source.CanDebit(req.ItemQuantity, req.BoxQuantity) {
			return shared.ErrInsufficientStock
		}

		return repos.Transfers.Save(ctx, transfer)
	})
	if err != nil {
		return nil, err
	}

	response := ToTransferResponse(transfer)
	return &response, nil
}

// Approve applies a pending transfer: the approver must be a super admin
// or the admin of the destination warehouse. The source balance is
// re-checked under a row lock; if it is insufficient the transaction
// rolls back and the transfer stays PENDING so it can be retried.
func (s *TransferService) Approve(ctx context.Context, approverID, transferID uuid.UUID) (*TransferResponse, error) {
	var (
		transfer *inventory.StockTransfer
		events   []shared.DomainEvent
	)

	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		approver, err := repos.Users.FindByID(ctx, approverID)
		if err != nil {
			return err
		}

		transfer, err = repos.Transfers.FindByIDForUpdate(ctx, transferID)
		if err != nil {
			return err
		}
		if !approver.CanApproveTransferTo(transfer.ToWarehouseID) {
			return shared.ErrForbidden
		}

		source, err := repos.InventoryItems.FindByProductAndWarehouseForUpdate(ctx, transfer.ProductID, transfer.FromWarehouseID)
		if err != nil {
			if errors.Is(err, shared.ErrNotFound) {
				return shared.ErrInsufficientStock
			}
			return err
		}
		if err := source.Debit(transfer.ItemQuantity, transfer.BoxQuantity); err != nil {
			return err
		}

		destination, err := repos.InventoryItems.GetOrCreate(ctx, transfer.ProductID, transfer.ToWarehouseID)
		if err != nil {
			return err
		}
		if err := destination.Credit(transfer.ItemQuantity, transfer.BoxQuantity); err != nil {
			return err
		}

		if err := transfer.Complete(approverID); err != nil {
			return err
		}

		if err := repos.InventoryItems.SaveWithLock(ctx, source); err != nil {
			return err
		}
		if err := repos.InventoryItems.SaveWithLock(ctx, destination); err != nil {
			return err
		}
		if err := repos.Transfers.Save(ctx, transfer); err != nil {
			return err
		}

		events = collectEvents(source, destination, transfer)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publishEvents(ctx, events)

	response := ToTransferResponse(transfer)
	return &response, nil
}

// Reject marks a pending transfer as REJECTED without moving stock.
// Rejecting a transfer already in a terminal state is an error.
func (s *TransferService) Reject(ctx context.Context, approverID, transferID uuid.UUID) (*TransferResponse, error) {
	var (
		transfer *inventory.StockTransfer
		events   []shared.DomainEvent
	)

	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		approver, err := repos.Users.FindByID(ctx, approverID)
		if err != nil {
			return err
		}

		transfer, err = repos.Transfers.FindByIDForUpdate(ctx, transferID)
		if err != nil {
			return err
		}
		if !approver.CanApproveTransferTo(transfer.ToWarehouseID) {
			return shared.ErrForbidden
		}

		if err := transfer.Reject(approverID); err != nil {
			return err
		}
		if err := repos.Transfers.Save(ctx, transfer); err != nil {
			return err
		}

		events = collectEvents(transfer)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publishEvents(ctx, events)

	response := ToTransferResponse(transfer)
	return &response, nil
}

// GetByID returns a single transfer
func (s *TransferService) GetByID(ctx context.Context, transferID uuid.UUID) (*TransferResponse, error) {
	transfer, err := s.transferRepo.FindByID(ctx, transferID)
	if err != nil {
		return nil, err
	}
	response := ToTransferResponse(transfer)
	return &response, nil
}

// List returns transfers matching the filter, optionally restricted to a status
func (s *TransferService) List(ctx context.Context, status *inventory.TransferStatus, filter shared.Filter) ([]TransferResponse, int64, error) {
	var (
		transfers []inventory.StockTransfer
		err       error
	)
	if status != nil {
		transfers, err = s.transferRepo.FindByStatus(ctx, *status, filter)
	} else {
		transfers, err = s.transferRepo.FindAll(ctx, filter)
	}
	if err != nil {
		return nil, 0, err
	}

	total, err := s.transferRepo.Count(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]TransferResponse, len(transfers))
	for i := range transfers {
		responses[i] = ToTransferResponse(&transfers[i])
	}
	return responses, total, nil
}

// publishEvents publishes domain events after a successful commit.
// Notification delivery is best effort and never fails the operation.
func (s *TransferService) publishEvents(ctx context.Context, events []shared.DomainEvent) {
	if s.eventPublisher == nil || len(events) == 0 {
		return
	}
	_ = s.eventPublisher.Publish(ctx, events...)
}

// collectEvents drains the domain events from a set of aggregates
func collectEvents(aggregates ...shared.AggregateRoot) []shared.DomainEvent {
	var events []shared.DomainEvent
	for _, agg := range aggregates {
		events = append(events, agg.GetDomainEvents()...)
		agg.ClearDomainEvents()
	}
	return events
}
