package trade

import (
	"context"

	"github.com/google/uuid"
	"github.com/stockflow/backend/internal/domain/inventory"
	"github.com/stockflow/backend/internal/domain/shared"
	"github.com/stockflow/backend/internal/domain/trade"
)

// PurchaseOrderService handles purchase orders from suppliers.
// Receiving an order is the only path that increases warehouse stock,
// and it is the only mutation gated by the capacity check.
type PurchaseOrderService struct {
	scope          TransactionScope
	orderRepo      trade.PurchaseOrderRepository
	eventPublisher shared.EventPublisher
}

// NewPurchaseOrderService creates a new PurchaseOrderService
func NewPurchaseOrderService(scope TransactionScope, orderRepo trade.PurchaseOrderRepository) *PurchaseOrderService {
	return &PurchaseOrderService{
		scope:     scope,
		orderRepo: orderRepo,
	}
}

// SetEventPublisher sets the event publisher for publishing domain events
func (s *PurchaseOrderService) SetEventPublisher(publisher shared.EventPublisher) {
	s.eventPublisher = publisher
}

// Create creates a new purchase order in PENDING status
func (s *PurchaseOrderService) Create(ctx context.Context, req CreatePurchaseOrderRequest) (*PurchaseOrderResponse, error) {
	order, err := trade.NewPurchaseOrder(req.SupplierID, req.WarehouseID, req.DeliveryDate)
	if err != nil {
		return nil, err
	}
	for _, item := range req.Items {
		if _, err := order.AddItem(item.ProductID, item.Quantity, item.UnitCost); err != nil {
			return nil, err
		}
	}

	err = s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		if _, err := repos.Suppliers.FindByID(ctx, req.SupplierID); err != nil {
			return err
		}
		if _, err := repos.Warehouses.FindByID(ctx, req.WarehouseID); err != nil {
			return err
		}
		for _, item := range req.Items {
			if _, err := repos.Products.FindByID(ctx, item.ProductID); err != nil {
				return err
			}
		}
		return repos.PurchaseOrders.Save(ctx, order)
	})
	if err != nil {
		return nil, err
	}

	response := ToPurchaseOrderResponse(order)
	return &response, nil
}

// UpdateStatus advances a purchase order through its lifecycle.
// Transitioning to RECEIVED credits every line item to the order's
// warehouse, subject to the capacity check, in the same transaction
// as the status change. The order row is locked so a concurrent
// receive of the same order cannot double-credit.
func (s *PurchaseOrderService) UpdateStatus(ctx context.Context, orderID uuid.UUID, target trade.PurchaseOrderStatus) (*PurchaseOrderResponse, error) {
	if !target.IsValid() {
		return nil, shared.NewDomainError("INVALID_STATUS", "Unknown purchase order status")
	}

	var (
		order  *trade.PurchaseOrder
		events []shared.DomainEvent
	)

	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		var err error
		order, err = repos.PurchaseOrders.FindByIDForUpdate(ctx, orderID)
		if err != nil {
			return err
		}

		receiving := target == trade.PurchaseOrderStatusReceived && !order.IsReceived()

		if err := order.TransitionTo(target); err != nil {
			return err
		}

		if receiving {
			warehouse, err := repos.Warehouses.FindByID(ctx, order.WarehouseID)
			if err != nil {
				return err
			}
			checker := inventory.NewCapacityChecker(repos.InventoryItems)
			if err := checker.Check(ctx, warehouse, order.TotalQuantity()); err != nil {
				return err
			}

			for _, line := range order.Items {
				item, err := repos.InventoryItems.GetOrCreate(ctx, line.ProductID, order.WarehouseID)
				if err != nil {
					return err
				}
				if err := item.Credit(line.Quantity, 0); err != nil {
					return err
				}
				if err := repos.InventoryItems.SaveWithLock(ctx, item); err != nil {
					return err
				}
				events = append(events, item.GetDomainEvents()...)
				item.ClearDomainEvents()
			}
		}

		if err := repos.PurchaseOrders.Save(ctx, order); err != nil {
			return err
		}

		events = append(events, order.GetDomainEvents()...)
		order.ClearDomainEvents()
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publishEvents(ctx, events)

	response := ToPurchaseOrderResponse(order)
	return &response, nil
}

// GetByID returns a single purchase order with its items
func (s *PurchaseOrderService) GetByID(ctx context.Context, orderID uuid.UUID) (*PurchaseOrderResponse, error) {
	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	response := ToPurchaseOrderResponse(order)
	return &response, nil
}

// List returns purchase orders matching the filter, optionally by status
func (s *PurchaseOrderService) List(ctx context.Context, status *trade.PurchaseOrderStatus, filter shared.Filter) ([]PurchaseOrderResponse, int64, error) {
	var (
		orders []trade.PurchaseOrder
		err    error
	)
	if status != nil {
		orders, err = s.orderRepo.FindByStatus(ctx, *status, filter)
	} else {
		orders, err = s.orderRepo.FindAll(ctx, filter)
	}
	if err != nil {
		return nil, 0, err
	}

	total, err := s.orderRepo.Count(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]PurchaseOrderResponse, len(orders))
	for i := range orders {
		responses[i] = ToPurchaseOrderResponse(&orders[i])
	}
	return responses, total, nil
}

func (s *PurchaseOrderService) publishEvents(ctx context.Context, events []shared.DomainEvent) {
	if s.eventPublisher == nil || len(events) == 0 {
		return
	}
	_ = s.eventPublisher.Publish(ctx, events...)
}
