package trade

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/stockflow/backend/internal/domain/shared"
	"github.com/stockflow/backend/internal/domain/trade"
)

// SalesOrderService handles customer orders. Order creation deducts
// stock in the same transaction that persists the order: either the
// order, its items, and every ledger decrement commit together, or
// none do.
type SalesOrderService struct {
	scope          TransactionScope
	orderRepo      trade.SalesOrderRepository
	eventPublisher shared.EventPublisher
}

// NewSalesOrderService creates a new SalesOrderService
func NewSalesOrderService(scope TransactionScope, orderRepo trade.SalesOrderRepository) *SalesOrderService {
	return &SalesOrderService{
		scope:     scope,
		orderRepo: orderRepo,
	}
}

// SetEventPublisher sets the event publisher for publishing domain events
func (s *SalesOrderService) SetEventPublisher(publisher shared.EventPublisher) {
	s.eventPublisher = publisher
}

// Create creates a customer order and deducts stock for every line.
// Each line is fulfilled from the single warehouse currently holding
// the most loose items of the product; a line no warehouse can satisfy
// on its own fails the whole order with an insufficient-stock error.
// Source rows are locked for the span of the transaction so concurrent
// orders cannot draw the same stock twice.
func (s *SalesOrderService) Create(ctx context.Context, req CreateSalesOrderRequest) (*SalesOrderResponse, error) {
	var (
		order  *trade.SalesOrder
		events []shared.DomainEvent
	)

	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		if _, err := repos.Customers.FindByID(ctx, req.CustomerID); err != nil {
			return err
		}

		var err error
		order, err = trade.NewSalesOrder(req.CustomerID)
		if err != nil {
			return err
		}

		for _, line := range req.Items {
			product, err := repos.Products.FindByID(ctx, line.ProductID)
			if err != nil {
				return err
			}

			sources, err := repos.InventoryItems.FindSourcesForUpdate(ctx, line.ProductID, line.Quantity)
			if err != nil {
				return err
			}
			if len(sources) == 0 {
				return shared.NewDomainError("INSUFFICIENT_STOCK",
					fmt.Sprintf("No warehouse holds %d units of %s", line.Quantity, product.Name))
			}

			source := &sources[0]
			if err := source.Debit(line.Quantity, 0); err != nil {
				return err
			}
			if err := repos.InventoryItems.SaveWithLock(ctx, source); err != nil {
				return err
			}
			events = append(events, source.GetDomainEvents()...)
			source.ClearDomainEvents()

			if _, err := order.AddItem(line.ProductID, source.WarehouseID, line.Quantity, product.Price); err != nil {
				return err
			}
		}

		if err := repos.SalesOrders.Save(ctx, order); err != nil {
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

	response := ToSalesOrderResponse(order)
	return &response, nil
}

// UpdateStatus advances a customer order through its lifecycle.
// Status changes after creation never move stock.
func (s *SalesOrderService) UpdateStatus(ctx context.Context, orderID uuid.UUID, target trade.SalesOrderStatus) (*SalesOrderResponse, error) {
	if !target.IsValid() {
		return nil, shared.NewDomainError("INVALID_STATUS", "Unknown order status")
	}

	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if err := order.TransitionTo(target); err != nil {
		return nil, err
	}
	if err := s.orderRepo.Save(ctx, order); err != nil {
		return nil, err
	}

	events := order.GetDomainEvents()
	order.ClearDomainEvents()
	s.publishEvents(ctx, events)

	response := ToSalesOrderResponse(order)
	return &response, nil
}

// GetByID returns a single customer order with its items
func (s *SalesOrderService) GetByID(ctx context.Context, orderID uuid.UUID) (*SalesOrderResponse, error) {
	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	response := ToSalesOrderResponse(order)
	return &response, nil
}

// List returns customer orders matching the filter
func (s *SalesOrderService) List(ctx context.Context, filter shared.Filter) ([]SalesOrderResponse, int64, error) {
	orders, err := s.orderRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.orderRepo.Count(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]SalesOrderResponse, len(orders))
	for i := range orders {
		responses[i] = ToSalesOrderResponse(&orders[i])
	}
	return responses, total, nil
}

// ListByCustomer returns a customer's orders
func (s *SalesOrderService) ListByCustomer(ctx context.Context, customerID uuid.UUID, filter shared.Filter) ([]SalesOrderResponse, error) {
	orders, err := s.orderRepo.FindByCustomer(ctx, customerID, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]SalesOrderResponse, len(orders))
	for i := range orders {
		responses[i] = ToSalesOrderResponse(&orders[i])
	}
	return responses, nil
}

func (s *SalesOrderService) publishEvents(ctx context.Context, events []shared.DomainEvent) {
	if s.eventPublisher == nil || len(events) == 0 {
		return
	}
	_ = s.eventPublisher.Publish(ctx, events...)
}
