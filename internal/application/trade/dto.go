package trade

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stockflow/backend/internal/domain/trade"
)

// CreatePurchaseOrderRequest creates a purchase order from a supplier
type CreatePurchaseOrderRequest struct {
	SupplierID   uuid.UUID                        `json:"supplier_id" binding:"required"`
	WarehouseID  uuid.UUID                        `json:"warehouse_id" binding:"required"`
	DeliveryDate *time.Time                       `json:"delivery_date,omitempty"`
	Items        []CreatePurchaseOrderItemRequest `json:"items" binding:"required,min=1,dive"`
}

// CreatePurchaseOrderItemRequest is one line on a new purchase order
type CreatePurchaseOrderItemRequest struct {
	ProductID uuid.UUID       `json:"product_id" binding:"required"`
	Quantity  int             `json:"quantity" binding:"required,min=1"`
	UnitCost  decimal.Decimal `json:"unit_cost" binding:"required"`
}

// UpdatePurchaseOrderStatusRequest advances a purchase order's status
type UpdatePurchaseOrderStatusRequest struct {
	Status trade.PurchaseOrderStatus `json:"status" binding:"required"`
}

// PurchaseOrderItemResponse represents a purchase order line item
type PurchaseOrderItemResponse struct {
	ID                uuid.UUID       `json:"id"`
	ProductID         uuid.UUID       `json:"product_id"`
	Quantity          int             `json:"quantity"`
	UnitCost          decimal.Decimal `json:"unit_cost"`
	UnitCostFormatted string          `json:"unit_cost_formatted"`
	Amount            decimal.Decimal `json:"amount"`
}

// PurchaseOrderResponse represents a purchase order. The formatted total
// is the display form with currency.
type PurchaseOrderResponse struct {
	ID                   uuid.UUID                   `json:"id"`
	SupplierID           uuid.UUID                   `json:"supplier_id"`
	WarehouseID          uuid.UUID                   `json:"warehouse_id"`
	Status               trade.PurchaseOrderStatus   `json:"status"`
	TotalAmount          decimal.Decimal             `json:"total_amount"`
	TotalAmountFormatted string                      `json:"total_amount_formatted"`
	DeliveryDate         *time.Time                  `json:"delivery_date,omitempty"`
	Items                []PurchaseOrderItemResponse `json:"items"`
	CreatedAt            time.Time                   `json:"created_at"`
	UpdatedAt            time.Time                   `json:"updated_at"`
}

// CreateSalesOrderRequest creates a customer order. Stock is deducted
// in the same transaction that creates the order.
type CreateSalesOrderRequest struct {
	CustomerID uuid.UUID                     `json:"customer_id" binding:"required"`
	Items      []CreateSalesOrderItemRequest `json:"items" binding:"required,min=1,dive"`
}

// CreateSalesOrderItemRequest is one line on a new customer order
type CreateSalesOrderItemRequest struct {
	ProductID uuid.UUID `json:"product_id" binding:"required"`
	Quantity  int       `json:"quantity" binding:"required,min=1"`
}

// UpdateSalesOrderStatusRequest advances a customer order's status
type UpdateSalesOrderStatusRequest struct {
	Status trade.SalesOrderStatus `json:"status" binding:"required"`
}

// SalesOrderItemResponse represents a customer order line item
type SalesOrderItemResponse struct {
	ID          uuid.UUID       `json:"id"`
	ProductID   uuid.UUID       `json:"product_id"`
	WarehouseID uuid.UUID       `json:"warehouse_id"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Amount      decimal.Decimal `json:"amount"`
}

// SalesOrderResponse represents a customer order. The formatted total
// is the display form with currency.
type SalesOrderResponse struct {
	ID                   uuid.UUID                `json:"id"`
	CustomerID           uuid.UUID                `json:"customer_id"`
	Status               trade.SalesOrderStatus   `json:"status"`
	TotalAmount          decimal.Decimal          `json:"total_amount"`
	TotalAmountFormatted string                   `json:"total_amount_formatted"`
	Items                []SalesOrderItemResponse `json:"items"`
	CreatedAt            time.Time                `json:"created_at"`
	UpdatedAt            time.Time                `json:"updated_at"`
}

// ToPurchaseOrderResponse converts a purchase order to its response form
func ToPurchaseOrderResponse(order *trade.PurchaseOrder) PurchaseOrderResponse {
	items := make([]PurchaseOrderItemResponse, len(order.Items))
	for i := range order.Items {
		item := &order.Items[i]
		items[i] = PurchaseOrderItemResponse{
			ID:                item.ID,
			ProductID:         item.ProductID,
			Quantity:          item.Quantity,
			UnitCost:          item.UnitCost,
			UnitCostFormatted: item.GetUnitCostMoney().String(),
			Amount:            item.Amount(),
		}
	}
	return PurchaseOrderResponse{
		ID:                   order.ID,
		SupplierID:           order.SupplierID,
		WarehouseID:          order.WarehouseID,
		Status:               order.Status,
		TotalAmount:          order.TotalAmount,
		TotalAmountFormatted: order.GetTotalAmountMoney().String(),
		DeliveryDate:         order.DeliveryDate,
		Items:                items,
		CreatedAt:            order.CreatedAt,
		UpdatedAt:            order.UpdatedAt,
	}
}

// ToSalesOrderResponse converts a customer order to its response form
func ToSalesOrderResponse(order *trade.SalesOrder) SalesOrderResponse {
	items := make([]SalesOrderItemResponse, len(order.Items))
	for i := range order.Items {
		item := &order.Items[i]
		items[i] = SalesOrderItemResponse{
			ID:          item.ID,
			ProductID:   item.ProductID,
			WarehouseID: item.WarehouseID,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			Amount:      item.Amount(),
		}
	}
	return SalesOrderResponse{
		ID:                   order.ID,
		CustomerID:           order.CustomerID,
		Status:               order.Status,
		TotalAmount:          order.TotalAmount,
		TotalAmountFormatted: order.GetTotalAmountMoney().String(),
		Items:                items,
		CreatedAt:            order.CreatedAt,
		UpdatedAt:            order.UpdatedAt,
	}
}
