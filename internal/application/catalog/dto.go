package catalog

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stockflow/backend/internal/domain/catalog"
)

// CreateProductRequest creates a catalog product
type CreateProductRequest struct {
	SKU           string           `json:"sku" binding:"required"`
	Barcode       string           `json:"barcode" binding:"required"`
	Name          string           `json:"name" binding:"required"`
	Category      string           `json:"category"`
	Price         decimal.Decimal  `json:"price" binding:"required"`
	UnitType      catalog.UnitType `json:"unit_type" binding:"required,oneof=ITEM BOX"`
	BoxSize       *int             `json:"box_size,omitempty"`
	MinStockLevel *int             `json:"min_stock_level,omitempty"`
}

// UpdateProductRequest updates a product's details. BoxSizeSet
// distinguishes "clear the box size" from "leave it unchanged".
type UpdateProductRequest struct {
	Name          string          `json:"name" binding:"required"`
	Category      string          `json:"category"`
	Price         decimal.Decimal `json:"price" binding:"required"`
	BoxSize       *int            `json:"box_size,omitempty"`
	BoxSizeSet    bool            `json:"-"`
	MinStockLevel *int            `json:"min_stock_level,omitempty"`
}

// ProductResponse represents a catalog product. PriceFormatted is the
// display form with currency for list screens.
type ProductResponse struct {
	ID             uuid.UUID        `json:"id"`
	SKU            string           `json:"sku"`
	Barcode        string           `json:"barcode"`
	Name           string           `json:"name"`
	Category       string           `json:"category"`
	Price          decimal.Decimal  `json:"price"`
	PriceFormatted string           `json:"price_formatted"`
	UnitType       catalog.UnitType `json:"unit_type"`
	BoxSize        *int             `json:"box_size,omitempty"`
	MinStockLevel  int              `json:"min_stock_level"`
	CreatedAt      time.Time        `json:"created_at"`
	UpdatedAt      time.Time        `json:"updated_at"`
}

// ToProductResponse converts a product to its response form
func ToProductResponse(p *catalog.Product) ProductResponse {
	return ProductResponse{
		ID:             p.ID,
		SKU:            p.SKU,
		Barcode:        p.Barcode,
		Name:           p.Name,
		Category:       p.Category,
		Price:          p.Price,
		PriceFormatted: p.GetPriceMoney().String(),
		UnitType:      p.UnitType,
		BoxSize:       p.BoxSize,
		MinStockLevel: p.MinStockLevel,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}
