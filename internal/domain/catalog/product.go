package catalog

import (
	"strings"

	"github.com/shopspring/decimal"
	"github.com/stockflow/backend/internal/domain/shared"
	"github.com/stockflow/backend/internal/domain/shared/valueobject"
)

// UnitType indicates how a product's stock is counted
type UnitType string

const (
	UnitTypeItem UnitType = "ITEM"
	UnitTypeBox  UnitType = "BOX"
)

// IsValid checks if the unit type is valid
func (u UnitType) IsValid() bool {
	return u == UnitTypeItem || u == UnitTypeBox
}

// Product represents a stock-keeping unit in the catalog.
// It is the aggregate root for product-related operations.
type Product struct {
	shared.BaseAggregateRoot
	SKU           string          `gorm:"type:varchar(50);not null;uniqueIndex"`
	Barcode       string          `gorm:"type:varchar(50);not null;uniqueIndex"`
	Name          string          `gorm:"type:varchar(200);not null"`
	Category      string          `gorm:"type:varchar(100);index"`
	Price         decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"` // Unit price
	UnitType      UnitType        `gorm:"type:varchar(10);not null;default:'ITEM'"`
	BoxSize       *int            `gorm:"type:int"` // Units per box; nil when boxes do not apply
	MinStockLevel int             `gorm:"not null;default:0"`
}

// TableName returns the table name for GORM
func (Product) TableName() string {
	return "products"
}

// NewProduct creates a new product
func NewProduct(sku, barcode, name, category string, price decimal.Decimal, unitType UnitType, boxSize *int) (*Product, error) {
	sku = strings.ToUpper(strings.TrimSpace(sku))
	if sku == "" {
		return nil, shared.NewDomainError("INVALID_SKU", "SKU cannot be empty")
	}
	if strings.TrimSpace(barcode) == "" {
		return nil, shared.NewDomainError("INVALID_BARCODE", "Barcode cannot be empty")
	}
	if strings.TrimSpace(name) == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Product name cannot be empty")
	}
	if price.IsNegative() {
		return nil, shared.NewDomainError("INVALID_PRICE", "Price cannot be negative")
	}
	if !unitType.IsValid() {
		return nil, shared.NewDomainError("INVALID_UNIT_TYPE", "Unit type must be ITEM or BOX")
	}
	if boxSize != nil && *boxSize <= 0 {
		return nil, shared.NewDomainError("INVALID_BOX_SIZE", "Box size must be positive")
	}

	product := &Product{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		SKU:               sku,
		Barcode:           strings.TrimSpace(barcode),
		Name:              name,
		Category:          category,
		Price:             price,
		UnitType:          unitType,
		BoxSize:           boxSize,
	}

	product.AddDomainEvent(NewProductCreatedEvent(product))

	return product, nil
}

// Update updates the product's basic information
func (p *Product) Update(name, category string, price decimal.Decimal) error {
	if strings.TrimSpace(name) == "" {
		return shared.NewDomainError("INVALID_NAME", "Product name cannot be empty")
	}
	if price.IsNegative() {
		return shared.NewDomainError("INVALID_PRICE", "Price cannot be negative")
	}

	p.Name = name
	p.Category = category
	p.Price = price
	p.Touch()
	p.IncrementVersion()

	p.AddDomainEvent(NewProductUpdatedEvent(p))

	return nil
}

// SetBoxSize sets the units-per-box count. Passing nil marks boxes as not applicable.
func (p *Product) SetBoxSize(boxSize *int) error {
	if boxSize != nil && *boxSize <= 0 {
		return shared.NewDomainError("INVALID_BOX_SIZE", "Box size must be positive")
	}
	p.BoxSize = boxSize
	p.Touch()
	p.IncrementVersion()
	return nil
}

// SetMinStockLevel sets the reorder threshold
func (p *Product) SetMinStockLevel(level int) error {
	if level < 0 {
		return shared.NewDomainError("INVALID_MIN_STOCK", "Minimum stock level cannot be negative")
	}
	p.MinStockLevel = level
	p.Touch()
	p.IncrementVersion()
	return nil
}

// BoxSizeOrZero returns the box size, or 0 when boxes do not apply.
// Capacity math treats unknown box sizes as contributing nothing.
func (p *Product) BoxSizeOrZero() int {
	if p.BoxSize == nil {
		return 0
	}
	return *p.BoxSize
}

// GetPriceMoney returns the unit price as a Money value object
func (p *Product) GetPriceMoney() valueobject.Money {
	return valueobject.NewMoneyUSD(p.Price)
}
