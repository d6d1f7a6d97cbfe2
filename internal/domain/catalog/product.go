package catalog

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/marketlink/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Product is a sellable item listed by a shop.
// Stock lives here; checkout decrements it atomically at the storage layer.
type Product struct {
	shared.BaseAggregateRoot
	Name       string `gorm:"not null;uniqueIndex:idx_products_shop_name"`
	Model      string
	CategoryID uuid.UUID          `gorm:"type:uuid;not null;index"`
	ShopID     uuid.UUID          `gorm:"type:uuid;not null;uniqueIndex:idx_products_shop_name"`
	Quantity   int                `gorm:"not null;default:0"` // units in stock, never negative
	Price      decimal.Decimal    `gorm:"type:numeric(12,2);not null"`
	PriceRRC   decimal.Decimal    `gorm:"type:numeric(12,2)"` // recommended retail price
	Parameters []ProductParameter `gorm:"foreignKey:ProductID"`
}

// ProductParameter is a free-form characteristic of a product
type ProductParameter struct {
	shared.BaseEntity
	ProductID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_product_parameters_name"`
	Name      string    `gorm:"not null;uniqueIndex:idx_product_parameters_name"`
	Value     string
}

// NewProduct creates a product for a shop
func NewProduct(shopID, categoryID uuid.UUID, name, model string, quantity int, price, priceRRC decimal.Decimal) (*Product, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shared.NewDomainError("INVALID_PRODUCT_NAME", "Product name cannot be empty")
	}
	if shopID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_SHOP", "Product must belong to a shop")
	}
	if categoryID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_CATEGORY", "Product must belong to a category")
	}
	if quantity < 0 {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Stock quantity cannot be negative")
	}
	if price.LessThanOrEqual(decimal.Zero) {
		return nil, shared.NewDomainError("INVALID_PRICE", "Price must be positive")
	}

	product := &Product{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              name,
		Model:             strings.TrimSpace(model),
		CategoryID:        categoryID,
		ShopID:            shopID,
		Quantity:          quantity,
		Price:             price,
		PriceRRC:          priceRRC,
		Parameters:        make([]ProductParameter, 0),
	}

	product.AddDomainEvent(NewProductListedEvent(product))

	return product, nil
}

// AddParameter attaches a characteristic; names are unique per product
func (p *Product) AddParameter(name, value string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return shared.NewDomainError("INVALID_PARAMETER", "Parameter name cannot be empty")
	}
	for _, param := range p.Parameters {
		if strings.EqualFold(param.Name, name) {
			return shared.NewDomainError("DUPLICATE_PARAMETER", "Parameter already defined for this product")
		}
	}
	p.Parameters = append(p.Parameters, ProductParameter{
		BaseEntity: shared.NewBaseEntity(),
		ProductID:  p.ID,
		Name:       name,
		Value:      value,
	})
	p.touch()
	return nil
}

// HasStock reports whether the requested quantity is available
func (p *Product) HasStock(quantity int) bool {
	return quantity > 0 && p.Quantity >= quantity
}

// SetStock replaces the stock level
func (p *Product) SetStock(quantity int) error {
	if quantity < 0 {
		return shared.NewDomainError("INVALID_QUANTITY", "Stock quantity cannot be negative")
	}
	p.Quantity = quantity
	p.touch()
	return nil
}

// SetPricing updates the sale and recommended retail prices
func (p *Product) SetPricing(price, priceRRC decimal.Decimal) error {
	if price.LessThanOrEqual(decimal.Zero) {
		return shared.NewDomainError("INVALID_PRICE", "Price must be positive")
	}
	p.Price = price
	p.PriceRRC = priceRRC
	p.touch()
	return nil
}

// LineTotal computes price multiplied by quantity
func (p *Product) LineTotal(quantity int) decimal.Decimal {
	return p.Price.Mul(decimal.NewFromInt(int64(quantity)))
}

func (p *Product) touch() {
	p.UpdatedAt = time.Now()
	p.IncrementVersion()
}
