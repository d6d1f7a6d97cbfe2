package catalog

import (
	"github.com/marketlink/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Event types for the product aggregate
const (
	EventTypeProductListed = "catalog.product.listed"
)

// ProductListedEvent is raised when a shop lists a new product
type ProductListedEvent struct {
	shared.BaseDomainEvent
	Name   string          `json:"name"`
	ShopID string          `json:"shop_id"`
	Price  decimal.Decimal `json:"price"`
}

// NewProductListedEvent creates a new product listed event
func NewProductListedEvent(product *Product) *ProductListedEvent {
	return &ProductListedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeProductListed, "Product", product.ID),
		Name:            product.Name,
		ShopID:          product.ShopID.String(),
		Price:           product.Price,
	}
}
