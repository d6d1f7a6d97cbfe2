package catalog

import (
	"context"

	"github.com/google/uuid"
)

// ProductFilter narrows product listings
type ProductFilter struct {
	ShopID     *uuid.UUID
	CategoryID *uuid.UUID
}

// ProductRepository defines persistence operations for products
type ProductRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Product, error)
	FindAll(ctx context.Context, filter ProductFilter) ([]Product, error)
	Save(ctx context.Context, product *Product) error
	Delete(ctx context.Context, id uuid.UUID) error
}
