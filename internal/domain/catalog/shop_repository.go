package catalog

import (
	"context"

	"github.com/google/uuid"
)

// ShopRepository defines persistence operations for shops
type ShopRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Shop, error)
	FindByOwner(ctx context.Context, ownerID uuid.UUID) (*Shop, error)
	FindAll(ctx context.Context, activeOnly bool) ([]Shop, error)
	Save(ctx context.Context, shop *Shop) error
}
