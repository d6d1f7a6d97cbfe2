package trade

import (
	"context"

	"github.com/google/uuid"
)

// BasketRepository defines persistence operations for basket lines
type BasketRepository interface {
	FindByUser(ctx context.Context, userID uuid.UUID) ([]BasketLine, error)
	FindByIDForUser(ctx context.Context, userID, lineID uuid.UUID) (*BasketLine, error)
	// ExistsLine reports whether the user already has a line for the
	// (shop, product) pair. A storage-level unique index backs this check.
	ExistsLine(ctx context.Context, userID, shopID, productID uuid.UUID) (bool, error)
	Save(ctx context.Context, line *BasketLine) error
	Delete(ctx context.Context, userID, lineID uuid.UUID) error
}
