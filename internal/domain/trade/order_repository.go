package trade

import (
	"context"

	"github.com/google/uuid"
)

// OrderRepository defines read and status-update persistence for orders
type OrderRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Order, error)
	FindByUser(ctx context.Context, userID uuid.UUID) ([]Order, error)
	FindByShop(ctx context.Context, shopID uuid.UUID) ([]Order, error)
	// Save persists status changes with an optimistic version check
	Save(ctx context.Context, order *Order) error
}

// CheckoutRepository turns a basket into orders as one unit of work.
// Implementations must, inside a single transaction: insert the orders,
// conditionally decrement product stock (failing the whole checkout when
// any product lacks stock), and clear the user's basket. Either everything
// commits or nothing does.
type CheckoutRepository interface {
	PlaceOrders(ctx context.Context, userID uuid.UUID, orders []*Order) error
}
