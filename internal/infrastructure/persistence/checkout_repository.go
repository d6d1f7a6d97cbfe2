package persistence

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/marketlink/backend/internal/domain/shared"
	"github.com/marketlink/backend/internal/domain/trade"
	"gorm.io/gorm"
)

// GormCheckoutRepository implements trade.CheckoutRepository using GORM
type GormCheckoutRepository struct {
	db *gorm.DB
}

// NewGormCheckoutRepository creates a new GormCheckoutRepository
func NewGormCheckoutRepository(db *gorm.DB) *GormCheckoutRepository {
	return &GormCheckoutRepository{db: db}
}

// PlaceOrders converts the user's basket into orders atomically. Orders are
// inserted and stock decremented with a guarded UPDATE inside one transaction,
// so a concurrent checkout that drains stock first rolls this one back whole.
// The basket is cleared in the same transaction.
func (r *GormCheckoutRepository) PlaceOrders(ctx context.Context, userID uuid.UUID, orders []*trade.Order) error {
	if len(orders) == 0 {
		return shared.NewDomainError("EMPTY_CHECKOUT", "No orders to place")
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, order := range orders {
			if err := tx.Create(order).Error; err != nil {
				return err
			}

			// Guarded decrement: touches the row only while enough stock remains
			result := tx.Exec(
				"UPDATE products SET quantity = quantity - ?, updated_at = ? WHERE id = ? AND quantity >= ?",
				order.Quantity, time.Now(), order.ProductID, order.Quantity,
			)
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected == 0 {
				return shared.ErrInsufficientStock
			}
		}

		return tx.Where("user_id = ?", userID).Delete(&trade.BasketLine{}).Error
	})
}

var _ trade.CheckoutRepository = (*GormCheckoutRepository)(nil)
