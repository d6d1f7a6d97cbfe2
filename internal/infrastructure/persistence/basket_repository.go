package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/marketlink/backend/internal/domain/shared"
	"github.com/marketlink/backend/internal/domain/trade"
	"gorm.io/gorm"
)

// GormBasketRepository implements trade.BasketRepository using GORM
type GormBasketRepository struct {
	db *gorm.DB
}

// NewGormBasketRepository creates a new GormBasketRepository
func NewGormBasketRepository(db *gorm.DB) *GormBasketRepository {
	return &GormBasketRepository{db: db}
}

// FindByUser lists the user's basket lines, oldest first
func (r *GormBasketRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]trade.BasketLine, error) {
	var lines []trade.BasketLine
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at asc").
		Find(&lines).Error; err != nil {
		return nil, err
	}
	return lines, nil
}

// FindByIDForUser finds one of the user's own basket lines
func (r *GormBasketRepository) FindByIDForUser(ctx context.Context, userID, lineID uuid.UUID) (*trade.BasketLine, error) {
	var line trade.BasketLine
	if err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", lineID, userID).
		First(&line).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &line, nil
}

// ExistsLine checks for an existing line on the (user, shop, product) triple
func (r *GormBasketRepository) ExistsLine(ctx context.Context, userID, shopID, productID uuid.UUID) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&trade.BasketLine{}).
		Where("user_id = ? AND shop_id = ? AND product_id = ?", userID, shopID, productID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Save persists a basket line. The unique index on (user, shop, product)
// turns a lost race between two adds into a conflict instead of a duplicate.
func (r *GormBasketRepository) Save(ctx context.Context, line *trade.BasketLine) error {
	err := r.db.WithContext(ctx).Save(line).Error
	if err != nil && isUniqueViolation(err) {
		return shared.ErrAlreadyExists
	}
	return err
}

// Delete removes one of the user's own basket lines
func (r *GormBasketRepository) Delete(ctx context.Context, userID, lineID uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", lineID, userID).
		Delete(&trade.BasketLine{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

var _ trade.BasketRepository = (*GormBasketRepository)(nil)
