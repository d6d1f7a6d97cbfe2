package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/marketlink/backend/internal/domain/catalog"
	"github.com/marketlink/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormShopRepository implements catalog.ShopRepository using GORM
type GormShopRepository struct {
	db *gorm.DB
}

// NewGormShopRepository creates a new GormShopRepository
func NewGormShopRepository(db *gorm.DB) *GormShopRepository {
	return &GormShopRepository{db: db}
}

// FindByID finds a shop by ID
func (r *GormShopRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Shop, error) {
	var shop catalog.Shop
	if err := r.db.WithContext(ctx).First(&shop, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &shop, nil
}

// FindByOwner finds the shop owned by the given user
func (r *GormShopRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID) (*catalog.Shop, error) {
	var shop catalog.Shop
	if err := r.db.WithContext(ctx).Where("owner_id = ?", ownerID).First(&shop).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &shop, nil
}

// FindAll lists shops, optionally restricted to active ones
func (r *GormShopRepository) FindAll(ctx context.Context, activeOnly bool) ([]catalog.Shop, error) {
	var shops []catalog.Shop
	query := r.db.WithContext(ctx).Order("name asc")
	if activeOnly {
		query = query.Where("active = ?", true)
	}
	if err := query.Find(&shops).Error; err != nil {
		return nil, err
	}
	return shops, nil
}

// Save persists a shop
func (r *GormShopRepository) Save(ctx context.Context, shop *catalog.Shop) error {
	return r.db.WithContext(ctx).Save(shop).Error
}

var _ catalog.ShopRepository = (*GormShopRepository)(nil)
