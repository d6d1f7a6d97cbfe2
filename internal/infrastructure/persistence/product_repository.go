package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/marketlink/backend/internal/domain/catalog"
	"github.com/marketlink/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormProductRepository implements catalog.ProductRepository using GORM
type GormProductRepository struct {
	db *gorm.DB
}

// NewGormProductRepository creates a new GormProductRepository
func NewGormProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

// FindByID finds a product with its parameters
func (r *GormProductRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Product, error) {
	var product catalog.Product
	if err := r.db.WithContext(ctx).
		Preload("Parameters").
		First(&product, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &product, nil
}

// FindAll lists products matching the filter
func (r *GormProductRepository) FindAll(ctx context.Context, filter catalog.ProductFilter) ([]catalog.Product, error) {
	var products []catalog.Product
	query := r.db.WithContext(ctx).Preload("Parameters").Order("name asc")
	if filter.ShopID != nil {
		query = query.Where("shop_id = ?", *filter.ShopID)
	}
	if filter.CategoryID != nil {
		query = query.Where("category_id = ?", *filter.CategoryID)
	}
	if err := query.Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// Save persists a product together with its parameters
func (r *GormProductRepository) Save(ctx context.Context, product *catalog.Product) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(product).Error; err != nil {
			return err
		}

		currentParamIDs := make([]uuid.UUID, len(product.Parameters))
		for i, param := range product.Parameters {
			currentParamIDs[i] = param.ID
		}

		// Delete parameters removed from the aggregate
		if len(currentParamIDs) > 0 {
			if err := tx.Where("product_id = ? AND id NOT IN ?", product.ID, currentParamIDs).
				Delete(&catalog.ProductParameter{}).Error; err != nil {
				return err
			}
		} else {
			if err := tx.Where("product_id = ?", product.ID).
				Delete(&catalog.ProductParameter{}).Error; err != nil {
				return err
			}
		}

		for i := range product.Parameters {
			product.Parameters[i].ProductID = product.ID
			if err := tx.Save(&product.Parameters[i]).Error; err != nil {
				return err
			}
		}

		return nil
	})
}

// Delete removes a product and its parameters
func (r *GormProductRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("product_id = ?", id).Delete(&catalog.ProductParameter{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&catalog.Product{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return shared.ErrNotFound
		}
		return nil
	})
}

var _ catalog.ProductRepository = (*GormProductRepository)(nil)
