package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/marketlink/backend/internal/domain/partner"
	"github.com/marketlink/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormContactRepository implements partner.ContactRepository using GORM
type GormContactRepository struct {
	db *gorm.DB
}

// NewGormContactRepository creates a new GormContactRepository
func NewGormContactRepository(db *gorm.DB) *GormContactRepository {
	return &GormContactRepository{db: db}
}

// FindByUser finds the single contact of a user
func (r *GormContactRepository) FindByUser(ctx context.Context, userID uuid.UUID) (*partner.Contact, error) {
	var contact partner.Contact
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&contact).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &contact, nil
}

// Save persists a contact. The unique index on user_id enforces the
// one-contact-per-user rule at the storage level.
func (r *GormContactRepository) Save(ctx context.Context, contact *partner.Contact) error {
	err := r.db.WithContext(ctx).Save(contact).Error
	if err != nil && isUniqueViolation(err) {
		return shared.ErrAlreadyExists
	}
	return err
}

// DeleteByUser removes the user's contact
func (r *GormContactRepository) DeleteByUser(ctx context.Context, userID uuid.UUID) error {
	result := r.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&partner.Contact{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

var _ partner.ContactRepository = (*GormContactRepository)(nil)
