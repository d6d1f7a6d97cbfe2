package partner

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/marketlink/backend/internal/domain/shared"
)

// Contact is a user's shipping address and phone.
// Each user keeps at most one contact; creating a second is a conflict
// and callers overwrite through Update instead.
type Contact struct {
	shared.BaseAggregateRoot
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	City      string    `gorm:"not null"`
	Street    string
	House     string
	Structure string
	Building  string
	Apartment string
	Phone     string
}

// ContactDetails carries the mutable address fields
type ContactDetails struct {
	City      string
	Street    string
	House     string
	Structure string
	Building  string
	Apartment string
	Phone     string
}

// NewContact creates a contact for a user
func NewContact(userID uuid.UUID, details ContactDetails) (*Contact, error) {
	if userID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_USER", "Contact must belong to a user")
	}
	if err := validateDetails(details); err != nil {
		return nil, err
	}

	return &Contact{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		UserID:            userID,
		City:              strings.TrimSpace(details.City),
		Street:            strings.TrimSpace(details.Street),
		House:             strings.TrimSpace(details.House),
		Structure:         strings.TrimSpace(details.Structure),
		Building:          strings.TrimSpace(details.Building),
		Apartment:         strings.TrimSpace(details.Apartment),
		Phone:             strings.TrimSpace(details.Phone),
	}, nil
}

// Update overwrites the address fields
func (c *Contact) Update(details ContactDetails) error {
	if err := validateDetails(details); err != nil {
		return err
	}
	c.City = strings.TrimSpace(details.City)
	c.Street = strings.TrimSpace(details.Street)
	c.House = strings.TrimSpace(details.House)
	c.Structure = strings.TrimSpace(details.Structure)
	c.Building = strings.TrimSpace(details.Building)
	c.Apartment = strings.TrimSpace(details.Apartment)
	c.Phone = strings.TrimSpace(details.Phone)
	c.UpdatedAt = time.Now()
	c.IncrementVersion()
	return nil
}

func validateDetails(details ContactDetails) error {
	if strings.TrimSpace(details.City) == "" {
		return shared.NewDomainError("INVALID_CONTACT", "City is required")
	}
	if strings.TrimSpace(details.Street) == "" {
		return shared.NewDomainError("INVALID_CONTACT", "Street is required")
	}
	if strings.TrimSpace(details.Phone) == "" {
		return shared.NewDomainError("INVALID_CONTACT", "Phone is required")
	}
	if len(details.Phone) > 30 {
		return shared.NewDomainError("INVALID_CONTACT", "Phone cannot exceed 30 characters")
	}
	return nil
}
