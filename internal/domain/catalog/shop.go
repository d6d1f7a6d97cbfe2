package catalog

import (
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/marketlink/backend/internal/domain/shared"
)

// Shop represents a seller storefront.
// Each shop user owns at most one shop; the owner's email is the
// destination for order notifications.
type Shop struct {
	shared.BaseAggregateRoot
	Name    string `gorm:"not null"`
	URL     string
	OwnerID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	State   bool      `gorm:"not null;default:true"` // accepting orders
	Active  bool      `gorm:"not null;default:true"`
}

// NewShop creates a shop owned by the given user
func NewShop(ownerID uuid.UUID, name, shopURL string) (*Shop, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shared.NewDomainError("INVALID_SHOP_NAME", "Shop name cannot be empty")
	}
	if len(name) > 100 {
		return nil, shared.NewDomainError("INVALID_SHOP_NAME", "Shop name cannot exceed 100 characters")
	}
	if ownerID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_OWNER", "Shop owner is required")
	}
	if shopURL != "" {
		if _, err := url.ParseRequestURI(shopURL); err != nil {
			return nil, shared.NewDomainError("INVALID_SHOP_URL", "Shop URL is not a valid URL")
		}
	}

	return &Shop{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              name,
		URL:               shopURL,
		OwnerID:           ownerID,
		State:             true,
		Active:            true,
	}, nil
}

// SetState toggles whether the shop is accepting orders
func (s *Shop) SetState(accepting bool) {
	s.State = accepting
	s.touch()
}

// IsAcceptingOrders reports whether new basket lines may reference this shop
func (s *Shop) IsAcceptingOrders() bool {
	return s.Active && s.State
}

// Rename changes the shop name
func (s *Shop) Rename(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return shared.NewDomainError("INVALID_SHOP_NAME", "Shop name cannot be empty")
	}
	s.Name = name
	s.touch()
	return nil
}

func (s *Shop) touch() {
	s.UpdatedAt = time.Now()
	s.IncrementVersion()
}
