package partner

import (
	"context"

	"github.com/google/uuid"
)

// ContactRepository defines persistence operations for contacts
type ContactRepository interface {
	FindByUser(ctx context.Context, userID uuid.UUID) (*Contact, error)
	Save(ctx context.Context, contact *Contact) error
	DeleteByUser(ctx context.Context, userID uuid.UUID) error
}
