package identity

import (
	"github.com/marketlink/backend/internal/domain/shared"
)

// Event types for the user aggregate
const (
	EventTypeUserRegistered = "identity.user.registered"
)

// UserRegisteredEvent is raised when a new account is created
type UserRegisteredEvent struct {
	shared.BaseDomainEvent
	Email string   `json:"email"`
	Role  UserRole `json:"role"`
}

// NewUserRegisteredEvent creates a new user registered event
func NewUserRegisteredEvent(user *User) *UserRegisteredEvent {
	return &UserRegisteredEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeUserRegistered, "User", user.ID),
		Email:           user.Email,
		Role:            user.Role,
	}
}
