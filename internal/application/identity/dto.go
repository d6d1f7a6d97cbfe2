package identity

import (
	"time"

	"github.com/google/uuid"
	"github.com/marketlink/backend/internal/domain/identity"
)

// RegisterInput contains input for user registration
type RegisterInput struct {
	Email     string
	Password  string
	Role      string
	FirstName string
	LastName  string
	Company   string
	Position  string
}

// LoginInput contains input for login
type LoginInput struct {
	Email    string
	Password string
}

// LogoutInput contains input for logout
type LogoutInput struct {
	AccessToken string
}

// UserInfo is the user representation returned to clients
type UserInfo struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	FirstName string    `json:"first_name,omitempty"`
	LastName  string    `json:"last_name,omitempty"`
	Company   string    `json:"company,omitempty"`
	Position  string    `json:"position,omitempty"`
	Role      string    `json:"role"`
	Active    bool      `json:"active"`
}

// LoginResult contains the issued tokens and user info
type LoginResult struct {
	AccessToken           string    `json:"access_token"`
	RefreshToken          string    `json:"refresh_token"`
	AccessTokenExpiresAt  time.Time `json:"access_token_expires_at"`
	RefreshTokenExpiresAt time.Time `json:"refresh_token_expires_at"`
	TokenType             string    `json:"token_type"`
	User                  UserInfo  `json:"user"`
}

// ToUserInfo maps a user aggregate to its client representation
func ToUserInfo(user *identity.User) UserInfo {
	return UserInfo{
		ID:        user.ID,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Company:   user.Company,
		Position:  user.Position,
		Role:      string(user.Role),
		Active:    user.Active,
	}
}
