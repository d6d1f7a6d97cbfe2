package identity

import (
	"regexp"
	"strings"
	"time"

	"github.com/marketlink/backend/internal/domain/shared"
	"golang.org/x/crypto/bcrypt"
)

// UserRole determines which side of the marketplace a user acts on
type UserRole string

const (
	RoleBuyer UserRole = "buyer" // places orders
	RoleShop  UserRole = "shop"  // owns a shop and fulfils orders
)

// IsValid reports whether the role is a known marketplace role
func (r UserRole) IsValid() bool {
	return r == RoleBuyer || r == RoleShop
}

// Password cost for bcrypt
const bcryptCost = 12

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// User represents a marketplace account.
// It is the aggregate root for user-related operations.
type User struct {
	shared.BaseAggregateRoot
	Email        string `gorm:"not null;uniqueIndex"`
	PasswordHash string `gorm:"not null"`
	FirstName    string
	LastName     string
	Company      string
	Position     string
	Role         UserRole
	Active       bool
}

// NewUser creates a new user with required fields
func NewUser(email, password string, role UserRole) (*User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if err := validateEmail(email); err != nil {
		return nil, err
	}
	if password == "" {
		return nil, shared.NewDomainError("INVALID_PASSWORD", "Password is required")
	}
	if !role.IsValid() {
		return nil, shared.NewDomainError("INVALID_ROLE", "Role must be buyer or shop")
	}

	passwordHash, err := hashPassword(password)
	if err != nil {
		return nil, shared.NewDomainError("PASSWORD_HASH_ERROR", "Failed to hash password")
	}

	user := &User{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Email:             email,
		PasswordHash:      passwordHash,
		Role:              role,
		Active:            true,
	}

	user.AddDomainEvent(NewUserRegisteredEvent(user))

	return user, nil
}

// SetName sets the user's personal names
func (u *User) SetName(first, last string) {
	u.FirstName = strings.TrimSpace(first)
	u.LastName = strings.TrimSpace(last)
	u.touch()
}

// SetCompany sets the user's company and position
func (u *User) SetCompany(company, position string) {
	u.Company = strings.TrimSpace(company)
	u.Position = strings.TrimSpace(position)
	u.touch()
}

// CheckPassword verifies a plaintext password against the stored hash
func (u *User) CheckPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) == nil
}

// ChangePassword replaces the stored password hash
func (u *User) ChangePassword(password string) error {
	if password == "" {
		return shared.NewDomainError("INVALID_PASSWORD", "Password is required")
	}
	hash, err := hashPassword(password)
	if err != nil {
		return shared.NewDomainError("PASSWORD_HASH_ERROR", "Failed to hash password")
	}
	u.PasswordHash = hash
	u.touch()
	return nil
}

// Deactivate disables the account
func (u *User) Deactivate() {
	u.Active = false
	u.touch()
}

// IsShop reports whether the user acts as a shop
func (u *User) IsShop() bool {
	return u.Role == RoleShop
}

// FullName returns the display name for notifications
func (u *User) FullName() string {
	name := strings.TrimSpace(u.FirstName + " " + u.LastName)
	if name == "" {
		return u.Email
	}
	return name
}

func (u *User) touch() {
	u.UpdatedAt = time.Now()
	u.IncrementVersion()
}

func validateEmail(email string) error {
	if email == "" {
		return shared.NewDomainError("INVALID_EMAIL", "Email is required")
	}
	if len(email) > 254 || !emailRegex.MatchString(email) {
		return shared.NewDomainError("INVALID_EMAIL", "Email format is invalid")
	}
	return nil
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
