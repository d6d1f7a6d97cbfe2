package identity

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/marketlink/backend/internal/domain/identity"
	"github.com/marketlink/backend/internal/domain/shared"
	"github.com/marketlink/backend/internal/infrastructure/auth"
	"github.com/marketlink/backend/internal/infrastructure/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// MockUserRepository is a mock implementation of identity.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*identity.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*identity.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.User), args.Error(1)
}

func (m *MockUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) Save(ctx context.Context, user *identity.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

// MockEventBus is a mock implementation of shared.EventPublisher
type MockEventBus struct {
	mock.Mock
}

func (m *MockEventBus) Publish(ctx context.Context, events ...shared.DomainEvent) error {
	args := m.Called(ctx, events)
	return args.Error(0)
}

func newTestJWTService() *auth.JWTService {
	return auth.NewJWTService(config.JWTConfig{
		Secret:                 "test-secret-used-only-in-unit-tests",
		AccessTokenExpiration:  15 * time.Minute,
		RefreshTokenExpiration: 7 * 24 * time.Hour,
		Issuer:                 "marketlink-test",
	})
}

func newAuthService(userRepo *MockUserRepository, eventBus *MockEventBus) *AuthService {
	return NewAuthService(
		userRepo,
		newTestJWTService(),
		auth.NewInMemoryTokenBlacklist(),
		eventBus,
		zap.NewNop(),
	)
}

func TestAuthService_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("creates a buyer account", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		eventBus := new(MockEventBus)
		service := newAuthService(userRepo, eventBus)

		userRepo.On("ExistsByEmail", ctx, "buyer@example.com").Return(false, nil)
		userRepo.On("Save", ctx, mock.AnythingOfType("*identity.User")).Return(nil)
		eventBus.On("Publish", ctx, mock.Anything).Return(nil)

		info, err := service.Register(ctx, RegisterInput{
			Email:     "buyer@example.com",
			Password:  "secret",
			Role:      "buyer",
			FirstName: "Ada",
			LastName:  "Lovelace",
		})

		require.NoError(t, err)
		assert.Equal(t, "buyer@example.com", info.Email)
		assert.Equal(t, "buyer", info.Role)
		assert.True(t, info.Active)
		userRepo.AssertExpectations(t)
		eventBus.AssertExpectations(t)
	})

	t.Run("rejects a duplicate email", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		eventBus := new(MockEventBus)
		service := newAuthService(userRepo, eventBus)

		userRepo.On("ExistsByEmail", ctx, "taken@example.com").Return(true, nil)

		_, err := service.Register(ctx, RegisterInput{
			Email:    "taken@example.com",
			Password: "secret",
			Role:     "shop",
		})

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "ALREADY_EXISTS", domainErr.Code)
		userRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("rejects an unknown role", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		eventBus := new(MockEventBus)
		service := newAuthService(userRepo, eventBus)

		userRepo.On("ExistsByEmail", ctx, "admin@example.com").Return(false, nil)

		_, err := service.Register(ctx, RegisterInput{
			Email:    "admin@example.com",
			Password: "secret",
			Role:     "admin",
		})

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_ROLE", domainErr.Code)
	})
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()

	newActiveUser := func(t *testing.T) *identity.User {
		user, err := identity.NewUser("buyer@example.com", "secret", identity.RoleBuyer)
		require.NoError(t, err)
		return user
	}

	t.Run("returns a token pair for valid credentials", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		service := newAuthService(userRepo, new(MockEventBus))

		user := newActiveUser(t)
		userRepo.On("FindByEmail", ctx, "buyer@example.com").Return(user, nil)

		result, err := service.Login(ctx, LoginInput{Email: "buyer@example.com", Password: "secret"})
		require.NoError(t, err)
		assert.NotEmpty(t, result.AccessToken)
		assert.NotEmpty(t, result.RefreshToken)
		assert.Equal(t, "Bearer", result.TokenType)
		assert.Equal(t, user.ID, result.User.ID)
	})

	t.Run("hides whether the email exists", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		service := newAuthService(userRepo, new(MockEventBus))

		userRepo.On("FindByEmail", ctx, "ghost@example.com").Return(nil, shared.ErrNotFound)

		_, err := service.Login(ctx, LoginInput{Email: "ghost@example.com", Password: "secret"})

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_CREDENTIALS", domainErr.Code)
	})

	t.Run("rejects a wrong password", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		service := newAuthService(userRepo, new(MockEventBus))

		user := newActiveUser(t)
		userRepo.On("FindByEmail", ctx, "buyer@example.com").Return(user, nil)

		_, err := service.Login(ctx, LoginInput{Email: "buyer@example.com", Password: "wrong"})

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_CREDENTIALS", domainErr.Code)
	})

	t.Run("rejects a deactivated account", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		service := newAuthService(userRepo, new(MockEventBus))

		user := newActiveUser(t)
		user.Deactivate()
		userRepo.On("FindByEmail", ctx, "buyer@example.com").Return(user, nil)

		_, err := service.Login(ctx, LoginInput{Email: "buyer@example.com", Password: "secret"})

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_CREDENTIALS", domainErr.Code)
	})
}

func TestAuthService_Logout(t *testing.T) {
	ctx := context.Background()

	t.Run("blacklists the presented token", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		jwtService := newTestJWTService()
		blacklist := auth.NewInMemoryTokenBlacklist()
		service := NewAuthService(userRepo, jwtService, blacklist, new(MockEventBus), zap.NewNop())

		pair, err := jwtService.GenerateTokenPair(auth.GenerateTokenInput{
			UserID: uuid.New(),
			Email:  "buyer@example.com",
			Role:   "buyer",
		})
		require.NoError(t, err)

		require.NoError(t, service.Logout(ctx, LogoutInput{AccessToken: pair.AccessToken}))

		claims, err := jwtService.ValidateAccessToken(pair.AccessToken)
		require.NoError(t, err)
		revoked, err := blacklist.IsBlacklisted(ctx, claims.ID)
		require.NoError(t, err)
		assert.True(t, revoked)
	})

	t.Run("rejects garbage tokens", func(t *testing.T) {
		service := newAuthService(new(MockUserRepository), new(MockEventBus))

		err := service.Logout(ctx, LogoutInput{AccessToken: "not-a-token"})

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "TOKEN_INVALID", domainErr.Code)
	})
}
