package partner

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/marketlink/backend/internal/domain/partner"
	"github.com/marketlink/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// MockContactRepository is a mock implementation of partner.ContactRepository
type MockContactRepository struct {
	mock.Mock
}

func (m *MockContactRepository) FindByUser(ctx context.Context, userID uuid.UUID) (*partner.Contact, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partner.Contact), args.Error(1)
}

func (m *MockContactRepository) Save(ctx context.Context, contact *partner.Contact) error {
	args := m.Called(ctx, contact)
	return args.Error(0)
}

func (m *MockContactRepository) DeleteByUser(ctx context.Context, userID uuid.UUID) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func validInput() ContactInput {
	return ContactInput{
		City:   "Riga",
		Street: "Brivibas iela",
		House:  "12",
		Phone:  "+371 20000000",
	}
}

func TestContactService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("stores the first contact", func(t *testing.T) {
		contactRepo := new(MockContactRepository)
		service := NewContactService(contactRepo, zap.NewNop())

		userID := uuid.New()
		contactRepo.On("FindByUser", ctx, userID).Return(nil, shared.ErrNotFound)
		contactRepo.On("Save", ctx, mock.AnythingOfType("*partner.Contact")).Return(nil)

		resp, err := service.Create(ctx, userID, validInput())
		require.NoError(t, err)
		assert.Equal(t, "Riga", resp.City)
		contactRepo.AssertExpectations(t)
	})

	t.Run("rejects a second contact", func(t *testing.T) {
		contactRepo := new(MockContactRepository)
		service := NewContactService(contactRepo, zap.NewNop())

		userID := uuid.New()
		existing, err := partner.NewContact(userID, partner.ContactDetails{City: "Riga", Street: "Brivibas iela", Phone: "+371 20000000"})
		require.NoError(t, err)
		contactRepo.On("FindByUser", ctx, userID).Return(existing, nil)

		_, err = service.Create(ctx, userID, validInput())

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "ALREADY_EXISTS", domainErr.Code)
		contactRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("rejects incomplete details", func(t *testing.T) {
		contactRepo := new(MockContactRepository)
		service := NewContactService(contactRepo, zap.NewNop())

		userID := uuid.New()
		contactRepo.On("FindByUser", ctx, userID).Return(nil, shared.ErrNotFound)

		input := validInput()
		input.Phone = ""
		_, err := service.Create(ctx, userID, input)

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_CONTACT", domainErr.Code)
	})
}

func TestContactService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("overwrites the stored address", func(t *testing.T) {
		contactRepo := new(MockContactRepository)
		service := NewContactService(contactRepo, zap.NewNop())

		userID := uuid.New()
		existing, err := partner.NewContact(userID, partner.ContactDetails{City: "Riga", Street: "Brivibas iela", Phone: "+371 20000000"})
		require.NoError(t, err)
		contactRepo.On("FindByUser", ctx, userID).Return(existing, nil)
		contactRepo.On("Save", ctx, existing).Return(nil)

		input := validInput()
		input.City = "Tallinn"
		resp, err := service.Update(ctx, userID, input)
		require.NoError(t, err)
		assert.Equal(t, "Tallinn", resp.City)
	})

	t.Run("fails when no contact exists", func(t *testing.T) {
		contactRepo := new(MockContactRepository)
		service := NewContactService(contactRepo, zap.NewNop())

		userID := uuid.New()
		contactRepo.On("FindByUser", ctx, userID).Return(nil, shared.ErrNotFound)

		_, err := service.Update(ctx, userID, validInput())
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}
