package partner

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/marketlink/backend/internal/domain/partner"
	"github.com/marketlink/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// ContactService manages the single shipping contact each user keeps
type ContactService struct {
	contactRepo partner.ContactRepository
	logger      *zap.Logger
}

// NewContactService creates a new ContactService
func NewContactService(contactRepo partner.ContactRepository, logger *zap.Logger) *ContactService {
	return &ContactService{
		contactRepo: contactRepo,
		logger:      logger,
	}
}

// Create stores the user's shipping contact; a second create is a conflict
func (s *ContactService) Create(ctx context.Context, userID uuid.UUID, input ContactInput) (*ContactResponse, error) {
	_, err := s.contactRepo.FindByUser(ctx, userID)
	if err == nil {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "A shipping contact already exists; update it instead")
	}
	if !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}

	contact, err := partner.NewContact(userID, input.details())
	if err != nil {
		return nil, err
	}

	if err := s.contactRepo.Save(ctx, contact); err != nil {
		return nil, err
	}

	s.logger.Info("Contact created", zap.String("user_id", userID.String()))

	return ToContactResponse(contact), nil
}

// Get retrieves the user's shipping contact
func (s *ContactService) Get(ctx context.Context, userID uuid.UUID) (*ContactResponse, error) {
	contact, err := s.contactRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return ToContactResponse(contact), nil
}

// Update overwrites the user's shipping contact
func (s *ContactService) Update(ctx context.Context, userID uuid.UUID, input ContactInput) (*ContactResponse, error) {
	contact, err := s.contactRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	if err := contact.Update(input.details()); err != nil {
		return nil, err
	}

	if err := s.contactRepo.Save(ctx, contact); err != nil {
		return nil, err
	}

	return ToContactResponse(contact), nil
}

// Delete removes the user's shipping contact
func (s *ContactService) Delete(ctx context.Context, userID uuid.UUID) error {
	return s.contactRepo.DeleteByUser(ctx, userID)
}
