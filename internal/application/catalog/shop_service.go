package catalog

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/marketlink/backend/internal/domain/catalog"
	"github.com/marketlink/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// ShopService handles shop-related business operations
type ShopService struct {
	shopRepo catalog.ShopRepository
	logger   *zap.Logger
}

// NewShopService creates a new ShopService
func NewShopService(shopRepo catalog.ShopRepository, logger *zap.Logger) *ShopService {
	return &ShopService{
		shopRepo: shopRepo,
		logger:   logger,
	}
}

// Create opens a shop for the calling shop user. Each user owns at most one.
func (s *ShopService) Create(ctx context.Context, ownerID uuid.UUID, req CreateShopRequest) (*ShopResponse, error) {
	_, err := s.shopRepo.FindByOwner(ctx, ownerID)
	if err == nil {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "You already own a shop")
	}
	if !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}

	shop, err := catalog.NewShop(ownerID, req.Name, req.URL)
	if err != nil {
		return nil, err
	}

	if err := s.shopRepo.Save(ctx, shop); err != nil {
		return nil, err
	}

	s.logger.Info("Shop created",
		zap.String("shop_id", shop.ID.String()),
		zap.String("owner_id", ownerID.String()))

	return ToShopResponse(shop), nil
}

// GetByID retrieves a shop by ID
func (s *ShopService) GetByID(ctx context.Context, id uuid.UUID) (*ShopResponse, error) {
	shop, err := s.shopRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return ToShopResponse(shop), nil
}

// GetOwn retrieves the calling user's shop
func (s *ShopService) GetOwn(ctx context.Context, ownerID uuid.UUID) (*ShopResponse, error) {
	shop, err := s.shopRepo.FindByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	return ToShopResponse(shop), nil
}

// List retrieves shops, optionally active only
func (s *ShopService) List(ctx context.Context, activeOnly bool) ([]ShopResponse, error) {
	shops, err := s.shopRepo.FindAll(ctx, activeOnly)
	if err != nil {
		return nil, err
	}

	responses := make([]ShopResponse, len(shops))
	for i := range shops {
		responses[i] = *ToShopResponse(&shops[i])
	}
	return responses, nil
}

// SetState toggles whether the caller's shop accepts new basket lines
func (s *ShopService) SetState(ctx context.Context, ownerID uuid.UUID, accepting bool) (*ShopResponse, error) {
	shop, err := s.shopRepo.FindByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	shop.SetState(accepting)

	if err := s.shopRepo.Save(ctx, shop); err != nil {
		return nil, err
	}

	s.logger.Info("Shop state changed",
		zap.String("shop_id", shop.ID.String()),
		zap.Bool("accepting", accepting))

	return ToShopResponse(shop), nil
}
