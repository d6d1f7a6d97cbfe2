package trade

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/marketlink/backend/internal/domain/catalog"
	"github.com/marketlink/backend/internal/domain/identity"
	"github.com/marketlink/backend/internal/domain/shared"
	"github.com/marketlink/backend/internal/domain/trade"
	"go.uber.org/zap"
)

// BasketService manages buyers' baskets. Adding a line runs the ordered
// precondition checks (shop open, product in shop, stock, no duplicate)
// and freezes the price snapshot; stock is only decremented at checkout.
type BasketService struct {
	basketRepo  trade.BasketRepository
	shopRepo    catalog.ShopRepository
	productRepo catalog.ProductRepository
	userRepo    identity.UserRepository
	logger      *zap.Logger
}

// NewBasketService creates a new BasketService
func NewBasketService(
	basketRepo trade.BasketRepository,
	shopRepo catalog.ShopRepository,
	productRepo catalog.ProductRepository,
	userRepo identity.UserRepository,
	logger *zap.Logger,
) *BasketService {
	return &BasketService{
		basketRepo:  basketRepo,
		shopRepo:    shopRepo,
		productRepo: productRepo,
		userRepo:    userRepo,
		logger:      logger,
	}
}

// AddLine reserves a product in the buyer's basket
func (s *BasketService) AddLine(ctx context.Context, userID uuid.UUID, req AddBasketLineRequest) (*BasketLineResponse, error) {
	shop, err := s.shopRepo.FindByID(ctx, req.ShopID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("SHOP_CLOSED", "Shop is not accepting orders")
		}
		return nil, err
	}
	if !shop.IsAcceptingOrders() {
		return nil, shared.NewDomainError("SHOP_CLOSED", "Shop is not accepting orders")
	}

	product, err := s.productRepo.FindByID(ctx, req.ProductID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("PRODUCT_NOT_IN_SHOP", "Product is not sold by this shop")
		}
		return nil, err
	}
	if product.ShopID != shop.ID {
		return nil, shared.NewDomainError("PRODUCT_NOT_IN_SHOP", "Product is not sold by this shop")
	}

	if !product.HasStock(req.Quantity) {
		return nil, shared.ErrInsufficientStock
	}

	exists, err := s.basketRepo.ExistsLine(ctx, userID, shop.ID, product.ID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("ALREADY_IN_BASKET", "Product is already in the basket")
	}

	owner, err := s.userRepo.FindByID(ctx, shop.OwnerID)
	if err != nil {
		return nil, err
	}

	line, err := trade.NewBasketLine(userID, product.ID, shop.ID, req.Quantity, product.Price, owner.Email)
	if err != nil {
		return nil, err
	}

	if err := s.basketRepo.Save(ctx, line); err != nil {
		// Lost the race against a concurrent add of the same product
		if errors.Is(err, shared.ErrAlreadyExists) {
			return nil, shared.NewDomainError("ALREADY_IN_BASKET", "Product is already in the basket")
		}
		return nil, err
	}

	s.logger.Info("Basket line added",
		zap.String("user_id", userID.String()),
		zap.String("product_id", product.ID.String()),
		zap.Int("quantity", req.Quantity))

	resp := ToBasketLineResponse(line)
	return &resp, nil
}

// List returns the buyer's basket with its running total
func (s *BasketService) List(ctx context.Context, userID uuid.UUID) (*BasketResponse, error) {
	lines, err := s.basketRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	responses := make([]BasketLineResponse, len(lines))
	for i := range lines {
		responses[i] = ToBasketLineResponse(&lines[i])
	}

	return &BasketResponse{
		Lines:    responses,
		TotalSum: trade.BasketTotal(lines),
	}, nil
}

// RemoveLine deletes one of the buyer's basket lines
func (s *BasketService) RemoveLine(ctx context.Context, userID, lineID uuid.UUID) error {
	return s.basketRepo.Delete(ctx, userID, lineID)
}
