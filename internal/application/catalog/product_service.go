package catalog

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/marketlink/backend/internal/domain/catalog"
	"github.com/marketlink/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// ProductService handles product-related business operations.
// All mutating operations resolve the caller's own shop first; a shop user
// can never touch another shop's listings.
type ProductService struct {
	productRepo  catalog.ProductRepository
	shopRepo     catalog.ShopRepository
	categoryRepo catalog.CategoryRepository
	eventBus     shared.EventPublisher
	logger       *zap.Logger
}

// NewProductService creates a new ProductService
func NewProductService(
	productRepo catalog.ProductRepository,
	shopRepo catalog.ShopRepository,
	categoryRepo catalog.CategoryRepository,
	eventBus shared.EventPublisher,
	logger *zap.Logger,
) *ProductService {
	return &ProductService{
		productRepo:  productRepo,
		shopRepo:     shopRepo,
		categoryRepo: categoryRepo,
		eventBus:     eventBus,
		logger:       logger,
	}
}

// Create lists a product in the caller's shop
func (s *ProductService) Create(ctx context.Context, ownerID uuid.UUID, req CreateProductRequest) (*ProductResponse, error) {
	shop, err := s.ownShop(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	if _, err := s.categoryRepo.FindByID(ctx, req.CategoryID); err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("INVALID_CATEGORY", "Category not found")
		}
		return nil, err
	}

	product, err := catalog.NewProduct(shop.ID, req.CategoryID, req.Name, req.Model, req.Quantity, req.Price, req.PriceRRC)
	if err != nil {
		return nil, err
	}

	for _, param := range req.Parameters {
		if err := product.AddParameter(param.Name, param.Value); err != nil {
			return nil, err
		}
	}

	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, err
	}

	s.publishEvents(ctx, product)

	s.logger.Info("Product listed",
		zap.String("product_id", product.ID.String()),
		zap.String("shop_id", shop.ID.String()))

	return ToProductResponse(product), nil
}

// GetByID retrieves a product by ID
func (s *ProductService) GetByID(ctx context.Context, id uuid.UUID) (*ProductResponse, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return ToProductResponse(product), nil
}

// List retrieves products matching the filter
func (s *ProductService) List(ctx context.Context, filter ProductListFilter) ([]ProductResponse, error) {
	products, err := s.productRepo.FindAll(ctx, catalog.ProductFilter{
		ShopID:     filter.ShopID,
		CategoryID: filter.CategoryID,
	})
	if err != nil {
		return nil, err
	}

	responses := make([]ProductResponse, len(products))
	for i := range products {
		responses[i] = *ToProductResponse(&products[i])
	}
	return responses, nil
}

// Update changes stock and pricing on one of the caller's products
func (s *ProductService) Update(ctx context.Context, ownerID, productID uuid.UUID, req UpdateProductRequest) (*ProductResponse, error) {
	product, err := s.ownProduct(ctx, ownerID, productID)
	if err != nil {
		return nil, err
	}

	if req.Quantity != nil {
		if err := product.SetStock(*req.Quantity); err != nil {
			return nil, err
		}
	}
	if req.Price != nil {
		priceRRC := product.PriceRRC
		if req.PriceRRC != nil {
			priceRRC = *req.PriceRRC
		}
		if err := product.SetPricing(*req.Price, priceRRC); err != nil {
			return nil, err
		}
	}

	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, err
	}

	return ToProductResponse(product), nil
}

// Delete removes one of the caller's products
func (s *ProductService) Delete(ctx context.Context, ownerID, productID uuid.UUID) error {
	product, err := s.ownProduct(ctx, ownerID, productID)
	if err != nil {
		return err
	}

	if err := s.productRepo.Delete(ctx, product.ID); err != nil {
		return err
	}

	s.logger.Info("Product removed", zap.String("product_id", product.ID.String()))
	return nil
}

func (s *ProductService) ownShop(ctx context.Context, ownerID uuid.UUID) (*catalog.Shop, error) {
	shop, err := s.shopRepo.FindByOwner(ctx, ownerID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("NO_SHOP", "You do not own a shop")
		}
		return nil, err
	}
	return shop, nil
}

func (s *ProductService) ownProduct(ctx context.Context, ownerID, productID uuid.UUID) (*catalog.Product, error) {
	shop, err := s.ownShop(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	product, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product.ShopID != shop.ID {
		return nil, shared.ErrForbidden
	}
	return product, nil
}

func (s *ProductService) publishEvents(ctx context.Context, product *catalog.Product) {
	events := product.GetDomainEvents()
	if len(events) == 0 {
		return
	}
	if err := s.eventBus.Publish(ctx, events...); err != nil {
		s.logger.Warn("Failed to publish product events", zap.Error(err))
	}
	product.ClearDomainEvents()
}
