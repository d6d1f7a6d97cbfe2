package catalog

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/marketlink/backend/internal/domain/catalog"
	"github.com/marketlink/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// MockProductRepository is a mock implementation of catalog.ProductRepository
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Product), args.Error(1)
}

func (m *MockProductRepository) FindAll(ctx context.Context, filter catalog.ProductFilter) ([]catalog.Product, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]catalog.Product), args.Error(1)
}

func (m *MockProductRepository) Save(ctx context.Context, product *catalog.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockCategoryRepository is a mock implementation of catalog.CategoryRepository
type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Category, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Category), args.Error(1)
}

func (m *MockCategoryRepository) FindAll(ctx context.Context) ([]catalog.Category, error) {
	args := m.Called(ctx)
	return args.Get(0).([]catalog.Category), args.Error(1)
}

func (m *MockCategoryRepository) Save(ctx context.Context, category *catalog.Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

// MockEventPublisher is a mock implementation of shared.EventPublisher
type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) Publish(ctx context.Context, events ...shared.DomainEvent) error {
	args := m.Called(ctx, events)
	return args.Error(0)
}

type productServiceMocks struct {
	productRepo  *MockProductRepository
	shopRepo     *MockShopRepository
	categoryRepo *MockCategoryRepository
	eventBus     *MockEventPublisher
}

func newProductService() (*ProductService, productServiceMocks) {
	mocks := productServiceMocks{
		productRepo:  new(MockProductRepository),
		shopRepo:     new(MockShopRepository),
		categoryRepo: new(MockCategoryRepository),
		eventBus:     new(MockEventPublisher),
	}
	service := NewProductService(mocks.productRepo, mocks.shopRepo, mocks.categoryRepo, mocks.eventBus, zap.NewNop())
	return service, mocks
}

func TestProductService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("lists a product in the caller's shop", func(t *testing.T) {
		service, mocks := newProductService()

		ownerID := uuid.New()
		shop, err := catalog.NewShop(ownerID, "Connect", "")
		require.NoError(t, err)
		category, err := catalog.NewCategory("Laptops")
		require.NoError(t, err)

		mocks.shopRepo.On("FindByOwner", ctx, ownerID).Return(shop, nil)
		mocks.categoryRepo.On("FindByID", ctx, category.ID).Return(category, nil)
		mocks.productRepo.On("Save", ctx, mock.AnythingOfType("*catalog.Product")).Return(nil)
		mocks.eventBus.On("Publish", ctx, mock.Anything).Return(nil)

		resp, err := service.Create(ctx, ownerID, CreateProductRequest{
			CategoryID: category.ID,
			Name:       "Thinkpad X1",
			Model:      "20U9",
			Quantity:   10,
			Price:      decimal.NewFromInt(1500),
			PriceRRC:   decimal.NewFromInt(1700),
			Parameters: []ProductParameterInput{{Name: "RAM", Value: "32GB"}},
		})

		require.NoError(t, err)
		assert.Equal(t, shop.ID, resp.ShopID)
		assert.Equal(t, 10, resp.Quantity)
		require.Len(t, resp.Parameters, 1)
		assert.Equal(t, "RAM", resp.Parameters[0].Name)
		mocks.productRepo.AssertExpectations(t)
	})

	t.Run("fails when the caller owns no shop", func(t *testing.T) {
		service, mocks := newProductService()

		ownerID := uuid.New()
		mocks.shopRepo.On("FindByOwner", ctx, ownerID).Return(nil, shared.ErrNotFound)

		_, err := service.Create(ctx, ownerID, CreateProductRequest{
			CategoryID: uuid.New(),
			Name:       "Thinkpad X1",
			Quantity:   1,
			Price:      decimal.NewFromInt(1500),
		})

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "NO_SHOP", domainErr.Code)
	})

	t.Run("fails for an unknown category", func(t *testing.T) {
		service, mocks := newProductService()

		ownerID := uuid.New()
		shop, err := catalog.NewShop(ownerID, "Connect", "")
		require.NoError(t, err)
		categoryID := uuid.New()

		mocks.shopRepo.On("FindByOwner", ctx, ownerID).Return(shop, nil)
		mocks.categoryRepo.On("FindByID", ctx, categoryID).Return(nil, shared.ErrNotFound)

		_, err = service.Create(ctx, ownerID, CreateProductRequest{
			CategoryID: categoryID,
			Name:       "Thinkpad X1",
			Quantity:   1,
			Price:      decimal.NewFromInt(1500),
		})

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_CATEGORY", domainErr.Code)
	})
}

func TestProductService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("updates stock on an owned product", func(t *testing.T) {
		service, mocks := newProductService()

		ownerID := uuid.New()
		shop, err := catalog.NewShop(ownerID, "Connect", "")
		require.NoError(t, err)
		product, err := catalog.NewProduct(shop.ID, uuid.New(), "Thinkpad X1", "", 5, decimal.NewFromInt(1500), decimal.Zero)
		require.NoError(t, err)

		mocks.shopRepo.On("FindByOwner", ctx, ownerID).Return(shop, nil)
		mocks.productRepo.On("FindByID", ctx, product.ID).Return(product, nil)
		mocks.productRepo.On("Save", ctx, product).Return(nil)

		quantity := 12
		resp, err := service.Update(ctx, ownerID, product.ID, UpdateProductRequest{Quantity: &quantity})
		require.NoError(t, err)
		assert.Equal(t, 12, resp.Quantity)
	})

	t.Run("forbids touching another shop's product", func(t *testing.T) {
		service, mocks := newProductService()

		ownerID := uuid.New()
		shop, err := catalog.NewShop(ownerID, "Connect", "")
		require.NoError(t, err)
		foreign, err := catalog.NewProduct(uuid.New(), uuid.New(), "Thinkpad X1", "", 5, decimal.NewFromInt(1500), decimal.Zero)
		require.NoError(t, err)

		mocks.shopRepo.On("FindByOwner", ctx, ownerID).Return(shop, nil)
		mocks.productRepo.On("FindByID", ctx, foreign.ID).Return(foreign, nil)

		quantity := 12
		_, err = service.Update(ctx, ownerID, foreign.ID, UpdateProductRequest{Quantity: &quantity})
		assert.ErrorIs(t, err, shared.ErrForbidden)
		mocks.productRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})
}
