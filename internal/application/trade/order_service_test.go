package trade

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/marketlink/backend/internal/domain/catalog"
	"github.com/marketlink/backend/internal/domain/identity"
	"github.com/marketlink/backend/internal/domain/shared"
	"github.com/marketlink/backend/internal/domain/trade"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// MockOrderRepository is a mock implementation of trade.OrderRepository
type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) FindByID(ctx context.Context, id uuid.UUID) (*trade.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*trade.Order), args.Error(1)
}

func (m *MockOrderRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]trade.Order, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]trade.Order), args.Error(1)
}

func (m *MockOrderRepository) FindByShop(ctx context.Context, shopID uuid.UUID) ([]trade.Order, error) {
	args := m.Called(ctx, shopID)
	return args.Get(0).([]trade.Order), args.Error(1)
}

func (m *MockOrderRepository) Save(ctx context.Context, order *trade.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

type orderServiceMocks struct {
	orderRepo *MockOrderRepository
	shopRepo  *MockShopRepository
	eventBus  *MockEventPublisher
}

func newOrderService() (*OrderService, orderServiceMocks) {
	mocks := orderServiceMocks{
		orderRepo: new(MockOrderRepository),
		shopRepo:  new(MockShopRepository),
		eventBus:  new(MockEventPublisher),
	}
	service := NewOrderService(mocks.orderRepo, mocks.shopRepo, mocks.eventBus, zap.NewNop())
	return service, mocks
}

func newOrderForShop(t *testing.T, userID, shopID uuid.UUID) *trade.Order {
	t.Helper()
	line, err := trade.NewBasketLine(userID, uuid.New(), shopID, 2, decimal.NewFromInt(40), "shop@example.com")
	require.NoError(t, err)
	order, err := trade.NewOrder(line, uuid.New())
	require.NoError(t, err)
	order.ClearDomainEvents()
	return order
}

func TestOrderService_List(t *testing.T) {
	ctx := context.Background()

	t.Run("buyers see their own orders with the aggregate sum", func(t *testing.T) {
		service, mocks := newOrderService()
		userID := uuid.New()

		orderA := newOrderForShop(t, userID, uuid.New())
		orderB := newOrderForShop(t, userID, uuid.New())
		mocks.orderRepo.On("FindByUser", ctx, userID).Return([]trade.Order{*orderA, *orderB}, nil)

		resp, err := service.List(ctx, userID, identity.RoleBuyer)
		require.NoError(t, err)
		assert.Len(t, resp.Orders, 2)
		assert.True(t, resp.TotalSum.Equal(decimal.NewFromInt(160)))
	})

	t.Run("shop users see orders against their own shop", func(t *testing.T) {
		service, mocks := newOrderService()
		ownerID := uuid.New()
		shop, err := catalog.NewShop(ownerID, "Connect", "")
		require.NoError(t, err)

		order := newOrderForShop(t, uuid.New(), shop.ID)
		mocks.shopRepo.On("FindByOwner", ctx, ownerID).Return(shop, nil)
		mocks.orderRepo.On("FindByShop", ctx, shop.ID).Return([]trade.Order{*order}, nil)

		resp, err := service.List(ctx, ownerID, identity.RoleShop)
		require.NoError(t, err)
		assert.Len(t, resp.Orders, 1)
	})

	t.Run("shop users without a shop see nothing", func(t *testing.T) {
		service, mocks := newOrderService()
		ownerID := uuid.New()
		mocks.shopRepo.On("FindByOwner", ctx, ownerID).Return(nil, shared.ErrNotFound)

		resp, err := service.List(ctx, ownerID, identity.RoleShop)
		require.NoError(t, err)
		assert.Empty(t, resp.Orders)
		assert.True(t, resp.TotalSum.IsZero())
	})
}

func TestOrderService_Get(t *testing.T) {
	ctx := context.Background()

	t.Run("hides another buyer's order", func(t *testing.T) {
		service, mocks := newOrderService()
		order := newOrderForShop(t, uuid.New(), uuid.New())
		mocks.orderRepo.On("FindByID", ctx, order.ID).Return(order, nil)

		resp, err := service.Get(ctx, uuid.New(), identity.RoleBuyer, order.ID)
		require.NoError(t, err)
		assert.Empty(t, resp.Orders)
	})

	t.Run("returns the order to its buyer", func(t *testing.T) {
		service, mocks := newOrderService()
		userID := uuid.New()
		order := newOrderForShop(t, userID, uuid.New())
		mocks.orderRepo.On("FindByID", ctx, order.ID).Return(order, nil)

		resp, err := service.Get(ctx, userID, identity.RoleBuyer, order.ID)
		require.NoError(t, err)
		require.Len(t, resp.Orders, 1)
		assert.Equal(t, order.ID, resp.Orders[0].ID)
	})
}

func TestOrderService_UpdateStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("moves an owned order through the pipeline", func(t *testing.T) {
		service, mocks := newOrderService()
		ownerID := uuid.New()
		shop, err := catalog.NewShop(ownerID, "Connect", "")
		require.NoError(t, err)
		order := newOrderForShop(t, uuid.New(), shop.ID)

		mocks.shopRepo.On("FindByOwner", mock.Anything, ownerID).Return(shop, nil)
		mocks.orderRepo.On("FindByID", mock.Anything, order.ID).Return(order, nil)
		mocks.orderRepo.On("Save", mock.Anything, order).Return(nil)
		mocks.eventBus.On("Publish", mock.Anything, mock.Anything).Return(nil)

		resp, err := service.UpdateStatus(ctx, ownerID, order.ID, UpdateStatusRequest{Status: "confirmed"})
		require.NoError(t, err)
		assert.Equal(t, "confirmed", resp.Status)
		mocks.eventBus.AssertExpectations(t)
	})

	t.Run("accepts a same-status update without a write", func(t *testing.T) {
		service, mocks := newOrderService()
		ownerID := uuid.New()
		shop, err := catalog.NewShop(ownerID, "Connect", "")
		require.NoError(t, err)
		order := newOrderForShop(t, uuid.New(), shop.ID)

		mocks.shopRepo.On("FindByOwner", mock.Anything, ownerID).Return(shop, nil)
		mocks.orderRepo.On("FindByID", mock.Anything, order.ID).Return(order, nil)

		resp, err := service.UpdateStatus(ctx, ownerID, order.ID, UpdateStatusRequest{Status: "new"})
		require.NoError(t, err)
		assert.Equal(t, "new", resp.Status)
		mocks.orderRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("forbids another shop's order", func(t *testing.T) {
		service, mocks := newOrderService()
		ownerID := uuid.New()
		shop, err := catalog.NewShop(ownerID, "Connect", "")
		require.NoError(t, err)
		order := newOrderForShop(t, uuid.New(), uuid.New())

		mocks.shopRepo.On("FindByOwner", mock.Anything, ownerID).Return(shop, nil)
		mocks.orderRepo.On("FindByID", mock.Anything, order.ID).Return(order, nil)

		_, err = service.UpdateStatus(ctx, ownerID, order.ID, UpdateStatusRequest{Status: "confirmed"})

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "NOT_YOUR_ORDER", domainErr.Code)
		mocks.orderRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("distinguishes a missing order from a foreign one", func(t *testing.T) {
		service, mocks := newOrderService()
		ownerID := uuid.New()
		shop, err := catalog.NewShop(ownerID, "Connect", "")
		require.NoError(t, err)
		orderID := uuid.New()

		mocks.shopRepo.On("FindByOwner", mock.Anything, ownerID).Return(shop, nil)
		mocks.orderRepo.On("FindByID", mock.Anything, orderID).Return(nil, shared.ErrNotFound)

		_, err = service.UpdateStatus(ctx, ownerID, orderID, UpdateStatusRequest{Status: "confirmed"})
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})

	t.Run("rejects the basket pseudo-status", func(t *testing.T) {
		service, mocks := newOrderService()
		ownerID := uuid.New()
		shop, err := catalog.NewShop(ownerID, "Connect", "")
		require.NoError(t, err)
		order := newOrderForShop(t, uuid.New(), shop.ID)

		mocks.shopRepo.On("FindByOwner", mock.Anything, ownerID).Return(shop, nil)
		mocks.orderRepo.On("FindByID", mock.Anything, order.ID).Return(order, nil)

		_, err = service.UpdateStatus(ctx, ownerID, order.ID, UpdateStatusRequest{Status: "basket"})

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_STATUS", domainErr.Code)
	})

	t.Run("rejects transitions out of a terminal status", func(t *testing.T) {
		service, mocks := newOrderService()
		ownerID := uuid.New()
		shop, err := catalog.NewShop(ownerID, "Connect", "")
		require.NoError(t, err)
		order := newOrderForShop(t, uuid.New(), shop.ID)
		require.NoError(t, order.SetStatus(trade.OrderStatusDelivered))
		order.ClearDomainEvents()

		mocks.shopRepo.On("FindByOwner", mock.Anything, ownerID).Return(shop, nil)
		mocks.orderRepo.On("FindByID", mock.Anything, order.ID).Return(order, nil)

		_, err = service.UpdateStatus(ctx, ownerID, order.ID, UpdateStatusRequest{Status: "canceled"})
		assert.ErrorIs(t, err, shared.ErrInvalidState)
	})
}
