package trade

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/marketlink/backend/internal/domain/catalog"
	"github.com/marketlink/backend/internal/domain/identity"
	"github.com/marketlink/backend/internal/domain/shared"
	"github.com/marketlink/backend/internal/domain/trade"
	"github.com/marketlink/backend/internal/infrastructure/telemetry"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

// OrderService lists orders and drives the fulfilment status pipeline.
// Buyers see their own orders; shop users see and manage orders placed
// against the shop they own.
type OrderService struct {
	orderRepo trade.OrderRepository
	shopRepo  catalog.ShopRepository
	eventBus  shared.EventPublisher
	logger    *zap.Logger
}

// NewOrderService creates a new OrderService
func NewOrderService(
	orderRepo trade.OrderRepository,
	shopRepo catalog.ShopRepository,
	eventBus shared.EventPublisher,
	logger *zap.Logger,
) *OrderService {
	return &OrderService{
		orderRepo: orderRepo,
		shopRepo:  shopRepo,
		eventBus:  eventBus,
		logger:    logger,
	}
}

// List returns orders visible to the caller with their aggregate sum
func (s *OrderService) List(ctx context.Context, userID uuid.UUID, role identity.UserRole) (*OrderListResponse, error) {
	orders, err := s.visibleOrders(ctx, userID, role)
	if err != nil {
		return nil, err
	}
	return ToOrderListResponse(orders), nil
}

// Get returns zero or one order in a list-shaped payload
func (s *OrderService) Get(ctx context.Context, userID uuid.UUID, role identity.UserRole, orderID uuid.UUID) (*OrderListResponse, error) {
	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return ToOrderListResponse(nil), nil
		}
		return nil, err
	}

	visible := false
	switch role {
	case identity.RoleShop:
		shop, err := s.shopRepo.FindByOwner(ctx, userID)
		if err == nil && order.BelongsToShop(shop.ID) {
			visible = true
		}
	default:
		visible = order.UserID == userID
	}

	if !visible {
		return ToOrderListResponse(nil), nil
	}
	return ToOrderListResponse([]trade.Order{*order}), nil
}

// UpdateStatus moves an order through the fulfilment pipeline.
// Only the owner of the shop the order was placed against may do this.
func (s *OrderService) UpdateStatus(ctx context.Context, userID, orderID uuid.UUID, req UpdateStatusRequest) (*OrderResponse, error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "order", "update_status",
		attribute.String(telemetry.SpanAttrOrderID, orderID.String()),
		attribute.String(telemetry.SpanAttrStatus, req.Status))
	defer span.End()

	shop, err := s.shopRepo.FindByOwner(ctx, userID)
	if err != nil {
		return nil, err
	}

	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if !order.BelongsToShop(shop.ID) {
		return nil, shared.NewDomainError("NOT_YOUR_ORDER", "Order belongs to another shop")
	}

	target := trade.OrderStatus(req.Status)
	changed := order.Status != target
	if err := order.SetStatus(target); err != nil {
		return nil, err
	}

	// A same-status update changes nothing; skip the write
	if !changed {
		resp := ToOrderResponse(order)
		return &resp, nil
	}

	if err := s.orderRepo.Save(ctx, order); err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}

	s.publishEvents(ctx, order)

	s.logger.Info("Order status changed",
		zap.String("order_id", order.ID.String()),
		zap.String("status", req.Status))

	resp := ToOrderResponse(order)
	return &resp, nil
}

func (s *OrderService) visibleOrders(ctx context.Context, userID uuid.UUID, role identity.UserRole) ([]trade.Order, error) {
	if role == identity.RoleShop {
		shop, err := s.shopRepo.FindByOwner(ctx, userID)
		if err != nil {
			if errors.Is(err, shared.ErrNotFound) {
				return nil, nil
			}
			return nil, err
		}
		return s.orderRepo.FindByShop(ctx, shop.ID)
	}
	return s.orderRepo.FindByUser(ctx, userID)
}

func (s *OrderService) publishEvents(ctx context.Context, order *trade.Order) {
	events := order.GetDomainEvents()
	if len(events) == 0 {
		return
	}
	if err := s.eventBus.Publish(ctx, events...); err != nil {
		s.logger.Warn("Failed to publish order events",
			zap.String("order_id", order.ID.String()),
			zap.Error(err))
	}
	order.ClearDomainEvents()
}
