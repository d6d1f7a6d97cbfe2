package trade

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/marketlink/backend/internal/domain/identity"
	"github.com/marketlink/backend/internal/domain/partner"
	"github.com/marketlink/backend/internal/domain/shared"
	"github.com/marketlink/backend/internal/domain/shared/service"
	"github.com/marketlink/backend/internal/domain/trade"
	"github.com/marketlink/backend/internal/infrastructure/telemetry"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

// CheckoutService turns a buyer's basket into orders.
// The storage layer commits orders, stock decrements and basket clearing as
// one unit; notifications and events go out only after the commit.
type CheckoutService struct {
	basketRepo   trade.BasketRepository
	checkoutRepo trade.CheckoutRepository
	contactRepo  partner.ContactRepository
	userRepo     identity.UserRepository
	eventBus     shared.EventPublisher
	notifier     service.Notifier
	logger       *zap.Logger
}

// NewCheckoutService creates a new CheckoutService
func NewCheckoutService(
	basketRepo trade.BasketRepository,
	checkoutRepo trade.CheckoutRepository,
	contactRepo partner.ContactRepository,
	userRepo identity.UserRepository,
	eventBus shared.EventPublisher,
	notifier service.Notifier,
	logger *zap.Logger,
) *CheckoutService {
	return &CheckoutService{
		basketRepo:   basketRepo,
		checkoutRepo: checkoutRepo,
		contactRepo:  contactRepo,
		userRepo:     userRepo,
		eventBus:     eventBus,
		notifier:     notifier,
		logger:       logger,
	}
}

// PlaceOrder converts all of the buyer's basket lines into orders
func (s *CheckoutService) PlaceOrder(ctx context.Context, userID uuid.UUID) (*OrderListResponse, error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "checkout", "place_order",
		attribute.String(telemetry.SpanAttrUserID, userID.String()))
	defer span.End()

	lines, err := s.basketRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	contact, err := s.contactRepo.FindByUser(ctx, userID)
	if err != nil && !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}
	if len(lines) == 0 || contact == nil {
		return nil, shared.NewDomainError("EMPTY_BASKET_OR_NO_CONTACT",
			"Checkout requires a non-empty basket and a shipping contact")
	}

	orders := make([]*trade.Order, len(lines))
	for i := range lines {
		order, err := trade.NewOrder(&lines[i], contact.ID)
		if err != nil {
			return nil, err
		}
		orders[i] = order
	}

	if err := s.checkoutRepo.PlaceOrders(ctx, userID, orders); err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}

	s.publishEvents(ctx, orders)
	s.notifyParties(ctx, userID, orders)

	s.logger.Info("Checkout completed",
		zap.String("user_id", userID.String()),
		zap.Int("orders", len(orders)))

	placed := make([]trade.Order, len(orders))
	for i, order := range orders {
		placed[i] = *order
	}
	return ToOrderListResponse(placed), nil
}

func (s *CheckoutService) publishEvents(ctx context.Context, orders []*trade.Order) {
	for _, order := range orders {
		events := order.GetDomainEvents()
		if len(events) == 0 {
			continue
		}
		if err := s.eventBus.Publish(ctx, events...); err != nil {
			s.logger.Warn("Failed to publish order events",
				zap.String("order_id", order.ID.String()),
				zap.Error(err))
		}
		order.ClearDomainEvents()
	}
}

// notifyParties sends one notification per distinct shop email and one
// summary to the buyer. Delivery is fire-and-forget.
func (s *CheckoutService) notifyParties(ctx context.Context, userID uuid.UUID, orders []*trade.Order) {
	byShopEmail := make(map[string][]string)
	allIDs := make([]string, len(orders))
	for i, order := range orders {
		byShopEmail[order.ShopEmail] = append(byShopEmail[order.ShopEmail], order.ID.String())
		allIDs[i] = order.ID.String()
	}

	for email, orderIDs := range byShopEmail {
		s.notifier.Notify(ctx, email, "New orders received",
			fmt.Sprintf("You have new orders: %s", strings.Join(orderIDs, ", ")))
	}

	buyer, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		s.logger.Warn("Could not resolve buyer for checkout notification",
			zap.String("user_id", userID.String()),
			zap.Error(err))
		return
	}
	s.notifier.Notify(ctx, buyer.Email, "Order confirmation",
		fmt.Sprintf("Your orders were placed: %s", strings.Join(allIDs, ", ")))
}
