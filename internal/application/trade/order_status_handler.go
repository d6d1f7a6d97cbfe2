package trade

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/marketlink/backend/internal/domain/identity"
	"github.com/marketlink/backend/internal/domain/shared"
	"github.com/marketlink/backend/internal/domain/shared/service"
	"github.com/marketlink/backend/internal/domain/trade"
	"go.uber.org/zap"
)

// OrderStatusChangedHandler emails the buyer whenever a shop moves one of
// their orders through the fulfilment pipeline.
type OrderStatusChangedHandler struct {
	userRepo identity.UserRepository
	notifier service.Notifier
	logger   *zap.Logger
}

// NewOrderStatusChangedHandler creates a new handler for status change events
func NewOrderStatusChangedHandler(
	userRepo identity.UserRepository,
	notifier service.Notifier,
	logger *zap.Logger,
) *OrderStatusChangedHandler {
	return &OrderStatusChangedHandler{
		userRepo: userRepo,
		notifier: notifier,
		logger:   logger,
	}
}

// EventTypes returns the event types this handler is interested in
func (h *OrderStatusChangedHandler) EventTypes() []string {
	return []string{trade.EventTypeOrderStatusChanged}
}

// Handle notifies the buyer about the new order status
func (h *OrderStatusChangedHandler) Handle(ctx context.Context, event shared.DomainEvent) error {
	statusEvent, ok := event.(*trade.OrderStatusChangedEvent)
	if !ok {
		return fmt.Errorf("unexpected event type: expected %s, got %s",
			trade.EventTypeOrderStatusChanged, event.EventType())
	}

	userID, err := uuid.Parse(statusEvent.UserID)
	if err != nil {
		return fmt.Errorf("invalid user id in event: %w", err)
	}

	buyer, err := h.userRepo.FindByID(ctx, userID)
	if err != nil {
		h.logger.Warn("Could not resolve buyer for status notification",
			zap.String("user_id", statusEvent.UserID),
			zap.Error(err))
		return err
	}

	h.notifier.Notify(ctx, buyer.Email, "Order status updated",
		fmt.Sprintf("Order %s is now %s", statusEvent.AggregateID(), statusEvent.Status))

	h.logger.Debug("Buyer notified about status change",
		zap.String("order_id", statusEvent.AggregateID().String()),
		zap.String("status", string(statusEvent.Status)))

	return nil
}

// Ensure OrderStatusChangedHandler implements shared.EventHandler
var _ shared.EventHandler = (*OrderStatusChangedHandler)(nil)
