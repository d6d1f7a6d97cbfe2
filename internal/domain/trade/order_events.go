package trade

import (
	"github.com/marketlink/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Event types for the trade context
const (
	EventTypeOrderPlaced        = "trade.order.placed"
	EventTypeOrderStatusChanged = "trade.order.status_changed"
)

// OrderPlacedEvent is raised for each order created by checkout
type OrderPlacedEvent struct {
	shared.BaseDomainEvent
	UserID    string          `json:"user_id"`
	ShopID    string          `json:"shop_id"`
	ShopEmail string          `json:"shop_email"`
	Sum       decimal.Decimal `json:"sum"`
}

// NewOrderPlacedEvent creates a new order placed event
func NewOrderPlacedEvent(order *Order) *OrderPlacedEvent {
	return &OrderPlacedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeOrderPlaced, "Order", order.ID),
		UserID:          order.UserID.String(),
		ShopID:          order.ShopID.String(),
		ShopEmail:       order.ShopEmail,
		Sum:             order.Sum,
	}
}

// OrderStatusChangedEvent is raised when an order moves through the pipeline
type OrderStatusChangedEvent struct {
	shared.BaseDomainEvent
	UserID string      `json:"user_id"`
	Status OrderStatus `json:"status"`
}

// NewOrderStatusChangedEvent creates a new status changed event
func NewOrderStatusChangedEvent(order *Order) *OrderStatusChangedEvent {
	return &OrderStatusChangedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeOrderStatusChanged, "Order", order.ID),
		UserID:          order.UserID.String(),
		Status:          order.Status,
	}
}
