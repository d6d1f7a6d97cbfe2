package trade

import (
	"time"

	"github.com/google/uuid"
	"github.com/marketlink/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// OrderStatus represents the fulfilment state of an order
type OrderStatus string

const (
	// OrderStatusBasket marks goods still sitting in a basket. It exists
	// for status vocabulary completeness and is never carried by an order row.
	OrderStatusBasket    OrderStatus = "basket"
	OrderStatusNew       OrderStatus = "new"
	OrderStatusConfirmed OrderStatus = "confirmed"
	OrderStatusAssembled OrderStatus = "assembled"
	OrderStatusSent      OrderStatus = "sent"
	OrderStatusDelivered OrderStatus = "delivered"
	OrderStatusCanceled  OrderStatus = "canceled"
)

// IsValid checks if the status is a known status
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusBasket, OrderStatusNew, OrderStatusConfirmed,
		OrderStatusAssembled, OrderStatusSent, OrderStatusDelivered, OrderStatusCanceled:
		return true
	}
	return false
}

// IsTerminal reports whether no further transitions are allowed
func (s OrderStatus) IsTerminal() bool {
	return s == OrderStatusDelivered || s == OrderStatusCanceled
}

// CanTransitionTo checks if transition to the target status is allowed.
// The pipeline is deliberately permissive: a shop may move an order to any
// valid status until it reaches a terminal one. Orders never return to the
// basket pseudo-status.
func (s OrderStatus) CanTransitionTo(target OrderStatus) bool {
	if !target.IsValid() || target == OrderStatusBasket {
		return false
	}
	return !s.IsTerminal()
}

// Order is a single purchased basket line, frozen at checkout time.
// Orders are append-only: they are created by checkout and change only
// through the status pipeline.
type Order struct {
	shared.BaseAggregateRoot
	UserID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductID uuid.UUID       `gorm:"type:uuid;not null"`
	ShopID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	ContactID uuid.UUID       `gorm:"type:uuid;not null"`
	Quantity  int             `gorm:"not null"`
	Sum       decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	ShopEmail string          `gorm:"not null"`
	Status    OrderStatus     `gorm:"not null;index"`
}

// NewOrder creates an order from a basket line and the buyer's contact
func NewOrder(line *BasketLine, contactID uuid.UUID) (*Order, error) {
	if line == nil {
		return nil, shared.NewDomainError("INVALID_ORDER", "Basket line is required")
	}
	if contactID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_ORDER", "Shipping contact is required")
	}

	order := &Order{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		UserID:            line.UserID,
		ProductID:         line.ProductID,
		ShopID:            line.ShopID,
		ContactID:         contactID,
		Quantity:          line.Quantity,
		Sum:               line.Sum,
		ShopEmail:         line.ShopEmail,
		Status:            OrderStatusNew,
	}

	order.AddDomainEvent(NewOrderPlacedEvent(order))

	return order, nil
}

// SetStatus moves the order through the fulfilment pipeline
func (o *Order) SetStatus(target OrderStatus) error {
	if !target.IsValid() || target == OrderStatusBasket {
		return shared.NewDomainError("INVALID_STATUS", "Unknown or unsettable order status")
	}
	if !o.Status.CanTransitionTo(target) {
		return shared.ErrInvalidState
	}
	if o.Status == target {
		return nil
	}

	o.Status = target
	o.UpdatedAt = time.Now()
	o.IncrementVersion()

	o.AddDomainEvent(NewOrderStatusChangedEvent(o))

	return nil
}

// BelongsToShop reports whether the order was placed against the given shop
func (o *Order) BelongsToShop(shopID uuid.UUID) bool {
	return o.ShopID == shopID
}
