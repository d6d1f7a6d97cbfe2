package trade

import (
	"time"

	"github.com/google/uuid"
	"github.com/marketlink/backend/internal/domain/trade"
	"github.com/shopspring/decimal"
)

// AddBasketLineRequest contains input for adding a product to the basket
type AddBasketLineRequest struct {
	ShopID    uuid.UUID
	ProductID uuid.UUID
	Quantity  int
}

// BasketLineResponse is one line of the basket
type BasketLineResponse struct {
	ID        uuid.UUID       `json:"id"`
	ShopID    uuid.UUID       `json:"shop_id"`
	ProductID uuid.UUID       `json:"product_id"`
	Quantity  int             `json:"quantity"`
	Sum       decimal.Decimal `json:"sum"`
}

// BasketResponse is the basket with its running total
type BasketResponse struct {
	Lines    []BasketLineResponse `json:"lines"`
	TotalSum decimal.Decimal      `json:"total_sum"`
}

// OrderResponse is the order representation returned to clients
type OrderResponse struct {
	ID        uuid.UUID       `json:"id"`
	UserID    uuid.UUID       `json:"user_id"`
	ShopID    uuid.UUID       `json:"shop_id"`
	ProductID uuid.UUID       `json:"product_id"`
	ContactID uuid.UUID       `json:"contact_id"`
	Quantity  int             `json:"quantity"`
	Sum       decimal.Decimal `json:"sum"`
	Status    string          `json:"status"`
	CreatedAt time.Time       `json:"created_at"`
}

// OrderListResponse carries orders together with their aggregate sum
type OrderListResponse struct {
	Orders   []OrderResponse `json:"orders"`
	TotalSum decimal.Decimal `json:"total_sum"`
}

// UpdateStatusRequest contains input for the status pipeline
type UpdateStatusRequest struct {
	Status string
}

// ToBasketLineResponse maps a basket line to its client representation
func ToBasketLineResponse(line *trade.BasketLine) BasketLineResponse {
	return BasketLineResponse{
		ID:        line.ID,
		ShopID:    line.ShopID,
		ProductID: line.ProductID,
		Quantity:  line.Quantity,
		Sum:       line.Sum,
	}
}

// ToOrderResponse maps an order aggregate to its client representation
func ToOrderResponse(order *trade.Order) OrderResponse {
	return OrderResponse{
		ID:        order.ID,
		UserID:    order.UserID,
		ShopID:    order.ShopID,
		ProductID: order.ProductID,
		ContactID: order.ContactID,
		Quantity:  order.Quantity,
		Sum:       order.Sum,
		Status:    string(order.Status),
		CreatedAt: order.CreatedAt,
	}
}

// ToOrderListResponse maps orders and computes their aggregate sum
func ToOrderListResponse(orders []trade.Order) *OrderListResponse {
	responses := make([]OrderResponse, len(orders))
	total := decimal.Zero
	for i := range orders {
		responses[i] = ToOrderResponse(&orders[i])
		total = total.Add(orders[i].Sum)
	}
	return &OrderListResponse{Orders: responses, TotalSum: total}
}
