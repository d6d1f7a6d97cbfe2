package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	tradeapp "github.com/marketlink/backend/internal/application/trade"
	"github.com/marketlink/backend/internal/domain/identity"
)

// OrderHandler handles checkout and order endpoints
type OrderHandler struct {
	BaseHandler
	checkoutService *tradeapp.CheckoutService
	orderService    *tradeapp.OrderService
}

// NewOrderHandler creates a new OrderHandler
func NewOrderHandler(checkoutService *tradeapp.CheckoutService, orderService *tradeapp.OrderService) *OrderHandler {
	return &OrderHandler{
		checkoutService: checkoutService,
		orderService:    orderService,
	}
}

// UpdateOrderStatusRequest represents a request to move an order
// through the fulfilment pipeline
type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// Checkout converts the authenticated buyer's basket into orders
func (h *OrderHandler) Checkout(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	result, err := h.checkoutService.PlaceOrder(c.Request.Context(), userID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, result)
}

// List returns the orders visible to the authenticated user.
// Buyers see orders they placed; shop users see orders against their shop.
func (h *OrderHandler) List(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}
	role, err := getUserRole(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	orders, err := h.orderService.List(c.Request.Context(), userID, identity.UserRole(role))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, orders)
}

// GetByID returns a single order if it is visible to the caller
func (h *OrderHandler) GetByID(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}
	role, err := getUserRole(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid order ID format")
		return
	}

	order, err := h.orderService.Get(c.Request.Context(), userID, identity.UserRole(role), orderID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, order)
}

// UpdateStatus moves an order belonging to the caller's shop to a new status
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid order ID format")
		return
	}

	var req UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	order, err := h.orderService.UpdateStatus(c.Request.Context(), userID, orderID, tradeapp.UpdateStatusRequest{
		Status: req.Status,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, order)
}
