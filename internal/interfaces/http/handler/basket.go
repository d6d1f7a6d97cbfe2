package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	tradeapp "github.com/marketlink/backend/internal/application/trade"
)

// BasketHandler handles basket endpoints
type BasketHandler struct {
	BaseHandler
	basketService *tradeapp.BasketService
}

// NewBasketHandler creates a new BasketHandler
func NewBasketHandler(basketService *tradeapp.BasketService) *BasketHandler {
	return &BasketHandler{
		basketService: basketService,
	}
}

// AddBasketLineRequest represents a request to put a product in the basket
type AddBasketLineRequest struct {
	ShopID    string `json:"shop_id" binding:"required,uuid"`
	ProductID string `json:"product_id" binding:"required,uuid"`
	Quantity  int    `json:"quantity" binding:"required,gt=0"`
}

// AddLine puts a product in the authenticated buyer's basket
func (h *BasketHandler) AddLine(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req AddBasketLineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	shopID, err := uuid.Parse(req.ShopID)
	if err != nil {
		h.BadRequest(c, "Invalid shop ID format")
		return
	}
	productID, err := uuid.Parse(req.ProductID)
	if err != nil {
		h.BadRequest(c, "Invalid product ID format")
		return
	}

	line, err := h.basketService.AddLine(c.Request.Context(), userID, tradeapp.AddBasketLineRequest{
		ShopID:    shopID,
		ProductID: productID,
		Quantity:  req.Quantity,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, line)
}

// List returns the authenticated buyer's basket with its running total
func (h *BasketHandler) List(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	basket, err := h.basketService.List(c.Request.Context(), userID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, basket)
}

// RemoveLine takes a line out of the authenticated buyer's basket
func (h *BasketHandler) RemoveLine(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	lineID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid basket line ID format")
		return
	}

	if err := h.basketService.RemoveLine(c.Request.Context(), userID, lineID); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}
