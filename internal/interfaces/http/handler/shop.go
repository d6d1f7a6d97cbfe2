package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	catalogapp "github.com/marketlink/backend/internal/application/catalog"
)

// ShopHandler handles shop management endpoints
type ShopHandler struct {
	BaseHandler
	shopService *catalogapp.ShopService
}

// NewShopHandler creates a new ShopHandler
func NewShopHandler(shopService *catalogapp.ShopService) *ShopHandler {
	return &ShopHandler{
		shopService: shopService,
	}
}

// CreateShopRequest represents a request to open a shop
type CreateShopRequest struct {
	Name string `json:"name" binding:"required,min=1,max=200"`
	URL  string `json:"url" binding:"omitempty,url,max=500"`
}

// SetShopStateRequest toggles whether the shop accepts orders
type SetShopStateRequest struct {
	State *bool `json:"state" binding:"required"`
}

// Create opens a shop for the authenticated shop user
func (h *ShopHandler) Create(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req CreateShopRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	shop, err := h.shopService.Create(c.Request.Context(), userID, catalogapp.CreateShopRequest{
		Name: req.Name,
		URL:  req.URL,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, shop)
}

// List returns shops that are open for orders
func (h *ShopHandler) List(c *gin.Context) {
	shops, err := h.shopService.List(c.Request.Context(), true)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, shops)
}

// GetByID returns a single shop
func (h *ShopHandler) GetByID(c *gin.Context) {
	shopID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid shop ID format")
		return
	}

	shop, err := h.shopService.GetByID(c.Request.Context(), shopID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, shop)
}

// GetOwn returns the authenticated user's own shop
func (h *ShopHandler) GetOwn(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	shop, err := h.shopService.GetOwn(c.Request.Context(), userID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, shop)
}

// SetState toggles whether the authenticated user's shop accepts orders
func (h *ShopHandler) SetState(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req SetShopStateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	shop, err := h.shopService.SetState(c.Request.Context(), userID, *req.State)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, shop)
}
