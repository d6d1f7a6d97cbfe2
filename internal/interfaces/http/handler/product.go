package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	catalogapp "github.com/marketlink/backend/internal/application/catalog"
	"github.com/shopspring/decimal"
)

// ProductHandler handles product catalog endpoints
type ProductHandler struct {
	BaseHandler
	productService *catalogapp.ProductService
}

// NewProductHandler creates a new ProductHandler
func NewProductHandler(productService *catalogapp.ProductService) *ProductHandler {
	return &ProductHandler{
		productService: productService,
	}
}

// ProductParameterRequest is one characteristic supplied with a product
type ProductParameterRequest struct {
	Name  string `json:"name" binding:"required,min=1,max=100"`
	Value string `json:"value" binding:"required,max=500"`
}

// CreateProductRequest represents a request to list a product
type CreateProductRequest struct {
	CategoryID string                    `json:"category_id" binding:"required,uuid"`
	Name       string                    `json:"name" binding:"required,min=1,max=200"`
	Model      string                    `json:"model" binding:"max=200"`
	Quantity   int                       `json:"quantity" binding:"gte=0"`
	Price      float64                   `json:"price" binding:"required,gt=0"`
	PriceRRC   float64                   `json:"price_rrc" binding:"omitempty,gt=0"`
	Parameters []ProductParameterRequest `json:"parameters" binding:"omitempty,dive"`
}

// UpdateProductRequest represents a request to change stock or pricing
type UpdateProductRequest struct {
	Quantity *int     `json:"quantity" binding:"omitempty,gte=0"`
	Price    *float64 `json:"price" binding:"omitempty,gt=0"`
	PriceRRC *float64 `json:"price_rrc" binding:"omitempty,gt=0"`
}

// Create lists a product in the authenticated user's shop
func (h *ProductHandler) Create(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	categoryID, err := uuid.Parse(req.CategoryID)
	if err != nil {
		h.BadRequest(c, "Invalid category ID format")
		return
	}

	appReq := catalogapp.CreateProductRequest{
		CategoryID: categoryID,
		Name:       req.Name,
		Model:      req.Model,
		Quantity:   req.Quantity,
		Price:      decimal.NewFromFloat(req.Price),
		PriceRRC:   decimal.NewFromFloat(req.PriceRRC),
	}
	for _, p := range req.Parameters {
		appReq.Parameters = append(appReq.Parameters, catalogapp.ProductParameterInput{
			Name:  p.Name,
			Value: p.Value,
		})
	}

	product, err := h.productService.Create(c.Request.Context(), userID, appReq)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, product)
}

// List returns products, optionally narrowed by shop or category
func (h *ProductHandler) List(c *gin.Context) {
	var filter catalogapp.ProductListFilter

	if raw := c.Query("shop_id"); raw != "" {
		shopID, err := uuid.Parse(raw)
		if err != nil {
			h.BadRequest(c, "Invalid shop ID format")
			return
		}
		filter.ShopID = &shopID
	}
	if raw := c.Query("category_id"); raw != "" {
		categoryID, err := uuid.Parse(raw)
		if err != nil {
			h.BadRequest(c, "Invalid category ID format")
			return
		}
		filter.CategoryID = &categoryID
	}

	products, err := h.productService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, products)
}

// GetByID returns a single product with its characteristics
func (h *ProductHandler) GetByID(c *gin.Context) {
	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid product ID format")
		return
	}

	product, err := h.productService.GetByID(c.Request.Context(), productID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, product)
}

// Update changes stock or pricing of an owned product
func (h *ProductHandler) Update(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid product ID format")
		return
	}

	var req UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	appReq := catalogapp.UpdateProductRequest{
		Quantity: req.Quantity,
	}
	if req.Price != nil {
		d := decimal.NewFromFloat(*req.Price)
		appReq.Price = &d
	}
	if req.PriceRRC != nil {
		d := decimal.NewFromFloat(*req.PriceRRC)
		appReq.PriceRRC = &d
	}

	product, err := h.productService.Update(c.Request.Context(), userID, productID, appReq)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, product)
}

// Delete removes an owned product from the catalog
func (h *ProductHandler) Delete(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid product ID format")
		return
	}

	if err := h.productService.Delete(c.Request.Context(), userID, productID); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}
