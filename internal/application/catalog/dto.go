package catalog

import (
	"github.com/google/uuid"
	"github.com/marketlink/backend/internal/domain/catalog"
	"github.com/shopspring/decimal"
)

// CreateShopRequest contains input for shop creation
type CreateShopRequest struct {
	Name string
	URL  string
}

// ShopResponse is the shop representation returned to clients
type ShopResponse struct {
	ID     uuid.UUID `json:"id"`
	Name   string    `json:"name"`
	URL    string    `json:"url,omitempty"`
	State  bool      `json:"state"`
	Active bool      `json:"active"`
}

// CreateCategoryRequest contains input for category creation
type CreateCategoryRequest struct {
	Name string
}

// CategoryResponse is the category representation returned to clients
type CategoryResponse struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// ProductParameterInput is one characteristic supplied at product creation
type ProductParameterInput struct {
	Name  string
	Value string
}

// CreateProductRequest contains input for product creation
type CreateProductRequest struct {
	CategoryID uuid.UUID
	Name       string
	Model      string
	Quantity   int
	Price      decimal.Decimal
	PriceRRC   decimal.Decimal
	Parameters []ProductParameterInput
}

// UpdateProductRequest contains the mutable product fields
type UpdateProductRequest struct {
	Quantity *int
	Price    *decimal.Decimal
	PriceRRC *decimal.Decimal
}

// ProductListFilter narrows product listings
type ProductListFilter struct {
	ShopID     *uuid.UUID
	CategoryID *uuid.UUID
}

// ProductParameterResponse is one characteristic of a product
type ProductParameterResponse struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// ProductResponse is the product representation returned to clients
type ProductResponse struct {
	ID         uuid.UUID                  `json:"id"`
	ShopID     uuid.UUID                  `json:"shop_id"`
	CategoryID uuid.UUID                  `json:"category_id"`
	Name       string                     `json:"name"`
	Model      string                     `json:"model,omitempty"`
	Quantity   int                        `json:"quantity"`
	Price      decimal.Decimal            `json:"price"`
	PriceRRC   decimal.Decimal            `json:"price_rrc"`
	Parameters []ProductParameterResponse `json:"parameters"`
}

// ToShopResponse maps a shop aggregate to its client representation
func ToShopResponse(shop *catalog.Shop) *ShopResponse {
	return &ShopResponse{
		ID:     shop.ID,
		Name:   shop.Name,
		URL:    shop.URL,
		State:  shop.State,
		Active: shop.Active,
	}
}

// ToCategoryResponse maps a category to its client representation
func ToCategoryResponse(category *catalog.Category) *CategoryResponse {
	return &CategoryResponse{
		ID:   category.ID,
		Name: category.Name,
	}
}

// ToProductResponse maps a product aggregate to its client representation
func ToProductResponse(product *catalog.Product) *ProductResponse {
	params := make([]ProductParameterResponse, len(product.Parameters))
	for i, p := range product.Parameters {
		params[i] = ProductParameterResponse{Name: p.Name, Value: p.Value}
	}
	return &ProductResponse{
		ID:         product.ID,
		ShopID:     product.ShopID,
		CategoryID: product.CategoryID,
		Name:       product.Name,
		Model:      product.Model,
		Quantity:   product.Quantity,
		Price:      product.Price,
		PriceRRC:   product.PriceRRC,
		Parameters: params,
	}
}
