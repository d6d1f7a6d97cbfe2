package catalog

import (
	"strings"
	"time"

	"github.com/marketlink/backend/internal/domain/shared"
)

// Category groups products for filtering
type Category struct {
	shared.BaseAggregateRoot
	Name string
}

// NewCategory creates a category
func NewCategory(name string) (*Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shared.NewDomainError("INVALID_CATEGORY_NAME", "Category name cannot be empty")
	}
	if len(name) > 80 {
		return nil, shared.NewDomainError("INVALID_CATEGORY_NAME", "Category name cannot exceed 80 characters")
	}

	return &Category{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              name,
	}, nil
}

// Rename changes the category name
func (c *Category) Rename(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return shared.NewDomainError("INVALID_CATEGORY_NAME", "Category name cannot be empty")
	}
	c.Name = name
	c.UpdatedAt = time.Now()
	c.IncrementVersion()
	return nil
}
