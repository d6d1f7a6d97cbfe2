package persistence

import (
	"github.com/marketlink/backend/internal/domain/catalog"
	"github.com/marketlink/backend/internal/domain/identity"
	"github.com/marketlink/backend/internal/domain/partner"
	"github.com/marketlink/backend/internal/domain/trade"
	"gorm.io/gorm"
)

// AutoMigrate creates or updates the schema from the domain models.
// Production deployments use the versioned SQL migrations instead; this
// exists for tests and local development against throwaway databases.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&identity.User{},
		&catalog.Shop{},
		&catalog.Category{},
		&catalog.Product{},
		&catalog.ProductParameter{},
		&partner.Contact{},
		&trade.BasketLine{},
		&trade.Order{},
	)
}
