package trade

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/marketlink/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// BasketLine is one product reservation in a buyer's basket.
// The line freezes price at add time: Sum is unit price multiplied by
// Quantity and does not follow later catalog price changes. ShopEmail is
// denormalized so checkout can address notifications without re-reading
// the shop owner.
type BasketLine struct {
	shared.BaseAggregateRoot
	UserID    uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_basket_user_shop_product"`
	ShopID    uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_basket_user_shop_product"`
	ProductID uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_basket_user_shop_product"`
	Quantity  int             `gorm:"not null"`
	Sum       decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	ShopEmail string          `gorm:"not null"`
}

// NewBasketLine creates a basket line with a frozen price snapshot
func NewBasketLine(userID, productID, shopID uuid.UUID, quantity int, unitPrice decimal.Decimal, shopEmail string) (*BasketLine, error) {
	if userID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_BASKET_LINE", "Basket line must belong to a user")
	}
	if productID == uuid.Nil || shopID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_BASKET_LINE", "Basket line must reference a product and a shop")
	}
	if quantity <= 0 {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Quantity must be positive")
	}
	if unitPrice.LessThanOrEqual(decimal.Zero) {
		return nil, shared.NewDomainError("INVALID_PRICE", "Unit price must be positive")
	}
	if strings.TrimSpace(shopEmail) == "" {
		return nil, shared.NewDomainError("INVALID_BASKET_LINE", "Shop email is required")
	}

	return &BasketLine{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		UserID:            userID,
		ProductID:         productID,
		ShopID:            shopID,
		Quantity:          quantity,
		Sum:               unitPrice.Mul(decimal.NewFromInt(int64(quantity))),
		ShopEmail:         strings.TrimSpace(shopEmail),
	}, nil
}

// ChangeQuantity re-freezes the snapshot sum for a new quantity
func (l *BasketLine) ChangeQuantity(quantity int, unitPrice decimal.Decimal) error {
	if quantity <= 0 {
		return shared.NewDomainError("INVALID_QUANTITY", "Quantity must be positive")
	}
	l.Quantity = quantity
	l.Sum = unitPrice.Mul(decimal.NewFromInt(int64(quantity)))
	l.UpdatedAt = time.Now()
	l.IncrementVersion()
	return nil
}

// BasketTotal sums the snapshot sums of the given lines
func BasketTotal(lines []BasketLine) decimal.Decimal {
	total := decimal.Zero
	for _, line := range lines {
		total = total.Add(line.Sum)
	}
	return total
}
