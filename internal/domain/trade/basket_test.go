package trade

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBasketLine(t *testing.T) {
	userID, productID, shopID := uuid.New(), uuid.New(), uuid.New()

	t.Run("freezes the snapshot sum", func(t *testing.T) {
		line, err := NewBasketLine(userID, productID, shopID, 3, decimal.NewFromInt(50), "shop@example.com")
		require.NoError(t, err)

		// 50 * 3 = 150, frozen regardless of later price changes
		assert.True(t, line.Sum.Equal(decimal.NewFromInt(150)))
		assert.Equal(t, 3, line.Quantity)
	})

	t.Run("fails with zero quantity", func(t *testing.T) {
		_, err := NewBasketLine(userID, productID, shopID, 0, decimal.NewFromInt(50), "shop@example.com")
		require.Error(t, err)
	})

	t.Run("fails with negative quantity", func(t *testing.T) {
		_, err := NewBasketLine(userID, productID, shopID, -2, decimal.NewFromInt(50), "shop@example.com")
		require.Error(t, err)
	})

	t.Run("fails with non-positive price", func(t *testing.T) {
		_, err := NewBasketLine(userID, productID, shopID, 1, decimal.Zero, "shop@example.com")
		require.Error(t, err)
	})

	t.Run("fails without shop email", func(t *testing.T) {
		_, err := NewBasketLine(userID, productID, shopID, 1, decimal.NewFromInt(50), " ")
		require.Error(t, err)
	})
}

func TestBasketLineChangeQuantity(t *testing.T) {
	line, err := NewBasketLine(uuid.New(), uuid.New(), uuid.New(), 2, decimal.NewFromInt(10), "shop@example.com")
	require.NoError(t, err)

	require.NoError(t, line.ChangeQuantity(5, decimal.NewFromInt(10)))
	assert.True(t, line.Sum.Equal(decimal.NewFromInt(50)))

	require.Error(t, line.ChangeQuantity(0, decimal.NewFromInt(10)))
}

func TestBasketTotal(t *testing.T) {
	userID := uuid.New()
	a, err := NewBasketLine(userID, uuid.New(), uuid.New(), 3, decimal.NewFromInt(50), "a@example.com")
	require.NoError(t, err)
	b, err := NewBasketLine(userID, uuid.New(), uuid.New(), 1, decimal.NewFromFloat(19.99), "b@example.com")
	require.NoError(t, err)

	total := BasketTotal([]BasketLine{*a, *b})
	assert.True(t, total.Equal(decimal.NewFromFloat(169.99)))

	assert.True(t, BasketTotal(nil).Equal(decimal.Zero))
}
