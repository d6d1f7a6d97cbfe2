package persistence

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/marketlink/backend/internal/domain/catalog"
	"github.com/marketlink/backend/internal/domain/shared"
	"github.com/marketlink/backend/internal/domain/trade"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, AutoMigrate(db))
	return db
}

func seedProduct(t *testing.T, db *gorm.DB, quantity int, price decimal.Decimal) *catalog.Product {
	t.Helper()
	product, err := catalog.NewProduct(uuid.New(), uuid.New(), "Thinkpad X1", "20U9", quantity, price, price)
	require.NoError(t, err)
	require.NoError(t, db.Create(product).Error)
	return product
}

func seedBasketLine(t *testing.T, db *gorm.DB, userID uuid.UUID, product *catalog.Product, quantity int) *trade.BasketLine {
	t.Helper()
	line, err := trade.NewBasketLine(userID, product.ID, product.ShopID, quantity, product.Price, "shop@example.com")
	require.NoError(t, err)
	require.NoError(t, db.Create(line).Error)
	return line
}

func TestGormCheckoutRepository_PlaceOrders(t *testing.T) {
	ctx := context.Background()

	t.Run("places orders, decrements stock and clears the basket", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewGormCheckoutRepository(db)

		userID := uuid.New()
		product := seedProduct(t, db, 10, decimal.NewFromInt(50))
		line := seedBasketLine(t, db, userID, product, 3)

		order, err := trade.NewOrder(line, uuid.New())
		require.NoError(t, err)

		err = repo.PlaceOrders(ctx, userID, []*trade.Order{order})
		require.NoError(t, err)

		var stored trade.Order
		require.NoError(t, db.First(&stored, "id = ?", order.ID).Error)
		assert.Equal(t, trade.OrderStatusNew, stored.Status)
		assert.True(t, stored.Sum.Equal(decimal.NewFromInt(150)))

		var reloaded catalog.Product
		require.NoError(t, db.First(&reloaded, "id = ?", product.ID).Error)
		assert.Equal(t, 7, reloaded.Quantity)

		var basketCount int64
		require.NoError(t, db.Model(&trade.BasketLine{}).Where("user_id = ?", userID).Count(&basketCount).Error)
		assert.Zero(t, basketCount)
	})

	t.Run("rolls back everything when stock ran out", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewGormCheckoutRepository(db)

		userID := uuid.New()
		product := seedProduct(t, db, 2, decimal.NewFromInt(50))
		line := seedBasketLine(t, db, userID, product, 3)

		order, err := trade.NewOrder(line, uuid.New())
		require.NoError(t, err)

		err = repo.PlaceOrders(ctx, userID, []*trade.Order{order})
		assert.ErrorIs(t, err, shared.ErrInsufficientStock)

		var orderCount int64
		require.NoError(t, db.Model(&trade.Order{}).Count(&orderCount).Error)
		assert.Zero(t, orderCount)

		var reloaded catalog.Product
		require.NoError(t, db.First(&reloaded, "id = ?", product.ID).Error)
		assert.Equal(t, 2, reloaded.Quantity)

		var basketCount int64
		require.NoError(t, db.Model(&trade.BasketLine{}).Where("user_id = ?", userID).Count(&basketCount).Error)
		assert.Equal(t, int64(1), basketCount)
	})

	t.Run("one depleted line fails the whole checkout", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewGormCheckoutRepository(db)

		userID := uuid.New()
		inStock := seedProduct(t, db, 10, decimal.NewFromInt(50))
		depleted := seedProduct(t, db, 0, decimal.NewFromInt(20))
		lineA := seedBasketLine(t, db, userID, inStock, 2)
		lineB := seedBasketLine(t, db, userID, depleted, 1)

		contactID := uuid.New()
		orderA, err := trade.NewOrder(lineA, contactID)
		require.NoError(t, err)
		orderB, err := trade.NewOrder(lineB, contactID)
		require.NoError(t, err)

		err = repo.PlaceOrders(ctx, userID, []*trade.Order{orderA, orderB})
		assert.ErrorIs(t, err, shared.ErrInsufficientStock)

		var orderCount int64
		require.NoError(t, db.Model(&trade.Order{}).Count(&orderCount).Error)
		assert.Zero(t, orderCount)

		var reloaded catalog.Product
		require.NoError(t, db.First(&reloaded, "id = ?", inStock.ID).Error)
		assert.Equal(t, 10, reloaded.Quantity)

		var basketCount int64
		require.NoError(t, db.Model(&trade.BasketLine{}).Where("user_id = ?", userID).Count(&basketCount).Error)
		assert.Equal(t, int64(2), basketCount)
	})

	t.Run("rejects an empty checkout", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewGormCheckoutRepository(db)

		err := repo.PlaceOrders(ctx, uuid.New(), nil)
		require.Error(t, err)
	})
}
