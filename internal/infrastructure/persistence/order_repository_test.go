package persistence

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/marketlink/backend/internal/domain/shared"
	"github.com/marketlink/backend/internal/domain/trade"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedOrder(t *testing.T, db *gorm.DB, userID uuid.UUID) *trade.Order {
	t.Helper()
	line, err := trade.NewBasketLine(userID, uuid.New(), uuid.New(), 2, decimal.NewFromInt(30), "shop@example.com")
	require.NoError(t, err)
	order, err := trade.NewOrder(line, uuid.New())
	require.NoError(t, err)
	require.NoError(t, db.Create(order).Error)
	return order
}

func TestGormOrderRepository_Save(t *testing.T) {
	ctx := context.Background()

	t.Run("persists a status change", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewGormOrderRepository(db)

		order := seedOrder(t, db, uuid.New())
		require.NoError(t, order.SetStatus(trade.OrderStatusConfirmed))

		require.NoError(t, repo.Save(ctx, order))

		reloaded, err := repo.FindByID(ctx, order.ID)
		require.NoError(t, err)
		assert.Equal(t, trade.OrderStatusConfirmed, reloaded.Status)
		assert.Equal(t, 2, reloaded.Version)
	})

	t.Run("detects a stale version", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewGormOrderRepository(db)

		order := seedOrder(t, db, uuid.New())

		stale := *order
		require.NoError(t, order.SetStatus(trade.OrderStatusConfirmed))
		require.NoError(t, repo.Save(ctx, order))

		require.NoError(t, stale.SetStatus(trade.OrderStatusCanceled))
		err := repo.Save(ctx, &stale)
		assert.ErrorIs(t, err, shared.ErrConcurrencyConflict)
	})

	t.Run("returns not found for an unknown order", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewGormOrderRepository(db)

		line, err := trade.NewBasketLine(uuid.New(), uuid.New(), uuid.New(), 1, decimal.NewFromInt(10), "shop@example.com")
		require.NoError(t, err)
		order, err := trade.NewOrder(line, uuid.New())
		require.NoError(t, err)
		require.NoError(t, order.SetStatus(trade.OrderStatusConfirmed))

		err = repo.Save(ctx, order)
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestGormOrderRepository_Queries(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	repo := NewGormOrderRepository(db)

	userID := uuid.New()
	first := seedOrder(t, db, userID)
	second := seedOrder(t, db, userID)
	seedOrder(t, db, uuid.New())

	byUser, err := repo.FindByUser(ctx, userID)
	require.NoError(t, err)
	assert.Len(t, byUser, 2)

	byShop, err := repo.FindByShop(ctx, first.ShopID)
	require.NoError(t, err)
	require.Len(t, byShop, 1)
	assert.Equal(t, first.ID, byShop[0].ID)

	_, err = repo.FindByID(ctx, second.ID)
	assert.NoError(t, err)

	_, err = repo.FindByID(ctx, uuid.New())
	assert.ErrorIs(t, err, shared.ErrNotFound)
}
