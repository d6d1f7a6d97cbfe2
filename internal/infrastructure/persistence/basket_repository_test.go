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
)

func TestGormBasketRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("saves and lists lines per user", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewGormBasketRepository(db)

		userID := uuid.New()
		line, err := trade.NewBasketLine(userID, uuid.New(), uuid.New(), 2, decimal.NewFromInt(25), "shop@example.com")
		require.NoError(t, err)
		require.NoError(t, repo.Save(ctx, line))

		lines, err := repo.FindByUser(ctx, userID)
		require.NoError(t, err)
		require.Len(t, lines, 1)
		assert.True(t, lines[0].Sum.Equal(decimal.NewFromInt(50)))

		other, err := repo.FindByUser(ctx, uuid.New())
		require.NoError(t, err)
		assert.Empty(t, other)
	})

	t.Run("rejects a duplicate product line", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewGormBasketRepository(db)

		userID := uuid.New()
		productID := uuid.New()
		shopID := uuid.New()

		line, err := trade.NewBasketLine(userID, productID, shopID, 1, decimal.NewFromInt(10), "shop@example.com")
		require.NoError(t, err)
		require.NoError(t, repo.Save(ctx, line))

		exists, err := repo.ExistsLine(ctx, userID, shopID, productID)
		require.NoError(t, err)
		assert.True(t, exists)

		duplicate, err := trade.NewBasketLine(userID, productID, shopID, 4, decimal.NewFromInt(10), "shop@example.com")
		require.NoError(t, err)
		err = repo.Save(ctx, duplicate)
		assert.ErrorIs(t, err, shared.ErrAlreadyExists)
	})

	t.Run("deletes only the owner's line", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewGormBasketRepository(db)

		userID := uuid.New()
		line, err := trade.NewBasketLine(userID, uuid.New(), uuid.New(), 1, decimal.NewFromInt(10), "shop@example.com")
		require.NoError(t, err)
		require.NoError(t, repo.Save(ctx, line))

		err = repo.Delete(ctx, uuid.New(), line.ID)
		assert.ErrorIs(t, err, shared.ErrNotFound)

		require.NoError(t, repo.Delete(ctx, userID, line.ID))

		_, err = repo.FindByIDForUser(ctx, userID, line.ID)
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}
