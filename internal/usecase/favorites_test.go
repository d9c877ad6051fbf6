//go:build unit

package usecase_test

import (
	"context"
	"testing"

	"storefront/internal/infra/blob"
	"storefront/internal/usecase"
	"storefront/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFavoritesStore(t *testing.T) {
	ctx := context.Background()
	blobs := blob.NewMemoryStore()
	store := usecase.NewFavoritesStore(blobs, discardLogger())

	cola := builder.NewLineItemBuilder().AsCola().BuildProduct()
	apple := builder.NewLineItemBuilder().AsApple().BuildProduct()

	t.Run("add and list", func(t *testing.T) {
		store.Add(ctx, cola)
		store.Add(ctx, apple)

		favorites := store.List(ctx)
		require.Len(t, favorites, 2)
		assert.Equal(t, "coca-cola-1", favorites[0].ID)
		assert.Equal(t, "apple-1", favorites[1].ID)
	})

	t.Run("add is idempotent", func(t *testing.T) {
		store.Add(ctx, cola)
		assert.Len(t, store.List(ctx), 2)
	})

	t.Run("contains", func(t *testing.T) {
		assert.True(t, store.Contains(ctx, "coca-cola-1"))
		assert.False(t, store.Contains(ctx, "ghost"))
	})

	t.Run("remove", func(t *testing.T) {
		store.Remove(ctx, "coca-cola-1")
		assert.False(t, store.Contains(ctx, "coca-cola-1"))
		assert.Len(t, store.List(ctx), 1)
	})

	t.Run("state survives a restart", func(t *testing.T) {
		restored := usecase.NewFavoritesStore(blobs, discardLogger())
		favorites := restored.List(ctx)
		require.Len(t, favorites, 1)
		assert.Equal(t, "apple-1", favorites[0].ID)
	})

	t.Run("corrupt blob falls back to empty state", func(t *testing.T) {
		require.NoError(t, blobs.Save(ctx, "favorites", []byte("][")))
		restored := usecase.NewFavoritesStore(blobs, discardLogger())
		assert.Empty(t, restored.List(ctx))
	})
}
