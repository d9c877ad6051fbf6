//go:build unit

package blob_test

import (
	"context"
	"testing"

	"storefront/internal/infra/blob"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPebbleStore(t *testing.T) {
	ctx := context.Background()

	store, err := blob.NewPebbleStore(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	t.Run("absent key loads nil", func(t *testing.T) {
		payload, err := store.Load(ctx, "cart")
		require.NoError(t, err)
		assert.Nil(t, payload)
	})

	t.Run("save and load roundtrip", func(t *testing.T) {
		require.NoError(t, store.Save(ctx, "cart", []byte(`[{"id":"coca-cola-1"}]`)))

		payload, err := store.Load(ctx, "cart")
		require.NoError(t, err)
		assert.Equal(t, []byte(`[{"id":"coca-cola-1"}]`), payload)
	})

	t.Run("overwrite", func(t *testing.T) {
		require.NoError(t, store.Save(ctx, "cart", []byte("[]")))

		payload, err := store.Load(ctx, "cart")
		require.NoError(t, err)
		assert.Equal(t, []byte("[]"), payload)
	})
}
