package shared

import (
	"context"

	"storefront/internal/domain/catalog"
)

// BlobStore is the persistence collaborator: an opaque key-value blob store.
// Load returns (nil, nil) when the key is absent. A failed Save only risks
// losing state across restarts; callers treat it as non-fatal.
type BlobStore interface {
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, payload []byte) error
}

// CatalogClient fetches products for a category from the remote product API.
// Implementations fall back to the built-in sample catalog on any failure or
// empty result, so callers always get best-effort content.
type CatalogClient interface {
	FetchProducts(ctx context.Context, category string) ([]catalog.Product, error)
}
