package usecase

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"

	"storefront/internal/domain/catalog"
	"storefront/internal/usecase/shared"
)

const favoritesBlobKey = "favorites"

type FavoriteCommands interface {
	Add(ctx context.Context, product catalog.Product)
	Remove(ctx context.Context, id string)
}

type FavoriteQueries interface {
	List(ctx context.Context) []catalog.Product
	Contains(ctx context.Context, id string) bool
}

// FavoritesStore is the cart's simpler sibling: a key-value-backed ordered
// set of products with no derived state.
type FavoritesStore struct {
	mu       sync.Mutex
	products []catalog.Product

	blobs  shared.BlobStore
	logger *slog.Logger
}

func NewFavoritesStore(blobs shared.BlobStore, logger *slog.Logger) *FavoritesStore {
	s := &FavoritesStore{
		blobs:  blobs,
		logger: logger,
	}
	s.restore(context.Background())
	return s
}

func (s *FavoritesStore) restore(ctx context.Context) {
	payload, err := s.blobs.Load(ctx, favoritesBlobKey)
	if err != nil {
		s.logger.Warn("failed to load favorites, starting empty", "error", err)
		return
	}
	if payload == nil {
		return
	}
	if err := json.Unmarshal(payload, &s.products); err != nil {
		s.logger.Warn("favorites blob corrupted, starting empty", "error", err)
		s.products = nil
	}
}

// Add is idempotent: adding an already-favorited product is a no-op.
func (s *FavoritesStore) Add(ctx context.Context, product catalog.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, p := range s.products {
		if p.ID == product.ID {
			return
		}
	}
	s.products = append(s.products, product)
	s.persist(ctx)
}

func (s *FavoritesStore) Remove(ctx context.Context, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.products[:0]
	for _, p := range s.products {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	s.products = kept
	s.persist(ctx)
}

func (s *FavoritesStore) List(_ context.Context) []catalog.Product {
	s.mu.Lock()
	defer s.mu.Unlock()

	products := make([]catalog.Product, len(s.products))
	copy(products, s.products)
	return products
}

func (s *FavoritesStore) Contains(_ context.Context, id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, p := range s.products {
		if p.ID == id {
			return true
		}
	}
	return false
}

func (s *FavoritesStore) persist(ctx context.Context) {
	products := s.products
	if products == nil {
		products = []catalog.Product{}
	}
	payload, err := json.Marshal(products)
	if err != nil {
		s.logger.Warn("failed to encode favorites", "error", err)
		return
	}
	if err := s.blobs.Save(ctx, favoritesBlobKey, payload); err != nil {
		s.logger.Warn("failed to save favorites", "error", err)
	}
}
