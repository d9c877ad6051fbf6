package usecase

import (
	"context"

	"storefront/internal/domain/catalog"
	"storefront/internal/usecase/shared"
)

type ProductQueries interface {
	Search(ctx context.Context, category, query string) ([]catalog.Product, error)
}

type productQueriesImpl struct {
	client shared.CatalogClient
}

func NewProductQueries(client shared.CatalogClient) ProductQueries {
	return &productQueriesImpl{client: client}
}

// Search fetches the category's products (the client already falls back to
// the sample catalog on any fetch failure) and applies the free-text filter.
func (q *productQueriesImpl) Search(ctx context.Context, category, query string) ([]catalog.Product, error) {
	products, err := q.client.FetchProducts(ctx, category)
	if err != nil {
		return nil, err
	}
	if query == "" {
		return products, nil
	}

	matched := make([]catalog.Product, 0, len(products))
	for _, p := range products {
		if p.MatchesQuery(query) {
			matched = append(matched, p)
		}
	}
	return matched, nil
}
