//go:build unit

package api_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"storefront/internal/domain/catalog"
	"storefront/internal/handler/api"
	resdto "storefront/internal/handler/dto/response"
	"storefront/internal/pkg/errs"
	"storefront/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubCatalogClient struct {
	products []catalog.Product
	err      error
}

func (c *stubCatalogClient) FetchProducts(_ context.Context, category string) ([]catalog.Product, error) {
	if c.err != nil {
		return nil, c.err
	}
	return catalog.FilterByCategory(c.products, category), nil
}

func newProductsRouter(client *stubCatalogClient) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	handler := api.NewProductsHandler(usecase.NewProductQueries(client))
	router.GET("/products", handler.List)
	return router
}

func listProducts(t *testing.T, router *gin.Engine, path string) (int, []resdto.ProductResponse) {
	t.Helper()
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	if w.Code != http.StatusOK {
		return w.Code, nil
	}
	var body struct {
		Products []resdto.ProductResponse `json:"products"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return w.Code, body.Products
}

func TestProductsList(t *testing.T) {
	router := newProductsRouter(&stubCatalogClient{products: catalog.SampleProducts()})

	tests := []struct {
		name    string
		path    string
		wantIDs []string
	}{
		{
			name:    "all products",
			path:    "/products",
			wantIDs: []string{"coca-cola-1", "croissant-1", "coffee-1", "apple-1"},
		},
		{
			name:    "category filter",
			path:    "/products?category=fruit",
			wantIDs: []string{"apple-1"},
		},
		{
			name:    "search over name",
			path:    "/products?search=cola",
			wantIDs: []string{"coca-cola-1"},
		},
		{
			name:    "search narrows category",
			path:    "/products?category=drinks&search=coffee",
			wantIDs: []string{"coffee-1"},
		},
		{
			name:    "search with no match",
			path:    "/products?search=durian",
			wantIDs: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, products := listProducts(t, router, tt.path)

			require.Equal(t, http.StatusOK, code)
			ids := make([]string, 0, len(products))
			for _, p := range products {
				ids = append(ids, p.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestProductsListClientError(t *testing.T) {
	router := newProductsRouter(&stubCatalogClient{err: errs.Mark(errs.New("boom"), errs.ErrCatalogFetch)})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/products", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
