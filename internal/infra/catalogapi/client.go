package catalogapi

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"storefront/internal/domain/catalog"
	"storefront/internal/pkg/config"
	"storefront/internal/pkg/errs"
)

// Client fetches products from the remote product API. Any transport error,
// non-2xx response, or empty payload falls back to the built-in sample
// catalog so the storefront shows best-effort content rather than an error.
type Client struct {
	baseURL string
	http    *http.Client
	logger  *slog.Logger
}

func NewClient(cfg config.CatalogConfig, logger *slog.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		http:    &http.Client{Timeout: cfg.Timeout},
		logger:  logger,
	}
}

func (c *Client) FetchProducts(ctx context.Context, category string) ([]catalog.Product, error) {
	if category == "" {
		category = catalog.CategoryAll
	}

	products, err := c.fetch(ctx, category)
	if err != nil {
		c.logger.Warn("catalog fetch failed, using sample data", "category", category, "error", err)
		return catalog.FilterByCategory(catalog.SampleProducts(), category), nil
	}
	if len(products) == 0 {
		c.logger.Warn("catalog returned no products, using sample data", "category", category)
		return catalog.FilterByCategory(catalog.SampleProducts(), category), nil
	}
	return products, nil
}

func (c *Client) fetch(ctx context.Context, category string) ([]catalog.Product, error) {
	reqURL := c.baseURL + "?category=" + url.QueryEscape(category)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, errs.Wrap(err, "build catalog request")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, errs.Mark(errs.Wrap(err, "catalog request"), errs.ErrCatalogFetch)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, errs.Mark(errs.New(fmt.Sprintf("catalog responded %d", resp.StatusCode)), errs.ErrCatalogFetch)
	}

	var rows []json.RawMessage
	if err := json.NewDecoder(resp.Body).Decode(&rows); err != nil {
		return nil, errs.Mark(errs.Wrap(err, "decode catalog response"), errs.ErrCatalogFetch)
	}

	// Rows are decoded one by one so a single malformed product (bad price,
	// missing id) is dropped without discarding the rest of the page.
	products := make([]catalog.Product, 0, len(rows))
	for _, row := range rows {
		var p catalog.Product
		if err := json.Unmarshal(row, &p); err != nil {
			c.logger.Warn("dropping malformed catalog product", "error", err)
			continue
		}
		products = append(products, p)
	}
	return products, nil
}
