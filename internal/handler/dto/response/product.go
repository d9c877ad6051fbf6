package response

import (
	"github.com/jinzhu/copier"

	"storefront/internal/domain/catalog"
)

type ProductResponse struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	Stock       int      `json:"stock"`
	Image       string   `json:"image"`
	Keywords    []string `json:"keywords,omitempty"`
}

func FromProduct(p catalog.Product) ProductResponse {
	var resp ProductResponse
	_ = copier.Copy(&resp, &p)
	resp.Price = p.Price.InexactFloat64()
	return resp
}

func FromProducts(products []catalog.Product) []ProductResponse {
	resp := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		resp = append(resp, FromProduct(p))
	}
	return resp
}
