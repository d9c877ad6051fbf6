package request

import (
	"storefront/internal/domain/catalog"
)

// AddItemRequest is the product payload the UI posts when adding to cart.
// catalog.Product owns the normalization of the duck-typed id and price
// fields, so a non-numeric price fails the bind.
type AddItemRequest struct {
	catalog.Product
}

// SetQuantityRequest updates a cart line's quantity. Zero is valid input and
// is treated as removal, so the field is a pointer to distinguish it from an
// absent value.
type SetQuantityRequest struct {
	Quantity *int `json:"quantity" binding:"required"`
}
