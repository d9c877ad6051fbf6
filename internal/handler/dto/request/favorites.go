package request

import (
	"storefront/internal/domain/catalog"
)

// AddFavoriteRequest is the product payload posted when favoriting.
type AddFavoriteRequest struct {
	catalog.Product
}
