package errs

import "errors"

// Domain-specific sentinel errors for storefront usecase layers
var (
	// Cart errors
	ErrItemNotFound    = errors.New("cart item not found")
	ErrInvalidQuantity = errors.New("quantity must be positive")
	ErrEmptyCart       = errors.New("cart is empty")

	// Catalog errors
	ErrInvalidPrice = errors.New("invalid product price")
	ErrCatalogFetch = errors.New("catalog fetch failed")

	// Validation errors
	ErrDomainValidation = errors.New("domain validation error")
)
