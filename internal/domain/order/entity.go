package order

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"storefront/internal/domain/cart"
	"storefront/internal/pkg/errs"
)

// Order is an immutable snapshot of the cart taken at checkout, with the
// totals frozen at that instant.
type Order struct {
	ID        uuid.UUID           `json:"id"`
	Items     []cart.LineItem     `json:"items"`
	Offers    []cart.AppliedOffer `json:"offers"`
	Subtotal  decimal.Decimal     `json:"subtotal"`
	Discount  decimal.Decimal     `json:"discount"`
	Total     decimal.Decimal     `json:"total"`
	CreatedAt time.Time           `json:"created_at"`
}

func NewOrder(items []cart.LineItem, offers []cart.AppliedOffer, createdAt time.Time) (*Order, error) {
	regularCount := 0
	for _, li := range items {
		if !li.IsOffer {
			regularCount++
		}
	}
	if regularCount == 0 {
		return nil, errs.ErrEmptyCart
	}

	subtotal := cart.Subtotal(items)
	discount := decimal.Zero
	for _, o := range offers {
		discount = discount.Add(o.Discount)
	}

	return &Order{
		ID:        uuid.New(),
		Items:     items,
		Offers:    offers,
		Subtotal:  subtotal,
		Discount:  discount,
		Total:     subtotal.Sub(discount),
		CreatedAt: createdAt,
	}, nil
}
