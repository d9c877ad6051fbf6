package cart

import (
	"strings"

	"github.com/shopspring/decimal"

	"storefront/internal/domain/catalog"
	"storefront/internal/pkg/errs"
)

// OfferType tags a derived line item with the promotion rule that produced it.
type OfferType string

const (
	OfferColaFree   OfferType = "coca-cola-free"
	OfferFreeCoffee OfferType = "free-coffee"
)

// LineItem is one row in the cart: a product snapshot plus a quantity.
// Regular items are keyed by product id, at most one per distinct id.
// Offer items (IsOffer=true) are derived entirely by Reconcile; they carry a
// zero price, never persist stock, and never accept direct quantity edits.
type LineItem struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Description   string          `json:"description"`
	Price         decimal.Decimal `json:"price"`
	Stock         int             `json:"stock"`
	Image         string          `json:"image"`
	Keywords      []string        `json:"keywords,omitempty"`
	Quantity      int             `json:"quantity"`
	IsOffer       bool            `json:"isOffer"`
	OfferType     OfferType       `json:"offerType,omitempty"`
	RelatedItemID string          `json:"relatedItemId,omitempty"`
}

// NewLineItem builds a regular line item from a catalog product.
func NewLineItem(p catalog.Product, quantity int) (LineItem, error) {
	if quantity <= 0 {
		return LineItem{}, errs.Mark(errs.New("line item quantity must be positive"), errs.ErrInvalidQuantity)
	}
	if p.Price.IsNegative() {
		return LineItem{}, errs.Mark(errs.New("line item price must be non-negative"), errs.ErrInvalidPrice)
	}
	return LineItem{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Stock:       p.Stock,
		Image:       p.Image,
		Keywords:    p.Keywords,
		Quantity:    quantity,
	}, nil
}

// LineTotal is the item's contribution to the subtotal. Offer items contribute
// nothing since their price is always zero.
func (li LineItem) LineTotal() decimal.Decimal {
	return li.Price.Mul(decimal.NewFromInt(int64(li.Quantity)))
}

func (li LineItem) idContains(substr string) bool {
	return strings.Contains(strings.ToLower(li.ID), substr)
}

// Subtotal sums line totals over the regular items only.
func Subtotal(items []LineItem) decimal.Decimal {
	total := decimal.Zero
	for _, li := range items {
		if li.IsOffer {
			continue
		}
		total = total.Add(li.LineTotal())
	}
	return total
}
