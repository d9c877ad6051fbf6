package catalog

import (
	"encoding/json"
	"strings"

	"github.com/shopspring/decimal"

	"storefront/internal/pkg/errs"
)

// Product is a catalog entity. It is immutable once fetched; the catalog
// collaborator owns it.
type Product struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Stock       int             `json:"stock"`
	Image       string          `json:"image"`
	Keywords    []string        `json:"keywords,omitempty"`
}

// rawProduct mirrors the wire shape: the remote API duck-types both id and
// price as number-or-string.
type rawProduct struct {
	ID          json.RawMessage `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       json.RawMessage `json:"price"`
	Stock       int             `json:"stock"`
	Image       string          `json:"image"`
	Keywords    []string        `json:"keywords"`
}

// UnmarshalJSON normalizes the duck-typed wire shape at the ingress boundary,
// so nothing downstream ever branches on the runtime type of id or price. A
// price that parses to neither number nor numeric string is a validation
// error, never silently coerced.
func (p *Product) UnmarshalJSON(data []byte) error {
	var raw rawProduct
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	price, err := ParsePrice(raw.Price)
	if err != nil {
		return err
	}

	id := strings.Trim(strings.TrimSpace(string(raw.ID)), `"`)
	if id == "" || id == "null" {
		return errs.Mark(errs.New("product id is missing"), errs.ErrDomainValidation)
	}

	*p = Product{
		ID:          id,
		Name:        raw.Name,
		Description: raw.Description,
		Price:       price,
		Stock:       raw.Stock,
		Image:       raw.Image,
		Keywords:    raw.Keywords,
	}
	return nil
}

// ParsePrice normalizes a raw JSON price value (number or quoted string) into
// a non-negative decimal.
func ParsePrice(raw json.RawMessage) (decimal.Decimal, error) {
	s := strings.TrimSpace(string(raw))
	if s == "" || s == "null" {
		return decimal.Zero, errs.Mark(errs.New("price is missing"), errs.ErrInvalidPrice)
	}
	s = strings.Trim(s, `"`)
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, errs.Mark(errs.Wrap(err, "price is not numeric"), errs.ErrInvalidPrice)
	}
	if d.IsNegative() {
		return decimal.Zero, errs.Mark(errs.New("price is negative"), errs.ErrInvalidPrice)
	}
	return d, nil
}

// MatchesQuery reports whether the free-text query matches the product by
// case-insensitive substring over name, description, or any keyword.
func (p Product) MatchesQuery(query string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return true
	}
	if strings.Contains(strings.ToLower(p.Name), q) {
		return true
	}
	if strings.Contains(strings.ToLower(p.Description), q) {
		return true
	}
	for _, kw := range p.Keywords {
		if strings.Contains(strings.ToLower(kw), q) {
			return true
		}
	}
	return false
}

func (p Product) hasKeyword(kw string) bool {
	for _, k := range p.Keywords {
		if strings.EqualFold(k, kw) {
			return true
		}
	}
	return false
}
