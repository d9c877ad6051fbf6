package cart

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Trigger and companion products are located by case-insensitive id substring,
// matching however the catalog happens to suffix its ids.
const (
	colaTriggerID      = "coca-cola"
	croissantTriggerID = "croissant"
	coffeeCompanionID  = "coffee"

	colaThreshold      = 6
	croissantThreshold = 3
)

// coffeeFallbackPrice values the free coffee when no coffee item is in the
// cart to take a real price from.
var coffeeFallbackPrice = decimal.NewFromFloat(120.0)

const placeholderImage = "/placeholder.svg?height=200&width=200"

// AppliedOffer is one ledger record per satisfied rule per reconciliation
// pass. The ledger is never persisted independently; it is recomputed from
// the current regular items every time.
type AppliedOffer struct {
	Description string          `json:"description"`
	Discount    decimal.Decimal `json:"discount"`
}

// Result is the reconciled cart: the regular items unchanged, followed by
// zero or more derived offer items in rule-evaluation order, plus the ledger.
type Result struct {
	Cart   []LineItem
	Offers []AppliedOffer
}

// Reconcile derives the promotional free items and discount ledger from the
// regular cart contents. Two fixed rules, evaluated in order:
//
//  1. Buy 6 cans of Coca-Cola, get 1 free (scales with floor(qty/6)).
//  2. Buy 3 croissants, get a free coffee (exactly one, no scaling).
//
// Any offer-tagged item in the input is stripped before processing, so the
// function is idempotent: identical regular items always yield identical
// output, and derived item ids are deterministic ("<triggerId>-free").
func Reconcile(items []LineItem) Result {
	regular := make([]LineItem, 0, len(items))
	for _, li := range items {
		if !li.IsOffer {
			regular = append(regular, li)
		}
	}

	cart := make([]LineItem, len(regular))
	copy(cart, regular)
	offers := []AppliedOffer{}

	if free, offer, ok := applyColaRule(regular); ok {
		cart = append(cart, free)
		offers = append(offers, offer)
	}
	if free, offer, ok := applyCroissantRule(regular); ok {
		cart = append(cart, free)
		offers = append(offers, offer)
	}

	return Result{Cart: cart, Offers: offers}
}

func applyColaRule(regular []LineItem) (LineItem, AppliedOffer, bool) {
	cola, ok := findByID(regular, colaTriggerID)
	if !ok || cola.Quantity < colaThreshold {
		return LineItem{}, AppliedOffer{}, false
	}

	freeUnits := cola.Quantity / colaThreshold
	discount := cola.Price.Mul(decimal.NewFromInt(int64(freeUnits)))

	free := cola
	free.ID = cola.ID + "-free"
	free.Name = cola.Name + " (Free)"
	free.Price = decimal.Zero
	free.Quantity = freeUnits
	free.IsOffer = true
	free.OfferType = OfferColaFree
	free.RelatedItemID = cola.ID

	offer := AppliedOffer{
		Description: fmt.Sprintf("Buy 6 cans of Coca-Cola, get %d free", freeUnits),
		Discount:    discount,
	}
	return free, offer, true
}

func applyCroissantRule(regular []LineItem) (LineItem, AppliedOffer, bool) {
	croissant, ok := findByID(regular, croissantTriggerID)
	if !ok || croissant.Quantity < croissantThreshold {
		return LineItem{}, AppliedOffer{}, false
	}

	// Exactly one free coffee regardless of how many multiples of 3 are
	// purchased. Display fields come from a coffee item already in the cart
	// when one exists; otherwise a generic placeholder is synthesized.
	var free LineItem
	var coffeePrice decimal.Decimal
	if coffee, found := findByID(regular, coffeeCompanionID); found {
		coffeePrice = coffee.Price
		free = LineItem{
			ID:          coffee.ID + "-free",
			Name:        coffee.Name + " (Free)",
			Description: coffee.Description,
			Stock:       coffee.Stock,
			Image:       coffee.Image,
			Keywords:    coffee.Keywords,
		}
	} else {
		coffeePrice = coffeeFallbackPrice
		free = LineItem{
			ID:          "free-coffee",
			Name:        "Coffee (Free)",
			Description: "Free coffee with 3 croissants purchase",
			Stock:       999,
			Image:       placeholderImage,
		}
	}
	free.Price = decimal.Zero
	free.Quantity = 1
	free.IsOffer = true
	free.OfferType = OfferFreeCoffee
	free.RelatedItemID = croissant.ID

	offer := AppliedOffer{
		Description: "Buy 3 croissants, get a free coffee",
		Discount:    coffeePrice,
	}
	return free, offer, true
}

func findByID(items []LineItem, substr string) (LineItem, bool) {
	substr = strings.ToLower(substr)
	for _, li := range items {
		if li.idContains(substr) {
			return li, true
		}
	}
	return LineItem{}, false
}
