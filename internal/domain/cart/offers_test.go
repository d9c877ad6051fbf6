//go:build unit

package cart_test

import (
	"encoding/json"
	"testing"

	"storefront/internal/domain/cart"
	"storefront/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var decimalComparer = cmp.Comparer(func(a, b decimal.Decimal) bool { return a.Equal(b) })

func TestReconcile_EmptyCart(t *testing.T) {
	result := cart.Reconcile(nil)

	assert.Empty(t, result.Cart)
	assert.Empty(t, result.Offers)
}

func TestReconcile_BulkFreeThresholds(t *testing.T) {
	cases := []struct {
		name          string
		quantity      int
		wantFreeUnits int
	}{
		{name: "below threshold", quantity: 5, wantFreeUnits: 0},
		{name: "at threshold", quantity: 6, wantFreeUnits: 1},
		{name: "just above threshold", quantity: 7, wantFreeUnits: 1},
		{name: "two multiples", quantity: 12, wantFreeUnits: 2},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cola := builder.NewLineItemBuilder().AsCola().WithQuantity(tc.quantity).Build()

			result := cart.Reconcile([]cart.LineItem{cola})

			if tc.wantFreeUnits == 0 {
				assert.Len(t, result.Cart, 1)
				assert.Empty(t, result.Offers)
				return
			}

			require.Len(t, result.Cart, 2)
			require.Len(t, result.Offers, 1)

			free := result.Cart[1]
			assert.Equal(t, "coca-cola-1-free", free.ID)
			assert.Equal(t, tc.wantFreeUnits, free.Quantity)
			assert.True(t, free.IsOffer)
			assert.Equal(t, cart.OfferColaFree, free.OfferType)
			assert.Equal(t, "coca-cola-1", free.RelatedItemID)
			assert.True(t, free.Price.IsZero())

			wantDiscount := cola.Price.Mul(decimal.NewFromInt(int64(tc.wantFreeUnits)))
			assert.True(t, result.Offers[0].Discount.Equal(wantDiscount),
				"discount %s, want %s", result.Offers[0].Discount, wantDiscount)
		})
	}
}

func TestReconcile_BundleCompanionThresholds(t *testing.T) {
	cases := []struct {
		name      string
		quantity  int
		wantOffer bool
	}{
		{name: "below threshold", quantity: 2, wantOffer: false},
		{name: "at threshold", quantity: 3, wantOffer: true},
		{name: "well above threshold grants exactly one", quantity: 10, wantOffer: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			croissant := builder.NewLineItemBuilder().AsCroissant().WithQuantity(tc.quantity).Build()

			result := cart.Reconcile([]cart.LineItem{croissant})

			if !tc.wantOffer {
				assert.Len(t, result.Cart, 1)
				assert.Empty(t, result.Offers)
				return
			}

			require.Len(t, result.Cart, 2)
			require.Len(t, result.Offers, 1)

			// No coffee in the cart, so the free unit is the synthesized
			// placeholder valued at the fallback price.
			free := result.Cart[1]
			assert.Equal(t, "free-coffee", free.ID)
			assert.Equal(t, "Coffee (Free)", free.Name)
			assert.Equal(t, 1, free.Quantity)
			assert.Equal(t, cart.OfferFreeCoffee, free.OfferType)
			assert.Equal(t, "croissant-1", free.RelatedItemID)
			assert.True(t, result.Offers[0].Discount.Equal(decimal.NewFromFloat(120.0)))
		})
	}
}

func TestReconcile_BundleCompanionUsesCartCoffee(t *testing.T) {
	croissant := builder.NewLineItemBuilder().AsCroissant().WithQuantity(3).Build()
	coffee := builder.NewLineItemBuilder().AsCoffee().WithQuantity(1).Build()

	result := cart.Reconcile([]cart.LineItem{croissant, coffee})

	require.Len(t, result.Cart, 3)
	require.Len(t, result.Offers, 1)

	free := result.Cart[2]
	assert.Equal(t, "coffee-1-free", free.ID)
	assert.Equal(t, "Arabica Coffee (Free)", free.Name)
	assert.Equal(t, coffee.Image, free.Image)
	assert.True(t, free.Price.IsZero())
	assert.True(t, result.Offers[0].Discount.Equal(coffee.Price))
}

func TestReconcile_ColaScenario(t *testing.T) {
	cola := builder.NewLineItemBuilder().AsCola().WithQuantity(6).Build()

	result := cart.Reconcile([]cart.LineItem{cola})

	require.Len(t, result.Cart, 2)
	require.Len(t, result.Offers, 1)
	assert.Equal(t, "coca-cola-1-free", result.Cart[1].ID)
	assert.Equal(t, 1, result.Cart[1].Quantity)
	assert.True(t, result.Cart[1].Price.IsZero())
	assert.Contains(t, result.Offers[0].Description, "6")
	assert.True(t, result.Offers[0].Discount.Equal(decimal.NewFromFloat(45.0)))
}

func TestReconcile_BothRulesInRuleOrder(t *testing.T) {
	cola := builder.NewLineItemBuilder().AsCola().WithQuantity(12).Build()
	croissant := builder.NewLineItemBuilder().AsCroissant().WithQuantity(4).Build()

	result := cart.Reconcile([]cart.LineItem{croissant, cola})

	// Regular items keep input order, derived items follow in rule order.
	require.Len(t, result.Cart, 4)
	assert.Equal(t, "croissant-1", result.Cart[0].ID)
	assert.Equal(t, "coca-cola-1", result.Cart[1].ID)
	assert.Equal(t, "coca-cola-1-free", result.Cart[2].ID)
	assert.Equal(t, "free-coffee", result.Cart[3].ID)

	require.Len(t, result.Offers, 2)
	assert.Contains(t, result.Offers[0].Description, "Coca-Cola")
	assert.Contains(t, result.Offers[1].Description, "croissants")
}

func TestReconcile_Idempotence(t *testing.T) {
	carts := map[string][]cart.LineItem{
		"empty": nil,
		"no offers": {
			builder.NewLineItemBuilder().AsApple().WithQuantity(2).Build(),
		},
		"bulk only": {
			builder.NewLineItemBuilder().AsCola().WithQuantity(13).Build(),
		},
		"both rules with coffee present": {
			builder.NewLineItemBuilder().AsCola().WithQuantity(6).Build(),
			builder.NewLineItemBuilder().AsCroissant().WithQuantity(9).Build(),
			builder.NewLineItemBuilder().AsCoffee().WithQuantity(1).Build(),
		},
	}

	for name, items := range carts {
		t.Run(name, func(t *testing.T) {
			first := cart.Reconcile(items)
			// Feeding the full reconciled cart back in must strip the derived
			// entries and land on the identical result.
			second := cart.Reconcile(first.Cart)

			assert.Empty(t, cmp.Diff(first, second, decimalComparer))

			firstJSON, err := json.Marshal(first.Cart)
			require.NoError(t, err)
			secondJSON, err := json.Marshal(second.Cart)
			require.NoError(t, err)
			assert.Equal(t, firstJSON, secondJSON)
		})
	}
}

func TestReconcile_ConservationOnTriggerRemoval(t *testing.T) {
	cola := builder.NewLineItemBuilder().AsCola().WithQuantity(6).Build()
	apple := builder.NewLineItemBuilder().AsApple().WithQuantity(1).Build()

	withOffer := cart.Reconcile([]cart.LineItem{cola, apple})
	require.Len(t, withOffer.Offers, 1)

	// Drop the trigger, keep the derived item in the input: the next pass
	// must clean both out.
	var survivors []cart.LineItem
	for _, li := range withOffer.Cart {
		if li.ID != "coca-cola-1" {
			survivors = append(survivors, li)
		}
	}

	after := cart.Reconcile(survivors)
	assert.Len(t, after.Cart, 1)
	assert.Equal(t, "apple-1", after.Cart[0].ID)
	assert.Empty(t, after.Offers)
}

func TestReconcile_DiscountNeverExceedsTriggerContribution(t *testing.T) {
	for qty := 1; qty <= 30; qty++ {
		cola := builder.NewLineItemBuilder().AsCola().WithQuantity(qty).Build()

		result := cart.Reconcile([]cart.LineItem{cola})

		discount := decimal.Zero
		for _, o := range result.Offers {
			discount = discount.Add(o.Discount)
		}
		assert.True(t, discount.LessThanOrEqual(cola.LineTotal()),
			"qty %d: discount %s exceeds line total %s", qty, discount, cola.LineTotal())
	}
}

func TestReconcile_StripsOfferInput(t *testing.T) {
	stale := builder.NewLineItemBuilder().AsCola().WithQuantity(1).Build()
	stale.ID = "coca-cola-1-free"
	stale.IsOffer = true
	stale.OfferType = cart.OfferColaFree
	stale.Price = decimal.Zero

	result := cart.Reconcile([]cart.LineItem{stale})

	assert.Empty(t, result.Cart)
	assert.Empty(t, result.Offers)
}
