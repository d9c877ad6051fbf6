//go:build unit

package cart_test

import (
	"testing"

	"storefront/internal/domain/cart"
	"storefront/internal/pkg/errs"
	"storefront/tests/common/builder"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLineItem(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		p := builder.NewLineItemBuilder().AsCola().BuildProduct()

		li, err := cart.NewLineItem(p, 3)
		require.NoError(t, err)

		assert.Equal(t, "coca-cola-1", li.ID)
		assert.Equal(t, 3, li.Quantity)
		assert.False(t, li.IsOffer)
		assert.True(t, li.Price.Equal(decimal.NewFromFloat(45.0)))
	})

	t.Run("zero quantity", func(t *testing.T) {
		p := builder.NewLineItemBuilder().BuildProduct()

		_, err := cart.NewLineItem(p, 0)
		assert.ErrorIs(t, err, errs.ErrInvalidQuantity)
	})

	t.Run("negative quantity", func(t *testing.T) {
		p := builder.NewLineItemBuilder().BuildProduct()

		_, err := cart.NewLineItem(p, -1)
		assert.ErrorIs(t, err, errs.ErrInvalidQuantity)
	})

	t.Run("negative price", func(t *testing.T) {
		p := builder.NewLineItemBuilder().BuildProduct()
		p.Price = decimal.NewFromFloat(-1.0)

		_, err := cart.NewLineItem(p, 1)
		assert.ErrorIs(t, err, errs.ErrInvalidPrice)
	})
}

func TestSubtotal(t *testing.T) {
	t.Run("excludes offer items", func(t *testing.T) {
		cola := builder.NewLineItemBuilder().AsCola().WithQuantity(6).Build()

		result := cart.Reconcile([]cart.LineItem{cola})
		require.Len(t, result.Cart, 2)

		// 6 * 45 = 270; the free item contributes nothing.
		assert.True(t, cart.Subtotal(result.Cart).Equal(decimal.NewFromFloat(270.0)))
	})

	t.Run("empty", func(t *testing.T) {
		assert.True(t, cart.Subtotal(nil).IsZero())
	})
}
