//go:build unit || e2e

package builder

import (
	"github.com/shopspring/decimal"

	"storefront/internal/domain/cart"
	"storefront/internal/domain/catalog"
)

// LineItemBuilder assembles cart line items for tests, defaulting to the
// sample-catalog products the offers key off.
type LineItemBuilder struct {
	ID          string
	Name        string
	Description string
	Price       decimal.Decimal
	Stock       int
	Image       string
	Keywords    []string
	Quantity    int
}

func NewLineItemBuilder() *LineItemBuilder {
	return &LineItemBuilder{
		ID:       "product-1",
		Name:     "Test Product",
		Price:    decimal.NewFromFloat(10.0),
		Stock:    10,
		Quantity: 1,
	}
}

func (b *LineItemBuilder) AsCola() *LineItemBuilder {
	b.ID = "coca-cola-1"
	b.Name = "Coca-Cola Classic"
	b.Description = "Refreshing cola drink in a can"
	b.Price = decimal.NewFromFloat(45.0)
	b.Stock = 50
	b.Keywords = []string{"drink", "soda", "cola"}
	return b
}

func (b *LineItemBuilder) AsCroissant() *LineItemBuilder {
	b.ID = "croissant-1"
	b.Name = "Butter Croissant"
	b.Description = "Freshly baked butter croissant"
	b.Price = decimal.NewFromFloat(65.0)
	b.Stock = 15
	b.Keywords = []string{"bakery", "pastry", "breakfast"}
	return b
}

func (b *LineItemBuilder) AsCoffee() *LineItemBuilder {
	b.ID = "coffee-1"
	b.Name = "Arabica Coffee"
	b.Description = "Premium arabica coffee beans"
	b.Price = decimal.NewFromFloat(120.0)
	b.Stock = 20
	b.Image = "https://example.com/coffee.jpg"
	b.Keywords = []string{"drink", "hot", "caffeine"}
	return b
}

func (b *LineItemBuilder) AsApple() *LineItemBuilder {
	b.ID = "apple-1"
	b.Name = "Granny Smith Apple"
	b.Description = "Fresh green apples"
	b.Price = decimal.NewFromFloat(25.0)
	b.Stock = 30
	b.Keywords = []string{"fruit", "fresh", "green"}
	return b
}

func (b *LineItemBuilder) WithQuantity(q int) *LineItemBuilder {
	b.Quantity = q
	return b
}

func (b *LineItemBuilder) WithPrice(p float64) *LineItemBuilder {
	b.Price = decimal.NewFromFloat(p)
	return b
}

func (b *LineItemBuilder) Build() cart.LineItem {
	return cart.LineItem{
		ID:          b.ID,
		Name:        b.Name,
		Description: b.Description,
		Price:       b.Price,
		Stock:       b.Stock,
		Image:       b.Image,
		Keywords:    b.Keywords,
		Quantity:    b.Quantity,
	}
}

func (b *LineItemBuilder) BuildProduct() catalog.Product {
	return catalog.Product{
		ID:          b.ID,
		Name:        b.Name,
		Description: b.Description,
		Price:       b.Price,
		Stock:       b.Stock,
		Image:       b.Image,
		Keywords:    b.Keywords,
	}
}
