package catalog

import (
	"strings"

	"github.com/shopspring/decimal"
)

const CategoryAll = "all"

// SampleProducts returns the built-in catalog used whenever the remote product
// API fails or returns nothing. The storefront stays browsable on best-effort
// content instead of an error page.
func SampleProducts() []Product {
	return []Product{
		{
			ID:          "coca-cola-1",
			Name:        "Coca-Cola Classic",
			Description: "Refreshing cola drink in a can",
			Price:       decimal.NewFromFloat(45.0),
			Stock:       50,
			Image:       "https://images.unsplash.com/photo-1554866585-cd94860890b7?ixlib=rb-1.2.1&auto=format&fit=crop&w=300&q=80",
			Keywords:    []string{"drink", "soda", "cola"},
		},
		{
			ID:          "croissant-1",
			Name:        "Butter Croissant",
			Description: "Freshly baked butter croissant",
			Price:       decimal.NewFromFloat(65.0),
			Stock:       15,
			Image:       "https://images.unsplash.com/photo-1555507036-ab1f4038808a?ixlib=rb-1.2.1&auto=format&fit=crop&w=300&q=80",
			Keywords:    []string{"bakery", "pastry", "breakfast"},
		},
		{
			ID:          "coffee-1",
			Name:        "Arabica Coffee",
			Description: "Premium arabica coffee beans",
			Price:       decimal.NewFromFloat(120.0),
			Stock:       20,
			Image:       "https://images.unsplash.com/photo-1497515114629-f71d768fd07c?ixlib=rb-1.2.1&auto=format&fit=crop&w=300&q=80",
			Keywords:    []string{"drink", "hot", "caffeine"},
		},
		{
			ID:          "apple-1",
			Name:        "Granny Smith Apple",
			Description: "Fresh green apples",
			Price:       decimal.NewFromFloat(25.0),
			Stock:       30,
			Image:       "https://images.unsplash.com/photo-1567306226416-28f0efdc88ce?ixlib=rb-1.2.1&auto=format&fit=crop&w=300&q=80",
			Keywords:    []string{"fruit", "fresh", "green"},
		},
	}
}

// FilterByCategory narrows the sample catalog with the same name/keyword
// heuristics the storefront has always used for its built-in data.
func FilterByCategory(products []Product, category string) []Product {
	category = strings.ToLower(strings.TrimSpace(category))
	if category == "" || category == CategoryAll {
		return products
	}

	filtered := make([]Product, 0, len(products))
	for _, p := range products {
		if matchesCategory(p, category) {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

func matchesCategory(p Product, category string) bool {
	name := strings.ToLower(p.Name)
	switch category {
	case "drinks":
		return strings.Contains(name, "cola") || strings.Contains(name, "coffee")
	case "fruit":
		return strings.Contains(name, "apple") || p.hasKeyword("fruit")
	case "bakery":
		return strings.Contains(name, "croissant") || p.hasKeyword("bakery")
	}
	return false
}
