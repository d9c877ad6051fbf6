package response

import (
	"github.com/jinzhu/copier"

	"storefront/internal/domain/cart"
	"storefront/internal/usecase"
)

type CartItemResponse struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	Price         float64  `json:"price"`
	Stock         int      `json:"stock"`
	Image         string   `json:"image"`
	Keywords      []string `json:"keywords,omitempty"`
	Quantity      int      `json:"quantity"`
	IsOffer       bool     `json:"isOffer"`
	OfferType     string   `json:"offerType,omitempty"`
	RelatedItemID string   `json:"relatedItemId,omitempty"`
}

type AppliedOfferResponse struct {
	Description string  `json:"description"`
	Discount    float64 `json:"discount"`
}

type CartResponse struct {
	Items    []CartItemResponse     `json:"items"`
	Offers   []AppliedOfferResponse `json:"offers"`
	Subtotal float64                `json:"subtotal"`
	Discount float64                `json:"discount"`
	Total    float64                `json:"total"`
}

func FromLineItem(li cart.LineItem) CartItemResponse {
	var resp CartItemResponse
	_ = copier.Copy(&resp, &li)
	resp.Price = li.Price.InexactFloat64()
	resp.OfferType = string(li.OfferType)
	return resp
}

func FromCartView(v *usecase.CartView) CartResponse {
	items := make([]CartItemResponse, 0, len(v.Items))
	for _, li := range v.Items {
		items = append(items, FromLineItem(li))
	}
	offers := make([]AppliedOfferResponse, 0, len(v.Offers))
	for _, o := range v.Offers {
		offers = append(offers, AppliedOfferResponse{
			Description: o.Description,
			Discount:    o.Discount.InexactFloat64(),
		})
	}
	return CartResponse{
		Items:    items,
		Offers:   offers,
		Subtotal: v.Subtotal.InexactFloat64(),
		Discount: v.Discount.InexactFloat64(),
		Total:    v.Total.InexactFloat64(),
	}
}
