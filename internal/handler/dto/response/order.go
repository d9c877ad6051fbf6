package response

import (
	"storefront/internal/domain/order"
)

type OrderResponse struct {
	ID        string                 `json:"id"`
	Items     []CartItemResponse     `json:"items"`
	Offers    []AppliedOfferResponse `json:"offers"`
	Subtotal  float64                `json:"subtotal"`
	Discount  float64                `json:"discount"`
	Total     float64                `json:"total"`
	CreatedAt int64                  `json:"created_at"`
}

func FromOrder(o *order.Order) OrderResponse {
	items := make([]CartItemResponse, 0, len(o.Items))
	for _, li := range o.Items {
		items = append(items, FromLineItem(li))
	}
	offers := make([]AppliedOfferResponse, 0, len(o.Offers))
	for _, of := range o.Offers {
		offers = append(offers, AppliedOfferResponse{
			Description: of.Description,
			Discount:    of.Discount.InexactFloat64(),
		})
	}
	return OrderResponse{
		ID:        o.ID.String(),
		Items:     items,
		Offers:    offers,
		Subtotal:  o.Subtotal.InexactFloat64(),
		Discount:  o.Discount.InexactFloat64(),
		Total:     o.Total.InexactFloat64(),
		CreatedAt: o.CreatedAt.Unix(),
	}
}
