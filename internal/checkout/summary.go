package checkout

import "github.com/ovees/eleganza-backend/pkg/types"

const (
	// DiscountRate is the flat storefront discount applied to every order.
	DiscountRate = 0.10
	// FreeDeliveryThreshold is the subtotal above which delivery is free.
	// The threshold is exclusive: a subtotal of exactly 500 still pays.
	FreeDeliveryThreshold = 500.0
	// DeliveryFee is charged below the free delivery threshold.
	DeliveryFee = 50.0
)

// Summary is the priced breakdown of a cart snapshot.
type Summary struct {
	Subtotal     float64 `json:"subtotal"`
	Discount     float64 `json:"discount"`
	DeliveryFee  float64 `json:"delivery_fee"`
	Total        float64 `json:"total"`
	ItemCount    int     `json:"item_count"`
	FreeDelivery bool    `json:"free_delivery"`
}

// Summarize prices a snapshot. It is deterministic in the line items alone:
// the same snapshot always yields the same summary, regardless of the order
// mutations that produced it.
func Summarize(items types.LineItems) Summary {
	var subtotal float64
	var count int
	for _, item := range items {
		subtotal += item.UnitPrice * float64(item.Quantity)
		count += item.Quantity
	}

	discount := subtotal * DiscountRate
	delivery := DeliveryFee
	if subtotal > FreeDeliveryThreshold {
		delivery = 0
	}

	return Summary{
		Subtotal:     subtotal,
		Discount:     discount,
		DeliveryFee:  delivery,
		Total:        subtotal - discount + delivery,
		ItemCount:    count,
		FreeDelivery: delivery == 0,
	}
}
