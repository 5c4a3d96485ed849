package checkout

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ovees/eleganza-backend/pkg/types"
)

func TestBuildOrderMessageRendersItemsAndSummary(t *testing.T) {
	items := types.LineItems{
		{Key: "12", Name: "Gold Necklace", ProductCode: "GN-12", UnitPrice: 100, Quantity: 2},
	}
	summary := Summarize(items)

	message := BuildOrderMessage(items, summary)

	assert.Contains(t, message, "*Order Details*")
	assert.Contains(t, message, "• Gold Necklace (Code: GN-12)")
	assert.Contains(t, message, "Qty: 2 × ₹100.00 = ₹200.00")
	assert.Contains(t, message, "Subtotal: ₹200.00")
	assert.Contains(t, message, "Discount (10%): -₹20.00")
	assert.Contains(t, message, "Delivery Charge: ₹50.00")
	assert.Contains(t, message, "*Total: ₹230.00*")
	assert.Contains(t, message, "Please confirm this order. Thank you!")
}

func TestBuildOrderMessageItemizesComboConstituents(t *testing.T) {
	items := types.LineItems{
		{
			Key:       "combo-3",
			Name:      "Bridal Set",
			UnitPrice: 450,
			Quantity:  1,
			IsCombo:   true,
			ComboItems: []types.ComboComponent{
				{ProductID: 1, Name: "Ring", Quantity: 1, ProductCode: "R-1"},
				{ProductID: 2, Name: "Chain", Quantity: 2},
			},
		},
	}

	message := BuildOrderMessage(items, Summarize(items))

	assert.Contains(t, message, "  └─ Ring (x1) (Code: R-1)\n")
	assert.Contains(t, message, "  └─ Chain (x2)\n")
}

func TestBuildOrderMessageFreeDelivery(t *testing.T) {
	items := types.LineItems{{Key: "1", Name: "Set", UnitPrice: 600, Quantity: 1}}

	message := BuildOrderMessage(items, Summarize(items))

	assert.Contains(t, message, "Delivery Charge: Free")
	assert.NotContains(t, message, "Delivery Charge: ₹")
}

func TestBuildWhatsAppURL(t *testing.T) {
	link := BuildWhatsAppURL("918129690147", "hello world ₹")

	assert.Contains(t, link, "https://wa.me/918129690147?text=")
	assert.NotContains(t, link, "+")
	assert.Contains(t, link, "%20")

	parsed, err := url.Parse(link)
	require.NoError(t, err)
	assert.Equal(t, "hello world ₹", parsed.Query().Get("text"))
}
