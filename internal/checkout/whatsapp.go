package checkout

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/ovees/eleganza-backend/pkg/types"
)

// BuildOrderMessage renders the plain-text order message sent to the store
// over WhatsApp. Combo lines itemize their constituents as indented sub-lines
// so the store can pick the bundle without looking it up.
func BuildOrderMessage(items types.LineItems, summary Summary) string {
	var b strings.Builder

	b.WriteString("*Order Details*\n\n")
	b.WriteString("*Items:*\n")
	for _, item := range items {
		b.WriteString("• " + item.Name)
		if item.ProductCode != "" {
			b.WriteString(fmt.Sprintf(" (Code: %s)", item.ProductCode))
		}
		b.WriteString("\n")
		b.WriteString(fmt.Sprintf("  Qty: %d × ₹%.2f = ₹%.2f\n",
			item.Quantity, item.UnitPrice, item.UnitPrice*float64(item.Quantity)))
		if item.IsCombo {
			for _, component := range item.ComboItems {
				b.WriteString(fmt.Sprintf("  └─ %s (x%d)", component.Name, component.Quantity))
				if component.ProductCode != "" {
					b.WriteString(fmt.Sprintf(" (Code: %s)", component.ProductCode))
				}
				b.WriteString("\n")
			}
		}
	}

	b.WriteString("\n*Price Summary:*\n")
	b.WriteString(fmt.Sprintf("Subtotal: ₹%.2f\n", summary.Subtotal))
	b.WriteString(fmt.Sprintf("Discount (10%%): -₹%.2f\n", summary.Discount))
	if summary.DeliveryFee == 0 {
		b.WriteString("Delivery Charge: Free\n")
	} else {
		b.WriteString(fmt.Sprintf("Delivery Charge: ₹%.2f\n", summary.DeliveryFee))
	}
	b.WriteString(fmt.Sprintf("*Total: ₹%.2f*\n\n", summary.Total))
	b.WriteString("Please confirm this order. Thank you!")

	return b.String()
}

// BuildWhatsAppURL wraps the order message into a wa.me deep link for the
// configured store number. Spaces are percent-encoded since some WhatsApp
// clients render a literal plus sign.
func BuildWhatsAppURL(number string, message string) string {
	encoded := strings.ReplaceAll(url.QueryEscape(message), "+", "%20")
	return "https://wa.me/" + number + "?text=" + encoded
}
