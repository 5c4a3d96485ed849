package cart

import (
	"strconv"

	"github.com/ovees/eleganza-backend/internal/catalog"
	"github.com/ovees/eleganza-backend/pkg/types"
)

const comboKeyPrefix = "combo-"

// KeyFor derives the cart line identity for a catalog entity. Plain products
// and combos live in disjoint key spaces so a product and a combo sharing a
// numeric id never collide.
func KeyFor(id int64, isCombo bool) string {
	if isCombo {
		return comboKeyPrefix + strconv.FormatInt(id, 10)
	}
	return strconv.FormatInt(id, 10)
}

// ResolvePrice picks the unit price for a product snapshot. Offer price wins
// over normal price, which wins over the legacy price field. A zero in any
// slot is treated as unset and skipped, so a fully unpriced product resolves
// to zero rather than erroring.
func ResolvePrice(offer, normal, legacy float64) float64 {
	if offer != 0 {
		return offer
	}
	if normal != 0 {
		return normal
	}
	if legacy != 0 {
		return legacy
	}
	return 0
}

// SnapshotProduct freezes a catalog product into a cart line template with
// zero quantity. The price resolved here sticks for the lifetime of the line.
func SnapshotProduct(p catalog.Product) types.LineItem {
	return types.LineItem{
		Key:          KeyFor(p.ID, false),
		Name:         p.Name,
		ProductCode:  p.ProductCode,
		UnitPrice:    ResolvePrice(p.OfferPrice, p.NormalPrice, p.Price),
		StockCeiling: p.StockQuantity,
		Images:       p.Images,
	}
}

// SnapshotCombo freezes a combo bundle into a cart line template. The line
// carries the constituent breakdown so order messages can itemize the bundle,
// and its stock ceiling is bounded by the scarcest constituent.
func SnapshotCombo(c catalog.Combo) types.LineItem {
	components := make([]types.ComboComponent, 0, len(c.Products))
	var images []string
	for _, cp := range c.Products {
		components = append(components, types.ComboComponent{
			ProductID:   cp.Product.ID,
			Name:        cp.Product.Name,
			Quantity:    cp.Quantity,
			Price:       ResolvePrice(cp.Product.OfferPrice, cp.Product.NormalPrice, cp.Product.Price),
			ProductCode: cp.Product.ProductCode,
		})
		if len(images) == 0 && len(cp.Product.Images) > 0 {
			images = cp.Product.Images[:1]
		}
	}

	return types.LineItem{
		Key:          KeyFor(c.ID, true),
		Name:         c.Name,
		UnitPrice:    c.ComboPrice,
		StockCeiling: c.EffectiveStock(),
		IsCombo:      true,
		Images:       images,
		ComboItems:   components,
	}
}
