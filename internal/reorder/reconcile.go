package reorder

import (
	"github.com/ovees/eleganza-backend/internal/cart"
	"github.com/ovees/eleganza-backend/pkg/enums"
	"github.com/ovees/eleganza-backend/pkg/types"
)

// Reconcile folds a past order back into the current cart.
//
// Merge mode replays each past line through the cart reducer, so quantities
// stack onto lines the shopper already has and existing lines keep their
// frozen prices. Replace mode discards the current cart and restores the past
// order verbatim.
func Reconcile(current types.LineItems, past types.LineItems, mode enums.ReorderMode) types.LineItems {
	if mode == enums.ReorderModeReplace {
		return cart.ReplaceAll(current, past)
	}

	next := current
	for _, item := range past {
		next = cart.AddDelta(next, item, item.Quantity)
	}
	return next
}
