package cart

import "github.com/ovees/eleganza-backend/pkg/types"

// The reducer functions below are pure. They never mutate their input slice
// and always hand back a fresh snapshot, so a failed persist leaves the
// previous snapshot intact. Line order is stable: existing lines keep their
// position and new lines append.

// AddDelta adjusts the quantity of the line identified by item.Key by delta.
// When the line already exists its frozen snapshot (name, price, stock
// ceiling) is kept and only the quantity moves; re-adding never re-prices.
// When the line is absent it is created only for a positive delta, seeded
// from the given snapshot. A resulting quantity at or below zero removes the
// line entirely.
func AddDelta(items types.LineItems, item types.LineItem, delta int) types.LineItems {
	next := clone(items)

	for i := range next {
		if next[i].Key != item.Key {
			continue
		}
		qty := next[i].Quantity + delta
		if qty <= 0 {
			return append(next[:i], next[i+1:]...)
		}
		next[i].Quantity = qty
		return next
	}

	if delta <= 0 {
		return next
	}
	created := item
	created.Quantity = delta
	return append(next, created)
}

// SetQuantity pins the line at key to an absolute quantity. A target at or
// below zero removes the line; an unknown key is a no-op.
func SetQuantity(items types.LineItems, key string, quantity int) types.LineItems {
	if quantity <= 0 {
		return Remove(items, key)
	}

	next := clone(items)
	for i := range next {
		if next[i].Key == key {
			next[i].Quantity = quantity
			break
		}
	}
	return next
}

// Remove drops the line at key. Removing an absent key is a no-op.
func Remove(items types.LineItems, key string) types.LineItems {
	next := clone(items)
	for i := range next {
		if next[i].Key == key {
			return append(next[:i], next[i+1:]...)
		}
	}
	return next
}

// ReplaceAll swaps the whole snapshot verbatim. Callers own the incoming
// lines; no validation or re-keying happens here.
func ReplaceAll(_ types.LineItems, incoming types.LineItems) types.LineItems {
	return clone(incoming)
}

func clone(items types.LineItems) types.LineItems {
	next := make(types.LineItems, len(items))
	copy(next, items)
	return next
}
