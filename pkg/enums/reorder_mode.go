package enums

import "fmt"

// ReorderMode selects how a past order is applied onto the current cart.
type ReorderMode string

const (
	// ReorderModeMerge re-applies the past items additively.
	ReorderModeMerge ReorderMode = "merge"
	// ReorderModeReplace discards the current cart first.
	ReorderModeReplace ReorderMode = "replace"
)

var validReorderModes = []ReorderMode{
	ReorderModeMerge,
	ReorderModeReplace,
}

// String implements fmt.Stringer.
func (r ReorderMode) String() string {
	return string(r)
}

// IsValid reports whether the value is a known ReorderMode.
func (r ReorderMode) IsValid() bool {
	for _, candidate := range validReorderModes {
		if candidate == r {
			return true
		}
	}
	return false
}

// ParseReorderMode converts raw input into a ReorderMode.
func ParseReorderMode(value string) (ReorderMode, error) {
	for _, candidate := range validReorderModes {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid reorder mode %q", value)
}
