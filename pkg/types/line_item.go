package types

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// ComboComponent is the frozen snapshot of one constituent inside a combo line.
type ComboComponent struct {
	ProductID   int64   `json:"id"`
	Name        string  `json:"name"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"`
	ProductCode string  `json:"product_code,omitempty"`
}

// LineItem is one row in a session cart. The unit price is resolved when the
// line is first created and never refreshed from the live catalog afterwards.
type LineItem struct {
	Key         string  `json:"id"`
	Name        string  `json:"name"`
	ProductCode string  `json:"product_code,omitempty"`
	UnitPrice   float64 `json:"price"`
	Quantity    int     `json:"quantity"`
	// StockCeiling echoes the catalog stock at add time so the UI can cap its
	// quantity selector. The cart engine itself never enforces it.
	StockCeiling int              `json:"stock_quantity"`
	IsCombo      bool             `json:"is_combo"`
	Images       []string         `json:"images,omitempty"`
	ComboItems   []ComboComponent `json:"combo_products,omitempty"`
}

// LineItems is a cart snapshot stored as JSONB.
type LineItems []LineItem

// Value serializes the items to JSON.
func (l LineItems) Value() (driver.Value, error) {
	if l == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(l)
}

// Scan decodes JSONB into the item slice.
func (l *LineItems) Scan(value interface{}) error {
	if value == nil {
		*l = nil
		return nil
	}
	raw, err := asJSON(value)
	if err != nil {
		return err
	}
	var decoded LineItems
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return err
	}
	*l = decoded
	return nil
}

func asJSON(value interface{}) ([]byte, error) {
	switch v := value.(type) {
	case []byte:
		return v, nil
	case string:
		return []byte(v), nil
	default:
		return nil, fmt.Errorf("unsupported JSON column type %T", value)
	}
}
