package catalog

import "github.com/ovees/eleganza-backend/pkg/pagination"

// Product is a read-only catalog listing. At most one of the price fields is
// authoritative at a time; resolution order lives with the cart engine.
type Product struct {
	ID            int64    `json:"id"`
	Name          string   `json:"name"`
	Description   string   `json:"description,omitempty"`
	ProductCode   string   `json:"product_code,omitempty"`
	Price         float64  `json:"price,omitempty"`
	OfferPrice    float64  `json:"offer_price,omitempty"`
	NormalPrice   float64  `json:"normal_price,omitempty"`
	StockQuantity int      `json:"stock_quantity"`
	Images        []string `json:"images,omitempty"`
	CategoryID    *int64   `json:"category_id,omitempty"`
	IsActive      bool     `json:"is_active"`
}

// Category is a top-level browse bucket.
type Category struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Image string `json:"image,omitempty"`
}

// Banner is a carousel slide managed upstream.
type Banner struct {
	ID           int64  `json:"id"`
	ImageURL     string `json:"image_url"`
	LinkURL      string `json:"link_url,omitempty"`
	IsActive     bool   `json:"is_active"`
	DisplayOrder int    `json:"display_order"`
}

// ComboProduct pairs a constituent product with its required quantity.
type ComboProduct struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

// Combo is a curated fixed-price bundle of several products.
type Combo struct {
	ID          int64          `json:"id"`
	Name        string         `json:"name"`
	Description string         `json:"description,omitempty"`
	ComboPrice  float64        `json:"combo_price"`
	IsActive    bool           `json:"is_active"`
	Products    []ComboProduct `json:"products"`
}

// EffectiveStock is the number of times the bundle can still be fulfilled,
// bounded by its scarcest constituent. A combo with no constituents cannot be
// fulfilled at all.
func (c Combo) EffectiveStock() int {
	if len(c.Products) == 0 {
		return 0
	}
	min := c.Products[0].Product.StockQuantity
	for _, p := range c.Products[1:] {
		if p.Product.StockQuantity < min {
			min = p.Product.StockQuantity
		}
	}
	return min
}

// ProductPage is one page of catalog products plus pagination metadata.
type ProductPage struct {
	Items []Product       `json:"items"`
	Meta  pagination.Meta `json:"meta"`
}

// ComboPage is one page of combos plus pagination metadata.
type ComboPage struct {
	Items []Combo         `json:"items"`
	Meta  pagination.Meta `json:"meta"`
}
