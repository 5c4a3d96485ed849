package pagination

const (
	// DefaultPageSize is the standard page size when one is not provided.
	DefaultPageSize = 20
	// MaxPageSize caps how many rows any catalog query can request.
	MaxPageSize = 100
)

// Params holds page pagination inputs from controllers or services.
type Params struct {
	Page     int
	PageSize int
}

// Meta mirrors the pagination envelope returned by the catalog API.
type Meta struct {
	Page       int  `json:"page"`
	PageSize   int  `json:"page_size"`
	TotalItems int  `json:"total_items"`
	TotalPages int  `json:"total_pages"`
	HasNext    bool `json:"has_next"`
}

// BuildMeta derives the response metadata for a page of a known total.
func BuildMeta(p Params, total int64) Meta {
	p = Normalize(p)
	pages := int(total) / p.PageSize
	if int(total)%p.PageSize != 0 {
		pages++
	}
	return Meta{
		Page:       p.Page,
		PageSize:   p.PageSize,
		TotalItems: int(total),
		TotalPages: pages,
		HasNext:    p.Page < pages,
	}
}

// Normalize enforces the configured defaults and maximums.
func Normalize(p Params) Params {
	if p.Page <= 0 {
		p.Page = 1
	}
	if p.PageSize <= 0 {
		p.PageSize = DefaultPageSize
	}
	if p.PageSize > MaxPageSize {
		p.PageSize = MaxPageSize
	}
	return p
}
