package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	pkgerrors "github.com/ovees/eleganza-backend/pkg/errors"
	"github.com/ovees/eleganza-backend/pkg/pagination"
)

const defaultTimeout = 10 * time.Second

var errBaseURLRequired = errors.New("catalog base url is required")

// Client consumes the remote catalog API. It is strictly read-only; the
// storefront never writes through it.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// Option configures optional client behavior.
type Option func(*Client)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// WithTimeout overrides the default request timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.httpClient.Timeout = timeout
		}
	}
}

// NewClient builds a catalog client for the given base URL.
func NewClient(baseURL string, opts ...Option) (*Client, error) {
	trimmed := strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if trimmed == "" {
		return nil, errBaseURLRequired
	}

	client := &Client{
		baseURL:    trimmed,
		httpClient: &http.Client{Timeout: defaultTimeout},
	}

	for _, opt := range opts {
		if opt != nil {
			opt(client)
		}
	}

	return client, nil
}

// ProductQuery captures the filters accepted by the products endpoint.
type ProductQuery struct {
	Pagination pagination.Params
	CategoryID *int64
	Search     string
	SortBy     string
	MinPrice   *float64
	MaxPrice   *float64
}

// Products fetches one page of products, optionally filtered and searched.
func (c *Client) Products(ctx context.Context, q ProductQuery) (*ProductPage, error) {
	params := pageValues(q.Pagination)
	params.Set("is_active", "true")
	if q.CategoryID != nil {
		params.Set("category_id", strconv.FormatInt(*q.CategoryID, 10))
	}
	if q.Search != "" {
		params.Set("search", q.Search)
	}
	if q.SortBy != "" {
		params.Set("sort_by", q.SortBy)
	}
	if q.MinPrice != nil {
		params.Set("min_price", strconv.FormatFloat(*q.MinPrice, 'f', -1, 64))
	}
	if q.MaxPrice != nil {
		params.Set("max_price", strconv.FormatFloat(*q.MaxPrice, 'f', -1, 64))
	}

	var page ProductPage
	if err := c.getJSON(ctx, "/products", params, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// Product fetches a single product by id.
func (c *Client) Product(ctx context.Context, id int64) (*Product, error) {
	var product Product
	if err := c.getJSON(ctx, "/products/"+strconv.FormatInt(id, 10), nil, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

// Combo fetches a single combo bundle by id.
func (c *Client) Combo(ctx context.Context, id int64) (*Combo, error) {
	var combo Combo
	if err := c.getJSON(ctx, "/combos/"+strconv.FormatInt(id, 10), nil, &combo); err != nil {
		return nil, err
	}
	return &combo, nil
}

// Collection fetches one page of a named storefront collection such as
// "99-store" or "199-store".
func (c *Client) Collection(ctx context.Context, slug string, p pagination.Params) (*ProductPage, error) {
	if strings.TrimSpace(slug) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "collection slug is required")
	}

	var page ProductPage
	if err := c.getJSON(ctx, "/products/collection/"+url.PathEscape(slug), pageValues(p), &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// NewArrivals fetches one page of recently added products.
func (c *Client) NewArrivals(ctx context.Context, p pagination.Params) (*ProductPage, error) {
	params := pageValues(p)
	params.Set("is_active", "true")

	var page ProductPage
	if err := c.getJSON(ctx, "/new-arrivals", params, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// Combos fetches one page of active combo bundles.
func (c *Client) Combos(ctx context.Context, p pagination.Params) (*ComboPage, error) {
	params := pageValues(p)
	params.Set("is_active", "true")

	var page ComboPage
	if err := c.getJSON(ctx, "/combos", params, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// Categories fetches the full category list.
func (c *Client) Categories(ctx context.Context) ([]Category, error) {
	var categories []Category
	if err := c.getJSON(ctx, "/categories", nil, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

// Banners fetches carousel banners, keeping only active ones sorted by their
// upstream display order.
func (c *Client) Banners(ctx context.Context) ([]Banner, error) {
	var banners []Banner
	if err := c.getJSON(ctx, "/banners", nil, &banners); err != nil {
		return nil, err
	}

	active := make([]Banner, 0, len(banners))
	for _, banner := range banners {
		if banner.IsActive {
			active = append(active, banner)
		}
	}
	sort.SliceStable(active, func(i, j int) bool {
		return active[i].DisplayOrder < active[j].DisplayOrder
	})
	return active, nil
}

func pageValues(p pagination.Params) url.Values {
	p = pagination.Normalize(p)
	params := url.Values{}
	params.Set("page", strconv.Itoa(p.Page))
	params.Set("page_size", strconv.Itoa(p.PageSize))
	return params
}

func (c *Client) getJSON(ctx context.Context, path string, params url.Values, dest any) error {
	endpoint := c.baseURL + path
	if len(params) > 0 {
		endpoint += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "build catalog request")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "call catalog api")
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return pkgerrors.New(pkgerrors.CodeNotFound, "catalog entry not found")
	}
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return pkgerrors.New(pkgerrors.CodeDependency, fmt.Sprintf("catalog api returned %d for %s", resp.StatusCode, path))
	}

	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "decode catalog response")
	}
	return nil
}
