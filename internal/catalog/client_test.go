package catalog

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ovees/eleganza-backend/pkg/pagination"
)

func TestProductsForwardsFiltersAndParsesMeta(t *testing.T) {
	var gotQuery map[string]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/products", r.URL.Path)
		gotQuery = map[string]string{}
		for key := range r.URL.Query() {
			gotQuery[key] = r.URL.Query().Get(key)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"items": [
				{"id": 5, "name": "Gold Necklace", "offer_price": 213, "normal_price": 999, "stock_quantity": 4, "is_active": true}
			],
			"meta": {"page": 2, "page_size": 20, "total_items": 41, "total_pages": 3, "has_next": true}
		}`))
	}))
	defer server.Close()

	client, err := NewClient(server.URL)
	require.NoError(t, err)

	categoryID := int64(7)
	page, err := client.Products(context.Background(), ProductQuery{
		Pagination: pagination.Params{Page: 2, PageSize: 20},
		CategoryID: &categoryID,
		Search:     "necklace",
		SortBy:     "price_asc",
	})
	require.NoError(t, err)

	assert.Equal(t, "2", gotQuery["page"])
	assert.Equal(t, "20", gotQuery["page_size"])
	assert.Equal(t, "true", gotQuery["is_active"])
	assert.Equal(t, "7", gotQuery["category_id"])
	assert.Equal(t, "necklace", gotQuery["search"])
	assert.Equal(t, "price_asc", gotQuery["sort_by"])

	require.Len(t, page.Items, 1)
	assert.Equal(t, "Gold Necklace", page.Items[0].Name)
	assert.Equal(t, 213.0, page.Items[0].OfferPrice)
	assert.True(t, page.Meta.HasNext)
	assert.Equal(t, 3, page.Meta.TotalPages)
}

func TestProductsNormalizesPagination(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "1", r.URL.Query().Get("page"))
		assert.Equal(t, "20", r.URL.Query().Get("page_size"))
		w.Write([]byte(`{"items": [], "meta": {"page": 1}}`))
	}))
	defer server.Close()

	client, err := NewClient(server.URL)
	require.NoError(t, err)

	_, err = client.Products(context.Background(), ProductQuery{})
	require.NoError(t, err)
}

func TestCombosEffectiveStockIsMinConstituent(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/combos", r.URL.Path)
		w.Write([]byte(`{
			"items": [{
				"id": 3,
				"name": "Bridal Set",
				"combo_price": 450,
				"is_active": true,
				"products": [
					{"product": {"id": 1, "name": "Ring", "stock_quantity": 5}, "quantity": 1},
					{"product": {"id": 2, "name": "Chain", "stock_quantity": 2}, "quantity": 2},
					{"product": {"id": 3, "name": "Stud", "stock_quantity": 8}, "quantity": 1}
				]
			}],
			"meta": {"page": 1, "total_pages": 1}
		}`))
	}))
	defer server.Close()

	client, err := NewClient(server.URL)
	require.NoError(t, err)

	page, err := client.Combos(context.Background(), pagination.Params{Page: 1, PageSize: 20})
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, 2, page.Items[0].EffectiveStock())
}

func TestEffectiveStockEmptyCombo(t *testing.T) {
	assert.Equal(t, 0, Combo{}.EffectiveStock())
}

func TestBannersFilterInactiveAndSortByDisplayOrder(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/banners", r.URL.Path)
		w.Write([]byte(`[
			{"id": 1, "image_url": "a.jpg", "is_active": true, "display_order": 3},
			{"id": 2, "image_url": "b.jpg", "is_active": false, "display_order": 1},
			{"id": 3, "image_url": "c.jpg", "is_active": true, "display_order": 2}
		]`))
	}))
	defer server.Close()

	client, err := NewClient(server.URL)
	require.NoError(t, err)

	banners, err := client.Banners(context.Background())
	require.NoError(t, err)
	require.Len(t, banners, 2)
	assert.Equal(t, int64(3), banners[0].ID)
	assert.Equal(t, int64(1), banners[1].ID)
}

func TestProductByID(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/products/12", r.URL.Path)
		w.Write([]byte(`{"id": 12, "name": "Gold Necklace", "offer_price": 213}`))
	}))
	defer server.Close()

	client, err := NewClient(server.URL)
	require.NoError(t, err)

	product, err := client.Product(context.Background(), 12)
	require.NoError(t, err)
	assert.Equal(t, "Gold Necklace", product.Name)
}

func TestProductByIDNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer server.Close()

	client, err := NewClient(server.URL)
	require.NoError(t, err)

	_, err = client.Product(context.Background(), 999)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "NOT_FOUND")
}

func TestCollectionRequiresSlug(t *testing.T) {
	client, err := NewClient("http://localhost:1")
	require.NoError(t, err)

	_, err = client.Collection(context.Background(), "  ", pagination.Params{})
	require.Error(t, err)
}

func TestUpstreamErrorSurfacesAsDependencyFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusBadGateway)
	}))
	defer server.Close()

	client, err := NewClient(server.URL)
	require.NoError(t, err)

	_, err = client.Categories(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DEPENDENCY_ERROR")
}

func TestNewClientRequiresBaseURL(t *testing.T) {
	_, err := NewClient("   ")
	require.Error(t, err)
}
