package controllers

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/ovees/eleganza-backend/api/responses"
	"github.com/ovees/eleganza-backend/api/validators"
	"github.com/ovees/eleganza-backend/internal/catalog"
	pkgerrors "github.com/ovees/eleganza-backend/pkg/errors"
	"github.com/ovees/eleganza-backend/pkg/logger"
	"github.com/ovees/eleganza-backend/pkg/pagination"
)

// CatalogService is the read-only upstream catalog surface the storefront
// proxies.
type CatalogService interface {
	Products(ctx context.Context, q catalog.ProductQuery) (*catalog.ProductPage, error)
	Product(ctx context.Context, id int64) (*catalog.Product, error)
	Collection(ctx context.Context, slug string, p pagination.Params) (*catalog.ProductPage, error)
	NewArrivals(ctx context.Context, p pagination.Params) (*catalog.ProductPage, error)
	Combos(ctx context.Context, p pagination.Params) (*catalog.ComboPage, error)
	Combo(ctx context.Context, id int64) (*catalog.Combo, error)
	Categories(ctx context.Context) ([]catalog.Category, error)
	Banners(ctx context.Context) ([]catalog.Banner, error)
}

// CatalogProducts lists products with optional category, search, sort and
// price filters forwarded upstream.
func CatalogProducts(svc CatalogService, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		params, err := validators.ParsePagination(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		query := catalog.ProductQuery{
			Pagination: params,
			Search:     strings.TrimSpace(r.URL.Query().Get("search")),
			SortBy:     strings.TrimSpace(r.URL.Query().Get("sort_by")),
		}

		if raw := strings.TrimSpace(r.URL.Query().Get("category_id")); raw != "" {
			categoryID, err := strconv.ParseInt(raw, 10, 64)
			if err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "category_id must be numeric"))
				return
			}
			query.CategoryID = &categoryID
		}
		if query.MinPrice, err = validators.ParseQueryFloat(r, "min_price"); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		if query.MaxPrice, err = validators.ParseQueryFloat(r, "max_price"); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		page, err := svc.Products(r.Context(), query)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, page)
	}
}

// CatalogProduct returns one product by id.
func CatalogProduct(svc CatalogService, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parseCatalogID(r, "productId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		product, err := svc.Product(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, product)
	}
}

// CatalogCollection lists one of the named storefront collections.
func CatalogCollection(svc CatalogService, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		params, err := validators.ParsePagination(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		page, err := svc.Collection(r.Context(), chi.URLParam(r, "slug"), params)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, page)
	}
}

// CatalogNewArrivals lists recently added products.
func CatalogNewArrivals(svc CatalogService, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		params, err := validators.ParsePagination(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		page, err := svc.NewArrivals(r.Context(), params)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, page)
	}
}

// CatalogCombos lists active combo bundles.
func CatalogCombos(svc CatalogService, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		params, err := validators.ParsePagination(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		page, err := svc.Combos(r.Context(), params)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, page)
	}
}

// CatalogCombo returns one combo by id.
func CatalogCombo(svc CatalogService, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parseCatalogID(r, "comboId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		combo, err := svc.Combo(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, combo)
	}
}

// CatalogCategories lists browse categories.
func CatalogCategories(svc CatalogService, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		categories, err := svc.Categories(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, categories)
	}
}

// CatalogBanners lists active carousel banners in display order.
func CatalogBanners(svc CatalogService, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		banners, err := svc.Banners(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, banners)
	}
}

func parseCatalogID(r *http.Request, param string) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, param), 10, 64)
	if err != nil {
		return 0, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid catalog id")
	}
	return id, nil
}
