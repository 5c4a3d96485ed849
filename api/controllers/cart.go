package controllers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ovees/eleganza-backend/api/middleware"
	"github.com/ovees/eleganza-backend/api/responses"
	"github.com/ovees/eleganza-backend/api/validators"
	cartsvc "github.com/ovees/eleganza-backend/internal/cart"
	"github.com/ovees/eleganza-backend/internal/catalog"
	"github.com/ovees/eleganza-backend/internal/checkout"
	pkgerrors "github.com/ovees/eleganza-backend/pkg/errors"
	"github.com/ovees/eleganza-backend/pkg/logger"
	"github.com/ovees/eleganza-backend/pkg/types"
)

// CartService is the mutation surface the cart controllers drive.
type CartService interface {
	Add(ctx context.Context, sessionID string, item types.LineItem, delta int) types.LineItems
	SetQuantity(ctx context.Context, sessionID, key string, quantity int) types.LineItems
	Remove(ctx context.Context, sessionID, key string) types.LineItems
	Replace(ctx context.Context, sessionID string, items types.LineItems) types.LineItems
	Clear(ctx context.Context, sessionID string) error
}

// CartHydrator folds any staged reorder into the cart before it is read.
type CartHydrator interface {
	Hydrate(ctx context.Context, sessionID string) (types.LineItems, bool)
}

// CatalogSnapshotter resolves catalog entries when a new line is created.
type CatalogSnapshotter interface {
	Product(ctx context.Context, id int64) (*catalog.Product, error)
	Combo(ctx context.Context, id int64) (*catalog.Combo, error)
}

type cartResponse struct {
	Items          types.LineItems  `json:"items"`
	Summary        checkout.Summary `json:"summary"`
	ReorderApplied bool             `json:"reorder_applied,omitempty"`
}

func newCartResponse(items types.LineItems, reorderApplied bool) cartResponse {
	return cartResponse{
		Items:          items,
		Summary:        checkout.Summarize(items),
		ReorderApplied: reorderApplied,
	}
}

func sessionID(r *http.Request) (string, error) {
	sid := middleware.SessionIDFromContext(r.Context())
	if sid == "" {
		return "", pkgerrors.New(pkgerrors.CodeInternal, "session missing")
	}
	return sid, nil
}

// CartFetch returns the cart, applying any pending reorder first.
func CartFetch(hydrator CartHydrator, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sid, err := sessionID(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		items, applied := hydrator.Hydrate(r.Context(), sid)
		responses.WriteSuccess(w, newCartResponse(items, applied))
	}
}

type addItemRequest struct {
	ID       int64 `json:"id" validate:"required"`
	IsCombo  bool  `json:"is_combo"`
	Quantity *int  `json:"quantity"`
}

// CartAddItem adjusts a line's quantity by a delta, defaulting to one. New
// lines are seeded from a fresh catalog snapshot; decrements on existing
// lines never touch the catalog.
func CartAddItem(svc CartService, snapshots CatalogSnapshotter, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sid, err := sessionID(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload addItemRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		delta := 1
		if payload.Quantity != nil {
			delta = *payload.Quantity
		}
		if delta == 0 {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "quantity delta cannot be zero"))
			return
		}

		item := types.LineItem{Key: cartsvc.KeyFor(payload.ID, payload.IsCombo)}
		if delta > 0 {
			item, err = snapshotLine(r.Context(), snapshots, payload.ID, payload.IsCombo)
			if err != nil {
				responses.WriteError(r.Context(), logg, w, err)
				return
			}
		}

		items := svc.Add(r.Context(), sid, item, delta)
		responses.WriteSuccess(w, newCartResponse(items, false))
	}
}

func snapshotLine(ctx context.Context, snapshots CatalogSnapshotter, id int64, isCombo bool) (types.LineItem, error) {
	if isCombo {
		combo, err := snapshots.Combo(ctx, id)
		if err != nil {
			return types.LineItem{}, err
		}
		return cartsvc.SnapshotCombo(*combo), nil
	}
	product, err := snapshots.Product(ctx, id)
	if err != nil {
		return types.LineItem{}, err
	}
	return cartsvc.SnapshotProduct(*product), nil
}

type setQuantityRequest struct {
	Quantity *int `json:"quantity" validate:"required"`
}

// CartSetQuantity pins a line to an absolute quantity. Zero removes the line.
func CartSetQuantity(svc CartService, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sid, err := sessionID(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		key := chi.URLParam(r, "itemKey")
		if key == "" {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "item key is required"))
			return
		}

		var payload setQuantityRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		items := svc.SetQuantity(r.Context(), sid, key, *payload.Quantity)
		responses.WriteSuccess(w, newCartResponse(items, false))
	}
}

// CartRemoveItem drops a line from the cart.
func CartRemoveItem(svc CartService, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sid, err := sessionID(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		key := chi.URLParam(r, "itemKey")
		if key == "" {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "item key is required"))
			return
		}

		items := svc.Remove(r.Context(), sid, key)
		responses.WriteSuccess(w, newCartResponse(items, false))
	}
}

type replaceCartRequest struct {
	Items []types.LineItem `json:"items" validate:"required,dive"`
}

// CartReplace swaps the whole snapshot, trusting the client's line items.
func CartReplace(svc CartService, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sid, err := sessionID(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload replaceCartRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		items := svc.Replace(r.Context(), sid, payload.Items)
		responses.WriteSuccess(w, newCartResponse(items, false))
	}
}

// CartClear empties the cart.
func CartClear(svc CartService, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sid, err := sessionID(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := svc.Clear(r.Context(), sid); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, newCartResponse(types.LineItems{}, false))
	}
}
