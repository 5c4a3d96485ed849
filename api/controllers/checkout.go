package controllers

import (
	"context"
	"net/http"

	"github.com/ovees/eleganza-backend/api/responses"
	"github.com/ovees/eleganza-backend/internal/checkout"
	"github.com/ovees/eleganza-backend/pkg/logger"
	"github.com/ovees/eleganza-backend/pkg/types"
)

// CheckoutService prices and commits session carts.
type CheckoutService interface {
	Quote(ctx context.Context, sessionID string) (types.LineItems, checkout.Summary)
	Checkout(ctx context.Context, sessionID string) (*checkout.Result, error)
}

// CheckoutSummary prices the cart without committing anything.
func CheckoutSummary(svc CheckoutService, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sid, err := sessionID(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		items, summary := svc.Quote(r.Context(), sid)
		responses.WriteSuccess(w, map[string]any{"items": items, "summary": summary})
	}
}

// Checkout records the cart as an order and returns the WhatsApp handoff.
func Checkout(svc CheckoutService, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sid, err := sessionID(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		result, err := svc.Checkout(r.Context(), sid)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, result)
	}
}
