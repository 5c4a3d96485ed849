package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/ovees/eleganza-backend/api/responses"
	"github.com/ovees/eleganza-backend/api/validators"
	"github.com/ovees/eleganza-backend/pkg/db/models"
	"github.com/ovees/eleganza-backend/pkg/enums"
	pkgerrors "github.com/ovees/eleganza-backend/pkg/errors"
	"github.com/ovees/eleganza-backend/pkg/logger"
	"github.com/ovees/eleganza-backend/pkg/pagination"
	"github.com/ovees/eleganza-backend/pkg/types"
)

// OrdersService reads a session's order history.
type OrdersService interface {
	List(ctx context.Context, sessionID string, p pagination.Params) ([]models.OrderRecord, pagination.Meta, error)
	Get(ctx context.Context, sessionID string, orderID uuid.UUID) (*models.OrderRecord, error)
}

// ReorderStager stages a past order for the next cart read.
type ReorderStager interface {
	Stage(ctx context.Context, sessionID string, orderID uuid.UUID, mode enums.ReorderMode) error
}

type orderResponse struct {
	ID        uuid.UUID       `json:"id"`
	Items     types.LineItems `json:"items"`
	CreatedAt time.Time       `json:"created_at"`
}

func newOrderResponse(record models.OrderRecord) orderResponse {
	return orderResponse{
		ID:        record.ID,
		Items:     record.Items,
		CreatedAt: record.CreatedAt,
	}
}

// OrdersList returns the session's past orders, newest first.
func OrdersList(svc OrdersService, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sid, err := sessionID(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		params, err := validators.ParsePagination(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		records, meta, err := svc.List(r.Context(), sid, params)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		orders := make([]orderResponse, 0, len(records))
		for _, record := range records {
			orders = append(orders, newOrderResponse(record))
		}
		responses.WriteSuccess(w, map[string]any{"orders": orders, "meta": meta})
	}
}

// OrderDetail returns one past order.
func OrderDetail(svc OrdersService, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sid, err := sessionID(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		orderID, err := parseOrderID(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		record, err := svc.Get(r.Context(), sid, orderID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, newOrderResponse(*record))
	}
}

type reorderRequest struct {
	Mode string `json:"mode" validate:"omitempty,oneof=merge replace"`
}

// OrderReorder stages a past order to be folded into the cart on its next
// read. Merge is the default mode.
func OrderReorder(svc ReorderStager, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sid, err := sessionID(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		orderID, err := parseOrderID(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload reorderRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		mode := enums.ReorderModeMerge
		if payload.Mode != "" {
			mode, err = enums.ParseReorderMode(payload.Mode)
			if err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid reorder mode"))
				return
			}
		}

		if err := svc.Stage(r.Context(), sid, orderID, mode); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusAccepted, map[string]string{
			"status": "staged",
			"mode":   mode.String(),
		})
	}
}

func parseOrderID(r *http.Request) (uuid.UUID, error) {
	raw := chi.URLParam(r, "orderId")
	orderID, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid order id")
	}
	return orderID, nil
}
