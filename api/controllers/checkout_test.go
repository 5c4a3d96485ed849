package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ovees/eleganza-backend/internal/checkout"
	pkgerrors "github.com/ovees/eleganza-backend/pkg/errors"
	"github.com/ovees/eleganza-backend/pkg/types"
)

func TestCheckoutSummaryQuotesCart(t *testing.T) {
	svc := &stubCheckout{items: types.LineItems{{Key: "1", UnitPrice: 600, Quantity: 1}}}

	rec := httptest.NewRecorder()
	CheckoutSummary(svc, testLogger()).ServeHTTP(rec, withSession(httptest.NewRequest(http.MethodGet, "/api/v1/checkout/summary", nil)))

	require.Equal(t, http.StatusOK, rec.Code)

	var envelope struct {
		Data struct {
			Summary checkout.Summary `json:"summary"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.Equal(t, 600.0, envelope.Data.Summary.Subtotal)
	assert.True(t, envelope.Data.Summary.FreeDelivery)
}

func TestCheckoutReturnsCreatedWithHandoff(t *testing.T) {
	svc := &stubCheckout{result: &checkout.Result{
		OrderID:     "order-1",
		WhatsAppURL: "https://wa.me/918129690147?text=hi",
	}}

	rec := httptest.NewRecorder()
	Checkout(svc, testLogger()).ServeHTTP(rec, withSession(httptest.NewRequest(http.MethodPost, "/api/v1/checkout", nil)))

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "wa.me")
}

func TestCheckoutEmptyCartIs400(t *testing.T) {
	svc := &stubCheckout{err: pkgerrors.New(pkgerrors.CodeValidation, "cart is empty")}

	rec := httptest.NewRecorder()
	Checkout(svc, testLogger()).ServeHTTP(rec, withSession(httptest.NewRequest(http.MethodPost, "/api/v1/checkout", nil)))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "cart is empty")
}
