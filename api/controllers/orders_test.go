package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ovees/eleganza-backend/pkg/db/models"
	"github.com/ovees/eleganza-backend/pkg/enums"
	"github.com/ovees/eleganza-backend/pkg/types"
)

func ordersRouter(svc OrdersService, stager ReorderStager) http.Handler {
	router := chi.NewRouter()
	router.Get("/orders", OrdersList(svc, testLogger()))
	router.Get("/orders/{orderId}", OrderDetail(svc, testLogger()))
	router.Post("/orders/{orderId}/reorder", OrderReorder(stager, testLogger()))
	return router
}

func TestOrdersListReturnsHistory(t *testing.T) {
	svc := &stubOrdersService{records: []models.OrderRecord{
		{ID: uuid.New(), SessionID: "test-session", Items: types.LineItems{{Key: "1", Quantity: 2}}, CreatedAt: time.Now()},
	}}

	req := withSession(httptest.NewRequest(http.MethodGet, "/orders?page=1", nil))
	rec := httptest.NewRecorder()
	ordersRouter(svc, &stubStager{}).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var envelope struct {
		Data struct {
			Orders []orderResponse `json:"orders"`
			Meta   struct {
				TotalItems int `json:"total_items"`
			} `json:"meta"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	require.Len(t, envelope.Data.Orders, 1)
	assert.Equal(t, 1, envelope.Data.Meta.TotalItems)
}

func TestOrdersListRejectsBadPagination(t *testing.T) {
	req := withSession(httptest.NewRequest(http.MethodGet, "/orders?page=abc", nil))
	rec := httptest.NewRecorder()
	ordersRouter(&stubOrdersService{}, &stubStager{}).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestOrderDetailUnknownIDIs404(t *testing.T) {
	req := withSession(httptest.NewRequest(http.MethodGet, "/orders/"+uuid.NewString(), nil))
	rec := httptest.NewRecorder()
	ordersRouter(&stubOrdersService{}, &stubStager{}).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestOrderDetailMalformedIDIs400(t *testing.T) {
	req := withSession(httptest.NewRequest(http.MethodGet, "/orders/not-a-uuid", nil))
	rec := httptest.NewRecorder()
	ordersRouter(&stubOrdersService{}, &stubStager{}).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestOrderReorderDefaultsToMerge(t *testing.T) {
	stager := &stubStager{}
	orderID := uuid.New()

	req := withSession(httptest.NewRequest(http.MethodPost, "/orders/"+orderID.String()+"/reorder",
		strings.NewReader(`{}`)))
	rec := httptest.NewRecorder()
	ordersRouter(&stubOrdersService{}, stager).ServeHTTP(rec, req)

	require.Equal(t, http.StatusAccepted, rec.Code)
	assert.Equal(t, orderID, stager.orderID)
	assert.Equal(t, enums.ReorderModeMerge, stager.mode)
}

func TestOrderReorderReplaceMode(t *testing.T) {
	stager := &stubStager{}

	req := withSession(httptest.NewRequest(http.MethodPost, "/orders/"+uuid.NewString()+"/reorder",
		strings.NewReader(`{"mode": "replace"}`)))
	rec := httptest.NewRecorder()
	ordersRouter(&stubOrdersService{}, stager).ServeHTTP(rec, req)

	require.Equal(t, http.StatusAccepted, rec.Code)
	assert.Equal(t, enums.ReorderModeReplace, stager.mode)
}

func TestOrderReorderRejectsUnknownMode(t *testing.T) {
	req := withSession(httptest.NewRequest(http.MethodPost, "/orders/"+uuid.NewString()+"/reorder",
		strings.NewReader(`{"mode": "append"}`)))
	rec := httptest.NewRecorder()
	ordersRouter(&stubOrdersService{}, &stubStager{}).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
