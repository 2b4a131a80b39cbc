package api_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tallyworks/receiptor/pkg/api"
	"github.com/tallyworks/receiptor/pkg/receipt"
	"github.com/tallyworks/receiptor/pkg/store"
)

func newTestService(t *testing.T) *api.ReceiptService {
	t.Helper()
	v, err := receipt.NewValidator()
	require.NoError(t, err)
	return api.NewReceiptService(v, store.New(), nil)
}

const cornerMarketReceipt = `{
	"retailer": "M&M Corner Market",
	"purchaseDate": "2022-03-20",
	"purchaseTime": "14:33",
	"total": "9.00",
	"items": [
		{"shortDescription": "Gatorade", "price": "2.25"},
		{"shortDescription": "Gatorade", "price": "2.25"},
		{"shortDescription": "Gatorade", "price": "2.25"},
		{"shortDescription": "Gatorade", "price": "2.25"}
	]
}`

func TestProcessThenLookup(t *testing.T) {
	svc := newTestService(t)
	mux := svc.Routes()

	req := httptest.NewRequest(http.MethodPost, "/receipts/process", strings.NewReader(cornerMarketReceipt))
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var created struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&created))
	require.NotEmpty(t, created.ID)

	lookup := httptest.NewRequest(http.MethodGet, "/receipts/"+created.ID+"/points", nil)
	w = httptest.NewRecorder()
	mux.ServeHTTP(w, lookup)

	require.Equal(t, http.StatusOK, w.Code)
	var scored struct {
		Points int `json:"points"`
	}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&scored))
	assert.Equal(t, 109, scored.Points)
}

func TestProcess_InvalidReceipt(t *testing.T) {
	svc := newTestService(t)
	mux := svc.Routes()

	bodies := map[string]string{
		"not json":      `{{{`,
		"missing field": `{"retailer": "Store"}`,
		"numeric total": `{
			"retailer": "Store", "purchaseDate": "2022-01-01", "purchaseTime": "13:01",
			"total": 1.00, "items": [{"shortDescription": "a", "price": "1.00"}]
		}`,
		"bad date": `{
			"retailer": "Store", "purchaseDate": "2023-02-30", "purchaseTime": "13:01",
			"total": "1.00", "items": [{"shortDescription": "a", "price": "1.00"}]
		}`,
	}

	for name, body := range bodies {
		t.Run(name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/receipts/process", strings.NewReader(body))
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.JSONEq(t, `{"description": "The receipt is invalid."}`, w.Body.String())
		})
	}
}

func TestPoints_UnknownID(t *testing.T) {
	svc := newTestService(t)
	mux := svc.Routes()

	req := httptest.NewRequest(http.MethodGet, "/receipts/nonexistent-id/points", nil)
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"description": "No receipt found for that ID."}`, w.Body.String())
}

func TestMethodNotAllowed(t *testing.T) {
	svc := newTestService(t)
	mux := svc.Routes()

	req := httptest.NewRequest(http.MethodGet, "/receipts/process", nil)
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)

	req = httptest.NewRequest(http.MethodPost, "/receipts/some-id/points", nil)
	w = httptest.NewRecorder()
	mux.ServeHTTP(w, req)
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}

func TestLiveness(t *testing.T) {
	svc := newTestService(t)
	mux := svc.Routes()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Body.String())
}
