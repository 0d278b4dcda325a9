package httptransport

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Muskhoops/FRETXPRESS/services/booking-service/internal/carrier"
	"github.com/Muskhoops/FRETXPRESS/services/booking-service/internal/history"
	"github.com/Muskhoops/FRETXPRESS/services/booking-service/service"
	"github.com/Muskhoops/FRETXPRESS/services/booking-service/store"
)

var testNow = time.Date(2025, time.June, 18, 9, 0, 0, 0, time.UTC)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	svc := service.NewBookingService(store.NewMemoryStore(time.Hour), nil).
		WithClock(func() time.Time { return testNow })
	h := New(svc, history.NewService(history.NewMemoryStore(history.Seed)), carrier.NewService(), time.Second)
	srv := httptest.NewServer(h.Routes())
	t.Cleanup(srv.Close)
	return srv
}

func do(t *testing.T, srv *httptest.Server, method, path, body string) (*http.Response, map[string]any) {
	t.Helper()
	var rdr *bytes.Reader
	if body != "" {
		rdr = bytes.NewReader([]byte(body))
	} else {
		rdr = bytes.NewReader(nil)
	}
	req, err := http.NewRequest(method, srv.URL+path, rdr)
	require.NoError(t, err)
	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var out map[string]any
	if resp.StatusCode != http.StatusNoContent {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	}
	return resp, out
}

func errKind(body map[string]any) string {
	e, _ := body["error"].(map[string]any)
	k, _ := e["kind"].(string)
	return k
}

func TestBookingFlow(t *testing.T) {
	srv := newTestServer(t)

	resp, body := do(t, srv, http.MethodPost, "/bookings", `{"shipment_type":"package"}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	id := body["id"].(string)
	assert.Equal(t, "details", body["step"])
	assert.Equal(t, "Colis", body["shipment_title"])
	assert.Equal(t, false, body["can_continue"])

	resp, body = do(t, srv, http.MethodPost, "/bookings/"+id+"/details/continue", "")
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	assert.Equal(t, "step_incomplete", errKind(body))

	resp, body = do(t, srv, http.MethodPut, "/bookings/"+id+"/details", `{"volume":"2","weight":"150"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, true, body["can_continue"])
	vehicle := body["recommended_vehicle"].(map[string]any)
	assert.Equal(t, "Camion (jusqu'à 3.5T)", vehicle["name"])

	resp, _ = do(t, srv, http.MethodPost, "/bookings/"+id+"/details/continue", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, body = do(t, srv, http.MethodGet, "/bookings/"+id+"/schedule/options", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, body["dates"], 7)
	assert.Len(t, body["appointment_slots"], 11)

	resp, body = do(t, srv, http.MethodPut, "/bookings/"+id+"/schedule", `{"pickup_mode":"appointment","date":"2025-06-19"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, false, body["can_continue"])
	assert.Equal(t, "awaiting_time", body["schedule"].(map[string]any)["state"])

	resp, body = do(t, srv, http.MethodPut, "/bookings/"+id+"/schedule", `{"time":"07:00"}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "bad_request", errKind(body))

	resp, body = do(t, srv, http.MethodPut, "/bookings/"+id+"/schedule", `{"time":"09:00"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, true, body["can_continue"])

	resp, _ = do(t, srv, http.MethodPost, "/bookings/"+id+"/schedule/continue", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, body = do(t, srv, http.MethodGet, "/bookings/"+id+"/quote", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	total := body["total"].(map[string]any)
	assert.Equal(t, "800,000 DA", total["amount"])

	resp, body = do(t, srv, http.MethodPut, "/bookings/"+id+"/payment", `{"method":"cib","card_number":"4242424242424242"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, false, body["can_continue"])
	assert.NotContains(t, body["payment"], "card_number")
	assert.Equal(t, true, body["payment"].(map[string]any)["requires_card"])

	resp, body = do(t, srv, http.MethodPost, "/bookings/"+id+"/payment/continue", "")
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

	_, _ = do(t, srv, http.MethodPut, "/bookings/"+id+"/payment", `{"method":"edahabia"}`)
	resp, body = do(t, srv, http.MethodPost, "/bookings/"+id+"/payment/continue", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "3257-9821", body["order_number"])

	resp, body = do(t, srv, http.MethodGet, "/bookings/"+id, "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "not_found", errKind(body))
}

func TestBookingErrors(t *testing.T) {
	t.Parallel()
	srv := newTestServer(t)

	tests := []struct {
		name       string
		method     string
		path       string
		body       string
		wantStatus int
		wantKind   string
	}{
		{"invalid_json", http.MethodPost, "/bookings", `{"shipment_type":`, http.StatusBadRequest, "bad_request"},
		{"unknown_field", http.MethodPost, "/bookings", `{"type":"package"}`, http.StatusBadRequest, "bad_request"},
		{"unknown_type", http.MethodPost, "/bookings", `{"shipment_type":"boat"}`, http.StatusBadRequest, "bad_request"},
		{"missing_draft", http.MethodGet, "/bookings/nope", "", http.StatusNotFound, "not_found"},
		{"missing_online", http.MethodPut, "/carrier/status", `{}`, http.StatusBadRequest, "bad_request"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			resp, body := do(t, srv, tt.method, tt.path, tt.body)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)
			assert.Equal(t, tt.wantKind, errKind(body))
		})
	}
}

func TestStepLockedIsConflict(t *testing.T) {
	srv := newTestServer(t)
	_, body := do(t, srv, http.MethodPost, "/bookings", `{"shipment_type":"pallet"}`)
	id := body["id"].(string)

	resp, body := do(t, srv, http.MethodPut, "/bookings/"+id+"/payment", `{"method":"edahabia"}`)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "conflict", errKind(body))

	resp, _ = do(t, srv, http.MethodDelete, "/bookings/"+id, "")
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
}

func TestCatalogEndpoints(t *testing.T) {
	srv := newTestServer(t)

	_, body := do(t, srv, http.MethodGet, "/shipment-types", "")
	assert.Len(t, body["shipment_types"], 5)

	_, body = do(t, srv, http.MethodGet, "/payment-methods", "")
	assert.Len(t, body["payment_methods"], 2)

	_, body = do(t, srv, http.MethodGet, "/history", "")
	stats := body["stats"].(map[string]any)
	assert.EqualValues(t, 5, stats["total"])
	assert.EqualValues(t, 3, stats["delivered"])
	first := body["shipments"].([]any)[0].(map[string]any)
	assert.Equal(t, "Livré", first["status_label"])
	assert.Equal(t, "22 Juin 2025", first["date"])
	assert.Equal(t, "12,500 DA", first["price"])

	_, body = do(t, srv, http.MethodGet, "/carrier/nearby", "")
	assert.Len(t, body["shipments"], 3)

	resp, body := do(t, srv, http.MethodPut, "/carrier/status", `{"online":true}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "En ligne", body["label"])
}
