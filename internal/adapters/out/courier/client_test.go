package courier_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"shop/internal/adapters/out/courier"
	"shop/internal/core/ports"
	"shop/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSettings() ports.CourierSettings {
	return ports.CourierSettings{
		APIKey:        "key-1",
		APISecret:     "secret-1",
		HubID:         "HUB-7",
		WebhookSecret: "whsec",
		EnableB2C:     true,
		EnableB2B:     true,
		IsEnabled:     true,
	}
}

func TestNewClient_RequiresBaseURL(t *testing.T) {
	_, err := courier.NewClient("")
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestClient_CreateShipment_Success(t *testing.T) {
	var captured map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/shipments", r.URL.Path)
		assert.Equal(t, "key-1", r.Header.Get("X-Api-Key"))
		assert.Equal(t, "secret-1", r.Header.Get("X-Api-Secret"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"shipment_id": "VND-42",
			"tracking_number": "TRK-42",
			"label_url": "https://labels.example/TRK-42.pdf"
		}`))
	}))
	defer server.Close()

	client, err := courier.NewClient(server.URL)
	require.NoError(t, err)

	result, err := client.CreateShipment(t.Context(), testSettings(), ports.CreateShipmentRequest{
		RecipientName:  "Jane Smith",
		RecipientPhone: "+15550001",
		Address:        "12 Main St",
		City:           "Springfield",
		Pieces:         1,
		Weight:         decimal.NewFromFloat(1.5),
		DeclaredValue:  decimal.NewFromInt(2400),
		CODAmount:      decimal.NewFromInt(2400),
		Reference:      "SO-1001",
	})
	require.NoError(t, err)

	assert.Equal(t, "VND-42", result.ShipmentID)
	assert.Equal(t, "TRK-42", result.TrackingNumber)
	assert.Equal(t, "https://labels.example/TRK-42.pdf", result.LabelURL)

	assert.Equal(t, "HUB-7", captured["hub_id"])
	assert.Equal(t, "Jane Smith", captured["recipient_name"])
	assert.Equal(t, "SO-1001", captured["reference"])
}

func TestClient_CreateShipment_VendorRejection(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "destination not serviceable", http.StatusUnprocessableEntity)
	}))
	defer server.Close()

	client, err := courier.NewClient(server.URL)
	require.NoError(t, err)

	_, err = client.CreateShipment(t.Context(), testSettings(), ports.CreateShipmentRequest{
		RecipientName: "Jane Smith",
		Address:       "12 Main St",
		Pieces:        1,
		Weight:        decimal.NewFromFloat(1.5),
	})
	require.ErrorIs(t, err, errs.ErrExternalService)
	assert.Contains(t, err.Error(), "destination not serviceable")
}

func TestClient_CreateShipment_MissingTrackingNumber(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"shipment_id": "VND-42"}`))
	}))
	defer server.Close()

	client, err := courier.NewClient(server.URL)
	require.NoError(t, err)

	_, err = client.CreateShipment(t.Context(), testSettings(), ports.CreateShipmentRequest{
		RecipientName: "Jane Smith",
		Address:       "12 Main St",
		Pieces:        1,
		Weight:        decimal.NewFromFloat(1.5),
	})
	require.ErrorIs(t, err, errs.ErrExternalService)
}

func TestClient_TrackShipment_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/shipments/TRK-42/track", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"status": "in_transit",
			"location": "Springfield hub",
			"checkpoints": [
				{"status": "picked_up", "message": "picked up", "location": "warehouse", "timestamp": "2026-08-30T10:00:00Z"},
				{"status": "in_transit", "message": "departed facility", "location": "Springfield hub", "timestamp": "2026-08-30T16:00:00Z"}
			]
		}`))
	}))
	defer server.Close()

	client, err := courier.NewClient(server.URL)
	require.NoError(t, err)

	info, err := client.TrackShipment(t.Context(), testSettings(), "TRK-42")
	require.NoError(t, err)

	assert.Equal(t, "in_transit", info.Status)
	assert.Equal(t, "Springfield hub", info.Location)
	require.Len(t, info.Checkpoints, 2)
	assert.Equal(t, "picked_up", info.Checkpoints[0].Status)
	assert.Equal(t, "departed facility", info.Checkpoints[1].Message)
}

func TestClient_TrackShipment_MalformedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`<html>gateway timeout</html>`))
	}))
	defer server.Close()

	client, err := courier.NewClient(server.URL)
	require.NoError(t, err)

	_, err = client.TrackShipment(t.Context(), testSettings(), "TRK-42")
	require.ErrorIs(t, err, errs.ErrExternalService)
}

func TestClient_GetLabel_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/shipments/VND-42/label", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"label_url": "https://labels.example/TRK-42.pdf"}`))
	}))
	defer server.Close()

	client, err := courier.NewClient(server.URL)
	require.NoError(t, err)

	labelURL, err := client.GetLabel(t.Context(), testSettings(), "VND-42")
	require.NoError(t, err)
	assert.Equal(t, "https://labels.example/TRK-42.pdf", labelURL)
}

func TestClient_CalculateRate_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/rates", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"amount": "350.00", "currency": "USD", "estimated_days": 3}`))
	}))
	defer server.Close()

	client, err := courier.NewClient(server.URL)
	require.NoError(t, err)

	quote, err := client.CalculateRate(t.Context(), testSettings(),
		"Springfield", "Shelbyville",
		decimal.NewFromFloat(1.5), decimal.NewFromInt(2400))
	require.NoError(t, err)

	assert.True(t, quote.Amount.Equal(decimal.RequireFromString("350.00")))
	assert.Equal(t, "USD", quote.Currency)
	assert.Equal(t, 3, quote.EstimatedDays)
}

func TestClient_CancelShipment_Success(t *testing.T) {
	var called bool
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/shipments/VND-42/cancel", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	client, err := courier.NewClient(server.URL)
	require.NoError(t, err)

	require.NoError(t, client.CancelShipment(t.Context(), testSettings(), "VND-42"))
	assert.True(t, called)
}
