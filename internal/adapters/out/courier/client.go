// Package courier implements the outbound HTTP client against the
// courier vendor's REST API. The client is stateless: credentials arrive
// with every call inside the settings, never from process configuration.
package courier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"shop/internal/core/ports"
	"shop/internal/pkg/errs"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

const serviceName = "courier"

const defaultTimeout = 15 * time.Second

// Client talks to the courier vendor over HTTP. Implements
// ports.CourierClient.
type Client struct {
	baseURL  string
	http     *http.Client
	validate *validator.Validate
}

// NewClient creates a courier client for the vendor API at baseURL.
func NewClient(baseURL string) (*Client, error) {
	if baseURL == "" {
		return nil, errs.NewValueIsRequiredError("baseURL")
	}

	return &Client{
		baseURL:  strings.TrimRight(baseURL, "/"),
		http:     &http.Client{Timeout: defaultTimeout},
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}, nil
}

type createShipmentPayload struct {
	HubID          string          `json:"hub_id"`
	RecipientName  string          `json:"recipient_name"`
	RecipientPhone string          `json:"recipient_phone"`
	Address        string          `json:"address"`
	City           string          `json:"city"`
	Pieces         int             `json:"pieces"`
	Weight         decimal.Decimal `json:"weight"`
	DeclaredValue  decimal.Decimal `json:"declared_value"`
	CODAmount      decimal.Decimal `json:"cod_amount"`
	Reference      string          `json:"reference"`
}

type createShipmentResponse struct {
	ShipmentID     string `json:"shipment_id" validate:"required"`
	TrackingNumber string `json:"tracking_number" validate:"required"`
	LabelURL       string `json:"label_url"`
}

// CreateShipment registers a shipment with the vendor.
func (c *Client) CreateShipment(
	ctx context.Context,
	settings ports.CourierSettings,
	req ports.CreateShipmentRequest,
) (*ports.CreateShipmentResult, error) {
	payload := createShipmentPayload{
		HubID:          settings.HubID,
		RecipientName:  req.RecipientName,
		RecipientPhone: req.RecipientPhone,
		Address:        req.Address,
		City:           req.City,
		Pieces:         req.Pieces,
		Weight:         req.Weight,
		DeclaredValue:  req.DeclaredValue,
		CODAmount:      req.CODAmount,
		Reference:      req.Reference,
	}

	var resp createShipmentResponse
	if err := c.do(ctx, settings, http.MethodPost, "/shipments", payload, &resp); err != nil {
		return nil, errs.NewExternalServiceErrorWithCause(serviceName, "create shipment", err)
	}

	return &ports.CreateShipmentResult{
		ShipmentID:     resp.ShipmentID,
		TrackingNumber: resp.TrackingNumber,
		LabelURL:       resp.LabelURL,
	}, nil
}

type trackingResponse struct {
	Status      string `json:"status" validate:"required"`
	Location    string `json:"location"`
	Checkpoints []struct {
		Status    string    `json:"status"`
		Message   string    `json:"message"`
		Location  string    `json:"location"`
		Timestamp time.Time `json:"timestamp"`
	} `json:"checkpoints"`
}

// TrackShipment queries the vendor's current view of a shipment.
func (c *Client) TrackShipment(
	ctx context.Context,
	settings ports.CourierSettings,
	trackingNumber string,
) (*ports.TrackingInfo, error) {
	path := "/shipments/" + url.PathEscape(trackingNumber) + "/track"

	var resp trackingResponse
	if err := c.do(ctx, settings, http.MethodGet, path, nil, &resp); err != nil {
		return nil, errs.NewExternalServiceErrorWithCause(serviceName, "track shipment", err)
	}

	info := &ports.TrackingInfo{
		Status:      resp.Status,
		Location:    resp.Location,
		Checkpoints: make([]ports.TrackingCheckpoint, 0, len(resp.Checkpoints)),
	}
	for _, cp := range resp.Checkpoints {
		info.Checkpoints = append(info.Checkpoints, ports.TrackingCheckpoint{
			Status:    cp.Status,
			Message:   cp.Message,
			Location:  cp.Location,
			Timestamp: cp.Timestamp,
		})
	}

	return info, nil
}

type labelResponse struct {
	LabelURL string `json:"label_url" validate:"required"`
}

// GetLabel fetches the label reference for a vendor shipment id.
func (c *Client) GetLabel(
	ctx context.Context,
	settings ports.CourierSettings,
	vendorShipmentID string,
) (string, error) {
	path := "/shipments/" + url.PathEscape(vendorShipmentID) + "/label"

	var resp labelResponse
	if err := c.do(ctx, settings, http.MethodGet, path, nil, &resp); err != nil {
		return "", errs.NewExternalServiceErrorWithCause(serviceName, "get label", err)
	}

	return resp.LabelURL, nil
}

type ratePayload struct {
	HubID     string          `json:"hub_id"`
	FromCity  string          `json:"from_city"`
	ToCity    string          `json:"to_city"`
	Weight    decimal.Decimal `json:"weight"`
	ItemValue decimal.Decimal `json:"item_value"`
}

type rateResponse struct {
	Amount        decimal.Decimal `json:"amount"`
	Currency      string          `json:"currency" validate:"required"`
	EstimatedDays int             `json:"estimated_days"`
}

// CalculateRate requests a price quote for a prospective shipment.
func (c *Client) CalculateRate(
	ctx context.Context,
	settings ports.CourierSettings,
	fromCity, toCity string,
	weight, itemValue decimal.Decimal,
) (*ports.RateQuote, error) {
	payload := ratePayload{
		HubID:     settings.HubID,
		FromCity:  fromCity,
		ToCity:    toCity,
		Weight:    weight,
		ItemValue: itemValue,
	}

	var resp rateResponse
	if err := c.do(ctx, settings, http.MethodPost, "/rates", payload, &resp); err != nil {
		return nil, errs.NewExternalServiceErrorWithCause(serviceName, "calculate rate", err)
	}

	return &ports.RateQuote{
		Amount:        resp.Amount,
		Currency:      resp.Currency,
		EstimatedDays: resp.EstimatedDays,
	}, nil
}

// CancelShipment cancels a shipment with the vendor.
func (c *Client) CancelShipment(
	ctx context.Context,
	settings ports.CourierSettings,
	vendorShipmentID string,
) error {
	path := "/shipments/" + url.PathEscape(vendorShipmentID) + "/cancel"

	if err := c.do(ctx, settings, http.MethodPost, path, nil, nil); err != nil {
		return errs.NewExternalServiceErrorWithCause(serviceName, "cancel shipment", err)
	}

	return nil
}

// do executes one authenticated round trip. Non-2xx statuses and
// malformed response bodies are errors; the vendor's error body text is
// carried in the cause for diagnostics.
func (c *Client) do(
	ctx context.Context,
	settings ports.CourierSettings,
	method, path string,
	payload, out any,
) error {
	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return err
		}
		body = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Api-Key", settings.APIKey)
	req.Header.Set("X-Api-Secret", settings.APISecret)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("vendor returned %d: %s", resp.StatusCode, strings.TrimSpace(string(raw)))
	}

	if out == nil {
		return nil
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("malformed vendor response: %w", err)
	}

	return c.validate.Struct(out)
}
