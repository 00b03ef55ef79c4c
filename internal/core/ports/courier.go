package ports

import (
	"context"
	"time"

	"shop/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// CourierSettings is the courier integration configuration. It is loaded
// fresh for every operation rather than cached for the process lifetime,
// so credential rotation and enable-flag flips take effect immediately.
type CourierSettings struct {
	APIKey        string
	APISecret     string
	HubID         string
	WebhookSecret string
	EnableB2C     bool
	EnableB2B     bool
	IsEnabled     bool
}

// EnsureConfigured fails fast with a NotConfiguredError when the
// integration is disabled or its credentials are absent.
func (s CourierSettings) EnsureConfigured() error {
	if !s.IsEnabled {
		return errs.NewNotConfiguredError("courier integration is disabled")
	}
	if s.APIKey == "" || s.APISecret == "" {
		return errs.NewNotConfiguredError("courier credentials are absent")
	}
	return nil
}

// EnsureChannelEnabled checks the per-channel enable flag for the buyer
// kind: organizational orders ship on the B2B channel, individual orders
// on the B2C channel.
func (s CourierSettings) EnsureChannelEnabled(organization bool) error {
	if organization && !s.EnableB2B {
		return errs.NewNotConfiguredError("courier B2B channel is disabled")
	}
	if !organization && !s.EnableB2C {
		return errs.NewNotConfiguredError("courier B2C channel is disabled")
	}
	return nil
}

// CourierSettingsProvider loads the courier settings for one operation.
type CourierSettingsProvider interface {
	Load(ctx context.Context) (CourierSettings, error)
}

// CreateShipmentRequest carries the shipment details sent to the vendor.
type CreateShipmentRequest struct {
	RecipientName  string
	RecipientPhone string
	Address        string
	City           string
	Pieces         int
	Weight         decimal.Decimal
	DeclaredValue  decimal.Decimal
	CODAmount      decimal.Decimal
	Reference      string
}

// CreateShipmentResult is the vendor's acceptance of a creation call.
type CreateShipmentResult struct {
	ShipmentID     string
	TrackingNumber string
	LabelURL       string
}

// TrackingCheckpoint is one event in the vendor's chronological tracking
// history.
type TrackingCheckpoint struct {
	Status    string
	Message   string
	Location  string
	Timestamp time.Time
}

// TrackingInfo is the vendor's current view of a shipment.
type TrackingInfo struct {
	Status      string
	Location    string
	Checkpoints []TrackingCheckpoint
}

// RateQuote is the vendor's price quote for a prospective shipment.
type RateQuote struct {
	Amount        decimal.Decimal
	Currency      string
	EstimatedDays int
}

// CourierClient is the outbound contract against the courier vendor's
// HTTP API. Every operation takes the settings explicitly: callers load
// them per request, and no operation reads ambient global state.
//
// Calls are blocking I/O; the underlying transport's timeout applies and
// no operation retries on its own.
type CourierClient interface {
	// CreateShipment registers a shipment with the vendor.
	CreateShipment(ctx context.Context, settings CourierSettings, req CreateShipmentRequest) (*CreateShipmentResult, error)

	// TrackShipment queries current status and event history. Read-only.
	TrackShipment(ctx context.Context, settings CourierSettings, trackingNumber string) (*TrackingInfo, error)

	// GetLabel fetches the label reference for a vendor shipment id. Read-only.
	GetLabel(ctx context.Context, settings CourierSettings, vendorShipmentID string) (string, error)

	// CalculateRate requests a price quote. Read-only, no persistence.
	CalculateRate(ctx context.Context, settings CourierSettings, fromCity, toCity string, weight, itemValue decimal.Decimal) (*RateQuote, error)

	// CancelShipment cancels a shipment with the vendor.
	CancelShipment(ctx context.Context, settings CourierSettings, vendorShipmentID string) error
}
