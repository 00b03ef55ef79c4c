package shipment

import (
	"errors"
	"time"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ErrShipmentIsNotConstructed is returned when a Shipment instance was
// not created through NewShipment or RestoreShipment.
var ErrShipmentIsNotConstructed = errors.New("Shipment must be created via NewShipment or RestoreShipment")

// MaxRetryAttempts is the hard ceiling on shipment creation retries.
// A fourth attempt requires operator-level manual intervention.
const MaxRetryAttempts = 3

// Shipment is the courier shipment created for an order, at most one per
// order. The vendor assigns shipmentID and trackingNumber on acceptance;
// both the gateway client (on retry) and the webhook receiver (on vendor
// callback) update the row afterwards.
type Shipment struct {
	id               kernel.UUID
	orderID          kernel.UUID
	vendorShipmentID string
	trackingNumber   string
	status           Status
	labelURL         string
	weight           decimal.Decimal
	lastStatusUpdate time.Time
	errorMessage     *string
	retryCount       int

	isConstructed bool
}

// NewShipment creates a shipment after the vendor accepted the creation
// call, in the created status.
func NewShipment(
	id, orderID kernel.UUID,
	vendorShipmentID, trackingNumber string,
	weight decimal.Decimal,
	now time.Time,
) (*Shipment, error) {
	if err := errors.Join(id.Validate(), orderID.Validate()); err != nil {
		return nil, err
	}
	if vendorShipmentID == "" {
		return nil, errs.NewValueIsRequiredError("vendorShipmentID")
	}
	if trackingNumber == "" {
		return nil, errs.NewValueIsRequiredError("trackingNumber")
	}

	return &Shipment{
		id:               id,
		orderID:          orderID,
		vendorShipmentID: vendorShipmentID,
		trackingNumber:   trackingNumber,
		status:           StatusCreated,
		weight:           weight,
		lastStatusUpdate: now,
		isConstructed:    true,
	}, nil
}

// RestoreShipment reconstructs a shipment from persistence.
func RestoreShipment(
	id, orderID kernel.UUID,
	vendorShipmentID, trackingNumber string,
	status Status,
	labelURL string,
	weight decimal.Decimal,
	lastStatusUpdate time.Time,
	errorMessage *string,
	retryCount int,
) (*Shipment, error) {
	if err := errors.Join(id.Validate(), orderID.Validate(), status.Validate()); err != nil {
		return nil, err
	}

	return &Shipment{
		id:               id,
		orderID:          orderID,
		vendorShipmentID: vendorShipmentID,
		trackingNumber:   trackingNumber,
		status:           status,
		labelURL:         labelURL,
		weight:           weight,
		lastStatusUpdate: lastStatusUpdate,
		errorMessage:     errorMessage,
		retryCount:       retryCount,
		isConstructed:    true,
	}, nil
}

// Validate ensures the Shipment was created through a constructor.
func (s *Shipment) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrShipmentIsNotConstructed
	}
	return nil
}

// ID returns the local shipment identifier.
func (s *Shipment) ID() kernel.UUID { return s.id }

// OrderID returns the identifier of the owning order.
func (s *Shipment) OrderID() kernel.UUID { return s.orderID }

// VendorShipmentID returns the vendor-assigned shipment id.
func (s *Shipment) VendorShipmentID() string { return s.vendorShipmentID }

// TrackingNumber returns the vendor-assigned tracking number, the
// external lookup key.
func (s *Shipment) TrackingNumber() string { return s.trackingNumber }

// Status returns the current delivery status.
func (s *Shipment) Status() Status { return s.status }

// LabelURL returns the shipping label reference, possibly empty.
func (s *Shipment) LabelURL() string { return s.labelURL }

// Weight returns the declared package weight.
func (s *Shipment) Weight() decimal.Decimal { return s.weight }

// LastStatusUpdate returns when the status last changed.
func (s *Shipment) LastStatusUpdate() time.Time { return s.lastStatusUpdate }

// ErrorMessage returns the last vendor failure message, nil when clean.
func (s *Shipment) ErrorMessage() *string { return s.errorMessage }

// RetryCount returns how many creation retries were consumed.
func (s *Shipment) RetryCount() int { return s.retryCount }

// ApplyVendorStatus applies a mapped vendor status to the shipment.
// Writes are last-write-wins: webhook deliveries carry no ordering
// guarantee and are not resequenced here.
func (s *Shipment) ApplyVendorStatus(status Status, now time.Time) error {
	if err := status.Validate(); err != nil {
		return err
	}

	s.status = status
	s.lastStatusUpdate = now
	return nil
}

// AttachLabel records the label reference fetched from the vendor.
func (s *Shipment) AttachLabel(labelURL string) error {
	if labelURL == "" {
		return errs.NewValueIsRequiredError("labelURL")
	}
	s.labelURL = labelURL
	return nil
}

// RecordFailure notes a failed vendor creation attempt: the retry counter
// is incremented and the vendor's message is kept for the operator.
func (s *Shipment) RecordFailure(message string, now time.Time) {
	s.retryCount++
	s.errorMessage = &message
	s.status = StatusFailed
	s.lastStatusUpdate = now
}

// EnsureRetryable rejects a retry once the counter reached the ceiling.
// The rejected call mutates nothing.
func (s *Shipment) EnsureRetryable() error {
	if s.retryCount >= MaxRetryAttempts {
		return errs.NewRetryExhaustedError("shipment "+s.trackingNumber, s.retryCount, MaxRetryAttempts)
	}
	return nil
}

// CompleteRetry applies a successful re-creation with the vendor: the
// error message is cleared, the status returns to created, and the retry
// counter is incremented.
func (s *Shipment) CompleteRetry(vendorShipmentID, trackingNumber string, now time.Time) error {
	if err := s.EnsureRetryable(); err != nil {
		return err
	}
	if vendorShipmentID == "" {
		return errs.NewValueIsRequiredError("vendorShipmentID")
	}
	if trackingNumber == "" {
		return errs.NewValueIsRequiredError("trackingNumber")
	}

	s.vendorShipmentID = vendorShipmentID
	s.trackingNumber = trackingNumber
	s.errorMessage = nil
	s.status = StatusCreated
	s.retryCount++
	s.lastStatusUpdate = now
	return nil
}

// Cancel marks the shipment cancelled after the vendor accepted the
// cancellation.
func (s *Shipment) Cancel(now time.Time) {
	s.status = StatusCancelled
	s.lastStatusUpdate = now
}
