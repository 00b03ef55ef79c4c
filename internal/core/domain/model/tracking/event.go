// Package tracking contains the append-only tracking ledger entries.
//
// Events belong to an order rather than a shipment, so the
// customer-facing history survives shipment replacement. The ledger is
// written by both the courier gateway client and the webhook receiver and
// preserves the literal received order; it is informational and carries
// no delivery-exactly-once guarantee.
package tracking

import (
	"errors"
	"time"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/pkg/errs"
)

// Source distinguishes internally generated events from vendor-originated
// ones.
type Source string

const (
	// SourceInternal marks events written by this system, e.g. on
	// shipment creation or retry.
	SourceInternal Source = "internal"

	// SourceVendor marks events carried verbatim from courier callbacks.
	SourceVendor Source = "vendor"
)

// Validate checks that the source is one of the defined values.
func (s Source) Validate() error {
	switch s {
	case SourceInternal, SourceVendor:
		return nil
	default:
		return errs.NewValueIsInvalidError("source is invalid")
	}
}

// Event is one append-only row of the tracking ledger. Events are never
// mutated after creation.
type Event struct {
	orderID   kernel.UUID
	status    string
	message   string
	location  string
	source    Source
	createdAt time.Time
}

// NewEvent creates a ledger entry for an order.
func NewEvent(orderID kernel.UUID, status, message, location string, source Source, createdAt time.Time) (Event, error) {
	if err := errors.Join(orderID.Validate(), source.Validate()); err != nil {
		return Event{}, err
	}
	if status == "" {
		return Event{}, errs.NewValueIsRequiredError("status")
	}

	return Event{
		orderID:   orderID,
		status:    status,
		message:   message,
		location:  location,
		source:    source,
		createdAt: createdAt,
	}, nil
}

// OrderID returns the owning order's identifier.
func (e Event) OrderID() kernel.UUID { return e.orderID }

// Status returns the shipment status recorded with the event.
func (e Event) Status() string { return e.status }

// Message returns the human-readable event message.
func (e Event) Message() string { return e.message }

// Location returns the courier-reported location, possibly empty.
func (e Event) Location() string { return e.location }

// Source returns who produced the event.
func (e Event) Source() Source { return e.source }

// CreatedAt returns when the event was recorded.
func (e Event) CreatedAt() time.Time { return e.createdAt }
