package shipment

import (
	"fmt"

	"shop/internal/pkg/errs"
)

// Status represents the delivery state of a shipment.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// StatusPending is a shipment not yet accepted by the vendor. It is
	// also the fail-safe target for unrecognized vendor tokens.
	StatusPending

	// StatusCreated is a shipment accepted by the vendor.
	StatusCreated

	// StatusInTransit is a shipment moving through the vendor network.
	StatusInTransit

	// StatusOutForDelivery is a shipment on the last leg to the recipient.
	StatusOutForDelivery

	// StatusDelivered is the terminal success state. It cascades the
	// delivered lifecycle status onto the owning order.
	StatusDelivered

	// StatusFailed is a shipment the vendor could not progress.
	StatusFailed

	// StatusCancelled is a shipment cancelled with the vendor.
	StatusCancelled

	// StatusReturned is a shipment sent back to the origin.
	StatusReturned
)

func statusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:        "unknown",
		StatusPending:        "pending",
		StatusCreated:        "created",
		StatusInTransit:      "in_transit",
		StatusOutForDelivery: "out_for_delivery",
		StatusDelivered:      "delivered",
		StatusFailed:         "failed",
		StatusCancelled:      "cancelled",
		StatusReturned:       "returned",
	}
}

func validStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		StatusPending:        "pending",
		StatusCreated:        "created",
		StatusInTransit:      "in_transit",
		StatusOutForDelivery: "out_for_delivery",
		StatusDelivered:      "delivered",
		StatusFailed:         "failed",
		StatusCancelled:      "cancelled",
		StatusReturned:       "returned",
	}
}

// MapVendorStatus translates a vendor status token into the internal
// status set through a fixed dictionary. Any token outside the dictionary
// maps to StatusPending: a deliberate fail-safe so unknown vendor
// vocabulary never fails processing, at the cost of possibly
// misclassifying the shipment's true state.
func MapVendorStatus(token string) Status {
	for status, str := range validStatusStrings() {
		if str == token {
			return status
		}
	}
	return StatusPending
}

// ParseStatus converts a stored status string into a Status. Unlike
// MapVendorStatus there is no fail-safe default here; an unrecognized
// string in storage is an error, not a vendor quirk.
func ParseStatus(s string) (Status, error) {
	for status, str := range validStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause("status is invalid",
		fmt.Errorf("%q is not a valid shipment status", s))
}

// Validate checks that the status is one of the defined values.
func (s Status) Validate() error {
	if _, ok := validStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%d is not a valid shipment status", s))
	}
	return nil
}

// String returns the lowercase snake_case name of the status, or
// "unknown" for invalid values. Implements fmt.Stringer.
func (s Status) String() string {
	if str, ok := statusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether the status triggers the order cascade.
func (s Status) IsTerminal() bool {
	return s == StatusDelivered
}
