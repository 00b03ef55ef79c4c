package commands

import (
	"errors"
	"time"

	"shop/internal/pkg/guard"
)

var (
	ErrApplyTrackingUpdateCommandIsNotConstructed = errors.New(
		"ApplyTrackingUpdateCommand must be created via NewApplyTrackingUpdateCommand constructor",
	)
	ErrVendorStatusIsRequired = errors.New("vendor status is required")
)

// ApplyTrackingUpdateCommand represents one vendor tracking callback.
// The vendor's status token is carried as-is and mapped through the fixed
// dictionary only when applied; message and location are kept verbatim.
type ApplyTrackingUpdateCommand struct { //nolint:recvcheck //using for validation
	trackingNumber string
	vendorStatus   string
	message        string
	location       string
	occurredAt     time.Time

	guard guard.ConstructorGuard
}

// NewApplyTrackingUpdateCommand creates a command from a vendor callback.
// A zero occurredAt means the vendor sent no usable timestamp; the
// handler falls back to the receive time.
func NewApplyTrackingUpdateCommand(
	trackingNumber, vendorStatus, message, location string,
	occurredAt time.Time,
) (ApplyTrackingUpdateCommand, error) {
	command := ApplyTrackingUpdateCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setTrackingNumber(trackingNumber),
		command.setVendorStatus(vendorStatus),
	); err != nil {
		return ApplyTrackingUpdateCommand{}, err
	}

	command.message = message
	command.location = location
	command.occurredAt = occurredAt

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrApplyTrackingUpdateCommandIsNotConstructed if validation fails.
func (c ApplyTrackingUpdateCommand) Validate() error {
	return c.guard.Validate(ErrApplyTrackingUpdateCommandIsNotConstructed)
}

// TrackingNumber returns the vendor-assigned tracking number.
func (c ApplyTrackingUpdateCommand) TrackingNumber() string {
	return c.trackingNumber
}

// VendorStatus returns the vendor's raw status token.
func (c ApplyTrackingUpdateCommand) VendorStatus() string {
	return c.vendorStatus
}

// Message returns the vendor's event message, possibly empty.
func (c ApplyTrackingUpdateCommand) Message() string {
	return c.message
}

// Location returns the vendor-reported location, possibly empty.
func (c ApplyTrackingUpdateCommand) Location() string {
	return c.location
}

// OccurredAt returns the vendor's event timestamp, zero when absent.
func (c ApplyTrackingUpdateCommand) OccurredAt() time.Time {
	return c.occurredAt
}

func (c *ApplyTrackingUpdateCommand) setTrackingNumber(trackingNumber string) error {
	if trackingNumber == "" {
		return ErrTrackingNumberIsRequired
	}

	c.trackingNumber = trackingNumber
	return nil
}

func (c *ApplyTrackingUpdateCommand) setVendorStatus(vendorStatus string) error {
	if vendorStatus == "" {
		return ErrVendorStatusIsRequired
	}

	c.vendorStatus = vendorStatus
	return nil
}
