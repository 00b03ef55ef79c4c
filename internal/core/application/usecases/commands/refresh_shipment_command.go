package commands

import (
	"errors"

	"shop/internal/pkg/guard"
)

var ErrRefreshShipmentCommandIsNotConstructed = errors.New(
	"RefreshShipmentCommand must be created via NewRefreshShipmentCommand constructor",
)

// RefreshShipmentCommand represents a request to pull the current status
// of a shipment from the courier vendor. Used by operator actions and the
// periodic tracking sweep as a fallback to webhooks.
type RefreshShipmentCommand struct { //nolint:recvcheck //using for validation
	trackingNumber string

	guard guard.ConstructorGuard
}

// NewRefreshShipmentCommand creates a command to refresh a shipment's
// status from the vendor.
func NewRefreshShipmentCommand(trackingNumber string) (RefreshShipmentCommand, error) {
	command := RefreshShipmentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setTrackingNumber(trackingNumber); err != nil {
		return RefreshShipmentCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrRefreshShipmentCommandIsNotConstructed if validation fails.
func (c RefreshShipmentCommand) Validate() error {
	return c.guard.Validate(ErrRefreshShipmentCommandIsNotConstructed)
}

// TrackingNumber returns the vendor-assigned tracking number.
func (c RefreshShipmentCommand) TrackingNumber() string {
	return c.trackingNumber
}

func (c *RefreshShipmentCommand) setTrackingNumber(trackingNumber string) error {
	if trackingNumber == "" {
		return ErrTrackingNumberIsRequired
	}

	c.trackingNumber = trackingNumber
	return nil
}
