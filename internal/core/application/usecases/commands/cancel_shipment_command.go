package commands

import (
	"errors"

	"shop/internal/pkg/guard"
)

var (
	ErrCancelShipmentCommandIsNotConstructed = errors.New(
		"CancelShipmentCommand must be created via NewCancelShipmentCommand constructor",
	)
	ErrTrackingNumberIsRequired = errors.New("tracking number is required")
)

// CancelShipmentCommand represents a request to cancel a shipment with
// the courier vendor.
type CancelShipmentCommand struct { //nolint:recvcheck //using for validation
	trackingNumber string

	guard guard.ConstructorGuard
}

// NewCancelShipmentCommand creates a command to cancel a shipment.
func NewCancelShipmentCommand(trackingNumber string) (CancelShipmentCommand, error) {
	command := CancelShipmentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setTrackingNumber(trackingNumber); err != nil {
		return CancelShipmentCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCancelShipmentCommandIsNotConstructed if validation fails.
func (c CancelShipmentCommand) Validate() error {
	return c.guard.Validate(ErrCancelShipmentCommandIsNotConstructed)
}

// TrackingNumber returns the vendor-assigned tracking number.
func (c CancelShipmentCommand) TrackingNumber() string {
	return c.trackingNumber
}

func (c *CancelShipmentCommand) setTrackingNumber(trackingNumber string) error {
	if trackingNumber == "" {
		return ErrTrackingNumberIsRequired
	}

	c.trackingNumber = trackingNumber
	return nil
}
