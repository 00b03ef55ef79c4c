package commands

import (
	"errors"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrCreateShipmentCommandIsNotConstructed = errors.New(
		"CreateShipmentCommand must be created via NewCreateShipmentCommand constructor",
	)
	ErrWeightIsInvalid = errors.New("weight must be greater than 0")
	ErrPiecesIsInvalid = errors.New("pieces must be greater than 0")
)

// CreateShipmentCommand represents a request to register an order's
// shipment with the courier vendor. Recipient details come from the order;
// the package weight and piece count come from the operator.
//
// Example:
//
//	shipmentID := kernel.NewUUID()
//	cmd, err := NewCreateShipmentCommand(shipmentID, orderID, decimal.NewFromFloat(1.5), 1)
//	if err != nil {
//	    return fmt.Errorf("invalid shipment request: %w", err)
//	}
//
//	handler := NewCreateShipmentCommandHandler(uowFactory, courierClient, settingsProvider)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create shipment: %w", err)
//	}
type CreateShipmentCommand struct { //nolint:recvcheck //using for validation
	shipmentID kernel.UUID
	orderID    kernel.UUID
	weight     decimal.Decimal
	pieces     int

	guard guard.ConstructorGuard
}

// NewCreateShipmentCommand creates a command to register a shipment.
// Validates that identifiers are valid, weight is positive and at least
// one piece is shipped.
func NewCreateShipmentCommand(
	shipmentID, orderID kernel.UUID,
	weight decimal.Decimal,
	pieces int,
) (CreateShipmentCommand, error) {
	command := CreateShipmentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setShipmentID(shipmentID),
		command.setOrderID(orderID),
		command.setWeight(weight),
		command.setPieces(pieces),
	); err != nil {
		return CreateShipmentCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateShipmentCommandIsNotConstructed if validation fails.
func (c CreateShipmentCommand) Validate() error {
	return c.guard.Validate(ErrCreateShipmentCommandIsNotConstructed)
}

// ShipmentID returns the identifier assigned to the new shipment.
func (c CreateShipmentCommand) ShipmentID() kernel.UUID {
	return c.shipmentID
}

// OrderID returns the identifier of the order being shipped.
func (c CreateShipmentCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Weight returns the package weight in kilograms.
func (c CreateShipmentCommand) Weight() decimal.Decimal {
	return c.weight
}

// Pieces returns the number of packages in the shipment.
func (c CreateShipmentCommand) Pieces() int {
	return c.pieces
}

func (c *CreateShipmentCommand) setShipmentID(shipmentID kernel.UUID) error {
	if err := shipmentID.Validate(); err != nil {
		return err
	}

	c.shipmentID = shipmentID
	return nil
}

func (c *CreateShipmentCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateShipmentCommand) setWeight(weight decimal.Decimal) error {
	if weight.LessThanOrEqual(decimal.Zero) {
		return ErrWeightIsInvalid
	}

	c.weight = weight
	return nil
}

func (c *CreateShipmentCommand) setPieces(pieces int) error {
	if pieces <= 0 {
		return ErrPiecesIsInvalid
	}

	c.pieces = pieces
	return nil
}
