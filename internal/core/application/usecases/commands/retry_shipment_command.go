package commands

import (
	"errors"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/pkg/guard"
)

var ErrRetryShipmentCommandIsNotConstructed = errors.New(
	"RetryShipmentCommand must be created via NewRetryShipmentCommand constructor",
)

// RetryShipmentCommand represents a request to retry a failed shipment
// creation. Addressed by order rather than tracking number because a
// shipment whose first vendor call failed never received one.
type RetryShipmentCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewRetryShipmentCommand creates a command to retry the order's shipment.
func NewRetryShipmentCommand(orderID kernel.UUID) (RetryShipmentCommand, error) {
	command := RetryShipmentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setOrderID(orderID); err != nil {
		return RetryShipmentCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrRetryShipmentCommandIsNotConstructed if validation fails.
func (c RetryShipmentCommand) Validate() error {
	return c.guard.Validate(ErrRetryShipmentCommandIsNotConstructed)
}

// OrderID returns the identifier of the order whose shipment is retried.
func (c RetryShipmentCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c *RetryShipmentCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
