package commands

import (
	"errors"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/pkg/guard"
)

var ErrGenerateInvoiceCommandIsNotConstructed = errors.New(
	"GenerateInvoiceCommand must be created via NewGenerateInvoiceCommand constructor",
)

// GenerateInvoiceCommand represents a request to generate an invoice from
// an existing order. The order's line items, amounts and customer details
// are snapshotted into the new invoice.
//
// Example:
//
//	invoiceID := kernel.NewUUID()
//	cmd, err := NewGenerateInvoiceCommand(invoiceID, orderID)
//	if err != nil {
//	    return fmt.Errorf("invalid invoice request: %w", err)
//	}
//
//	handler := NewGenerateInvoiceCommandHandler(uowFactory, templates, policy)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to generate invoice: %w", err)
//	}
type GenerateInvoiceCommand struct { //nolint:recvcheck //using for validation
	invoiceID kernel.UUID
	orderID   kernel.UUID

	guard guard.ConstructorGuard
}

// NewGenerateInvoiceCommand creates a command to generate an invoice.
// Validates that both identifiers are valid UUIDs.
func NewGenerateInvoiceCommand(invoiceID, orderID kernel.UUID) (GenerateInvoiceCommand, error) {
	command := GenerateInvoiceCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setInvoiceID(invoiceID),
		command.setOrderID(orderID),
	); err != nil {
		return GenerateInvoiceCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrGenerateInvoiceCommandIsNotConstructed if validation fails.
func (c GenerateInvoiceCommand) Validate() error {
	return c.guard.Validate(ErrGenerateInvoiceCommandIsNotConstructed)
}

// InvoiceID returns the identifier assigned to the new invoice.
func (c GenerateInvoiceCommand) InvoiceID() kernel.UUID {
	return c.invoiceID
}

// OrderID returns the identifier of the order being invoiced.
func (c GenerateInvoiceCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c *GenerateInvoiceCommand) setInvoiceID(invoiceID kernel.UUID) error {
	if err := invoiceID.Validate(); err != nil {
		return err
	}

	c.invoiceID = invoiceID
	return nil
}

func (c *GenerateInvoiceCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
