package commands

import (
	"errors"

	"shop/internal/core/domain/model/invoice"
	"shop/internal/core/domain/model/kernel"
	"shop/internal/pkg/guard"
)

var ErrUpdateInvoiceStatusCommandIsNotConstructed = errors.New(
	"UpdateInvoiceStatusCommand must be created via NewUpdateInvoiceStatusCommand constructor",
)

// UpdateInvoiceStatusCommand represents a request to move an invoice to a
// new lifecycle status. Any of the six statuses is a legal target; the
// transition is recorded in the invoice's audit trail.
type UpdateInvoiceStatusCommand struct { //nolint:recvcheck //using for validation
	invoiceID   kernel.UUID
	status      invoice.Status
	performedBy string

	guard guard.ConstructorGuard
}

// NewUpdateInvoiceStatusCommand creates a command to change an invoice's
// status. An empty actor is attributed to "system".
func NewUpdateInvoiceStatusCommand(
	invoiceID kernel.UUID,
	status invoice.Status,
	performedBy string,
) (UpdateInvoiceStatusCommand, error) {
	command := UpdateInvoiceStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setInvoiceID(invoiceID),
		command.setStatus(status),
	); err != nil {
		return UpdateInvoiceStatusCommand{}, err
	}

	command.performedBy = performedBy
	if command.performedBy == "" {
		command.performedBy = "system"
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrUpdateInvoiceStatusCommandIsNotConstructed if validation fails.
func (c UpdateInvoiceStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateInvoiceStatusCommandIsNotConstructed)
}

// InvoiceID returns the identifier of the invoice to update.
func (c UpdateInvoiceStatusCommand) InvoiceID() kernel.UUID {
	return c.invoiceID
}

// Status returns the target lifecycle status.
func (c UpdateInvoiceStatusCommand) Status() invoice.Status {
	return c.status
}

// PerformedBy returns the actor recorded in the audit trail.
func (c UpdateInvoiceStatusCommand) PerformedBy() string {
	return c.performedBy
}

func (c *UpdateInvoiceStatusCommand) setInvoiceID(invoiceID kernel.UUID) error {
	if err := invoiceID.Validate(); err != nil {
		return err
	}

	c.invoiceID = invoiceID
	return nil
}

func (c *UpdateInvoiceStatusCommand) setStatus(status invoice.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}

	c.status = status
	return nil
}
