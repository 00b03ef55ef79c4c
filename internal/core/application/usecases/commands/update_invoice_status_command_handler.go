package commands

import (
	"context"
	"time"
)

// UpdateInvoiceStatusCommandHandler handles invoice status transitions.
// The status machine is deliberately permissive: every target is legal and
// every transition leaves an audit entry, so operators can correct mistakes
// without a guard table getting in the way.
type UpdateInvoiceStatusCommandHandler struct {
	uowFactory InvoiceUoWFactory
}

// NewUpdateInvoiceStatusCommandHandler creates a handler for invoice status
// transitions. Requires an InvoiceUoWFactory for transactional persistence.
func NewUpdateInvoiceStatusCommandHandler(uowFactory InvoiceUoWFactory) UpdateInvoiceStatusCommandHandler {
	return UpdateInvoiceStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the status change command.
// Loads the invoice, applies the transition with its payment side effects
// and persists the aggregate together with the new audit entry.
func (h *UpdateInvoiceStatusCommandHandler) Handle(ctx context.Context, cmd UpdateInvoiceStatusCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	invoiceRepo := uow.InvoiceRepository()
	inv, err := invoiceRepo.Get(ctx, cmd.InvoiceID())
	if err != nil {
		return err
	}

	if err = inv.UpdateStatus(cmd.Status(), cmd.PerformedBy(), time.Now().UTC()); err != nil {
		return err
	}

	if err = invoiceRepo.Update(ctx, inv); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
