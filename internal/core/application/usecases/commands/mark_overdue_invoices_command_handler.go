package commands

import (
	"context"
	"time"

	"shop/internal/core/domain/model/invoice"
)

// MarkOverdueInvoicesCommandHandler runs the overdue sweep. Issued
// invoices whose due date passed move to overdue with an audit entry
// attributed to the system; all updates occur within a single
// transaction.
type MarkOverdueInvoicesCommandHandler struct {
	uowFactory InvoiceUoWFactory
}

// NewMarkOverdueInvoicesCommandHandler creates a handler for the overdue
// sweep. Requires an InvoiceUoWFactory for transactional persistence.
func NewMarkOverdueInvoicesCommandHandler(uowFactory InvoiceUoWFactory) MarkOverdueInvoicesCommandHandler {
	return MarkOverdueInvoicesCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the sweep command.
func (h *MarkOverdueInvoicesCommandHandler) Handle(ctx context.Context, cmd MarkOverdueInvoicesCommand) error {
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
	now := time.Now().UTC()

	overdue, err := invoiceRepo.GetAllIssuedBefore(ctx, now)
	if err != nil {
		return err
	}

	for _, inv := range overdue {
		if err = inv.UpdateStatus(invoice.StatusOverdue, "system", now); err != nil {
			return err
		}

		if err = invoiceRepo.Update(ctx, inv); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
