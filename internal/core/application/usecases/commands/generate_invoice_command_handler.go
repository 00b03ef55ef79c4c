package commands

import (
	"context"
	"errors"
	"time"

	"shop/internal/core/domain/model/invoice"
	"shop/internal/core/ports"
	"shop/internal/pkg/errs"
)

// GenerateInvoiceCommandHandler handles the business logic for invoice
// generation. Snapshots the order into a new invoice, applies the charge
// policy and copies the terms from the active default template.
//
// The at-most-one-invoice-per-order rule is enforced by the storage layer:
// the handler does not pre-check existence, it attempts the insert and lets
// the repository translate a uniqueness violation into a ConflictError.
type GenerateInvoiceCommandHandler struct {
	uowFactory InvoiceUoWFactory
	templates  ports.InvoiceTemplateRepository
	policy     invoice.ChargePolicy
}

// NewGenerateInvoiceCommandHandler creates a handler for invoice generation.
// Requires an InvoiceUoWFactory for transactional persistence, a template
// repository for terms lookup and the charge policy applied to every invoice.
func NewGenerateInvoiceCommandHandler(
	uowFactory InvoiceUoWFactory,
	templates ports.InvoiceTemplateRepository,
	policy invoice.ChargePolicy,
) GenerateInvoiceCommandHandler {
	return GenerateInvoiceCommandHandler{
		uowFactory: uowFactory,
		templates:  templates,
		policy:     policy,
	}
}

// Handle processes the invoice generation command.
// Loads the order, resolves the terms template for the buyer kind and
// persists the invoice with its line items and the creation audit entry
// in one transaction.
func (h *GenerateInvoiceCommandHandler) Handle(ctx context.Context, cmd GenerateInvoiceCommand) error {
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

	sourceOrder, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	terms, err := h.resolveTerms(ctx, sourceOrder.Customer().IsOrganization())
	if err != nil {
		return err
	}

	inv, err := invoice.GenerateFromOrder(cmd.InvoiceID(), sourceOrder, h.policy, terms, time.Now().UTC())
	if err != nil {
		return err
	}

	if err = uow.InvoiceRepository().Add(ctx, inv); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}

// resolveTerms returns the terms of the active default template for the
// buyer kind. A missing template is not an error, the system fallback
// applies.
func (h *GenerateInvoiceCommandHandler) resolveTerms(ctx context.Context, organization bool) (string, error) {
	docType := invoice.TypeB2C
	if organization {
		docType = invoice.TypeB2B
	}

	template, err := h.templates.GetActiveDefault(ctx, docType)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return invoice.DefaultTerms, nil
		}
		return "", err
	}

	return template.Terms(), nil
}
