package ports

import (
	"context"
	"time"

	"shop/internal/core/domain/model/invoice"
	"shop/internal/core/domain/model/kernel"
)

// InvoiceRepository defines the persistence contract for invoice
// aggregates.
//
// Add must rely on a storage-level uniqueness constraint on the order
// reference: an application-level existence check alone cannot stop two
// concurrent generation calls, so implementations translate the storage
// uniqueness violation into a ConflictError.
type InvoiceRepository interface {
	// Add persists a new invoice with its line items and pending audit
	// entries as a single unit. Returns a ConflictError when an invoice
	// already exists for the same order.
	Add(ctx context.Context, aggregate *invoice.Invoice) error

	// Update persists a status transition together with the audit
	// entries recorded since the aggregate was restored.
	Update(ctx context.Context, aggregate *invoice.Invoice) error

	// Get retrieves an invoice with its line items by unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*invoice.Invoice, error)

	// GetByOrderID retrieves the invoice linked to an order.
	GetByOrderID(ctx context.Context, orderID kernel.UUID) (*invoice.Invoice, error)

	// GetAllIssuedBefore retrieves issued invoices whose due date passed,
	// for the overdue sweep.
	GetAllIssuedBefore(ctx context.Context, dueBefore time.Time) ([]*invoice.Invoice, error)
}
