package ports

import (
	"context"

	"shop/internal/core/domain/model/invoice"
)

// InvoiceTemplateRepository selects invoice templates from configuration
// storage.
type InvoiceTemplateRepository interface {
	// GetActiveDefault returns the active default template for a
	// document type. Returns an ObjectNotFoundError when none is
	// configured, which callers treat as a fallback to system defaults,
	// not a failure.
	GetActiveDefault(ctx context.Context, docType invoice.DocumentType) (*invoice.Template, error)
}
