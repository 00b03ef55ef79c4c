package queries

import (
	"errors"

	"shop/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetInvoiceAnalyticsQueryIsNotConstructed = errors.New(
	"GetInvoiceAnalyticsQuery must be created via NewGetInvoiceAnalyticsQuery constructor",
)

// GetInvoiceAnalyticsQuery computes aggregate invoice counts and sums.
// Computed on demand over committed rows; there is no materialized view,
// so the result may lag invoices committed during the aggregation itself.
// A reporting read model, not a financial reconciliation source.
type GetInvoiceAnalyticsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetInvoiceAnalyticsQuery creates a parameterless analytics query.
func NewGetInvoiceAnalyticsQuery() GetInvoiceAnalyticsQuery {
	return GetInvoiceAnalyticsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetInvoiceAnalyticsQueryIsNotConstructed if validation fails.
func (q GetInvoiceAnalyticsQuery) Validate() error {
	return q.guard.Validate(ErrGetInvoiceAnalyticsQueryIsNotConstructed)
}

// GetInvoiceAnalyticsQueryResponse carries the aggregates: counts per
// status and document type, and the paid versus pending totals. Pending
// covers draft, issued and overdue invoices.
type GetInvoiceAnalyticsQueryResponse struct {
	TotalInvoices int
	CountByStatus map[string]int
	CountByType   map[string]int
	PaidAmount    decimal.Decimal
	PendingAmount decimal.Decimal
}
