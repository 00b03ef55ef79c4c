// Package queries contains read-only operations over the storage layer.
// Implements the Query side of the CQRS architecture: raw SQL read models
// that bypass the aggregates and return plain response structs.
package queries

import (
	"errors"
	"time"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetInvoiceQueryIsNotConstructed = errors.New(
	"GetInvoiceQuery must be created via NewGetInvoiceQuery constructor",
)

// GetInvoiceQuery retrieves one invoice with its line items and audit
// trail.
type GetInvoiceQuery struct {
	invoiceID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetInvoiceQuery creates a query for one invoice.
func NewGetInvoiceQuery(invoiceID kernel.UUID) (GetInvoiceQuery, error) {
	if err := invoiceID.Validate(); err != nil {
		return GetInvoiceQuery{}, err
	}

	return GetInvoiceQuery{
		invoiceID: invoiceID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetInvoiceQueryIsNotConstructed if validation fails.
func (q GetInvoiceQuery) Validate() error {
	return q.guard.Validate(ErrGetInvoiceQueryIsNotConstructed)
}

// InvoiceID returns the identifier of the requested invoice.
func (q GetInvoiceQuery) InvoiceID() kernel.UUID {
	return q.invoiceID
}

// GetInvoiceItemResponse is one invoiced line with its price snapshot.
type GetInvoiceItemResponse struct {
	ProductName string
	Description string
	Quantity    int
	UnitPrice   decimal.Decimal
	Total       decimal.Decimal
}

// GetInvoiceAuditResponse is one row of the invoice's audit trail.
type GetInvoiceAuditResponse struct {
	Action      string
	Details     string
	PerformedBy string
	CreatedAt   time.Time
}

// GetInvoiceQueryResponse is the full structured invoice returned to the
// caller and fed to the printable-document renderer.
type GetInvoiceQueryResponse struct {
	ID                   kernel.UUID
	OrderID              kernel.UUID
	Number               string
	Type                 string
	Status               string
	Subtotal             decimal.Decimal
	TaxRate              decimal.Decimal
	Tax                  decimal.Decimal
	ShippingCost         decimal.Decimal
	Discount             decimal.Decimal
	TotalAmount          decimal.Decimal
	PaymentMethod        string
	PaymentStatus        string
	CustomerName         string
	CustomerEmail        string
	CustomerPhone        string
	CustomerAddress      string
	CustomerOrganization string
	IssuedAt             time.Time
	DueDate              time.Time
	PaidAt               *time.Time
	TermsConditions      string
	Items                []GetInvoiceItemResponse
	AuditLog             []GetInvoiceAuditResponse
}
