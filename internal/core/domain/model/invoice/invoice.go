package invoice

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/order"
	"shop/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ErrInvoiceIsNotConstructed is returned when an Invoice instance was not
// created through GenerateFromOrder or RestoreInvoice.
var ErrInvoiceIsNotConstructed = errors.New("Invoice must be created via GenerateFromOrder or RestoreInvoice")

// ChargePolicy carries the pricing policy inputs for invoice generation.
// Tax rate and shipping cost are configuration, not constants baked into
// the engine, so the rate can change without touching this logic.
type ChargePolicy struct {
	// TaxRate is the fractional rate applied to the subtotal, e.g. 0.12.
	TaxRate decimal.Decimal

	// ShippingCost is the fixed shipping charge added to every invoice.
	ShippingCost decimal.Decimal

	// Discount is the amount subtracted from the total.
	Discount decimal.Decimal
}

// Invoice is the financial document generated exactly once per order.
//
// Invariants maintained here:
//   - totalAmount = subtotal + tax + shippingCost - discount, computed
//     once at generation and never silently recomputed
//   - dueDate - issuedAt follows the document type's payment terms
//   - every status transition appends one audit entry
//   - the customer snapshot and line items are copies, never references
type Invoice struct {
	id             kernel.UUID
	orderID        kernel.UUID
	number         string
	docType        DocumentType
	status         Status
	subtotal       decimal.Decimal
	tax            decimal.Decimal
	taxRate        decimal.Decimal
	discount       decimal.Decimal
	shippingCost   decimal.Decimal
	totalAmount    decimal.Decimal
	paymentMethod  string
	paymentStatus  order.PaymentStatus
	issuedAt       time.Time
	dueDate        time.Time
	paidAt         *time.Time
	customer       CustomerSnapshot
	terms          string
	items          []LineItem
	newAuditTrail  []AuditEntry
	isConstructed  bool
}

// NewNumber derives a human-readable invoice number from the issue time
// and the invoice identifier, e.g. "INV-202608-550E8400".
func NewNumber(issuedAt time.Time, id kernel.UUID) string {
	fragment := strings.ToUpper(strings.ReplaceAll(id.String(), "-", ""))[:8]
	return fmt.Sprintf("INV-%s-%s", issuedAt.Format("200601"), fragment)
}

// GenerateFromOrder creates the invoice for an order.
//
// The document type is classified from the buyer, the financial breakdown
// is computed strictly from the order's line-item price snapshots, and
// the customer identity is copied. If the order is already paid the
// invoice starts in the paid status with paidAt set; otherwise it starts
// issued. An audit entry with action "created" is recorded.
func GenerateFromOrder(id kernel.UUID, o *order.Order, policy ChargePolicy, terms string, now time.Time) (*Invoice, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := o.Validate(); err != nil {
		return nil, err
	}
	if policy.TaxRate.IsNegative() {
		return nil, errs.NewValueIsInvalidError("taxRate is negative")
	}

	docType := TypeB2C
	if o.Customer().IsOrganization() {
		docType = TypeB2B
	}

	subtotal := o.Subtotal()
	tax := subtotal.Mul(policy.TaxRate)
	total := subtotal.Add(tax).Add(policy.ShippingCost).Sub(policy.Discount)

	items := make([]LineItem, 0, len(o.Items()))
	for _, item := range o.Items() {
		line, err := NewLineItem(item.ProductName(), item.Description(), item.Quantity(), item.UnitPrice())
		if err != nil {
			return nil, err
		}
		items = append(items, line)
	}

	inv := &Invoice{
		id:            id,
		orderID:       o.ID(),
		number:        NewNumber(now, id),
		docType:       docType,
		status:        StatusIssued,
		subtotal:      subtotal,
		tax:           tax,
		taxRate:       policy.TaxRate,
		discount:      policy.Discount,
		shippingCost:  policy.ShippingCost,
		totalAmount:   total,
		paymentMethod: o.PaymentMethod(),
		paymentStatus: o.PaymentStatus(),
		issuedAt:      now,
		dueDate:       now.AddDate(0, 0, docType.PaymentTermDays()),
		customer:      SnapshotCustomer(o),
		terms:         terms,
		items:         items,
		isConstructed: true,
	}

	if o.PaymentStatus() == order.PaymentPaid {
		paidAt := now
		inv.status = StatusPaid
		inv.paidAt = &paidAt
	}

	inv.appendAudit("created",
		fmt.Sprintf("invoice %s generated from order %s", inv.number, o.Number()),
		"system", now)

	return inv, nil
}

// RestoreInvoice reconstructs an invoice from persistence. The audit
// trail starts empty: only entries added after restoration are pending
// persistence.
func RestoreInvoice(
	id, orderID kernel.UUID,
	number string,
	docType DocumentType,
	status Status,
	subtotal, tax, taxRate, discount, shippingCost, totalAmount decimal.Decimal,
	paymentMethod string,
	paymentStatus order.PaymentStatus,
	issuedAt, dueDate time.Time,
	paidAt *time.Time,
	customer CustomerSnapshot,
	terms string,
	items []LineItem,
) (*Invoice, error) {
	if err := errors.Join(id.Validate(), orderID.Validate(), status.Validate()); err != nil {
		return nil, err
	}
	if number == "" {
		return nil, errs.NewValueIsRequiredError("invoice number")
	}

	return &Invoice{
		id:            id,
		orderID:       orderID,
		number:        number,
		docType:       docType,
		status:        status,
		subtotal:      subtotal,
		tax:           tax,
		taxRate:       taxRate,
		discount:      discount,
		shippingCost:  shippingCost,
		totalAmount:   totalAmount,
		paymentMethod: paymentMethod,
		paymentStatus: paymentStatus,
		issuedAt:      issuedAt,
		dueDate:       dueDate,
		paidAt:        paidAt,
		customer:      customer,
		terms:         terms,
		items:         items,
		isConstructed: true,
	}, nil
}

// Validate ensures the Invoice was created through a constructor.
func (i *Invoice) Validate() error {
	if i == nil || !i.isConstructed {
		return ErrInvoiceIsNotConstructed
	}
	return nil
}

// UpdateStatus transitions the invoice to any of the six enumerated
// statuses and appends an audit entry naming the action and performer.
//
// Transitioning to paid sets paidAt and mirrors the payment status;
// transitioning to refunded mirrors the payment status as refunded. No
// other transition is restricted: the machine is permissive by design.
func (i *Invoice) UpdateStatus(target Status, performedBy string, now time.Time) error {
	if err := target.Validate(); err != nil {
		return err
	}
	if performedBy == "" {
		return errs.NewValueIsRequiredError("performedBy")
	}

	previous := i.status
	i.status = target

	switch target {
	case StatusPaid:
		paidAt := now
		i.paidAt = &paidAt
		i.paymentStatus = order.PaymentPaid
	case StatusRefunded:
		i.paymentStatus = order.PaymentRefunded
	}

	i.appendAudit(target.String(),
		fmt.Sprintf("status changed from %s to %s", previous, target),
		performedBy, now)

	return nil
}

// ID returns the invoice's unique identifier.
func (i *Invoice) ID() kernel.UUID { return i.id }

// OrderID returns the identifier of the owning order.
func (i *Invoice) OrderID() kernel.UUID { return i.orderID }

// Number returns the human-readable invoice number.
func (i *Invoice) Number() string { return i.number }

// Type returns the document type derived from the buyer.
func (i *Invoice) Type() DocumentType { return i.docType }

// Status returns the current billing status.
func (i *Invoice) Status() Status { return i.status }

// Subtotal returns the sum of the line totals.
func (i *Invoice) Subtotal() decimal.Decimal { return i.subtotal }

// Tax returns the tax amount computed at generation time.
func (i *Invoice) Tax() decimal.Decimal { return i.tax }

// TaxRate returns the fractional tax rate applied at generation time.
func (i *Invoice) TaxRate() decimal.Decimal { return i.taxRate }

// Discount returns the discount amount.
func (i *Invoice) Discount() decimal.Decimal { return i.discount }

// ShippingCost returns the fixed shipping charge.
func (i *Invoice) ShippingCost() decimal.Decimal { return i.shippingCost }

// TotalAmount returns subtotal + tax + shippingCost - discount.
func (i *Invoice) TotalAmount() decimal.Decimal { return i.totalAmount }

// PaymentMethod returns the payment method copied from the order.
func (i *Invoice) PaymentMethod() string { return i.paymentMethod }

// PaymentStatus returns the invoice's own copy of the payment status.
func (i *Invoice) PaymentStatus() order.PaymentStatus { return i.paymentStatus }

// IssuedAt returns the generation time.
func (i *Invoice) IssuedAt() time.Time { return i.issuedAt }

// DueDate returns issuedAt plus the type's payment terms.
func (i *Invoice) DueDate() time.Time { return i.dueDate }

// PaidAt returns the settlement time, nil while unpaid.
func (i *Invoice) PaidAt() *time.Time { return i.paidAt }

// Customer returns the buyer snapshot taken at generation time.
func (i *Invoice) Customer() CustomerSnapshot { return i.customer }

// TermsConditions returns the template or default legal text.
func (i *Invoice) TermsConditions() string { return i.terms }

// Items returns the invoiced line snapshots.
func (i *Invoice) Items() []LineItem { return i.items }

// PendingAuditEntries returns the audit entries recorded since this
// instance was constructed or restored; the repository persists them and
// they are never mutated afterwards.
func (i *Invoice) PendingAuditEntries() []AuditEntry {
	return i.newAuditTrail
}

func (i *Invoice) appendAudit(action, details, performedBy string, at time.Time) {
	i.newAuditTrail = append(i.newAuditTrail, NewAuditEntry(action, details, performedBy, at))
}
