package invoice

import (
	"fmt"

	"shop/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// LineItem is the invoice's snapshot of one ordered product. It is copied
// from the order's line items at generation time and is immune to later
// catalog edits.
type LineItem struct {
	productName string
	description string
	quantity    int
	unitPrice   decimal.Decimal
	total       decimal.Decimal
}

// NewLineItem creates an invoice line snapshot. The total is computed once
// from the snapshot values.
func NewLineItem(productName, description string, quantity int, unitPrice decimal.Decimal) (LineItem, error) {
	if productName == "" {
		return LineItem{}, errs.NewValueIsRequiredError("productName")
	}
	if quantity <= 0 {
		return LineItem{}, errs.NewValueIsInvalidErrorWithCause("quantity is invalid",
			fmt.Errorf("%d is not greater than 0", quantity))
	}

	return LineItem{
		productName: productName,
		description: description,
		quantity:    quantity,
		unitPrice:   unitPrice,
		total:       unitPrice.Mul(decimal.NewFromInt(int64(quantity))),
	}, nil
}

// RestoreLineItem reconstructs a line snapshot from persistence, keeping
// the stored total rather than recomputing it.
func RestoreLineItem(productName, description string, quantity int, unitPrice, total decimal.Decimal) LineItem {
	return LineItem{
		productName: productName,
		description: description,
		quantity:    quantity,
		unitPrice:   unitPrice,
		total:       total,
	}
}

// ProductName returns the snapshotted product name.
func (li LineItem) ProductName() string {
	return li.productName
}

// Description returns the snapshotted product description.
func (li LineItem) Description() string {
	return li.description
}

// Quantity returns the invoiced quantity.
func (li LineItem) Quantity() int {
	return li.quantity
}

// UnitPrice returns the snapshotted unit price.
func (li LineItem) UnitPrice() decimal.Decimal {
	return li.unitPrice
}

// Total returns the line total computed at generation time.
func (li LineItem) Total() decimal.Decimal {
	return li.total
}
