package order

import (
	"fmt"

	"shop/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// LineItem is a single ordered product with the price snapshot taken at
// order time. The snapshot is what invoices are computed from; later
// catalog edits never flow into it.
type LineItem struct {
	productName string
	description string
	quantity    int
	unitPrice   decimal.Decimal
}

// NewLineItem creates a line item with a positive quantity and a
// non-negative unit price snapshot.
func NewLineItem(productName, description string, quantity int, unitPrice decimal.Decimal) (LineItem, error) {
	if productName == "" {
		return LineItem{}, errs.NewValueIsRequiredError("productName")
	}
	if quantity <= 0 {
		return LineItem{}, errs.NewValueIsInvalidErrorWithCause("quantity is invalid",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	if unitPrice.IsNegative() {
		return LineItem{}, errs.NewValueIsInvalidErrorWithCause("unitPrice is invalid",
			fmt.Errorf("%s is negative", unitPrice))
	}

	return LineItem{
		productName: productName,
		description: description,
		quantity:    quantity,
		unitPrice:   unitPrice,
	}, nil
}

// ProductName returns the snapshotted product name.
func (li LineItem) ProductName() string {
	return li.productName
}

// Description returns the snapshotted product description.
func (li LineItem) Description() string {
	return li.description
}

// Quantity returns the ordered quantity.
func (li LineItem) Quantity() int {
	return li.quantity
}

// UnitPrice returns the price snapshot taken at order time.
func (li LineItem) UnitPrice() decimal.Decimal {
	return li.unitPrice
}

// Total returns unit price multiplied by quantity.
func (li LineItem) Total() decimal.Decimal {
	return li.unitPrice.Mul(decimal.NewFromInt(int64(li.quantity)))
}
