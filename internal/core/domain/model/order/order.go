package order

import (
	"errors"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not
// created through NewOrder or RestoreOrder.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

// Order is the placed customer order consumed by the order-to-cash core.
//
// Invariants maintained here:
//   - Must have a valid unique identifier and a human-readable number
//   - Must carry at least one line item with its price snapshot
//   - The delivered transition is idempotent and refused only for
//     cancelled orders
//
// The aggregate is immutable once placed except for its lifecycle status.
type Order struct {
	id            kernel.UUID
	number        string
	customer      Customer
	shippingAddr  string
	shippingCity  string
	shippingPhone string
	notes         string
	paymentMethod string
	paymentStatus PaymentStatus
	status        Status
	items         []LineItem

	isConstructed bool
}

// NewOrder creates a freshly placed order with validation of all parts.
func NewOrder(
	id kernel.UUID,
	number string,
	customer Customer,
	shippingAddr, shippingCity, shippingPhone, notes string,
	paymentMethod string,
	paymentStatus PaymentStatus,
	items []LineItem,
) (*Order, error) {
	o := &Order{
		customer:      customer,
		shippingCity:  shippingCity,
		shippingPhone: shippingPhone,
		notes:         notes,
		status:        StatusPlaced,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setNumber(number),
		o.setShippingAddr(shippingAddr),
		o.setPaymentMethod(paymentMethod),
		o.setPaymentStatus(paymentStatus),
		o.setItems(items),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an order from persistence, including its
// current lifecycle status.
func RestoreOrder(
	id kernel.UUID,
	number string,
	customer Customer,
	shippingAddr, shippingCity, shippingPhone, notes string,
	paymentMethod string,
	paymentStatus PaymentStatus,
	status Status,
	items []LineItem,
) (*Order, error) {
	o, err := NewOrder(id, number, customer,
		shippingAddr, shippingCity, shippingPhone, notes,
		paymentMethod, paymentStatus, items)
	if err != nil {
		return nil, err
	}

	if err := status.Validate(); err != nil {
		return nil, err
	}
	o.status = status

	return o, nil
}

// Validate ensures the Order was created through a constructor.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by identifier.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// Number returns the human-readable order number.
func (o *Order) Number() string {
	return o.number
}

// Customer returns the buyer identity.
func (o *Order) Customer() Customer {
	return o.customer
}

// ShippingAddress returns the delivery street address.
func (o *Order) ShippingAddress() string {
	return o.shippingAddr
}

// ShippingCity returns the delivery city.
func (o *Order) ShippingCity() string {
	return o.shippingCity
}

// ShippingPhone returns the delivery contact phone.
func (o *Order) ShippingPhone() string {
	return o.shippingPhone
}

// Notes returns the buyer's free-text notes.
func (o *Order) Notes() string {
	return o.notes
}

// PaymentMethod returns the payment method chosen at checkout.
func (o *Order) PaymentMethod() string {
	return o.paymentMethod
}

// PaymentStatus returns the current settlement state.
func (o *Order) PaymentStatus() PaymentStatus {
	return o.paymentStatus
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// Items returns the line items with their price snapshots.
func (o *Order) Items() []LineItem {
	return o.items
}

// Subtotal sums the line-item totals from the price snapshots.
func (o *Order) Subtotal() decimal.Decimal {
	subtotal := decimal.Zero
	for _, item := range o.items {
		subtotal = subtotal.Add(item.Total())
	}
	return subtotal
}

// MarkDelivered transitions the order to the delivered lifecycle status.
// The transition is idempotent: a replayed courier event on an already
// delivered order is a no-op. Cancelled orders cannot be delivered.
func (o *Order) MarkDelivered() error {
	if o.status == StatusCancelled {
		return errs.NewValueIsInvalidError("cancelled order cannot be delivered")
	}

	o.status = StatusDelivered
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setNumber(number string) error {
	if number == "" {
		return errs.NewValueIsRequiredError("order number")
	}
	o.number = number
	return nil
}

func (o *Order) setShippingAddr(addr string) error {
	if addr == "" {
		return errs.NewValueIsRequiredError("shipping address")
	}
	o.shippingAddr = addr
	return nil
}

func (o *Order) setPaymentMethod(method string) error {
	if method == "" {
		return errs.NewValueIsRequiredError("payment method")
	}
	o.paymentMethod = method
	return nil
}

func (o *Order) setPaymentStatus(status PaymentStatus) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.paymentStatus = status
	return nil
}

func (o *Order) setItems(items []LineItem) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("order items")
	}
	o.items = items
	return nil
}
