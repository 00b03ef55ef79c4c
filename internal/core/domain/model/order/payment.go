package order

import (
	"fmt"

	"shop/internal/pkg/errs"
)

// PaymentStatus represents the settlement state of an order's payment.
// Invoices copy this value at generation time and mirror it on their own
// paid/refunded transitions; the copies never synchronize afterwards.
type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "pending"
	PaymentPaid     PaymentStatus = "paid"
	PaymentFailed   PaymentStatus = "failed"
	PaymentRefunded PaymentStatus = "refunded"
)

// ParsePaymentStatus converts a stored string into a PaymentStatus.
func ParsePaymentStatus(s string) (PaymentStatus, error) {
	switch PaymentStatus(s) {
	case PaymentPending, PaymentPaid, PaymentFailed, PaymentRefunded:
		return PaymentStatus(s), nil
	default:
		return "", errs.NewValueIsInvalidErrorWithCause("paymentStatus is invalid",
			fmt.Errorf("%q is not a valid payment status", s))
	}
}

// Validate checks that the payment status is one of the defined values.
func (p PaymentStatus) Validate() error {
	_, err := ParsePaymentStatus(string(p))
	return err
}

func (p PaymentStatus) String() string {
	return string(p)
}
