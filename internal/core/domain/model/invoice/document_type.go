package invoice

import (
	"fmt"

	"shop/internal/pkg/errs"
)

// DocumentType distinguishes consumer invoices from organizational ones.
// The type is derived from the buyer at generation time and selects the
// default template and the payment terms.
type DocumentType string

const (
	// TypeB2C is an invoice for an individual buyer.
	TypeB2C DocumentType = "b2c"

	// TypeB2B is an invoice for an organizational buyer with net terms.
	TypeB2B DocumentType = "b2b"
)

// ParseDocumentType converts a stored string into a DocumentType.
func ParseDocumentType(s string) (DocumentType, error) {
	switch DocumentType(s) {
	case TypeB2C, TypeB2B:
		return DocumentType(s), nil
	default:
		return "", errs.NewValueIsInvalidErrorWithCause("invoice type is invalid",
			fmt.Errorf("%q is not a valid invoice type", s))
	}
}

// PaymentTermDays returns the due-date policy for the type: net 30 for
// organizational buyers, 7 days otherwise.
func (t DocumentType) PaymentTermDays() int {
	if t == TypeB2B {
		return 30
	}
	return 7
}

func (t DocumentType) String() string {
	return string(t)
}
