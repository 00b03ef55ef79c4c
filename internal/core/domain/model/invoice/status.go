package invoice

import (
	"fmt"
	"strings"

	"shop/internal/pkg/errs"
)

// Status represents the billing state of an invoice.
//
// The machine is intentionally permissive: any of the six enumerated
// values is a legal transition target from any other. There is no
// forbidden-transition table; the only rejection is an unknown token.
// Cancellation and refund are statuses, not deletions.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// StatusDraft is an invoice prepared but not yet issued.
	StatusDraft

	// StatusIssued is an invoice awaiting payment.
	StatusIssued

	// StatusPaid is a settled invoice; paidAt records the settlement time.
	StatusPaid

	// StatusOverdue is an issued invoice past its due date.
	StatusOverdue

	// StatusCancelled is a voided invoice. The record is kept.
	StatusCancelled

	// StatusRefunded is a paid invoice whose amount was returned.
	StatusRefunded
)

func statusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:   "unknown",
		StatusDraft:     "draft",
		StatusIssued:    "issued",
		StatusPaid:      "paid",
		StatusOverdue:   "overdue",
		StatusCancelled: "cancelled",
		StatusRefunded:  "refunded",
	}
}

func validStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		StatusDraft:     "draft",
		StatusIssued:    "issued",
		StatusPaid:      "paid",
		StatusOverdue:   "overdue",
		StatusCancelled: "cancelled",
		StatusRefunded:  "refunded",
	}
}

// ParseStatus converts a status token into a Status. Matching is
// case-insensitive so the HTTP surface can accept "PAID" as well as
// "paid". Unknown tokens are a validation error.
func ParseStatus(s string) (Status, error) {
	needle := strings.ToLower(s)
	for status, str := range validStatusStrings() {
		if str == needle {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause("status is invalid",
		fmt.Errorf("%q is not a valid invoice status", s))
}

// Validate checks that the status is one of the six enumerated values.
func (s Status) Validate() error {
	if _, ok := validStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%d is not a valid invoice status", s))
	}
	return nil
}

// String returns the lowercase name of the status, or "unknown" for
// invalid values. Implements fmt.Stringer.
func (s Status) String() string {
	if str, ok := statusStrings()[s]; ok {
		return str
	}
	return "unknown"
}
