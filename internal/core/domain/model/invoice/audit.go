package invoice

import "time"

// AuditEntry is one append-only row of the invoice audit log. Entries are
// never updated or deleted; the log grows monotonically with the
// invoice's lifetime.
type AuditEntry struct {
	action      string
	details     string
	performedBy string
	createdAt   time.Time
}

// NewAuditEntry records a state transition performed on the invoice.
func NewAuditEntry(action, details, performedBy string, createdAt time.Time) AuditEntry {
	return AuditEntry{
		action:      action,
		details:     details,
		performedBy: performedBy,
		createdAt:   createdAt,
	}
}

// Action returns the recorded action, e.g. "created" or "paid".
func (a AuditEntry) Action() string {
	return a.action
}

// Details returns the free-text description of the transition.
func (a AuditEntry) Details() string {
	return a.details
}

// PerformedBy returns who triggered the transition.
func (a AuditEntry) PerformedBy() string {
	return a.performedBy
}

// CreatedAt returns when the transition happened.
func (a AuditEntry) CreatedAt() time.Time {
	return a.createdAt
}
