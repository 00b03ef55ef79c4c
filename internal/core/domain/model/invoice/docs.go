// Package invoice models the financial invoice generated once per order.
//
// An invoice is a point-in-time legal document: the customer identity, the
// line items, and the financial breakdown are snapshots copied from the
// order at generation time and never re-derived from live data. The
// aggregate owns a deliberately permissive status machine over the six
// enumerated statuses; any enumerated target is a legal transition and
// every transition appends an audit entry.
package invoice
