// Package shipment models the courier shipment created for an order.
//
// The shipment row mirrors the courier vendor's view of the delivery: the
// vendor assigns the shipment id and tracking number, and vendor status
// tokens are translated into the internal status set by MapVendorStatus.
// Webhook deliveries are unordered, so status writes are last-write-wins;
// the tracking ledger, not this aggregate, preserves received order.
package shipment
