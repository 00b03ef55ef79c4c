// Package order models the placed customer order that the order-to-cash
// core consumes. The order is owned by the storefront; this core reads its
// line-item price snapshots, buyer identity, and payment state to generate
// invoices and shipments, and writes back exactly one thing: the delivered
// lifecycle status when the courier reports a terminal delivery.
package order
