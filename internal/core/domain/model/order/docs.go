// Package order provides the Order aggregate root of the fulfillment domain.
//
// The package includes:
//   - Order: identity, contact and customer references, cart snapshot, totals,
//     current status, invoice and the immutable hash
//   - LineItem and LineItemOption: the structured cart snapshot
//   - Total: priced summary lines ordered by priority
//   - Invoice: prefix + sequence number assigned once on completion
//   - Hash: the unique public reference assigned at creation
//
// Key business rules:
//   - A nil status means the order was placed but not yet confirmed
//   - The hash is assigned exactly once, at creation, and never regenerated
//   - An invoice, once assigned, is never reassigned
//   - Line items and totals are replaced as a whole, never merged
package order
