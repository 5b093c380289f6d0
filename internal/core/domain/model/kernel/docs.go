// Package kernel provides the shared primitives of the fulfillment domain model.
//
// The package includes:
//   - ID: a positive relational identifier (orders, statuses, menus, customers, ...)
//   - UUID: an opaque identifier for messages that leave the database (outbox entries, events)
//
// Both are immutable value objects that validate themselves, so zero values coming
// from persistence or transport are rejected before they reach the aggregates.
package kernel
