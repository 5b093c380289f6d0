// Package status provides the order status catalog and the append-only status history.
//
// The package includes:
//   - Status: label, display color, comment template and default notify flag
//   - Set and Groups: the configured "processing", "completed" and "terminal" status groups
//   - HistoryEntry: one immutable audit row per transition
//
// Key business rules:
//   - Group membership decides which side effects a transition triggers
//   - History entries are created once and never updated or deleted
package status
