// Package ports defines the contracts between the fulfillment core and its adapters.
// Repositories returned by a UnitOfWork share its transaction; collaborators such as
// the directory, the mailer and the event publisher work outside of it.
package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add inserts a new order and assigns the generated identifier to the aggregate.
	// Line items and totals already attached to the aggregate are stored as well.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists the scalar state of an existing order: status, invoice,
	// item count, order total and modification time.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get loads the complete aggregate. Returns ObjectNotFoundError when missing.
	Get(ctx context.Context, id kernel.ID) (*order.Order, error)

	// GetForUpdate loads the aggregate and locks its row until the transaction ends.
	// Concurrent transitions of the same order are serialized by this lock.
	GetForUpdate(ctx context.Context, id kernel.ID) (*order.Order, error)

	// HashExists reports whether any order already uses the hash.
	HashExists(ctx context.Context, hash order.Hash) (bool, error)

	// ReplaceLineItems deletes the stored cart snapshot of the order and inserts the given one.
	ReplaceLineItems(ctx context.Context, orderID kernel.ID, items []order.LineItem) error

	// ReplaceTotals deletes the stored totals of the order and inserts the given ones.
	ReplaceTotals(ctx context.Context, orderID kernel.ID, totals []order.Total) error

	// Delete removes the orders with the given ids together with everything they own
	// and returns how many orders were deleted.
	Delete(ctx context.Context, ids []kernel.ID) (int64, error)
}
