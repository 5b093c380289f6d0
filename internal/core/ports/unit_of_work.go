package ports

import (
	"context"
)

// UnitOfWorkFactory hands out one UnitOfWork per command so concurrent
// transitions never share a transaction.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork is the transaction of one fulfillment operation. The order row lock,
// the stock updates, the coupon finalization, the history entry and the invoice
// number all live inside it.
type UnitOfWork interface {
	// Begin opens the transaction.
	Begin(ctx context.Context) error

	// Commit fails when Begin was not called or the database rejects the commit.
	Commit(ctx context.Context) error

	// Rollback returns an error after Commit; deferred calls ignore it.
	Rollback(ctx context.Context) error

	// The repositories share the transaction opened by Begin.
	OrderRepository() OrderRepository
	StatusRepository() StatusRepository
	HistoryRepository() HistoryRepository
	CouponRepository() CouponRepository
	MenuRepository() MenuRepository
	InvoiceSequence() InvoiceSequence
}
