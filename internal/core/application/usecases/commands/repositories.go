// Package commands contains business operations that modify order state.
// All commands follow a consistent pattern: constructor validation, transaction
// management through a unit of work, and persistence.
package commands

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/model/notification"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/status"
	"fulfillment/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// Each handler asks only for the repositories it uses.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	CouponRepoFactory interface {
		CouponRepository() ports.CouponRepository
	}

	// OrderUoW manages transactions for order-only operations.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// CouponUoW manages transactions that write an order and its coupon redemption.
	CouponUoW interface {
		TxManager
		OrderRepoFactory
		CouponRepoFactory
	}

	CouponUoWFactory interface {
		Create() CouponUoW
	}

	// UoW exposes every repository a status transition touches.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   o, err := uow.OrderRepository().GetForUpdate(ctx, id)
	//   // ... apply side effects
	//
	//   err = uow.Commit(ctx)
	UoW interface {
		TxManager
		OrderRepoFactory
		CouponRepoFactory
		StatusRepository() ports.StatusRepository
		HistoryRepository() ports.HistoryRepository
		MenuRepository() ports.MenuRepository
		InvoiceSequence() ports.InvoiceSequence
	}

	UoWFactory interface {
		Create() UoW
	}
)

// Clock returns the current time. Handlers take it explicitly so tests can pin it.
type Clock func() time.Time

// StatusNotifier mails the customer about a committed status change.
type StatusNotifier interface {
	NotifyStatusChange(ctx context.Context, o *order.Order, st status.Status, comment string) bool
}

// ConfirmationNotifier mails the recipients of a newly placed order.
type ConfirmationNotifier interface {
	SendConfirmation(ctx context.Context, o *order.Order) bool
}

// NotificationSender renders and sends one templated mail.
type NotificationSender interface {
	Send(ctx context.Context, kind notification.Kind, recipient string, data notification.Data) error
}
