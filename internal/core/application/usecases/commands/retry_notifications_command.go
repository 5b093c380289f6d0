package commands

import (
	"errors"

	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var ErrRetryNotificationsCommandIsNotConstructed = errors.New(
	"RetryNotificationsCommand must be created via NewRetryNotificationsCommand constructor",
)

// RetryNotificationsCommand drains one batch of the notification outbox.
type RetryNotificationsCommand struct { //nolint:recvcheck //using for validation
	batchSize int

	guard guard.ConstructorGuard
}

func NewRetryNotificationsCommand(batchSize int) (RetryNotificationsCommand, error) {
	if batchSize <= 0 {
		return RetryNotificationsCommand{}, errs.NewValueIsOutOfRangeError("batch size", batchSize, 1, "unbounded")
	}
	return RetryNotificationsCommand{batchSize: batchSize, guard: guard.NewConstructorGuard()}, nil
}

func (c RetryNotificationsCommand) Validate() error {
	return c.guard.Validate(ErrRetryNotificationsCommandIsNotConstructed)
}

func (c RetryNotificationsCommand) BatchSize() int { return c.batchSize }
