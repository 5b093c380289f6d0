package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var ErrAttachTotalsCommandIsNotConstructed = errors.New(
	"AttachTotalsCommand must be created via NewAttachTotalsCommand constructor",
)

// AttachTotalsCommand replaces the summary lines of an order.
type AttachTotalsCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.ID
	totals  []order.Total

	guard guard.ConstructorGuard
}

func NewAttachTotalsCommand(orderID kernel.ID, totals []order.Total) (AttachTotalsCommand, error) {
	if err := orderID.Validate(); err != nil {
		return AttachTotalsCommand{}, errs.NewValueIsRequiredErrorWithCause("order id", err)
	}

	seen := make(map[string]struct{}, len(totals))
	for _, t := range totals {
		if _, ok := seen[t.Code]; ok {
			return AttachTotalsCommand{}, errs.NewValueIsInvalidError("duplicate total code " + t.Code)
		}
		seen[t.Code] = struct{}{}
	}

	return AttachTotalsCommand{
		orderID: orderID,
		totals:  append([]order.Total(nil), totals...),
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c AttachTotalsCommand) Validate() error {
	return c.guard.Validate(ErrAttachTotalsCommandIsNotConstructed)
}

func (c AttachTotalsCommand) OrderID() kernel.ID    { return c.orderID }
func (c AttachTotalsCommand) Totals() []order.Total { return c.totals }
