package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var ErrAttachLineItemsCommandIsNotConstructed = errors.New(
	"AttachLineItemsCommand must be created via NewAttachLineItemsCommand constructor",
)

// AttachLineItemsCommand replaces the cart snapshot of an order. An empty snapshot clears it.
type AttachLineItemsCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.ID
	items   []order.LineItem

	guard guard.ConstructorGuard
}

func NewAttachLineItemsCommand(orderID kernel.ID, items []order.LineItem) (AttachLineItemsCommand, error) {
	if err := orderID.Validate(); err != nil {
		return AttachLineItemsCommand{}, errs.NewValueIsRequiredErrorWithCause("order id", err)
	}

	return AttachLineItemsCommand{
		orderID: orderID,
		items:   append([]order.LineItem(nil), items...),
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c AttachLineItemsCommand) Validate() error {
	return c.guard.Validate(ErrAttachLineItemsCommandIsNotConstructed)
}

func (c AttachLineItemsCommand) OrderID() kernel.ID      { return c.orderID }
func (c AttachLineItemsCommand) Items() []order.LineItem { return c.items }
