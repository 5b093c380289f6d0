package commands

import (
	"context"
)

// AttachLineItemsCommandHandler stores a cart snapshot and refreshes the item count
// and order total of the order.
type AttachLineItemsCommandHandler struct {
	uowFactory OrderUoWFactory
	clock      Clock
}

func NewAttachLineItemsCommandHandler(uowFactory OrderUoWFactory, clock Clock) AttachLineItemsCommandHandler {
	return AttachLineItemsCommandHandler{uowFactory: uowFactory, clock: clock}
}

func (h AttachLineItemsCommandHandler) Handle(ctx context.Context, cmd AttachLineItemsCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.OrderRepository()
	o, err := repo.GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	o.ReplaceLineItems(cmd.Items(), h.clock())

	if err = repo.ReplaceLineItems(ctx, o.ID(), o.LineItems()); err != nil {
		return err
	}
	if err = repo.Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
