package commands

import (
	"context"
)

// AttachTotalsCommandHandler stores the totals of an order. The "total" line becomes the order total.
type AttachTotalsCommandHandler struct {
	uowFactory OrderUoWFactory
	clock      Clock
}

func NewAttachTotalsCommandHandler(uowFactory OrderUoWFactory, clock Clock) AttachTotalsCommandHandler {
	return AttachTotalsCommandHandler{uowFactory: uowFactory, clock: clock}
}

func (h AttachTotalsCommandHandler) Handle(ctx context.Context, cmd AttachTotalsCommand) error {
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

	o.ReplaceTotals(cmd.Totals(), h.clock())

	if err = repo.ReplaceTotals(ctx, o.ID(), o.Totals()); err != nil {
		return err
	}
	if err = repo.Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
