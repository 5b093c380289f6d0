package commands

import (
	"context"

	"go.uber.org/zap"
)

// DeleteOrdersCommandHandler deletes orders and reports how many existed.
type DeleteOrdersCommandHandler struct {
	uowFactory OrderUoWFactory
	logger     *zap.Logger
}

func NewDeleteOrdersCommandHandler(uowFactory OrderUoWFactory, logger *zap.Logger) DeleteOrdersCommandHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return DeleteOrdersCommandHandler{uowFactory: uowFactory, logger: logger}
}

func (h DeleteOrdersCommandHandler) Handle(ctx context.Context, cmd DeleteOrdersCommand) (int64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	deleted, err := uow.OrderRepository().Delete(ctx, cmd.IDs())
	if err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	h.logger.Info("orders deleted", zap.Int("requested", len(cmd.IDs())), zap.Int64("deleted", deleted))
	return deleted, nil
}
