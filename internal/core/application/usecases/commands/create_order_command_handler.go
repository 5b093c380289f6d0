package commands

import (
	"context"
	"errors"

	"fulfillment/internal/core/application/fulfillment"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/ports"

	"go.uber.org/zap"
)

// maxHashAttempts bounds the regeneration loop of a colliding hash.
const maxHashAttempts = 5

var ErrHashNotUnique = errors.New("could not generate a unique order hash")

// CreateOrderResult identifies the placed order.
type CreateOrderResult struct {
	OrderID          kernel.ID
	Hash             order.Hash
	ConfirmationSent bool
}

// CreateOrderCommandHandler places new orders.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory, notifier, order.NewHash, time.Now, logger)
//	result, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("order creation failed: %w", err)
//	}
type CreateOrderCommandHandler struct {
	uowFactory CouponUoWFactory
	notifier   ConfirmationNotifier
	newHash    func() order.Hash
	clock      Clock
	logger     *zap.Logger
}

func NewCreateOrderCommandHandler(
	uowFactory CouponUoWFactory,
	notifier ConfirmationNotifier,
	newHash func() order.Hash,
	clock Clock,
	logger *zap.Logger,
) CreateOrderCommandHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		newHash:    newHash,
		clock:      clock,
		logger:     logger,
	}
}

// Handle inserts the order with a fresh hash and no status, attaches the optional cart,
// totals and coupon, commits, and then sends the confirmation mails when requested.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (CreateOrderResult, error) {
	if err := cmd.Validate(); err != nil {
		return CreateOrderResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return CreateOrderResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	hash, err := h.uniqueHash(ctx, orderRepo)
	if err != nil {
		return CreateOrderResult{}, err
	}

	now := h.clock()
	o, err := order.NewOrder(cmd.Details(), hash, now)
	if err != nil {
		return CreateOrderResult{}, err
	}
	if len(cmd.LineItems()) > 0 {
		o.ReplaceLineItems(cmd.LineItems(), now)
	}
	if len(cmd.Totals()) > 0 {
		o.ReplaceTotals(cmd.Totals(), now)
	}

	if err = orderRepo.Add(ctx, o); err != nil {
		return CreateOrderResult{}, err
	}

	if req := cmd.Coupon(); req != nil {
		couponRepo := uow.CouponRepository()
		c, findErr := couponRepo.FindByCode(ctx, req.Code)
		if findErr != nil {
			return CreateOrderResult{}, findErr
		}
		if _, err = fulfillment.NewCouponLedger(couponRepo).Redeem(ctx, o.ID(), cmd.Details().CustomerID, c, req.Amount, now); err != nil {
			return CreateOrderResult{}, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return CreateOrderResult{}, err
	}

	result := CreateOrderResult{OrderID: o.ID(), Hash: o.Hash()}
	if cmd.SendConfirmation() && h.notifier != nil {
		result.ConfirmationSent = h.notifier.SendConfirmation(ctx, o)
	}

	h.logger.Info("order created", zap.Int64("order_id", o.ID().Int64()), zap.String("hash", o.Hash().String()))
	return result, nil
}

func (h CreateOrderCommandHandler) uniqueHash(ctx context.Context, orders ports.OrderRepository) (order.Hash, error) {
	for range maxHashAttempts {
		hash := h.newHash()
		exists, err := orders.HashExists(ctx, hash)
		if err != nil {
			return "", err
		}
		if !exists {
			return hash, nil
		}
	}
	return "", ErrHashNotUnique
}
