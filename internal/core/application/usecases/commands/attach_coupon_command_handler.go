package commands

import (
	"context"

	"fulfillment/internal/core/application/fulfillment"
	"fulfillment/internal/core/domain/model/coupon"
)

// AttachCouponCommandHandler records a coupon redemption through the coupon ledger.
type AttachCouponCommandHandler struct {
	uowFactory CouponUoWFactory
	clock      Clock
}

func NewAttachCouponCommandHandler(uowFactory CouponUoWFactory, clock Clock) AttachCouponCommandHandler {
	return AttachCouponCommandHandler{uowFactory: uowFactory, clock: clock}
}

func (h AttachCouponCommandHandler) Handle(ctx context.Context, cmd AttachCouponCommand) (coupon.Redemption, error) {
	if err := cmd.Validate(); err != nil {
		return coupon.Redemption{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return coupon.Redemption{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	o, err := uow.OrderRepository().GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return coupon.Redemption{}, err
	}

	coupons := uow.CouponRepository()
	c, err := coupons.FindByCode(ctx, cmd.Coupon().Code)
	if err != nil {
		return coupon.Redemption{}, err
	}

	customerID := cmd.CustomerID()
	if customerID == nil {
		customerID = o.Details().CustomerID
	}

	redemption, err := fulfillment.NewCouponLedger(coupons).Redeem(ctx, o.ID(), customerID, c, cmd.Coupon().Amount, h.clock())
	if err != nil {
		return coupon.Redemption{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return coupon.Redemption{}, err
	}
	return redemption, nil
}
