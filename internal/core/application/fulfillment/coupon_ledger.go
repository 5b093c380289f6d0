package fulfillment

import (
	"context"
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/coupon"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// CouponLedger keeps at most one redemption per order.
type CouponLedger struct {
	coupons ports.CouponRepository
}

func NewCouponLedger(coupons ports.CouponRepository) CouponLedger {
	return CouponLedger{coupons: coupons}
}

// Redeem reverses any previous redemption of the order and stores a new one that
// snapshots the coupon code and minimum total.
func (l CouponLedger) Redeem(
	ctx context.Context,
	orderID kernel.ID,
	customerID *kernel.ID,
	c coupon.Coupon,
	discount decimal.Decimal,
	now time.Time,
) (coupon.Redemption, error) {
	redemption, err := coupon.NewRedemption(orderID, customerID, c, discount, now)
	if err != nil {
		return coupon.Redemption{}, err
	}

	if _, err = l.coupons.DeleteRedemption(ctx, orderID); err != nil {
		return coupon.Redemption{}, err
	}

	if err = l.coupons.AddRedemption(ctx, redemption); err != nil {
		return coupon.Redemption{}, err
	}

	return redemption, nil
}

// Finalize confirms the redemption of the order. Orders without a coupon are left alone.
func (l CouponLedger) Finalize(ctx context.Context, orderID kernel.ID, now time.Time) error {
	redemption, err := l.coupons.GetRedemption(ctx, orderID)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	if redemption.IsFinalized() {
		return nil
	}

	redemption.Finalize(now)
	return l.coupons.UpdateRedemption(ctx, redemption)
}
