package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/coupon"
	"fulfillment/internal/core/domain/model/kernel"
)

// CouponRepository reads the coupon catalog and stores redemptions.
type CouponRepository interface {
	// FindByCode returns ObjectNotFoundError for unknown codes.
	FindByCode(ctx context.Context, code string) (coupon.Coupon, error)

	// GetRedemption returns ObjectNotFoundError when the order has no redemption.
	GetRedemption(ctx context.Context, orderID kernel.ID) (coupon.Redemption, error)

	AddRedemption(ctx context.Context, redemption coupon.Redemption) error
	UpdateRedemption(ctx context.Context, redemption coupon.Redemption) error

	// DeleteRedemption reverses the redemption of the order, returning the rows removed.
	DeleteRedemption(ctx context.Context, orderID kernel.ID) (int64, error)
}
