package commands

import (
	"errors"
	"strings"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var ErrAttachCouponCommandIsNotConstructed = errors.New(
	"AttachCouponCommand must be created via NewAttachCouponCommand constructor",
)

// AttachCouponCommand redeems a coupon for an order, replacing any earlier redemption.
// A nil customer falls back to the customer of the order.
type AttachCouponCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.ID
	customerID *kernel.ID
	coupon     CouponRequest

	guard guard.ConstructorGuard
}

func NewAttachCouponCommand(orderID kernel.ID, customerID *kernel.ID, coupon CouponRequest) (AttachCouponCommand, error) {
	cmd := AttachCouponCommand{guard: guard.NewConstructorGuard()}

	if err := orderID.Validate(); err != nil {
		return AttachCouponCommand{}, errs.NewValueIsRequiredErrorWithCause("order id", err)
	}
	cmd.orderID = orderID

	if customerID != nil {
		if err := customerID.Validate(); err != nil {
			return AttachCouponCommand{}, errs.NewValueIsInvalidErrorWithCause("customer id", err)
		}
		cmd.customerID = customerID
	}

	if err := cmd.setCoupon(coupon); err != nil {
		return AttachCouponCommand{}, err
	}

	return cmd, nil
}

func (c AttachCouponCommand) Validate() error {
	return c.guard.Validate(ErrAttachCouponCommandIsNotConstructed)
}

func (c AttachCouponCommand) OrderID() kernel.ID     { return c.orderID }
func (c AttachCouponCommand) CustomerID() *kernel.ID { return c.customerID }
func (c AttachCouponCommand) Coupon() CouponRequest  { return c.coupon }

func (c *AttachCouponCommand) setCoupon(coupon CouponRequest) error {
	if err := coupon.validate(); err != nil {
		return err
	}
	coupon.Code = strings.TrimSpace(coupon.Code)
	c.coupon = coupon
	return nil
}
