package commands

import (
	"errors"
	"fmt"
	"strings"

	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CouponRequest names a catalog coupon and the discount granted by it.
type CouponRequest struct {
	Code   string
	Amount decimal.Decimal
}

func (r CouponRequest) validate() error {
	if strings.TrimSpace(r.Code) == "" {
		return errs.NewValueIsRequiredError("coupon code")
	}
	if !r.Amount.IsPositive() {
		return errs.NewValueIsInvalidErrorWithCause("coupon amount", fmt.Errorf("%s is not greater than 0", r.Amount))
	}
	return nil
}

// CreateOrderCommand places a new order. The cart snapshot, totals and coupon are optional
// and are stored in the same transaction as the order.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(details, items, totals, nil, true)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	result, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
//	fmt.Printf("Order %d created with hash %s", result.OrderID, result.Hash)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	details          order.Details
	lineItems        []order.LineItem
	totals           []order.Total
	coupon           *CouponRequest
	sendConfirmation bool

	guard guard.ConstructorGuard
}

func NewCreateOrderCommand(
	details order.Details,
	lineItems []order.LineItem,
	totals []order.Total,
	coupon *CouponRequest,
	sendConfirmation bool,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		lineItems:        append([]order.LineItem(nil), lineItems...),
		totals:           append([]order.Total(nil), totals...),
		sendConfirmation: sendConfirmation,
		guard:            guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setDetails(details),
		cmd.setCoupon(coupon),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) Details() order.Details      { return c.details }
func (c CreateOrderCommand) LineItems() []order.LineItem { return c.lineItems }
func (c CreateOrderCommand) Totals() []order.Total       { return c.totals }
func (c CreateOrderCommand) Coupon() *CouponRequest      { return c.coupon }
func (c CreateOrderCommand) SendConfirmation() bool      { return c.sendConfirmation }

func (c *CreateOrderCommand) setDetails(details order.Details) error {
	if err := details.LocationID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("location id", err)
	}
	if err := details.Type.Validate(); err != nil {
		return err
	}

	c.details = details
	return nil
}

func (c *CreateOrderCommand) setCoupon(coupon *CouponRequest) error {
	if coupon == nil {
		return nil
	}
	if err := coupon.validate(); err != nil {
		return err
	}

	req := *coupon
	req.Code = strings.TrimSpace(req.Code)
	c.coupon = &req
	return nil
}
