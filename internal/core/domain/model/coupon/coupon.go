package coupon

import (
	"fmt"
	"strings"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Coupon is a catalog entry looked up by code.
type Coupon struct {
	id       kernel.ID
	code     string
	minTotal decimal.Decimal
}

func NewCoupon(id kernel.ID, code string, minTotal decimal.Decimal) (Coupon, error) {
	if err := id.Validate(); err != nil {
		return Coupon{}, errs.NewValueIsRequiredErrorWithCause("coupon id", err)
	}
	code = strings.TrimSpace(code)
	if code == "" {
		return Coupon{}, errs.NewValueIsRequiredError("coupon code")
	}
	return Coupon{id: id, code: code, minTotal: minTotal}, nil
}

func (c Coupon) ID() kernel.ID             { return c.id }
func (c Coupon) Code() string              { return c.code }
func (c Coupon) MinTotal() decimal.Decimal { return c.minTotal }

// Redemption is the single active coupon use of an order.
type Redemption struct {
	orderID     kernel.ID
	customerID  *kernel.ID
	couponID    kernel.ID
	code        string
	amount      decimal.Decimal
	minTotal    decimal.Decimal
	redeemedAt  time.Time
	finalizedAt *time.Time
}

// NewRedemption snapshots the coupon for the order. The discount must be positive and
// is stored negated.
func NewRedemption(orderID kernel.ID, customerID *kernel.ID, c Coupon, discount decimal.Decimal, now time.Time) (Redemption, error) {
	if err := orderID.Validate(); err != nil {
		return Redemption{}, errs.NewValueIsRequiredErrorWithCause("order id", err)
	}
	if err := c.id.Validate(); err != nil {
		return Redemption{}, errs.NewValueIsRequiredErrorWithCause("coupon", err)
	}
	if !discount.IsPositive() {
		return Redemption{}, errs.NewValueIsInvalidErrorWithCause("coupon amount", fmt.Errorf("%s is not greater than 0", discount))
	}

	return Redemption{
		orderID:    orderID,
		customerID: customerID,
		couponID:   c.id,
		code:       c.code,
		amount:     discount.Neg(),
		minTotal:   c.minTotal,
		redeemedAt: now,
	}, nil
}

// RedemptionSnapshot is the persisted state of a redemption.
type RedemptionSnapshot struct {
	OrderID     kernel.ID
	CustomerID  *kernel.ID
	CouponID    kernel.ID
	Code        string
	Amount      decimal.Decimal
	MinTotal    decimal.Decimal
	RedeemedAt  time.Time
	FinalizedAt *time.Time
}

func RestoreRedemption(s RedemptionSnapshot) Redemption {
	return Redemption{
		orderID:     s.OrderID,
		customerID:  s.CustomerID,
		couponID:    s.CouponID,
		code:        s.Code,
		amount:      s.Amount.Abs().Neg(),
		minTotal:    s.MinTotal,
		redeemedAt:  s.RedeemedAt,
		finalizedAt: s.FinalizedAt,
	}
}

func (r Redemption) OrderID() kernel.ID        { return r.orderID }
func (r Redemption) CustomerID() *kernel.ID    { return r.customerID }
func (r Redemption) CouponID() kernel.ID       { return r.couponID }
func (r Redemption) Code() string              { return r.code }
func (r Redemption) Amount() decimal.Decimal   { return r.amount }
func (r Redemption) MinTotal() decimal.Decimal { return r.minTotal }
func (r Redemption) RedeemedAt() time.Time     { return r.redeemedAt }
func (r Redemption) FinalizedAt() *time.Time   { return r.finalizedAt }

// IsFinalized reports whether a processing transition already confirmed the redemption.
func (r Redemption) IsFinalized() bool {
	return r.finalizedAt != nil
}

// Finalize confirms the redemption. Finalizing twice keeps the first timestamp.
func (r *Redemption) Finalize(now time.Time) {
	if r.finalizedAt != nil {
		return
	}
	r.finalizedAt = &now
}
