package coupon_test

import (
	"testing"
	"time"

	"fulfillment/internal/core/domain/model/coupon"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)

func TestNewCoupon(t *testing.T) {
	c, err := coupon.NewCoupon(4, " SAVE10 ", decimal.NewFromInt(20))
	require.NoError(t, err)
	assert.Equal(t, "SAVE10", c.Code())

	_, err = coupon.NewCoupon(0, "X", decimal.Zero)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	_, err = coupon.NewCoupon(1, "  ", decimal.Zero)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestNewRedemption(t *testing.T) {
	c, _ := coupon.NewCoupon(4, "SAVE10", decimal.NewFromInt(20))
	customer := kernel.ID(9)

	r, err := coupon.NewRedemption(100, &customer, c, decimal.RequireFromString("10.00"), now)

	require.NoError(t, err)
	assert.Equal(t, kernel.ID(100), r.OrderID())
	assert.Equal(t, kernel.ID(4), r.CouponID())
	assert.Equal(t, "SAVE10", r.Code())
	assert.True(t, decimal.NewFromInt(-10).Equal(r.Amount()))
	assert.True(t, decimal.NewFromInt(20).Equal(r.MinTotal()))
	assert.False(t, r.IsFinalized())

	t.Run("rejects non positive discount", func(t *testing.T) {
		_, err := coupon.NewRedemption(100, nil, c, decimal.Zero, now)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)

		_, err = coupon.NewRedemption(100, nil, c, decimal.NewFromInt(-5), now)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects missing order", func(t *testing.T) {
		_, err := coupon.NewRedemption(0, nil, c, decimal.NewFromInt(1), now)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestRedemption_Finalize(t *testing.T) {
	c, _ := coupon.NewCoupon(4, "SAVE10", decimal.Zero)
	r, err := coupon.NewRedemption(100, nil, c, decimal.NewFromInt(3), now)
	require.NoError(t, err)

	r.Finalize(now)
	r.Finalize(now.Add(time.Hour))

	require.True(t, r.IsFinalized())
	assert.Equal(t, now, *r.FinalizedAt())
}

func TestRestoreRedemption_KeepsAmountNegative(t *testing.T) {
	r := coupon.RestoreRedemption(coupon.RedemptionSnapshot{
		OrderID:  1,
		CouponID: 2,
		Code:     "X",
		Amount:   decimal.NewFromInt(5),
	})

	assert.True(t, decimal.NewFromInt(-5).Equal(r.Amount()))
}
