// Package couponrepo persists the coupon catalog and the coupon redemptions of orders.
package couponrepo

import (
	"time"

	"fulfillment/internal/core/domain/model/coupon"
	"fulfillment/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
)

// CouponDTO is a row of the coupons catalog.
type CouponDTO struct {
	ID       int64           `gorm:"primaryKey"`
	Code     string          `gorm:"size:32;not null;uniqueIndex"`
	MinTotal decimal.Decimal `gorm:"type:numeric(15,4);not null;default:0"`
}

func (CouponDTO) TableName() string {
	return "coupons"
}

// RedemptionDTO is the single redemption of an order. Code and min total are copies
// taken at redemption time, so there is no foreign key to coupons.
type RedemptionDTO struct {
	ID          int64 `gorm:"primaryKey;autoIncrement"`
	OrderID     int64 `gorm:"not null;uniqueIndex"`
	CustomerID  *int64
	CouponID    int64           `gorm:"not null"`
	Code        string          `gorm:"size:32;not null"`
	Amount      decimal.Decimal `gorm:"type:numeric(15,4);not null"`
	MinTotal    decimal.Decimal `gorm:"type:numeric(15,4);not null"`
	RedeemedAt  time.Time
	FinalizedAt *time.Time
}

func (RedemptionDTO) TableName() string {
	return "coupon_redemptions"
}

func couponToDomain(dto CouponDTO) (coupon.Coupon, error) {
	return coupon.NewCoupon(kernel.ID(dto.ID), dto.Code, dto.MinTotal)
}

func redemptionFromDomain(r coupon.Redemption) RedemptionDTO {
	var customer *int64
	if id := r.CustomerID(); id != nil {
		v := id.Int64()
		customer = &v
	}
	return RedemptionDTO{
		OrderID:     r.OrderID().Int64(),
		CustomerID:  customer,
		CouponID:    r.CouponID().Int64(),
		Code:        r.Code(),
		Amount:      r.Amount(),
		MinTotal:    r.MinTotal(),
		RedeemedAt:  r.RedeemedAt(),
		FinalizedAt: r.FinalizedAt(),
	}
}

func redemptionToDomain(dto RedemptionDTO) coupon.Redemption {
	var customer *kernel.ID
	if dto.CustomerID != nil {
		customer = kernel.ID(*dto.CustomerID).Ptr()
	}
	return coupon.RestoreRedemption(coupon.RedemptionSnapshot{
		OrderID:     kernel.ID(dto.OrderID),
		CustomerID:  customer,
		CouponID:    kernel.ID(dto.CouponID),
		Code:        dto.Code,
		Amount:      dto.Amount,
		MinTotal:    dto.MinTotal,
		RedeemedAt:  dto.RedeemedAt,
		FinalizedAt: dto.FinalizedAt,
	})
}
