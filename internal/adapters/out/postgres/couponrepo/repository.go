package couponrepo

import (
	"context"
	"errors"
	"strings"

	"fulfillment/internal/core/domain/model/coupon"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormCouponRepository implements ports.CouponRepository using GORM.
type GormCouponRepository struct {
	db *gorm.DB
}

func NewGormCouponRepository(db *gorm.DB) *GormCouponRepository {
	return &GormCouponRepository{db: db}
}

// FindByCode matches codes case-insensitively.
func (r *GormCouponRepository) FindByCode(ctx context.Context, code string) (coupon.Coupon, error) {
	var dto CouponDTO
	err := r.db.WithContext(ctx).First(&dto, "LOWER(code) = ?", strings.ToLower(strings.TrimSpace(code))).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return coupon.Coupon{}, errs.NewObjectNotFoundError("coupon", code)
		}
		return coupon.Coupon{}, err
	}
	return couponToDomain(dto)
}

func (r *GormCouponRepository) GetRedemption(ctx context.Context, orderID kernel.ID) (coupon.Redemption, error) {
	var dto RedemptionDTO
	if err := r.db.WithContext(ctx).First(&dto, "order_id = ?", orderID.Int64()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return coupon.Redemption{}, errs.NewObjectNotFoundError("coupon redemption", orderID.Int64())
		}
		return coupon.Redemption{}, err
	}
	return redemptionToDomain(dto), nil
}

func (r *GormCouponRepository) AddRedemption(ctx context.Context, redemption coupon.Redemption) error {
	dto := redemptionFromDomain(redemption)
	return r.db.WithContext(ctx).Create(&dto).Error
}

func (r *GormCouponRepository) UpdateRedemption(ctx context.Context, redemption coupon.Redemption) error {
	dto := redemptionFromDomain(redemption)
	result := r.db.WithContext(ctx).Model(&RedemptionDTO{}).
		Where("order_id = ?", dto.OrderID).
		Updates(map[string]any{"finalized_at": dto.FinalizedAt})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("coupon redemption", dto.OrderID)
	}
	return nil
}

func (r *GormCouponRepository) DeleteRedemption(ctx context.Context, orderID kernel.ID) (int64, error) {
	result := r.db.WithContext(ctx).Where("order_id = ?", orderID.Int64()).Delete(&RedemptionDTO{})
	return result.RowsAffected, result.Error
}

// SaveCoupon upserts a catalog coupon. Used to seed the catalog.
func (r *GormCouponRepository) SaveCoupon(ctx context.Context, c coupon.Coupon) error {
	dto := CouponDTO{ID: c.ID().Int64(), Code: c.Code(), MinTotal: c.MinTotal()}
	return r.db.WithContext(ctx).Save(&dto).Error
}
