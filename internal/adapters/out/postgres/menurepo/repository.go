// Package menurepo reads menu stock and applies relative stock updates.
package menurepo

import (
	"context"
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// MenuDTO is the part of the menus table the workflow reads and writes.
type MenuDTO struct {
	ID            int64           `gorm:"primaryKey"`
	Name          string          `gorm:"size:255;not null"`
	Price         decimal.Decimal `gorm:"type:numeric(15,4);not null;default:0"`
	StockQty      int             `gorm:"not null;default:0"`
	SubtractStock bool
}

func (MenuDTO) TableName() string {
	return "menus"
}

// GormMenuRepository implements ports.MenuRepository using GORM.
type GormMenuRepository struct {
	db *gorm.DB
}

func NewGormMenuRepository(db *gorm.DB) *GormMenuRepository {
	return &GormMenuRepository{db: db}
}

func (r *GormMenuRepository) FindMenu(ctx context.Context, id kernel.ID) (ports.Menu, error) {
	var dto MenuDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Int64()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ports.Menu{}, errs.NewObjectNotFoundError("menu", id.Int64())
		}
		return ports.Menu{}, err
	}

	return ports.Menu{
		ID:          kernel.ID(dto.ID),
		Name:        dto.Name,
		StockQty:    dto.StockQty,
		TracksStock: dto.SubtractStock,
	}, nil
}

// UpdateStock applies the change in a single UPDATE so concurrent orders of the same
// menu never lose a decrement. The floor guard is part of the WHERE clause.
func (r *GormMenuRepository) UpdateStock(
	ctx context.Context,
	id kernel.ID,
	quantity int,
	direction ports.StockDirection,
	floor int,
) error {
	if quantity <= 0 {
		return errs.NewValueIsOutOfRangeError("stock quantity", quantity, 1, "unbounded")
	}

	db := r.db.WithContext(ctx).Model(&MenuDTO{}).Where("id = ?", id.Int64())
	var result *gorm.DB
	switch direction {
	case ports.StockSubtract:
		result = db.Where("stock_qty - ? >= ?", quantity, floor).
			Update("stock_qty", gorm.Expr("stock_qty - ?", quantity))
	case ports.StockAdd:
		result = db.Update("stock_qty", gorm.Expr("stock_qty + ?", quantity))
	default:
		return errs.NewValueIsInvalidError("stock direction")
	}
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected > 0 {
		return nil
	}

	if _, err := r.FindMenu(ctx, id); err != nil {
		return err
	}
	return ports.ErrInsufficientStock
}
