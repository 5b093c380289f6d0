package orderrepo

import (
	"context"
	"errors"

	"fulfillment/internal/adapters/out/postgres/pgerr"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormOrderRepository implements ports.OrderRepository using GORM.
type GormOrderRepository struct {
	db *gorm.DB
}

func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// Add inserts the order row, assigns the generated id and stores the attached
// line items and totals.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(&dto).Error; err != nil {
		if pgerr.IsUniqueViolation(err, "") {
			return errs.NewValueIsInvalidErrorWithCause("hash", err)
		}
		return err
	}

	if err := aggregate.AssignID(kernel.ID(dto.ID)); err != nil {
		return err
	}

	if err := r.insertLineItems(ctx, dto.ID, aggregate.LineItems()); err != nil {
		return err
	}
	return r.insertTotals(ctx, dto.ID, aggregate.Totals())
}

// Update writes the scalar state of the order. Nil status and invoice values are written as NULL.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&OrderDTO{}).Where("id = ?", dto.ID).Updates(map[string]any{
		"status_id":      dto.StatusID,
		"invoice_prefix": dto.InvoicePrefix,
		"invoice_no":     dto.InvoiceNo,
		"invoice_date":   dto.InvoiceDate,
		"total_items":    dto.TotalItems,
		"order_total":    dto.OrderTotal,
		"updated_at":     dto.UpdatedAt,
	})
	if result.Error != nil {
		if pgerr.IsUniqueViolation(result.Error, "idx_orders_invoice") {
			var prefix string
			var number int64
			if dto.InvoicePrefix != nil && dto.InvoiceNo != nil {
				prefix, number = *dto.InvoicePrefix, *dto.InvoiceNo
			}
			return errs.NewAllocationConflictError(prefix, number, result.Error)
		}
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", dto.ID)
	}
	return nil
}

func (r *GormOrderRepository) Get(ctx context.Context, id kernel.ID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	return r.load(r.db.WithContext(ctx), id)
}

// GetForUpdate takes the row lock of the order before loading it.
func (r *GormOrderRepository) GetForUpdate(ctx context.Context, id kernel.ID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var locked OrderDTO
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Select("id").
		First(&locked, "id = ?", id.Int64()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.Int64())
		}
		return nil, err
	}

	return r.load(r.db.WithContext(ctx), id)
}

func (r *GormOrderRepository) load(db *gorm.DB, id kernel.ID) (*order.Order, error) {
	var dto OrderDTO
	err := db.
		Preload("LineItems", func(tx *gorm.DB) *gorm.DB { return tx.Order("position") }).
		Preload("LineItems.Options", func(tx *gorm.DB) *gorm.DB { return tx.Order("id") }).
		Preload("Totals", func(tx *gorm.DB) *gorm.DB { return tx.Order("priority, id") }).
		First(&dto, "id = ?", id.Int64()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.Int64())
		}
		return nil, err
	}

	return toDomain(dto)
}

func (r *GormOrderRepository) HashExists(ctx context.Context, hash order.Hash) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&OrderDTO{}).Where("hash = ?", hash.String()).Count(&count).Error
	return count > 0, err
}

func (r *GormOrderRepository) ReplaceLineItems(ctx context.Context, orderID kernel.ID, items []order.LineItem) error {
	db := r.db.WithContext(ctx)
	if err := db.Where("order_id = ?", orderID.Int64()).Delete(&LineItemOptionDTO{}).Error; err != nil {
		return err
	}
	if err := db.Where("order_id = ?", orderID.Int64()).Delete(&LineItemDTO{}).Error; err != nil {
		return err
	}
	return r.insertLineItems(ctx, orderID.Int64(), items)
}

func (r *GormOrderRepository) ReplaceTotals(ctx context.Context, orderID kernel.ID, totals []order.Total) error {
	if err := r.db.WithContext(ctx).Where("order_id = ?", orderID.Int64()).Delete(&TotalDTO{}).Error; err != nil {
		return err
	}
	return r.insertTotals(ctx, orderID.Int64(), totals)
}

// Delete removes the orders; owned rows follow through ON DELETE CASCADE.
func (r *GormOrderRepository) Delete(ctx context.Context, ids []kernel.ID) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	raw := make([]int64, 0, len(ids))
	for _, id := range ids {
		raw = append(raw, id.Int64())
	}

	result := r.db.WithContext(ctx).Where("id IN ?", raw).Delete(&OrderDTO{})
	return result.RowsAffected, result.Error
}

func (r *GormOrderRepository) insertLineItems(ctx context.Context, orderID int64, items []order.LineItem) error {
	if len(items) == 0 {
		return nil
	}
	dtos := lineItemsFromDomain(orderID, items)
	return r.db.WithContext(ctx).Create(&dtos).Error
}

func (r *GormOrderRepository) insertTotals(ctx context.Context, orderID int64, totals []order.Total) error {
	if len(totals) == 0 {
		return nil
	}
	dtos := totalsFromDomain(orderID, totals)
	return r.db.WithContext(ctx).Create(&dtos).Error
}
