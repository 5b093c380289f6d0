package fulfillment

import (
	"context"
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"

	"go.uber.org/zap"
)

// StockReport summarizes one decrement run.
type StockReport struct {
	Adjusted []kernel.ID
	Skipped  []kernel.ID
	// Failures holds the line failures tolerated under StockFailureLog.
	Failures []error
}

// InventoryAdjuster decrements menu stock for the line items of an order.
type InventoryAdjuster struct {
	menus  ports.MenuRepository
	policy StockFailurePolicy
	floor  int
	logger *zap.Logger
}

func NewInventoryAdjuster(menus ports.MenuRepository, policy StockFailurePolicy, floor int, logger *zap.Logger) InventoryAdjuster {
	if logger == nil {
		logger = zap.NewNop()
	}
	return InventoryAdjuster{menus: menus, policy: policy, floor: floor, logger: logger}
}

// ApplyDecrement subtracts the ordered quantity of every line item. Menus without stock
// tracking are skipped. Under StockFailureAbort the first failure is returned as a
// SideEffectFailureError. Under StockFailureLog a missing menu or a shortfall is logged
// and reported; any other failure still aborts.
func (a InventoryAdjuster) ApplyDecrement(ctx context.Context, o *order.Order) (StockReport, error) {
	var report StockReport

	for _, item := range o.LineItems() {
		tracked, err := a.decrement(ctx, item)
		switch {
		case err == nil && tracked:
			report.Adjusted = append(report.Adjusted, item.MenuID())
		case err == nil:
			report.Skipped = append(report.Skipped, item.MenuID())
		case a.policy == StockFailureLog && isStockShortfall(err):
			a.logger.Warn("stock decrement failed, continuing",
				zap.Int64("order_id", o.ID().Int64()),
				zap.Int64("menu_id", item.MenuID().Int64()),
				zap.Int("quantity", item.Quantity()),
				zap.Error(err),
			)
			report.Failures = append(report.Failures, err)
		default:
			return report, errs.NewSideEffectFailureError("stock", o.ID().Int64(), err)
		}
	}

	return report, nil
}

func (a InventoryAdjuster) decrement(ctx context.Context, item order.LineItem) (bool, error) {
	menu, err := a.menus.FindMenu(ctx, item.MenuID())
	if err != nil {
		return false, err
	}
	if !menu.TracksStock {
		return false, nil
	}

	err = a.menus.UpdateStock(ctx, menu.ID, item.Quantity(), ports.StockSubtract, a.floor)
	if errors.Is(err, ports.ErrInsufficientStock) {
		return true, errs.NewValueIsOutOfRangeErrorWithCause("stock of "+menu.Name, item.Quantity(), a.floor, menu.StockQty, err)
	}
	return true, err
}

// isStockShortfall reports whether err is a missing menu or not enough stock.
func isStockShortfall(err error) bool {
	return errors.Is(err, errs.ErrObjectNotFound) ||
		errors.Is(err, errs.ErrValueIsOutOfRange) ||
		errors.Is(err, ports.ErrInsufficientStock)
}
