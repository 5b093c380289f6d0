package fulfillment_test

import (
	"context"
	"testing"

	"fulfillment/internal/core/domain/model/coupon"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/status"
	"fulfillment/internal/core/ports"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockMenuRepository struct{ mock.Mock }

func (m *MockMenuRepository) FindMenu(ctx context.Context, id kernel.ID) (ports.Menu, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(ports.Menu), args.Error(1)
}

func (m *MockMenuRepository) UpdateStock(ctx context.Context, id kernel.ID, quantity int, direction ports.StockDirection, floor int) error {
	args := m.Called(ctx, id, quantity, direction, floor)
	return args.Error(0)
}

type MockCouponRepository struct{ mock.Mock }

func (m *MockCouponRepository) FindByCode(ctx context.Context, code string) (coupon.Coupon, error) {
	args := m.Called(ctx, code)
	return args.Get(0).(coupon.Coupon), args.Error(1)
}

func (m *MockCouponRepository) GetRedemption(ctx context.Context, orderID kernel.ID) (coupon.Redemption, error) {
	args := m.Called(ctx, orderID)
	return args.Get(0).(coupon.Redemption), args.Error(1)
}

func (m *MockCouponRepository) AddRedemption(ctx context.Context, r coupon.Redemption) error {
	return m.Called(ctx, r).Error(0)
}

func (m *MockCouponRepository) UpdateRedemption(ctx context.Context, r coupon.Redemption) error {
	return m.Called(ctx, r).Error(0)
}

func (m *MockCouponRepository) DeleteRedemption(ctx context.Context, orderID kernel.ID) (int64, error) {
	args := m.Called(ctx, orderID)
	return args.Get(0).(int64), args.Error(1)
}

type MockHistoryRepository struct{ mock.Mock }

func (m *MockHistoryRepository) Append(ctx context.Context, entry status.HistoryEntry) error {
	return m.Called(ctx, entry).Error(0)
}

func (m *MockHistoryRepository) ExistsInStatuses(ctx context.Context, subjectType string, subjectID kernel.ID, statusIDs []kernel.ID) (bool, error) {
	args := m.Called(ctx, subjectType, subjectID, statusIDs)
	return args.Bool(0), args.Error(1)
}

func (m *MockHistoryRepository) ListForSubject(ctx context.Context, subjectType string, subjectID kernel.ID) ([]status.HistoryEntry, error) {
	args := m.Called(ctx, subjectType, subjectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]status.HistoryEntry), args.Error(1)
}

type MockInvoiceSequence struct{ mock.Mock }

func (m *MockInvoiceSequence) Next(ctx context.Context, prefix string) (int64, error) {
	args := m.Called(ctx, prefix)
	return args.Get(0).(int64), args.Error(1)
}

func newPlacedOrder(t *testing.T, items ...order.LineItem) *order.Order {
	t.Helper()
	o, err := order.NewOrder(order.Details{
		LocationID: 1,
		Type:       order.Collection,
	}, order.NewHash(), now)
	require.NoError(t, err)
	require.NoError(t, o.AssignID(100))
	o.ReplaceLineItems(items, now)
	return o
}

func lineItem(t *testing.T, menuID kernel.ID, qty int) order.LineItem {
	t.Helper()
	item, err := order.NewLineItem(menuID, "Menu", qty, decimal.NewFromInt(4), decimal.Zero, "", nil)
	require.NoError(t, err)
	return item
}
