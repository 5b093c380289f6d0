package commands_test

import (
	"context"
	"testing"
	"time"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/coupon"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/notification"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/status"
	"fulfillment/internal/core/ports"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)

func clock() time.Time { return fixedNow }

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.ID) (*order.Order, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

func (m *MockOrderRepository) GetForUpdate(ctx context.Context, id kernel.ID) (*order.Order, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

func (m *MockOrderRepository) HashExists(ctx context.Context, hash order.Hash) (bool, error) {
	args := m.Called(ctx, hash)
	return args.Bool(0), args.Error(1)
}

func (m *MockOrderRepository) ReplaceLineItems(ctx context.Context, orderID kernel.ID, items []order.LineItem) error {
	args := m.Called(ctx, orderID, items)
	return args.Error(0)
}

func (m *MockOrderRepository) ReplaceTotals(ctx context.Context, orderID kernel.ID, totals []order.Total) error {
	args := m.Called(ctx, orderID, totals)
	return args.Error(0)
}

func (m *MockOrderRepository) Delete(ctx context.Context, ids []kernel.ID) (int64, error) {
	args := m.Called(ctx, ids)
	return args.Get(0).(int64), args.Error(1)
}

type MockStatusRepository struct{ mock.Mock }

func (m *MockStatusRepository) Get(ctx context.Context, id kernel.ID) (status.Status, error) {
	args := m.Called(ctx, id)
	s, _ := args.Get(0).(status.Status)
	return s, args.Error(1)
}

type MockHistoryRepository struct{ mock.Mock }

func (m *MockHistoryRepository) Append(ctx context.Context, entry status.HistoryEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockHistoryRepository) ExistsInStatuses(
	ctx context.Context, subjectType string, subjectID kernel.ID, statusIDs []kernel.ID,
) (bool, error) {
	args := m.Called(ctx, subjectType, subjectID, statusIDs)
	return args.Bool(0), args.Error(1)
}

func (m *MockHistoryRepository) ListForSubject(ctx context.Context, subjectType string, subjectID kernel.ID) ([]status.HistoryEntry, error) {
	args := m.Called(ctx, subjectType, subjectID)
	entries, _ := args.Get(0).([]status.HistoryEntry)
	return entries, args.Error(1)
}

type MockCouponRepository struct{ mock.Mock }

func (m *MockCouponRepository) FindByCode(ctx context.Context, code string) (coupon.Coupon, error) {
	args := m.Called(ctx, code)
	c, _ := args.Get(0).(coupon.Coupon)
	return c, args.Error(1)
}

func (m *MockCouponRepository) GetRedemption(ctx context.Context, orderID kernel.ID) (coupon.Redemption, error) {
	args := m.Called(ctx, orderID)
	r, _ := args.Get(0).(coupon.Redemption)
	return r, args.Error(1)
}

func (m *MockCouponRepository) AddRedemption(ctx context.Context, r coupon.Redemption) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockCouponRepository) UpdateRedemption(ctx context.Context, r coupon.Redemption) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockCouponRepository) DeleteRedemption(ctx context.Context, orderID kernel.ID) (int64, error) {
	args := m.Called(ctx, orderID)
	return args.Get(0).(int64), args.Error(1)
}

type MockMenuRepository struct{ mock.Mock }

func (m *MockMenuRepository) FindMenu(ctx context.Context, id kernel.ID) (ports.Menu, error) {
	args := m.Called(ctx, id)
	menu, _ := args.Get(0).(ports.Menu)
	return menu, args.Error(1)
}

func (m *MockMenuRepository) UpdateStock(
	ctx context.Context, id kernel.ID, quantity int, direction ports.StockDirection, floor int,
) error {
	args := m.Called(ctx, id, quantity, direction, floor)
	return args.Error(0)
}

type MockInvoiceSequence struct{ mock.Mock }

func (m *MockInvoiceSequence) Next(ctx context.Context, prefix string) (int64, error) {
	args := m.Called(ctx, prefix)
	return args.Get(0).(int64), args.Error(1)
}

// MockUoW satisfies OrderUoW, CouponUoW and UoW.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	return m.Called().Get(0).(ports.OrderRepository)
}

func (m *MockUoW) CouponRepository() ports.CouponRepository {
	return m.Called().Get(0).(ports.CouponRepository)
}

func (m *MockUoW) StatusRepository() ports.StatusRepository {
	return m.Called().Get(0).(ports.StatusRepository)
}

func (m *MockUoW) HistoryRepository() ports.HistoryRepository {
	return m.Called().Get(0).(ports.HistoryRepository)
}

func (m *MockUoW) MenuRepository() ports.MenuRepository {
	return m.Called().Get(0).(ports.MenuRepository)
}

func (m *MockUoW) InvoiceSequence() ports.InvoiceSequence {
	return m.Called().Get(0).(ports.InvoiceSequence)
}

type MockOrderUoWFactory struct{ uow *MockUoW }

func (f MockOrderUoWFactory) Create() commands.OrderUoW { return f.uow }

type MockCouponUoWFactory struct{ uow *MockUoW }

func (f MockCouponUoWFactory) Create() commands.CouponUoW { return f.uow }

type MockUoWFactory struct{ uow *MockUoW }

func (f MockUoWFactory) Create() commands.UoW { return f.uow }

type MockStatusNotifier struct{ mock.Mock }

func (m *MockStatusNotifier) NotifyStatusChange(ctx context.Context, o *order.Order, st status.Status, comment string) bool {
	args := m.Called(ctx, o, st, comment)
	return args.Bool(0)
}

type MockConfirmationNotifier struct{ mock.Mock }

func (m *MockConfirmationNotifier) SendConfirmation(ctx context.Context, o *order.Order) bool {
	args := m.Called(ctx, o)
	return args.Bool(0)
}

type MockEventPublisher struct{ mock.Mock }

func (m *MockEventPublisher) PublishStatusChanged(ctx context.Context, event order.StatusChanged) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

type MockOutboxRepository struct{ mock.Mock }

func (m *MockOutboxRepository) Add(ctx context.Context, entry *notification.OutboxEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockOutboxRepository) Update(ctx context.Context, entry *notification.OutboxEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockOutboxRepository) ClaimPending(ctx context.Context, limit int, now time.Time, lease time.Duration) ([]*notification.OutboxEntry, error) {
	args := m.Called(ctx, limit, now, lease)
	entries, _ := args.Get(0).([]*notification.OutboxEntry)
	return entries, args.Error(1)
}

type MockSender struct{ mock.Mock }

func (m *MockSender) Send(ctx context.Context, kind notification.Kind, recipient string, data notification.Data) error {
	args := m.Called(ctx, kind, recipient, data)
	return args.Error(0)
}

func orderDetails() order.Details {
	return order.Details{
		CustomerID:    kernel.ID(3).Ptr(),
		AddressID:     kernel.ID(8).Ptr(),
		LocationID:    1,
		Contact:       order.Contact{FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com"},
		Type:          order.Delivery,
		OrderDateTime: fixedNow.Add(time.Hour),
		PaymentCode:   "cod",
	}
}

func lineItem(t *testing.T, menuID kernel.ID, qty int) order.LineItem {
	t.Helper()
	item, err := order.NewLineItem(menuID, "Menu", qty, decimal.NewFromInt(5), decimal.Zero, "", nil)
	require.NoError(t, err)
	return item
}

// storedOrder returns an order as it would come back from the store.
func storedOrder(t *testing.T, id kernel.ID, statusID *kernel.ID, invoice *order.Invoice, items ...order.LineItem) *order.Order {
	t.Helper()
	o, err := order.RestoreOrder(order.Snapshot{
		ID:         id,
		Details:    orderDetails(),
		LineItems:  items,
		TotalItems: len(items),
		OrderTotal: decimal.Zero,
		StatusID:   statusID,
		Invoice:    invoice,
		Hash:       order.NewHash(),
		CreatedAt:  fixedNow,
		UpdatedAt:  fixedNow,
	})
	require.NoError(t, err)
	return o
}

func newStatus(t *testing.T, id kernel.ID, notifyByDefault bool) status.Status {
	t.Helper()
	st, err := status.NewStatus(id, "Status", "#000000", "Your order is now in status", notifyByDefault)
	require.NoError(t, err)
	return st
}

func ptr[T any](v T) *T { return &v }
