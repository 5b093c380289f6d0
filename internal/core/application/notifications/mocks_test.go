package notifications_test

import (
	"context"
	"testing"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/notification"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/ports"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2024, 1, 1, 18, 30, 0, 0, time.UTC)

type MockMailer struct{ mock.Mock }

func (m *MockMailer) Send(ctx context.Context, msg ports.MailMessage) error {
	return m.Called(ctx, msg).Error(0)
}

type MockDirectory struct{ mock.Mock }

func (m *MockDirectory) Customer(ctx context.Context, id kernel.ID) (ports.Customer, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(ports.Customer), args.Error(1)
}

func (m *MockDirectory) Address(ctx context.Context, id kernel.ID) (ports.Address, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(ports.Address), args.Error(1)
}

func (m *MockDirectory) Location(ctx context.Context, id kernel.ID) (ports.Location, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(ports.Location), args.Error(1)
}

type MockSender struct{ mock.Mock }

func (m *MockSender) Send(ctx context.Context, kind notification.Kind, recipient string, data notification.Data) error {
	return m.Called(ctx, kind, recipient, data).Error(0)
}

type MockOutboxRepository struct{ mock.Mock }

func (m *MockOutboxRepository) Add(ctx context.Context, e *notification.OutboxEntry) error {
	return m.Called(ctx, e).Error(0)
}

func (m *MockOutboxRepository) Update(ctx context.Context, e *notification.OutboxEntry) error {
	return m.Called(ctx, e).Error(0)
}

func (m *MockOutboxRepository) ClaimPending(ctx context.Context, limit int, now time.Time, lease time.Duration) ([]*notification.OutboxEntry, error) {
	args := m.Called(ctx, limit, now, lease)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*notification.OutboxEntry), args.Error(1)
}

type staticGateways []ports.Gateway

func (g staticGateways) ListGateways() []ports.Gateway { return g }

func newOrder(t *testing.T, orderType order.Type) *order.Order {
	t.Helper()
	d := order.Details{
		CustomerID:    kernel.ID(3).Ptr(),
		LocationID:    1,
		Contact:       order.Contact{FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com", Telephone: "555"},
		Type:          orderType,
		OrderDateTime: now,
		Comment:       "ring twice",
		PaymentCode:   "cod",
	}
	if orderType == order.Delivery {
		d.AddressID = kernel.ID(8).Ptr()
	}
	o, err := order.NewOrder(d, order.NewHash(), now)
	require.NoError(t, err)
	require.NoError(t, o.AssignID(100))

	item, err := order.NewLineItem(1, "Pizza", 2, decimal.RequireFromString("8.5"), decimal.Zero, "no olives",
		[]order.LineItemOption{
			{MenuOptionID: 1, MenuOptionValueID: 1, Name: "Cheese", Price: decimal.NewFromInt(1)},
			{MenuOptionID: 2, MenuOptionValueID: 5, Name: "Ham", Price: decimal.RequireFromString("1.5")},
		})
	require.NoError(t, err)
	o.ReplaceLineItems([]order.LineItem{item}, now)

	total, _ := order.NewTotal(order.TotalCode, "Order Total", decimal.NewFromInt(22), 127)
	o.ReplaceTotals([]order.Total{total}, now)
	return o
}
