package rabbitmq_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"fulfillment/internal/adapters/out/rabbitmq"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockChannel struct {
	mock.Mock
}

func (m *MockChannel) PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error {
	args := m.Called(ctx, exchange, key, mandatory, immediate, msg)
	return args.Error(0)
}

func statusChanged(t *testing.T) order.StatusChanged {
	t.Helper()
	previous := kernel.ID(2)
	return order.StatusChanged{
		EventID:          kernel.NewUUID(),
		OrderID:          42,
		Hash:             order.NewHash(),
		PreviousStatusID: &previous,
		StatusID:         5,
		Invoice:          "INV202401011",
		OccurredAt:       time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC),
	}
}

func TestStatusEventPublisher_PublishStatusChanged(t *testing.T) {
	ch := new(MockChannel)
	event := statusChanged(t)

	var published amqp.Publishing
	ch.On("PublishWithContext", mock.Anything, "orders", rabbitmq.StatusChangedRoutingKey, false, false, mock.Anything).
		Run(func(args mock.Arguments) { published = args.Get(5).(amqp.Publishing) }).
		Return(nil)

	p := rabbitmq.NewStatusEventPublisher(ch, "orders", nil)
	require.NoError(t, p.PublishStatusChanged(context.Background(), event))

	assert.Equal(t, amqp.Persistent, published.DeliveryMode)
	assert.Equal(t, "application/json", published.ContentType)
	assert.Equal(t, event.EventID.String(), published.MessageId)

	var body rabbitmq.StatusChangedMessage
	require.NoError(t, json.Unmarshal(published.Body, &body))
	assert.Equal(t, int64(42), body.OrderID)
	assert.Equal(t, int64(5), body.StatusID)
	require.NotNil(t, body.PreviousStatusID)
	assert.Equal(t, int64(2), *body.PreviousStatusID)
	assert.Equal(t, "INV202401011", body.Invoice)
	assert.Equal(t, event.Hash.String(), body.Hash)
	ch.AssertExpectations(t)
}

func TestStatusEventPublisher_FirstStatusHasNoPrevious(t *testing.T) {
	ch := new(MockChannel)
	event := statusChanged(t)
	event.PreviousStatusID = nil
	event.Invoice = ""

	var published amqp.Publishing
	ch.On("PublishWithContext", mock.Anything, "orders", rabbitmq.StatusChangedRoutingKey, false, false, mock.Anything).
		Run(func(args mock.Arguments) { published = args.Get(5).(amqp.Publishing) }).
		Return(nil)

	require.NoError(t, rabbitmq.NewStatusEventPublisher(ch, "orders", nil).PublishStatusChanged(context.Background(), event))

	var raw map[string]any
	require.NoError(t, json.Unmarshal(published.Body, &raw))
	assert.Nil(t, raw["previous_status_id"])
	assert.NotContains(t, raw, "invoice")
}

func TestStatusEventPublisher_ReturnsChannelError(t *testing.T) {
	ch := new(MockChannel)
	ch.On("PublishWithContext", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(errors.New("channel closed"))

	err := rabbitmq.NewStatusEventPublisher(ch, "orders", nil).PublishStatusChanged(context.Background(), statusChanged(t))
	require.EqualError(t, err, "channel closed")
}

func TestNoopPublisher(t *testing.T) {
	require.NoError(t, rabbitmq.NoopPublisher{}.PublishStatusChanged(context.Background(), statusChanged(t)))
	require.NoError(t, rabbitmq.NewStatusEventPublisher(new(MockChannel), "orders", nil).Close())
}
