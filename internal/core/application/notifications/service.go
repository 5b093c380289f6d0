package notifications

import (
	"context"
	"time"

	"fulfillment/internal/core/application/fulfillment"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/notification"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/status"
	"fulfillment/internal/core/ports"

	"go.uber.org/zap"
)

// Service sends the mails of the order workflow after the triggering transaction committed.
// Undelivered mails go to the outbox.
type Service struct {
	sender     Sender
	builder    MailDataBuilder
	outbox     ports.OutboxRepository
	recipients fulfillment.ConfirmationRecipients
	siteEmail  string
	clock      func() time.Time
	logger     *zap.Logger
}

func NewService(
	sender Sender,
	builder MailDataBuilder,
	outbox ports.OutboxRepository,
	settings fulfillment.Settings,
	clock func() time.Time,
	logger *zap.Logger,
) *Service {
	if clock == nil {
		clock = time.Now
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		sender:     sender,
		builder:    builder,
		outbox:     outbox,
		recipients: settings.Confirmation,
		siteEmail:  settings.SiteEmail,
		clock:      clock,
		logger:     logger,
	}
}

// NotifyStatusChange mails the customer about a new status and reports whether it was sent.
func (s *Service) NotifyStatusChange(ctx context.Context, o *order.Order, st status.Status, comment string) bool {
	data, err := s.builder.Build(ctx, o, &StatusUpdate{Name: st.Name(), Comment: comment})
	if err != nil {
		s.logger.Error("building status mail failed", zap.Int64("order_id", o.ID().Int64()), zap.Error(err))
		return false
	}
	return s.Dispatch(ctx, o.ID(), notification.KindOrderUpdate, o.Details().Contact.Email, data)
}

// SendConfirmation mails the configured recipients of a new order. It reports true
// when every selected mail went out.
func (s *Service) SendConfirmation(ctx context.Context, o *order.Order) bool {
	data, err := s.builder.Build(ctx, o, nil)
	if err != nil {
		s.logger.Error("building confirmation mail failed", zap.Int64("order_id", o.ID().Int64()), zap.Error(err))
		return false
	}

	sent := true
	if s.recipients.Customer {
		sent = s.Dispatch(ctx, o.ID(), notification.KindOrder, o.Details().Contact.Email, data) && sent
	}
	if s.recipients.Location {
		locationEmail, _ := data["location_email"].(string)
		sent = s.Dispatch(ctx, o.ID(), notification.KindOrderAlert, locationEmail, data) && sent
	}
	if s.recipients.Admin {
		sent = s.Dispatch(ctx, o.ID(), notification.KindOrderAlert, s.siteEmail, data) && sent
	}
	return sent
}

// Dispatch sends one mail and reports whether it went out. A failed send is
// queued to the outbox and never returned to the caller.
func (s *Service) Dispatch(ctx context.Context, orderID kernel.ID, kind notification.Kind, recipient string, data notification.Data) bool {
	logger := s.logger.With(zap.Int64("order_id", orderID.Int64()), zap.String("kind", string(kind)))

	if recipient == "" {
		logger.Warn("notification skipped, no recipient")
		return false
	}

	err := s.sender.Send(ctx, kind, recipient, data)
	if err == nil {
		return true
	}
	logger.Warn("notification failed, queued for retry", zap.Error(err))

	entry, err := notification.NewOutboxEntry(orderID, kind, recipient, data, err, s.clock())
	if err != nil {
		logger.Error("building outbox entry failed", zap.Error(err))
		return false
	}
	if err = s.outbox.Add(ctx, entry); err != nil {
		logger.Error("storing outbox entry failed", zap.Error(err))
	}
	return false
}
