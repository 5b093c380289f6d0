package commands

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/model/notification"
	"fulfillment/internal/core/ports"

	"go.uber.org/zap"
)

// claimLease bounds how long a claimed batch stays hidden from other retry runs
// when this run dies before settling it.
const claimLease = 5 * time.Minute

// RetryReport counts the outcome of one outbox batch.
type RetryReport struct {
	Sent      int
	Requeued  int
	GaveUp    int
	Unsettled int
}

// RetryNotificationsCommandHandler re-sends queued mails. Order state is never touched.
type RetryNotificationsCommandHandler struct {
	outbox      ports.OutboxRepository
	sender      NotificationSender
	maxAttempts int
	clock       Clock
	logger      *zap.Logger
}

func NewRetryNotificationsCommandHandler(
	outbox ports.OutboxRepository,
	sender NotificationSender,
	maxAttempts int,
	clock Clock,
	logger *zap.Logger,
) RetryNotificationsCommandHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return RetryNotificationsCommandHandler{
		outbox:      outbox,
		sender:      sender,
		maxAttempts: maxAttempts,
		clock:       clock,
		logger:      logger,
	}
}

func (h RetryNotificationsCommandHandler) Handle(ctx context.Context, cmd RetryNotificationsCommand) (RetryReport, error) {
	if err := cmd.Validate(); err != nil {
		return RetryReport{}, err
	}

	entries, err := h.outbox.ClaimPending(ctx, cmd.BatchSize(), h.clock(), claimLease)
	if err != nil {
		return RetryReport{}, err
	}

	var report RetryReport
	for _, entry := range entries {
		logger := h.logger.With(
			zap.String("outbox_id", entry.ID().String()),
			zap.Int64("order_id", entry.OrderID().Int64()),
			zap.String("kind", string(entry.Kind())),
		)

		if sendErr := h.sender.Send(ctx, entry.Kind(), entry.Recipient(), entry.Data()); sendErr != nil {
			entry.RecordFailure(sendErr, h.maxAttempts, h.clock())
			if entry.State() == notification.StateFailed {
				report.GaveUp++
				logger.Error("notification abandoned", zap.Int("attempts", entry.Attempts()), zap.Error(sendErr))
			} else {
				report.Requeued++
				logger.Warn("notification retry failed", zap.Int("attempts", entry.Attempts()), zap.Error(sendErr))
			}
		} else {
			entry.MarkSent(h.clock())
			report.Sent++
		}

		if err = h.outbox.Update(ctx, entry); err != nil {
			report.Unsettled++
			logger.Error("updating outbox entry failed", zap.Error(err))
		}
	}

	return report, nil
}
