package jobs

import (
	"context"
	"time"

	"fulfillment/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

type RetryNotificationsHandler interface {
	Handle(ctx context.Context, cmd commands.RetryNotificationsCommand) (commands.RetryReport, error)
}

// NotificationRetryJob resends the queued notifications on a cron schedule.
type NotificationRetryJob struct {
	handler   RetryNotificationsHandler
	schedule  string
	batchSize int
	timeout   time.Duration
	cron      *cron.Cron
	logger    *zap.Logger
}

// NewNotificationRetryJob creates the job. schedule is a six field cron expression
// (seconds first). A tick that fires while the previous batch is still running is skipped.
func NewNotificationRetryJob(
	handler RetryNotificationsHandler,
	schedule string,
	batchSize int,
	logger *zap.Logger,
) *NotificationRetryJob {
	logger = logger.With(zap.String("component", "notification_retry_job"))
	cronLog := newCronLogger(logger)

	return &NotificationRetryJob{
		handler:   handler,
		schedule:  schedule,
		batchSize: batchSize,
		timeout:   time.Minute,
		cron: cron.New(
			cron.WithSeconds(),
			cron.WithLogger(cronLog),
			cron.WithChain(cron.Recover(cronLog), cron.SkipIfStillRunning(cronLog)),
		),
		logger: logger,
	}
}

// Start registers the run and starts the scheduler.
func (j *NotificationRetryJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, j.Run); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.Info("Notification retry job started", zap.String("schedule", j.schedule))
	return nil
}

// Run processes one batch of the outbox.
func (j *NotificationRetryJob) Run() {
	ctx, cancel := context.WithTimeout(context.Background(), j.timeout)
	defer cancel()

	cmd, err := commands.NewRetryNotificationsCommand(j.batchSize)
	if err != nil {
		j.logger.Error("Notification retry job misconfigured", zap.Error(err))
		return
	}

	report, err := j.handler.Handle(ctx, cmd)
	if err != nil {
		j.logger.Error("Notification retry job failed", zap.Error(err))
		return
	}
	if report.Sent+report.Requeued+report.GaveUp > 0 {
		j.logger.Info("Notification retry batch processed",
			zap.Int("sent", report.Sent),
			zap.Int("requeued", report.Requeued),
			zap.Int("gave_up", report.GaveUp),
			zap.Int("unsettled", report.Unsettled),
		)
	}
}

// Stop stops the scheduler and waits for a running batch.
func (j *NotificationRetryJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.Info("Notification retry job stopped")
}
