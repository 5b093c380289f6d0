// Package jobs provides scheduled background tasks for the fulfillment service.
//
// Jobs are cron based (github.com/robfig/cron/v3, six field expressions with seconds).
//
// # Available Jobs
//
// NotificationRetryJob resends status and confirmation mails that failed after their
// transition committed. Each run takes one batch of due outbox rows; rows that keep
// failing are retried on later runs until the attempt limit is reached.
//
// # Usage
//
//	retryJob := jobs.NewNotificationRetryJob(retryHandler, "0 */1 * * * *", 50, logger)
//	jobManager := jobs.NewJobManager(retryJob)
//	if err := jobManager.StartAll(); err != nil {
//		logger.Fatal("failed to start jobs", zap.Error(err))
//	}
//	defer jobManager.StopAll()
package jobs
