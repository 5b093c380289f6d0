package ports

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/model/notification"
)

// OutboxRepository stores mails waiting for a retry.
type OutboxRepository interface {
	Add(ctx context.Context, entry *notification.OutboxEntry) error
	Update(ctx context.Context, entry *notification.OutboxEntry) error

	// ClaimPending returns up to limit pending entries, oldest first, and hides them
	// from other claims until now+lease. Rows locked by a concurrent claim are skipped.
	// Update releases the claim.
	ClaimPending(ctx context.Context, limit int, now time.Time, lease time.Duration) ([]*notification.OutboxEntry, error)
}
