package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/status"
)

// StatusRepository reads the status catalog.
type StatusRepository interface {
	// Get returns ObjectNotFoundError when the status does not exist.
	Get(ctx context.Context, id kernel.ID) (status.Status, error)
}

// HistoryRepository is the append-only status audit trail.
type HistoryRepository interface {
	Append(ctx context.Context, entry status.HistoryEntry) error

	// ExistsInStatuses reports whether the subject has an entry for any of the statuses.
	ExistsInStatuses(ctx context.Context, subjectType string, subjectID kernel.ID, statusIDs []kernel.ID) (bool, error)

	// ListForSubject returns the entries of the subject, oldest first.
	ListForSubject(ctx context.Context, subjectType string, subjectID kernel.ID) ([]status.HistoryEntry, error)
}
