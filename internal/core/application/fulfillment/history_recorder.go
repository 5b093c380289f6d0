package fulfillment

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/status"
	"fulfillment/internal/core/ports"
)

// HistoryRecorder appends audit entries and answers "has the subject passed through these statuses".
type HistoryRecorder struct {
	history ports.HistoryRepository
}

func NewHistoryRecorder(history ports.HistoryRepository) HistoryRecorder {
	return HistoryRecorder{history: history}
}

// Record appends one entry. A nil actor marks a system initiated change.
func (r HistoryRecorder) Record(
	ctx context.Context,
	subjectType string,
	subjectID kernel.ID,
	statusID kernel.ID,
	comment string,
	notify bool,
	actorID *kernel.ID,
	now time.Time,
) (status.HistoryEntry, error) {
	entry, err := status.NewHistoryEntry(subjectType, subjectID, statusID, comment, notify, actorID, now)
	if err != nil {
		return status.HistoryEntry{}, err
	}
	if err = r.history.Append(ctx, entry); err != nil {
		return status.HistoryEntry{}, err
	}
	return entry, nil
}

// HasReached reports whether any entry of the subject references one of the statuses.
// An empty group is never reached.
func (r HistoryRecorder) HasReached(ctx context.Context, subjectType string, subjectID kernel.ID, statusIDs []kernel.ID) (bool, error) {
	if len(statusIDs) == 0 {
		return false, nil
	}
	return r.history.ExistsInStatuses(ctx, subjectType, subjectID, statusIDs)
}
