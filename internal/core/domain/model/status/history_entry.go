package status

import (
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

// SubjectOrder is the subject type recorded for order transitions.
const SubjectOrder = "order"

// HistoryEntry is one immutable row of the status audit trail.
type HistoryEntry struct {
	subjectType string
	subjectID   kernel.ID
	statusID    kernel.ID
	comment     string
	notify      bool
	actorID     *kernel.ID
	createdAt   time.Time
}

// NewHistoryEntry builds an audit row. A nil actor marks a system initiated change.
func NewHistoryEntry(
	subjectType string,
	subjectID kernel.ID,
	statusID kernel.ID,
	comment string,
	notify bool,
	actorID *kernel.ID,
	createdAt time.Time,
) (HistoryEntry, error) {
	if subjectType == "" {
		return HistoryEntry{}, errs.NewValueIsRequiredError("subject type")
	}
	if err := subjectID.Validate(); err != nil {
		return HistoryEntry{}, errs.NewValueIsRequiredErrorWithCause("subject id", err)
	}
	if err := statusID.Validate(); err != nil {
		return HistoryEntry{}, errs.NewValueIsRequiredErrorWithCause("status id", err)
	}

	return HistoryEntry{
		subjectType: subjectType,
		subjectID:   subjectID,
		statusID:    statusID,
		comment:     comment,
		notify:      notify,
		actorID:     actorID,
		createdAt:   createdAt,
	}, nil
}

func (h HistoryEntry) SubjectType() string  { return h.subjectType }
func (h HistoryEntry) SubjectID() kernel.ID { return h.subjectID }
func (h HistoryEntry) StatusID() kernel.ID  { return h.statusID }
func (h HistoryEntry) Comment() string      { return h.comment }
func (h HistoryEntry) Notify() bool         { return h.notify }
func (h HistoryEntry) ActorID() *kernel.ID  { return h.actorID }
func (h HistoryEntry) CreatedAt() time.Time { return h.createdAt }
