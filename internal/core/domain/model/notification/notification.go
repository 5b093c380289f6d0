package notification

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

// Kind selects the mail template.
type Kind string

const (
	KindOrder       Kind = "order"
	KindOrderUpdate Kind = "order_update"
	KindOrderAlert  Kind = "order_alert"
)

func (k Kind) Validate() error {
	switch k {
	case KindOrder, KindOrderUpdate, KindOrderAlert:
		return nil
	}
	return errs.NewValueIsInvalidError("notification kind " + string(k))
}

// Data is the flattened payload a template renders.
type Data map[string]any

// State of an outbox entry.
type State string

const (
	StatePending State = "pending"
	StateSent    State = "sent"
	StateFailed  State = "failed"
)

var ErrOutboxEntryIsNotConstructed = errors.New("OutboxEntry must be created via NewOutboxEntry constructor")

// OutboxEntry is a mail whose first delivery attempt failed.
type OutboxEntry struct {
	id        kernel.UUID
	orderID   kernel.ID
	kind      Kind
	recipient string
	data      Data
	attempts  int
	lastError string
	state     State
	createdAt time.Time
	updatedAt time.Time

	isConstructed bool
}

// NewOutboxEntry records the first failed attempt.
func NewOutboxEntry(orderID kernel.ID, kind Kind, recipient string, data Data, cause error, now time.Time) (*OutboxEntry, error) {
	if err := kind.Validate(); err != nil {
		return nil, err
	}
	if recipient == "" {
		return nil, errs.NewValueIsRequiredError("recipient")
	}

	e := &OutboxEntry{
		id:            kernel.NewUUID(),
		orderID:       orderID,
		kind:          kind,
		recipient:     recipient,
		data:          data,
		attempts:      1,
		state:         StatePending,
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}
	if cause != nil {
		e.lastError = cause.Error()
	}
	return e, nil
}

// OutboxSnapshot is the persisted state of an entry.
type OutboxSnapshot struct {
	ID        kernel.UUID
	OrderID   kernel.ID
	Kind      Kind
	Recipient string
	Data      Data
	Attempts  int
	LastError string
	State     State
	CreatedAt time.Time
	UpdatedAt time.Time
}

func RestoreOutboxEntry(s OutboxSnapshot) (*OutboxEntry, error) {
	if err := errors.Join(s.ID.Validate(), s.Kind.Validate()); err != nil {
		return nil, err
	}
	return &OutboxEntry{
		id:            s.ID,
		orderID:       s.OrderID,
		kind:          s.Kind,
		recipient:     s.Recipient,
		data:          s.Data,
		attempts:      s.Attempts,
		lastError:     s.LastError,
		state:         s.State,
		createdAt:     s.CreatedAt,
		updatedAt:     s.UpdatedAt,
		isConstructed: true,
	}, nil
}

func (e *OutboxEntry) Validate() error {
	if e == nil || !e.isConstructed {
		return ErrOutboxEntryIsNotConstructed
	}
	return nil
}

func (e *OutboxEntry) ID() kernel.UUID      { return e.id }
func (e *OutboxEntry) OrderID() kernel.ID   { return e.orderID }
func (e *OutboxEntry) Kind() Kind           { return e.kind }
func (e *OutboxEntry) Recipient() string    { return e.recipient }
func (e *OutboxEntry) Data() Data           { return e.data }
func (e *OutboxEntry) Attempts() int        { return e.attempts }
func (e *OutboxEntry) LastError() string    { return e.lastError }
func (e *OutboxEntry) State() State         { return e.state }
func (e *OutboxEntry) CreatedAt() time.Time { return e.createdAt }
func (e *OutboxEntry) UpdatedAt() time.Time { return e.updatedAt }

// MarkSent closes the entry after a successful retry.
func (e *OutboxEntry) MarkSent(now time.Time) {
	e.attempts++
	e.state = StateSent
	e.lastError = ""
	e.updatedAt = now
}

// RecordFailure counts a failed retry. The entry gives up once maxAttempts is reached.
func (e *OutboxEntry) RecordFailure(cause error, maxAttempts int, now time.Time) {
	e.attempts++
	if cause != nil {
		e.lastError = cause.Error()
	}
	if e.attempts >= maxAttempts {
		e.state = StateFailed
	}
	e.updatedAt = now
}
