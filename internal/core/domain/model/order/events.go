package order

import (
	"time"

	"fulfillment/internal/core/domain/model/kernel"
)

// StatusChanged is raised after a transition has been committed.
type StatusChanged struct {
	EventID          kernel.UUID
	OrderID          kernel.ID
	Hash             Hash
	PreviousStatusID *kernel.ID
	StatusID         kernel.ID
	Invoice          string
	OccurredAt       time.Time
}

// NewStatusChanged captures the committed state of the order.
func NewStatusChanged(o *Order, previous *kernel.ID, occurredAt time.Time) StatusChanged {
	e := StatusChanged{
		EventID:          kernel.NewUUID(),
		OrderID:          o.ID(),
		Hash:             o.Hash(),
		PreviousStatusID: previous,
		OccurredAt:       occurredAt,
	}
	if s := o.StatusID(); s != nil {
		e.StatusID = *s
	}
	if inv := o.Invoice(); inv != nil {
		e.Invoice = inv.String()
	}
	return e
}
