package status

import (
	"errors"
	"strings"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

// ErrStatusIsNotConstructed is returned when a Status was not created through NewStatus.
var ErrStatusIsNotConstructed = errors.New("Status must be created via NewStatus constructor")

// Status is an entry of the status catalog an order can move to.
type Status struct {
	id              kernel.ID
	name            string
	color           string
	commentTemplate string
	notifyByDefault bool

	isConstructed bool
}

func NewStatus(id kernel.ID, name, color, commentTemplate string, notifyByDefault bool) (Status, error) {
	if err := id.Validate(); err != nil {
		return Status{}, errs.NewValueIsRequiredErrorWithCause("status id", err)
	}
	if strings.TrimSpace(name) == "" {
		return Status{}, errs.NewValueIsRequiredError("status name")
	}

	return Status{
		id:              id,
		name:            strings.TrimSpace(name),
		color:           color,
		commentTemplate: commentTemplate,
		notifyByDefault: notifyByDefault,
		isConstructed:   true,
	}, nil
}

func (s Status) ID() kernel.ID           { return s.id }
func (s Status) Name() string            { return s.name }
func (s Status) Color() string           { return s.color }
func (s Status) CommentTemplate() string { return s.commentTemplate }
func (s Status) NotifyByDefault() bool   { return s.notifyByDefault }

// In reports whether the status belongs to the group.
func (s Status) In(group Set) bool {
	return group.Contains(s.id)
}

// ResolveComment returns the requested comment, or the status template when none was supplied.
func (s Status) ResolveComment(requested *string) string {
	if requested != nil {
		return *requested
	}
	return s.commentTemplate
}

// ResolveNotify returns the requested notify flag, or the status default when none was supplied.
func (s Status) ResolveNotify(requested *bool) bool {
	if requested != nil {
		return *requested
	}
	return s.notifyByDefault
}

func (s Status) Validate() error {
	if !s.isConstructed {
		return ErrStatusIsNotConstructed
	}
	return nil
}
