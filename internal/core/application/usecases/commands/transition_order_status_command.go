package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var ErrTransitionOrderStatusCommandIsNotConstructed = errors.New(
	"TransitionOrderStatusCommand must be created via NewTransitionOrderStatusCommand constructor",
)

// TransitionOrderStatusCommand moves an order to a new status.
//
// Comment and Notify are optional: a nil comment takes the comment template of the
// target status, a nil notify takes its notify-by-default flag. A nil actor marks a
// system initiated change.
type TransitionOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.ID
	statusID kernel.ID
	comment  *string
	notify   *bool
	actorID  *kernel.ID

	guard guard.ConstructorGuard
}

func NewTransitionOrderStatusCommand(
	orderID kernel.ID,
	statusID kernel.ID,
	comment *string,
	notify *bool,
	actorID *kernel.ID,
) (TransitionOrderStatusCommand, error) {
	cmd := TransitionOrderStatusCommand{
		comment: comment,
		notify:  notify,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setStatusID(statusID),
		cmd.setActorID(actorID),
	); err != nil {
		return TransitionOrderStatusCommand{}, err
	}

	return cmd, nil
}

func (c TransitionOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrTransitionOrderStatusCommandIsNotConstructed)
}

func (c TransitionOrderStatusCommand) OrderID() kernel.ID  { return c.orderID }
func (c TransitionOrderStatusCommand) StatusID() kernel.ID { return c.statusID }
func (c TransitionOrderStatusCommand) Comment() *string    { return c.comment }
func (c TransitionOrderStatusCommand) Notify() *bool       { return c.notify }
func (c TransitionOrderStatusCommand) ActorID() *kernel.ID { return c.actorID }

func (c *TransitionOrderStatusCommand) setOrderID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("order id", err)
	}
	c.orderID = id
	return nil
}

func (c *TransitionOrderStatusCommand) setStatusID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("status id", err)
	}
	c.statusID = id
	return nil
}

func (c *TransitionOrderStatusCommand) setActorID(id *kernel.ID) error {
	if id == nil {
		return nil
	}
	if err := id.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("actor id", err)
	}
	c.actorID = id
	return nil
}
