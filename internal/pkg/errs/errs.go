package errs

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrObjectNotFound      = errors.New("object not found")
	ErrValueIsInvalid      = errors.New("value is invalid")
	ErrValueIsOutOfRange   = errors.New("value is out of range")
	ErrValueIsRequired     = errors.New("value is required")
	ErrInvalidTransition   = errors.New("invalid transition")
	ErrDuplicateEffect     = errors.New("duplicate effect")
	ErrSideEffectFailure   = errors.New("side effect failure")
	ErrAllocationConflict  = errors.New("allocation conflict")
	ErrNotificationFailure = errors.New("notification failure")
)

// sanitize keeps user supplied values on a single log line.
func sanitize(v any) string {
	s := fmt.Sprintf("%v", v)
	return strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ").Replace(s)
}

// ObjectNotFoundError reports a missing aggregate or reference.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: param is: %s, ID is: %v (cause: %v)", ErrObjectNotFound, e.ParamName, e.ID, e.Cause)
	}
	return fmt.Sprintf("%s: %v", ErrObjectNotFound, e.ID)
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// ValueIsInvalidError reports a value that failed validation.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", ErrValueIsInvalid, e.ParamName, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrValueIsInvalid, e.ParamName)
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ValueIsOutOfRangeError reports a value outside of [Min, Max].
type ValueIsOutOfRangeError struct {
	ParamName string
	Value     any
	Min       any
	Max       any
	Cause     error
}

func NewValueIsOutOfRangeError(paramName string, value, minValue, maxValue any) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue}
}

func NewValueIsOutOfRangeErrorWithCause(paramName string, value, minValue, maxValue any, cause error) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue, Cause: cause}
}

func (e *ValueIsOutOfRangeError) Error() string {
	msg := fmt.Sprintf("%s: %s is %s, min value is %s, max value is %s",
		ErrValueIsInvalid, sanitize(e.Value), e.ParamName, sanitize(e.Min), sanitize(e.Max))
	if e.Cause != nil {
		msg += fmt.Sprintf(" (cause: %v)", e.Cause)
	}
	return msg
}

func (e *ValueIsOutOfRangeError) Unwrap() error {
	return ErrValueIsOutOfRange
}

// ValueIsRequiredError reports a missing mandatory value.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", ErrValueIsRequired, e.ParamName, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrValueIsRequired, e.ParamName)
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// InvalidTransitionError reports a status change that is not allowed for the order.
type InvalidTransitionError struct {
	OrderID int64
	Reason  string
}

func NewInvalidTransitionError(orderID int64, reason string) *InvalidTransitionError {
	return &InvalidTransitionError{OrderID: orderID, Reason: reason}
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("%s: order %d: %s", ErrInvalidTransition, e.OrderID, e.Reason)
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}

// DuplicateEffectError reports an attempt to apply a once-only effect again.
type DuplicateEffectError struct {
	Effect  string
	OrderID int64
}

func NewDuplicateEffectError(effect string, orderID int64) *DuplicateEffectError {
	return &DuplicateEffectError{Effect: effect, OrderID: orderID}
}

func (e *DuplicateEffectError) Error() string {
	return fmt.Sprintf("%s: %s already applied to order %d", ErrDuplicateEffect, e.Effect, e.OrderID)
}

func (e *DuplicateEffectError) Unwrap() error {
	return ErrDuplicateEffect
}

// SideEffectFailureError wraps the failure of one of the transactional effects of a transition.
// Both ErrSideEffectFailure and the cause match errors.Is.
type SideEffectFailureError struct {
	Effect  string
	OrderID int64
	Cause   error
}

func NewSideEffectFailureError(effect string, orderID int64, cause error) *SideEffectFailureError {
	return &SideEffectFailureError{Effect: effect, OrderID: orderID, Cause: cause}
}

func (e *SideEffectFailureError) Error() string {
	return fmt.Sprintf("%s: %s for order %d (cause: %v)", ErrSideEffectFailure, e.Effect, e.OrderID, e.Cause)
}

func (e *SideEffectFailureError) Unwrap() []error {
	if e.Cause == nil {
		return []error{ErrSideEffectFailure}
	}
	return []error{ErrSideEffectFailure, e.Cause}
}

// AllocationConflictError reports two invoice allocations that received the same number.
type AllocationConflictError struct {
	Prefix string
	Number int64
	Cause  error
}

func NewAllocationConflictError(prefix string, number int64, cause error) *AllocationConflictError {
	return &AllocationConflictError{Prefix: prefix, Number: number, Cause: cause}
}

func (e *AllocationConflictError) Error() string {
	msg := fmt.Sprintf("%s: %s%d", ErrAllocationConflict, e.Prefix, e.Number)
	if e.Cause != nil {
		msg += fmt.Sprintf(" (cause: %v)", e.Cause)
	}
	return msg
}

func (e *AllocationConflictError) Unwrap() error {
	return ErrAllocationConflict
}

// NotificationFailureError reports a mail that could not be sent.
type NotificationFailureError struct {
	Kind      string
	Recipient string
	Cause     error
}

func NewNotificationFailureError(kind, recipient string, cause error) *NotificationFailureError {
	return &NotificationFailureError{Kind: kind, Recipient: recipient, Cause: cause}
}

func (e *NotificationFailureError) Error() string {
	msg := fmt.Sprintf("%s: %s to %s", ErrNotificationFailure, e.Kind, sanitize(e.Recipient))
	if e.Cause != nil {
		msg += fmt.Sprintf(" (cause: %v)", e.Cause)
	}
	return msg
}

func (e *NotificationFailureError) Unwrap() error {
	return ErrNotificationFailure
}
