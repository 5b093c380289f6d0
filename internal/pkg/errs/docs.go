// Package errs provides standardized error types for the fulfillment application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes error types for validation and for the order workflow:
//   - ValueIsRequiredError, ValueIsInvalidError, ValueIsOutOfRangeError: input validation
//   - ObjectNotFoundError: an order, status, menu or coupon does not exist
//   - InvalidTransitionError: a status change the workflow does not allow
//   - DuplicateEffectError: a once-only side effect was requested a second time
//   - SideEffectFailureError: stock, coupon, history or invoice work failed inside a transition
//   - AllocationConflictError: two invoice allocations collided on the same prefix
//   - NotificationFailureError: a mail could not be delivered (never fatal to a transition)
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrObjectNotFound)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method so errors.Is matches the sentinel
package errs
