// Package errs provides standardized error types for the marketplace application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes several error types for common error scenarios:
//   - ValueIsRequiredError: For when a required value is missing
//   - ValueIsInvalidError: For when a value is invalid
//   - ValueIsOutOfRangeError: For when a value falls outside its allowed bounds
//   - ObjectNotFoundError: For when an object cannot be found
//   - ForbiddenError: For when an actor is not permitted to perform an operation
//   - InvalidTransitionError: For when an order status change violates the state graph
//   - ConcurrencyConflictError: For when an optimistic concurrency update loses a race
//   - AlreadyRatedError: For when a rating is attached to an order a second time
//   - UnavailableError: For when a collaborator lookup times out
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrObjectNotFound)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for error classification via errors.Is
//
// This standardized approach to error handling improves error reporting,
// makes error handling more consistent, and enables the HTTP adapter to map
// every error to a response status in a single place.
package errs
