// Package errs provides standardized error types for the marketplace service.
// It implements a consistent pattern for error creation, formatting, and
// unwrapping that is used throughout the application.
//
// The package covers two groups of errors:
//   - Input validation: ValueIsRequiredError, ValueIsInvalidError,
//     ValueIsOutOfRangeError, ObjectNotFoundError
//   - Business rules: InvalidTransitionError, InsufficientStockError,
//     AlreadyAssignedError, DependencyUnavailableError
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrInsufficientStock)
//   - A struct type with fields for error details
//   - Constructor functions (with and without cause where a cause makes sense)
//   - Error() for formatting and Unwrap() returning the sentinel, so callers
//     classify with errors.Is
//
// The HTTP adapter maps these classes onto status codes; command and query
// handlers only ever deal with the sentinels.
package errs
