// Package errs provides standardized error types for the waiter service.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used by the domain, application and adapter layers.
//
// The package includes several error types for common error scenarios:
//   - ValueIsRequiredError: a required value is missing (empty name, empty item list)
//   - ValueIsInvalidError: a value is malformed (price with too many decimals, foreign currency)
//   - ValueIsOutOfRangeError: a value is outside of its allowed bounds
//   - ObjectNotFoundError: an order or coffee cannot be found
//   - ObjectAlreadyExistsError: a unique object (coffee name) already exists
//
// Each error type follows the same shape:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method returning the sentinel, so errors.Is works across layers
package errs
