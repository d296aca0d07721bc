// Package errs provides standardized error types for the restaurant backend.
// It implements a consistent pattern for error creation, formatting, and
// unwrapping that is used throughout the application.
//
// The package defines the error taxonomy of the business core:
//   - ValueIsRequiredError: a required value is missing
//   - ValueIsInvalidError: a value failed a constraint check
//   - ObjectNotFoundError: a referenced entity id does not exist
//   - ValidationError: one or more field constraints violated on create/update;
//     all violations for a call are aggregated into one message
//   - InvalidStateError: an operation attempted in a lifecycle state that
//     forbids it (double-processing, advancing out of order, editing a
//     locked order)
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrObjectNotFound)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method so errors.Is can classify against the sentinel
//
// ValidationError deliberately joins its violation messages with no
// delimiter: a client must see every violation of a request in a single
// round trip, and the joined form is part of the observable contract.
package errs
