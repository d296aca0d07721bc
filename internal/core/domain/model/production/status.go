package production

import (
	"fmt"

	"restaurant/internal/pkg/errs"
)

// Status is the lifecycle state of a production order.
//
// State transitions:
//
//	Registered ──process()──> Processed (terminal)
//
// A registered order may be updated or deleted; a processed order is
// append-only history and accepts no further changes.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// Registered is the initial status: the order is planned but the
	// kitchen has not cooked it yet.
	Registered

	// Processed means the batch was cooked and stock was debited.
	// Terminal; no further transitions.
	Processed
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown: "UNKNOWN",
		Registered:    "REGISTERED",
		Processed:     "PROCESSED",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		Registered: "REGISTERED",
		Processed:  "PROCESSED",
	}
}

// StatusFromString parses the wire representation of a status.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause(
		"order state is invalid",
		fmt.Errorf("%q is not a valid production order state", s),
	)
}

// Validate checks the Status is a defined production order state.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"order state is invalid",
			fmt.Errorf("%d is not a valid production order state", s),
		)
	}
	return nil
}

// String returns the wire name of the status. Implements fmt.Stringer.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// Process transitions the status to Processed.
//
// Valid transitions:
//   - Registered -> Processed
//
// A second process attempt fails with InvalidStateError("order already
// processed"); only one caller can ever observe Registered.
func (s Status) Process() (Status, error) {
	if s != Registered {
		return 0, errs.NewInvalidStateError("order already processed")
	}
	return Processed, nil
}

// ValidateUpdatable returns an InvalidStateError when the status no
// longer admits structural edits (item list or date changes).
func (s Status) ValidateUpdatable() error {
	if s != Registered {
		return errs.NewInvalidStateError("production order already processed, cannot be altered")
	}
	return nil
}
