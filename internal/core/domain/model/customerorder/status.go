package customerorder

import (
	"fmt"

	"restaurant/internal/pkg/errs"
)

// Status is the lifecycle state of a customer order.
//
// State transitions (strictly forward, one direction, no loops):
//
//	Registered ──> Production ──> Ready ──> Delivery ──> Completed
//
// Every transition requires the immediate predecessor state; skipping or
// moving backward fails with InvalidStateError.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// Registered is the initial status after the order is taken.
	Registered

	// Production means the kitchen is preparing the order.
	Production

	// Ready means the order is prepared and waiting for a delivery person.
	Ready

	// Delivery means a delivery person took the order out.
	Delivery

	// Completed means the order was delivered. Terminal.
	Completed
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown: "UNKNOWN",
		Registered:    "REGISTERED",
		Production:    "PRODUCTION",
		Ready:         "READY",
		Delivery:      "DELIVERY",
		Completed:     "COMPLETED",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		Registered: "REGISTERED",
		Production: "PRODUCTION",
		Ready:      "READY",
		Delivery:   "DELIVERY",
		Completed:  "COMPLETED",
	}
}

// transitions is the closed allowed-transition table: current state to
// the single next state. Anything not listed is rejected.
func transitions() map[Status]Status {
	return map[Status]Status{
		Registered: Production,
		Production: Ready,
		Ready:      Delivery,
		Delivery:   Completed,
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
		fmt.Errorf("%q is not a valid order state", s),
	)
}

// Validate checks the Status is a defined customer order state.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"order state is invalid",
			fmt.Errorf("%d is not a valid order state", s),
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

// Advance transitions to the given target state. The target must be the
// immediate successor of the current state in the transition table.
func (s Status) Advance(target Status) (Status, error) {
	next, ok := transitions()[s]
	if !ok || next != target {
		return 0, errs.NewInvalidStateError(
			fmt.Sprintf("order in %s state cannot move to %s", s, target),
		)
	}
	return target, nil
}

// ValidateUpdatable returns an InvalidStateError when the status no
// longer admits structural edits. Edits are allowed only before the
// order is locked by the READY transition.
func (s Status) ValidateUpdatable() error {
	if s != Registered && s != Production {
		return errs.NewInvalidStateError("order already locked, cannot be altered")
	}
	return nil
}

// ValidateCanHaveDeliveryPerson checks the consistency between the
// status and delivery person assignment: an assignment exists exactly in
// the Delivery and Completed states.
func (s Status) ValidateCanHaveDeliveryPerson(assigned bool) error {
	if assigned && s != Delivery && s != Completed {
		return errs.NewValueIsInvalidErrorWithCause(
			"order state is invalid",
			fmt.Errorf("%s is not a valid state to have a delivery person", s),
		)
	}
	if !assigned && (s == Delivery || s == Completed) {
		return errs.NewValueIsInvalidErrorWithCause(
			"order state is invalid",
			fmt.Errorf("%s is not a valid state to have no delivery person", s),
		)
	}
	return nil
}
