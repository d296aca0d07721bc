package stock

import (
	"fmt"

	"restaurant/internal/pkg/errs"
)

// Kind classifies a stock movement. The kind decides the sign of the
// movement's contribution to a product's on-hand quantity: purchases and
// adjustments credit it, consumptions and discards debit it.
type Kind int

const (
	// KindUnknown represents an invalid or undefined kind.
	// This value (0) helps catch uninitialized Kind values.
	KindUnknown Kind = iota

	// Purchase credits stock bought in.
	Purchase

	// Consumption debits stock consumed by processing a production order.
	Consumption

	// Discard debits stock thrown away (spoilage, breakage).
	Discard

	// Adjustment credits stock after a manual inventory correction.
	Adjustment
)

func getKindStrings() map[Kind]string {
	return map[Kind]string{
		KindUnknown: "UNKNOWN",
		Purchase:    "PURCHASE",
		Consumption: "CONSUMPTION",
		Discard:     "DISCARD",
		Adjustment:  "ADJUSTMENT",
	}
}

func getValidKindStrings() map[Kind]string {
	//nolint:exhaustive // KindUnknown is intentionally excluded as it's invalid
	return map[Kind]string{
		Purchase:    "PURCHASE",
		Consumption: "CONSUMPTION",
		Discard:     "DISCARD",
		Adjustment:  "ADJUSTMENT",
	}
}

// KindFromString parses the wire representation of a movement kind.
// Returns KindUnknown with an error for anything unrecognized.
func KindFromString(s string) (Kind, error) {
	for kind, str := range getValidKindStrings() {
		if str == s {
			return kind, nil
		}
	}
	return KindUnknown, errs.NewValueIsInvalidErrorWithCause(
		"movement kind is invalid",
		fmt.Errorf("%q is not a valid movement kind", s),
	)
}

// Validate checks the Kind is one of the four defined movement kinds.
func (k Kind) Validate() error {
	if _, ok := getValidKindStrings()[k]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"movement kind is invalid",
			fmt.Errorf("%d is not a valid movement kind", k),
		)
	}
	return nil
}

// String returns the wire name of the kind. Implements fmt.Stringer.
func (k Kind) String() string {
	if str, ok := getKindStrings()[k]; ok {
		return str
	}
	return "UNKNOWN"
}

// Sign returns +1 for kinds that credit on-hand stock and -1 for kinds
// that debit it. KindUnknown contributes nothing.
func (k Kind) Sign() int {
	switch k {
	case Purchase, Adjustment:
		return 1
	case Consumption, Discard:
		return -1
	default:
		return 0
	}
}
