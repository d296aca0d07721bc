package commands

import (
	"restaurant/internal/core/domain/model/kernel"
)

// OrderItemInput is one requested order line as it arrives from the
// transport layer: a prepared item reference and a portion count.
// Carried unvalidated; the owning aggregate validates the composition.
type OrderItemInput struct {
	PreparedItemID kernel.UUID
	Portions       int
}
