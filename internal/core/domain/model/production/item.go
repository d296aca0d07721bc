package production

import (
	"restaurant/internal/core/domain/model/kernel"
)

// Item is one line of a production order: a prepared item reference and
// the number of portions to cook. Items are owned by their order and
// reference, never own, the catalog's prepared items.
type Item struct {
	id             kernel.UUID
	preparedItemID kernel.UUID
	portions       int
}

// NewItem creates an Item. Field violations are reported by the owning
// order's aggregated validation, so this constructor only guards ids.
func NewItem(id kernel.UUID, preparedItemID kernel.UUID, portions int) (Item, error) {
	if err := id.Validate(); err != nil {
		return Item{}, err
	}

	return Item{
		id:             id,
		preparedItemID: preparedItemID,
		portions:       portions,
	}, nil
}

// ID returns the item identity.
func (i Item) ID() kernel.UUID {
	return i.id
}

// PreparedItemID returns the referenced prepared item id.
func (i Item) PreparedItemID() kernel.UUID {
	return i.preparedItemID
}

// Portions returns the portion quantity to produce.
func (i Item) Portions() int {
	return i.portions
}
