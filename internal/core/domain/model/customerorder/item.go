package customerorder

import (
	"restaurant/internal/core/domain/model/kernel"
)

// Item is a line of a customer order: a prepared item from the menu and
// the number of portions the client asked for. Items are value objects
// owned by the Order aggregate; their quantities are validated by the
// aggregate as part of its composition check.
type Item struct {
	id             kernel.UUID
	preparedItemID kernel.UUID
	portions       int
}

// NewItem creates an order line. Line identity must be valid up front;
// the prepared item reference and the portion count are checked by the
// owning order during composition validation.
func NewItem(id kernel.UUID, preparedItemID kernel.UUID, portions int) (Item, error) {
	if err := id.Validate(); err != nil {
		return Item{}, err
	}
	return Item{id: id, preparedItemID: preparedItemID, portions: portions}, nil
}

// RestoreItem reconstructs an order line from persistence without validation.
func RestoreItem(id kernel.UUID, preparedItemID kernel.UUID, portions int) Item {
	return Item{id: id, preparedItemID: preparedItemID, portions: portions}
}

// ID returns the line identifier.
func (i Item) ID() kernel.UUID { return i.id }

// PreparedItemID returns the menu item this line refers to.
func (i Item) PreparedItemID() kernel.UUID { return i.preparedItemID }

// Portions returns the requested portion count.
func (i Item) Portions() int { return i.portions }
