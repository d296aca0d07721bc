package catalog

import (
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"
)

var ErrMenuIsNotConstructed = errors.New("Menu must be created via NewMenu constructor")

// Menu is a named, ordered collection of prepared item references.
// A menu must contain at least one item.
type Menu struct {
	id          kernel.UUID
	name        string
	description string
	itemIDs     []kernel.UUID

	isConstructed bool
}

// NewMenu creates a Menu, collecting every field violation into a single
// ValidationError.
func NewMenu(id kernel.UUID, name string, description string, itemIDs []kernel.UUID) (*Menu, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	violations := errs.NewValidationError()
	if name == "" {
		violations.Add("name is invalid")
	}
	if description == "" {
		violations.Add("description is invalid")
	}
	if len(itemIDs) == 0 {
		violations.Add("menu must have at least one item")
	}
	for _, itemID := range itemIDs {
		if itemID.Validate() != nil {
			violations.Add("menu item is invalid")
			break
		}
	}
	if err := violations.AsError(); err != nil {
		return nil, err
	}

	items := make([]kernel.UUID, len(itemIDs))
	copy(items, itemIDs)

	return &Menu{
		id:            id,
		name:          name,
		description:   description,
		itemIDs:       items,
		isConstructed: true,
	}, nil
}

// RestoreMenu rebuilds a Menu from persistence.
func RestoreMenu(id kernel.UUID, name string, description string, itemIDs []kernel.UUID) (*Menu, error) {
	return NewMenu(id, name, description, itemIDs)
}

func (m *Menu) Validate() error {
	if m == nil || !m.isConstructed {
		return ErrMenuIsNotConstructed
	}
	return nil
}

func (m *Menu) ID() kernel.UUID {
	return m.id
}

func (m *Menu) Name() string {
	return m.name
}

func (m *Menu) Description() string {
	return m.description
}

// Items returns the ordered prepared item references. The returned slice
// is a copy; the menu's own list cannot be mutated through it.
func (m *Menu) Items() []kernel.UUID {
	items := make([]kernel.UUID, len(m.itemIDs))
	copy(items, m.itemIDs)
	return items
}
