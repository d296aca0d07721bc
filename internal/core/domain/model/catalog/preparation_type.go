package catalog

import (
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"
)

var ErrPreparationTypeIsNotConstructed = errors.New("PreparationType must be created via NewPreparationType constructor")

// PreparationType describes how a product is prepared (grilled, baked,
// boiled, ...). Identified by a free-form description.
type PreparationType struct {
	id          kernel.UUID
	description string

	isConstructed bool
}

// NewPreparationType creates a PreparationType with aggregated validation.
func NewPreparationType(id kernel.UUID, description string) (*PreparationType, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	violations := errs.NewValidationError()
	if description == "" {
		violations.Add("description is invalid")
	}
	if err := violations.AsError(); err != nil {
		return nil, err
	}

	return &PreparationType{id: id, description: description, isConstructed: true}, nil
}

// RestorePreparationType rebuilds a PreparationType from persistence.
func RestorePreparationType(id kernel.UUID, description string) (*PreparationType, error) {
	return NewPreparationType(id, description)
}

func (t *PreparationType) Validate() error {
	if t == nil || !t.isConstructed {
		return ErrPreparationTypeIsNotConstructed
	}
	return nil
}

func (t *PreparationType) ID() kernel.UUID {
	return t.id
}

func (t *PreparationType) Description() string {
	return t.description
}
