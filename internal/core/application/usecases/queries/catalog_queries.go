package queries

import (
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrGetFoodGroupQueryIsNotConstructed = errors.New(
		"GetFoodGroupQuery must be created via NewGetFoodGroupQuery constructor",
	)
	ErrGetAllFoodGroupsQueryIsNotConstructed = errors.New(
		"GetAllFoodGroupsQuery must be created via NewGetAllFoodGroupsQuery constructor",
	)
	ErrGetPreparationTypeQueryIsNotConstructed = errors.New(
		"GetPreparationTypeQuery must be created via NewGetPreparationTypeQuery constructor",
	)
	ErrGetAllPreparationTypesQueryIsNotConstructed = errors.New(
		"GetAllPreparationTypesQuery must be created via NewGetAllPreparationTypesQuery constructor",
	)
	ErrGetPreparedItemQueryIsNotConstructed = errors.New(
		"GetPreparedItemQuery must be created via NewGetPreparedItemQuery constructor",
	)
	ErrGetAllPreparedItemsQueryIsNotConstructed = errors.New(
		"GetAllPreparedItemsQuery must be created via NewGetAllPreparedItemsQuery constructor",
	)
	ErrGetMenuQueryIsNotConstructed = errors.New(
		"GetMenuQuery must be created via NewGetMenuQuery constructor",
	)
	ErrGetAllMenusQueryIsNotConstructed = errors.New(
		"GetAllMenusQuery must be created via NewGetAllMenusQuery constructor",
	)
)

// FoodGroupResponse is the food group read model.
type FoodGroupResponse struct {
	ID   kernel.UUID
	Name string
}

// PreparationTypeResponse is the preparation type read model.
type PreparationTypeResponse struct {
	ID          kernel.UUID
	Description string
}

// PreparedItemResponse is the prepared item read model, with the
// source product and preparation type names joined in.
type PreparedItemResponse struct {
	ID                  kernel.UUID
	Name                string
	ProductID           kernel.UUID
	ProductName         string
	PreparationTypeID   kernel.UUID
	PreparationTypeName string
	PreparationCost     decimal.Decimal
	PreparationTime     int
}

// MenuItemResponse is one prepared item reference of a menu read
// model.
type MenuItemResponse struct {
	PreparedItemID   kernel.UUID
	PreparedItemName string
}

// MenuResponse is the menu read model.
type MenuResponse struct {
	ID          kernel.UUID
	Name        string
	Description string
	Items       []MenuItemResponse
}

// GetFoodGroupQuery retrieves one food group by id.
type GetFoodGroupQuery struct {
	foodGroupID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetFoodGroupQuery creates a query for one food group.
func NewGetFoodGroupQuery(foodGroupID kernel.UUID) (GetFoodGroupQuery, error) {
	if err := foodGroupID.Validate(); err != nil {
		return GetFoodGroupQuery{}, err
	}

	return GetFoodGroupQuery{
		foodGroupID: foodGroupID,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetFoodGroupQuery) Validate() error {
	return q.guard.Validate(ErrGetFoodGroupQueryIsNotConstructed)
}

// FoodGroupID returns the requested food group id.
func (q GetFoodGroupQuery) FoodGroupID() kernel.UUID { return q.foodGroupID }

// GetAllFoodGroupsQuery retrieves every food group.
type GetAllFoodGroupsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllFoodGroupsQuery creates a query for the food group list.
func NewGetAllFoodGroupsQuery() GetAllFoodGroupsQuery {
	return GetAllFoodGroupsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAllFoodGroupsQuery) Validate() error {
	return q.guard.Validate(ErrGetAllFoodGroupsQueryIsNotConstructed)
}

// GetPreparationTypeQuery retrieves one preparation type by id.
type GetPreparationTypeQuery struct {
	preparationTypeID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetPreparationTypeQuery creates a query for one preparation type.
func NewGetPreparationTypeQuery(preparationTypeID kernel.UUID) (GetPreparationTypeQuery, error) {
	if err := preparationTypeID.Validate(); err != nil {
		return GetPreparationTypeQuery{}, err
	}

	return GetPreparationTypeQuery{
		preparationTypeID: preparationTypeID,
		guard:             guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetPreparationTypeQuery) Validate() error {
	return q.guard.Validate(ErrGetPreparationTypeQueryIsNotConstructed)
}

// PreparationTypeID returns the requested preparation type id.
func (q GetPreparationTypeQuery) PreparationTypeID() kernel.UUID { return q.preparationTypeID }

// GetAllPreparationTypesQuery retrieves every preparation type.
type GetAllPreparationTypesQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllPreparationTypesQuery creates a query for the preparation
// type list.
func NewGetAllPreparationTypesQuery() GetAllPreparationTypesQuery {
	return GetAllPreparationTypesQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAllPreparationTypesQuery) Validate() error {
	return q.guard.Validate(ErrGetAllPreparationTypesQueryIsNotConstructed)
}

// GetPreparedItemQuery retrieves one prepared item by id.
type GetPreparedItemQuery struct {
	preparedItemID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetPreparedItemQuery creates a query for one prepared item.
func NewGetPreparedItemQuery(preparedItemID kernel.UUID) (GetPreparedItemQuery, error) {
	if err := preparedItemID.Validate(); err != nil {
		return GetPreparedItemQuery{}, err
	}

	return GetPreparedItemQuery{
		preparedItemID: preparedItemID,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetPreparedItemQuery) Validate() error {
	return q.guard.Validate(ErrGetPreparedItemQueryIsNotConstructed)
}

// PreparedItemID returns the requested prepared item id.
func (q GetPreparedItemQuery) PreparedItemID() kernel.UUID { return q.preparedItemID }

// GetAllPreparedItemsQuery retrieves every prepared item.
type GetAllPreparedItemsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllPreparedItemsQuery creates a query for the prepared item
// list.
func NewGetAllPreparedItemsQuery() GetAllPreparedItemsQuery {
	return GetAllPreparedItemsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAllPreparedItemsQuery) Validate() error {
	return q.guard.Validate(ErrGetAllPreparedItemsQueryIsNotConstructed)
}

// GetMenuQuery retrieves one menu with its item references by id.
type GetMenuQuery struct {
	menuID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetMenuQuery creates a query for one menu.
func NewGetMenuQuery(menuID kernel.UUID) (GetMenuQuery, error) {
	if err := menuID.Validate(); err != nil {
		return GetMenuQuery{}, err
	}

	return GetMenuQuery{
		menuID: menuID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetMenuQuery) Validate() error {
	return q.guard.Validate(ErrGetMenuQueryIsNotConstructed)
}

// MenuID returns the requested menu id.
func (q GetMenuQuery) MenuID() kernel.UUID { return q.menuID }

// GetAllMenusQuery retrieves every menu with its item references.
type GetAllMenusQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllMenusQuery creates a query for the menu list.
func NewGetAllMenusQuery() GetAllMenusQuery {
	return GetAllMenusQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAllMenusQuery) Validate() error {
	return q.guard.Validate(ErrGetAllMenusQueryIsNotConstructed)
}
