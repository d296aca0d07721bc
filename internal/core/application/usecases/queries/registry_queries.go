package queries

import (
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrGetNeighborhoodQueryIsNotConstructed = errors.New(
		"GetNeighborhoodQuery must be created via NewGetNeighborhoodQuery constructor",
	)
	ErrGetAllNeighborhoodsQueryIsNotConstructed = errors.New(
		"GetAllNeighborhoodsQuery must be created via NewGetAllNeighborhoodsQuery constructor",
	)
	ErrGetClientQueryIsNotConstructed = errors.New(
		"GetClientQuery must be created via NewGetClientQuery constructor",
	)
	ErrGetAllClientsQueryIsNotConstructed = errors.New(
		"GetAllClientsQuery must be created via NewGetAllClientsQuery constructor",
	)
	ErrGetDeliveryPersonQueryIsNotConstructed = errors.New(
		"GetDeliveryPersonQuery must be created via NewGetDeliveryPersonQuery constructor",
	)
	ErrGetAllDeliveryPeopleQueryIsNotConstructed = errors.New(
		"GetAllDeliveryPeopleQuery must be created via NewGetAllDeliveryPeopleQuery constructor",
	)
	ErrGetCollaboratorQueryIsNotConstructed = errors.New(
		"GetCollaboratorQuery must be created via NewGetCollaboratorQuery constructor",
	)
	ErrGetAllCollaboratorsQueryIsNotConstructed = errors.New(
		"GetAllCollaboratorsQuery must be created via NewGetAllCollaboratorsQuery constructor",
	)
)

// NeighborhoodResponse is the neighborhood read model.
type NeighborhoodResponse struct {
	ID          kernel.UUID
	Name        string
	DeliveryFee decimal.Decimal
}

// ClientResponse is the client read model, with the neighborhood name
// joined in.
type ClientResponse struct {
	ID               kernel.UUID
	Name             string
	IdentityCard     string
	TaxID            string
	Phone            string
	Street           string
	Number           string
	NeighborhoodID   kernel.UUID
	NeighborhoodName string
	ReferencePoint   string
}

// PersonResponse is the read model shared by delivery people and
// collaborators.
type PersonResponse struct {
	ID           kernel.UUID
	Name         string
	IdentityCard string
	TaxID        string
	Phone        string
}

// GetNeighborhoodQuery retrieves one neighborhood by id.
type GetNeighborhoodQuery struct {
	neighborhoodID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetNeighborhoodQuery creates a query for one neighborhood.
func NewGetNeighborhoodQuery(neighborhoodID kernel.UUID) (GetNeighborhoodQuery, error) {
	if err := neighborhoodID.Validate(); err != nil {
		return GetNeighborhoodQuery{}, err
	}

	return GetNeighborhoodQuery{
		neighborhoodID: neighborhoodID,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetNeighborhoodQuery) Validate() error {
	return q.guard.Validate(ErrGetNeighborhoodQueryIsNotConstructed)
}

// NeighborhoodID returns the requested neighborhood id.
func (q GetNeighborhoodQuery) NeighborhoodID() kernel.UUID { return q.neighborhoodID }

// GetAllNeighborhoodsQuery retrieves every neighborhood.
type GetAllNeighborhoodsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllNeighborhoodsQuery creates a query for the neighborhood
// list.
func NewGetAllNeighborhoodsQuery() GetAllNeighborhoodsQuery {
	return GetAllNeighborhoodsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAllNeighborhoodsQuery) Validate() error {
	return q.guard.Validate(ErrGetAllNeighborhoodsQueryIsNotConstructed)
}

// GetClientQuery retrieves one client by id.
type GetClientQuery struct {
	clientID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetClientQuery creates a query for one client.
func NewGetClientQuery(clientID kernel.UUID) (GetClientQuery, error) {
	if err := clientID.Validate(); err != nil {
		return GetClientQuery{}, err
	}

	return GetClientQuery{
		clientID: clientID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetClientQuery) Validate() error {
	return q.guard.Validate(ErrGetClientQueryIsNotConstructed)
}

// ClientID returns the requested client id.
func (q GetClientQuery) ClientID() kernel.UUID { return q.clientID }

// GetAllClientsQuery retrieves every client.
type GetAllClientsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllClientsQuery creates a query for the client list.
func NewGetAllClientsQuery() GetAllClientsQuery {
	return GetAllClientsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAllClientsQuery) Validate() error {
	return q.guard.Validate(ErrGetAllClientsQueryIsNotConstructed)
}

// GetDeliveryPersonQuery retrieves one delivery person by id.
type GetDeliveryPersonQuery struct {
	deliveryPersonID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetDeliveryPersonQuery creates a query for one delivery person.
func NewGetDeliveryPersonQuery(deliveryPersonID kernel.UUID) (GetDeliveryPersonQuery, error) {
	if err := deliveryPersonID.Validate(); err != nil {
		return GetDeliveryPersonQuery{}, err
	}

	return GetDeliveryPersonQuery{
		deliveryPersonID: deliveryPersonID,
		guard:            guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetDeliveryPersonQuery) Validate() error {
	return q.guard.Validate(ErrGetDeliveryPersonQueryIsNotConstructed)
}

// DeliveryPersonID returns the requested delivery person id.
func (q GetDeliveryPersonQuery) DeliveryPersonID() kernel.UUID { return q.deliveryPersonID }

// GetAllDeliveryPeopleQuery retrieves every delivery person.
type GetAllDeliveryPeopleQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllDeliveryPeopleQuery creates a query for the delivery person
// list.
func NewGetAllDeliveryPeopleQuery() GetAllDeliveryPeopleQuery {
	return GetAllDeliveryPeopleQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAllDeliveryPeopleQuery) Validate() error {
	return q.guard.Validate(ErrGetAllDeliveryPeopleQueryIsNotConstructed)
}

// GetCollaboratorQuery retrieves one collaborator by id.
type GetCollaboratorQuery struct {
	collaboratorID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetCollaboratorQuery creates a query for one collaborator.
func NewGetCollaboratorQuery(collaboratorID kernel.UUID) (GetCollaboratorQuery, error) {
	if err := collaboratorID.Validate(); err != nil {
		return GetCollaboratorQuery{}, err
	}

	return GetCollaboratorQuery{
		collaboratorID: collaboratorID,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCollaboratorQuery) Validate() error {
	return q.guard.Validate(ErrGetCollaboratorQueryIsNotConstructed)
}

// CollaboratorID returns the requested collaborator id.
func (q GetCollaboratorQuery) CollaboratorID() kernel.UUID { return q.collaboratorID }

// GetAllCollaboratorsQuery retrieves every collaborator.
type GetAllCollaboratorsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllCollaboratorsQuery creates a query for the collaborator
// list.
func NewGetAllCollaboratorsQuery() GetAllCollaboratorsQuery {
	return GetAllCollaboratorsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAllCollaboratorsQuery) Validate() error {
	return q.guard.Validate(ErrGetAllCollaboratorsQueryIsNotConstructed)
}
