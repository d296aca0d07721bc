package queries

import (
	"context"
	"database/sql"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetNeighborhoodQueryHandler retrieves single neighborhoods from the
// database.
type GetNeighborhoodQueryHandler struct {
	db *gorm.DB
}

// NewGetNeighborhoodQueryHandler creates a handler for single
// neighborhood reads.
func NewGetNeighborhoodQueryHandler(db *gorm.DB) GetNeighborhoodQueryHandler {
	return GetNeighborhoodQueryHandler{db: db}
}

// Handle executes the query. An unknown id fails with
// ObjectNotFoundError.
func (h GetNeighborhoodQueryHandler) Handle(
	ctx context.Context,
	query GetNeighborhoodQuery,
) (NeighborhoodResponse, error) {
	if err := query.Validate(); err != nil {
		return NeighborhoodResponse{}, err
	}

	neighborhoods, err := scanNeighborhoods(h.db.WithContext(ctx).Raw(
		`SELECT id, name, delivery_fee FROM neighborhoods WHERE id = ?`,
		query.NeighborhoodID().Bytes(),
	))
	if err != nil {
		return NeighborhoodResponse{}, err
	}

	if len(neighborhoods) == 0 {
		return NeighborhoodResponse{}, errs.NewObjectNotFoundError(
			"neighborhood_id", query.NeighborhoodID())
	}

	return neighborhoods[0], nil
}

// GetAllNeighborhoodsQueryHandler retrieves the neighborhood list from
// the database.
type GetAllNeighborhoodsQueryHandler struct {
	db *gorm.DB
}

// NewGetAllNeighborhoodsQueryHandler creates a handler for
// neighborhood list reads.
func NewGetAllNeighborhoodsQueryHandler(db *gorm.DB) GetAllNeighborhoodsQueryHandler {
	return GetAllNeighborhoodsQueryHandler{db: db}
}

// Handle executes the query. Neighborhoods are returned sorted by
// name.
func (h GetAllNeighborhoodsQueryHandler) Handle(
	ctx context.Context,
	query GetAllNeighborhoodsQuery,
) ([]NeighborhoodResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return scanNeighborhoods(h.db.WithContext(ctx).Raw(
		`SELECT id, name, delivery_fee FROM neighborhoods ORDER BY name`,
	))
}

func scanNeighborhoods(result *gorm.DB) ([]NeighborhoodResponse, error) {
	rows, err := result.Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	neighborhoods := make([]NeighborhoodResponse, 0)
	for rows.Next() {
		var neighborhood NeighborhoodResponse
		var id uuid.UUID

		if err = rows.Scan(&id, &neighborhood.Name, &neighborhood.DeliveryFee); err != nil {
			return nil, err
		}

		neighborhoodID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		neighborhood.ID = neighborhoodID
		neighborhoods = append(neighborhoods, neighborhood)
	}

	return neighborhoods, rows.Err()
}

const clientSelect = `
	SELECT
		c.id,
		c.name,
		c.identity_card,
		c.tax_id,
		c.phone,
		c.street,
		c.number,
		c.neighborhood_id,
		n.name,
		c.reference_point
	FROM clients c
	JOIN neighborhoods n ON n.id = c.neighborhood_id
`

func scanClients(rows *sql.Rows) ([]ClientResponse, error) {
	clients := make([]ClientResponse, 0)

	for rows.Next() {
		var client ClientResponse
		var id, neighborhoodID uuid.UUID

		err := rows.Scan(
			&id,
			&client.Name,
			&client.IdentityCard,
			&client.TaxID,
			&client.Phone,
			&client.Street,
			&client.Number,
			&neighborhoodID,
			&client.NeighborhoodName,
			&client.ReferencePoint,
		)
		if err != nil {
			return nil, err
		}

		clientID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		client.ID = clientID

		clientNeighborhoodID, idErr := kernel.UUIDFromBytes(neighborhoodID[:])
		if idErr != nil {
			return nil, idErr
		}
		client.NeighborhoodID = clientNeighborhoodID

		clients = append(clients, client)
	}

	return clients, rows.Err()
}

// GetClientQueryHandler retrieves single clients from the database.
type GetClientQueryHandler struct {
	db *gorm.DB
}

// NewGetClientQueryHandler creates a handler for single client reads.
func NewGetClientQueryHandler(db *gorm.DB) GetClientQueryHandler {
	return GetClientQueryHandler{db: db}
}

// Handle executes the query. An unknown id fails with
// ObjectNotFoundError.
func (h GetClientQueryHandler) Handle(
	ctx context.Context,
	query GetClientQuery,
) (ClientResponse, error) {
	if err := query.Validate(); err != nil {
		return ClientResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(
		clientSelect+`WHERE c.id = ?`,
		query.ClientID().Bytes(),
	).Rows()
	if err != nil {
		return ClientResponse{}, err
	}
	defer rows.Close()

	clients, err := scanClients(rows)
	if err != nil {
		return ClientResponse{}, err
	}

	if len(clients) == 0 {
		return ClientResponse{}, errs.NewObjectNotFoundError("client_id", query.ClientID())
	}

	return clients[0], nil
}

// GetAllClientsQueryHandler retrieves the client list from the
// database.
type GetAllClientsQueryHandler struct {
	db *gorm.DB
}

// NewGetAllClientsQueryHandler creates a handler for client list
// reads.
func NewGetAllClientsQueryHandler(db *gorm.DB) GetAllClientsQueryHandler {
	return GetAllClientsQueryHandler{db: db}
}

// Handle executes the query. Clients are returned sorted by name.
func (h GetAllClientsQueryHandler) Handle(
	ctx context.Context,
	query GetAllClientsQuery,
) ([]ClientResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(clientSelect + `ORDER BY c.name`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanClients(rows)
}

func scanPeople(result *gorm.DB) ([]PersonResponse, error) {
	rows, err := result.Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	people := make([]PersonResponse, 0)
	for rows.Next() {
		var person PersonResponse
		var id uuid.UUID

		err = rows.Scan(&id, &person.Name, &person.IdentityCard, &person.TaxID, &person.Phone)
		if err != nil {
			return nil, err
		}

		personID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		person.ID = personID
		people = append(people, person)
	}

	return people, rows.Err()
}

// GetDeliveryPersonQueryHandler retrieves single delivery people from
// the database.
type GetDeliveryPersonQueryHandler struct {
	db *gorm.DB
}

// NewGetDeliveryPersonQueryHandler creates a handler for single
// delivery person reads.
func NewGetDeliveryPersonQueryHandler(db *gorm.DB) GetDeliveryPersonQueryHandler {
	return GetDeliveryPersonQueryHandler{db: db}
}

// Handle executes the query. An unknown id fails with
// ObjectNotFoundError.
func (h GetDeliveryPersonQueryHandler) Handle(
	ctx context.Context,
	query GetDeliveryPersonQuery,
) (PersonResponse, error) {
	if err := query.Validate(); err != nil {
		return PersonResponse{}, err
	}

	people, err := scanPeople(h.db.WithContext(ctx).Raw(
		`SELECT id, name, identity_card, tax_id, phone FROM delivery_people WHERE id = ?`,
		query.DeliveryPersonID().Bytes(),
	))
	if err != nil {
		return PersonResponse{}, err
	}

	if len(people) == 0 {
		return PersonResponse{}, errs.NewObjectNotFoundError(
			"delivery_person_id", query.DeliveryPersonID())
	}

	return people[0], nil
}

// GetAllDeliveryPeopleQueryHandler retrieves the delivery person list
// from the database.
type GetAllDeliveryPeopleQueryHandler struct {
	db *gorm.DB
}

// NewGetAllDeliveryPeopleQueryHandler creates a handler for delivery
// person list reads.
func NewGetAllDeliveryPeopleQueryHandler(db *gorm.DB) GetAllDeliveryPeopleQueryHandler {
	return GetAllDeliveryPeopleQueryHandler{db: db}
}

// Handle executes the query. People are returned sorted by name.
func (h GetAllDeliveryPeopleQueryHandler) Handle(
	ctx context.Context,
	query GetAllDeliveryPeopleQuery,
) ([]PersonResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return scanPeople(h.db.WithContext(ctx).Raw(
		`SELECT id, name, identity_card, tax_id, phone FROM delivery_people ORDER BY name`,
	))
}

// GetCollaboratorQueryHandler retrieves single collaborators from the
// database.
type GetCollaboratorQueryHandler struct {
	db *gorm.DB
}

// NewGetCollaboratorQueryHandler creates a handler for single
// collaborator reads.
func NewGetCollaboratorQueryHandler(db *gorm.DB) GetCollaboratorQueryHandler {
	return GetCollaboratorQueryHandler{db: db}
}

// Handle executes the query. An unknown id fails with
// ObjectNotFoundError.
func (h GetCollaboratorQueryHandler) Handle(
	ctx context.Context,
	query GetCollaboratorQuery,
) (PersonResponse, error) {
	if err := query.Validate(); err != nil {
		return PersonResponse{}, err
	}

	people, err := scanPeople(h.db.WithContext(ctx).Raw(
		`SELECT id, name, identity_card, tax_id, phone FROM collaborators WHERE id = ?`,
		query.CollaboratorID().Bytes(),
	))
	if err != nil {
		return PersonResponse{}, err
	}

	if len(people) == 0 {
		return PersonResponse{}, errs.NewObjectNotFoundError(
			"collaborator_id", query.CollaboratorID())
	}

	return people[0], nil
}

// GetAllCollaboratorsQueryHandler retrieves the collaborator list from
// the database.
type GetAllCollaboratorsQueryHandler struct {
	db *gorm.DB
}

// NewGetAllCollaboratorsQueryHandler creates a handler for
// collaborator list reads.
func NewGetAllCollaboratorsQueryHandler(db *gorm.DB) GetAllCollaboratorsQueryHandler {
	return GetAllCollaboratorsQueryHandler{db: db}
}

// Handle executes the query. Collaborators are returned sorted by
// name.
func (h GetAllCollaboratorsQueryHandler) Handle(
	ctx context.Context,
	query GetAllCollaboratorsQuery,
) ([]PersonResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return scanPeople(h.db.WithContext(ctx).Raw(
		`SELECT id, name, identity_card, tax_id, phone FROM collaborators ORDER BY name`,
	))
}
