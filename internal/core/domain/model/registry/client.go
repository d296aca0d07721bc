package registry

import (
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"
)

var ErrClientIsNotConstructed = errors.New("Client must be created via NewClient constructor")

// Client is a customer with personal documents and a delivery address.
// The address references a Neighborhood by id.
type Client struct {
	id             kernel.UUID
	name           string
	identityCard   string
	taxID          string
	phone          string
	street         string
	number         string
	neighborhoodID kernel.UUID
	referencePoint string

	isConstructed bool
}

// NewClient creates a Client, collecting every field violation into a
// single ValidationError.
func NewClient(
	id kernel.UUID,
	name string,
	identityCard string,
	taxID string,
	phone string,
	street string,
	number string,
	neighborhoodID kernel.UUID,
	referencePoint string,
) (*Client, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	violations := errs.NewValidationError()
	if name == "" {
		violations.Add("name is invalid")
	}
	if identityCard == "" {
		violations.Add("identity card is invalid")
	}
	if taxID == "" {
		violations.Add("tax id is invalid")
	}
	if phone == "" {
		violations.Add("phone is invalid")
	}
	if street == "" {
		violations.Add("street is invalid")
	}
	if number == "" {
		violations.Add("number is invalid")
	}
	if neighborhoodID.Validate() != nil {
		violations.Add("neighborhood is invalid")
	}
	if referencePoint == "" {
		violations.Add("reference point is invalid")
	}
	if err := violations.AsError(); err != nil {
		return nil, err
	}

	return &Client{
		id:             id,
		name:           name,
		identityCard:   identityCard,
		taxID:          taxID,
		phone:          phone,
		street:         street,
		number:         number,
		neighborhoodID: neighborhoodID,
		referencePoint: referencePoint,
		isConstructed:  true,
	}, nil
}

// RestoreClient rebuilds a Client from persistence.
func RestoreClient(
	id kernel.UUID,
	name string,
	identityCard string,
	taxID string,
	phone string,
	street string,
	number string,
	neighborhoodID kernel.UUID,
	referencePoint string,
) (*Client, error) {
	return NewClient(id, name, identityCard, taxID, phone, street, number, neighborhoodID, referencePoint)
}

func (c *Client) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrClientIsNotConstructed
	}
	return nil
}

func (c *Client) ID() kernel.UUID {
	return c.id
}

func (c *Client) Name() string {
	return c.name
}

func (c *Client) IdentityCard() string {
	return c.identityCard
}

func (c *Client) TaxID() string {
	return c.taxID
}

func (c *Client) Phone() string {
	return c.phone
}

func (c *Client) Street() string {
	return c.street
}

func (c *Client) Number() string {
	return c.number
}

func (c *Client) Neighborhood() kernel.UUID {
	return c.neighborhoodID
}

func (c *Client) ReferencePoint() string {
	return c.referencePoint
}
