// Package address provides the Address entity: a customer delivery destination
// referenced by delivery orders and checked for existence during order validation.
package address

import (
	"errors"

	"resto/internal/core/domain/model/kernel"
	"resto/internal/pkg/errs"
)

// ErrAddressIsNotConstructed is returned when an Address instance was not created
// through the NewAddress factory method.
var ErrAddressIsNotConstructed = errors.New("Address must be created via NewAddress constructor")

// Address represents a delivery destination owned by a user.
// Street, city and coordinates are mandatory; postal code and contact
// details are optional. One address per user may be flagged as default.
type Address struct {
	id      kernel.UUID
	ownerID kernel.UUID

	label      string
	street     string
	city       string
	postalCode string
	point      kernel.GeoPoint

	isDefault    bool
	contactName  string
	contactPhone string

	isConstructed bool
}

// NewAddressParams carries the inputs for creating an address.
// Optional fields may be left empty.
type NewAddressParams struct {
	ID           kernel.UUID
	OwnerID      kernel.UUID
	Label        string
	Street       string
	City         string
	PostalCode   string
	Point        kernel.GeoPoint
	IsDefault    bool
	ContactName  string
	ContactPhone string
}

// NewAddress creates a validated Address.
// Returns a joined error listing every missing or invalid field.
func NewAddress(params NewAddressParams) (*Address, error) {
	a := &Address{
		isConstructed: true,
	}

	if err := errors.Join(
		a.setID(params.ID),
		a.setOwnerID(params.OwnerID),
		a.setStreet(params.Street),
		a.setCity(params.City),
		a.setPoint(params.Point),
	); err != nil {
		return nil, err
	}

	a.label = params.Label
	a.postalCode = params.PostalCode
	a.isDefault = params.IsDefault
	a.contactName = params.ContactName
	a.contactPhone = params.ContactPhone

	return a, nil
}

// Validate ensures the Address was created through NewAddress.
func (a *Address) Validate() error {
	if a == nil || !a.isConstructed {
		return ErrAddressIsNotConstructed
	}

	return nil
}

// ID returns the address's unique identifier.
func (a *Address) ID() kernel.UUID {
	return a.id
}

// OwnerID returns the identifier of the user owning this address.
func (a *Address) OwnerID() kernel.UUID {
	return a.ownerID
}

// Label returns the display label ("Home", "Office"), possibly empty.
func (a *Address) Label() string {
	return a.label
}

// Street returns the street line.
func (a *Address) Street() string {
	return a.street
}

// City returns the city name.
func (a *Address) City() string {
	return a.city
}

// PostalCode returns the postal code, possibly empty.
func (a *Address) PostalCode() string {
	return a.postalCode
}

// Point returns the geographic coordinates of the destination.
func (a *Address) Point() kernel.GeoPoint {
	return a.point
}

// IsDefault reports whether this is the owner's default address.
func (a *Address) IsDefault() bool {
	return a.isDefault
}

// ContactName returns the optional on-site contact name.
func (a *Address) ContactName() string {
	return a.contactName
}

// ContactPhone returns the optional on-site contact phone.
func (a *Address) ContactPhone() string {
	return a.contactPhone
}

func (a *Address) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	a.id = id
	return nil
}

func (a *Address) setOwnerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	a.ownerID = id
	return nil
}

func (a *Address) setStreet(street string) error {
	if street == "" {
		return errs.NewValueIsRequiredError("street")
	}
	a.street = street
	return nil
}

func (a *Address) setCity(city string) error {
	if city == "" {
		return errs.NewValueIsRequiredError("city")
	}
	a.city = city
	return nil
}

func (a *Address) setPoint(point kernel.GeoPoint) error {
	if err := point.Validate(); err != nil {
		return err
	}
	a.point = point
	return nil
}
