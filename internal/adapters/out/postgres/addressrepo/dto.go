// Package addressrepo provides data transfer objects and mapping functions for
// address persistence, converting the Address entity to and from its relational
// representation.
package addressrepo

import (
	"resto/internal/core/domain/model/address"
	"resto/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// AddressDTO represents the database structure for persisting delivery addresses.
type AddressDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	OwnerID      uuid.UUID `gorm:"type:uuid;index"`
	Label        string    `gorm:"type:varchar(64)"`
	Street       string    `gorm:"type:varchar(255)"`
	City         string    `gorm:"type:varchar(128)"`
	PostalCode   string    `gorm:"type:varchar(16)"`
	Lat          float64
	Lon          float64
	IsDefault    bool
	ContactName  string `gorm:"type:varchar(128)"`
	ContactPhone string `gorm:"type:varchar(32)"`
}

// TableName specifies the database table name for address entities.
func (AddressDTO) TableName() string {
	return "addresses"
}

// fromDomain converts an address entity to its database representation.
func fromDomain(entity *address.Address) AddressDTO {
	return AddressDTO{
		ID:           entity.ID().Bytes(),
		OwnerID:      entity.OwnerID().Bytes(),
		Label:        entity.Label(),
		Street:       entity.Street(),
		City:         entity.City(),
		PostalCode:   entity.PostalCode(),
		Lat:          entity.Point().Lat(),
		Lon:          entity.Point().Lon(),
		IsDefault:    entity.IsDefault(),
		ContactName:  entity.ContactName(),
		ContactPhone: entity.ContactPhone(),
	}
}

// toDomain converts a database DTO to an address entity.
func toDomain(dto AddressDTO) (*address.Address, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	ownerID, err := kernel.UUIDFromBytes(dto.OwnerID[:])
	if err != nil {
		return nil, err
	}

	point, err := kernel.NewGeoPoint(dto.Lat, dto.Lon)
	if err != nil {
		return nil, err
	}

	return address.NewAddress(address.NewAddressParams{
		ID:           id,
		OwnerID:      ownerID,
		Label:        dto.Label,
		Street:       dto.Street,
		City:         dto.City,
		PostalCode:   dto.PostalCode,
		Point:        point,
		IsDefault:    dto.IsDefault,
		ContactName:  dto.ContactName,
		ContactPhone: dto.ContactPhone,
	})
}
