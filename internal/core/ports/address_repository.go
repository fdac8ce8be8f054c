package ports

import (
	"context"

	"resto/internal/core/domain/model/address"
	"resto/internal/core/domain/model/kernel"
)

// AddressRepository defines the persistence contract for delivery addresses.
type AddressRepository interface {
	// Add persists a new address entity to storage.
	Add(ctx context.Context, entity *address.Address) error

	// Get retrieves an address by its unique identifier.
	// Returns errs.ObjectNotFoundError when no address has that id.
	Get(ctx context.Context, id kernel.UUID) (*address.Address, error)

	// Exists reports whether an address with the given id is stored.
	// Cheaper than Get when only referential integrity matters.
	Exists(ctx context.Context, id kernel.UUID) (bool, error)
}
