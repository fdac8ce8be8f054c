// Package ports defines repository and outbound-service interfaces for the
// ordering domain. These interfaces establish contracts between the domain
// layer and infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"

	"resto/internal/core/domain/model/kernel"
	"resto/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Provides methods for storing, retrieving, and querying order entities
// based on their status and driver assignment state.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// The order must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns errs.ObjectNotFoundError when no order has that id.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// SetDriverIfUnset assigns a driver to the order only when no driver is
	// recorded yet. The check and write happen in a single statement, so two
	// concurrent assignment attempts cannot both win. Returns true when this
	// call performed the assignment, false when a driver was already set.
	SetDriverIfUnset(ctx context.Context, orderID kernel.UUID, driverID kernel.UUID) (bool, error)

	// GetUnassignedDeliveries retrieves delivery orders that are in an
	// assignment-eligible status but still have no driver. Used by the
	// reconciliation job to re-request assignment for orders whose original
	// dispatch was lost.
	GetUnassignedDeliveries(ctx context.Context) ([]*order.Order, error)
}
