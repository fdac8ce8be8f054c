package ports

import (
	"context"

	"resto/internal/core/domain/model/kernel"
	"resto/internal/core/domain/model/review"
)

// ReviewRepository defines the persistence contract for order reviews.
type ReviewRepository interface {
	// Add persists a new review to storage.
	Add(ctx context.Context, aggregate *review.Review) error

	// GetByOrder retrieves all reviews submitted for the given order.
	GetByOrder(ctx context.Context, orderID kernel.UUID) ([]*review.Review, error)
}
