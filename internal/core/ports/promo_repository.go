package ports

import (
	"context"

	"resto/internal/core/domain/model/kernel"
	"resto/internal/core/domain/model/promo"
)

// PromoRepository defines the persistence contract for promo codes.
type PromoRepository interface {
	// Add persists a new promo to storage.
	Add(ctx context.Context, aggregate *promo.Promo) error

	// Update persists changes to an existing promo, including its usage count.
	Update(ctx context.Context, aggregate *promo.Promo) error

	// Get retrieves a promo by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*promo.Promo, error)

	// GetByCode retrieves a promo by its public code.
	// Returns errs.ObjectNotFoundError when no promo carries that code.
	GetByCode(ctx context.Context, code string) (*promo.Promo, error)
}
