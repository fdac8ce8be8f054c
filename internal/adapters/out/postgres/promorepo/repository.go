package promorepo

import (
	"context"
	"errors"

	"resto/internal/core/domain/model/kernel"
	"resto/internal/core/domain/model/promo"
	"resto/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormPromoRepository implements PromoRepository using GORM.
type GormPromoRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormPromoRepository creates a new GORM promo repository.
func NewGormPromoRepository(db *gorm.DB, tracker aggregateTracker) *GormPromoRepository {
	return &GormPromoRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new promo to the database.
func (r *GormPromoRepository) Add(ctx context.Context, aggregate *promo.Promo) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing promo, including its usage count.
func (r *GormPromoRepository) Update(ctx context.Context, aggregate *promo.Promo) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&PromoDTO{}).
		Where("id = ?", dto.ID).
		Select("code", "discount", "starts_at", "ends_at", "usage_limit", "usage_count").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a promo by ID.
func (r *GormPromoRepository) Get(ctx context.Context, id kernel.UUID) (*promo.Promo, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto PromoDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("promo", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByCode retrieves a promo by its public code.
func (r *GormPromoRepository) GetByCode(ctx context.Context, code string) (*promo.Promo, error) {
	if code == "" {
		return nil, errs.NewValueIsRequiredError("code")
	}

	var dto PromoDTO
	if err := r.db.WithContext(ctx).First(&dto, "code = ?", code).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("code", code)
		}
		return nil, err
	}

	return toDomain(dto)
}
