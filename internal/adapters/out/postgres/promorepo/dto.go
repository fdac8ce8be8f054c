// Package promorepo provides data transfer objects and mapping functions for
// promo code persistence.
package promorepo

import (
	"time"

	"resto/internal/core/domain/model/kernel"
	"resto/internal/core/domain/model/promo"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PromoDTO represents the database structure for persisting promo codes.
type PromoDTO struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Code       string          `gorm:"type:varchar(64);uniqueIndex"`
	Discount   decimal.Decimal `gorm:"type:numeric(12,2)"`
	StartsAt   time.Time
	EndsAt     time.Time
	UsageLimit int
	UsageCount int
}

// TableName specifies the database table name for promo entities.
func (PromoDTO) TableName() string {
	return "promos"
}

// fromDomain converts a promo aggregate to its database representation.
func fromDomain(aggregate *promo.Promo) PromoDTO {
	return PromoDTO{
		ID:         aggregate.ID().Bytes(),
		Code:       aggregate.Code(),
		Discount:   aggregate.Discount().Amount(),
		StartsAt:   aggregate.StartsAt(),
		EndsAt:     aggregate.EndsAt(),
		UsageLimit: aggregate.UsageLimit(),
		UsageCount: aggregate.UsageCount(),
	}
}

// toDomain converts a database DTO to a promo aggregate.
func toDomain(dto PromoDTO) (*promo.Promo, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	discount, err := kernel.NewMoney(dto.Discount)
	if err != nil {
		return nil, err
	}

	return promo.RestorePromo(
		id, dto.Code, discount, dto.StartsAt, dto.EndsAt, dto.UsageLimit, dto.UsageCount)
}
