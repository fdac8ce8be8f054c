// Package reviewrepo provides data transfer objects and mapping functions for
// review persistence.
package reviewrepo

import (
	"resto/internal/core/domain/model/kernel"
	"resto/internal/core/domain/model/review"

	"github.com/google/uuid"
)

// ReviewDTO represents the database structure for persisting reviews.
type ReviewDTO struct {
	ID       uuid.UUID     `gorm:"type:uuid;primaryKey"`
	OrderID  uuid.UUID     `gorm:"type:uuid;index"`
	DishID   *uuid.UUID    `gorm:"type:uuid;index"`
	Rating   int
	Comment  string        `gorm:"type:varchar(1000)"`
	ImageIDs []ImageRefDTO `gorm:"foreignKey:ReviewID;constraint:OnDelete:CASCADE"`
	Approved bool
}

// TableName specifies the database table name for review entities.
func (ReviewDTO) TableName() string {
	return "reviews"
}

// ImageRefDTO is one image attached to a review.
type ImageRefDTO struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	ReviewID uuid.UUID `gorm:"type:uuid;index"`
}

// TableName specifies the database table name for review image references.
func (ImageRefDTO) TableName() string {
	return "review_images"
}

// fromDomain converts a review aggregate to its database representation.
func fromDomain(aggregate *review.Review) ReviewDTO {
	dto := ReviewDTO{
		ID:       aggregate.ID().Bytes(),
		OrderID:  aggregate.OrderID().Bytes(),
		Rating:   aggregate.Rating(),
		Comment:  aggregate.Comment(),
		Approved: aggregate.Approved(),
	}

	if dishID := aggregate.DishID(); dishID != nil {
		raw := dishID.Bytes()
		dto.DishID = &raw
	}

	for _, imageID := range aggregate.ImageIDs() {
		dto.ImageIDs = append(dto.ImageIDs, ImageRefDTO{
			ID:       imageID.Bytes(),
			ReviewID: dto.ID,
		})
	}

	return dto
}

// toDomain converts a database DTO to a review aggregate.
func toDomain(dto ReviewDTO) (*review.Review, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	var dishID *kernel.UUID
	if dto.DishID != nil {
		parsed, dishErr := kernel.UUIDFromBytes((*dto.DishID)[:])
		if dishErr != nil {
			return nil, dishErr
		}
		dishID = &parsed
	}

	imageIDs := make([]kernel.UUID, 0, len(dto.ImageIDs))
	for _, ref := range dto.ImageIDs {
		imageID, refErr := kernel.UUIDFromBytes(ref.ID[:])
		if refErr != nil {
			return nil, refErr
		}
		imageIDs = append(imageIDs, imageID)
	}

	return review.RestoreReview(id, orderID, dishID, dto.Rating, dto.Comment, imageIDs, dto.Approved)
}
