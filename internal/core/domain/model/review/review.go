// Package review provides the Review aggregate: customer feedback attached to
// an order and optionally to one of its dishes. Reviews await moderation and
// are only shown publicly once approved.
package review

import (
	"errors"

	"resto/internal/core/domain/model/kernel"
	"resto/internal/pkg/errs"
)

const (
	// MinRating is the lowest accepted star rating.
	MinRating = 1
	// MaxRating is the highest accepted star rating.
	MaxRating = 5
	// MaxCommentLength bounds the free-text comment.
	MaxCommentLength = 1000
	// MaxImages bounds the number of attached image references.
	MaxImages = 5
)

// ErrReviewIsNotConstructed is returned when a Review instance was not created
// through the NewReview factory method.
var ErrReviewIsNotConstructed = errors.New("Review must be created via NewReview constructor")

// Review represents one piece of customer feedback for an order.
// A review starts unapproved; moderation flips the approval flag.
type Review struct {
	id      kernel.UUID
	orderID kernel.UUID
	dishID  *kernel.UUID

	rating   int
	comment  string
	imageIDs []kernel.UUID
	approved bool

	isConstructed bool
}

// NewReview creates a validated, unapproved review.
// Rating must be between MinRating and MaxRating, the comment at most
// MaxCommentLength characters and at most MaxImages image references.
func NewReview(
	id kernel.UUID,
	orderID kernel.UUID,
	dishID *kernel.UUID,
	rating int,
	comment string,
	imageIDs []kernel.UUID,
) (*Review, error) {
	r := &Review{
		isConstructed: true,
	}

	if err := errors.Join(
		r.setID(id),
		r.setOrderID(orderID),
		r.setDishID(dishID),
		r.setRating(rating),
		r.setComment(comment),
		r.setImageIDs(imageIDs),
	); err != nil {
		return nil, err
	}

	return r, nil
}

// RestoreReview reconstructs a review from persistence, including its
// moderation state.
func RestoreReview(
	id kernel.UUID,
	orderID kernel.UUID,
	dishID *kernel.UUID,
	rating int,
	comment string,
	imageIDs []kernel.UUID,
	approved bool,
) (*Review, error) {
	r, err := NewReview(id, orderID, dishID, rating, comment, imageIDs)
	if err != nil {
		return nil, err
	}

	r.approved = approved
	return r, nil
}

// Validate ensures the Review was created via its constructor.
func (r *Review) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrReviewIsNotConstructed
	}

	return nil
}

// ID returns the review's unique identifier.
func (r *Review) ID() kernel.UUID {
	return r.id
}

// OrderID returns the reviewed order.
func (r *Review) OrderID() kernel.UUID {
	return r.orderID
}

// DishID returns the reviewed dish, or nil for an order-level review.
func (r *Review) DishID() *kernel.UUID {
	return r.dishID
}

// Rating returns the star rating (1 to 5).
func (r *Review) Rating() int {
	return r.rating
}

// Comment returns the free-text comment, possibly empty.
func (r *Review) Comment() string {
	return r.comment
}

// ImageIDs returns the attached image references.
func (r *Review) ImageIDs() []kernel.UUID {
	ids := make([]kernel.UUID, len(r.imageIDs))
	copy(ids, r.imageIDs)
	return ids
}

// Approved reports whether moderation approved the review.
func (r *Review) Approved() bool {
	return r.approved
}

// Approve marks the review as approved for public display.
func (r *Review) Approve() {
	r.approved = true
}

func (r *Review) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *Review) setOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.orderID = id
	return nil
}

func (r *Review) setDishID(id *kernel.UUID) error {
	if id == nil {
		return nil
	}
	if err := id.Validate(); err != nil {
		return err
	}
	dishID := *id
	r.dishID = &dishID
	return nil
}

func (r *Review) setRating(rating int) error {
	if rating < MinRating || rating > MaxRating {
		return errs.NewValueIsOutOfRangeError("rating", rating, MinRating, MaxRating)
	}
	r.rating = rating
	return nil
}

func (r *Review) setComment(comment string) error {
	if len(comment) > MaxCommentLength {
		return errs.NewValueIsOutOfRangeError("comment", len(comment), 0, MaxCommentLength)
	}
	r.comment = comment
	return nil
}

func (r *Review) setImageIDs(ids []kernel.UUID) error {
	if len(ids) > MaxImages {
		return errs.NewValueIsOutOfRangeError("images", len(ids), 0, MaxImages)
	}
	for _, id := range ids {
		if err := id.Validate(); err != nil {
			return err
		}
	}
	r.imageIDs = make([]kernel.UUID, len(ids))
	copy(r.imageIDs, ids)
	return nil
}
