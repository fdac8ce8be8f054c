package commands

import (
	"errors"

	"resto/internal/core/domain/model/kernel"
	"resto/internal/pkg/guard"
)

var ErrSubmitReviewCommandIsNotConstructed = errors.New(
	"SubmitReviewCommand must be created via NewSubmitReviewCommand constructor",
)

// SubmitReviewCommand represents a customer review of a completed order,
// optionally scoped to a single dish.
type SubmitReviewCommand struct { //nolint:recvcheck //using for validation
	reviewID kernel.UUID
	orderID  kernel.UUID
	dishID   *kernel.UUID
	rating   int
	comment  string
	imageIDs []kernel.UUID

	guard guard.ConstructorGuard
}

// NewSubmitReviewCommand creates a command to submit a review.
// Rating, comment and image bounds are enforced by the Review aggregate; the
// command only checks its identifiers.
func NewSubmitReviewCommand(
	reviewID, orderID kernel.UUID,
	dishID *kernel.UUID,
	rating int,
	comment string,
	imageIDs []kernel.UUID,
) (SubmitReviewCommand, error) {
	reviewCommand := SubmitReviewCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		reviewCommand.setReviewID(reviewID),
		reviewCommand.setOrderID(orderID),
	); err != nil {
		return SubmitReviewCommand{}, err
	}

	reviewCommand.dishID = dishID
	reviewCommand.rating = rating
	reviewCommand.comment = comment
	reviewCommand.imageIDs = imageIDs

	return reviewCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrSubmitReviewCommandIsNotConstructed if validation fails.
func (c SubmitReviewCommand) Validate() error {
	return c.guard.Validate(ErrSubmitReviewCommandIsNotConstructed)
}

// ReviewID returns the identifier for the new review.
func (c SubmitReviewCommand) ReviewID() kernel.UUID {
	return c.reviewID
}

// OrderID returns the identifier of the reviewed order.
func (c SubmitReviewCommand) OrderID() kernel.UUID {
	return c.orderID
}

// DishID returns the reviewed dish, or nil when the review covers the whole order.
func (c SubmitReviewCommand) DishID() *kernel.UUID {
	return c.dishID
}

// Rating returns the submitted star rating.
func (c SubmitReviewCommand) Rating() int {
	return c.rating
}

// Comment returns the free-text comment.
func (c SubmitReviewCommand) Comment() string {
	return c.comment
}

// ImageIDs returns the attached image references.
func (c SubmitReviewCommand) ImageIDs() []kernel.UUID {
	return c.imageIDs
}

func (c *SubmitReviewCommand) setReviewID(reviewID kernel.UUID) error {
	if err := reviewID.Validate(); err != nil {
		return err
	}

	c.reviewID = reviewID
	return nil
}

func (c *SubmitReviewCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
