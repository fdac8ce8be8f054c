package commands

import (
	"context"
	"errors"

	"resto/internal/core/domain/model/review"
	"resto/internal/pkg/errs"
)

// SubmitReviewCommandHandler persists a customer review after checking the
// reviewed order exists. New reviews start unapproved and wait for moderation.
type SubmitReviewCommandHandler struct {
	uowFactory ReviewUoWFactory
}

// NewSubmitReviewCommandHandler creates a handler for review submission.
func NewSubmitReviewCommandHandler(uowFactory ReviewUoWFactory) SubmitReviewCommandHandler {
	return SubmitReviewCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the review submission.
// Returns ErrOrderNotFound when the reviewed order does not exist.
func (h SubmitReviewCommandHandler) Handle(ctx context.Context, cmd SubmitReviewCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if _, err := uow.OrderRepository().Get(ctx, cmd.OrderID()); err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return ErrOrderNotFound
		}
		return err
	}

	newReview, err := review.NewReview(
		cmd.ReviewID(),
		cmd.OrderID(),
		cmd.DishID(),
		cmd.Rating(),
		cmd.Comment(),
		cmd.ImageIDs(),
	)
	if err != nil {
		return err
	}

	if err = uow.ReviewRepository().Add(ctx, newReview); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
