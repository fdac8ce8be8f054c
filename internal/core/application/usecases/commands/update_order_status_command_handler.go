package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"resto/internal/core/ports"
	"resto/internal/pkg/errs"
)

var (
	ErrOrderNotFound              = errors.New("order not found")
	ErrStatusTransitionNotAllowed = errors.New("status transition not allowed")
)

// UpdateOrderStatusCommandHandler moves an order through its lifecycle and
// fires the driver-assignment trigger when the committed change calls for one.
// The status change commits first; requesting a driver happens after the
// commit and its failure is logged, never surfaced, so a flaky dispatcher
// cannot unwind an already-recorded status update.
//
// Example:
//
//	handler := NewUpdateOrderStatusCommandHandler(uowFactory, dispatcher, logger)
//	cmd, _ := NewUpdateOrderStatusCommand(orderID, order.StatusConfirmed)
//	err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, ErrOrderNotFound):
//	    // 404
//	case errors.Is(err, ErrStatusTransitionNotAllowed):
//	    // 409
//	}
type UpdateOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	assigner   ports.DriverAssigner
	logger     *slog.Logger
}

// NewUpdateOrderStatusCommandHandler creates a handler for status updates.
// The assigner is invoked post-commit for qualifying delivery orders.
func NewUpdateOrderStatusCommandHandler(
	uowFactory OrderUoWFactory, assigner ports.DriverAssigner, logger *slog.Logger,
) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{
		uowFactory: uowFactory,
		assigner:   assigner,
		logger:     logger,
	}
}

// Handle processes the status update command.
// Loads the order, applies the transition and commits. Only then, if the
// committed change moved a driverless delivery into confirmed or
// out_for_delivery, a single assignment request is sent. Repeating the same
// update cannot double-request: once a driver is recorded the trigger
// condition is false.
func (h UpdateOrderStatusCommandHandler) Handle(ctx context.Context, cmd UpdateOrderStatusCommand) error {
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

	orderRepo := uow.OrderRepository()

	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ErrOrderNotFound
	}
	if err != nil {
		return err
	}

	change, err := aggregate.ChangeStatus(cmd.Next())
	if err != nil {
		return fmt.Errorf("%w: %w", ErrStatusTransitionNotAllowed, err)
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if aggregate.NeedsDriverAssignment(change) {
		if err = h.assigner.RequestAssignment(ctx, aggregate.ID()); err != nil {
			h.logger.Error("driver assignment request failed",
				"order_id", aggregate.ID().String(),
				"from", change.From.String(),
				"to", change.To.String(),
				"error", err)
		}
	}

	return nil
}
