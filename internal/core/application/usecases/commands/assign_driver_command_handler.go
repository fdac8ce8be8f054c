package commands

import (
	"context"
	"errors"

	"resto/internal/core/domain/model/order"
	"resto/internal/pkg/errs"
)

// AssignDriverCommandHandler records the driver picked by the external
// assignment service. The write is a single conditional update guarded on the
// driver column being unset, so when two assignment reports race only the
// first one lands and the loser gets order.ErrDriverAlreadyAssigned.
//
// Example:
//
//	handler := NewAssignDriverCommandHandler(uowFactory)
//	cmd, _ := NewAssignDriverCommand(orderID, driverID)
//	err := handler.Handle(ctx, cmd)
//	if errors.Is(err, order.ErrDriverAlreadyAssigned) {
//	    // another report won the race; nothing to do
//	}
type AssignDriverCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewAssignDriverCommandHandler creates a handler for driver assignment reports.
func NewAssignDriverCommandHandler(uowFactory OrderUoWFactory) AssignDriverCommandHandler {
	return AssignDriverCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the assignment report.
// Returns ErrOrderNotFound for unknown orders and
// order.ErrDriverAlreadyAssigned when a driver was already recorded.
func (h AssignDriverCommandHandler) Handle(ctx context.Context, cmd AssignDriverCommand) error {
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

	won, err := uow.OrderRepository().SetDriverIfUnset(ctx, cmd.OrderID(), cmd.DriverID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ErrOrderNotFound
	}
	if err != nil {
		return err
	}
	if !won {
		return order.ErrDriverAlreadyAssigned
	}

	return uow.Commit(ctx)
}
