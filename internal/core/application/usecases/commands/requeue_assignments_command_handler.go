package commands

import (
	"context"
	"errors"

	"resto/internal/core/ports"
)

// ErrNoUnassignedDeliveries is returned when every eligible delivery order
// already has a driver. Callers treat it as an expected idle outcome.
var ErrNoUnassignedDeliveries = errors.New("no unassigned delivery orders found")

// RequeueAssignmentsCommandHandler finds driverless delivery orders in an
// assignment-eligible status and pushes a fresh assignment request for each.
// Requesting twice for the same order is harmless: recording the driver is a
// conditional write, so a duplicate report loses and changes nothing.
type RequeueAssignmentsCommandHandler struct {
	uowFactory OrderUoWFactory
	assigner   ports.DriverAssigner
}

// NewRequeueAssignmentsCommandHandler creates a handler for assignment requeue.
func NewRequeueAssignmentsCommandHandler(
	uowFactory OrderUoWFactory, assigner ports.DriverAssigner,
) RequeueAssignmentsCommandHandler {
	return RequeueAssignmentsCommandHandler{
		uowFactory: uowFactory,
		assigner:   assigner,
	}
}

// Handle processes the requeue command.
// Returns ErrNoUnassignedDeliveries when there is nothing to re-request.
func (h RequeueAssignmentsCommandHandler) Handle(ctx context.Context, cmd RequeueAssignmentsCommand) error {
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

	unassigned, err := uow.OrderRepository().GetUnassignedDeliveries(ctx)
	if err != nil {
		return err
	}
	if len(unassigned) == 0 {
		return ErrNoUnassignedDeliveries
	}

	var requestErrs error
	for _, aggregate := range unassigned {
		if reqErr := h.assigner.RequestAssignment(ctx, aggregate.ID()); reqErr != nil {
			requestErrs = errors.Join(requestErrs, reqErr)
		}
	}

	return requestErrs
}
