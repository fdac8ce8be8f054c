package commands

import (
	"errors"

	"resto/internal/pkg/guard"
)

var ErrRequeueAssignmentsCommandIsNotConstructed = errors.New(
	"RequeueAssignmentsCommand must be created via NewRequeueAssignmentsCommand constructor",
)

// RequeueAssignmentsCommand re-requests driver assignment for delivery orders
// that sit in an assignment-eligible status without a driver. The original
// request is sent post-commit on a best-effort basis, so a crashed process or
// an unavailable queue can lose it; this command closes that gap.
//
// Example:
//
//	cmd := NewRequeueAssignmentsCommand()
//	handler := NewRequeueAssignmentsCommandHandler(uowFactory, assigner)
//	err := handler.Handle(ctx, cmd)
type RequeueAssignmentsCommand struct {
	guard guard.ConstructorGuard
}

// NewRequeueAssignmentsCommand creates a new command to re-request driver
// assignment. This is a parameterless command.
func NewRequeueAssignmentsCommand() RequeueAssignmentsCommand {
	return RequeueAssignmentsCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
// Returns ErrRequeueAssignmentsCommandIsNotConstructed if validation fails.
func (c *RequeueAssignmentsCommand) Validate() error {
	return c.guard.Validate(
		ErrRequeueAssignmentsCommandIsNotConstructed,
	)
}
