package ports

import (
	"context"

	"resto/internal/core/domain/model/kernel"
)

// DriverAssigner requests a driver for a delivery order from the external
// driver pool. The request is fire-and-forget: delivery of the request is
// best effort and the caller must tolerate failures, since the order itself
// is already committed when assignment is requested.
type DriverAssigner interface {
	// RequestAssignment asks the driver pool to pick a driver for the order.
	RequestAssignment(ctx context.Context, orderID kernel.UUID) error
}
