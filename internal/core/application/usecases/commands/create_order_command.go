package commands

import (
	"errors"

	"resto/internal/core/domain/model/cart"
	"resto/internal/core/domain/model/kernel"
	"resto/internal/core/domain/services"
	"resto/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrCartIsEmpty = errors.New("order must contain at least one cart line")
)

// CreateOrderCommand represents a request to place a new order. It carries the
// raw payload exactly as received so the domain validator owns every field
// rule, plus the priced cart lines and the delivery fee quoted for this order.
//
// Example:
//
//	orderID := kernel.NewUUID()
//	cmd, err := NewCreateOrderCommand(orderID, payload, lines, fee)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	fieldErrs, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID     kernel.UUID
	payload     services.CreateOrderPayload
	lines       []cart.Line
	deliveryFee kernel.Money

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to place a new order.
// Validates that the order ID is valid and the cart is not empty; payload
// field rules are left to the OrderValidator so the client gets them all
// reported together.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	payload services.CreateOrderPayload,
	lines []cart.Line,
	deliveryFee kernel.Money,
) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setOrderID(orderID),
		orderCommand.setLines(lines),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	orderCommand.payload = payload
	orderCommand.deliveryFee = deliveryFee

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the order being created.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Payload returns the raw order-creation payload for validation.
func (c CreateOrderCommand) Payload() services.CreateOrderPayload {
	return c.payload
}

// Lines returns the priced cart lines making up the order.
func (c CreateOrderCommand) Lines() []cart.Line {
	return c.lines
}

// DeliveryFee returns the fee quoted for delivering this order.
// Ignored for pickup orders.
func (c CreateOrderCommand) DeliveryFee() kernel.Money {
	return c.deliveryFee
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setLines(lines []cart.Line) error {
	if len(lines) == 0 {
		return ErrCartIsEmpty
	}

	c.lines = lines
	return nil
}
