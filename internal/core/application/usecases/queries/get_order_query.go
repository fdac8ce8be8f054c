package queries

import (
	"errors"
	"time"

	"resto/internal/core/domain/model/kernel"
	"resto/internal/core/domain/model/order"
	"resto/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery retrieves a single order by its identifier.
type GetOrderQuery struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query for one order.
// Validates the order ID.
func NewGetOrderQuery(orderID kernel.UUID) (GetOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderQuery{}, err
	}

	return GetOrderQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrderQueryIsNotConstructed if validation fails.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the identifier of the requested order.
func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

// GetOrderQueryResponse is the full order detail for the order page.
type GetOrderQueryResponse struct {
	ID                  kernel.UUID
	Type                order.FulfillmentType
	Status              order.Status
	PaymentMethod       order.PaymentMethod
	AddressID           *kernel.UUID
	DriverID            *kernel.UUID
	PromoCode           string
	ScheduledAt         *time.Time
	Subtotal            kernel.Money
	DeliveryFee         kernel.Money
	Discount            kernel.Money
	Total               kernel.Money
	SpecialInstructions string
}
