package order

import (
	"fmt"

	"resto/internal/pkg/errs"
)

// FulfillmentType states whether an order is delivered to an address
// or picked up at the restaurant.
type FulfillmentType string

const (
	// TypeDelivery orders are carried to a customer address by a driver.
	TypeDelivery FulfillmentType = "delivery"

	// TypePickup orders are collected in person; they never involve a driver.
	TypePickup FulfillmentType = "pickup"
)

// FulfillmentTypeFromString parses a wire-format fulfillment type.
// Only "delivery" and "pickup" are accepted.
func FulfillmentTypeFromString(s string) (FulfillmentType, error) {
	t := FulfillmentType(s)
	if err := t.Validate(); err != nil {
		return "", err
	}
	return t, nil
}

// Validate checks if the value is one of the two known fulfillment types.
func (t FulfillmentType) Validate() error {
	switch t {
	case TypeDelivery, TypePickup:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause(
			"type", fmt.Errorf("%q is not a valid fulfillment type", string(t)))
	}
}

// String returns the wire-format name of the fulfillment type.
func (t FulfillmentType) String() string {
	return string(t)
}
