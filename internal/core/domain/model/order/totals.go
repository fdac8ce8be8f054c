package order

import (
	"resto/internal/core/domain/model/kernel"
)

// Totals is the monetary breakdown of an order.
// It maintains the invariant total = subtotal + delivery fee - discount,
// with every component and the total non-negative.
//
// Totals is an immutable value object. The zero value is a valid all-zero
// breakdown, which keeps freshly restored pickup orders cheap to build.
type Totals struct {
	subtotal    kernel.Money
	deliveryFee kernel.Money
	discount    kernel.Money
	total       kernel.Money
}

// NewTotals computes an order total from its components.
// Returns an error when the discount exceeds subtotal plus delivery fee,
// which would make the total negative.
func NewTotals(subtotal, deliveryFee, discount kernel.Money) (Totals, error) {
	total, err := subtotal.Add(deliveryFee).Sub(discount)
	if err != nil {
		return Totals{}, err
	}

	return Totals{
		subtotal:    subtotal,
		deliveryFee: deliveryFee,
		discount:    discount,
		total:       total,
	}, nil
}

// Subtotal returns the sum of line-item prices.
func (t Totals) Subtotal() kernel.Money {
	return t.subtotal
}

// DeliveryFee returns the delivery charge (zero for pickup orders).
func (t Totals) DeliveryFee() kernel.Money {
	return t.deliveryFee
}

// Discount returns the promo discount applied to the order.
func (t Totals) Discount() kernel.Money {
	return t.discount
}

// Total returns the amount the customer pays.
func (t Totals) Total() kernel.Money {
	return t.total
}
