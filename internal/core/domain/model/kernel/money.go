package kernel

import (
	"fmt"

	"resto/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Money is a non-negative decimal amount used for monetary order fields
// (subtotal, delivery fee, discount, total). The zero value is a valid
// zero amount, so Money can be embedded without a constructor guard.
//
// Money is immutable; arithmetic methods return new values.
type Money struct {
	amount decimal.Decimal
}

// ZeroMoney returns a Money of value 0.
func ZeroMoney() Money {
	return Money{amount: decimal.Zero}
}

// NewMoney creates a Money from a decimal amount.
// Returns an error if the amount is negative.
func NewMoney(amount decimal.Decimal) (Money, error) {
	if amount.IsNegative() {
		return Money{}, errs.NewValueIsInvalidErrorWithCause(
			"amount", fmt.Errorf("%s is negative", amount))
	}
	return Money{amount: amount}, nil
}

// NewMoneyFromString parses a decimal string ("1500.00") into a Money.
// Returns an error if the string is not a valid decimal or is negative.
func NewMoneyFromString(s string) (Money, error) {
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount", err)
	}
	return NewMoney(amount)
}

// Amount returns the underlying decimal value.
func (m Money) Amount() decimal.Decimal {
	return m.amount
}

// Add returns the sum of two amounts.
func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount)}
}

// Sub returns the difference of two amounts.
// Returns an error if the result would be negative.
func (m Money) Sub(other Money) (Money, error) {
	result := m.amount.Sub(other.amount)
	if result.IsNegative() {
		return Money{}, errs.NewValueIsInvalidErrorWithCause(
			"amount", fmt.Errorf("%s - %s is negative", m.amount, other.amount))
	}
	return Money{amount: result}, nil
}

// IsZero reports whether the amount is exactly 0.
func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

// IsEqual compares two amounts for numeric equality.
func (m Money) IsEqual(other Money) bool {
	return m.amount.Equal(other.amount)
}

// String returns the decimal string representation of the amount.
func (m Money) String() string {
	return m.amount.String()
}
