// Package cart provides the ephemeral cart line value object. Lines live with
// the requesting session until the ordering flow converts them into order
// line items; they are never persisted by this module.
package cart

import (
	"errors"
	"fmt"

	"resto/internal/core/domain/model/kernel"
	"resto/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// MaxInstructionsLength bounds the free-text note attached to a single line.
const MaxInstructionsLength = 500

// ErrLineIsNotConstructed is returned when a Line was not created via NewLine.
var ErrLineIsNotConstructed = errors.New("cart Line must be created via NewLine constructor")

// Line is one dish in a cart: a dish reference, a quantity, the selected
// option values and an optional free-text note. The unit price is a snapshot
// taken when the line is added, so later menu edits do not change a cart.
type Line struct { //nolint:recvcheck //using for validation
	dishID         kernel.UUID
	quantity       int
	unitPrice      kernel.Money
	optionValueIDs []kernel.UUID
	instructions   string

	isConstructed bool
}

// NewLine creates a validated cart line.
// Quantity must be at least 1; every option value reference must be a valid ID.
func NewLine(
	dishID kernel.UUID,
	quantity int,
	unitPrice kernel.Money,
	optionValueIDs []kernel.UUID,
	instructions string,
) (Line, error) {
	line := Line{
		isConstructed: true,
	}

	if err := errors.Join(
		line.setDishID(dishID),
		line.setQuantity(quantity),
		line.setOptionValueIDs(optionValueIDs),
		line.setInstructions(instructions),
	); err != nil {
		return Line{}, err
	}

	line.unitPrice = unitPrice
	return line, nil
}

// Validate ensures the Line was created through NewLine.
func (l Line) Validate() error {
	if !l.isConstructed {
		return ErrLineIsNotConstructed
	}
	return nil
}

// DishID returns the referenced dish.
func (l Line) DishID() kernel.UUID {
	return l.dishID
}

// Quantity returns how many units of the dish the line holds.
func (l Line) Quantity() int {
	return l.quantity
}

// UnitPrice returns the snapshotted price per unit.
func (l Line) UnitPrice() kernel.Money {
	return l.unitPrice
}

// OptionValueIDs returns the selected dish option values.
func (l Line) OptionValueIDs() []kernel.UUID {
	ids := make([]kernel.UUID, len(l.optionValueIDs))
	copy(ids, l.optionValueIDs)
	return ids
}

// Instructions returns the free-text note for the line.
func (l Line) Instructions() string {
	return l.instructions
}

// LineTotal returns unit price times quantity.
func (l Line) LineTotal() kernel.Money {
	total, _ := kernel.NewMoney(l.unitPrice.Amount().Mul(decimal.NewFromInt(int64(l.quantity))))
	return total
}

// Subtotal sums the line totals of a set of cart lines.
func Subtotal(lines []Line) (kernel.Money, error) {
	subtotal := kernel.ZeroMoney()
	for _, line := range lines {
		if err := line.Validate(); err != nil {
			return kernel.Money{}, err
		}
		subtotal = subtotal.Add(line.LineTotal())
	}
	return subtotal, nil
}

func (l *Line) setDishID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	l.dishID = id
	return nil
}

func (l *Line) setQuantity(quantity int) error {
	if quantity < 1 {
		return errs.NewValueIsInvalidErrorWithCause(
			"quantity", fmt.Errorf("%d is less than 1", quantity))
	}
	l.quantity = quantity
	return nil
}

func (l *Line) setOptionValueIDs(ids []kernel.UUID) error {
	for _, id := range ids {
		if err := id.Validate(); err != nil {
			return err
		}
	}
	l.optionValueIDs = make([]kernel.UUID, len(ids))
	copy(l.optionValueIDs, ids)
	return nil
}

func (l *Line) setInstructions(instructions string) error {
	if len(instructions) > MaxInstructionsLength {
		return errs.NewValueIsOutOfRangeError(
			"instructions", len(instructions), 0, MaxInstructionsLength)
	}
	l.instructions = instructions
	return nil
}
