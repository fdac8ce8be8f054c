// Package promo provides the promo code entity. The validity semantics
// (active window, usage limit) live here; order validation only asks the
// promo port whether a code is currently usable.
package promo

import (
	"errors"
	"time"

	"resto/internal/core/domain/model/kernel"
	"resto/internal/pkg/errs"
)

// ErrPromoIsNotConstructed is returned when a Promo instance was not created
// through the NewPromo factory method.
var ErrPromoIsNotConstructed = errors.New("Promo must be created via NewPromo constructor")

// Promo represents a discount code with an active window and a usage ceiling.
// A usage limit of 0 means unlimited.
type Promo struct {
	id   kernel.UUID
	code string

	discount kernel.Money

	startsAt   time.Time
	endsAt     time.Time
	usageLimit int
	usageCount int

	isConstructed bool
}

// NewPromo creates a validated promo code.
// The code must be non-empty and the active window must be ordered.
func NewPromo(
	id kernel.UUID,
	code string,
	discount kernel.Money,
	startsAt, endsAt time.Time,
	usageLimit int,
) (*Promo, error) {
	p := &Promo{
		isConstructed: true,
	}

	if err := errors.Join(
		p.setID(id),
		p.setCode(code),
		p.setWindow(startsAt, endsAt),
		p.setUsageLimit(usageLimit),
	); err != nil {
		return nil, err
	}

	p.discount = discount
	return p, nil
}

// RestorePromo reconstructs a promo from persistence including its usage count.
func RestorePromo(
	id kernel.UUID,
	code string,
	discount kernel.Money,
	startsAt, endsAt time.Time,
	usageLimit, usageCount int,
) (*Promo, error) {
	p, err := NewPromo(id, code, discount, startsAt, endsAt, usageLimit)
	if err != nil {
		return nil, err
	}

	p.usageCount = usageCount
	return p, nil
}

// Validate ensures the Promo was created via its constructor.
func (p *Promo) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrPromoIsNotConstructed
	}

	return nil
}

// ID returns the promo's unique identifier.
func (p *Promo) ID() kernel.UUID {
	return p.id
}

// Code returns the customer-facing code string.
func (p *Promo) Code() string {
	return p.code
}

// Discount returns the discount amount the code grants.
func (p *Promo) Discount() kernel.Money {
	return p.discount
}

// StartsAt returns the start of the active window.
func (p *Promo) StartsAt() time.Time {
	return p.startsAt
}

// EndsAt returns the end of the active window.
func (p *Promo) EndsAt() time.Time {
	return p.endsAt
}

// UsageLimit returns the redemption cap, 0 meaning unlimited.
func (p *Promo) UsageLimit() int {
	return p.usageLimit
}

// UsageCount returns how many times the code has been redeemed.
func (p *Promo) UsageCount() int {
	return p.usageCount
}

// IsActive reports whether the code can be redeemed at the given instant:
// inside the active window and under the usage limit.
func (p *Promo) IsActive(now time.Time) bool {
	if now.Before(p.startsAt) || now.After(p.endsAt) {
		return false
	}
	if p.usageLimit > 0 && p.usageCount >= p.usageLimit {
		return false
	}
	return true
}

// Redeem records one use of the code.
// Returns an error when the code is not active at the given instant.
func (p *Promo) Redeem(now time.Time) error {
	if !p.IsActive(now) {
		return errs.NewValueIsInvalidError("promo_code")
	}
	p.usageCount++
	return nil
}

func (p *Promo) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Promo) setCode(code string) error {
	if code == "" {
		return errs.NewValueIsRequiredError("code")
	}
	p.code = code
	return nil
}

func (p *Promo) setWindow(startsAt, endsAt time.Time) error {
	if endsAt.Before(startsAt) {
		return errs.NewValueIsInvalidError("active window")
	}
	p.startsAt = startsAt
	p.endsAt = endsAt
	return nil
}

func (p *Promo) setUsageLimit(limit int) error {
	if limit < 0 {
		return errs.NewValueIsInvalidError("usage limit")
	}
	p.usageLimit = limit
	return nil
}
