package order

import (
	"errors"
	"fmt"
	"time"

	"resto/internal/core/domain/model/kernel"
	"resto/internal/pkg/errs"
)

// MaxSpecialInstructionsLength bounds the free-text instructions a customer
// can attach to an order.
const MaxSpecialInstructionsLength = 500

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder factory method. This ensures all orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrDriverAlreadyAssigned is returned when assigning a driver to an order
	// that already has one. The unset-driver guard is the idempotence key of the
	// assignment trigger, so this error is an expected outcome for losing racers.
	ErrDriverAlreadyAssigned = errors.New("order already has a driver assigned")

	// ErrDriverNotAllowedForPickup is returned when assigning a driver to a pickup order.
	ErrDriverNotAllowedForPickup = errors.New("pickup orders cannot have a driver")
)

// Order represents one customer purchase. It is the aggregate root that manages
// the order lifecycle from creation through the status state machine to the
// terminal delivered/cancelled states.
//
// Order maintains these invariants:
//   - Must have a valid unique identifier
//   - Delivery orders must reference a delivery address
//   - Pickup orders never carry a driver and never enter out_for_delivery
//   - driverID stays unset until an assignment occurs, and is set at most once
//   - Totals satisfy total = subtotal + delivery fee - discount, never negative
//   - Status transitions follow the canonical adjacency in Status
//
// The struct uses private fields to ensure encapsulation; it can only be built
// through NewOrder (fresh orders, status pending) or RestoreOrder (persistence).
type Order struct {
	id kernel.UUID

	fulfillment FulfillmentType
	status      Status
	payment     PaymentMethod

	// mobileMoneyProvider and mobileMoneyNumber are optional even for
	// mobile-money payments; the ordering flow collects them later when absent.
	mobileMoneyProvider *MobileMoneyProvider
	mobileMoneyNumber   *MobileMoneyNumber

	// addressID references the delivery destination (nil for pickup)
	addressID *kernel.UUID

	// driverID is the assigned driver's ID (nil until assignment)
	driverID *kernel.UUID

	promoCode           string
	scheduledAt         *time.Time
	totals              Totals
	specialInstructions string

	isConstructed bool
}

// NewOrderParams carries the validated inputs for creating a fresh order.
// Optional fields are pointers; nil means absent.
type NewOrderParams struct {
	ID                  kernel.UUID
	Fulfillment         FulfillmentType
	Payment             PaymentMethod
	AddressID           *kernel.UUID
	MobileMoneyProvider *MobileMoneyProvider
	MobileMoneyNumber   *MobileMoneyNumber
	PromoCode           string
	ScheduledAt         *time.Time
	Totals              Totals
	SpecialInstructions string
}

// NewOrder creates a new Order in pending status. This is the only way to create
// a valid fresh order, ensuring all business invariants hold from the start.
//
// Validation failures are joined, so a caller sees every broken invariant at once:
//
//	o, err := order.NewOrder(order.NewOrderParams{
//	    ID:          kernel.NewUUID(),
//	    Fulfillment: order.TypeDelivery,
//	    Payment:     order.PaymentCash,
//	    AddressID:   &addressID,
//	})
//	if err != nil {
//	    // handle validation error
//	}
func NewOrder(params NewOrderParams) (*Order, error) {
	o := &Order{
		status:        StatusPending,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(params.ID),
		o.setFulfillment(params.Fulfillment, params.AddressID),
		o.setPayment(params.Payment, params.MobileMoneyProvider, params.MobileMoneyNumber),
		o.setSpecialInstructions(params.SpecialInstructions),
	); err != nil {
		return nil, err
	}

	o.promoCode = params.PromoCode
	o.scheduledAt = params.ScheduledAt
	o.totals = params.Totals

	return o, nil
}

// RestoreOrder reconstructs an order from persistence without re-running the
// creation-time defaults. Status and driver assignment are taken as stored;
// structural invariants are still verified.
func RestoreOrder(params NewOrderParams, status Status, driverID *kernel.UUID) (*Order, error) {
	o, err := NewOrder(params)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}
	o.status = status

	if driverID != nil {
		if err = driverID.Validate(); err != nil {
			return nil, err
		}
		if o.fulfillment == TypePickup {
			return nil, ErrDriverNotAllowedForPickup
		}
		id := *driverID
		o.driverID = &id
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed through
// NewOrder or RestoreOrder. This prevents bypassing validation by directly
// instantiating the struct.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// Fulfillment returns whether the order is delivered or picked up.
func (o *Order) Fulfillment() FulfillmentType {
	return o.fulfillment
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// Payment returns the order's payment method.
func (o *Order) Payment() PaymentMethod {
	return o.payment
}

// MobileMoneyProvider returns the wallet operator, or nil if absent.
func (o *Order) MobileMoneyProvider() *MobileMoneyProvider {
	return o.mobileMoneyProvider
}

// MobileMoneyNumber returns the wallet number, or nil if absent.
func (o *Order) MobileMoneyNumber() *MobileMoneyNumber {
	return o.mobileMoneyNumber
}

// AddressID returns the delivery address reference.
// Always non-nil for delivery orders, always nil for pickup orders.
func (o *Order) AddressID() *kernel.UUID {
	return o.addressID
}

// PromoCode returns the promo code applied to the order, empty if none.
func (o *Order) PromoCode() string {
	return o.promoCode
}

// ScheduledAt returns the requested fulfillment time, nil for as-soon-as-possible.
func (o *Order) ScheduledAt() *time.Time {
	return o.scheduledAt
}

// Driver returns the assigned driver's ID.
// Returns nil while no driver is assigned.
func (o *Order) Driver() *kernel.UUID {
	return o.driverID
}

// Totals returns the order's monetary breakdown.
func (o *Order) Totals() Totals {
	return o.totals
}

// SpecialInstructions returns the customer's free-text instructions.
func (o *Order) SpecialInstructions() string {
	return o.specialInstructions
}

// ChangeStatus moves the order to the next lifecycle status.
//
// The transition must be listed in the canonical adjacency, and pickup orders
// may never enter out_for_delivery. On success the explicit before/after diff
// is returned so the owning operation can evaluate the assignment trigger
// after committing the mutation.
//
// Returns:
//   - StatusChange{From, To} on a legal transition
//   - error when the target status is invalid or the transition is not allowed
func (o *Order) ChangeStatus(next Status) (StatusChange, error) {
	if next == StatusOutForDelivery && o.fulfillment == TypePickup {
		return StatusChange{}, errs.NewValueIsInvalidErrorWithCause(
			"status", fmt.Errorf("pickup orders cannot be %s", StatusOutForDelivery))
	}

	newStatus, err := o.status.TransitionTo(next)
	if err != nil {
		return StatusChange{}, err
	}

	change := StatusChange{From: o.status, To: newStatus}
	o.status = newStatus
	return change, nil
}

// AssignDriver records the driver handling a delivery order.
//
// Business rules:
//   - The driver ID must be valid
//   - Only delivery orders can have a driver
//   - A driver is assigned at most once; once set it never changes
//
// Returns ErrDriverAlreadyAssigned when a driver is already set. Callers racing
// through the assignment trigger treat that error as a benign outcome.
func (o *Order) AssignDriver(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}

	if o.fulfillment == TypePickup {
		return ErrDriverNotAllowedForPickup
	}

	if o.driverID != nil {
		return ErrDriverAlreadyAssigned
	}

	o.driverID = &driverID
	return nil
}

// NeedsDriverAssignment evaluates the assignment-trigger condition against an
// explicit status diff: the change entered confirmed or out_for_delivery, the
// order is a delivery and no driver is set yet. Pure; safe to call after commit.
func (o *Order) NeedsDriverAssignment(change StatusChange) bool {
	return o.fulfillment == TypeDelivery &&
		o.driverID == nil &&
		change.To.TriggersAssignment()
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setFulfillment(t FulfillmentType, addressID *kernel.UUID) error {
	if err := t.Validate(); err != nil {
		return err
	}

	if t == TypeDelivery {
		if addressID == nil {
			return errs.NewValueIsRequiredError("address_id")
		}
		if err := addressID.Validate(); err != nil {
			return err
		}
		id := *addressID
		o.addressID = &id
	}

	o.fulfillment = t
	return nil
}

func (o *Order) setPayment(
	m PaymentMethod, provider *MobileMoneyProvider, number *MobileMoneyNumber,
) error {
	if err := m.Validate(); err != nil {
		return err
	}

	if provider != nil {
		if err := provider.Validate(); err != nil {
			return err
		}
		p := *provider
		o.mobileMoneyProvider = &p
	}

	if number != nil {
		if _, err := MobileMoneyNumberFromString(number.String()); err != nil {
			return err
		}
		n := *number
		o.mobileMoneyNumber = &n
	}

	o.payment = m
	return nil
}

func (o *Order) setSpecialInstructions(instructions string) error {
	if len(instructions) > MaxSpecialInstructionsLength {
		return errs.NewValueIsOutOfRangeError(
			"special_instructions", len(instructions), 0, MaxSpecialInstructionsLength)
	}
	o.specialInstructions = instructions
	return nil
}
