package services

import (
	"context"
	"time"

	"resto/internal/core/domain/model/kernel"
	"resto/internal/core/domain/model/order"
)

// FieldErrors maps a payload field name to the user-facing messages explaining
// why it was rejected. An empty map means the payload is acceptable.
type FieldErrors map[string][]string

// Add appends a message for a field.
func (f FieldErrors) Add(field, message string) {
	f[field] = append(f[field], message)
}

// HasErrors reports whether any field was rejected.
func (f FieldErrors) HasErrors() bool {
	return len(f) > 0
}

// CreateOrderPayload is the raw order-creation request as received from the
// mobile API: everything is a string, absence is the empty string. The
// validator parses and normalizes it into a ValidatedOrder.
type CreateOrderPayload struct {
	Type                string
	AddressID           string
	PaymentMethod       string
	MobileMoneyProvider string
	MobileMoneyNumber   string
	PromoCode           string
	ScheduledAt         string
	SpecialInstructions string
}

// ValidatedOrder holds the parsed, normalized order-creation data. It is only
// produced when every validation rule passed, so downstream code can consume
// its fields without re-checking them.
type ValidatedOrder struct {
	Fulfillment         order.FulfillmentType
	AddressID           *kernel.UUID
	Payment             order.PaymentMethod
	MobileMoneyProvider *order.MobileMoneyProvider
	MobileMoneyNumber   *order.MobileMoneyNumber
	PromoCode           string
	ScheduledAt         *time.Time
	SpecialInstructions string
}

// AddressLookup is the referential collaborator for delivery addresses.
// Implementations report whether the referenced address exists.
type AddressLookup interface {
	Exists(ctx context.Context, id kernel.UUID) (bool, error)
}

// PromoLookup is the referential collaborator for promo codes.
// Validity (existence, active window, usage limit) is owned by the implementation.
type PromoLookup interface {
	IsValid(ctx context.Context, code string) (bool, error)
}

// OrderValidator is a domain service that decides whether an order-creation
// payload is acceptable and produces field-level error messages when it is not.
// It never persists anything itself; referential checks are delegated to the
// injected lookups.
//
// Example:
//
//	validator := services.NewOrderValidator(addressRepo, promoRepo)
//	validated, fieldErrs, err := validator.Validate(ctx, payload)
//	if err != nil {
//	    // collaborator failure, not a client error
//	}
//	if fieldErrs.HasErrors() {
//	    // reject the request with a 422 and the field error map
//	}
//	// validated is safe to turn into an Order
type OrderValidator struct {
	addresses AddressLookup
	promos    PromoLookup
}

// NewOrderValidator creates a validator with its referential collaborators.
func NewOrderValidator(addresses AddressLookup, promos PromoLookup) OrderValidator {
	return OrderValidator{
		addresses: addresses,
		promos:    promos,
	}
}

// Validate checks the payload against the ordering rules:
//
//   - type: required, "delivery" or "pickup"
//   - address_id: required for delivery; when present must parse as a UUID and
//     reference an existing address
//   - payment_method: required, one of card / mobile_money / cash
//   - mobile_money_provider: optional regardless of payment method; when present
//     must match MTN or Moov case-insensitively (normalized to canonical casing)
//   - mobile_money_number: optional; when present must be 8-10 digits with an
//     optional country-code prefix
//   - promo_code: optional; when present must be currently valid
//   - scheduled_at: optional; when present must be an RFC 3339 timestamp
//   - special_instructions: optional, at most 500 characters
//
// The returned error reports collaborator failures only (lookup unreachable);
// client mistakes always surface through FieldErrors. No partial persistence
// ever happens here.
func (v OrderValidator) Validate(
	ctx context.Context, payload CreateOrderPayload,
) (*ValidatedOrder, FieldErrors, error) {
	fieldErrs := make(FieldErrors)
	validated := &ValidatedOrder{
		PromoCode:           payload.PromoCode,
		SpecialInstructions: payload.SpecialInstructions,
	}

	v.validateType(payload, validated, fieldErrs)
	if err := v.validateAddress(ctx, payload, validated, fieldErrs); err != nil {
		return nil, nil, err
	}
	v.validatePayment(payload, validated, fieldErrs)
	if err := v.validatePromo(ctx, payload, fieldErrs); err != nil {
		return nil, nil, err
	}
	v.validateSchedule(payload, validated, fieldErrs)
	v.validateInstructions(payload, fieldErrs)

	if fieldErrs.HasErrors() {
		return nil, fieldErrs, nil
	}

	return validated, fieldErrs, nil
}

func (v OrderValidator) validateType(
	payload CreateOrderPayload, validated *ValidatedOrder, fieldErrs FieldErrors,
) {
	if payload.Type == "" {
		fieldErrs.Add("type", "fulfillment type is required")
		return
	}

	fulfillment, err := order.FulfillmentTypeFromString(payload.Type)
	if err != nil {
		fieldErrs.Add("type", "fulfillment type must be delivery or pickup")
		return
	}
	validated.Fulfillment = fulfillment
}

func (v OrderValidator) validateAddress(
	ctx context.Context, payload CreateOrderPayload, validated *ValidatedOrder, fieldErrs FieldErrors,
) error {
	if payload.AddressID == "" {
		if validated.Fulfillment == order.TypeDelivery {
			fieldErrs.Add("address_id", "a delivery address is required for delivery orders")
		}
		return nil
	}

	id, err := kernel.UUIDFromString(payload.AddressID)
	if err != nil {
		fieldErrs.Add("address_id", "address reference is malformed")
		return nil
	}

	exists, err := v.addresses.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		fieldErrs.Add("address_id", "the referenced address does not exist")
		return nil
	}

	validated.AddressID = &id
	return nil
}

func (v OrderValidator) validatePayment(
	payload CreateOrderPayload, validated *ValidatedOrder, fieldErrs FieldErrors,
) {
	if payload.PaymentMethod == "" {
		fieldErrs.Add("payment_method", "payment method is required")
	} else {
		method, err := order.PaymentMethodFromString(payload.PaymentMethod)
		if err != nil {
			fieldErrs.Add("payment_method", "payment method must be card, mobile_money or cash")
		} else {
			validated.Payment = method
		}
	}

	// Provider and number stay optional even for mobile_money payments; the
	// payment flow collects them later when absent.
	if payload.MobileMoneyProvider != "" {
		provider, err := order.MobileMoneyProviderFromString(payload.MobileMoneyProvider)
		if err != nil {
			fieldErrs.Add("mobile_money_provider", "mobile money provider must be MTN or Moov")
		} else {
			validated.MobileMoneyProvider = &provider
		}
	}

	if payload.MobileMoneyNumber != "" {
		number, err := order.MobileMoneyNumberFromString(payload.MobileMoneyNumber)
		if err != nil {
			fieldErrs.Add("mobile_money_number", "mobile money number must be 8 to 10 digits with an optional +229 prefix")
		} else {
			validated.MobileMoneyNumber = &number
		}
	}
}

func (v OrderValidator) validatePromo(
	ctx context.Context, payload CreateOrderPayload, fieldErrs FieldErrors,
) error {
	if payload.PromoCode == "" {
		return nil
	}

	valid, err := v.promos.IsValid(ctx, payload.PromoCode)
	if err != nil {
		return err
	}
	if !valid {
		fieldErrs.Add("promo_code", "the promo code is unknown or no longer valid")
	}
	return nil
}

func (v OrderValidator) validateSchedule(
	payload CreateOrderPayload, validated *ValidatedOrder, fieldErrs FieldErrors,
) {
	if payload.ScheduledAt == "" {
		return
	}

	scheduledAt, err := time.Parse(time.RFC3339, payload.ScheduledAt)
	if err != nil {
		fieldErrs.Add("scheduled_at", "scheduled time must be a valid RFC 3339 timestamp")
		return
	}
	validated.ScheduledAt = &scheduledAt
}

func (v OrderValidator) validateInstructions(payload CreateOrderPayload, fieldErrs FieldErrors) {
	if len(payload.SpecialInstructions) > order.MaxSpecialInstructionsLength {
		fieldErrs.Add("special_instructions", "special instructions must not exceed 500 characters")
	}
}
