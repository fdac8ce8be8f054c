package http

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"resto/internal/core/domain/model/cart"
	"resto/internal/core/domain/model/kernel"
	"resto/internal/core/domain/services"

	"github.com/go-playground/validator/v10"
)

// OrderItemRequest is one cart line in an order placement request.
// The unit price is the quote shown to the customer at add-to-cart time.
type OrderItemRequest struct {
	DishID         string   `json:"dish_id" validate:"required,uuid"`
	Quantity       int      `json:"quantity" validate:"required,min=1"`
	UnitPrice      string   `json:"unit_price" validate:"required"`
	OptionValueIDs []string `json:"option_value_ids" validate:"omitempty,dive,uuid"`
	Instructions   string   `json:"instructions" validate:"omitempty,max=500"`
}

// CreateOrderRequest is the body of POST /api/v1/orders.
// The fulfillment, payment, address and promo fields are validated by the
// domain rule set, which produces per-field messages; tags here only guard
// the cart structure the domain layer receives pre-parsed.
type CreateOrderRequest struct {
	Type                string             `json:"type"`
	AddressID           string             `json:"address_id"`
	PaymentMethod       string             `json:"payment_method"`
	MobileMoneyProvider string             `json:"mobile_money_provider"`
	MobileMoneyNumber   string             `json:"mobile_money_number"`
	PromoCode           string             `json:"promo_code"`
	ScheduledAt         string             `json:"scheduled_at"`
	SpecialInstructions string             `json:"special_instructions"`
	DeliveryFee         string             `json:"delivery_fee"`
	Items               []OrderItemRequest `json:"items" validate:"required,min=1,dive"`
}

// UpdateOrderStatusRequest is the body of PATCH /api/v1/orders/:id/status.
type UpdateOrderStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// AssignDriverRequest is the body of POST /api/v1/orders/:id/driver, sent by
// the assignment service when it has picked a driver.
type AssignDriverRequest struct {
	DriverID string `json:"driver_id" validate:"required,uuid"`
}

// SubmitReviewRequest is the body of POST /api/v1/orders/:id/reviews.
type SubmitReviewRequest struct {
	DishID   string   `json:"dish_id" validate:"omitempty,uuid"`
	Rating   int      `json:"rating" validate:"required,min=1,max=5"`
	Comment  string   `json:"comment" validate:"omitempty,max=1000"`
	ImageIDs []string `json:"image_ids" validate:"omitempty,max=5,dive,uuid"`
}

// Payload maps the request to the domain validation payload. Raw strings pass
// through untouched so the domain rule set owns every value judgement.
func (r CreateOrderRequest) Payload() services.CreateOrderPayload {
	return services.CreateOrderPayload{
		Type:                r.Type,
		AddressID:           r.AddressID,
		PaymentMethod:       r.PaymentMethod,
		MobileMoneyProvider: r.MobileMoneyProvider,
		MobileMoneyNumber:   r.MobileMoneyNumber,
		PromoCode:           r.PromoCode,
		ScheduledAt:         r.ScheduledAt,
		SpecialInstructions: r.SpecialInstructions,
	}
}

// CartLines converts the request items into domain cart lines and parses the
// quoted delivery fee. Parse failures come back as per-field errors keyed the
// same way the domain validator keys its own.
func (r CreateOrderRequest) CartLines() ([]cart.Line, kernel.Money, services.FieldErrors) {
	fieldErrs := services.FieldErrors{}

	lines := make([]cart.Line, 0, len(r.Items))
	for i, item := range r.Items {
		line, itemErrs := item.toLine(itemField(i, ""))
		if len(itemErrs) > 0 {
			for field, messages := range itemErrs {
				fieldErrs[field] = append(fieldErrs[field], messages...)
			}
			continue
		}
		lines = append(lines, line)
	}

	fee := kernel.ZeroMoney()
	if r.DeliveryFee != "" {
		parsed, err := kernel.NewMoneyFromString(r.DeliveryFee)
		if err != nil {
			fieldErrs.Add("delivery_fee", "must be a non-negative decimal amount")
		} else {
			fee = parsed
		}
	}

	if fieldErrs.HasErrors() {
		return nil, kernel.Money{}, fieldErrs
	}
	return lines, fee, nil
}

func (r OrderItemRequest) toLine(prefix string) (cart.Line, services.FieldErrors) {
	fieldErrs := services.FieldErrors{}

	dishID, err := kernel.UUIDFromString(r.DishID)
	if err != nil {
		fieldErrs.Add(prefix+".dish_id", "must be a valid UUID")
	}

	unitPrice, err := kernel.NewMoneyFromString(r.UnitPrice)
	if err != nil {
		fieldErrs.Add(prefix+".unit_price", "must be a non-negative decimal amount")
	}

	optionIDs := make([]kernel.UUID, 0, len(r.OptionValueIDs))
	for _, raw := range r.OptionValueIDs {
		optionID, optErr := kernel.UUIDFromString(raw)
		if optErr != nil {
			fieldErrs.Add(prefix+".option_value_ids", "must contain only valid UUIDs")
			break
		}
		optionIDs = append(optionIDs, optionID)
	}

	if fieldErrs.HasErrors() {
		return cart.Line{}, fieldErrs
	}

	line, err := cart.NewLine(dishID, r.Quantity, unitPrice, optionIDs, r.Instructions)
	if err != nil {
		fieldErrs.Add(prefix, "is not a valid order item")
		return cart.Line{}, fieldErrs
	}
	return line, nil
}

// newRequestValidator builds the tag validator used for structural request
// checks. Field names in error keys follow the json tag, so responses speak
// the wire vocabulary rather than Go identifiers.
func newRequestValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// tagFieldErrors translates validator failures into the per-field error map
// shared with the domain validator.
func tagFieldErrors(err error) services.FieldErrors {
	fieldErrs := services.FieldErrors{}

	var violations validator.ValidationErrors
	if !errors.As(err, &violations) {
		fieldErrs.Add("body", "is invalid")
		return fieldErrs
	}

	for _, violation := range violations {
		fieldErrs.Add(fieldKey(violation.Namespace()), tagMessage(violation))
	}
	return fieldErrs
}

// fieldKey strips the root struct name from a validator namespace and lowers
// the remainder into wire form: "CreateOrderRequest.Items[0].DishID" becomes
// "items[0].dish_id". Tag names are already json names, so only the root
// prefix needs removing.
func fieldKey(namespace string) string {
	if idx := strings.Index(namespace, "."); idx >= 0 {
		return namespace[idx+1:]
	}
	return namespace
}

func itemField(index int, suffix string) string {
	return fmt.Sprintf("items[%d]%s", index, suffix)
}

func tagMessage(violation validator.FieldError) string {
	switch violation.Tag() {
	case "required":
		return "is required"
	case "min":
		return "must be at least " + violation.Param()
	case "max":
		return "must be at most " + violation.Param()
	case "uuid":
		return "must be a valid UUID"
	default:
		return "is invalid"
	}
}
