package http

import (
	"time"

	"resto/internal/core/application/usecases/queries"
)

// ErrorResponse is the envelope for every non-2xx answer. Errors is only set
// on validation rejections and maps field names to user-facing messages.
type ErrorResponse struct {
	Success bool                `json:"success"`
	Message string              `json:"message"`
	Errors  map[string][]string `json:"errors,omitempty"`
}

// CreatedResponse acknowledges a successful resource creation.
type CreatedResponse struct {
	Success bool   `json:"success"`
	ID      string `json:"id"`
}

// StatusResponse acknowledges a successful state change.
type StatusResponse struct {
	Success bool `json:"success"`
}

// ActiveOrderResponse is one row of GET /api/v1/orders/active.
type ActiveOrderResponse struct {
	ID       string  `json:"id"`
	Type     string  `json:"type"`
	Status   string  `json:"status"`
	Total    string  `json:"total"`
	DriverID *string `json:"driver_id,omitempty"`
}

// OrderResponse is the body of GET /api/v1/orders/:id.
type OrderResponse struct {
	ID                  string     `json:"id"`
	Type                string     `json:"type"`
	Status              string     `json:"status"`
	PaymentMethod       string     `json:"payment_method"`
	AddressID           *string    `json:"address_id,omitempty"`
	DriverID            *string    `json:"driver_id,omitempty"`
	PromoCode           string     `json:"promo_code,omitempty"`
	ScheduledAt         *time.Time `json:"scheduled_at,omitempty"`
	Subtotal            string     `json:"subtotal"`
	DeliveryFee         string     `json:"delivery_fee"`
	Discount            string     `json:"discount"`
	Total               string     `json:"total"`
	SpecialInstructions string     `json:"special_instructions,omitempty"`
}

func activeOrderResponse(row queries.GetActiveOrdersQueryResponse) ActiveOrderResponse {
	resp := ActiveOrderResponse{
		ID:     row.ID.String(),
		Type:   string(row.Type),
		Status: string(row.Status),
		Total:  row.Total.String(),
	}
	if row.DriverID != nil {
		driverID := row.DriverID.String()
		resp.DriverID = &driverID
	}
	return resp
}

func orderResponse(row queries.GetOrderQueryResponse) OrderResponse {
	resp := OrderResponse{
		ID:                  row.ID.String(),
		Type:                string(row.Type),
		Status:              string(row.Status),
		PaymentMethod:       string(row.PaymentMethod),
		PromoCode:           row.PromoCode,
		ScheduledAt:         row.ScheduledAt,
		Subtotal:            row.Subtotal.String(),
		DeliveryFee:         row.DeliveryFee.String(),
		Discount:            row.Discount.String(),
		Total:               row.Total.String(),
		SpecialInstructions: row.SpecialInstructions,
	}
	if row.AddressID != nil {
		addressID := row.AddressID.String()
		resp.AddressID = &addressID
	}
	if row.DriverID != nil {
		driverID := row.DriverID.String()
		resp.DriverID = &driverID
	}
	return resp
}
