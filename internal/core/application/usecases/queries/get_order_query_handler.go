package queries

import (
	"context"
	"database/sql"
	"errors"

	"resto/internal/core/domain/model/kernel"
	"resto/internal/core/domain/model/order"
	"resto/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetOrderQueryHandler retrieves a single order's detail from the database.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single-order queries.
// Requires a GORM database connection for query execution.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the query for one order.
// Returns errs.ObjectNotFoundError when no order has the requested ID.
func (h GetOrderQueryHandler) Handle(
	ctx context.Context,
	query GetOrderQuery,
) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			fulfillment_type,
			status,
			payment_method,
			address_id,
			driver_id,
			promo_code,
			scheduled_at,
			subtotal,
			delivery_fee,
			discount,
			total,
			special_instructions
		FROM orders
		WHERE id = ?
	`, query.OrderID().Bytes()).Row()

	var (
		id              uuid.UUID
		fulfillmentType string
		status          string
		paymentMethod   string
		addressID       uuid.NullUUID
		driverID        uuid.NullUUID
		promoCode       string
		scheduledAt     sql.NullTime
		subtotal        decimal.Decimal
		deliveryFee     decimal.Decimal
		discount        decimal.Decimal
		total           decimal.Decimal
		instructions    string
	)

	err := row.Scan(
		&id, &fulfillmentType, &status, &paymentMethod,
		&addressID, &driverID, &promoCode, &scheduledAt,
		&subtotal, &deliveryFee, &discount, &total, &instructions,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return GetOrderQueryResponse{}, errs.NewObjectNotFoundError("order_id", query.OrderID().String())
	}
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	return buildOrderResponse(orderRow{
		id:              id,
		fulfillmentType: fulfillmentType,
		status:          status,
		paymentMethod:   paymentMethod,
		addressID:       addressID,
		driverID:        driverID,
		promoCode:       promoCode,
		scheduledAt:     scheduledAt,
		subtotal:        subtotal,
		deliveryFee:     deliveryFee,
		discount:        discount,
		total:           total,
		instructions:    instructions,
	})
}

type orderRow struct {
	id              uuid.UUID
	fulfillmentType string
	status          string
	paymentMethod   string
	addressID       uuid.NullUUID
	driverID        uuid.NullUUID
	promoCode       string
	scheduledAt     sql.NullTime
	subtotal        decimal.Decimal
	deliveryFee     decimal.Decimal
	discount        decimal.Decimal
	total           decimal.Decimal
	instructions    string
}

func buildOrderResponse(r orderRow) (GetOrderQueryResponse, error) {
	orderID, err := kernel.UUIDFromBytes(r.id[:])
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	parsedType, err := order.FulfillmentTypeFromString(r.fulfillmentType)
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	parsedStatus, err := order.StatusFromString(r.status)
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	parsedPayment, err := order.PaymentMethodFromString(r.paymentMethod)
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	resp := GetOrderQueryResponse{
		ID:                  orderID,
		Type:                parsedType,
		Status:              parsedStatus,
		PaymentMethod:       parsedPayment,
		PromoCode:           r.promoCode,
		SpecialInstructions: r.instructions,
	}

	if resp.Subtotal, err = kernel.NewMoney(r.subtotal); err != nil {
		return GetOrderQueryResponse{}, err
	}
	if resp.DeliveryFee, err = kernel.NewMoney(r.deliveryFee); err != nil {
		return GetOrderQueryResponse{}, err
	}
	if resp.Discount, err = kernel.NewMoney(r.discount); err != nil {
		return GetOrderQueryResponse{}, err
	}
	if resp.Total, err = kernel.NewMoney(r.total); err != nil {
		return GetOrderQueryResponse{}, err
	}

	if r.addressID.Valid {
		parsed, idErr := kernel.UUIDFromBytes(r.addressID.UUID[:])
		if idErr != nil {
			return GetOrderQueryResponse{}, idErr
		}
		resp.AddressID = &parsed
	}

	if r.driverID.Valid {
		parsed, idErr := kernel.UUIDFromBytes(r.driverID.UUID[:])
		if idErr != nil {
			return GetOrderQueryResponse{}, idErr
		}
		resp.DriverID = &parsed
	}

	if r.scheduledAt.Valid {
		at := r.scheduledAt.Time.UTC()
		resp.ScheduledAt = &at
	}

	return resp, nil
}
