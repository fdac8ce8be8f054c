package queries

import (
	"context"

	"resto/internal/core/domain/model/kernel"
	"resto/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetActiveOrdersQueryHandler retrieves in-flight orders from the database.
// Terminal orders (delivered, cancelled) are filtered out so the result is
// the active workload.
type GetActiveOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetActiveOrdersQueryHandler creates a handler for active order queries.
// Requires a GORM database connection for query execution.
func NewGetActiveOrdersQueryHandler(db *gorm.DB) GetActiveOrdersQueryHandler {
	return GetActiveOrdersQueryHandler{db: db}
}

// Handle executes the query to retrieve all active orders.
// Results are sorted by order ID for consistent output.
func (h GetActiveOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetActiveOrdersQuery,
) ([]GetActiveOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetActiveOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			fulfillment_type,
			status,
			total,
			driver_id
		FROM orders
		WHERE status NOT IN (?, ?)
		ORDER BY id
	`, order.StatusDelivered, order.StatusCancelled).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id              uuid.UUID
			fulfillmentType string
			status          string
			total           decimal.Decimal
			driverID        uuid.NullUUID
		)

		if err = rows.Scan(&id, &fulfillmentType, &status, &total, &driverID); err != nil {
			return nil, err
		}

		orderResp, respErr := buildActiveOrderResponse(id, fulfillmentType, status, total, driverID)
		if respErr != nil {
			return nil, respErr
		}
		orders = append(orders, orderResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}

func buildActiveOrderResponse(
	id uuid.UUID,
	fulfillmentType string,
	status string,
	total decimal.Decimal,
	driverID uuid.NullUUID,
) (GetActiveOrdersQueryResponse, error) {
	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return GetActiveOrdersQueryResponse{}, err
	}

	parsedType, err := order.FulfillmentTypeFromString(fulfillmentType)
	if err != nil {
		return GetActiveOrdersQueryResponse{}, err
	}

	parsedStatus, err := order.StatusFromString(status)
	if err != nil {
		return GetActiveOrdersQueryResponse{}, err
	}

	totalMoney, err := kernel.NewMoney(total)
	if err != nil {
		return GetActiveOrdersQueryResponse{}, err
	}

	resp := GetActiveOrdersQueryResponse{
		ID:     orderID,
		Type:   parsedType,
		Status: parsedStatus,
		Total:  totalMoney,
	}

	if driverID.Valid {
		driver, idErr := kernel.UUIDFromBytes(driverID.UUID[:])
		if idErr != nil {
			return GetActiveOrdersQueryResponse{}, idErr
		}
		resp.DriverID = &driver
	}

	return resp, nil
}
