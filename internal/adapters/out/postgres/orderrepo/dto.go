// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"resto/internal/core/domain/model/kernel"
	"resto/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Maps order domain entities to relational database tables with proper indexing
// for efficient querying by status and driver assignment.
type OrderDTO struct {
	ID                  uuid.UUID  `gorm:"type:uuid;primaryKey"`
	FulfillmentType     string     `gorm:"type:varchar(16);index"`
	Status              string     `gorm:"type:varchar(32);index"`
	PaymentMethod       string     `gorm:"type:varchar(16)"`
	MobileMoneyProvider *string    `gorm:"type:varchar(8)"`
	MobileMoneyNumber   *string    `gorm:"type:varchar(16)"`
	AddressID           *uuid.UUID `gorm:"type:uuid;index"`
	DriverID            *uuid.UUID `gorm:"type:uuid;index"`
	PromoCode           string     `gorm:"type:varchar(64)"`
	ScheduledAt         *time.Time
	Totals              TotalsDTO `gorm:"embedded"`
	SpecialInstructions string    `gorm:"type:varchar(500)"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// TotalsDTO represents the embedded money breakdown within the order table.
type TotalsDTO struct {
	Subtotal    decimal.Decimal `gorm:"type:numeric(12,2)"`
	DeliveryFee decimal.Decimal `gorm:"type:numeric(12,2)"`
	Discount    decimal.Decimal `gorm:"type:numeric(12,2)"`
	Total       decimal.Decimal `gorm:"type:numeric(12,2)"`
}

// fromDomain converts an order domain aggregate to its database representation.
// Maps all order attributes including the optional address, schedule, mobile
// money details and driver assignment.
func fromDomain(aggregate *order.Order) OrderDTO {
	dto := OrderDTO{
		ID:                  aggregate.ID().Bytes(),
		FulfillmentType:     aggregate.Fulfillment().String(),
		Status:              aggregate.Status().String(),
		PaymentMethod:       aggregate.Payment().String(),
		PromoCode:           aggregate.PromoCode(),
		ScheduledAt:         aggregate.ScheduledAt(),
		SpecialInstructions: aggregate.SpecialInstructions(),
		Totals: TotalsDTO{
			Subtotal:    aggregate.Totals().Subtotal().Amount(),
			DeliveryFee: aggregate.Totals().DeliveryFee().Amount(),
			Discount:    aggregate.Totals().Discount().Amount(),
			Total:       aggregate.Totals().Total().Amount(),
		},
	}

	if provider := aggregate.MobileMoneyProvider(); provider != nil {
		s := provider.String()
		dto.MobileMoneyProvider = &s
	}
	if number := aggregate.MobileMoneyNumber(); number != nil {
		s := number.String()
		dto.MobileMoneyNumber = &s
	}
	if id := aggregate.AddressID(); id != nil {
		raw := id.Bytes()
		dto.AddressID = &raw
	}
	if id := aggregate.Driver(); id != nil {
		raw := id.Bytes()
		dto.DriverID = &raw
	}

	return dto
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including status and driver assignment using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	fulfillment, err := order.FulfillmentTypeFromString(dto.FulfillmentType)
	if err != nil {
		return nil, err
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	payment, err := order.PaymentMethodFromString(dto.PaymentMethod)
	if err != nil {
		return nil, err
	}

	totals, err := totalsToDomain(dto.Totals)
	if err != nil {
		return nil, err
	}

	params := order.NewOrderParams{
		ID:                  id,
		Fulfillment:         fulfillment,
		Payment:             payment,
		PromoCode:           dto.PromoCode,
		ScheduledAt:         dto.ScheduledAt,
		Totals:              totals,
		SpecialInstructions: dto.SpecialInstructions,
	}

	if dto.MobileMoneyProvider != nil {
		provider, provErr := order.MobileMoneyProviderFromString(*dto.MobileMoneyProvider)
		if provErr != nil {
			return nil, provErr
		}
		params.MobileMoneyProvider = &provider
	}
	if dto.MobileMoneyNumber != nil {
		number, numErr := order.MobileMoneyNumberFromString(*dto.MobileMoneyNumber)
		if numErr != nil {
			return nil, numErr
		}
		params.MobileMoneyNumber = &number
	}
	if dto.AddressID != nil {
		addressID, addrErr := kernel.UUIDFromBytes((*dto.AddressID)[:])
		if addrErr != nil {
			return nil, addrErr
		}
		params.AddressID = &addressID
	}

	var driverID *kernel.UUID
	if dto.DriverID != nil {
		dID, driverErr := kernel.UUIDFromBytes((*dto.DriverID)[:])
		if driverErr != nil {
			return nil, driverErr
		}
		driverID = &dID
	}

	return order.RestoreOrder(params, status, driverID)
}

func totalsToDomain(dto TotalsDTO) (order.Totals, error) {
	subtotal, err := kernel.NewMoney(dto.Subtotal)
	if err != nil {
		return order.Totals{}, err
	}
	deliveryFee, err := kernel.NewMoney(dto.DeliveryFee)
	if err != nil {
		return order.Totals{}, err
	}
	discount, err := kernel.NewMoney(dto.Discount)
	if err != nil {
		return order.Totals{}, err
	}

	return order.NewTotals(subtotal, deliveryFee, discount)
}
