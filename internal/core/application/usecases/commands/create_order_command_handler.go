package commands

import (
	"context"
	"errors"
	"time"

	"resto/internal/core/domain/model/cart"
	"resto/internal/core/domain/model/kernel"
	"resto/internal/core/domain/model/order"
	"resto/internal/core/domain/services"
	"resto/internal/core/ports"
	"resto/internal/pkg/errs"
)

// promoValidity adapts the promo repository to the validator's PromoLookup
// port. A code is valid when it exists and its window and usage limit allow
// redemption right now.
type promoValidity struct {
	repo ports.PromoRepository
	now  func() time.Time
}

func (p promoValidity) IsValid(ctx context.Context, code string) (bool, error) {
	found, err := p.repo.GetByCode(ctx, code)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	return found.IsActive(p.now()), nil
}

// CreateOrderCommandHandler handles the business logic for placing orders.
// Runs the full validation rule set, prices the order, redeems the promo code
// and persists the new order in pending status, all inside one transaction.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	cmd, _ := NewCreateOrderCommand(kernel.NewUUID(), payload, lines, fee)
//
//	fieldErrs, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("order creation failed: %w", err)
//	}
//	if fieldErrs.HasErrors() {
//	    // reject with the per-field messages; nothing was persisted
//	}
type CreateOrderCommandHandler struct {
	uowFactory UoWFactory
	now        func() time.Time
}

// NewCreateOrderCommandHandler creates a handler for order placement.
// Requires a UoWFactory for transactional persistence across the order,
// address and promo repositories.
func NewCreateOrderCommandHandler(uowFactory UoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		now:        time.Now,
	}
}

// Handle processes the order creation command.
// A non-empty FieldErrors means the payload was rejected and nothing was
// persisted; a non-nil error means infrastructure failed. The two never mix:
// client mistakes always come back as field errors.
func (h *CreateOrderCommandHandler) Handle(
	ctx context.Context, cmd CreateOrderCommand,
) (services.FieldErrors, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	validator := services.NewOrderValidator(
		uow.AddressRepository(),
		promoValidity{repo: uow.PromoRepository(), now: h.now},
	)

	validated, fieldErrs, err := validator.Validate(ctx, cmd.Payload())
	if err != nil {
		return nil, err
	}
	if fieldErrs.HasErrors() {
		return fieldErrs, nil
	}

	totals, err := h.price(ctx, uow, cmd, validated)
	if err != nil {
		return nil, err
	}

	newOrder, err := order.NewOrder(order.NewOrderParams{
		ID:                  cmd.OrderID(),
		Fulfillment:         validated.Fulfillment,
		Payment:             validated.Payment,
		AddressID:           validated.AddressID,
		MobileMoneyProvider: validated.MobileMoneyProvider,
		MobileMoneyNumber:   validated.MobileMoneyNumber,
		PromoCode:           validated.PromoCode,
		ScheduledAt:         validated.ScheduledAt,
		Totals:              totals,
		SpecialInstructions: validated.SpecialInstructions,
	})
	if err != nil {
		return nil, err
	}

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return nil, nil
}

// price computes the order totals from the cart lines, the quoted delivery fee
// and the redeemed promo discount. Promo redemption counts against the usage
// limit inside the same transaction as the order insert.
func (h *CreateOrderCommandHandler) price(
	ctx context.Context, uow UoW, cmd CreateOrderCommand, validated *services.ValidatedOrder,
) (order.Totals, error) {
	subtotal, err := cart.Subtotal(cmd.Lines())
	if err != nil {
		return order.Totals{}, err
	}

	deliveryFee := kernel.ZeroMoney()
	if validated.Fulfillment == order.TypeDelivery {
		deliveryFee = cmd.DeliveryFee()
	}

	discount := kernel.ZeroMoney()
	if validated.PromoCode != "" {
		promoRepo := uow.PromoRepository()
		found, err := promoRepo.GetByCode(ctx, validated.PromoCode)
		if err != nil {
			return order.Totals{}, err
		}
		if err = found.Redeem(h.now()); err != nil {
			return order.Totals{}, err
		}
		if err = promoRepo.Update(ctx, found); err != nil {
			return order.Totals{}, err
		}
		discount = found.Discount()
	}

	return order.NewTotals(subtotal, deliveryFee, discount)
}
