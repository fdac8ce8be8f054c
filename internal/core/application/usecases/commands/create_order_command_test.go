package commands_test

import (
	"testing"

	"resto/internal/core/application/usecases/commands"
	"resto/internal/core/domain/model/cart"
	"resto/internal/core/domain/model/kernel"
	"resto/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLines(t *testing.T) []cart.Line {
	t.Helper()
	price, err := kernel.NewMoneyFromString("12.50")
	require.NoError(t, err)
	line, err := cart.NewLine(kernel.NewUUID(), 2, price, nil, "")
	require.NoError(t, err)
	return []cart.Line{line}
}

func TestNewCreateOrderCommand(t *testing.T) {
	payload := services.CreateOrderPayload{Type: "pickup", PaymentMethod: "cash"}

	t.Run("valid command", func(t *testing.T) {
		id := kernel.NewUUID()
		cmd, err := commands.NewCreateOrderCommand(id, payload, testLines(t), kernel.ZeroMoney())
		require.NoError(t, err)
		assert.NoError(t, cmd.Validate())
		assert.True(t, cmd.OrderID().IsEqual(id))
		assert.Len(t, cmd.Lines(), 1)
	})

	t.Run("invalid order id", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand(kernel.UUID{}, payload, testLines(t), kernel.ZeroMoney())
		require.Error(t, err)
	})

	t.Run("empty cart", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand(kernel.NewUUID(), payload, nil, kernel.ZeroMoney())
		require.ErrorIs(t, err, commands.ErrCartIsEmpty)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var cmd commands.CreateOrderCommand
		require.ErrorIs(t, cmd.Validate(), commands.ErrCreateOrderCommandIsNotConstructed)
	})
}
