package commands_test

import (
	"testing"

	"resto/internal/core/application/usecases/commands"
	"resto/internal/core/domain/model/kernel"
	"resto/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUpdateOrderStatusCommand(t *testing.T) {
	t.Run("valid command", func(t *testing.T) {
		id := kernel.NewUUID()
		cmd, err := commands.NewUpdateOrderStatusCommand(id, order.StatusConfirmed)
		require.NoError(t, err)
		assert.NoError(t, cmd.Validate())
		assert.True(t, cmd.OrderID().IsEqual(id))
		assert.Equal(t, order.StatusConfirmed, cmd.Next())
	})

	t.Run("invalid order id", func(t *testing.T) {
		_, err := commands.NewUpdateOrderStatusCommand(kernel.UUID{}, order.StatusConfirmed)
		require.Error(t, err)
	})

	t.Run("unknown status", func(t *testing.T) {
		_, err := commands.NewUpdateOrderStatusCommand(kernel.NewUUID(), order.Status("sailed"))
		require.Error(t, err)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var cmd commands.UpdateOrderStatusCommand
		require.ErrorIs(t, cmd.Validate(), commands.ErrUpdateOrderStatusCommandIsNotConstructed)
	})
}
