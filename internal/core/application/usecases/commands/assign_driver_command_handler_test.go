package commands_test

import (
	"testing"

	"resto/internal/core/application/usecases/commands"
	"resto/internal/core/domain/model/kernel"
	"resto/internal/core/domain/model/order"
	"resto/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newAssignFixture(t *testing.T) (*MockUnitOfWork, *MockOrderRepository, commands.AssignDriverCommandHandler) {
	t.Helper()
	uow := new(MockUnitOfWork)
	repo := new(MockOrderRepository)
	uow.On("OrderRepository").Return(repo).Maybe()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	return uow, repo, commands.NewAssignDriverCommandHandler(factory)
}

func TestNewAssignDriverCommand(t *testing.T) {
	t.Run("valid command", func(t *testing.T) {
		orderID, driverID := kernel.NewUUID(), kernel.NewUUID()
		cmd, err := commands.NewAssignDriverCommand(orderID, driverID)
		require.NoError(t, err)
		assert.NoError(t, cmd.Validate())
		assert.True(t, cmd.OrderID().IsEqual(orderID))
		assert.True(t, cmd.DriverID().IsEqual(driverID))
	})

	t.Run("invalid ids", func(t *testing.T) {
		_, err := commands.NewAssignDriverCommand(kernel.UUID{}, kernel.NewUUID())
		require.Error(t, err)
		_, err = commands.NewAssignDriverCommand(kernel.NewUUID(), kernel.UUID{})
		require.Error(t, err)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var cmd commands.AssignDriverCommand
		require.ErrorIs(t, cmd.Validate(), commands.ErrAssignDriverCommandIsNotConstructed)
	})
}

func TestAssignDriverCommandHandler_Handle_FirstReportWins(t *testing.T) {
	ctx := t.Context()
	uow, repo, handler := newAssignFixture(t)
	orderID, driverID := kernel.NewUUID(), kernel.NewUUID()

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	repo.On("SetDriverIfUnset", mock.Anything, orderID, driverID).Return(true, nil).Once()

	cmd, err := commands.NewAssignDriverCommand(orderID, driverID)
	require.NoError(t, err)

	require.NoError(t, handler.Handle(ctx, cmd))
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestAssignDriverCommandHandler_Handle_LoserGetsAlreadyAssigned(t *testing.T) {
	ctx := t.Context()
	uow, repo, handler := newAssignFixture(t)
	orderID, driverID := kernel.NewUUID(), kernel.NewUUID()

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	repo.On("SetDriverIfUnset", mock.Anything, orderID, driverID).Return(false, nil).Once()

	cmd, err := commands.NewAssignDriverCommand(orderID, driverID)
	require.NoError(t, err)

	require.ErrorIs(t, handler.Handle(ctx, cmd), order.ErrDriverAlreadyAssigned)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestAssignDriverCommandHandler_Handle_OrderNotFound(t *testing.T) {
	ctx := t.Context()
	uow, repo, handler := newAssignFixture(t)
	orderID, driverID := kernel.NewUUID(), kernel.NewUUID()

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	repo.On("SetDriverIfUnset", mock.Anything, orderID, driverID).
		Return(false, errs.NewObjectNotFoundError("order_id", orderID.String())).Once()

	cmd, err := commands.NewAssignDriverCommand(orderID, driverID)
	require.NoError(t, err)

	require.ErrorIs(t, handler.Handle(ctx, cmd), commands.ErrOrderNotFound)
}
