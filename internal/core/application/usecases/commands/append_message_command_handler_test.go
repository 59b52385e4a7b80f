package commands_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"
)

func TestAppendMessageCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	buyerID := kernel.NewUUID()
	aggregate := testOrderInStatus(t, buyerID, kernel.NewUUID(), order.Accepted)
	cmd, _ := commands.NewAppendMessageCommand(aggregate.ID(), buyerID, "any update?")

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, aggregate.ID()).Return(aggregate, nil).Once(),
		orderRepo.On("AppendMessage", ctx, aggregate.ID(), mock.AnythingOfType("order.Message")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAppendMessageCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.Len(t, aggregate.Messages(), 1)
	assert.Equal(t, "any update?", aggregate.Messages()[0].Text())
	orderRepo.AssertExpectations(t)
}

func TestAppendMessageCommandHandler_Handle_ThirdPartyForbidden(t *testing.T) {
	ctx := t.Context()
	aggregate := testOrderInStatus(t, kernel.NewUUID(), kernel.NewUUID(), order.Accepted)
	outsider := kernel.NewUUID()
	cmd, _ := commands.NewAppendMessageCommand(aggregate.ID(), outsider, "let me in")

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	orderRepo.On("Get", ctx, aggregate.ID()).Return(aggregate, nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAppendMessageCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrForbidden)
	assert.Empty(t, aggregate.Messages())
	orderRepo.AssertNotCalled(t, "AppendMessage", mock.Anything, mock.Anything, mock.Anything)
}
