package commands

import (
	"context"
	"time"
)

// AppendMessageCommandHandler posts a message to an order's thread.
// The message timestamp is assigned server side so thread ordering does not
// depend on client clocks.
type AppendMessageCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewAppendMessageCommandHandler creates a handler for message appends.
func NewAppendMessageCommandHandler(uowFactory OrderUoWFactory) AppendMessageCommandHandler {
	return AppendMessageCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the message append command.
// The order aggregate decides whether the sender is a participant; appends to
// terminal orders are allowed, the thread stays readable and writable.
func (h *AppendMessageCommandHandler) Handle(ctx context.Context, cmd AppendMessageCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	message, err := aggregate.AppendMessage(cmd.SenderID(), cmd.Text(), time.Now().UTC())
	if err != nil {
		return err
	}

	if err = orderRepo.AppendMessage(ctx, aggregate.ID(), message); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
