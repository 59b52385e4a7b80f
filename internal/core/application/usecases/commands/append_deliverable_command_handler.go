package commands

import (
	"context"
	"time"
)

// AppendDeliverableCommandHandler attaches a deliverable reference to an order.
// The aggregate enforces that only the seller may attach.
type AppendDeliverableCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewAppendDeliverableCommandHandler creates a handler for deliverable appends.
func NewAppendDeliverableCommandHandler(uowFactory OrderUoWFactory) AppendDeliverableCommandHandler {
	return AppendDeliverableCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the deliverable append command.
func (h *AppendDeliverableCommandHandler) Handle(ctx context.Context, cmd AppendDeliverableCommand) error {
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

	deliverable, err := aggregate.AppendDeliverable(
		cmd.ActorID(), cmd.FileName(), cmd.FileURL(), time.Now().UTC(),
	)
	if err != nil {
		return err
	}

	if err = orderRepo.AppendDeliverable(ctx, aggregate.ID(), deliverable); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
