package commands

import (
	"context"
)

// CancelOrderCommandHandler withdraws an order administratively.
// The status machine rejects cancellation of completed or failed orders.
type CancelOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCancelOrderCommandHandler creates a handler for order cancellations.
func NewCancelOrderCommandHandler(uowFactory OrderUoWFactory) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the cancellation.
func (h CancelOrderCommandHandler) Handle(ctx context.Context, command CancelOrderCommand) error {
	if err := command.Validate(); err != nil {
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

	trackedOrder, err := orderRepo.Get(ctx, command.OrderID())
	if err != nil {
		return err
	}

	if err = trackedOrder.Cancel(); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, trackedOrder); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
