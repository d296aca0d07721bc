package commands

import (
	"context"
)

// RemoveStockMovementCommandHandler deletes movements from the ledger.
type RemoveStockMovementCommandHandler struct {
	uowFactory StockUoWFactory
}

// NewRemoveStockMovementCommandHandler creates a handler for removing
// stock movements.
func NewRemoveStockMovementCommandHandler(uowFactory StockUoWFactory) RemoveStockMovementCommandHandler {
	return RemoveStockMovementCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle deletes the movement. An unknown id fails with
// ObjectNotFoundError.
func (h *RemoveStockMovementCommandHandler) Handle(ctx context.Context, cmd RemoveStockMovementCommand) error {
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

	if err := uow.StockMovementRepository().Remove(ctx, cmd.MovementID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
