package commands

import (
	"context"

	"restaurant/internal/core/domain/model/stock"
)

// RecordStockMovementCommandHandler appends movements to the stock
// ledger. The ledger is never mutated in place, so recording is a pure
// insert after the aggregate and the product reference check out.
type RecordStockMovementCommandHandler struct {
	uowFactory StockUoWFactory
}

// NewRecordStockMovementCommandHandler creates a handler for recording
// stock movements.
func NewRecordStockMovementCommandHandler(uowFactory StockUoWFactory) RecordStockMovementCommandHandler {
	return RecordStockMovementCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle validates and persists one stock movement, returning the
// recorded aggregate. The product reference is resolved inside the same
// transaction; an unknown product fails with ObjectNotFoundError.
func (h *RecordStockMovementCommandHandler) Handle(
	ctx context.Context,
	cmd RecordStockMovementCommand,
) (*stock.Movement, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	movement, err := stock.NewMovement(cmd.MovementID(), cmd.ProductID(), cmd.Date(), cmd.Quantity(), cmd.Kind())
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if _, err = uow.ProductRepository().Get(ctx, cmd.ProductID()); err != nil {
		return nil, err
	}

	if err = uow.StockMovementRepository().Add(ctx, movement); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return movement, nil
}
