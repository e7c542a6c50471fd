package commands

import (
	"context"

	"waiter/internal/core/domain/model/kernel"
	"waiter/internal/core/domain/model/order"
)

// OrderStateChanger advances orders. Implemented by services.OrderService.
type OrderStateChanger interface {
	ChangeState(ctx context.Context, id kernel.UUID, newState order.State) (*order.Order, bool, error)
}

// ChangeOrderStateCommandHandler applies forward-only state changes.
type ChangeOrderStateCommandHandler struct {
	orders OrderStateChanger
}

func NewChangeOrderStateCommandHandler(orders OrderStateChanger) ChangeOrderStateCommandHandler {
	return ChangeOrderStateCommandHandler{orders: orders}
}

// Handle returns the order after the call and whether its state changed. A request for
// a state not ranked above the current one returns the unchanged order and false.
func (h ChangeOrderStateCommandHandler) Handle(
	ctx context.Context,
	cmd ChangeOrderStateCommand,
) (*order.Order, bool, error) {
	if err := cmd.Validate(); err != nil {
		return nil, false, err
	}

	return h.orders.ChangeState(ctx, cmd.OrderID(), cmd.State())
}
