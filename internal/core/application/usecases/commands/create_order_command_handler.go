package commands

import (
	"context"

	"waiter/internal/core/domain/model/coffee"
	"waiter/internal/core/domain/model/order"
	"waiter/internal/core/ports"
)

// OrderCreator persists new orders. Implemented by services.OrderService.
type OrderCreator interface {
	CreateOrder(ctx context.Context, customer string, items ...*coffee.Coffee) (*order.Order, error)
}

// CreateOrderCommandHandler resolves the requested coffees from the menu and creates
// the order from them.
type CreateOrderCommandHandler struct {
	coffeeUoWFactory ports.CoffeeUoWFactory
	orders           OrderCreator
}

func NewCreateOrderCommandHandler(coffeeUoWFactory ports.CoffeeUoWFactory, orders OrderCreator) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		coffeeUoWFactory: coffeeUoWFactory,
		orders:           orders,
	}
}

// Handle fails with *errs.ObjectNotFoundError when any coffee id is unknown.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.coffeeUoWFactory.Create()
	items, err := uow.CoffeeRepository().GetByIDs(ctx, cmd.CoffeeIDs())
	if err != nil {
		return nil, err
	}

	return h.orders.CreateOrder(ctx, cmd.Customer(), items...)
}
