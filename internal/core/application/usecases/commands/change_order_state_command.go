package commands

import (
	"errors"

	"waiter/internal/core/domain/model/kernel"
	"waiter/internal/core/domain/model/order"
	"waiter/internal/pkg/guard"
)

var ErrChangeOrderStateCommandIsNotConstructed = errors.New(
	"ChangeOrderStateCommand must be created via NewChangeOrderStateCommand constructor",
)

// ChangeOrderStateCommand requests moving an order to a new state.
type ChangeOrderStateCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	state   order.State

	guard guard.ConstructorGuard
}

func NewChangeOrderStateCommand(orderID kernel.UUID, state order.State) (ChangeOrderStateCommand, error) {
	cmd := ChangeOrderStateCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setState(state),
	); err != nil {
		return ChangeOrderStateCommand{}, err
	}

	return cmd, nil
}

func (c ChangeOrderStateCommand) Validate() error {
	return c.guard.Validate(ErrChangeOrderStateCommandIsNotConstructed)
}

func (c ChangeOrderStateCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c ChangeOrderStateCommand) State() order.State {
	return c.state
}

func (c *ChangeOrderStateCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *ChangeOrderStateCommand) setState(state order.State) error {
	if err := state.Validate(); err != nil {
		return err
	}

	c.state = state
	return nil
}
