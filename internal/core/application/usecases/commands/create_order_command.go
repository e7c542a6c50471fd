package commands

import (
	"errors"
	"slices"

	"waiter/internal/core/domain/model/kernel"
	"waiter/internal/pkg/errs"
	"waiter/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand places an order for customer with the coffees identified by
// coffeeIDs, in that order. An id may repeat to order the same coffee several times.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand("Alice", []kernel.UUID{latteID, latteID})
//	o, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	customer  string
	coffeeIDs []kernel.UUID

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand validates that at least one valid coffee id is given.
func NewCreateOrderCommand(customer string, coffeeIDs []kernel.UUID) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		customer: customer,
		guard:    guard.NewConstructorGuard(),
	}

	if err := cmd.setCoffeeIDs(coffeeIDs); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) Customer() string {
	return c.customer
}

// CoffeeIDs returns a copy of the requested coffee ids.
func (c CreateOrderCommand) CoffeeIDs() []kernel.UUID {
	return slices.Clone(c.coffeeIDs)
}

func (c *CreateOrderCommand) setCoffeeIDs(ids []kernel.UUID) error {
	if len(ids) == 0 {
		return errs.NewValueIsRequiredError("items")
	}

	for _, id := range ids {
		if err := id.Validate(); err != nil {
			return errs.NewValueIsInvalidErrorWithCause("items", err)
		}
	}

	c.coffeeIDs = slices.Clone(ids)
	return nil
}
