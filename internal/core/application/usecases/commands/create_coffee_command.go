package commands

import (
	"errors"
	"strings"

	"waiter/internal/core/domain/model/kernel"
	"waiter/internal/pkg/errs"
	"waiter/internal/pkg/guard"
)

var ErrCreateCoffeeCommandIsNotConstructed = errors.New(
	"CreateCoffeeCommand must be created via NewCreateCoffeeCommand constructor",
)

// CreateCoffeeCommand adds a coffee to the menu.
//
// Example:
//
//	price, _ := kernel.ParseMoney("1.20", kernel.TWD)
//	cmd, err := NewCreateCoffeeCommand("Latte", price)
type CreateCoffeeCommand struct { //nolint:recvcheck //using for validation
	name  string
	price kernel.Money

	guard guard.ConstructorGuard
}

// NewCreateCoffeeCommand validates that name is not blank and price is a non-negative Money.
func NewCreateCoffeeCommand(name string, price kernel.Money) (CreateCoffeeCommand, error) {
	cmd := CreateCoffeeCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setName(name),
		cmd.setPrice(price),
	); err != nil {
		return CreateCoffeeCommand{}, err
	}

	return cmd, nil
}

func (c CreateCoffeeCommand) Validate() error {
	return c.guard.Validate(ErrCreateCoffeeCommandIsNotConstructed)
}

func (c CreateCoffeeCommand) Name() string {
	return c.name
}

func (c CreateCoffeeCommand) Price() kernel.Money {
	return c.price
}

func (c *CreateCoffeeCommand) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}

	c.name = name
	return nil
}

func (c *CreateCoffeeCommand) setPrice(price kernel.Money) error {
	if err := price.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("price", err)
	}

	if price.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("price", errors.New("price must not be negative"))
	}

	c.price = price
	return nil
}
