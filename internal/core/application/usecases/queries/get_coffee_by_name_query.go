package queries

import (
	"errors"
	"strings"

	"waiter/internal/pkg/errs"
	"waiter/internal/pkg/guard"
)

var ErrGetCoffeeByNameQueryIsNotConstructed = errors.New(
	"GetCoffeeByNameQuery must be created via NewGetCoffeeByNameQuery constructor",
)

// GetCoffeeByNameQuery looks a coffee up by its exact, case-sensitive name.
type GetCoffeeByNameQuery struct {
	name string

	guard guard.ConstructorGuard
}

func NewGetCoffeeByNameQuery(name string) (GetCoffeeByNameQuery, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return GetCoffeeByNameQuery{}, errs.NewValueIsRequiredError("name")
	}

	return GetCoffeeByNameQuery{
		name:  name,
		guard: guard.NewConstructorGuard(),
	}, nil
}

func (q GetCoffeeByNameQuery) Validate() error {
	return q.guard.Validate(ErrGetCoffeeByNameQueryIsNotConstructed)
}

func (q GetCoffeeByNameQuery) Name() string {
	return q.name
}
