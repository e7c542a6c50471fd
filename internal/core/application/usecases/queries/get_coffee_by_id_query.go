package queries

import (
	"errors"

	"waiter/internal/core/domain/model/kernel"
	"waiter/internal/pkg/guard"
)

var ErrGetCoffeeByIDQueryIsNotConstructed = errors.New(
	"GetCoffeeByIDQuery must be created via NewGetCoffeeByIDQuery constructor",
)

type GetCoffeeByIDQuery struct {
	coffeeID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetCoffeeByIDQuery(coffeeID kernel.UUID) (GetCoffeeByIDQuery, error) {
	if err := coffeeID.Validate(); err != nil {
		return GetCoffeeByIDQuery{}, err
	}

	return GetCoffeeByIDQuery{
		coffeeID: coffeeID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (q GetCoffeeByIDQuery) Validate() error {
	return q.guard.Validate(ErrGetCoffeeByIDQueryIsNotConstructed)
}

func (q GetCoffeeByIDQuery) CoffeeID() kernel.UUID {
	return q.coffeeID
}
