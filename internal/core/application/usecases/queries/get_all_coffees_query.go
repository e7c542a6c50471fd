package queries

import (
	"errors"

	"waiter/internal/pkg/guard"
)

var ErrGetAllCoffeesQueryIsNotConstructed = errors.New(
	"GetAllCoffeesQuery must be created via NewGetAllCoffeesQuery constructor",
)

// GetAllCoffeesQuery lists the whole menu ordered by name.
//
// Example:
//
//	coffees, err := handler.Handle(ctx, NewGetAllCoffeesQuery())
type GetAllCoffeesQuery struct {
	guard guard.ConstructorGuard
}

func NewGetAllCoffeesQuery() GetAllCoffeesQuery {
	return GetAllCoffeesQuery{guard: guard.NewConstructorGuard()}
}

func (q GetAllCoffeesQuery) Validate() error {
	return q.guard.Validate(ErrGetAllCoffeesQueryIsNotConstructed)
}
