package queries

import (
	"errors"
	"time"

	"waiter/internal/core/domain/model/kernel"
	"waiter/internal/core/domain/model/order"
	"waiter/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery reads one order with its items and total.
//
// Example:
//
//	query, err := NewGetOrderQuery(orderID)
//	details, err := handler.Handle(ctx, query)
//	fmt.Println(details.State, details.Total) // PAID TWD 2.40
type GetOrderQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetOrderQuery(orderID kernel.UUID) (GetOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderQuery{}, err
	}

	return GetOrderQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

// GetOrderQueryResponse lists items in the order they were requested. Total is the exact
// sum of the item prices.
type GetOrderQueryResponse struct {
	ID        kernel.UUID
	Customer  string
	State     order.State
	Items     []CoffeeResponse
	Total     kernel.Money
	CreatedAt time.Time
	UpdatedAt time.Time
}
