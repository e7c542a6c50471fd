package queries

import (
	"errors"

	"waiter/internal/core/domain/model/order"
	"waiter/internal/pkg/guard"
)

var ErrGetOrderStatsQueryIsNotConstructed = errors.New(
	"GetOrderStatsQuery must be created via NewGetOrderStatsQuery constructor",
)

// GetOrderStatsQuery counts persisted orders per state.
type GetOrderStatsQuery struct {
	guard guard.ConstructorGuard
}

func NewGetOrderStatsQuery() GetOrderStatsQuery {
	return GetOrderStatsQuery{guard: guard.NewConstructorGuard()}
}

func (q GetOrderStatsQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderStatsQueryIsNotConstructed)
}

type OrderStateCount struct {
	State order.State
	Count int64
}

// GetOrderStatsQueryResponse has one entry per state in rank order, including states
// with no orders.
type GetOrderStatsQueryResponse struct {
	States []OrderStateCount
}

// Total returns the number of persisted orders.
func (r GetOrderStatsQueryResponse) Total() int64 {
	var total int64
	for _, s := range r.States {
		total += s.Count
	}
	return total
}
