package order

import (
	"errors"
	"time"

	"waiter/internal/core/domain/model/coffee"
	"waiter/internal/core/domain/model/kernel"
	"waiter/internal/pkg/errs"
)

// ErrOrderIsNotConstructed is returned when an Order skipped NewOrder and RestoreOrder.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

// Order is a customer's coffee order.
//
// Order follows these invariants:
//   - Must have a valid unique identifier
//   - Holds at least one coffee, in the order they were requested
//   - State is always a valid State and never moves to a lower or equal rank
//   - updatedAt changes only when the state changes
//
// Example:
//
//	o, err := order.NewOrder(kernel.NewUUID(), "Alice", []*coffee.Coffee{latte}, time.Now())
//	changed, err := o.ChangeState(order.Paid, time.Now())
type Order struct {
	id        kernel.UUID
	customer  string
	items     []*coffee.Coffee
	state     State
	createdAt time.Time
	updatedAt time.Time

	isConstructed bool
}

// NewOrder creates an order in the Init state. createdAt and updatedAt are set to now.
func NewOrder(id kernel.UUID, customer string, items []*coffee.Coffee, now time.Time) (*Order, error) {
	return RestoreOrder(id, customer, items, Init, now, now)
}

// RestoreOrder rebuilds a persisted order in any valid state.
func RestoreOrder(
	id kernel.UUID,
	customer string,
	items []*coffee.Coffee,
	state State,
	createdAt, updatedAt time.Time,
) (*Order, error) {
	o := &Order{
		customer:      customer,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setItems(items),
		o.setState(state),
	); err != nil {
		return nil, err
	}

	return o, nil
}

func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares orders by identity.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.UUID {
	return o.id
}

func (o *Order) Customer() string {
	return o.customer
}

// Items returns the ordered coffees. The returned slice is a copy.
func (o *Order) Items() []*coffee.Coffee {
	items := make([]*coffee.Coffee, len(o.items))
	copy(items, o.items)
	return items
}

func (o *Order) State() State {
	return o.state
}

func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// Total sums the prices of all items.
func (o *Order) Total() (kernel.Money, error) {
	if err := o.Validate(); err != nil {
		return kernel.Money{}, err
	}
	total, err := kernel.NewMoney(o.items[0].Price().Currency(), 0)
	if err != nil {
		return kernel.Money{}, err
	}
	for _, item := range o.items {
		if total, err = total.Add(item.Price()); err != nil {
			return kernel.Money{}, err
		}
	}
	return total, nil
}

// ChangeState moves the order to newState when newState ranks higher than the
// current state and reports whether it did. A lower or equal rank leaves the
// order untouched and returns false.
func (o *Order) ChangeState(newState State, now time.Time) (bool, error) {
	if err := newState.Validate(); err != nil {
		return false, err
	}
	if !newState.IsAfter(o.state) {
		return false, nil
	}

	o.state = newState
	o.updatedAt = now
	return true, nil
}

// RestoreState puts back a previously observed state and update time. It is meant for
// undoing an in-memory transition that could not be persisted.
func (o *Order) RestoreState(state State, updatedAt time.Time) error {
	if err := state.Validate(); err != nil {
		return err
	}
	o.state = state
	o.updatedAt = updatedAt
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setItems(items []*coffee.Coffee) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return errs.NewValueIsInvalidErrorWithCause("items", err)
		}
	}
	o.items = make([]*coffee.Coffee, len(items))
	copy(o.items, items)
	return nil
}

func (o *Order) setState(state State) error {
	if err := state.Validate(); err != nil {
		return err
	}
	o.state = state
	return nil
}
