package http

import (
	"time"

	"waiter/internal/core/application/usecases/queries"
	"waiter/internal/core/domain/model/coffee"
	"waiter/internal/core/domain/model/kernel"
	"waiter/internal/core/domain/model/order"
)

// Money renders an amount both as an exact decimal string and in minor units.
type Money struct {
	Currency    string `json:"currency"`
	Amount      string `json:"amount"`
	AmountMinor int64  `json:"amountMinor"`
}

type Coffee struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Price     Money     `json:"price"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type Order struct {
	ID        string    `json:"id"`
	Customer  string    `json:"customer"`
	State     string    `json:"state"`
	Items     []Coffee  `json:"items"`
	Total     Money     `json:"total"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type NewCoffee struct {
	Name  string `json:"name"`
	Price string `json:"price"`
}

type NewOrder struct {
	Customer string   `json:"customer"`
	Items    []string `json:"items"`
}

type OrderStateUpdate struct {
	State string `json:"state"`
}

type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func toMoney(m kernel.Money) Money {
	return Money{
		Currency:    m.Currency().Code(),
		Amount:      m.Decimal().StringFixed(m.Currency().Digits()),
		AmountMinor: m.AmountMinor(),
	}
}

func toCoffee(c queries.CoffeeResponse) Coffee {
	return Coffee{
		ID:        c.ID.String(),
		Name:      c.Name,
		Price:     toMoney(c.Price),
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func fromDomainCoffee(c *coffee.Coffee) Coffee {
	return Coffee{
		ID:        c.ID().String(),
		Name:      c.Name(),
		Price:     toMoney(c.Price()),
		CreatedAt: c.CreatedAt(),
		UpdatedAt: c.UpdatedAt(),
	}
}

func toOrder(o queries.GetOrderQueryResponse) Order {
	items := make([]Coffee, 0, len(o.Items))
	for _, item := range o.Items {
		items = append(items, toCoffee(item))
	}

	return Order{
		ID:        o.ID.String(),
		Customer:  o.Customer,
		State:     o.State.Code(),
		Items:     items,
		Total:     toMoney(o.Total),
		CreatedAt: o.CreatedAt,
		UpdatedAt: o.UpdatedAt,
	}
}

func fromDomainOrder(o *order.Order) (Order, error) {
	total, err := o.Total()
	if err != nil {
		return Order{}, err
	}

	items := make([]Coffee, 0, len(o.Items()))
	for _, item := range o.Items() {
		items = append(items, fromDomainCoffee(item))
	}

	return Order{
		ID:        o.ID().String(),
		Customer:  o.Customer(),
		State:     o.State().Code(),
		Items:     items,
		Total:     toMoney(total),
		CreatedAt: o.CreatedAt(),
		UpdatedAt: o.UpdatedAt(),
	}, nil
}
