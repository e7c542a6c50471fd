package kafka

import (
	"time"

	"waiter/internal/core/domain/model/order"
)

const (
	EventOrderCreated      = "order.created"
	EventOrderStateChanged = "order.state_changed"
)

// OrderEvent is the JSON value of every message on the order topic.
type OrderEvent struct {
	Type          string     `json:"type"`
	OrderID       string     `json:"orderId"`
	Customer      string     `json:"customer"`
	State         string     `json:"state"`
	PreviousState string     `json:"previousState,omitempty"`
	Items         []string   `json:"items"`
	Total         EventMoney `json:"total"`
	OccurredAt    time.Time  `json:"occurredAt"`
}

type EventMoney struct {
	Currency    string `json:"currency"`
	AmountMinor int64  `json:"amountMinor"`
}

func newOrderEvent(eventType string, o *order.Order) (OrderEvent, error) {
	total, err := o.Total()
	if err != nil {
		return OrderEvent{}, err
	}

	items := make([]string, 0, len(o.Items()))
	for _, item := range o.Items() {
		items = append(items, item.ID().String())
	}

	return OrderEvent{
		Type:     eventType,
		OrderID:  o.ID().String(),
		Customer: o.Customer(),
		State:    o.State().Code(),
		Items:    items,
		Total: EventMoney{
			Currency:    total.Currency().Code(),
			AmountMinor: total.AmountMinor(),
		},
		OccurredAt: o.UpdatedAt(),
	}, nil
}
