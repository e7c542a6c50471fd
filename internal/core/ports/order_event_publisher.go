package ports

import (
	"context"

	"waiter/internal/core/domain/model/order"
)

// OrderEventPublisher announces committed order changes to other services.
type OrderEventPublisher interface {
	PublishOrderCreated(ctx context.Context, aggregate *order.Order) error
	PublishOrderStateChanged(ctx context.Context, aggregate *order.Order, previous order.State) error
}
