// Package ports defines the contracts between the waiter core and its adapters:
// repositories, units of work and the order event publisher.
package ports

import (
	"context"

	"waiter/internal/core/domain/model/kernel"
	"waiter/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Implementations are bound to a unit of work and run inside its transaction.
type OrderRepository interface {
	// Add persists a new order together with its items.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists the state and update time of an existing order.
	// Items are never rewritten.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order with its items in their original order.
	// Returns *errs.ObjectNotFoundError when no order has the given id.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetForUpdate is Get with a row lock held until the surrounding transaction ends,
	// so concurrent state changes of the same order are serialized.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error)
}
