package ports

import (
	"context"

	"waiter/internal/core/domain/model/coffee"
	"waiter/internal/core/domain/model/kernel"
)

// CoffeeRepository defines the persistence contract for the coffee menu.
type CoffeeRepository interface {
	// Add persists a new coffee. A duplicate name is reported as *errs.ObjectAlreadyExistsError.
	Add(ctx context.Context, aggregate *coffee.Coffee) error

	// Get retrieves a coffee by id or returns *errs.ObjectNotFoundError.
	Get(ctx context.Context, id kernel.UUID) (*coffee.Coffee, error)

	// GetByName retrieves a coffee by its exact name or returns *errs.ObjectNotFoundError.
	GetByName(ctx context.Context, name string) (*coffee.Coffee, error)

	// GetByIDs resolves every id in order, repeating a coffee when its id repeats.
	// Any unknown id fails the whole call with *errs.ObjectNotFoundError.
	GetByIDs(ctx context.Context, ids []kernel.UUID) ([]*coffee.Coffee, error)
}
