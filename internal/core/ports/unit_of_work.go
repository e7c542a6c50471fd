package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary.
// Client code must explicitly manage transaction lifecycle.
type UnitOfWork interface {
	TxManager

	// CoffeeRepository returns a CoffeeRepository bound to the current transaction.
	CoffeeRepository() CoffeeRepository

	// OrderRepository returns an OrderRepository bound to the current transaction.
	OrderRepository() OrderRepository
}

// Narrow unit of work views consumed by the application layer.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		// Begin starts a new database transaction.
		Begin(ctx context.Context) error

		// Commit commits the current transaction.
		// Returns error if no active transaction or commit fails.
		Commit(ctx context.Context) error

		// Rollback rolls back the current transaction.
		// Returns error if no active transaction or rollback fails.
		Rollback(ctx context.Context) error
	}

	OrderRepoFactory interface {
		OrderRepository() OrderRepository
	}

	CoffeeRepoFactory interface {
		CoffeeRepository() CoffeeRepository
	}

	// OrderUoW manages transactions for order-only operations.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// CoffeeUoW manages transactions for menu operations.
	CoffeeUoW interface {
		TxManager
		CoffeeRepoFactory
	}

	CoffeeUoWFactory interface {
		Create() CoffeeUoW
	}
)
