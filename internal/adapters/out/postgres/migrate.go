package postgres

import (
	"context"

	"waiter/internal/adapters/out/postgres/coffeerepo"
	"waiter/internal/adapters/out/postgres/orderrepo"

	"gorm.io/gorm"
)

// Migrate creates or updates the coffees, orders and order_items tables.
func Migrate(ctx context.Context, db *gorm.DB) error {
	return db.WithContext(ctx).AutoMigrate(
		&coffeerepo.CoffeeDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.OrderItemDTO{},
	)
}
