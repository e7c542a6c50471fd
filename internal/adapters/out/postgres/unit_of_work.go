// Package postgres provides the GORM implementation of the unit of work used by the
// waiter core. A unit of work owns at most one database transaction; repositories
// obtained from it run inside that transaction once Begin was called, and against the
// plain connection otherwise.
//
// Usage:
//
//	uow := factory.Create()
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() { _ = uow.Rollback(ctx) }()
//
//	if err := uow.OrderRepository().Add(ctx, o); err != nil {
//	    return err
//	}
//
//	return uow.Commit(ctx)
//
// Each UnitOfWork instance must be used by a single goroutine; concurrent requests
// create their own instances through the factory.
package postgres

import (
	"context"

	"waiter/internal/adapters/out/postgres/coffeerepo"
	"waiter/internal/adapters/out/postgres/orderrepo"
	"waiter/internal/core/domain/model/kernel"
	"waiter/internal/core/ports"

	"gorm.io/gorm"
)

// trackedAggregate represents an aggregate added or updated during the unit of work.
type trackedAggregate struct {
	ID        kernel.UUID
	Aggregate any
}

// GormUnitOfWorkFactory creates UnitOfWork instances sharing one connection pool and
// one money codec.
type GormUnitOfWorkFactory struct {
	db    *gorm.DB
	codec kernel.MoneyCodec
}

// NewGormUnitOfWorkFactory creates a factory for GORM-based unit of work instances.
//
// Example:
//
//	codec, _ := kernel.NewMoneyCodec(kernel.TWD)
//	factory := NewGormUnitOfWorkFactory(db, codec)
func NewGormUnitOfWorkFactory(db *gorm.DB, codec kernel.MoneyCodec) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db, codec: codec}
}

// Create produces a new UnitOfWork with its own transaction state and tracked aggregates.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		codec:             f.codec,
		trackedAggregates: make([]trackedAggregate, 0),
	}
}

// GormUnitOfWork coordinates one database transaction and records the aggregates
// written through its repositories.
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	codec             kernel.MoneyCodec
	trackedAggregates []trackedAggregate
}

// Begin starts the transaction. Calling Begin again while a transaction is open is a no-op.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		err := uow.tx.Error
		uow.tx = nil
		return err
	}

	return nil
}

// Commit finalizes the transaction. Returns gorm.ErrInvalidTransaction when none is open.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

// Rollback discards the transaction. Returns gorm.ErrInvalidTransaction when none is open,
// which makes a deferred Rollback after Commit harmless.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

// CoffeeRepository returns a coffee repository bound to the current transaction, if any.
func (uow *GormUnitOfWork) CoffeeRepository() ports.CoffeeRepository {
	return coffeerepo.NewGormCoffeeRepository(uow.conn(), uow.codec, uow)
}

// OrderRepository returns an order repository bound to the current transaction, if any.
func (uow *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	return orderrepo.NewGormOrderRepository(uow.conn(), uow.codec, uow)
}

// TrackAggregate registers an aggregate written within this unit of work.
// Repositories call it after every successful Add or Update.
func (uow *GormUnitOfWork) TrackAggregate(id kernel.UUID, aggregate any) {
	uow.trackedAggregates = append(uow.trackedAggregates, trackedAggregate{
		ID:        id,
		Aggregate: aggregate,
	})
}

// TrackedCount returns how many writes were recorded so far.
func (uow *GormUnitOfWork) TrackedCount() int {
	return len(uow.trackedAggregates)
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}
