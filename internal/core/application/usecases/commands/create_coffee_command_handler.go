package commands

import (
	"context"
	"errors"
	"time"

	"waiter/internal/core/domain/model/coffee"
	"waiter/internal/core/domain/model/kernel"
	"waiter/internal/core/ports"
	"waiter/internal/pkg/errs"
)

// MenuCache is purged whenever the menu changes.
type MenuCache interface {
	Purge()
}

// CreateCoffeeCommandHandler adds coffees to the menu. Names are unique.
type CreateCoffeeCommandHandler struct {
	uowFactory ports.CoffeeUoWFactory
	cache      MenuCache
	now        func() time.Time
}

// NewCreateCoffeeCommandHandler creates the handler. cache may be nil.
func NewCreateCoffeeCommandHandler(uowFactory ports.CoffeeUoWFactory, cache MenuCache) CreateCoffeeCommandHandler {
	return CreateCoffeeCommandHandler{
		uowFactory: uowFactory,
		cache:      cache,
		now: func() time.Time {
			return time.Now().UTC()
		},
	}
}

// Handle stores the new coffee and returns it. A taken name fails with
// *errs.ObjectAlreadyExistsError.
func (h CreateCoffeeCommandHandler) Handle(ctx context.Context, cmd CreateCoffeeCommand) (*coffee.Coffee, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.CoffeeRepository()
	_, err := repo.GetByName(ctx, cmd.Name())
	switch {
	case err == nil:
		return nil, errs.NewObjectAlreadyExistsError("name", cmd.Name())
	case !errors.Is(err, errs.ErrObjectNotFound):
		return nil, err
	}

	c, err := coffee.NewCoffee(kernel.NewUUID(), cmd.Name(), cmd.Price(), h.now())
	if err != nil {
		return nil, err
	}

	if err = repo.Add(ctx, c); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	if h.cache != nil {
		h.cache.Purge()
	}

	return c, nil
}
