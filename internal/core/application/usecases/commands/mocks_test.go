package commands_test

import (
	"context"

	"waiter/internal/core/domain/model/coffee"
	"waiter/internal/core/domain/model/kernel"
	"waiter/internal/core/domain/model/order"
	"waiter/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockCoffeeRepository struct{ mock.Mock }

func (m *MockCoffeeRepository) Add(ctx context.Context, c *coffee.Coffee) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCoffeeRepository) Get(ctx context.Context, id kernel.UUID) (*coffee.Coffee, error) {
	args := m.Called(ctx, id)
	c, _ := args.Get(0).(*coffee.Coffee)
	return c, args.Error(1)
}

func (m *MockCoffeeRepository) GetByName(ctx context.Context, name string) (*coffee.Coffee, error) {
	args := m.Called(ctx, name)
	c, _ := args.Get(0).(*coffee.Coffee)
	return c, args.Error(1)
}

func (m *MockCoffeeRepository) GetByIDs(ctx context.Context, ids []kernel.UUID) ([]*coffee.Coffee, error) {
	args := m.Called(ctx, ids)
	c, _ := args.Get(0).([]*coffee.Coffee)
	return c, args.Error(1)
}

type MockCoffeeUoW struct{ mock.Mock }

func (m *MockCoffeeUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockCoffeeUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockCoffeeUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockCoffeeUoW) CoffeeRepository() ports.CoffeeRepository {
	args := m.Called()
	return args.Get(0).(ports.CoffeeRepository)
}

type MockCoffeeUoWFactory struct{ mock.Mock }

func (m *MockCoffeeUoWFactory) Create() ports.CoffeeUoW {
	args := m.Called()
	return args.Get(0).(ports.CoffeeUoW)
}

type MockMenuCache struct{ mock.Mock }

func (m *MockMenuCache) Purge() {
	m.Called()
}

type MockOrderService struct{ mock.Mock }

func (m *MockOrderService) CreateOrder(ctx context.Context, customer string, items ...*coffee.Coffee) (*order.Order, error) {
	args := m.Called(ctx, customer, items)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

func (m *MockOrderService) ChangeState(ctx context.Context, id kernel.UUID, newState order.State) (*order.Order, bool, error) {
	args := m.Called(ctx, id, newState)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Bool(1), args.Error(2)
}
