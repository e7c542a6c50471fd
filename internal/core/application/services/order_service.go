package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"waiter/internal/core/domain/model/coffee"
	"waiter/internal/core/domain/model/kernel"
	"waiter/internal/core/domain/model/order"
	"waiter/internal/core/ports"
	"waiter/internal/pkg/errs"

	"github.com/prometheus/client_golang/prometheus"
)

// ErrOrderCounterIsNotBound is the panic value of CreateOrder on an unbound service.
var ErrOrderCounterIsNotBound = errors.New("order counter is not bound: call Bind or BindTo before creating orders")

const (
	metricsNamespace = "waiter"
	orderCounterName = "order_count_total"
)

// Option customizes an OrderService.
type Option func(*OrderService)

// WithEventPublisher publishes order events after every successful commit.
func WithEventPublisher(events ports.OrderEventPublisher) Option {
	return func(s *OrderService) {
		s.events = events
	}
}

// WithClock replaces time.Now as the source of createdAt and updatedAt.
func WithClock(now func() time.Time) Option {
	return func(s *OrderService) {
		s.now = now
	}
}

// OrderService creates, reads and advances orders. It holds no per-request state and
// is safe for concurrent use once bound; Bind and BindTo must run before it is shared.
type OrderService struct {
	uowFactory ports.OrderUoWFactory
	events     ports.OrderEventPublisher
	now        func() time.Time
	logger     *slog.Logger
	counter    prometheus.Counter
}

func NewOrderService(uowFactory ports.OrderUoWFactory, logger *slog.Logger, opts ...Option) *OrderService {
	s := &OrderService{
		uowFactory: uowFactory,
		now: func() time.Time {
			return time.Now().UTC()
		},
		logger: logger.With("component", "order_service"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Bind sets the counter incremented once per created order.
func (s *OrderService) Bind(counter prometheus.Counter) {
	s.counter = counter
}

// BindTo creates the waiter_order_count_total counter, registers it with reg and binds it.
// A counter already registered under that name is reused.
func (s *OrderService) BindTo(reg prometheus.Registerer) error {
	var counter prometheus.Counter = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: metricsNamespace,
		Name:      orderCounterName,
		Help:      "Number of orders created.",
	})

	if err := reg.Register(counter); err != nil {
		var already prometheus.AlreadyRegisteredError
		if !errors.As(err, &already) {
			return err
		}
		existing, ok := already.ExistingCollector.(prometheus.Counter)
		if !ok {
			return err
		}
		counter = existing
	}

	s.Bind(counter)
	return nil
}

// Get returns the persisted order or *errs.ObjectNotFoundError.
func (s *OrderService) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	uow := s.uowFactory.Create()
	return uow.OrderRepository().Get(ctx, id)
}

// CreateOrder persists a new order for customer with items in the given order and
// counts it once the transaction committed.
func (s *OrderService) CreateOrder(ctx context.Context, customer string, items ...*coffee.Coffee) (*order.Order, error) {
	if s.counter == nil {
		panic(ErrOrderCounterIsNotBound)
	}

	if len(items) == 0 {
		return nil, errs.NewValueIsRequiredError("items")
	}

	o, err := order.NewOrder(kernel.NewUUID(), customer, items, s.now())
	if err != nil {
		return nil, err
	}

	uow := s.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, o); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "order created",
		"order_id", o.ID().String(),
		"customer", o.Customer(),
		"items", len(items),
	)
	s.counter.Inc()

	if s.events != nil {
		if pubErr := s.events.PublishOrderCreated(ctx, o); pubErr != nil {
			s.logger.ErrorContext(ctx, "failed to publish order created event",
				"order_id", o.ID().String(), "error", pubErr)
		}
	}

	return o, nil
}

// UpdateState advances o to newState and saves it through repo, which must be bound to
// the caller's unit of work. A newState that does not rank above the current state is
// rejected: the order is left untouched, nothing is saved and false is returned.
// When saving fails the in-memory order is put back to its previous state.
func (s *OrderService) UpdateState(
	ctx context.Context,
	repo ports.OrderRepository,
	o *order.Order,
	newState order.State,
) (bool, error) {
	if err := o.Validate(); err != nil {
		return false, err
	}

	previous, previousUpdatedAt := o.State(), o.UpdatedAt()
	changed, err := o.ChangeState(newState, s.now())
	if err != nil {
		return false, err
	}

	if !changed {
		s.logger.WarnContext(ctx, "order state transition rejected",
			"order_id", o.ID().String(),
			"current", previous.String(),
			"requested", newState.String(),
		)
		return false, nil
	}

	if err = repo.Update(ctx, o); err != nil {
		_ = o.RestoreState(previous, previousUpdatedAt)
		return false, err
	}

	s.logger.InfoContext(ctx, "order state updated",
		"order_id", o.ID().String(),
		"from", previous.String(),
		"to", newState.String(),
	)
	return true, nil
}

// ChangeState runs UpdateState in its own unit of work, holding a row lock on the order
// so concurrent changes of the same order apply one after another. It returns the order
// as it is after the call and whether the state changed.
func (s *OrderService) ChangeState(ctx context.Context, id kernel.UUID, newState order.State) (*order.Order, bool, error) {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, false, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.OrderRepository()
	o, err := repo.GetForUpdate(ctx, id)
	if err != nil {
		return nil, false, err
	}

	previous := o.State()
	changed, err := s.UpdateState(ctx, repo, o, newState)
	if err != nil {
		return nil, false, err
	}

	if !changed {
		return o, false, nil
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, false, err
	}

	if s.events != nil {
		if pubErr := s.events.PublishOrderStateChanged(ctx, o, previous); pubErr != nil {
			s.logger.ErrorContext(ctx, "failed to publish order state changed event",
				"order_id", o.ID().String(), "error", pubErr)
		}
	}

	return o, true, nil
}
