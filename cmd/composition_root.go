package cmd

import (
	"log/slog"

	httpadapter "waiter/internal/adapters/in/http"
	"waiter/internal/adapters/out/kafka"
	"waiter/internal/adapters/out/postgres"
	"waiter/internal/core/application/services"
	"waiter/internal/core/application/usecases/commands"
	"waiter/internal/core/application/usecases/queries"
	"waiter/internal/core/domain/model/kernel"
	"waiter/internal/core/ports"
	"waiter/internal/jobs"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	configs      Config
	gormDB       *gorm.DB
	codec        kernel.MoneyCodec
	uowFactory   *postgres.GormUnitOfWorkFactory
	registry     *prometheus.Registry
	logger       *slog.Logger
	producer     *kafka.OrderEventProducer
	orderService *services.OrderService
	coffeeByName *queries.GetCoffeeByNameQueryHandler
	ordersGauge  *prometheus.GaugeVec
}

// NewCompositionRoot builds the long-lived services. The order producer is only created
// when a Kafka host is configured.
func NewCompositionRoot(configs Config, gormDB *gorm.DB, logger *slog.Logger) (*CompositionRoot, error) {
	codec, err := kernel.NewMoneyCodec(configs.Currency)
	if err != nil {
		return nil, err
	}

	c := &CompositionRoot{
		configs:     configs,
		gormDB:      gormDB,
		codec:       codec,
		uowFactory:  postgres.NewGormUnitOfWorkFactory(gormDB, codec),
		registry:    prometheus.NewRegistry(),
		logger:      logger,
		ordersGauge: jobs.NewOrdersPersistedGauge(),
	}

	if err = c.registry.Register(collectors.NewGoCollector()); err != nil {
		return nil, err
	}
	if err = c.registry.Register(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{})); err != nil {
		return nil, err
	}
	if err = c.registry.Register(c.ordersGauge); err != nil {
		return nil, err
	}

	var opts []services.Option
	if configs.KafkaHost != "" {
		c.producer = kafka.NewOrderEventProducer(configs.KafkaHost, configs.KafkaOrderChangedTopic, logger)
		opts = append(opts, services.WithEventPublisher(c.producer))
	}

	c.orderService = services.NewOrderService(c.OrderUoWFactory(), logger, opts...)
	if err = c.orderService.BindTo(c.registry); err != nil {
		return nil, err
	}

	c.coffeeByName, err = queries.NewGetCoffeeByNameQueryHandler(gormDB, codec, configs.MenuCacheSize)
	if err != nil {
		return nil, err
	}

	return c, nil
}

func (c *CompositionRoot) OrderUoWFactory() ports.OrderUoWFactory {
	return FuncOrderUoWFactory(func() ports.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CoffeeUoWFactory() ports.CoffeeUoWFactory {
	return FuncCoffeeUoWFactory(func() ports.CoffeeUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) OrderService() *services.OrderService {
	return c.orderService
}

func (c *CompositionRoot) Registry() *prometheus.Registry {
	return c.registry
}

func (c *CompositionRoot) CreateCreateCoffeeCommandHandler() commands.CreateCoffeeCommandHandler {
	return commands.NewCreateCoffeeCommandHandler(c.CoffeeUoWFactory(), c.coffeeByName)
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.CoffeeUoWFactory(), c.orderService)
}

func (c *CompositionRoot) CreateChangeOrderStateCommandHandler() commands.ChangeOrderStateCommandHandler {
	return commands.NewChangeOrderStateCommandHandler(c.orderService)
}

func (c *CompositionRoot) CreateGetAllCoffeesQueryHandler() queries.GetAllCoffeesQueryHandler {
	return queries.NewGetAllCoffeesQueryHandler(c.gormDB, c.codec)
}

func (c *CompositionRoot) CreateGetCoffeeByIDQueryHandler() queries.GetCoffeeByIDQueryHandler {
	return queries.NewGetCoffeeByIDQueryHandler(c.gormDB, c.codec)
}

func (c *CompositionRoot) GetCoffeeByNameQueryHandler() *queries.GetCoffeeByNameQueryHandler {
	return c.coffeeByName
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB, c.codec)
}

func (c *CompositionRoot) CreateGetOrderStatsQueryHandler() queries.GetOrderStatsQueryHandler {
	return queries.NewGetOrderStatsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateHTTPServer() *httpadapter.Server {
	return httpadapter.NewServer(
		httpadapter.Handlers{
			CreateCoffee:     c.CreateCreateCoffeeCommandHandler(),
			CreateOrder:      c.CreateCreateOrderCommandHandler(),
			ChangeOrderState: c.CreateChangeOrderStateCommandHandler(),
			GetAllCoffees:    c.CreateGetAllCoffeesQueryHandler(),
			GetCoffeeByID:    c.CreateGetCoffeeByIDQueryHandler(),
			GetCoffeeByName:  c.coffeeByName,
			GetOrder:         c.CreateGetOrderQueryHandler(),
		},
		c.configs.Currency,
		c.registry,
		c.logger,
	)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		jobs.NewOrderStatsJob(c.CreateGetOrderStatsQueryHandler(), c.ordersGauge, c.configs.OrderStatsSchedule, c.logger),
		jobs.NewMenuCacheRefreshJob(c.coffeeByName, c.configs.MenuCacheSchedule, c.logger),
	)
}

// Close flushes the order producer.
func (c *CompositionRoot) Close() error {
	if c.producer != nil {
		return c.producer.Close()
	}
	return nil
}

type FuncOrderUoWFactory func() ports.OrderUoW

func (f FuncOrderUoWFactory) Create() ports.OrderUoW {
	return f()
}

type FuncCoffeeUoWFactory func() ports.CoffeeUoW

func (f FuncCoffeeUoWFactory) Create() ports.CoffeeUoW {
	return f()
}
