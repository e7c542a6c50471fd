package http

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"waiter/internal/adapters/in/http/api"
	"waiter/internal/core/application/usecases/commands"
	"waiter/internal/core/application/usecases/queries"
	"waiter/internal/core/domain/model/coffee"
	"waiter/internal/core/domain/model/kernel"
	"waiter/internal/core/domain/model/order"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
	openapi_types "github.com/oapi-codegen/runtime/types"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// Use case handlers the server delegates to.
type (
	CreateCoffeeHandler interface {
		Handle(ctx context.Context, cmd commands.CreateCoffeeCommand) (*coffee.Coffee, error)
	}

	CreateOrderHandler interface {
		Handle(ctx context.Context, cmd commands.CreateOrderCommand) (*order.Order, error)
	}

	ChangeOrderStateHandler interface {
		Handle(ctx context.Context, cmd commands.ChangeOrderStateCommand) (*order.Order, bool, error)
	}

	GetAllCoffeesHandler interface {
		Handle(ctx context.Context, query queries.GetAllCoffeesQuery) ([]queries.CoffeeResponse, error)
	}

	GetCoffeeByIDHandler interface {
		Handle(ctx context.Context, query queries.GetCoffeeByIDQuery) (queries.CoffeeResponse, error)
	}

	GetCoffeeByNameHandler interface {
		Handle(ctx context.Context, query queries.GetCoffeeByNameQuery) (queries.CoffeeResponse, error)
	}

	GetOrderHandler interface {
		Handle(ctx context.Context, query queries.GetOrderQuery) (queries.GetOrderQueryResponse, error)
	}
)

// Handlers groups the use cases served over HTTP.
type Handlers struct {
	CreateCoffee     CreateCoffeeHandler
	CreateOrder      CreateOrderHandler
	ChangeOrderState ChangeOrderStateHandler
	GetAllCoffees    GetAllCoffeesHandler
	GetCoffeeByID    GetCoffeeByIDHandler
	GetCoffeeByName  GetCoffeeByNameHandler
	GetOrder         GetOrderHandler
}

// Server translates HTTP requests into commands and queries.
type Server struct {
	handlers Handlers
	currency kernel.Currency
	gatherer prometheus.Gatherer
	logger   *slog.Logger
}

// NewServer creates a server. Prices in requests are read in currency and gatherer
// backs the /metrics endpoint.
func NewServer(
	handlers Handlers,
	currency kernel.Currency,
	gatherer prometheus.Gatherer,
	logger *slog.Logger,
) *Server {
	return &Server{
		handlers: handlers,
		currency: currency,
		gatherer: gatherer,
		logger:   logger.With("component", "http_server"),
	}
}

// Register mounts all routes on e. Coffee and order routes are validated against the
// OpenAPI document and timed.
func (s *Server) Register(e *echo.Echo) error {
	validator, err := OpenAPIValidator(api.Spec())
	if err != nil {
		return fmt.Errorf("failed to load OpenAPI document: %w", err)
	}
	timer := RequestTimer(s.logger)

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{})))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	coffees := e.Group("/coffee", timer, validator)
	coffees.GET("", s.GetCoffees)
	coffees.POST("", s.CreateCoffee)
	coffees.GET("/:id", s.GetCoffee)

	orders := e.Group("/order", timer, validator)
	orders.POST("", s.CreateOrder)
	orders.GET("/:id", s.GetOrder)
	orders.PUT("/:id", s.UpdateOrderState)

	return nil
}

// GetCoffees handles GET /coffee and GET /coffee?name=.
func (s *Server) GetCoffees(c echo.Context) error {
	var name *string
	if err := runtime.BindQueryParameter("form", true, false, "name", c.QueryParams(), &name); err != nil {
		return badRequest(c, fmt.Sprintf("Invalid format for parameter name: %s", err))
	}

	ctx := c.Request().Context()
	if name != nil {
		query, err := queries.NewGetCoffeeByNameQuery(*name)
		if err != nil {
			return writeError(c, s.logger, err, "Failed to retrieve coffee")
		}

		found, err := s.handlers.GetCoffeeByName.Handle(ctx, query)
		if err != nil {
			return writeError(c, s.logger, err, "Failed to retrieve coffee")
		}

		return c.JSON(http.StatusOK, toCoffee(found))
	}

	all, err := s.handlers.GetAllCoffees.Handle(ctx, queries.NewGetAllCoffeesQuery())
	if err != nil {
		return writeError(c, s.logger, err, "Failed to retrieve coffees")
	}

	response := make([]Coffee, 0, len(all))
	for _, item := range all {
		response = append(response, toCoffee(item))
	}

	return c.JSON(http.StatusOK, response)
}

// GetCoffee handles GET /coffee/{id}.
func (s *Server) GetCoffee(c echo.Context) error {
	id, err := bindID(c)
	if err != nil {
		return badRequest(c, err.Error())
	}

	query, err := queries.NewGetCoffeeByIDQuery(id)
	if err != nil {
		return writeError(c, s.logger, err, "Failed to retrieve coffee")
	}

	found, err := s.handlers.GetCoffeeByID.Handle(c.Request().Context(), query)
	if err != nil {
		return writeError(c, s.logger, err, "Failed to retrieve coffee")
	}

	return c.JSON(http.StatusOK, toCoffee(found))
}

// CreateCoffee handles POST /coffee.
func (s *Server) CreateCoffee(c echo.Context) error {
	var body NewCoffee
	if err := c.Bind(&body); err != nil {
		return badRequest(c, "Invalid request body")
	}

	price, err := kernel.ParseMoney(body.Price, s.currency)
	if err != nil {
		return badRequest(c, "Invalid price: "+err.Error())
	}

	cmd, err := commands.NewCreateCoffeeCommand(body.Name, price)
	if err != nil {
		return badRequest(c, "Invalid coffee data: "+err.Error())
	}

	created, err := s.handlers.CreateCoffee.Handle(c.Request().Context(), cmd)
	if err != nil {
		return writeError(c, s.logger, err, "Failed to create coffee")
	}

	return c.JSON(http.StatusCreated, fromDomainCoffee(created))
}

// CreateOrder handles POST /order.
func (s *Server) CreateOrder(c echo.Context) error {
	var body NewOrder
	if err := c.Bind(&body); err != nil {
		return badRequest(c, "Invalid request body")
	}

	ids := make([]kernel.UUID, 0, len(body.Items))
	for _, raw := range body.Items {
		id, err := kernel.UUIDFromString(raw)
		if err != nil {
			return badRequest(c, "Invalid coffee id: "+err.Error())
		}
		ids = append(ids, id)
	}

	cmd, err := commands.NewCreateOrderCommand(body.Customer, ids)
	if err != nil {
		return badRequest(c, "Invalid order data: "+err.Error())
	}

	created, err := s.handlers.CreateOrder.Handle(c.Request().Context(), cmd)
	if err != nil {
		return writeError(c, s.logger, err, "Failed to create order")
	}

	return s.writeOrder(c, http.StatusCreated, created)
}

// GetOrder handles GET /order/{id}.
func (s *Server) GetOrder(c echo.Context) error {
	id, err := bindID(c)
	if err != nil {
		return badRequest(c, err.Error())
	}

	query, err := queries.NewGetOrderQuery(id)
	if err != nil {
		return writeError(c, s.logger, err, "Failed to retrieve order")
	}

	found, err := s.handlers.GetOrder.Handle(c.Request().Context(), query)
	if err != nil {
		return writeError(c, s.logger, err, "Failed to retrieve order")
	}

	return c.JSON(http.StatusOK, toOrder(found))
}

// UpdateOrderState handles PUT /order/{id}. A state not ranked above the current one
// answers 409 and leaves the order unchanged.
func (s *Server) UpdateOrderState(c echo.Context) error {
	id, err := bindID(c)
	if err != nil {
		return badRequest(c, err.Error())
	}

	var body OrderStateUpdate
	if err = c.Bind(&body); err != nil {
		return badRequest(c, "Invalid request body")
	}

	state, err := order.StateFromCode(body.State)
	if err != nil {
		return badRequest(c, "Invalid state: "+err.Error())
	}

	cmd, err := commands.NewChangeOrderStateCommand(id, state)
	if err != nil {
		return badRequest(c, err.Error())
	}

	updated, changed, err := s.handlers.ChangeOrderState.Handle(c.Request().Context(), cmd)
	if err != nil {
		return writeError(c, s.logger, err, "Failed to update order")
	}

	if !changed {
		return c.JSON(http.StatusConflict, Error{
			Code: http.StatusConflict,
			Message: fmt.Sprintf(
				"order %s is %s and cannot move to %s", updated.ID(), updated.State(), state,
			),
		})
	}

	return s.writeOrder(c, http.StatusOK, updated)
}

func (s *Server) writeOrder(c echo.Context, status int, o *order.Order) error {
	response, err := fromDomainOrder(o)
	if err != nil {
		return writeError(c, s.logger, err, "Failed to render order")
	}

	return c.JSON(status, response)
}

func bindID(c echo.Context) (kernel.UUID, error) {
	var id openapi_types.UUID
	err := runtime.BindStyledParameterWithOptions("simple", "id", c.Param("id"), &id,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return kernel.UUID{}, fmt.Errorf("invalid format for parameter id: %w", err)
	}

	result, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return kernel.UUID{}, errors.Join(errors.New("invalid format for parameter id"), err)
	}

	return result, nil
}
