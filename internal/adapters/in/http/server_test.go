package http_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	httpadapter "waiter/internal/adapters/in/http"
	"waiter/internal/core/application/usecases/commands"
	"waiter/internal/core/application/usecases/queries"
	"waiter/internal/core/domain/model/coffee"
	"waiter/internal/core/domain/model/kernel"
	"waiter/internal/core/domain/model/order"
	"waiter/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)

type MockCreateCoffee struct{ mock.Mock }

func (m *MockCreateCoffee) Handle(ctx context.Context, cmd commands.CreateCoffeeCommand) (*coffee.Coffee, error) {
	args := m.Called(ctx, cmd)
	c, _ := args.Get(0).(*coffee.Coffee)
	return c, args.Error(1)
}

type MockCreateOrder struct{ mock.Mock }

func (m *MockCreateOrder) Handle(ctx context.Context, cmd commands.CreateOrderCommand) (*order.Order, error) {
	args := m.Called(ctx, cmd)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

type MockChangeOrderState struct{ mock.Mock }

func (m *MockChangeOrderState) Handle(
	ctx context.Context,
	cmd commands.ChangeOrderStateCommand,
) (*order.Order, bool, error) {
	args := m.Called(ctx, cmd)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Bool(1), args.Error(2)
}

type MockGetAllCoffees struct{ mock.Mock }

func (m *MockGetAllCoffees) Handle(ctx context.Context, q queries.GetAllCoffeesQuery) ([]queries.CoffeeResponse, error) {
	args := m.Called(ctx, q)
	r, _ := args.Get(0).([]queries.CoffeeResponse)
	return r, args.Error(1)
}

type MockGetCoffeeByID struct{ mock.Mock }

func (m *MockGetCoffeeByID) Handle(ctx context.Context, q queries.GetCoffeeByIDQuery) (queries.CoffeeResponse, error) {
	args := m.Called(ctx, q)
	return args.Get(0).(queries.CoffeeResponse), args.Error(1)
}

type MockGetCoffeeByName struct{ mock.Mock }

func (m *MockGetCoffeeByName) Handle(ctx context.Context, q queries.GetCoffeeByNameQuery) (queries.CoffeeResponse, error) {
	args := m.Called(ctx, q)
	return args.Get(0).(queries.CoffeeResponse), args.Error(1)
}

type MockGetOrder struct{ mock.Mock }

func (m *MockGetOrder) Handle(ctx context.Context, q queries.GetOrderQuery) (queries.GetOrderQueryResponse, error) {
	args := m.Called(ctx, q)
	return args.Get(0).(queries.GetOrderQueryResponse), args.Error(1)
}

type fixture struct {
	e                *echo.Echo
	createCoffee     *MockCreateCoffee
	createOrder      *MockCreateOrder
	changeOrderState *MockChangeOrderState
	getAllCoffees    *MockGetAllCoffees
	getCoffeeByID    *MockGetCoffeeByID
	getCoffeeByName  *MockGetCoffeeByName
	getOrder         *MockGetOrder
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	f := &fixture{
		e:                echo.New(),
		createCoffee:     new(MockCreateCoffee),
		createOrder:      new(MockCreateOrder),
		changeOrderState: new(MockChangeOrderState),
		getAllCoffees:    new(MockGetAllCoffees),
		getCoffeeByID:    new(MockGetCoffeeByID),
		getCoffeeByName:  new(MockGetCoffeeByName),
		getOrder:         new(MockGetOrder),
	}

	server := httpadapter.NewServer(
		httpadapter.Handlers{
			CreateCoffee:     f.createCoffee,
			CreateOrder:      f.createOrder,
			ChangeOrderState: f.changeOrderState,
			GetAllCoffees:    f.getAllCoffees,
			GetCoffeeByID:    f.getCoffeeByID,
			GetCoffeeByName:  f.getCoffeeByName,
			GetOrder:         f.getOrder,
		},
		kernel.TWD,
		prometheus.NewRegistry(),
		slog.New(slog.NewTextHandler(io.Discard, nil)),
	)
	require.NoError(t, server.Register(f.e))

	return f
}

func (f *fixture) do(method, target, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	f.e.ServeHTTP(rec, req)
	return rec
}

func latte(t *testing.T) *coffee.Coffee {
	t.Helper()
	price, err := kernel.NewMoney(kernel.TWD, 120)
	require.NoError(t, err)
	c, err := coffee.NewCoffee(kernel.NewUUID(), "Latte", price, fixedNow)
	require.NoError(t, err)
	return c
}

func latteResponse(c *coffee.Coffee) queries.CoffeeResponse {
	return queries.CoffeeResponse{
		ID:        c.ID(),
		Name:      c.Name(),
		Price:     c.Price(),
		CreatedAt: c.CreatedAt(),
		UpdatedAt: c.UpdatedAt(),
	}
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v))
	return v
}

func TestServer_Health(t *testing.T) {
	f := newFixture(t)

	rec := f.do(http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Healthy", rec.Body.String())
}

func TestServer_Metrics(t *testing.T) {
	f := newFixture(t)

	rec := f.do(http.MethodGet, "/metrics", "")

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestServer_CreateCoffee(t *testing.T) {
	t.Run("should create a coffee with an exact price", func(t *testing.T) {
		f := newFixture(t)
		created := latte(t)
		f.createCoffee.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.CreateCoffeeCommand) bool {
			return cmd.Name() == "Latte" && cmd.Price().AmountMinor() == 120
		})).Return(created, nil).Once()

		rec := f.do(http.MethodPost, "/coffee", `{"name":"Latte","price":"1.20"}`)

		require.Equal(t, http.StatusCreated, rec.Code)
		body := decode[httpadapter.Coffee](t, rec)
		assert.Equal(t, created.ID().String(), body.ID)
		assert.Equal(t, httpadapter.Money{Currency: "TWD", Amount: "1.20", AmountMinor: 120}, body.Price)
		f.createCoffee.AssertExpectations(t)
	})

	t.Run("should reject a price with too many decimals", func(t *testing.T) {
		f := newFixture(t)

		rec := f.do(http.MethodPost, "/coffee", `{"name":"Latte","price":"1.205"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		f.createCoffee.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
	})

	t.Run("should reject a body without a name", func(t *testing.T) {
		f := newFixture(t)

		rec := f.do(http.MethodPost, "/coffee", `{"price":"1.20"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		body := decode[httpadapter.Error](t, rec)
		assert.Equal(t, http.StatusBadRequest, body.Code)
	})

	t.Run("should answer 409 for a duplicate name", func(t *testing.T) {
		f := newFixture(t)
		f.createCoffee.On("Handle", mock.Anything, mock.Anything).
			Return(nil, errs.NewObjectAlreadyExistsError("name", "Latte"))

		rec := f.do(http.MethodPost, "/coffee", `{"name":"Latte","price":"1.20"}`)

		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("should hide internal errors", func(t *testing.T) {
		f := newFixture(t)
		f.createCoffee.On("Handle", mock.Anything, mock.Anything).Return(nil, errors.New("pq: connection refused"))

		rec := f.do(http.MethodPost, "/coffee", `{"name":"Latte","price":"1.20"}`)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.NotContains(t, rec.Body.String(), "pq:")
	})
}

func TestServer_GetCoffees(t *testing.T) {
	t.Run("should list the menu", func(t *testing.T) {
		f := newFixture(t)
		c := latte(t)
		f.getAllCoffees.On("Handle", mock.Anything, mock.Anything).
			Return([]queries.CoffeeResponse{latteResponse(c)}, nil).Once()

		rec := f.do(http.MethodGet, "/coffee", "")

		require.Equal(t, http.StatusOK, rec.Code)
		body := decode[[]httpadapter.Coffee](t, rec)
		require.Len(t, body, 1)
		assert.Equal(t, "Latte", body[0].Name)
		f.getCoffeeByName.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
	})

	t.Run("should look a coffee up by name", func(t *testing.T) {
		f := newFixture(t)
		c := latte(t)
		f.getCoffeeByName.On("Handle", mock.Anything, mock.MatchedBy(func(q queries.GetCoffeeByNameQuery) bool {
			return q.Name() == "Latte"
		})).Return(latteResponse(c), nil).Once()

		rec := f.do(http.MethodGet, "/coffee?name=Latte", "")

		require.Equal(t, http.StatusOK, rec.Code)
		body := decode[httpadapter.Coffee](t, rec)
		assert.Equal(t, c.ID().String(), body.ID)
		f.getAllCoffees.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
	})

	t.Run("should answer 404 for an unknown name", func(t *testing.T) {
		f := newFixture(t)
		f.getCoffeeByName.On("Handle", mock.Anything, mock.Anything).
			Return(queries.CoffeeResponse{}, errs.NewObjectNotFoundError("coffee", "Flat White"))

		rec := f.do(http.MethodGet, "/coffee?name=Flat%20White", "")

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestServer_GetCoffee(t *testing.T) {
	t.Run("should return the coffee", func(t *testing.T) {
		f := newFixture(t)
		c := latte(t)
		f.getCoffeeByID.On("Handle", mock.Anything, mock.MatchedBy(func(q queries.GetCoffeeByIDQuery) bool {
			return q.CoffeeID() == c.ID()
		})).Return(latteResponse(c), nil).Once()

		rec := f.do(http.MethodGet, "/coffee/"+c.ID().String(), "")

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("should reject a malformed id", func(t *testing.T) {
		f := newFixture(t)

		rec := f.do(http.MethodGet, "/coffee/not-a-uuid", "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		f.getCoffeeByID.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
	})
}

func TestServer_CreateOrder(t *testing.T) {
	t.Run("should create an order in INIT", func(t *testing.T) {
		f := newFixture(t)
		c := latte(t)
		created, err := order.NewOrder(kernel.NewUUID(), "Alice", []*coffee.Coffee{c, c}, fixedNow)
		require.NoError(t, err)
		f.createOrder.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.CreateOrderCommand) bool {
			return cmd.Customer() == "Alice" && len(cmd.CoffeeIDs()) == 2
		})).Return(created, nil).Once()

		rec := f.do(http.MethodPost, "/order",
			`{"customer":"Alice","items":["`+c.ID().String()+`","`+c.ID().String()+`"]}`)

		require.Equal(t, http.StatusCreated, rec.Code)
		body := decode[httpadapter.Order](t, rec)
		assert.Equal(t, "INIT", body.State)
		assert.Len(t, body.Items, 2)
		assert.Equal(t, httpadapter.Money{Currency: "TWD", Amount: "2.40", AmountMinor: 240}, body.Total)
	})

	t.Run("should reject an empty item list", func(t *testing.T) {
		f := newFixture(t)

		rec := f.do(http.MethodPost, "/order", `{"customer":"Alice","items":[]}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		f.createOrder.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
	})

	t.Run("should answer 404 for an unknown coffee", func(t *testing.T) {
		f := newFixture(t)
		missing := kernel.NewUUID()
		f.createOrder.On("Handle", mock.Anything, mock.Anything).
			Return(nil, errs.NewObjectNotFoundError("coffee", missing))

		rec := f.do(http.MethodPost, "/order", `{"customer":"Alice","items":["`+missing.String()+`"]}`)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestServer_GetOrder(t *testing.T) {
	t.Run("should return the order with its total", func(t *testing.T) {
		f := newFixture(t)
		c := latte(t)
		id := kernel.NewUUID()
		total, _ := kernel.NewMoney(kernel.TWD, 120)
		f.getOrder.On("Handle", mock.Anything, mock.Anything).Return(queries.GetOrderQueryResponse{
			ID:        id,
			Customer:  "Alice",
			State:     order.Paid,
			Items:     []queries.CoffeeResponse{latteResponse(c)},
			Total:     total,
			CreatedAt: fixedNow,
			UpdatedAt: fixedNow,
		}, nil).Once()

		rec := f.do(http.MethodGet, "/order/"+id.String(), "")

		require.Equal(t, http.StatusOK, rec.Code)
		body := decode[httpadapter.Order](t, rec)
		assert.Equal(t, id.String(), body.ID)
		assert.Equal(t, "PAID", body.State)
		assert.Equal(t, "1.20", body.Total.Amount)
	})

	t.Run("should answer 404 for a missing order", func(t *testing.T) {
		f := newFixture(t)
		id := kernel.NewUUID()
		f.getOrder.On("Handle", mock.Anything, mock.Anything).
			Return(queries.GetOrderQueryResponse{}, errs.NewObjectNotFoundError("order", id))

		rec := f.do(http.MethodGet, "/order/"+id.String(), "")

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestServer_UpdateOrderState(t *testing.T) {
	restore := func(t *testing.T, state order.State) *order.Order {
		t.Helper()
		o, err := order.RestoreOrder(kernel.NewUUID(), "Alice", []*coffee.Coffee{latte(t)}, state, fixedNow, fixedNow)
		require.NoError(t, err)
		return o
	}

	t.Run("should advance the order", func(t *testing.T) {
		f := newFixture(t)
		o := restore(t, order.Brewing)
		f.changeOrderState.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.ChangeOrderStateCommand) bool {
			return cmd.OrderID() == o.ID() && cmd.State() == order.Taken
		})).Run(func(mock.Arguments) {
			_, _ = o.ChangeState(order.Taken, fixedNow.Add(time.Minute))
		}).Return(o, true, nil).Once()

		rec := f.do(http.MethodPut, "/order/"+o.ID().String(), `{"state":"TAKEN"}`)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "TAKEN", decode[httpadapter.Order](t, rec).State)
	})

	t.Run("should answer 409 for a backwards transition", func(t *testing.T) {
		f := newFixture(t)
		o := restore(t, order.Paid)
		f.changeOrderState.On("Handle", mock.Anything, mock.Anything).Return(o, false, nil).Once()

		rec := f.do(http.MethodPut, "/order/"+o.ID().String(), `{"state":"INIT"}`)

		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Contains(t, decode[httpadapter.Error](t, rec).Message, "PAID")
	})

	t.Run("should reject an unknown state", func(t *testing.T) {
		f := newFixture(t)

		rec := f.do(http.MethodPut, "/order/"+kernel.NewUUID().String(), `{"state":"SPILLED"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		f.changeOrderState.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
	})

	t.Run("should answer 404 for a missing order", func(t *testing.T) {
		f := newFixture(t)
		id := kernel.NewUUID()
		f.changeOrderState.On("Handle", mock.Anything, mock.Anything).
			Return(nil, false, errs.NewObjectNotFoundError("order", id))

		rec := f.do(http.MethodPut, "/order/"+id.String(), `{"state":"PAID"}`)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
