package queries

import (
	"context"
	"time"

	"waiter/internal/core/domain/model/kernel"
	"waiter/internal/core/domain/model/order"
	"waiter/internal/pkg/errs"

	"gorm.io/gorm"
)

type GetOrderQueryHandler struct {
	db    *gorm.DB
	codec kernel.MoneyCodec
}

func NewGetOrderQueryHandler(db *gorm.DB, codec kernel.MoneyCodec) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db, codec: codec}
}

// Handle fails with *errs.ObjectNotFoundError when the order does not exist.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	db := h.db.WithContext(ctx)

	var header struct {
		Customer  string
		State     int
		CreatedAt time.Time
		UpdatedAt time.Time
	}
	result := db.Raw(`
		SELECT customer, state, created_at, updated_at
		FROM orders
		WHERE id = ?
	`, query.OrderID().Bytes()).Scan(&header)
	if result.Error != nil {
		return GetOrderQueryResponse{}, result.Error
	}
	if result.RowsAffected == 0 {
		return GetOrderQueryResponse{}, errs.NewObjectNotFoundError("order", query.OrderID())
	}

	state, err := order.StateFromRank(header.State)
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	items, err := h.items(db, query.OrderID())
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	total, err := kernel.NewMoney(h.codec.Currency(), 0)
	if err != nil {
		return GetOrderQueryResponse{}, err
	}
	for _, item := range items {
		if total, err = total.Add(item.Price); err != nil {
			return GetOrderQueryResponse{}, err
		}
	}

	return GetOrderQueryResponse{
		ID:        query.OrderID(),
		Customer:  header.Customer,
		State:     state,
		Items:     items,
		Total:     total,
		CreatedAt: header.CreatedAt,
		UpdatedAt: header.UpdatedAt,
	}, nil
}

func (h GetOrderQueryHandler) items(db *gorm.DB, orderID kernel.UUID) ([]CoffeeResponse, error) {
	rows, err := db.Raw(`
		SELECT `+coffeeColumns+`
		FROM order_items i
		JOIN coffees c ON c.id = i.coffee_id
		WHERE i.order_id = ?
		ORDER BY i.position
	`, orderID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]CoffeeResponse, 0)
	for rows.Next() {
		c, scanErr := scanCoffee(rows, h.codec)
		if scanErr != nil {
			return nil, scanErr
		}
		items = append(items, c)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}
