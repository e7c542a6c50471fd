package queries

import (
	"database/sql"
	"time"

	"waiter/internal/core/domain/model/kernel"
	"waiter/internal/pkg/errs"

	"github.com/google/uuid"
)

// CoffeeResponse is a menu entry as returned by the coffee and order queries.
type CoffeeResponse struct {
	ID        kernel.UUID
	Name      string
	Price     kernel.Money
	CreatedAt time.Time
	UpdatedAt time.Time
}

const coffeeColumns = `c.id, c.name, c.price, c.created_at, c.updated_at`

func scanCoffee(rows *sql.Rows, codec kernel.MoneyCodec) (CoffeeResponse, error) {
	var (
		resp  CoffeeResponse
		id    uuid.UUID
		price *int64
	)

	if err := rows.Scan(&id, &resp.Name, &price, &resp.CreatedAt, &resp.UpdatedAt); err != nil {
		return CoffeeResponse{}, err
	}

	coffeeID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return CoffeeResponse{}, err
	}
	resp.ID = coffeeID

	decoded := codec.Decode(price)
	if decoded == nil {
		return CoffeeResponse{}, errs.NewValueIsRequiredError("price")
	}
	resp.Price = *decoded

	return resp, nil
}
