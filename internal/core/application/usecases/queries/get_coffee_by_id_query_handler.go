package queries

import (
	"context"

	"waiter/internal/core/domain/model/kernel"
	"waiter/internal/pkg/errs"

	"gorm.io/gorm"
)

type GetCoffeeByIDQueryHandler struct {
	db    *gorm.DB
	codec kernel.MoneyCodec
}

func NewGetCoffeeByIDQueryHandler(db *gorm.DB, codec kernel.MoneyCodec) GetCoffeeByIDQueryHandler {
	return GetCoffeeByIDQueryHandler{db: db, codec: codec}
}

// Handle fails with *errs.ObjectNotFoundError when no coffee has the id.
func (h GetCoffeeByIDQueryHandler) Handle(ctx context.Context, query GetCoffeeByIDQuery) (CoffeeResponse, error) {
	if err := query.Validate(); err != nil {
		return CoffeeResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+coffeeColumns+`
		FROM coffees c
		WHERE c.id = ?
	`, query.CoffeeID().Bytes()).Rows()
	if err != nil {
		return CoffeeResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return CoffeeResponse{}, err
		}
		return CoffeeResponse{}, errs.NewObjectNotFoundError("coffee", query.CoffeeID())
	}

	return scanCoffee(rows, h.codec)
}
