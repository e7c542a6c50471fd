package queries

import (
	"context"

	"waiter/internal/core/domain/model/kernel"

	"gorm.io/gorm"
)

type GetAllCoffeesQueryHandler struct {
	db    *gorm.DB
	codec kernel.MoneyCodec
}

func NewGetAllCoffeesQueryHandler(db *gorm.DB, codec kernel.MoneyCodec) GetAllCoffeesQueryHandler {
	return GetAllCoffeesQueryHandler{db: db, codec: codec}
}

// Handle returns an empty slice, never nil, when the menu is empty.
func (h GetAllCoffeesQueryHandler) Handle(ctx context.Context, query GetAllCoffeesQuery) ([]CoffeeResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT ` + coffeeColumns + `
		FROM coffees c
		ORDER BY c.name
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	coffees := make([]CoffeeResponse, 0)
	for rows.Next() {
		c, scanErr := scanCoffee(rows, h.codec)
		if scanErr != nil {
			return nil, scanErr
		}
		coffees = append(coffees, c)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return coffees, nil
}
