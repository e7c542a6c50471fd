// Package coffeerepo persists the coffee menu. Prices are stored as a nullable BIGINT of
// minor units and mapped through kernel.MoneyCodec, so the column never holds a currency
// or a fractional value.
package coffeerepo

import (
	"time"

	"waiter/internal/core/domain/model/coffee"
	"waiter/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// CoffeeDTO is the row of the coffees table.
type CoffeeDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	Price     *int64    `gorm:"type:bigint"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime:false"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime:false"`
}

func (CoffeeDTO) TableName() string {
	return "coffees"
}

// FromDomain maps a coffee to its row, encoding the price with codec.
func FromDomain(c *coffee.Coffee, codec kernel.MoneyCodec) (CoffeeDTO, error) {
	price := c.Price()
	amount, err := codec.Encode(&price)
	if err != nil {
		return CoffeeDTO{}, err
	}

	return CoffeeDTO{
		ID:        c.ID().Bytes(),
		Name:      c.Name(),
		Price:     amount,
		CreatedAt: c.CreatedAt(),
		UpdatedAt: c.UpdatedAt(),
	}, nil
}

// ToDomain restores a coffee from its row. A NULL price fails validation.
func ToDomain(dto CoffeeDTO, codec kernel.MoneyCodec) (*coffee.Coffee, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var price kernel.Money
	if decoded := codec.Decode(dto.Price); decoded != nil {
		price = *decoded
	}

	return coffee.RestoreCoffee(id, dto.Name, price, dto.CreatedAt, dto.UpdatedAt)
}
