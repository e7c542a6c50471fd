// Package orderrepo persists order aggregates. An order is stored as one row in orders
// plus one row per item in order_items; the item position keeps the requested order and
// allows the same coffee to appear more than once.
package orderrepo

import (
	"time"

	"waiter/internal/adapters/out/postgres/coffeerepo"
	"waiter/internal/core/domain/model/coffee"
	"waiter/internal/core/domain/model/kernel"
	"waiter/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO is the row of the orders table. State holds the state rank.
type OrderDTO struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey"`
	Customer  string         `gorm:"type:varchar(255);not null"`
	State     int            `gorm:"type:smallint;not null;index"`
	CreatedAt time.Time      `gorm:"not null;autoCreateTime:false"`
	UpdatedAt time.Time      `gorm:"not null;autoUpdateTime:false"`
	Items     []OrderItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO links an order to a coffee at a given position.
type OrderItemDTO struct {
	OrderID  uuid.UUID            `gorm:"type:uuid;primaryKey"`
	Position int                  `gorm:"primaryKey;autoIncrement:false"`
	CoffeeID uuid.UUID            `gorm:"type:uuid;not null;index"`
	Coffee   coffeerepo.CoffeeDTO `gorm:"foreignKey:CoffeeID;references:ID;constraint:OnDelete:RESTRICT"`
}

func (OrderItemDTO) TableName() string {
	return "order_items"
}

func fromDomain(o *order.Order) OrderDTO {
	orderID := o.ID().Bytes()
	items := make([]OrderItemDTO, 0, len(o.Items()))
	for position, item := range o.Items() {
		items = append(items, OrderItemDTO{
			OrderID:  orderID,
			Position: position,
			CoffeeID: item.ID().Bytes(),
		})
	}

	return OrderDTO{
		ID:        orderID,
		Customer:  o.Customer(),
		State:     o.State().Rank(),
		CreatedAt: o.CreatedAt(),
		UpdatedAt: o.UpdatedAt(),
		Items:     items,
	}
}

// toDomain expects Items preloaded in position order together with their coffees.
func toDomain(dto OrderDTO, codec kernel.MoneyCodec) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	state, err := order.StateFromRank(dto.State)
	if err != nil {
		return nil, err
	}

	items := make([]*coffee.Coffee, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := coffeerepo.ToDomain(itemDTO.Coffee, codec)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(id, dto.Customer, items, state, dto.CreatedAt, dto.UpdatedAt)
}
