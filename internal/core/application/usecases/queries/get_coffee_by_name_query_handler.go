package queries

import (
	"context"

	"waiter/internal/core/domain/model/kernel"
	"waiter/internal/pkg/errs"

	lru "github.com/hashicorp/golang-lru/v2"
	"gorm.io/gorm"
)

// GetCoffeeByNameQueryHandler serves name lookups through an LRU cache. Misses are not
// cached. The cache is dropped with Purge whenever the menu changes and on a schedule.
//
// Example:
//
//	handler, err := NewGetCoffeeByNameQueryHandler(db, codec, 128)
//	query, _ := NewGetCoffeeByNameQuery("Latte")
//	latte, err := handler.Handle(ctx, query)
type GetCoffeeByNameQueryHandler struct {
	db    *gorm.DB
	codec kernel.MoneyCodec
	cache *lru.Cache[string, CoffeeResponse]
}

// NewGetCoffeeByNameQueryHandler fails when size is not positive.
func NewGetCoffeeByNameQueryHandler(
	db *gorm.DB,
	codec kernel.MoneyCodec,
	size int,
) (*GetCoffeeByNameQueryHandler, error) {
	cache, err := lru.New[string, CoffeeResponse](size)
	if err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("size", err)
	}

	return &GetCoffeeByNameQueryHandler{
		db:    db,
		codec: codec,
		cache: cache,
	}, nil
}

func (h *GetCoffeeByNameQueryHandler) Handle(ctx context.Context, query GetCoffeeByNameQuery) (CoffeeResponse, error) {
	if err := query.Validate(); err != nil {
		return CoffeeResponse{}, err
	}

	if c, ok := h.cache.Get(query.Name()); ok {
		return c, nil
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+coffeeColumns+`
		FROM coffees c
		WHERE c.name = ?
	`, query.Name()).Rows()
	if err != nil {
		return CoffeeResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return CoffeeResponse{}, err
		}
		return CoffeeResponse{}, errs.NewObjectNotFoundError("coffee", query.Name())
	}

	c, err := scanCoffee(rows, h.codec)
	if err != nil {
		return CoffeeResponse{}, err
	}

	h.cache.Add(query.Name(), c)
	return c, nil
}

// Purge drops every cached entry.
func (h *GetCoffeeByNameQueryHandler) Purge() {
	h.cache.Purge()
}

// Len reports the number of cached entries.
func (h *GetCoffeeByNameQueryHandler) Len() int {
	return h.cache.Len()
}
