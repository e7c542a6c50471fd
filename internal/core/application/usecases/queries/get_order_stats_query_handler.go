package queries

import (
	"context"

	"waiter/internal/core/domain/model/order"

	"gorm.io/gorm"
)

type GetOrderStatsQueryHandler struct {
	db *gorm.DB
}

func NewGetOrderStatsQueryHandler(db *gorm.DB) GetOrderStatsQueryHandler {
	return GetOrderStatsQueryHandler{db: db}
}

func (h GetOrderStatsQueryHandler) Handle(
	ctx context.Context,
	query GetOrderStatsQuery,
) (GetOrderStatsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderStatsQueryResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT state, COUNT(*)
		FROM orders
		GROUP BY state
	`).Rows()
	if err != nil {
		return GetOrderStatsQueryResponse{}, err
	}
	defer rows.Close()

	counts := make(map[int]int64)
	for rows.Next() {
		var rank int
		var count int64
		if err = rows.Scan(&rank, &count); err != nil {
			return GetOrderStatsQueryResponse{}, err
		}
		if _, err = order.StateFromRank(rank); err != nil {
			return GetOrderStatsQueryResponse{}, err
		}
		counts[rank] = count
	}

	if err = rows.Err(); err != nil {
		return GetOrderStatsQueryResponse{}, err
	}

	states := order.States()
	resp := GetOrderStatsQueryResponse{States: make([]OrderStateCount, 0, len(states))}
	for _, s := range states {
		resp.States = append(resp.States, OrderStateCount{State: s, Count: counts[s.Rank()]})
	}

	return resp, nil
}
