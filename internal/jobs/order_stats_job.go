package jobs

import (
	"context"
	"log/slog"

	"waiter/internal/core/application/usecases/queries"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/robfig/cron/v3"
)

const DefaultOrderStatsSchedule = "*/30 * * * * *"

type OrderStatsReader interface {
	Handle(ctx context.Context, query queries.GetOrderStatsQuery) (queries.GetOrderStatsQueryResponse, error)
}

// NewOrdersPersistedGauge creates the gauge OrderStatsJob keeps up to date. It exposes
// how many orders the database holds per state, next to the in-process creation counter.
func NewOrdersPersistedGauge() *prometheus.GaugeVec {
	return prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "waiter",
		Name:      "orders_persisted",
		Help:      "Number of persisted orders by state.",
	}, []string{"state"})
}

// OrderStatsJob periodically copies per-state order counts into a gauge.
type OrderStatsJob struct {
	reader   OrderStatsReader
	gauge    *prometheus.GaugeVec
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewOrderStatsJob uses DefaultOrderStatsSchedule when schedule is empty.
func NewOrderStatsJob(
	reader OrderStatsReader,
	gauge *prometheus.GaugeVec,
	schedule string,
	logger *slog.Logger,
) *OrderStatsJob {
	if schedule == "" {
		schedule = DefaultOrderStatsSchedule
	}

	return &OrderStatsJob{
		reader:   reader,
		gauge:    gauge,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "order_stats_job"),
	}
}

// Refresh reads the counts once and updates the gauge.
func (j *OrderStatsJob) Refresh(ctx context.Context) error {
	stats, err := j.reader.Handle(ctx, queries.NewGetOrderStatsQuery())
	if err != nil {
		return err
	}

	for _, s := range stats.States {
		j.gauge.WithLabelValues(s.State.Code()).Set(float64(s.Count))
	}

	return nil
}

func (j *OrderStatsJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()
		if err := j.Refresh(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Order stats job failed", "error", err)
		}
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Order stats job started", "schedule", j.schedule)
	return nil
}

// Stop waits for a running refresh to finish.
func (j *OrderStatsJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Order stats job stopped")
}
