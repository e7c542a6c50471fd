package jobs

import (
	"context"
	"log/slog"

	"github.com/robfig/cron/v3"
)

const DefaultMenuCacheRefreshSchedule = "0 */5 * * * *"

type CachePurger interface {
	Purge()
}

// MenuCacheRefreshJob drops cached menu lookups so edits made outside this process
// become visible.
type MenuCacheRefreshJob struct {
	cache    CachePurger
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewMenuCacheRefreshJob uses DefaultMenuCacheRefreshSchedule when schedule is empty.
func NewMenuCacheRefreshJob(cache CachePurger, schedule string, logger *slog.Logger) *MenuCacheRefreshJob {
	if schedule == "" {
		schedule = DefaultMenuCacheRefreshSchedule
	}

	return &MenuCacheRefreshJob{
		cache:    cache,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "menu_cache_refresh_job"),
	}
}

func (j *MenuCacheRefreshJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		j.cache.Purge()
		j.logger.DebugContext(context.Background(), "Menu cache purged")
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Menu cache refresh job started", "schedule", j.schedule)
	return nil
}

func (j *MenuCacheRefreshJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Menu cache refresh job stopped")
}
