package jobs

import (
	"fmt"
)

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	orderStatsJob       *OrderStatsJob
	menuCacheRefreshJob *MenuCacheRefreshJob
}

func NewJobManager(orderStatsJob *OrderStatsJob, menuCacheRefreshJob *MenuCacheRefreshJob) *JobManager {
	return &JobManager{
		orderStatsJob:       orderStatsJob,
		menuCacheRefreshJob: menuCacheRefreshJob,
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.orderStatsJob.Start(); err != nil {
		return fmt.Errorf("failed to start order stats job: %w", err)
	}

	if err := jm.menuCacheRefreshJob.Start(); err != nil {
		jm.orderStatsJob.Stop()
		return fmt.Errorf("failed to start menu cache refresh job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.menuCacheRefreshJob.Stop()
	jm.orderStatsJob.Stop()
}
