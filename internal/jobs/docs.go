// Package jobs provides scheduled background tasks for the waiter service.
//
// Jobs run on github.com/robfig/cron/v3 with second resolution.
//
// # Available Jobs
//
// 1. OrderStatsJob - refreshes the waiter_orders_persisted{state} gauge from the database
// 2. MenuCacheRefreshJob - purges the coffee-by-name cache
//
// # Usage
//
//	jobManager := jobs.NewJobManager(
//		jobs.NewOrderStatsJob(statsHandler, gauge, "*/30 * * * * *", logger),
//		jobs.NewMenuCacheRefreshJob(coffeeByNameHandler, "0 */5 * * * *", logger),
//	)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// Failed runs are logged and retried on the next tick. A job that fails to start stops
// the jobs already started.
package jobs
