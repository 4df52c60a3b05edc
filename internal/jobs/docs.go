// Package jobs provides scheduled background tasks for the logistics registry.
//
// Jobs are cron-based and use github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. RegistryAuditJob - Reports registry sizes and dangling shipment references
//
// # Usage
//
// Jobs are managed through JobManager:
//
//	jobManager := jobs.NewJobManager(auditHandler, "@every 1m", m, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The schedule accepts the standard five field cron syntax and descriptors such as
// "@every 1m" or "@hourly".
//
// # Error Handling
//
// - An invalid schedule fails StartAll
// - Audit failures are logged and the next run proceeds as scheduled
package jobs
