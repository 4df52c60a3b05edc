package jobs

import (
	"fmt"
	"log/slog"

	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/pkg/metrics"
)

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	registryAuditJob *RegistryAuditJob
}

// NewJobManager creates a job manager with all jobs.
func NewJobManager(
	auditHandler queries.GetDanglingReferencesQueryHandler,
	auditSchedule string,
	m *metrics.Metrics,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		registryAuditJob: NewRegistryAuditJob(auditHandler, auditSchedule, m, logger),
	}
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if err := jm.registryAuditJob.Start(); err != nil {
		return fmt.Errorf("failed to start registry audit job: %w", err)
	}
	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.registryAuditJob.Stop()
}
