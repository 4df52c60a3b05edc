package jobs

import (
	"context"
	"log/slog"

	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/model/customer"
	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/core/domain/model/vehicle"
	"logistics/internal/pkg/metrics"

	"github.com/robfig/cron/v3"
)

// RegistryAuditJob periodically publishes registry sizes and warns about shipments
// whose vehicle or customer has been removed.
type RegistryAuditJob struct {
	handler  queries.GetDanglingReferencesQueryHandler
	schedule string
	metrics  *metrics.Metrics
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewRegistryAuditJob creates the audit job. m may be nil.
func NewRegistryAuditJob(
	handler queries.GetDanglingReferencesQueryHandler,
	schedule string,
	m *metrics.Metrics,
	logger *slog.Logger,
) *RegistryAuditJob {
	return &RegistryAuditJob{
		handler:  handler,
		schedule: schedule,
		metrics:  m,
		cron:     cron.New(),
		logger:   logger.With("component", "registry_audit_job"),
	}
}

// Start schedules the audit.
func (j *RegistryAuditJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, func() { j.Run(context.Background()) }); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Registry audit job started", "schedule", j.schedule)
	return nil
}

// Run performs one audit.
func (j *RegistryAuditJob) Run(ctx context.Context) {
	report, err := j.handler.Handle(ctx, queries.NewGetDanglingReferencesQuery())
	if err != nil {
		j.logger.ErrorContext(ctx, "Registry audit failed", "error", err)
		return
	}

	j.metrics.SetRegistrySize(vehicle.Kind, report.Vehicles)
	j.metrics.SetRegistrySize(customer.Kind, report.Customers)
	j.metrics.SetRegistrySize(shipment.Kind, report.Shipments)
	j.metrics.SetDanglingReferences(len(report.References))

	for _, ref := range report.References {
		j.logger.WarnContext(ctx, "Dangling reference",
			"shipment_id", ref.ShipmentID, "field", ref.Field, "target_id", ref.TargetID)
	}

	j.logger.InfoContext(ctx, "Registry audit finished",
		"vehicles", report.Vehicles,
		"customers", report.Customers,
		"shipments", report.Shipments,
		"dangling", len(report.References),
	)
}

// Stop stops the scheduler and waits for a running audit to finish.
func (j *RegistryAuditJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Registry audit job stopped")
}
