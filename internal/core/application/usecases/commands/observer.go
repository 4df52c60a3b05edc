package commands

import (
	"context"
	"log/slog"

	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/metrics"
)

// observer logs and counts command outcomes.
type observer struct {
	logger  *slog.Logger
	metrics *metrics.Metrics
}

func newObserver(component string, logger *slog.Logger, m *metrics.Metrics) observer {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return observer{
		logger:  logger.With("component", component),
		metrics: m,
	}
}

func (o observer) admitted(ctx context.Context, kind, id string) {
	o.logger.InfoContext(ctx, "Record admitted", "kind", kind, "id", id)
	o.metrics.IncrementAdmitted(kind)
}

func (o observer) rejected(ctx context.Context, kind, id string, err error) {
	rule := errs.RuleOf(err)
	o.logger.WarnContext(ctx, "Record rejected", "kind", kind, "id", id, "rule", rule, "error", err)
	o.metrics.IncrementRejected(kind, string(rule))
}

func (o observer) removed(ctx context.Context, kind, id string) {
	o.logger.InfoContext(ctx, "Record removed", "kind", kind, "id", id)
	o.metrics.IncrementRemoved(kind)
}
