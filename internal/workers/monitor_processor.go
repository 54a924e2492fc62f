// internal/workers/monitor_processor.go
package workers

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/hibiken/asynq"

	"github.com/alezcf/ProyectoGestion-sub000/internal/core/ports"
)

// Task type names registered with the asynq mux.
const (
	TaskMonitorSweep   = "monitor:sweep"
	TaskReportsCleanup = "reports:cleanup"
	TaskReportsDigest  = "reports:digest"
)

// MonitorProcessor runs the threshold sweep as a background task
type MonitorProcessor struct {
	monitor ports.MonitorService
	logger  *slog.Logger
}

// NewMonitorProcessor creates a new monitor processor
func NewMonitorProcessor(monitor ports.MonitorService, logger *slog.Logger) *MonitorProcessor {
	return &MonitorProcessor{
		monitor: monitor,
		logger:  logger.With(slog.String("processor", "monitor")),
	}
}

// RunSweep wipes pending reports and rebuilds them from current stock
func (p *MonitorProcessor) RunSweep(ctx context.Context, t *asynq.Task) error {
	p.logger.InfoContext(ctx, "starting threshold sweep")

	result, err := p.monitor.RunSweep(ctx)
	if err != nil {
		return fmt.Errorf("threshold sweep failed: %w", err)
	}

	p.logger.InfoContext(ctx, "threshold sweep finished",
		slog.Int64("deleted_pending", result.Deleted),
		slog.Int("reports_emitted", len(result.Reports)),
		slog.Int("failures", len(result.Failures)))

	for _, failure := range result.Failures {
		p.logger.WarnContext(ctx, "sweep pass failed",
			slog.String("detail", failure))
	}

	return nil
}
