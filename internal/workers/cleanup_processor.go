// internal/workers/cleanup_processor.go
package workers

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/hibiken/asynq"

	"github.com/alezcf/ProyectoGestion-sub000/internal/core/ports"
)

// resolvedRetention is how long resolved reports are kept before the
// cleanup task purges them.
const resolvedRetention = 90 * 24 * time.Hour

// CleanupProcessor purges stale resolved reports
type CleanupProcessor struct {
	repos  ports.UnitOfWork
	logger *slog.Logger
}

// NewCleanupProcessor creates a new cleanup processor
func NewCleanupProcessor(repos ports.UnitOfWork, logger *slog.Logger) *CleanupProcessor {
	return &CleanupProcessor{
		repos:  repos,
		logger: logger.With(slog.String("processor", "cleanup")),
	}
}

// CleanupResolvedReports removes resolved reports older than the
// retention window. Pending reports are never touched here, the sweep
// owns those.
func (p *CleanupProcessor) CleanupResolvedReports(ctx context.Context, t *asynq.Task) error {
	cutoff := time.Now().Add(-resolvedRetention)

	p.logger.InfoContext(ctx, "cleaning up resolved reports",
		slog.Time("cutoff", cutoff))

	deleted, err := p.repos.Reports().DeleteResolvedBefore(ctx, cutoff)
	if err != nil {
		return fmt.Errorf("failed to cleanup resolved reports: %w", err)
	}

	p.logger.InfoContext(ctx, "resolved reports cleaned up",
		slog.Int64("rows_deleted", deleted))

	return nil
}
