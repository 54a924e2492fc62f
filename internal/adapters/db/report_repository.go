// internal/adapters/db/report_repository.go
package db

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/alezcf/ProyectoGestion-sub000/internal/core/domain"
	"github.com/alezcf/ProyectoGestion-sub000/internal/core/ports"
)

// reportRepository implements ports.ReportRepository
type reportRepository struct {
	q      Querier
	logger *slog.Logger
}

// NewReportRepository creates a new report repository
func NewReportRepository(q Querier, logger *slog.Logger) ports.ReportRepository {
	return &reportRepository{
		q:      q,
		logger: logger.With(slog.String("repository", "report")),
	}
}

// Upsert inserts the report or refreshes the existing (title, type)
// row. Only description and payload are overwritten so a report that
// was resolved by hand keeps its status.
func (r *reportRepository) Upsert(ctx context.Context, report *domain.Report) error {
	query := `
		INSERT INTO reports (title, type, status, description, payload)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (title, type) DO UPDATE SET
			description = EXCLUDED.description,
			payload = EXCLUDED.payload,
			updated_at = NOW()
		RETURNING id, status, created_at, updated_at`

	err := r.q.QueryRow(ctx, query,
		report.Title, report.Type, report.Status, report.Description, report.Payload,
	).Scan(&report.ID, &report.Status, &report.CreatedAt, &report.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to upsert report: %w", err)
	}

	r.logger.DebugContext(ctx, "report upserted",
		slog.Int64("report_id", report.ID),
		slog.String("title", report.Title),
		slog.String("type", string(report.Type)))

	return nil
}

// FindByID retrieves a report by id
func (r *reportRepository) FindByID(ctx context.Context, id int64) (*domain.Report, error) {
	query := `
		SELECT id, title, type, status, description, payload, created_at, updated_at
		FROM reports WHERE id = $1`

	report := &domain.Report{}
	err := r.q.QueryRow(ctx, query, id).Scan(
		&report.ID, &report.Title, &report.Type, &report.Status,
		&report.Description, &report.Payload, &report.CreatedAt, &report.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.NewNotFoundError("reporte", id)
		}
		return nil, fmt.Errorf("failed to find report: %w", err)
	}

	return report, nil
}

// FindAll retrieves reports, optionally filtered by status
func (r *reportRepository) FindAll(ctx context.Context, status domain.ReportStatus) ([]domain.Report, error) {
	query := `
		SELECT id, title, type, status, description, payload, created_at, updated_at
		FROM reports`
	var args []interface{}
	if status != "" {
		query += ` WHERE status = $1`
		args = append(args, status)
	}
	query += ` ORDER BY updated_at DESC`

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query reports: %w", err)
	}
	defer rows.Close()

	var reports []domain.Report
	for rows.Next() {
		var rep domain.Report
		err := rows.Scan(
			&rep.ID, &rep.Title, &rep.Type, &rep.Status,
			&rep.Description, &rep.Payload, &rep.CreatedAt, &rep.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan report: %w", err)
		}
		reports = append(reports, rep)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return reports, nil
}

// UpdateStatus changes a report's handling state
func (r *reportRepository) UpdateStatus(ctx context.Context, id int64, status domain.ReportStatus) error {
	query := `UPDATE reports SET status = $2, updated_at = $3 WHERE id = $1`

	tag, err := r.q.Exec(ctx, query, id, status, time.Now())
	if err != nil {
		return fmt.Errorf("failed to update report status: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return domain.NewNotFoundError("reporte", id)
	}

	return nil
}

// Delete removes a single report by id
func (r *reportRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM reports WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete report: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return domain.NewNotFoundError("reporte", id)
	}

	return nil
}

// DeleteByStatus removes every report in the given status
func (r *reportRepository) DeleteByStatus(ctx context.Context, status domain.ReportStatus) (int64, error) {
	tag, err := r.q.Exec(ctx, `DELETE FROM reports WHERE status = $1`, status)
	if err != nil {
		return 0, fmt.Errorf("failed to delete reports by status: %w", err)
	}

	deleted := tag.RowsAffected()
	if deleted > 0 {
		r.logger.DebugContext(ctx, "reports deleted",
			slog.String("status", string(status)),
			slog.Int64("count", deleted))
	}

	return deleted, nil
}

// DeleteResolvedBefore purges resolved reports older than the cutoff
func (r *reportRepository) DeleteResolvedBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	query := `DELETE FROM reports WHERE status = $1 AND updated_at < $2`

	tag, err := r.q.Exec(ctx, query, domain.ReportStatusResolved, cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to purge resolved reports: %w", err)
	}

	return tag.RowsAffected(), nil
}
