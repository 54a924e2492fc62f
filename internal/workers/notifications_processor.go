// internal/workers/notifications_processor.go
package workers

import (
	"context"
	"fmt"
	"log/slog"
	"net/smtp"
	"strings"

	"github.com/hibiken/asynq"

	"github.com/alezcf/ProyectoGestion-sub000/internal/core/domain"
	"github.com/alezcf/ProyectoGestion-sub000/internal/core/ports"
	"github.com/alezcf/ProyectoGestion-sub000/internal/pkg/config"
)

// NotificationProcessor emails a digest of pending stock reports
type NotificationProcessor struct {
	repos  ports.UnitOfWork
	config *config.Config
	logger *slog.Logger
}

// NewNotificationProcessor creates a new notification processor
func NewNotificationProcessor(repos ports.UnitOfWork, config *config.Config, logger *slog.Logger) *NotificationProcessor {
	return &NotificationProcessor{
		repos:  repos,
		config: config,
		logger: logger.With(slog.String("processor", "notification")),
	}
}

// SendPendingDigest mails the current pending reports to the
// operations address. A run with nothing pending sends nothing.
func (p *NotificationProcessor) SendPendingDigest(ctx context.Context, t *asynq.Task) error {
	reports, err := p.repos.Reports().FindAll(ctx, domain.ReportStatusPending)
	if err != nil {
		return fmt.Errorf("failed to load pending reports: %w", err)
	}

	if len(reports) == 0 {
		p.logger.InfoContext(ctx, "no pending reports, skipping digest")
		return nil
	}

	subject := fmt.Sprintf("Reportes de stock pendientes: %d", len(reports))
	body := buildDigestBody(reports)

	p.logger.InfoContext(ctx, "sending pending report digest",
		slog.Int("report_count", len(reports)))

	// In development, just log the email
	if p.config.App.Environment == "development" {
		p.logger.InfoContext(ctx, "digest would be sent",
			slog.String("subject", subject),
			slog.String("body", body))
		return nil
	}

	from := fmt.Sprintf("noreply@%s.local", p.config.App.Name)
	to := "operaciones@gestion.local"
	msg := []byte(fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\n%s",
		from, to, subject, body,
	))

	auth := smtp.PlainAuth("", "", "", "smtp.example.com")
	if err := smtp.SendMail("smtp.example.com:587", auth, from, []string{to}, msg); err != nil {
		return fmt.Errorf("failed to send digest: %w", err)
	}

	p.logger.InfoContext(ctx, "digest sent successfully")
	return nil
}

func buildDigestBody(reports []domain.Report) string {
	var sb strings.Builder
	for _, r := range reports {
		sb.WriteString("- ")
		sb.WriteString(r.Title)
		if r.Description != "" {
			sb.WriteString(": ")
			sb.WriteString(r.Description)
		}
		sb.WriteString("\r\n")
	}
	return sb.String()
}
