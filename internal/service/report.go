package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/resend/resend-go/v2"
)

// ReportService delivers contact/report form submissions to the
// ministry team by email.
type ReportService struct {
	client    *resend.Client
	fromEmail string
	recipient string
	appName   string
	isDev     bool
}

func NewReportService(apiKey, fromEmail, recipient, appName string, isDev bool) *ReportService {
	var client *resend.Client
	if apiKey != "" && !isDev {
		client = resend.NewClient(apiKey)
	}

	return &ReportService{
		client:    client,
		fromEmail: fromEmail,
		recipient: recipient,
		appName:   appName,
		isDev:     isDev,
	}
}

// Send dispatches one report email to the configured recipient. The
// sender's address goes into Reply-To so the team can answer directly.
func (s *ReportService) Send(ctx context.Context, name, email, message string) error {
	subject := fmt.Sprintf("[%s] New report from %s", s.appName, name)

	if s.isDev {
		slog.Info("email sent (dev mode)", "type", "report", "to", s.recipient, "subject", subject, "from", email)
		return nil
	}

	if s.client == nil {
		return fmt.Errorf("email service not configured (missing RESEND_API_KEY)")
	}

	params := &resend.SendEmailRequest{
		From:    s.fromEmail,
		To:      []string{s.recipient},
		ReplyTo: email,
		Subject: subject,
		Text:    fmt.Sprintf("From: %s <%s>\n\n%s", name, email, message),
	}

	_, err := s.client.Emails.SendWithContext(ctx, params)
	if err == nil {
		slog.Info("email sent", "type", "report", "to", s.recipient)
	}
	return err
}
