package notify

import (
	"context"
	"log/slog"
	"time"

	mg "github.com/mailgun/mailgun-go/v4"
)

// Notifier delivers a message to a recipient. Implementations absorb
// their own failures; callers treat delivery as fire-and-forget.
type Notifier interface {
	Notify(ctx context.Context, to, subject, body string)
}

// LogNotifier writes would-be emails to the log. Default when no mail
// provider is configured, matching a demo deployment.
type LogNotifier struct {
	log *slog.Logger
}

func NewLogNotifier(log *slog.Logger) *LogNotifier {
	return &LogNotifier{log: log}
}

func (n *LogNotifier) Notify(_ context.Context, to, subject, body string) {
	n.log.Info("email sent", "to", to, "subject", subject, "body", body)
}

// MailgunNotifier sends real email through Mailgun.
type MailgunNotifier struct {
	domain string
	apiKey string
	sender string
	log    *slog.Logger
}

func NewMailgunNotifier(domain, apiKey, sender string, log *slog.Logger) *MailgunNotifier {
	return &MailgunNotifier{domain: domain, apiKey: apiKey, sender: sender, log: log}
}

func (n *MailgunNotifier) Notify(ctx context.Context, to, subject, body string) {
	client := mg.NewMailgun(n.domain, n.apiKey)
	msg := client.NewMessage(n.sender, subject, body, to)

	c, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if _, _, err := client.Send(c, msg); err != nil {
		n.log.Error("send email", "to", to, "subject", subject, "error", err)
	}
}
