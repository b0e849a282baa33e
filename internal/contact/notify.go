package contact

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/mailgun/mailgun-go/v4"
	"go.uber.org/zap"

	"seothon.dev/web/internal/observability"
)

// LogNotifier writes submissions to the request logger. It is used when mail is not configured.
type LogNotifier struct{}

func (LogNotifier) Notify(ctx context.Context, sub Submission) error {
	observability.FromContext(ctx).Info("contact submission received",
		zap.String("reference", sub.Reference),
		zap.String("service", sub.Form.Service),
		zap.String("lang", sub.Lang),
		zap.Int("message_length", len(sub.Form.Message)),
	)
	return nil
}

// MailClient is the part of the Mailgun SDK used for delivery.
type MailClient interface {
	NewMessage(from, subject, text string, to ...string) *mailgun.Message
	Send(ctx context.Context, m *mailgun.Message) (string, string, error)
}

// MailgunNotifier emails each submission to a fixed recipient.
type MailgunNotifier struct {
	client    MailClient
	from      string
	recipient string
	timeout   time.Duration
}

const defaultSendTimeout = 10 * time.Second

// NewMailgunNotifier builds a notifier backed by the Mailgun API for domain.
func NewMailgunNotifier(domain, apiKey, from, recipient string) *MailgunNotifier {
	return NewMailgunNotifierWithClient(mailgun.NewMailgun(domain, apiKey), from, recipient)
}

func NewMailgunNotifierWithClient(client MailClient, from, recipient string) *MailgunNotifier {
	return &MailgunNotifier{client: client, from: from, recipient: recipient, timeout: defaultSendTimeout}
}

// WithTimeout sets how long one send may take. Non-positive values keep the default.
func (n *MailgunNotifier) WithTimeout(d time.Duration) *MailgunNotifier {
	if d > 0 {
		n.timeout = d
	}
	return n
}

func (n *MailgunNotifier) Notify(ctx context.Context, sub Submission) error {
	msg := n.client.NewMessage(n.from, subject(sub), body(sub), n.recipient)
	msg.SetReplyTo(fmt.Sprintf("%s <%s>", sub.Form.Name, sub.Form.Email))
	_ = msg.AddTag("contact")

	sendCtx, cancel := context.WithTimeout(ctx, n.timeout)
	defer cancel()
	_, id, err := n.client.Send(sendCtx, msg)
	if err != nil {
		return fmt.Errorf("mailgun send: %w", err)
	}
	observability.FromContext(ctx).Info("contact submission mailed",
		zap.String("reference", sub.Reference),
		zap.String("message_id", id),
	)
	return nil
}

func subject(sub Submission) string {
	service := sub.Form.Service
	if service == "" {
		service = "general"
	}
	return fmt.Sprintf("[%s] Enquiry from %s (%s)", sub.Reference, sub.Form.Name, service)
}

func body(sub Submission) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Reference: %s\n", sub.Reference)
	fmt.Fprintf(&b, "Received: %s\n", sub.ReceivedAt.Format(time.RFC3339))
	fmt.Fprintf(&b, "Name: %s\n", sub.Form.Name)
	fmt.Fprintf(&b, "Email: %s\n", sub.Form.Email)
	if sub.Form.Service != "" {
		fmt.Fprintf(&b, "Service: %s\n", sub.Form.Service)
	}
	if sub.Lang != "" {
		fmt.Fprintf(&b, "Language: %s\n", sub.Lang)
	}
	b.WriteString("\n")
	b.WriteString(sub.Form.Message)
	b.WriteString("\n")
	return b.String()
}
