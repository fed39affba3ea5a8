// Package mailer delivers account emails. The console mailer writes the
// rendered message to the structured log instead of an SMTP relay.
package mailer

import (
	"context"
	"fmt"
	"log/slog"
	"net/mail"
	"strings"
	"sync"
	"time"

	"github.com/heartmarshall/campusdesk-backend/internal/domain"
)

// Message is a rendered plain-text email.
type Message struct {
	To      mail.Address
	Subject string
	Body    string
	SentAt  time.Time
}

// Console logs messages and keeps the last ones in memory for inspection.
type Console struct {
	log        *slog.Logger
	subjPrefix string

	mu   sync.Mutex
	sent []Message
}

// NewConsole creates a console mailer. appName prefixes every subject.
func NewConsole(logger *slog.Logger, appName string) *Console {
	return &Console{
		log:        logger.With("component", "mailer"),
		subjPrefix: "[" + appName + "] ",
	}
}

// SendPasswordReset delivers a reset link to u.
func (c *Console) SendPasswordReset(ctx context.Context, u domain.User, link string, expiresAt time.Time) error {
	if link == "" {
		return fmt.Errorf("mailer.SendPasswordReset: empty link")
	}

	body := new(strings.Builder)
	fmt.Fprintf(body, "Hello %s,\n\n", u.Name)
	fmt.Fprintf(body, "An administrator requested a password reset for your account.\n")
	fmt.Fprintf(body, "Open the link below to choose a new password:\n\n%s\n\n", link)
	fmt.Fprintf(body, "The link expires at %s.\n", expiresAt.UTC().Format(time.RFC1123))

	msg := Message{
		To:      mail.Address{Name: u.Name, Address: u.Email},
		Subject: c.subjPrefix + "Reset your password",
		Body:    body.String(),
		SentAt:  time.Now().UTC(),
	}

	c.mu.Lock()
	c.sent = append(c.sent, msg)
	c.mu.Unlock()

	c.log.InfoContext(ctx, "email sent",
		slog.String("to", msg.To.String()),
		slog.String("subject", msg.Subject),
		slog.String("body", msg.Body),
	)
	return nil
}

// Sent returns a copy of the delivered messages.
func (c *Console) Sent() []Message {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Message, len(c.sent))
	copy(out, c.sent)
	return out
}
