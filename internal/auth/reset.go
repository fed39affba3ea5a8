package auth

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/campusdesk-backend/internal/domain"
)

// resetTokenRepo stores hashed reset tokens.
type resetTokenRepo interface {
	Create(ctx context.Context, t domain.PasswordResetToken) (domain.PasswordResetToken, error)
	InvalidateByUser(ctx context.Context, userID uuid.UUID, at time.Time) (int64, error)
}

// resetMailer hands the reset link to the user.
type resetMailer interface {
	SendPasswordReset(ctx context.Context, u domain.User, link string, expiresAt time.Time) error
}

// ResetIssuer issues one-time password reset links. Only the SHA-256 hash of
// a token is stored; the raw value leaves the process in the link alone.
type ResetIssuer struct {
	log     *slog.Logger
	tokens  resetTokenRepo
	mailer  resetMailer
	ttl     time.Duration
	urlBase string
	now     func() time.Time
}

// NewResetIssuer creates a reset issuer. urlBase is the page that accepts
// the token, e.g. https://console.campus.edu/reset-password.
func NewResetIssuer(logger *slog.Logger, tokens resetTokenRepo, mailer resetMailer, ttl time.Duration, urlBase string) *ResetIssuer {
	return &ResetIssuer{
		log:     logger.With("component", "password_reset"),
		tokens:  tokens,
		mailer:  mailer,
		ttl:     ttl,
		urlBase: urlBase,
		now:     func() time.Time { return time.Now().UTC() },
	}
}

// IssueReset invalidates outstanding tokens of u, stores a fresh one and
// mails the link. When ctx carries a transaction the token commits with it.
func (r *ResetIssuer) IssueReset(ctx context.Context, u domain.User) (time.Time, error) {
	raw, hash, err := GenerateOpaqueToken()
	if err != nil {
		return time.Time{}, fmt.Errorf("auth.IssueReset: %w", err)
	}

	now := r.now()
	if _, err := r.tokens.InvalidateByUser(ctx, u.ID, now); err != nil {
		return time.Time{}, fmt.Errorf("auth.IssueReset: invalidate previous: %w", err)
	}

	tok, err := r.tokens.Create(ctx, domain.PasswordResetToken{
		ID:        uuid.New(),
		UserID:    u.ID,
		TokenHash: hash,
		ExpiresAt: now.Add(r.ttl),
		CreatedAt: now,
	})
	if err != nil {
		return time.Time{}, fmt.Errorf("auth.IssueReset: store token: %w", err)
	}

	link, err := r.link(raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("auth.IssueReset: %w", err)
	}
	if err := r.mailer.SendPasswordReset(ctx, u, link, tok.ExpiresAt); err != nil {
		return time.Time{}, fmt.Errorf("auth.IssueReset: send: %w", err)
	}

	r.log.InfoContext(ctx, "password reset issued",
		slog.String("user_id", u.ID.String()),
		slog.Time("expires_at", tok.ExpiresAt),
	)
	return tok.ExpiresAt, nil
}

func (r *ResetIssuer) link(raw string) (string, error) {
	u, err := url.Parse(r.urlBase)
	if err != nil {
		return "", fmt.Errorf("parse reset url base: %w", err)
	}
	q := u.Query()
	q.Set("token", raw)
	u.RawQuery = q.Encode()
	return u.String(), nil
}
