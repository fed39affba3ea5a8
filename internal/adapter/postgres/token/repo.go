// Package token implements the PasswordResetToken repository using PostgreSQL.
package token

import (
	"context"
	"fmt"
	"time"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/campusdesk-backend/internal/adapter/postgres"
	"github.com/heartmarshall/campusdesk-backend/internal/domain"
)

const columns = "id, user_id, token_hash, expires_at, created_at, used_at"

// Repo provides password-reset-token persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new token repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

type row struct {
	ID        uuid.UUID  `db:"id"`
	UserID    uuid.UUID  `db:"user_id"`
	TokenHash string     `db:"token_hash"`
	ExpiresAt time.Time  `db:"expires_at"`
	CreatedAt time.Time  `db:"created_at"`
	UsedAt    *time.Time `db:"used_at"`
}

// Create inserts a new reset token. Only the hash is stored.
func (r *Repo) Create(ctx context.Context, t domain.PasswordResetToken) (domain.PasswordResetToken, error) {
	var rw row
	err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.pool), &rw,
		`INSERT INTO password_reset_tokens (id, user_id, token_hash, expires_at, created_at)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING `+columns,
		t.ID, t.UserID, t.TokenHash, t.ExpiresAt, t.CreatedAt,
	)
	if err != nil {
		return domain.PasswordResetToken{}, postgres.MapError(err, "password_reset_token", t.UserID)
	}
	return toDomain(rw), nil
}

// GetByHash returns an unused, unexpired token by its hash.
// Returns domain.ErrNotFound otherwise.
func (r *Repo) GetByHash(ctx context.Context, hash string, now time.Time) (domain.PasswordResetToken, error) {
	var rw row
	err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.pool), &rw,
		`SELECT `+columns+` FROM password_reset_tokens
		 WHERE token_hash = $1 AND used_at IS NULL AND expires_at > $2`,
		hash, now,
	)
	if err != nil {
		return domain.PasswordResetToken{}, postgres.MapError(err, "password_reset_token", "hash")
	}
	return toDomain(rw), nil
}

// InvalidateByUser marks every outstanding token of a user as used, so that
// only the most recently issued link works.
func (r *Repo) InvalidateByUser(ctx context.Context, userID uuid.UUID, at time.Time) (int64, error) {
	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx,
		`UPDATE password_reset_tokens SET used_at = $2 WHERE user_id = $1 AND used_at IS NULL`,
		userID, at,
	)
	if err != nil {
		return 0, postgres.MapError(err, "password_reset_token", userID)
	}
	return tag.RowsAffected(), nil
}

// DeleteExpired removes tokens that expired or were used before now.
// May delete many records; does not use a transaction.
func (r *Repo) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx,
		`DELETE FROM password_reset_tokens WHERE expires_at <= $1 OR used_at IS NOT NULL`,
		now,
	)
	if err != nil {
		return 0, fmt.Errorf("delete expired reset tokens: %w", err)
	}
	return tag.RowsAffected(), nil
}

func toDomain(rw row) domain.PasswordResetToken {
	return domain.PasswordResetToken{
		ID:        rw.ID,
		UserID:    rw.UserID,
		TokenHash: rw.TokenHash,
		ExpiresAt: rw.ExpiresAt,
		CreatedAt: rw.CreatedAt,
		UsedAt:    rw.UsedAt,
	}
}
