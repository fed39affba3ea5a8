// Package opportunity implements the Opportunity repository using PostgreSQL.
package opportunity

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/campusdesk-backend/internal/adapter/postgres"
	"github.com/heartmarshall/campusdesk-backend/internal/domain"
)

const (
	columns = "id, title, type, tags, posted_by, approved, posted_at, updated_at"

	defaultLimit = 50
	maxLimit     = 500
)

// Repo provides opportunity persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new opportunity repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

type row struct {
	ID        uuid.UUID `db:"id"`
	Title     string    `db:"title"`
	Type      string    `db:"type"`
	Tags      []string  `db:"tags"`
	PostedBy  uuid.UUID `db:"posted_by"`
	Approved  bool      `db:"approved"`
	PostedAt  time.Time `db:"posted_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// GetByID returns an opportunity by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (domain.Opportunity, error) {
	return r.getOne(ctx, id, `SELECT `+columns+` FROM opportunities WHERE id = $1`)
}

// GetForUpdate returns an opportunity and locks its row for the surrounding transaction.
func (r *Repo) GetForUpdate(ctx context.Context, id uuid.UUID) (domain.Opportunity, error) {
	return r.getOne(ctx, id, `SELECT `+columns+` FROM opportunities WHERE id = $1 FOR UPDATE`)
}

func (r *Repo) getOne(ctx context.Context, id uuid.UUID, sql string) (domain.Opportunity, error) {
	var rw row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.pool), &rw, sql, id); err != nil {
		return domain.Opportunity{}, postgres.MapError(err, "opportunity", id)
	}
	return toDomain(rw), nil
}

// List returns opportunities matching the filter, newest first, plus the total count.
func (r *Repo) List(ctx context.Context, f domain.OpportunityFilter) ([]domain.Opportunity, int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	where := squirrel.And{}
	if f.Type != nil {
		where = append(where, squirrel.Expr("lower(type) = lower(?)", *f.Type))
	}
	if f.Approved != nil {
		where = append(where, squirrel.Eq{"approved": *f.Approved})
	}
	if f.PostedAfter != nil {
		where = append(where, squirrel.Gt{"posted_at": *f.PostedAfter})
	}

	total, err := postgres.Count(ctx, q, postgres.Builder().Select("count(*)").From("opportunities").Where(where))
	if err != nil {
		return nil, 0, fmt.Errorf("count opportunities: %w", err)
	}

	sel := postgres.Builder().Select(columns).From("opportunities").Where(where).OrderBy("posted_at DESC", "id")
	sel = postgres.Paginate(sel, f.Limit, f.Offset, defaultLimit, maxLimit)

	var rows []row
	if err := postgres.SelectAll(ctx, q, &rows, sel); err != nil {
		return nil, 0, fmt.Errorf("list opportunities: %w", err)
	}

	out := make([]domain.Opportunity, len(rows))
	for i, rw := range rows {
		out[i] = toDomain(rw)
	}
	return out, total, nil
}

// CountPostedBefore counts opportunities posted before cutoff.
func (r *Repo) CountPostedBefore(ctx context.Context, cutoff time.Time) (int, error) {
	n, err := postgres.Count(ctx, postgres.QuerierFromCtx(ctx, r.pool),
		postgres.Builder().Select("count(*)").From("opportunities").Where(squirrel.Lt{"posted_at": cutoff}))
	if err != nil {
		return 0, fmt.Errorf("count expired opportunities: %w", err)
	}
	return n, nil
}

// Create inserts a new opportunity.
func (r *Repo) Create(ctx context.Context, o domain.Opportunity) (domain.Opportunity, error) {
	tags := o.Tags
	if tags == nil {
		tags = []string{}
	}

	var rw row
	err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.pool), &rw,
		`INSERT INTO opportunities (id, title, type, tags, posted_by, approved, posted_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING `+columns,
		o.ID, o.Title, o.Type, tags, o.PostedBy, o.Approved, o.PostedAt, o.UpdatedAt,
	)
	if err != nil {
		return domain.Opportunity{}, postgres.MapError(err, "opportunity", o.ID)
	}
	return toDomain(rw), nil
}

// UpdateApproval persists the approval flag of o.
func (r *Repo) UpdateApproval(ctx context.Context, o domain.Opportunity) (domain.Opportunity, error) {
	var rw row
	err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.pool), &rw,
		`UPDATE opportunities SET approved = $2, updated_at = $3 WHERE id = $1 RETURNING `+columns,
		o.ID, o.Approved, o.UpdatedAt,
	)
	if err != nil {
		return domain.Opportunity{}, postgres.MapError(err, "opportunity", o.ID)
	}
	return toDomain(rw), nil
}

func toDomain(rw row) domain.Opportunity {
	return domain.Opportunity{
		ID:        rw.ID,
		Title:     rw.Title,
		Type:      rw.Type,
		Tags:      rw.Tags,
		PostedBy:  rw.PostedBy,
		Approved:  rw.Approved,
		PostedAt:  rw.PostedAt,
		UpdatedAt: rw.UpdatedAt,
	}
}
