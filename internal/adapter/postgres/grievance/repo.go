// Package grievance implements the Grievance repository using PostgreSQL.
package grievance

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
	columns = "id, title, description, category, priority, status, raised_by, created_at, updated_at, resolved_at, escalated_at"

	defaultLimit = 50
	maxLimit     = 500
)

// Repo provides grievance persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new grievance repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

type row struct {
	ID          uuid.UUID  `db:"id"`
	Title       string     `db:"title"`
	Description string     `db:"description"`
	Category    string     `db:"category"`
	Priority    string     `db:"priority"`
	Status      string     `db:"status"`
	RaisedBy    uuid.UUID  `db:"raised_by"`
	CreatedAt   time.Time  `db:"created_at"`
	UpdatedAt   time.Time  `db:"updated_at"`
	ResolvedAt  *time.Time `db:"resolved_at"`
	EscalatedAt *time.Time `db:"escalated_at"`
}

// GetByID returns a grievance by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (domain.Grievance, error) {
	return r.getOne(ctx, id, `SELECT `+columns+` FROM grievances WHERE id = $1`)
}

// GetForUpdate returns a grievance and locks its row for the surrounding transaction.
func (r *Repo) GetForUpdate(ctx context.Context, id uuid.UUID) (domain.Grievance, error) {
	return r.getOne(ctx, id, `SELECT `+columns+` FROM grievances WHERE id = $1 FOR UPDATE`)
}

func (r *Repo) getOne(ctx context.Context, id uuid.UUID, sql string) (domain.Grievance, error) {
	var rw row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.pool), &rw, sql, id); err != nil {
		return domain.Grievance{}, postgres.MapError(err, "grievance", id)
	}
	return toDomain(rw), nil
}

// List returns grievances matching the filter, newest first, plus the total count.
func (r *Repo) List(ctx context.Context, f domain.GrievanceFilter) ([]domain.Grievance, int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)
	where := buildWhere(f)

	total, err := postgres.Count(ctx, q, postgres.Builder().Select("count(*)").From("grievances").Where(where))
	if err != nil {
		return nil, 0, fmt.Errorf("count grievances: %w", err)
	}

	sel := postgres.Builder().Select(columns).From("grievances").Where(where).OrderBy("created_at DESC", "id")
	sel = postgres.Paginate(sel, f.Limit, f.Offset, defaultLimit, maxLimit)

	var rows []row
	if err := postgres.SelectAll(ctx, q, &rows, sel); err != nil {
		return nil, 0, fmt.Errorf("list grievances: %w", err)
	}
	return toDomainList(rows), total, nil
}

func buildWhere(f domain.GrievanceFilter) squirrel.And {
	where := squirrel.And{}
	if f.Status != nil {
		where = append(where, squirrel.Eq{"status": string(*f.Status)})
	}
	if f.Priority != nil {
		where = append(where, squirrel.Eq{"priority": string(*f.Priority)})
	}
	if f.Category != nil {
		where = append(where, squirrel.Expr("lower(category) = lower(?)", *f.Category))
	}
	if f.RaisedBy != nil {
		where = append(where, squirrel.Eq{"raised_by": *f.RaisedBy})
	}
	if f.OpenOnly {
		where = append(where, squirrel.Eq{"status": []string{
			string(domain.GrievanceStatusOpen), string(domain.GrievanceStatusInProgress),
		}})
	}
	return where
}

// slaDeadlineExpr is created_at plus the priority's SLA window. The three
// placeholders take the HIGH, LOW and MEDIUM windows in days.
const slaDeadlineExpr = `created_at + (CASE priority WHEN 'HIGH' THEN ?::int WHEN 'LOW' THEN ?::int ELSE ?::int END) * interval '24 hours'`

// ListEscalationDue returns open, never escalated grievances whose SLA
// deadline under p lies before now, earliest deadline first. Grievances that
// are not yet due never take a slot in the batch.
func (r *Repo) ListEscalationDue(ctx context.Context, p domain.GrievancePolicy, now time.Time, limit int) ([]domain.Grievance, error) {
	windows := []any{p.SLAHigh, p.SLALow, p.SLAMedium}

	sel := postgres.Builder().Select(columns).From("grievances").
		Where(squirrel.Eq{"status": []string{
			string(domain.GrievanceStatusOpen), string(domain.GrievanceStatusInProgress),
		}}).
		Where(squirrel.Eq{"escalated_at": nil}).
		Where(squirrel.Expr(slaDeadlineExpr+" < ?", p.SLAHigh, p.SLALow, p.SLAMedium, now)).
		OrderByClause(squirrel.Expr(slaDeadlineExpr, windows...)).
		OrderBy("id").
		Limit(uint64(limit))

	var rows []row
	if err := postgres.SelectAll(ctx, postgres.QuerierFromCtx(ctx, r.pool), &rows, sel); err != nil {
		return nil, fmt.Errorf("list escalation due: %w", err)
	}
	return toDomainList(rows), nil
}

// ListResolvedBefore returns RESOLVED grievances resolved before cutoff, oldest first.
func (r *Repo) ListResolvedBefore(ctx context.Context, cutoff time.Time, limit int) ([]domain.Grievance, error) {
	sel := postgres.Builder().Select(columns).From("grievances").
		Where(squirrel.Eq{"status": string(domain.GrievanceStatusResolved)}).
		Where(squirrel.Lt{"resolved_at": cutoff}).
		OrderBy("resolved_at", "id").
		Limit(uint64(limit))

	var rows []row
	if err := postgres.SelectAll(ctx, postgres.QuerierFromCtx(ctx, r.pool), &rows, sel); err != nil {
		return nil, fmt.Errorf("list resolved grievances: %w", err)
	}
	return toDomainList(rows), nil
}

// Create inserts a new grievance.
func (r *Repo) Create(ctx context.Context, g domain.Grievance) (domain.Grievance, error) {
	var rw row
	err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.pool), &rw,
		`INSERT INTO grievances (id, title, description, category, priority, status, raised_by, created_at, updated_at, resolved_at, escalated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		 RETURNING `+columns,
		g.ID, g.Title, g.Description, g.Category, string(g.Priority), string(g.Status),
		g.RaisedBy, g.CreatedAt, g.UpdatedAt, g.ResolvedAt, g.EscalatedAt,
	)
	if err != nil {
		return domain.Grievance{}, postgres.MapError(err, "grievance", g.ID)
	}
	return toDomain(rw), nil
}

// Update persists the lifecycle columns of g.
func (r *Repo) Update(ctx context.Context, g domain.Grievance) (domain.Grievance, error) {
	var rw row
	err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.pool), &rw,
		`UPDATE grievances
		 SET status = $2, updated_at = $3, resolved_at = $4, escalated_at = $5
		 WHERE id = $1
		 RETURNING `+columns,
		g.ID, string(g.Status), g.UpdatedAt, g.ResolvedAt, g.EscalatedAt,
	)
	if err != nil {
		return domain.Grievance{}, postgres.MapError(err, "grievance", g.ID)
	}
	return toDomain(rw), nil
}

func toDomainList(rows []row) []domain.Grievance {
	out := make([]domain.Grievance, len(rows))
	for i, rw := range rows {
		out[i] = toDomain(rw)
	}
	return out
}

func toDomain(rw row) domain.Grievance {
	return domain.Grievance{
		ID:          rw.ID,
		Title:       rw.Title,
		Description: rw.Description,
		Category:    rw.Category,
		Priority:    domain.GrievancePriority(rw.Priority),
		Status:      domain.GrievanceStatus(rw.Status),
		RaisedBy:    rw.RaisedBy,
		CreatedAt:   rw.CreatedAt,
		UpdatedAt:   rw.UpdatedAt,
		ResolvedAt:  rw.ResolvedAt,
		EscalatedAt: rw.EscalatedAt,
	}
}
