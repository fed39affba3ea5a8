// Package user implements the User repository using PostgreSQL.
package user

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/campusdesk-backend/internal/adapter/postgres"
	"github.com/heartmarshall/campusdesk-backend/internal/domain"
)

const (
	columns = "id, name, email, role, status, department, meta, created_at, updated_at"

	defaultLimit = 50
	maxLimit     = 200
)

// Repo provides user persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new user repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

type row struct {
	ID         uuid.UUID `db:"id"`
	Name       string    `db:"name"`
	Email      string    `db:"email"`
	Role       string    `db:"role"`
	Status     string    `db:"status"`
	Department string    `db:"department"`
	Meta       []byte    `db:"meta"`
	CreatedAt  time.Time `db:"created_at"`
	UpdatedAt  time.Time `db:"updated_at"`
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a user by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (domain.User, error) {
	return r.getOne(ctx, id, `SELECT `+columns+` FROM users WHERE id = $1`, id)
}

// GetForUpdate returns a user and locks the row until the surrounding
// transaction ends. Must be called inside TxManager.RunInTx.
func (r *Repo) GetForUpdate(ctx context.Context, id uuid.UUID) (domain.User, error) {
	return r.getOne(ctx, id, `SELECT `+columns+` FROM users WHERE id = $1 FOR UPDATE`, id)
}

// GetByEmail returns a user by email address (case-insensitive).
func (r *Repo) GetByEmail(ctx context.Context, email string) (domain.User, error) {
	return r.getOne(ctx, email, `SELECT `+columns+` FROM users WHERE lower(email) = lower($1)`, email)
}

func (r *Repo) getOne(ctx context.Context, key any, sql string, args ...any) (domain.User, error) {
	var rw row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.pool), &rw, sql, args...); err != nil {
		return domain.User{}, postgres.MapError(err, "user", key)
	}
	return toDomain(rw)
}

// List returns users matching the filter, newest first, plus the total count
// ignoring pagination. DELETED users are excluded unless IncludeDeleted is
// set or the filter asks for that status explicitly.
func (r *Repo) List(ctx context.Context, f domain.UserFilter) ([]domain.User, int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)
	where := buildWhere(f)

	total, err := postgres.Count(ctx, q, postgres.Builder().Select("count(*)").From("users").Where(where))
	if err != nil {
		return nil, 0, fmt.Errorf("count users: %w", err)
	}

	sel := postgres.Builder().Select(columns).From("users").Where(where).OrderBy("created_at DESC", "id")
	sel = postgres.Paginate(sel, f.Limit, f.Offset, defaultLimit, maxLimit)

	var rows []row
	if err := postgres.SelectAll(ctx, q, &rows, sel); err != nil {
		return nil, 0, fmt.Errorf("list users: %w", err)
	}

	users := make([]domain.User, 0, len(rows))
	for _, rw := range rows {
		u, err := toDomain(rw)
		if err != nil {
			return nil, 0, err
		}
		users = append(users, u)
	}
	return users, total, nil
}

func buildWhere(f domain.UserFilter) squirrel.And {
	where := squirrel.And{}
	if f.Search != nil && strings.TrimSpace(*f.Search) != "" {
		pattern := postgres.ContainsPattern(strings.TrimSpace(*f.Search))
		where = append(where, squirrel.Or{
			squirrel.Expr(`name ILIKE ? ESCAPE '\'`, pattern),
			squirrel.Expr(`email ILIKE ? ESCAPE '\'`, pattern),
		})
	}
	if f.Role != nil {
		where = append(where, squirrel.Eq{"role": string(*f.Role)})
	}
	if f.Department != nil {
		where = append(where, squirrel.Eq{"department": *f.Department})
	}
	switch {
	case f.Status != nil:
		where = append(where, squirrel.Eq{"status": string(*f.Status)})
	case !f.IncludeDeleted:
		where = append(where, squirrel.NotEq{"status": string(domain.UserStatusDeleted)})
	}
	return where
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new user and returns the persisted domain.User.
func (r *Repo) Create(ctx context.Context, u domain.User) (domain.User, error) {
	meta, err := json.Marshal(u.Meta)
	if err != nil {
		return domain.User{}, fmt.Errorf("user %s marshal meta: %w", u.ID, err)
	}

	var rw row
	err = pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.pool), &rw,
		`INSERT INTO users (id, name, email, role, status, department, meta, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		 RETURNING `+columns,
		u.ID, u.Name, u.Email, string(u.Role), string(u.Status), u.Department, meta, u.CreatedAt, u.UpdatedAt,
	)
	if err != nil {
		return domain.User{}, postgres.MapError(err, "user", u.ID)
	}
	return toDomain(rw)
}

// Update persists every mutable column of u. Email and created_at are immutable.
func (r *Repo) Update(ctx context.Context, u domain.User) (domain.User, error) {
	meta, err := json.Marshal(u.Meta)
	if err != nil {
		return domain.User{}, fmt.Errorf("user %s marshal meta: %w", u.ID, err)
	}

	var rw row
	err = pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.pool), &rw,
		`UPDATE users
		 SET name = $2, role = $3, status = $4, department = $5, meta = $6, updated_at = $7
		 WHERE id = $1
		 RETURNING `+columns,
		u.ID, u.Name, string(u.Role), string(u.Status), u.Department, meta, u.UpdatedAt,
	)
	if err != nil {
		return domain.User{}, postgres.MapError(err, "user", u.ID)
	}
	return toDomain(rw)
}

// ---------------------------------------------------------------------------
// Mapping helpers
// ---------------------------------------------------------------------------

func toDomain(rw row) (domain.User, error) {
	u := domain.User{
		ID:         rw.ID,
		Name:       rw.Name,
		Email:      rw.Email,
		Role:       domain.UserRole(rw.Role),
		Status:     domain.UserStatus(rw.Status),
		Department: rw.Department,
		CreatedAt:  rw.CreatedAt,
		UpdatedAt:  rw.UpdatedAt,
	}
	if len(rw.Meta) > 0 {
		if err := json.Unmarshal(rw.Meta, &u.Meta); err != nil {
			return domain.User{}, fmt.Errorf("user %s unmarshal meta: %w", rw.ID, err)
		}
	}
	return u, nil
}
