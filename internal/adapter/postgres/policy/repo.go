// Package policy implements the policy section repository using PostgreSQL.
// Each section is one row keyed by name with its own version counter.
package policy

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/campusdesk-backend/internal/adapter/postgres"
	"github.com/heartmarshall/campusdesk-backend/internal/domain"
)

const columns = "section, document, version, updated_at, updated_by"

// Repo provides policy section persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new policy section repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

type row struct {
	Section   string     `db:"section"`
	Document  []byte     `db:"document"`
	Version   int        `db:"version"`
	UpdatedAt time.Time  `db:"updated_at"`
	UpdatedBy *uuid.UUID `db:"updated_by"`
}

// Get returns the stored section.
func (r *Repo) Get(ctx context.Context, section domain.PolicySection) (domain.PolicyRecord, error) {
	return r.getOne(ctx, section, `SELECT `+columns+` FROM policy_sections WHERE section = $1`)
}

// GetForUpdate returns the stored section and locks its row until the
// surrounding transaction ends. Writers of other sections are not blocked.
func (r *Repo) GetForUpdate(ctx context.Context, section domain.PolicySection) (domain.PolicyRecord, error) {
	return r.getOne(ctx, section, `SELECT `+columns+` FROM policy_sections WHERE section = $1 FOR UPDATE`)
}

func (r *Repo) getOne(ctx context.Context, section domain.PolicySection, sql string) (domain.PolicyRecord, error) {
	var rw row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.pool), &rw, sql, string(section)); err != nil {
		return domain.PolicyRecord{}, postgres.MapError(err, "policy section", section)
	}
	return toDomain(rw)
}

// InsertIfAbsent stores rec unless the section already exists.
// Reports whether a row was inserted.
func (r *Repo) InsertIfAbsent(ctx context.Context, rec domain.PolicyRecord) (bool, error) {
	doc, err := json.Marshal(rec.Document)
	if err != nil {
		return false, fmt.Errorf("policy section %s marshal: %w", rec.Section, err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx,
		`INSERT INTO policy_sections (section, document, version, updated_at, updated_by)
		 VALUES ($1, $2, $3, $4, $5)
		 ON CONFLICT (section) DO NOTHING`,
		string(rec.Section), doc, rec.Version, rec.UpdatedAt, rec.UpdatedBy,
	)
	if err != nil {
		return false, postgres.MapError(err, "policy section", rec.Section)
	}
	return tag.RowsAffected() == 1, nil
}

// Save overwrites the stored section with rec (document, version and
// attribution) and returns the persisted record.
func (r *Repo) Save(ctx context.Context, rec domain.PolicyRecord) (domain.PolicyRecord, error) {
	doc, err := json.Marshal(rec.Document)
	if err != nil {
		return domain.PolicyRecord{}, fmt.Errorf("policy section %s marshal: %w", rec.Section, err)
	}

	var rw row
	err = pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.pool), &rw,
		`UPDATE policy_sections
		 SET document = $2, version = $3, updated_at = $4, updated_by = $5
		 WHERE section = $1
		 RETURNING `+columns,
		string(rec.Section), doc, rec.Version, rec.UpdatedAt, rec.UpdatedBy,
	)
	if err != nil {
		return domain.PolicyRecord{}, postgres.MapError(err, "policy section", rec.Section)
	}
	return toDomain(rw)
}

func toDomain(rw row) (domain.PolicyRecord, error) {
	doc := domain.PolicyDocument{}
	if err := json.Unmarshal(rw.Document, &doc); err != nil {
		return domain.PolicyRecord{}, fmt.Errorf("policy section %s unmarshal: %w", rw.Section, err)
	}
	return domain.PolicyRecord{
		Section:   domain.PolicySection(rw.Section),
		Document:  doc,
		Version:   rw.Version,
		UpdatedAt: rw.UpdatedAt,
		UpdatedBy: rw.UpdatedBy,
	}, nil
}
