// Package audit implements the audit trail repository using PostgreSQL.
// It provides append-only operations: events are inserted and read back,
// never updated or deleted (a trigger on audit_events enforces this).
package audit

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

// Repo provides audit event persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new audit repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

type row struct {
	Seq        int64     `db:"seq"`
	ID         string    `db:"id"`
	EntityType string    `db:"entity_type"`
	EntityID   uuid.UUID `db:"entity_id"`
	Action     string    `db:"action"`
	Message    string    `db:"message"`
	ActorID    uuid.UUID `db:"actor_id"`
	ActorName  string    `db:"actor_name"`
	ActorRole  string    `db:"actor_role"`
	CreatedAt  time.Time `db:"created_at"`
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Append inserts one event. The seq column assigned by the database fixes
// its position in the owner's history.
func (r *Repo) Append(ctx context.Context, e domain.AuditEvent) error {
	_, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx,
		`INSERT INTO audit_events (id, entity_type, entity_id, action, message, actor_id, actor_name, actor_role, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		e.ID, string(e.Entity.Type), e.Entity.ID, string(e.Action), e.Message,
		e.By.ID, e.By.Name, string(e.By.Role), e.At,
	)
	if err != nil {
		return postgres.MapError(err, "audit_event", e.ID)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// ListByEntity returns the full history of one entity in insertion order.
func (r *Repo) ListByEntity(ctx context.Context, ref domain.EntityRef) ([]domain.AuditEvent, error) {
	var rows []row
	err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.pool), &rows,
		`SELECT seq, id, entity_type, entity_id, action, message, actor_id, actor_name, actor_role, created_at
		 FROM audit_events
		 WHERE entity_type = $1 AND entity_id = $2
		 ORDER BY seq`,
		string(ref.Type), ref.ID,
	)
	if err != nil {
		return nil, fmt.Errorf("list audit_events for %s %s: %w", ref.Type, ref.ID, err)
	}

	events := make([]domain.AuditEvent, len(rows))
	for i, rw := range rows {
		events[i] = toDomain(rw)
	}
	return events, nil
}

func toDomain(rw row) domain.AuditEvent {
	return domain.AuditEvent{
		ID:      rw.ID,
		Entity:  domain.EntityRef{Type: domain.EntityType(rw.EntityType), ID: rw.EntityID},
		Action:  domain.AuditAction(rw.Action),
		Message: rw.Message,
		By: domain.Actor{
			ID:   rw.ActorID,
			Name: rw.ActorName,
			Role: domain.UserRole(rw.ActorRole),
		},
		At: rw.CreatedAt,
	}
}
