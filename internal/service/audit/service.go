// Package audit records and reads the per-entity lifecycle history.
// Events are only ever appended.
package audit

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/heartmarshall/campusdesk-backend/internal/domain"
	"github.com/heartmarshall/campusdesk-backend/pkg/ids"
)

const maxMessageLen = 2000

// auditRepo defines the persistence the audit service needs.
type auditRepo interface {
	Append(ctx context.Context, e domain.AuditEvent) error
	ListByEntity(ctx context.Context, ref domain.EntityRef) ([]domain.AuditEvent, error)
}

// Service appends and reads audit events.
type Service struct {
	log  *slog.Logger
	repo auditRepo
	now  func() time.Time
}

// NewService creates a new audit service.
func NewService(logger *slog.Logger, repo auditRepo) *Service {
	return &Service{
		log:  logger.With("service", "audit"),
		repo: repo,
		now:  func() time.Time { return time.Now().UTC() },
	}
}

// Append records one event for ref. When ctx carries a transaction the event
// commits or rolls back together with the mutation it describes.
func (s *Service) Append(ctx context.Context, ref domain.EntityRef, action domain.AuditAction, by domain.Actor, message string) (domain.AuditEvent, error) {
	message = strings.TrimSpace(message)

	var errs []domain.FieldError
	if !ref.Type.IsValid() {
		errs = append(errs, domain.FieldError{Field: "entity_type", Message: "unknown entity type"})
	}
	if !action.IsValid() {
		errs = append(errs, domain.FieldError{Field: "action", Message: "unknown action"})
	}
	if message == "" {
		errs = append(errs, domain.FieldError{Field: "message", Message: "required"})
	} else if len(message) > maxMessageLen {
		errs = append(errs, domain.FieldError{Field: "message", Message: "too long"})
	}
	if len(errs) > 0 {
		return domain.AuditEvent{}, domain.NewValidationErrors(errs)
	}

	at := s.now()
	e := domain.AuditEvent{
		ID:      ids.NewAt(at),
		Entity:  ref,
		Action:  action,
		Message: message,
		By:      by,
		At:      at,
	}
	if err := s.repo.Append(ctx, e); err != nil {
		return domain.AuditEvent{}, fmt.Errorf("audit.Append: %w", err)
	}

	s.log.DebugContext(ctx, "audit event appended",
		slog.String("entity_type", ref.Type.String()),
		slog.String("entity_id", ref.ID.String()),
		slog.String("action", action.String()),
		slog.String("event_id", e.ID),
	)
	return e, nil
}

// History returns every event of ref, oldest first.
func (s *Service) History(ctx context.Context, ref domain.EntityRef) ([]domain.AuditEvent, error) {
	if !ref.Type.IsValid() {
		return nil, domain.NewValidationError("entity_type", "unknown entity type")
	}

	events, err := s.repo.ListByEntity(ctx, ref)
	if err != nil {
		return nil, fmt.Errorf("audit.History: %w", err)
	}
	return events, nil
}
