package admin

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/campusdesk-backend/internal/domain"
	"github.com/heartmarshall/campusdesk-backend/internal/lifecycle"
)

// ChangeGrievanceStatus moves a grievance along its workflow. note, when
// given, is appended to the audit message.
func (s *Service) ChangeGrievanceStatus(ctx context.Context, id uuid.UUID, to domain.GrievanceStatus, note string, actor domain.Actor) (domain.GrievanceView, error) {
	if err := requireHandler(actor); err != nil {
		return domain.GrievanceView{}, err
	}

	policy, err := s.policies.GrievancePolicy(ctx)
	if err != nil {
		return domain.GrievanceView{}, fmt.Errorf("admin.ChangeGrievanceStatus: %w", err)
	}

	var out domain.Grievance
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		cur, err := s.grievances.GetForUpdate(txCtx, id)
		if err != nil {
			return err
		}

		next, err := lifecycle.TransitionGrievance(cur, to, s.now())
		if err != nil {
			return err
		}

		saved, err := s.grievances.Update(txCtx, next)
		if err != nil {
			return fmt.Errorf("update grievance: %w", err)
		}

		msg := fmt.Sprintf("Status changed from %s to %s", cur.Status, to)
		if n := strings.TrimSpace(note); n != "" {
			msg += ": " + n
		}
		ref := domain.GrievanceRef(id)
		if _, err := s.audit.Append(txCtx, ref, domain.AuditActionStatusChanged, actor, msg); err != nil {
			return fmt.Errorf("append audit: %w", err)
		}
		if saved.Audit, err = s.audit.History(txCtx, ref); err != nil {
			return fmt.Errorf("read history: %w", err)
		}

		out = saved
		return nil
	})
	if err != nil {
		s.rejected(domain.EntityTypeGrievance, err)
		return domain.GrievanceView{}, fmt.Errorf("admin.ChangeGrievanceStatus: %w", err)
	}

	s.rec.RecordTransition(domain.EntityTypeGrievance.String(), domain.AuditActionStatusChanged.String())
	s.log.InfoContext(ctx, "grievance status changed",
		slog.String("grievance_id", id.String()),
		slog.String("actor_id", actor.ID.String()),
		slog.String("status", to.String()),
	)
	return domain.NewGrievanceView(out, policy, s.now()), nil
}

// GetGrievance returns a grievance with its history and derived fields.
// Handlers see every grievance, other actors only the ones they raised.
func (s *Service) GetGrievance(ctx context.Context, id uuid.UUID, actor domain.Actor) (domain.GrievanceView, error) {
	if err := requireActor(actor); err != nil {
		return domain.GrievanceView{}, err
	}

	g, err := s.grievances.GetByID(ctx, id)
	if err != nil {
		return domain.GrievanceView{}, fmt.Errorf("admin.GetGrievance: %w", err)
	}
	if !isHandler(actor) && g.RaisedBy != actor.ID {
		return domain.GrievanceView{}, domain.ErrForbidden
	}

	if g.Audit, err = s.audit.History(ctx, domain.GrievanceRef(id)); err != nil {
		return domain.GrievanceView{}, fmt.Errorf("admin.GetGrievance: %w", err)
	}

	policy, err := s.policies.GrievancePolicy(ctx)
	if err != nil {
		return domain.GrievanceView{}, fmt.Errorf("admin.GetGrievance: %w", err)
	}
	return domain.NewGrievanceView(g, policy, s.now()), nil
}

// ListGrievances returns a filtered page of grievances with derived fields.
// Non-handlers are limited to their own grievances.
func (s *Service) ListGrievances(ctx context.Context, f domain.GrievanceFilter, actor domain.Actor) ([]domain.GrievanceView, int, error) {
	if err := requireActor(actor); err != nil {
		return nil, 0, err
	}
	if f.Status != nil && !f.Status.IsValid() {
		return nil, 0, domain.NewValidationError("status", "unknown status")
	}
	if f.Priority != nil && !f.Priority.IsValid() {
		return nil, 0, domain.NewValidationError("priority", "unknown priority")
	}
	if !isHandler(actor) {
		self := actor.ID
		f.RaisedBy = &self
	}
	f.Limit, f.Offset = clampPage(f.Limit, f.Offset)

	policy, err := s.policies.GrievancePolicy(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("admin.ListGrievances: %w", err)
	}
	if f.Category != nil && !policy.HasCategory(*f.Category) {
		return nil, 0, domain.NewValidationError("category", "not in the grievance taxonomy")
	}

	items, total, err := s.grievances.List(ctx, f)
	if err != nil {
		return nil, 0, fmt.Errorf("admin.ListGrievances: %w", err)
	}

	now := s.now()
	views := make([]domain.GrievanceView, len(items))
	for i, g := range items {
		views[i] = domain.NewGrievanceView(g, policy, now)
	}
	return views, total, nil
}
