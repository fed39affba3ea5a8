package admin

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/campusdesk-backend/internal/domain"
	"github.com/heartmarshall/campusdesk-backend/internal/lifecycle"
)

// ApproveOpportunity marks an opportunity approved.
func (s *Service) ApproveOpportunity(ctx context.Context, id uuid.UUID, actor domain.Actor) (domain.OpportunityView, error) {
	return s.setApproval(ctx, "ApproveOpportunity", id, true, actor)
}

// UnapproveOpportunity withdraws an approval.
func (s *Service) UnapproveOpportunity(ctx context.Context, id uuid.UUID, actor domain.Actor) (domain.OpportunityView, error) {
	return s.setApproval(ctx, "UnapproveOpportunity", id, false, actor)
}

func (s *Service) setApproval(ctx context.Context, op string, id uuid.UUID, approved bool, actor domain.Actor) (domain.OpportunityView, error) {
	if err := requireAdmin(actor); err != nil {
		return domain.OpportunityView{}, err
	}

	policy, err := s.policies.OpportunityPolicy(ctx)
	if err != nil {
		return domain.OpportunityView{}, fmt.Errorf("admin.%s: %w", op, err)
	}

	action, msg := domain.AuditActionApproved, "Opportunity approved"
	if !approved {
		action, msg = domain.AuditActionUnapproved, "Opportunity approval withdrawn"
	}

	var out domain.Opportunity
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		cur, err := s.opportunities.GetForUpdate(txCtx, id)
		if err != nil {
			return err
		}

		next, err := lifecycle.SetOpportunityApproval(cur, approved, s.now())
		if err != nil {
			return err
		}

		saved, err := s.opportunities.UpdateApproval(txCtx, next)
		if err != nil {
			return fmt.Errorf("update opportunity: %w", err)
		}

		ref := domain.OpportunityRef(id)
		if _, err := s.audit.Append(txCtx, ref, action, actor, msg); err != nil {
			return fmt.Errorf("append audit: %w", err)
		}
		if saved.Audit, err = s.audit.History(txCtx, ref); err != nil {
			return fmt.Errorf("read history: %w", err)
		}

		out = saved
		return nil
	})
	if err != nil {
		s.rejected(domain.EntityTypeOpportunity, err)
		return domain.OpportunityView{}, fmt.Errorf("admin.%s: %w", op, err)
	}

	s.rec.RecordTransition(domain.EntityTypeOpportunity.String(), action.String())
	s.log.InfoContext(ctx, "opportunity approval changed",
		slog.String("opportunity_id", id.String()),
		slog.String("actor_id", actor.ID.String()),
		slog.Bool("approved", approved),
	)
	return domain.NewOpportunityView(out, policy, s.now()), nil
}

// GetOpportunity returns an opportunity with its history. Non-admins only
// see visible, unexpired postings; anything else reads as not found.
func (s *Service) GetOpportunity(ctx context.Context, id uuid.UUID, actor domain.Actor) (domain.OpportunityView, error) {
	if err := requireActor(actor); err != nil {
		return domain.OpportunityView{}, err
	}

	policy, err := s.policies.OpportunityPolicy(ctx)
	if err != nil {
		return domain.OpportunityView{}, fmt.Errorf("admin.GetOpportunity: %w", err)
	}

	o, err := s.opportunities.GetByID(ctx, id)
	if err != nil {
		return domain.OpportunityView{}, fmt.Errorf("admin.GetOpportunity: %w", err)
	}

	view := domain.NewOpportunityView(o, policy, s.now())
	if !actor.Role.IsAdmin() && (!view.Visible || view.Expired) {
		return domain.OpportunityView{}, fmt.Errorf("admin.GetOpportunity: opportunity %s: %w", id, domain.ErrNotFound)
	}

	if view.Audit, err = s.audit.History(ctx, domain.OpportunityRef(id)); err != nil {
		return domain.OpportunityView{}, fmt.Errorf("admin.GetOpportunity: %w", err)
	}
	return view, nil
}

// ListOpportunities returns a filtered page of opportunities with derived
// fields. Non-admins only see visible, unexpired postings.
func (s *Service) ListOpportunities(ctx context.Context, f domain.OpportunityFilter, actor domain.Actor) ([]domain.OpportunityView, int, error) {
	if err := requireActor(actor); err != nil {
		return nil, 0, err
	}

	policy, err := s.policies.OpportunityPolicy(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("admin.ListOpportunities: %w", err)
	}
	if f.Type != nil && !policy.AllowsType(*f.Type) {
		return nil, 0, domain.NewValidationError("type", "not an allowed opportunity type")
	}

	now := s.now()
	if !actor.Role.IsAdmin() {
		if policy.RequireApproval {
			approved := true
			f.Approved = &approved
		}
		cutoff := now.Add(-time.Duration(policy.AutoExpireDays) * 24 * time.Hour)
		f.PostedAfter = &cutoff
	}
	f.Limit, f.Offset = clampPage(f.Limit, f.Offset)

	items, total, err := s.opportunities.List(ctx, f)
	if err != nil {
		return nil, 0, fmt.Errorf("admin.ListOpportunities: %w", err)
	}

	views := make([]domain.OpportunityView, len(items))
	for i, o := range items {
		views[i] = domain.NewOpportunityView(o, policy, now)
	}
	return views, total, nil
}
