package sweep

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/heartmarshall/campusdesk-backend/internal/domain"
	"github.com/heartmarshall/campusdesk-backend/internal/lifecycle"
)

const day = 24 * time.Hour

// escalate stamps every open grievance past its SLA deadline. A grievance
// is escalated at most once.
func (s *Service) escalate(ctx context.Context, now time.Time) (passResult, error) {
	policy, err := s.policies.GrievancePolicy(ctx)
	if err != nil {
		return passResult{}, err
	}
	if !policy.EscalationEnabled {
		return passResult{}, nil
	}

	candidates, err := s.grievances.ListEscalationDue(ctx, policy, now, s.opts.BatchSize)
	if err != nil {
		return passResult{}, err
	}

	var res passResult
	for _, g := range candidates {
		if s.opts.DryRun {
			res.changed++
			continue
		}

		err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
			cur, err := s.grievances.GetForUpdate(txCtx, g.ID)
			if err != nil {
				return err
			}
			if cur.EscalatedAt != nil || !policy.IsEscalationDue(cur, now) {
				return errNotDue
			}

			next, err := lifecycle.MarkEscalated(cur, now)
			if err != nil {
				return err
			}
			if _, err := s.grievances.Update(txCtx, next); err != nil {
				return fmt.Errorf("update grievance: %w", err)
			}

			msg := fmt.Sprintf("Escalated: %s priority SLA deadline %s passed",
				cur.Priority, policy.SLADeadline(cur).Format(time.DateOnly))
			_, err = s.audit.Append(txCtx, domain.GrievanceRef(cur.ID), domain.AuditActionEscalated, domain.SystemActor, msg)
			return err
		})
		if !s.tally(ctx, &res, "escalate", g, err) {
			return res, ctx.Err()
		}
		if err == nil {
			s.rec.RecordTransition(domain.EntityTypeGrievance.String(), domain.AuditActionEscalated.String())
		}
	}
	return res, nil
}

// autoClose closes RESOLVED grievances that sat longer than the policy window.
func (s *Service) autoClose(ctx context.Context, now time.Time) (passResult, error) {
	policy, err := s.policies.GrievancePolicy(ctx)
	if err != nil {
		return passResult{}, err
	}

	cutoff := now.Add(-time.Duration(policy.AutoCloseAfterDays) * day)
	candidates, err := s.grievances.ListResolvedBefore(ctx, cutoff, s.opts.BatchSize)
	if err != nil {
		return passResult{}, err
	}

	var res passResult
	for _, g := range candidates {
		if !policy.IsAutoCloseDue(g, now) {
			continue
		}
		if s.opts.DryRun {
			res.changed++
			continue
		}

		err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
			cur, err := s.grievances.GetForUpdate(txCtx, g.ID)
			if err != nil {
				return err
			}
			if !policy.IsAutoCloseDue(cur, now) {
				return errNotDue
			}

			next, err := lifecycle.TransitionGrievance(cur, domain.GrievanceStatusClosed, now)
			if err != nil {
				return err
			}
			if _, err := s.grievances.Update(txCtx, next); err != nil {
				return fmt.Errorf("update grievance: %w", err)
			}

			msg := fmt.Sprintf("Status changed from %s to %s: closed after %d days without reopening",
				cur.Status, domain.GrievanceStatusClosed, policy.AutoCloseAfterDays)
			_, err = s.audit.Append(txCtx, domain.GrievanceRef(cur.ID), domain.AuditActionStatusChanged, domain.SystemActor, msg)
			return err
		})
		if !s.tally(ctx, &res, "auto_close", g, err) {
			return res, ctx.Err()
		}
		if err == nil {
			s.rec.RecordTransition(domain.EntityTypeGrievance.String(), domain.AuditActionStatusChanged.String())
		}
	}
	return res, nil
}

// countExpired publishes the number of opportunities past their expiry.
// Expiry is derived on read, so nothing is written.
func (s *Service) countExpired(ctx context.Context, now time.Time) (int, error) {
	policy, err := s.policies.OpportunityPolicy(ctx)
	if err != nil {
		return 0, err
	}

	n, err := s.opportunities.CountPostedBefore(ctx, now.Add(-time.Duration(policy.AutoExpireDays)*day))
	if err != nil {
		return 0, err
	}
	s.rec.SetExpiredOpportunities(n)
	return n, nil
}

// tally books the outcome of one row. It returns false when the context is
// done and the pass should stop.
func (s *Service) tally(ctx context.Context, res *passResult, pass string, g domain.Grievance, err error) bool {
	switch {
	case err == nil:
		res.changed++
	case errors.Is(err, errNotDue), errors.Is(err, domain.ErrNotFound):
		res.skipped++
	case ctx.Err() != nil:
		return false
	default:
		res.failed++
		s.log.WarnContext(ctx, "sweep row failed",
			slog.String("pass", pass),
			slog.String("grievance_id", g.ID.String()),
			slog.String("error", err.Error()),
		)
	}
	return true
}
