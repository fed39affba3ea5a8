// Package sweep applies time-based grievance and opportunity rules that no
// user action triggers: SLA escalation, auto-close of resolved grievances
// and expiry accounting.
package sweep

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/campusdesk-backend/internal/domain"
)

type grievanceRepo interface {
	GetForUpdate(ctx context.Context, id uuid.UUID) (domain.Grievance, error)
	ListEscalationDue(ctx context.Context, p domain.GrievancePolicy, now time.Time, limit int) ([]domain.Grievance, error)
	ListResolvedBefore(ctx context.Context, cutoff time.Time, limit int) ([]domain.Grievance, error)
	Update(ctx context.Context, g domain.Grievance) (domain.Grievance, error)
}

type opportunityRepo interface {
	CountPostedBefore(ctx context.Context, cutoff time.Time) (int, error)
}

type auditTrail interface {
	Append(ctx context.Context, ref domain.EntityRef, action domain.AuditAction, by domain.Actor, message string) (domain.AuditEvent, error)
}

type policyStore interface {
	GrievancePolicy(ctx context.Context) (domain.GrievancePolicy, error)
	OpportunityPolicy(ctx context.Context) (domain.OpportunityPolicy, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type recorder interface {
	RecordTransition(entity, action string)
	RecordSweepPass(pass string, changed, failed int, d time.Duration)
	SetExpiredOpportunities(n int)
}

// Options tune a sweep run.
type Options struct {
	BatchSize int
	DryRun    bool
}

// Report summarizes one run.
type Report struct {
	Escalated            int
	Closed               int
	Skipped              int
	Failed               int
	ExpiredOpportunities int
}

// errNotDue marks a row whose state changed between listing and locking.
var errNotDue = errors.New("no longer due")

// Service runs sweep passes.
type Service struct {
	log           *slog.Logger
	grievances    grievanceRepo
	opportunities opportunityRepo
	audit         auditTrail
	policies      policyStore
	tx            txManager
	rec           recorder
	opts          Options
	now           func() time.Time
}

// NewService creates a sweep service.
func NewService(
	logger *slog.Logger,
	grievances grievanceRepo,
	opportunities opportunityRepo,
	audit auditTrail,
	policies policyStore,
	tx txManager,
	rec recorder,
	opts Options,
) *Service {
	if opts.BatchSize <= 0 {
		opts.BatchSize = 200
	}
	return &Service{
		log:           logger.With("service", "sweep"),
		grievances:    grievances,
		opportunities: opportunities,
		audit:         audit,
		policies:      policies,
		tx:            tx,
		rec:           rec,
		opts:          opts,
		now:           func() time.Time { return time.Now().UTC() },
	}
}

// passResult is what a single pass reports back.
type passResult struct {
	changed, skipped, failed int
}

// Run executes all passes concurrently once. A failing pass cancels the
// others; per-row failures are counted and logged but do not abort a pass.
func (s *Service) Run(ctx context.Context) (Report, error) {
	now := s.now()

	var (
		rep               Report
		escalated, closed passResult
		expired           int
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		escalated, err = s.timed(gctx, "escalate", func(ctx context.Context) (passResult, error) {
			return s.escalate(ctx, now)
		})
		return err
	})

	g.Go(func() error {
		var err error
		closed, err = s.timed(gctx, "auto_close", func(ctx context.Context) (passResult, error) {
			return s.autoClose(ctx, now)
		})
		return err
	})

	g.Go(func() error {
		res, err := s.timed(gctx, "expire", func(ctx context.Context) (passResult, error) {
			n, err := s.countExpired(ctx, now)
			return passResult{changed: n}, err
		})
		expired = res.changed
		return err
	})

	if err := g.Wait(); err != nil {
		return Report{}, fmt.Errorf("sweep.Run: %w", err)
	}

	rep.Escalated = escalated.changed
	rep.Closed = closed.changed
	rep.Skipped = escalated.skipped + closed.skipped
	rep.Failed = escalated.failed + closed.failed
	rep.ExpiredOpportunities = expired

	s.log.InfoContext(ctx, "sweep finished",
		slog.Int("escalated", rep.Escalated),
		slog.Int("closed", rep.Closed),
		slog.Int("skipped", rep.Skipped),
		slog.Int("failed", rep.Failed),
		slog.Int("expired_opportunities", rep.ExpiredOpportunities),
		slog.Bool("dry_run", s.opts.DryRun),
	)
	return rep, nil
}

// Loop runs the sweep every interval until ctx is cancelled. Failed runs are
// logged and retried on the next tick.
func (s *Service) Loop(ctx context.Context, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		if _, err := s.Run(ctx); err != nil && ctx.Err() == nil {
			s.log.ErrorContext(ctx, "sweep failed", slog.String("error", err.Error()))
		}

		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}

func (s *Service) timed(ctx context.Context, pass string, fn func(context.Context) (passResult, error)) (passResult, error) {
	start := time.Now()
	res, err := fn(ctx)
	s.rec.RecordSweepPass(pass, res.changed, res.failed, time.Since(start))
	if err != nil {
		return res, fmt.Errorf("%s: %w", pass, err)
	}
	return res, nil
}
