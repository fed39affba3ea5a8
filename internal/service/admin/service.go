// Package admin orchestrates the console's workflows: every mutation locks
// its entity row, runs the lifecycle rules, persists the new state and
// appends exactly one audit event in the same transaction.
package admin

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/campusdesk-backend/internal/domain"
)

type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (domain.User, error)
	GetForUpdate(ctx context.Context, id uuid.UUID) (domain.User, error)
	List(ctx context.Context, f domain.UserFilter) ([]domain.User, int, error)
	Update(ctx context.Context, u domain.User) (domain.User, error)
}

type grievanceRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (domain.Grievance, error)
	GetForUpdate(ctx context.Context, id uuid.UUID) (domain.Grievance, error)
	List(ctx context.Context, f domain.GrievanceFilter) ([]domain.Grievance, int, error)
	Update(ctx context.Context, g domain.Grievance) (domain.Grievance, error)
}

type opportunityRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (domain.Opportunity, error)
	GetForUpdate(ctx context.Context, id uuid.UUID) (domain.Opportunity, error)
	List(ctx context.Context, f domain.OpportunityFilter) ([]domain.Opportunity, int, error)
	UpdateApproval(ctx context.Context, o domain.Opportunity) (domain.Opportunity, error)
}

type courseRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (domain.Course, error)
	GetForUpdate(ctx context.Context, id uuid.UUID) (domain.Course, error)
	Touch(ctx context.Context, id uuid.UUID, at time.Time) error
	CountEnrollments(ctx context.Context, courseID uuid.UUID) (int, error)
	IsEnrolled(ctx context.Context, courseID, studentID uuid.UUID) (bool, error)
	AddEnrollment(ctx context.Context, e domain.Enrollment) error
	RemoveEnrollment(ctx context.Context, courseID, studentID uuid.UUID) error
	ListEnrollments(ctx context.Context, courseID uuid.UUID) ([]domain.Enrollment, error)
}

type auditTrail interface {
	Append(ctx context.Context, ref domain.EntityRef, action domain.AuditAction, by domain.Actor, message string) (domain.AuditEvent, error)
	History(ctx context.Context, ref domain.EntityRef) ([]domain.AuditEvent, error)
}

type policyStore interface {
	Get(ctx context.Context, section domain.PolicySection) (domain.PolicyRecord, error)
	All(ctx context.Context) ([]domain.PolicyRecord, error)
	Set(ctx context.Context, section domain.PolicySection, partial domain.PolicyDocument, by domain.Actor, expectedVersion *int) (domain.PolicyRecord, error)
	Reset(ctx context.Context, section domain.PolicySection, by domain.Actor) (domain.PolicyRecord, error)
	GrievancePolicy(ctx context.Context) (domain.GrievancePolicy, error)
	OpportunityPolicy(ctx context.Context) (domain.OpportunityPolicy, error)
}

// passwordResetter issues a reset link for a user.
type passwordResetter interface {
	IssueReset(ctx context.Context, u domain.User) (time.Time, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// recorder counts committed and rejected mutations.
type recorder interface {
	RecordTransition(entity, action string)
	RecordRejection(entity, reason string)
}

type nopRecorder struct{}

func (nopRecorder) RecordTransition(string, string) {}
func (nopRecorder) RecordRejection(string, string)  {}

// Service implements the admin workflows.
type Service struct {
	log           *slog.Logger
	users         userRepo
	grievances    grievanceRepo
	opportunities opportunityRepo
	courses       courseRepo
	audit         auditTrail
	policies      policyStore
	resetter      passwordResetter
	tx            txManager
	rec           recorder
	now           func() time.Time
}

// NewService creates the orchestrator. rec may be nil.
func NewService(
	logger *slog.Logger,
	users userRepo,
	grievances grievanceRepo,
	opportunities opportunityRepo,
	courses courseRepo,
	audit auditTrail,
	policies policyStore,
	resetter passwordResetter,
	tx txManager,
	rec recorder,
) *Service {
	if rec == nil {
		rec = nopRecorder{}
	}
	return &Service{
		log:           logger.With("service", "admin"),
		users:         users,
		grievances:    grievances,
		opportunities: opportunities,
		courses:       courses,
		audit:         audit,
		policies:      policies,
		resetter:      resetter,
		tx:            tx,
		rec:           rec,
		now:           func() time.Time { return time.Now().UTC() },
	}
}

// rejected records a refused lifecycle transition.
func (s *Service) rejected(entity domain.EntityType, err error) {
	var te *domain.TransitionError
	if !errors.As(err, &te) {
		return
	}
	s.rec.RecordRejection(entity.String(), rejectionReason(te.Err))
}

func rejectionReason(err error) string {
	switch {
	case errors.Is(err, domain.ErrNoopTransition):
		return "noop"
	case errors.Is(err, domain.ErrTerminalState):
		return "terminal"
	case errors.Is(err, domain.ErrSelfDeleteForbidden):
		return "self_delete"
	case errors.Is(err, domain.ErrSelfSuspendForbidden):
		return "self_suspend"
	case errors.Is(err, domain.ErrSelfDemoteForbidden):
		return "self_demote"
	default:
		return "invalid_transition"
	}
}
