package lifecycle

import (
	"time"

	"github.com/heartmarshall/campusdesk-backend/internal/domain"
)

// grievanceTransitions lists the legal targets per source status.
// CLOSED and REJECTED are terminal.
var grievanceTransitions = map[domain.GrievanceStatus][]domain.GrievanceStatus{
	domain.GrievanceStatusOpen:       {domain.GrievanceStatusInProgress, domain.GrievanceStatusRejected},
	domain.GrievanceStatusInProgress: {domain.GrievanceStatusResolved, domain.GrievanceStatusRejected},
	domain.GrievanceStatusResolved:   {domain.GrievanceStatusClosed, domain.GrievanceStatusInProgress},
}

// TransitionGrievance moves g to status to.
// Entering RESOLVED stamps ResolvedAt; reopening clears it.
func TransitionGrievance(g domain.Grievance, to domain.GrievanceStatus, at time.Time) (domain.Grievance, error) {
	fail := func(err error) (domain.Grievance, error) {
		return g, &domain.TransitionError{Entity: domain.EntityTypeGrievance, From: string(g.Status), To: string(to), Err: err}
	}

	if g.Status.IsFinal() {
		return fail(domain.ErrTerminalState)
	}
	if !to.IsValid() {
		return fail(domain.ErrInvalidTransition)
	}
	if to == g.Status {
		return fail(domain.ErrNoopTransition)
	}
	if !canMove(grievanceTransitions[g.Status], to) {
		return fail(domain.ErrInvalidTransition)
	}

	next := g
	next.Status = to
	next.UpdatedAt = at

	switch to {
	case domain.GrievanceStatusResolved:
		resolved := at
		next.ResolvedAt = &resolved
	case domain.GrievanceStatusInProgress:
		next.ResolvedAt = nil
	}
	return next, nil
}

// MarkEscalated stamps EscalatedAt on an open grievance. Escalation happens
// at most once per grievance.
func MarkEscalated(g domain.Grievance, at time.Time) (domain.Grievance, error) {
	if !g.Status.IsOpen() {
		return g, &domain.TransitionError{Entity: domain.EntityTypeGrievance, From: string(g.Status), To: "ESCALATED", Err: domain.ErrInvalidTransition}
	}
	if g.EscalatedAt != nil {
		return g, &domain.TransitionError{Entity: domain.EntityTypeGrievance, From: string(g.Status), To: "ESCALATED", Err: domain.ErrNoopTransition}
	}
	next := g
	escalated := at
	next.EscalatedAt = &escalated
	next.UpdatedAt = at
	return next, nil
}

func canMove(allowed []domain.GrievanceStatus, to domain.GrievanceStatus) bool {
	for _, s := range allowed {
		if s == to {
			return true
		}
	}
	return false
}
