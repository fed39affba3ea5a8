package lifecycle

import (
	"time"

	"github.com/heartmarshall/campusdesk-backend/internal/domain"
)

// SetOpportunityApproval flips the approval flag. Setting the current value
// again is a no-op transition.
func SetOpportunityApproval(o domain.Opportunity, approved bool, at time.Time) (domain.Opportunity, error) {
	if o.Approved == approved {
		return o, &domain.TransitionError{
			Entity: domain.EntityTypeOpportunity,
			From:   approvalLabel(o.Approved),
			To:     approvalLabel(approved),
			Err:    domain.ErrNoopTransition,
		}
	}
	next := o
	next.Approved = approved
	next.UpdatedAt = at
	return next, nil
}

func approvalLabel(approved bool) string {
	if approved {
		return "approved"
	}
	return "pending"
}
