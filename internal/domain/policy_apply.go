package domain

import "time"

const day = 24 * time.Hour

// SLADays returns the resolution window for a priority.
// Unknown priorities get the MEDIUM window.
func (p GrievancePolicy) SLADays(priority GrievancePriority) int {
	switch priority {
	case GrievancePriorityLow:
		return p.SLALow
	case GrievancePriorityHigh:
		return p.SLAHigh
	default:
		return p.SLAMedium
	}
}

// SLADeadline is createdAt plus the priority window in whole days.
func (p GrievancePolicy) SLADeadline(g Grievance) time.Time {
	return g.CreatedAt.Add(time.Duration(p.SLADays(g.Priority)) * day)
}

// IsEscalationDue reports whether an open grievance has outlived its SLA.
func (p GrievancePolicy) IsEscalationDue(g Grievance, now time.Time) bool {
	if !p.EscalationEnabled || !g.Status.IsOpen() {
		return false
	}
	return now.After(p.SLADeadline(g))
}

// IsAutoCloseDue reports whether a resolved grievance has waited long enough
// to be closed automatically.
func (p GrievancePolicy) IsAutoCloseDue(g Grievance, now time.Time) bool {
	if g.Status != GrievanceStatusResolved || g.ResolvedAt == nil {
		return false
	}
	return now.After(g.ResolvedAt.Add(time.Duration(p.AutoCloseAfterDays) * day))
}

// NewGrievanceView attaches the derived fields to g as of now.
func NewGrievanceView(g Grievance, p GrievancePolicy, now time.Time) GrievanceView {
	return GrievanceView{
		Grievance:     g,
		SLADeadline:   p.SLADeadline(g),
		EscalationDue: p.IsEscalationDue(g, now),
		AutoCloseDue:  p.IsAutoCloseDue(g, now),
	}
}

// IsVisible reports whether students may see the opportunity.
func (p OpportunityPolicy) IsVisible(o Opportunity) bool {
	return !p.RequireApproval || o.Approved
}

// ExpiresAt is postedAt plus autoExpireDays.
func (p OpportunityPolicy) ExpiresAt(o Opportunity) time.Time {
	return o.PostedAt.Add(time.Duration(p.AutoExpireDays) * day)
}

// IsExpired reports whether the posting is past its expiry as of now.
func (p OpportunityPolicy) IsExpired(o Opportunity, now time.Time) bool {
	return now.After(p.ExpiresAt(o))
}

// NewOpportunityView attaches the derived fields to o as of now.
func NewOpportunityView(o Opportunity, p OpportunityPolicy, now time.Time) OpportunityView {
	return OpportunityView{
		Opportunity: o,
		Visible:     p.IsVisible(o),
		ExpiresAt:   p.ExpiresAt(o),
		Expired:     p.IsExpired(o, now),
	}
}
