package domain

import (
	"time"

	"github.com/google/uuid"
)

// Opportunity is an internship, hackathon, scholarship or similar posting.
type Opportunity struct {
	ID        uuid.UUID
	Title     string
	Type      string
	Tags      []string
	PostedBy  uuid.UUID
	Approved  bool
	PostedAt  time.Time
	UpdatedAt time.Time

	Audit []AuditEvent
}

// OpportunityView is an opportunity together with its policy-derived fields.
type OpportunityView struct {
	Opportunity
	Visible   bool
	ExpiresAt time.Time
	Expired   bool
}
