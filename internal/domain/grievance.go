package domain

import (
	"time"

	"github.com/google/uuid"
)

// Grievance is a complaint raised by a campus member and handled by authorities.
type Grievance struct {
	ID          uuid.UUID
	Title       string
	Description string
	Category    string
	Priority    GrievancePriority
	Status      GrievanceStatus
	RaisedBy    uuid.UUID
	CreatedAt   time.Time
	UpdatedAt   time.Time
	ResolvedAt  *time.Time
	EscalatedAt *time.Time

	Audit []AuditEvent
}

// GrievanceView is a grievance together with its policy-derived fields.
// Derived fields are recomputed on every read and never stored.
type GrievanceView struct {
	Grievance
	SLADeadline   time.Time
	EscalationDue bool
	AutoCloseDue  bool
}
