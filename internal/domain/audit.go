package domain

import (
	"time"

	"github.com/google/uuid"
)

// EntityRef addresses the owner of an audit trail.
type EntityRef struct {
	Type EntityType
	ID   uuid.UUID
}

func UserRef(id uuid.UUID) EntityRef        { return EntityRef{Type: EntityTypeUser, ID: id} }
func GrievanceRef(id uuid.UUID) EntityRef   { return EntityRef{Type: EntityTypeGrievance, ID: id} }
func OpportunityRef(id uuid.UUID) EntityRef { return EntityRef{Type: EntityTypeOpportunity, ID: id} }
func CourseRef(id uuid.UUID) EntityRef      { return EntityRef{Type: EntityTypeCourse, ID: id} }

// AuditEvent is an immutable record of one lifecycle mutation.
// Events are owned by their entity and read back in insertion order.
type AuditEvent struct {
	ID      string
	Entity  EntityRef
	Action  AuditAction
	Message string
	By      Actor
	At      time.Time
}
