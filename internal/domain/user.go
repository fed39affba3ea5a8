package domain

import (
	"time"

	"github.com/google/uuid"
)

// User is a campus account managed through the admin console.
type User struct {
	ID         uuid.UUID
	Name       string
	Email      string
	Role       UserRole
	Status     UserStatus
	Department string
	Meta       UserMeta
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// Audit is the user's ordered history, oldest first. Populated on reads
	// that ask for it; repositories never write it.
	Audit []AuditEvent
}

// UserMeta holds role-specific profile fields.
// Students carry RollNo and Semester; staff roles carry Designation.
type UserMeta struct {
	RollNo      string `json:"rollNo,omitempty"`
	Semester    *int   `json:"semester,omitempty"`
	Designation string `json:"designation,omitempty"`
}

// ForRole drops the fields that do not apply to role.
func (m UserMeta) ForRole(role UserRole) UserMeta {
	if role == UserRoleStudent {
		return UserMeta{RollNo: m.RollNo, Semester: m.Semester}
	}
	return UserMeta{Designation: m.Designation}
}

// Actor is the verified principal performing an operation.
type Actor struct {
	ID   uuid.UUID
	Name string
	Role UserRole
}

// SystemActor is used by scheduled jobs and operator commands.
var SystemActor = Actor{ID: uuid.Nil, Name: "system", Role: UserRoleAdmin}

// IsSystem reports whether the actor is the built-in system principal.
func (a Actor) IsSystem() bool {
	return a.ID == uuid.Nil && a.Name == SystemActor.Name
}

// PasswordResetToken is a hashed one-time token issued by a password reset.
type PasswordResetToken struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	TokenHash string
	ExpiresAt time.Time
	CreatedAt time.Time
	UsedAt    *time.Time
}

// IsExpired returns true if the token has expired relative to now.
func (t *PasswordResetToken) IsExpired(now time.Time) bool {
	return t.ExpiresAt.Before(now)
}
