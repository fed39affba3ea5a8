package domain

import (
	"time"

	"github.com/google/uuid"
)

// Course is an offering students enroll in.
type Course struct {
	ID         uuid.UUID
	Code       string
	Title      string
	Department string
	FacultyID  *uuid.UUID
	// Capacity is the enrollment limit; 0 means unlimited.
	Capacity  int
	UpdatedAt time.Time

	Audit []AuditEvent
}

// HasCapacity reports whether one more student fits.
func (c Course) HasCapacity(enrolled int) bool {
	return c.Capacity <= 0 || enrolled < c.Capacity
}

// Enrollment links a student to a course.
type Enrollment struct {
	CourseID   uuid.UUID
	StudentID  uuid.UUID
	EnrolledAt time.Time
}
