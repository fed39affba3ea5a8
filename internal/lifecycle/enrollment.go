package lifecycle

import (
	"fmt"
	"time"

	"github.com/heartmarshall/campusdesk-backend/internal/domain"
)

// Enroll checks that student may join course and returns the new enrollment.
// enrolled is the current head count; already reports an existing enrollment.
func Enroll(course domain.Course, student domain.User, enrolled int, already bool, at time.Time) (domain.Enrollment, error) {
	if student.Role != domain.UserRoleStudent {
		return domain.Enrollment{}, domain.NewValidationError("studentId", "user is not a student")
	}
	if student.Status != domain.UserStatusActive {
		return domain.Enrollment{}, domain.NewValidationError("studentId", "student is not active")
	}
	if already {
		return domain.Enrollment{}, &domain.TransitionError{
			Entity: domain.EntityTypeCourse,
			From:   "enrolled",
			To:     "enrolled",
			Err:    domain.ErrNoopTransition,
		}
	}
	if !course.HasCapacity(enrolled) {
		return domain.Enrollment{}, fmt.Errorf("course %s is full (%d/%d): %w", course.Code, enrolled, course.Capacity, domain.ErrConflict)
	}
	return domain.Enrollment{CourseID: course.ID, StudentID: student.ID, EnrolledAt: at}, nil
}
