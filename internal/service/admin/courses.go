package admin

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/campusdesk-backend/internal/domain"
	"github.com/heartmarshall/campusdesk-backend/internal/lifecycle"
)

// EnrollStudent adds an active student to a course, respecting capacity.
// The course row lock serializes concurrent enrollments.
func (s *Service) EnrollStudent(ctx context.Context, courseID, studentID uuid.UUID, actor domain.Actor) (domain.Enrollment, error) {
	if err := requireAdmin(actor); err != nil {
		return domain.Enrollment{}, err
	}

	var out domain.Enrollment
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		course, err := s.courses.GetForUpdate(txCtx, courseID)
		if err != nil {
			return err
		}
		student, err := s.users.GetByID(txCtx, studentID)
		if err != nil {
			return err
		}

		count, err := s.courses.CountEnrollments(txCtx, courseID)
		if err != nil {
			return err
		}
		already, err := s.courses.IsEnrolled(txCtx, courseID, studentID)
		if err != nil {
			return err
		}

		now := s.now()
		e, err := lifecycle.Enroll(course, student, count, already, now)
		if err != nil {
			return err
		}

		if err := s.courses.AddEnrollment(txCtx, e); err != nil {
			return fmt.Errorf("add enrollment: %w", err)
		}
		if err := s.courses.Touch(txCtx, courseID, now); err != nil {
			return fmt.Errorf("touch course: %w", err)
		}
		if _, err := s.audit.Append(txCtx, domain.CourseRef(courseID), domain.AuditActionEnrolled, actor, "Enrolled "+studentLabel(student)); err != nil {
			return fmt.Errorf("append audit: %w", err)
		}

		out = e
		return nil
	})
	if err != nil {
		s.rejected(domain.EntityTypeCourse, err)
		return domain.Enrollment{}, fmt.Errorf("admin.EnrollStudent: %w", err)
	}

	s.rec.RecordTransition(domain.EntityTypeCourse.String(), domain.AuditActionEnrolled.String())
	s.log.InfoContext(ctx, "student enrolled",
		slog.String("course_id", courseID.String()),
		slog.String("student_id", studentID.String()),
		slog.String("actor_id", actor.ID.String()),
	)
	return out, nil
}

// UnenrollStudent removes a student from a course. Returns ErrNotFound if
// the student is not enrolled.
func (s *Service) UnenrollStudent(ctx context.Context, courseID, studentID uuid.UUID, actor domain.Actor) error {
	if err := requireAdmin(actor); err != nil {
		return err
	}

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if _, err := s.courses.GetForUpdate(txCtx, courseID); err != nil {
			return err
		}
		student, err := s.users.GetByID(txCtx, studentID)
		if err != nil {
			return err
		}

		if err := s.courses.RemoveEnrollment(txCtx, courseID, studentID); err != nil {
			return err
		}
		if err := s.courses.Touch(txCtx, courseID, s.now()); err != nil {
			return fmt.Errorf("touch course: %w", err)
		}
		if _, err := s.audit.Append(txCtx, domain.CourseRef(courseID), domain.AuditActionUnenrolled, actor, "Unenrolled "+studentLabel(student)); err != nil {
			return fmt.Errorf("append audit: %w", err)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("admin.UnenrollStudent: %w", err)
	}

	s.rec.RecordTransition(domain.EntityTypeCourse.String(), domain.AuditActionUnenrolled.String())
	s.log.InfoContext(ctx, "student unenrolled",
		slog.String("course_id", courseID.String()),
		slog.String("student_id", studentID.String()),
		slog.String("actor_id", actor.ID.String()),
	)
	return nil
}

// GetCourse returns a course with its enrollment history.
func (s *Service) GetCourse(ctx context.Context, courseID uuid.UUID, actor domain.Actor) (domain.Course, error) {
	if err := requireStaff(actor); err != nil {
		return domain.Course{}, err
	}

	c, err := s.courses.GetByID(ctx, courseID)
	if err != nil {
		return domain.Course{}, fmt.Errorf("admin.GetCourse: %w", err)
	}
	if c.Audit, err = s.audit.History(ctx, domain.CourseRef(courseID)); err != nil {
		return domain.Course{}, fmt.Errorf("admin.GetCourse: %w", err)
	}
	return c, nil
}

// ListEnrollments returns the enrollments of a course.
func (s *Service) ListEnrollments(ctx context.Context, courseID uuid.UUID, actor domain.Actor) ([]domain.Enrollment, error) {
	if err := requireStaff(actor); err != nil {
		return nil, err
	}
	if _, err := s.courses.GetByID(ctx, courseID); err != nil {
		return nil, fmt.Errorf("admin.ListEnrollments: %w", err)
	}

	items, err := s.courses.ListEnrollments(ctx, courseID)
	if err != nil {
		return nil, fmt.Errorf("admin.ListEnrollments: %w", err)
	}
	return items, nil
}

func studentLabel(u domain.User) string {
	if u.Meta.RollNo != "" {
		return fmt.Sprintf("%s (%s)", u.Name, u.Meta.RollNo)
	}
	return u.Name
}
