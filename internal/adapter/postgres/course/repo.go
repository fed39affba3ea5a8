// Package course implements the Course and Enrollment repository using PostgreSQL.
package course

import (
	"context"
	"fmt"
	"time"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/campusdesk-backend/internal/adapter/postgres"
	"github.com/heartmarshall/campusdesk-backend/internal/domain"
)

const columns = "id, code, title, department, faculty_id, capacity, updated_at"

// Repo provides course and enrollment persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new course repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

type row struct {
	ID         uuid.UUID  `db:"id"`
	Code       string     `db:"code"`
	Title      string     `db:"title"`
	Department string     `db:"department"`
	FacultyID  *uuid.UUID `db:"faculty_id"`
	Capacity   int        `db:"capacity"`
	UpdatedAt  time.Time  `db:"updated_at"`
}

type enrollmentRow struct {
	CourseID   uuid.UUID `db:"course_id"`
	StudentID  uuid.UUID `db:"student_id"`
	EnrolledAt time.Time `db:"enrolled_at"`
}

// ---------------------------------------------------------------------------
// Courses
// ---------------------------------------------------------------------------

// GetByID returns a course by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (domain.Course, error) {
	return r.getOne(ctx, id, `SELECT `+columns+` FROM courses WHERE id = $1`)
}

// GetForUpdate returns a course and locks its row, serializing enrollment
// changes for that course until the surrounding transaction ends.
func (r *Repo) GetForUpdate(ctx context.Context, id uuid.UUID) (domain.Course, error) {
	return r.getOne(ctx, id, `SELECT `+columns+` FROM courses WHERE id = $1 FOR UPDATE`)
}

func (r *Repo) getOne(ctx context.Context, id uuid.UUID, sql string) (domain.Course, error) {
	var rw row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.pool), &rw, sql, id); err != nil {
		return domain.Course{}, postgres.MapError(err, "course", id)
	}
	return toDomain(rw), nil
}

// Create inserts a new course.
func (r *Repo) Create(ctx context.Context, c domain.Course) (domain.Course, error) {
	var rw row
	err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.pool), &rw,
		`INSERT INTO courses (id, code, title, department, faculty_id, capacity, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING `+columns,
		c.ID, c.Code, c.Title, c.Department, c.FacultyID, c.Capacity, c.UpdatedAt,
	)
	if err != nil {
		return domain.Course{}, postgres.MapError(err, "course", c.Code)
	}
	return toDomain(rw), nil
}

// Touch bumps updated_at after an enrollment change.
func (r *Repo) Touch(ctx context.Context, id uuid.UUID, at time.Time) error {
	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx,
		`UPDATE courses SET updated_at = $2 WHERE id = $1`, id, at)
	if err != nil {
		return postgres.MapError(err, "course", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("course %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Enrollments
// ---------------------------------------------------------------------------

// CountEnrollments returns the current head count of a course.
func (r *Repo) CountEnrollments(ctx context.Context, courseID uuid.UUID) (int, error) {
	var n int
	err := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx,
		`SELECT count(*) FROM enrollments WHERE course_id = $1`, courseID,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count enrollments for course %s: %w", courseID, err)
	}
	return n, nil
}

// IsEnrolled reports whether the student is enrolled in the course.
func (r *Repo) IsEnrolled(ctx context.Context, courseID, studentID uuid.UUID) (bool, error) {
	var ok bool
	err := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM enrollments WHERE course_id = $1 AND student_id = $2)`,
		courseID, studentID,
	).Scan(&ok)
	if err != nil {
		return false, fmt.Errorf("check enrollment %s/%s: %w", courseID, studentID, err)
	}
	return ok, nil
}

// AddEnrollment inserts an enrollment.
func (r *Repo) AddEnrollment(ctx context.Context, e domain.Enrollment) error {
	_, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx,
		`INSERT INTO enrollments (course_id, student_id, enrolled_at) VALUES ($1, $2, $3)`,
		e.CourseID, e.StudentID, e.EnrolledAt,
	)
	if err != nil {
		return postgres.MapError(err, "enrollment", e.CourseID)
	}
	return nil
}

// RemoveEnrollment deletes an enrollment. Returns domain.ErrNotFound if the
// student was not enrolled.
func (r *Repo) RemoveEnrollment(ctx context.Context, courseID, studentID uuid.UUID) error {
	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx,
		`DELETE FROM enrollments WHERE course_id = $1 AND student_id = $2`,
		courseID, studentID,
	)
	if err != nil {
		return postgres.MapError(err, "enrollment", courseID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("enrollment %s/%s: %w", courseID, studentID, domain.ErrNotFound)
	}
	return nil
}

// ListEnrollments returns the enrollments of a course, oldest first.
func (r *Repo) ListEnrollments(ctx context.Context, courseID uuid.UUID) ([]domain.Enrollment, error) {
	var rows []enrollmentRow
	err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.pool), &rows,
		`SELECT course_id, student_id, enrolled_at FROM enrollments WHERE course_id = $1 ORDER BY enrolled_at, student_id`,
		courseID,
	)
	if err != nil {
		return nil, fmt.Errorf("list enrollments for course %s: %w", courseID, err)
	}

	out := make([]domain.Enrollment, len(rows))
	for i, rw := range rows {
		out[i] = domain.Enrollment{CourseID: rw.CourseID, StudentID: rw.StudentID, EnrolledAt: rw.EnrolledAt}
	}
	return out, nil
}

func toDomain(rw row) domain.Course {
	return domain.Course{
		ID:         rw.ID,
		Code:       rw.Code,
		Title:      rw.Title,
		Department: rw.Department,
		FacultyID:  rw.FacultyID,
		Capacity:   rw.Capacity,
		UpdatedAt:  rw.UpdatedAt,
	}
}
