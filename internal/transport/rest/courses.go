package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/campusdesk-backend/internal/domain"
)

type courseService interface {
	GetCourse(ctx context.Context, id uuid.UUID, actor domain.Actor) (domain.Course, error)
	ListEnrollments(ctx context.Context, courseID uuid.UUID, actor domain.Actor) ([]domain.Enrollment, error)
	EnrollStudent(ctx context.Context, courseID, studentID uuid.UUID, actor domain.Actor) (domain.Enrollment, error)
	UnenrollStudent(ctx context.Context, courseID, studentID uuid.UUID, actor domain.Actor) error
}

// CourseHandler serves /courses.
type CourseHandler struct {
	svc courseService
	log *slog.Logger
}

// NewCourseHandler creates a CourseHandler.
func NewCourseHandler(svc courseService, logger *slog.Logger) *CourseHandler {
	return &CourseHandler{svc: svc, log: logger.With("handler", "courses")}
}

type enrollRequest struct {
	StudentID uuid.UUID `json:"studentId"`
}

// Get handles GET /courses/{id}.
func (h *CourseHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	c, err := h.svc.GetCourse(r.Context(), id, actorOf(r))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toCourseResponse(c))
}

// ListEnrollments handles GET /courses/{id}/enrollments.
func (h *CourseHandler) ListEnrollments(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	items, err := h.svc.ListEnrollments(r.Context(), id, actorOf(r))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	out := make([]enrollmentResponse, len(items))
	for i, e := range items {
		out[i] = toEnrollmentResponse(e)
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": out})
}

// Enroll handles POST /courses/{id}/enrollments.
func (h *CourseHandler) Enroll(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	var req enrollRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.StudentID == uuid.Nil {
		handleError(h.log, w, r, domain.NewValidationError("studentId", "required"))
		return
	}

	e, err := h.svc.EnrollStudent(r.Context(), id, req.StudentID, actorOf(r))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toEnrollmentResponse(e))
}

// Unenroll handles DELETE /courses/{id}/enrollments/{studentId}.
func (h *CourseHandler) Unenroll(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	studentID, ok := pathUUID(w, r, "studentId")
	if !ok {
		return
	}
	if err := h.svc.UnenrollStudent(r.Context(), id, studentID, actorOf(r)); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
