package rest

import (
	"time"

	"github.com/heartmarshall/campusdesk-backend/internal/domain"
)

type listResponse[T any] struct {
	Items  []T `json:"items"`
	Total  int `json:"total"`
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
}

func newList[E, T any](items []E, total, limit, offset int, conv func(E) T) listResponse[T] {
	out := make([]T, len(items))
	for i, it := range items {
		out[i] = conv(it)
	}
	return listResponse[T]{Items: out, Total: total, Limit: limit, Offset: offset}
}

type actorResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Role string `json:"role"`
}

type auditEventResponse struct {
	ID      string        `json:"id"`
	Action  string        `json:"action"`
	Message string        `json:"message"`
	By      actorResponse `json:"by"`
	At      time.Time     `json:"at"`
}

func toAuditResponse(events []domain.AuditEvent) []auditEventResponse {
	out := make([]auditEventResponse, len(events))
	for i, e := range events {
		out[i] = auditEventResponse{
			ID:      e.ID,
			Action:  e.Action.String(),
			Message: e.Message,
			By:      actorResponse{ID: e.By.ID.String(), Name: e.By.Name, Role: e.By.Role.String()},
			At:      e.At,
		}
	}
	return out
}

type userResponse struct {
	ID         string               `json:"id"`
	Name       string               `json:"name"`
	Email      string               `json:"email"`
	Role       string               `json:"role"`
	Status     string               `json:"status"`
	Department string               `json:"department"`
	Meta       domain.UserMeta      `json:"meta"`
	CreatedAt  time.Time            `json:"createdAt"`
	UpdatedAt  time.Time            `json:"updatedAt"`
	Audit      []auditEventResponse `json:"audit,omitempty"`
}

func toUserResponse(u domain.User) userResponse {
	return userResponse{
		ID:         u.ID.String(),
		Name:       u.Name,
		Email:      u.Email,
		Role:       u.Role.String(),
		Status:     u.Status.String(),
		Department: u.Department,
		Meta:       u.Meta,
		CreatedAt:  u.CreatedAt,
		UpdatedAt:  u.UpdatedAt,
		Audit:      toAuditResponse(u.Audit),
	}
}

type grievanceResponse struct {
	ID            string               `json:"id"`
	Title         string               `json:"title"`
	Description   string               `json:"description"`
	Category      string               `json:"category"`
	Priority      string               `json:"priority"`
	Status        string               `json:"status"`
	RaisedBy      string               `json:"raisedBy"`
	CreatedAt     time.Time            `json:"createdAt"`
	UpdatedAt     time.Time            `json:"updatedAt"`
	ResolvedAt    *time.Time           `json:"resolvedAt,omitempty"`
	EscalatedAt   *time.Time           `json:"escalatedAt,omitempty"`
	SLADeadline   time.Time            `json:"slaDeadline"`
	EscalationDue bool                 `json:"escalationDue"`
	AutoCloseDue  bool                 `json:"autoCloseDue"`
	Audit         []auditEventResponse `json:"audit,omitempty"`
}

func toGrievanceResponse(v domain.GrievanceView) grievanceResponse {
	return grievanceResponse{
		ID:            v.ID.String(),
		Title:         v.Title,
		Description:   v.Description,
		Category:      v.Category,
		Priority:      v.Priority.String(),
		Status:        v.Status.String(),
		RaisedBy:      v.RaisedBy.String(),
		CreatedAt:     v.CreatedAt,
		UpdatedAt:     v.UpdatedAt,
		ResolvedAt:    v.ResolvedAt,
		EscalatedAt:   v.EscalatedAt,
		SLADeadline:   v.SLADeadline,
		EscalationDue: v.EscalationDue,
		AutoCloseDue:  v.AutoCloseDue,
		Audit:         toAuditResponse(v.Audit),
	}
}

type opportunityResponse struct {
	ID        string               `json:"id"`
	Title     string               `json:"title"`
	Type      string               `json:"type"`
	Tags      []string             `json:"tags"`
	PostedBy  string               `json:"postedBy"`
	Approved  bool                 `json:"approved"`
	PostedAt  time.Time            `json:"postedAt"`
	UpdatedAt time.Time            `json:"updatedAt"`
	Visible   bool                 `json:"visible"`
	ExpiresAt time.Time            `json:"expiresAt"`
	Expired   bool                 `json:"expired"`
	Audit     []auditEventResponse `json:"audit,omitempty"`
}

func toOpportunityResponse(v domain.OpportunityView) opportunityResponse {
	tags := v.Tags
	if tags == nil {
		tags = []string{}
	}
	return opportunityResponse{
		ID:        v.ID.String(),
		Title:     v.Title,
		Type:      v.Type,
		Tags:      tags,
		PostedBy:  v.PostedBy.String(),
		Approved:  v.Approved,
		PostedAt:  v.PostedAt,
		UpdatedAt: v.UpdatedAt,
		Visible:   v.Visible,
		ExpiresAt: v.ExpiresAt,
		Expired:   v.Expired,
		Audit:     toAuditResponse(v.Audit),
	}
}

type policyResponse struct {
	Section   string                `json:"section"`
	Values    domain.PolicyDocument `json:"values"`
	Version   int                   `json:"version"`
	UpdatedAt time.Time             `json:"updatedAt"`
	UpdatedBy *string               `json:"updatedBy,omitempty"`
}

func toPolicyResponse(rec domain.PolicyRecord) policyResponse {
	resp := policyResponse{
		Section:   rec.Section.String(),
		Values:    rec.Document,
		Version:   rec.Version,
		UpdatedAt: rec.UpdatedAt,
	}
	if rec.UpdatedBy != nil {
		by := rec.UpdatedBy.String()
		resp.UpdatedBy = &by
	}
	return resp
}

type enrollmentResponse struct {
	CourseID   string    `json:"courseId"`
	StudentID  string    `json:"studentId"`
	EnrolledAt time.Time `json:"enrolledAt"`
}

func toEnrollmentResponse(e domain.Enrollment) enrollmentResponse {
	return enrollmentResponse{
		CourseID:   e.CourseID.String(),
		StudentID:  e.StudentID.String(),
		EnrolledAt: e.EnrolledAt,
	}
}

type courseResponse struct {
	ID         string               `json:"id"`
	Code       string               `json:"code"`
	Title      string               `json:"title"`
	Department string               `json:"department"`
	FacultyID  *string              `json:"facultyId,omitempty"`
	Capacity   int                  `json:"capacity"`
	UpdatedAt  time.Time            `json:"updatedAt"`
	Audit      []auditEventResponse `json:"audit,omitempty"`
}

func toCourseResponse(c domain.Course) courseResponse {
	resp := courseResponse{
		ID:         c.ID.String(),
		Code:       c.Code,
		Title:      c.Title,
		Department: c.Department,
		Capacity:   c.Capacity,
		UpdatedAt:  c.UpdatedAt,
		Audit:      toAuditResponse(c.Audit),
	}
	if c.FacultyID != nil {
		id := c.FacultyID.String()
		resp.FacultyID = &id
	}
	return resp
}
