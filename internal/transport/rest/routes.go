package rest

import "net/http"

// Handlers groups the authenticated API handlers.
type Handlers struct {
	Users         *UserHandler
	Settings      *SettingsHandler
	Grievances    *GrievanceHandler
	Opportunities *OpportunityHandler
	Courses       *CourseHandler
}

// Register mounts every API route on mux.
func (h Handlers) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /admin/users", h.Users.List)
	mux.HandleFunc("GET /admin/users/{id}", h.Users.Get)
	mux.HandleFunc("PATCH /admin/users/{id}", h.Users.UpdateProfile)
	mux.HandleFunc("DELETE /admin/users/{id}", h.Users.Delete)
	mux.HandleFunc("PUT /admin/users/{id}/role", h.Users.ChangeRole)
	mux.HandleFunc("PUT /admin/users/{id}/status", h.Users.ChangeStatus)
	mux.HandleFunc("POST /admin/users/{id}/reset-password", h.Users.ResetPassword)

	mux.HandleFunc("GET /admin/settings", h.Settings.List)
	mux.HandleFunc("GET /admin/settings/{section}", h.Settings.Get)
	mux.HandleFunc("PUT /admin/settings/{section}", h.Settings.Save)
	mux.HandleFunc("POST /admin/settings/{section}/reset", h.Settings.Reset)

	mux.HandleFunc("GET /grievances", h.Grievances.List)
	mux.HandleFunc("GET /grievances/{id}", h.Grievances.Get)
	mux.HandleFunc("PUT /grievances/{id}/status", h.Grievances.ChangeStatus)

	mux.HandleFunc("GET /opportunities", h.Opportunities.List)
	mux.HandleFunc("GET /opportunities/{id}", h.Opportunities.Get)
	mux.HandleFunc("POST /opportunities/{id}/approve", h.Opportunities.Approve)
	mux.HandleFunc("POST /opportunities/{id}/unapprove", h.Opportunities.Unapprove)

	mux.HandleFunc("GET /courses/{id}", h.Courses.Get)
	mux.HandleFunc("GET /courses/{id}/enrollments", h.Courses.ListEnrollments)
	mux.HandleFunc("POST /courses/{id}/enrollments", h.Courses.Enroll)
	mux.HandleFunc("DELETE /courses/{id}/enrollments/{studentId}", h.Courses.Unenroll)
}

// RegisterHealth mounts the unauthenticated probes.
func (h *HealthHandler) RegisterHealth(mux *http.ServeMux) {
	mux.HandleFunc("GET /live", h.Live)
	mux.HandleFunc("GET /ready", h.Ready)
	mux.HandleFunc("GET /health", h.Health)
}
