package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/campusdesk-backend/internal/domain"
	"github.com/heartmarshall/campusdesk-backend/internal/service/admin"
	"github.com/heartmarshall/campusdesk-backend/pkg/ctxutil"
)

type userService interface {
	GetUser(ctx context.Context, id uuid.UUID, actor domain.Actor) (domain.User, error)
	ListUsers(ctx context.Context, f domain.UserFilter, actor domain.Actor) ([]domain.User, int, error)
	ChangeRole(ctx context.Context, id uuid.UUID, role domain.UserRole, actor domain.Actor) (domain.User, error)
	ChangeStatus(ctx context.Context, id uuid.UUID, status domain.UserStatus, actor domain.Actor) (domain.User, error)
	UpdateProfile(ctx context.Context, id uuid.UUID, patch admin.ProfilePatch, actor domain.Actor) (domain.User, error)
	ResetPassword(ctx context.Context, id uuid.UUID, actor domain.Actor) (domain.User, error)
	DeleteUser(ctx context.Context, id uuid.UUID, actor domain.Actor) (domain.User, error)
}

// UserHandler serves /admin/users.
type UserHandler struct {
	svc userService
	log *slog.Logger
}

// NewUserHandler creates a UserHandler.
func NewUserHandler(svc userService, logger *slog.Logger) *UserHandler {
	return &UserHandler{svc: svc, log: logger.With("handler", "users")}
}

type roleRequest struct {
	Role string `json:"role"`
}

type statusRequest struct {
	Status string `json:"status"`
}

type profileRequest struct {
	Name        string  `json:"name"`
	Department  *string `json:"department"`
	RollNo      *string `json:"rollNo"`
	Semester    *int    `json:"semester"`
	Designation *string `json:"designation"`
}

// List handles GET /admin/users?search=&role=&status=&department=&includeDeleted=&limit=&offset=.
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	limit, offset, ok := pageParams(w, r)
	if !ok {
		return
	}

	f := domain.UserFilter{
		Search:         queryString(r, "search"),
		Department:     queryString(r, "department"),
		IncludeDeleted: r.URL.Query().Get("includeDeleted") == "true",
		Limit:          limit,
		Offset:         offset,
	}
	if v := queryString(r, "role"); v != nil {
		role := domain.UserRole(*v)
		f.Role = &role
	}
	if v := queryString(r, "status"); v != nil {
		status := domain.UserStatus(*v)
		f.Status = &status
	}

	users, total, err := h.svc.ListUsers(r.Context(), f, actorOf(r))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, newList(users, total, f.Limit, f.Offset, toUserResponse))
}

// Get handles GET /admin/users/{id}.
func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	u, err := h.svc.GetUser(r.Context(), id, actorOf(r))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toUserResponse(u))
}

// ChangeRole handles PUT /admin/users/{id}/role.
func (h *UserHandler) ChangeRole(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	var req roleRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	h.respond(w, r)(h.svc.ChangeRole(r.Context(), id, domain.UserRole(req.Role), actorOf(r)))
}

// ChangeStatus handles PUT /admin/users/{id}/status.
func (h *UserHandler) ChangeStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	var req statusRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	h.respond(w, r)(h.svc.ChangeStatus(r.Context(), id, domain.UserStatus(req.Status), actorOf(r)))
}

// UpdateProfile handles PATCH /admin/users/{id}.
func (h *UserHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	var req profileRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	patch := admin.ProfilePatch{
		Name:        req.Name,
		Department:  req.Department,
		RollNo:      req.RollNo,
		Semester:    req.Semester,
		Designation: req.Designation,
	}
	h.respond(w, r)(h.svc.UpdateProfile(r.Context(), id, patch, actorOf(r)))
}

// ResetPassword handles POST /admin/users/{id}/reset-password.
func (h *UserHandler) ResetPassword(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	h.respond(w, r)(h.svc.ResetPassword(r.Context(), id, actorOf(r)))
}

// Delete handles DELETE /admin/users/{id}.
func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	h.respond(w, r)(h.svc.DeleteUser(r.Context(), id, actorOf(r)))
}

// respond writes the result of a user mutation.
func (h *UserHandler) respond(w http.ResponseWriter, r *http.Request) func(domain.User, error) {
	return func(u domain.User, err error) {
		if err != nil {
			handleError(h.log, w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, toUserResponse(u))
	}
}

// actorOf returns the authenticated actor, or the zero actor which every
// service rejects as unauthenticated.
func actorOf(r *http.Request) domain.Actor {
	a, _ := ctxutil.ActorFromCtx(r.Context())
	return a
}
