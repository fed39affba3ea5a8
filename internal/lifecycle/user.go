// Package lifecycle decides which state changes are legal for managed
// entities. It is pure: no storage, no context, no logger. Callers load a
// snapshot, ask the engine for the next snapshot and persist it themselves.
package lifecycle

import (
	"time"

	"github.com/heartmarshall/campusdesk-backend/internal/domain"
)

// userStatusTransitions lists the legal targets per source status.
// DELETED has no entry: it is terminal.
var userStatusTransitions = map[domain.UserStatus][]domain.UserStatus{
	domain.UserStatusActive:    {domain.UserStatusSuspended, domain.UserStatusDeleted},
	domain.UserStatusSuspended: {domain.UserStatusActive, domain.UserStatusDeleted},
}

// UserChange requests a status change, a role change or both.
// Status is applied before Role.
type UserChange struct {
	Status *domain.UserStatus
	Role   *domain.UserRole
}

// TransitionUser applies change to u on behalf of actor and returns the new
// snapshot. u itself is never modified.
func TransitionUser(u domain.User, change UserChange, actor domain.Actor, at time.Time) (domain.User, error) {
	if change.Status == nil && change.Role == nil {
		return u, domain.NewValidationError("change", "nothing to change")
	}

	next := u

	if change.Status != nil {
		if err := checkUserStatus(next, *change.Status, actor); err != nil {
			return u, err
		}
		next.Status = *change.Status
	}

	if change.Role != nil {
		if err := checkUserRole(next, *change.Role, actor); err != nil {
			return u, err
		}
		next.Role = *change.Role
		next.Meta = next.Meta.ForRole(next.Role)
	}

	next.UpdatedAt = at
	return next, nil
}

// EnsureMutable rejects edits to a user that reached the terminal status.
func EnsureMutable(u domain.User) error {
	if u.Status.IsTerminal() {
		return &domain.TransitionError{
			Entity: domain.EntityTypeUser,
			From:   string(u.Status),
			To:     string(u.Status),
			Err:    domain.ErrTerminalState,
		}
	}
	return nil
}

func checkUserStatus(u domain.User, to domain.UserStatus, actor domain.Actor) error {
	fail := func(err error) error {
		return &domain.TransitionError{Entity: domain.EntityTypeUser, From: string(u.Status), To: string(to), Err: err}
	}

	if u.Status.IsTerminal() {
		return fail(domain.ErrTerminalState)
	}
	if !to.IsValid() {
		return fail(domain.ErrInvalidTransition)
	}
	if to == u.Status {
		return fail(domain.ErrNoopTransition)
	}
	if actor.ID == u.ID {
		switch to {
		case domain.UserStatusDeleted:
			return fail(domain.ErrSelfDeleteForbidden)
		case domain.UserStatusSuspended:
			return fail(domain.ErrSelfSuspendForbidden)
		}
	}
	for _, allowed := range userStatusTransitions[u.Status] {
		if allowed == to {
			return nil
		}
	}
	return fail(domain.ErrInvalidTransition)
}

func checkUserRole(u domain.User, to domain.UserRole, actor domain.Actor) error {
	fail := func(err error) error {
		return &domain.TransitionError{Entity: domain.EntityTypeUser, From: string(u.Role), To: string(to), Err: err}
	}

	if u.Status.IsTerminal() {
		return fail(domain.ErrTerminalState)
	}
	if !to.IsValid() {
		return fail(domain.ErrInvalidTransition)
	}
	if to == u.Role {
		return fail(domain.ErrNoopTransition)
	}
	if actor.ID == u.ID && u.Role.IsAdmin() && !to.IsAdmin() {
		return fail(domain.ErrSelfDemoteForbidden)
	}
	return nil
}
