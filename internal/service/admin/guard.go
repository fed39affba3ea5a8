package admin

import (
	"github.com/google/uuid"

	"github.com/heartmarshall/campusdesk-backend/internal/domain"
)

func requireActor(a domain.Actor) error {
	if a.ID == uuid.Nil && !a.IsSystem() {
		return domain.ErrUnauthorized
	}
	if !a.Role.IsValid() {
		return domain.ErrUnauthorized
	}
	return nil
}

func requireAdmin(a domain.Actor) error {
	if err := requireActor(a); err != nil {
		return err
	}
	if !a.Role.IsAdmin() {
		return domain.ErrForbidden
	}
	return nil
}

// requireHandler admits roles that work the grievance queue.
func requireHandler(a domain.Actor) error {
	if err := requireActor(a); err != nil {
		return err
	}
	if !isHandler(a) {
		return domain.ErrForbidden
	}
	return nil
}

func isHandler(a domain.Actor) bool {
	return a.Role == domain.UserRoleAuthority || a.Role == domain.UserRoleAdmin
}

// requireStaff admits every non-student role.
func requireStaff(a domain.Actor) error {
	if err := requireActor(a); err != nil {
		return err
	}
	if !a.Role.IsStaff() {
		return domain.ErrForbidden
	}
	return nil
}
