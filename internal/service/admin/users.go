package admin

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/campusdesk-backend/internal/domain"
	"github.com/heartmarshall/campusdesk-backend/internal/lifecycle"
)

// userMutation computes the next state of a locked user together with the
// audit action and message describing it.
type userMutation func(ctx context.Context, u domain.User, now time.Time) (domain.User, domain.AuditAction, string, error)

// mutateUser runs m against the locked row of userID and commits the new
// state with one audit event. The returned user carries its full history.
func (s *Service) mutateUser(ctx context.Context, op string, userID uuid.UUID, actor domain.Actor, m userMutation) (domain.User, error) {
	var (
		out    domain.User
		action domain.AuditAction
	)

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		cur, err := s.users.GetForUpdate(txCtx, userID)
		if err != nil {
			return err
		}

		next, act, msg, err := m(txCtx, cur, s.now())
		if err != nil {
			return err
		}

		saved, err := s.users.Update(txCtx, next)
		if err != nil {
			return fmt.Errorf("update user: %w", err)
		}

		ref := domain.UserRef(userID)
		if _, err := s.audit.Append(txCtx, ref, act, actor, msg); err != nil {
			return fmt.Errorf("append audit: %w", err)
		}
		if saved.Audit, err = s.audit.History(txCtx, ref); err != nil {
			return fmt.Errorf("read history: %w", err)
		}

		out, action = saved, act
		return nil
	})
	if err != nil {
		s.rejected(domain.EntityTypeUser, err)
		return domain.User{}, fmt.Errorf("admin.%s: %w", op, err)
	}

	s.rec.RecordTransition(domain.EntityTypeUser.String(), action.String())
	s.log.InfoContext(ctx, "user updated",
		slog.String("op", op),
		slog.String("user_id", userID.String()),
		slog.String("actor_id", actor.ID.String()),
		slog.String("action", action.String()),
	)
	return out, nil
}

// ChangeRole assigns a new role to a user.
func (s *Service) ChangeRole(ctx context.Context, userID uuid.UUID, role domain.UserRole, actor domain.Actor) (domain.User, error) {
	if err := requireAdmin(actor); err != nil {
		return domain.User{}, err
	}

	return s.mutateUser(ctx, "ChangeRole", userID, actor, func(_ context.Context, u domain.User, now time.Time) (domain.User, domain.AuditAction, string, error) {
		next, err := lifecycle.TransitionUser(u, lifecycle.UserChange{Role: &role}, actor, now)
		if err != nil {
			return domain.User{}, "", "", err
		}
		return next, domain.AuditActionRoleChanged, fmt.Sprintf("Role changed from %s to %s", u.Role, role), nil
	})
}

// ChangeStatus moves a user along the status lifecycle.
func (s *Service) ChangeStatus(ctx context.Context, userID uuid.UUID, status domain.UserStatus, actor domain.Actor) (domain.User, error) {
	if err := requireAdmin(actor); err != nil {
		return domain.User{}, err
	}

	return s.mutateUser(ctx, "ChangeStatus", userID, actor, func(_ context.Context, u domain.User, now time.Time) (domain.User, domain.AuditAction, string, error) {
		next, err := lifecycle.TransitionUser(u, lifecycle.UserChange{Status: &status}, actor, now)
		if err != nil {
			return domain.User{}, "", "", err
		}
		return next, domain.AuditActionStatusChanged, fmt.Sprintf("Status changed from %s to %s", u.Status, status), nil
	})
}

// UpdateProfile edits name, department and the role-appropriate meta fields.
// Saving an identical profile succeeds and is still recorded as UPDATED.
func (s *Service) UpdateProfile(ctx context.Context, userID uuid.UUID, patch ProfilePatch, actor domain.Actor) (domain.User, error) {
	if err := requireAdmin(actor); err != nil {
		return domain.User{}, err
	}
	if err := patch.Validate(); err != nil {
		return domain.User{}, err
	}

	return s.mutateUser(ctx, "UpdateProfile", userID, actor, func(_ context.Context, u domain.User, now time.Time) (domain.User, domain.AuditAction, string, error) {
		if err := lifecycle.EnsureMutable(u); err != nil {
			return domain.User{}, "", "", err
		}

		next, changed := patch.apply(u)
		next.UpdatedAt = now
		if len(changed) == 0 {
			return next, domain.AuditActionUpdated, "Profile saved: no changes", nil
		}
		return next, domain.AuditActionUpdated, "Profile updated: " + strings.Join(changed, ", "), nil
	})
}

// ResetPassword issues a password reset link for the user.
func (s *Service) ResetPassword(ctx context.Context, userID uuid.UUID, actor domain.Actor) (domain.User, error) {
	if err := requireAdmin(actor); err != nil {
		return domain.User{}, err
	}

	return s.mutateUser(ctx, "ResetPassword", userID, actor, func(txCtx context.Context, u domain.User, now time.Time) (domain.User, domain.AuditAction, string, error) {
		if err := lifecycle.EnsureMutable(u); err != nil {
			return domain.User{}, "", "", err
		}
		if _, err := s.resetter.IssueReset(txCtx, u); err != nil {
			return domain.User{}, "", "", fmt.Errorf("issue reset: %w", err)
		}
		u.UpdatedAt = now
		return u, domain.AuditActionPasswordReset, "Password reset link sent to " + u.Email, nil
	})
}

// DeleteUser soft-deletes a user. Deleting one's own account is refused
// before anything is read.
func (s *Service) DeleteUser(ctx context.Context, userID uuid.UUID, actor domain.Actor) (domain.User, error) {
	if err := requireActor(actor); err != nil {
		return domain.User{}, err
	}
	if userID == actor.ID {
		s.rec.RecordRejection(domain.EntityTypeUser.String(), "self_delete")
		return domain.User{}, fmt.Errorf("admin.DeleteUser: %w", &domain.TransitionError{
			Entity: domain.EntityTypeUser,
			To:     domain.UserStatusDeleted.String(),
			Err:    domain.ErrSelfDeleteForbidden,
		})
	}
	if err := requireAdmin(actor); err != nil {
		return domain.User{}, err
	}

	deleted := domain.UserStatusDeleted
	return s.mutateUser(ctx, "DeleteUser", userID, actor, func(_ context.Context, u domain.User, now time.Time) (domain.User, domain.AuditAction, string, error) {
		next, err := lifecycle.TransitionUser(u, lifecycle.UserChange{Status: &deleted}, actor, now)
		if err != nil {
			return domain.User{}, "", "", err
		}
		return next, domain.AuditActionDeleted, "User deleted", nil
	})
}

// GetUser returns a user with its audit history. Admins may read anyone,
// other actors only themselves.
func (s *Service) GetUser(ctx context.Context, userID uuid.UUID, actor domain.Actor) (domain.User, error) {
	if err := requireActor(actor); err != nil {
		return domain.User{}, err
	}
	if !actor.Role.IsAdmin() && actor.ID != userID {
		return domain.User{}, domain.ErrForbidden
	}

	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return domain.User{}, fmt.Errorf("admin.GetUser: %w", err)
	}
	if u.Audit, err = s.audit.History(ctx, domain.UserRef(userID)); err != nil {
		return domain.User{}, fmt.Errorf("admin.GetUser: %w", err)
	}
	return u, nil
}

// ListUsers returns a filtered page of users and the total match count.
func (s *Service) ListUsers(ctx context.Context, f domain.UserFilter, actor domain.Actor) ([]domain.User, int, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, 0, err
	}
	if f.Role != nil && !f.Role.IsValid() {
		return nil, 0, domain.NewValidationError("role", "unknown role")
	}
	if f.Status != nil && !f.Status.IsValid() {
		return nil, 0, domain.NewValidationError("status", "unknown status")
	}
	f.Limit, f.Offset = clampPage(f.Limit, f.Offset)

	users, total, err := s.users.List(ctx, f)
	if err != nil {
		return nil, 0, fmt.Errorf("admin.ListUsers: %w", err)
	}
	return users, total, nil
}
