package admin

import (
	"strings"

	"github.com/heartmarshall/campusdesk-backend/internal/domain"
)

// ProfilePatch holds the editable profile fields. Nil means unchanged.
// Fields that do not apply to the user's role are ignored.
type ProfilePatch struct {
	Name        string
	Department  *string
	RollNo      *string
	Semester    *int
	Designation *string
}

// Validate validates the profile patch.
func (p ProfilePatch) Validate() error {
	var errs []domain.FieldError

	name := strings.TrimSpace(p.Name)
	if name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	} else if len(name) > 255 {
		errs = append(errs, domain.FieldError{Field: "name", Message: "too long"})
	}

	if p.Department != nil && len(*p.Department) > 120 {
		errs = append(errs, domain.FieldError{Field: "department", Message: "too long"})
	}
	if p.RollNo != nil && len(*p.RollNo) > 64 {
		errs = append(errs, domain.FieldError{Field: "rollNo", Message: "too long"})
	}
	if p.Semester != nil && (*p.Semester < 1 || *p.Semester > 12) {
		errs = append(errs, domain.FieldError{Field: "semester", Message: "must be between 1 and 12"})
	}
	if p.Designation != nil && len(*p.Designation) > 120 {
		errs = append(errs, domain.FieldError{Field: "designation", Message: "too long"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// apply returns u with the patch merged in and the names of changed fields.
func (p ProfilePatch) apply(u domain.User) (domain.User, []string) {
	var changed []string

	if name := strings.TrimSpace(p.Name); name != u.Name {
		u.Name = name
		changed = append(changed, "name")
	}
	if p.Department != nil {
		if d := strings.TrimSpace(*p.Department); d != u.Department {
			u.Department = d
			changed = append(changed, "department")
		}
	}

	if u.Role == domain.UserRoleStudent {
		if p.RollNo != nil {
			if r := strings.TrimSpace(*p.RollNo); r != u.Meta.RollNo {
				u.Meta.RollNo = r
				changed = append(changed, "rollNo")
			}
		}
		if p.Semester != nil && (u.Meta.Semester == nil || *u.Meta.Semester != *p.Semester) {
			sem := *p.Semester
			u.Meta.Semester = &sem
			changed = append(changed, "semester")
		}
	} else if p.Designation != nil {
		if d := strings.TrimSpace(*p.Designation); d != u.Meta.Designation {
			u.Meta.Designation = d
			changed = append(changed, "designation")
		}
	}

	return u, changed
}

// Page limits for listings.
const (
	defaultPageSize = 50
	maxPageSize     = 200
)

func clampPage(limit, offset int) (int, int) {
	if limit <= 0 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
