package domain

// UserRole represents the dashboard a user works in and their authorization level.
type UserRole string

const (
	UserRoleStudent   UserRole = "student"
	UserRoleFaculty   UserRole = "faculty"
	UserRoleAuthority UserRole = "authority"
	UserRoleAdmin     UserRole = "admin"
)

func (r UserRole) String() string { return string(r) }

func (r UserRole) IsValid() bool {
	switch r {
	case UserRoleStudent, UserRoleFaculty, UserRoleAuthority, UserRoleAdmin:
		return true
	}
	return false
}

func (r UserRole) IsAdmin() bool {
	return r == UserRoleAdmin
}

// IsStaff reports whether the role carries a designation instead of
// student enrollment data.
func (r UserRole) IsStaff() bool {
	return r == UserRoleFaculty || r == UserRoleAuthority || r == UserRoleAdmin
}

// UserStatus is the account lifecycle state. DELETED is terminal.
type UserStatus string

const (
	UserStatusActive    UserStatus = "ACTIVE"
	UserStatusSuspended UserStatus = "SUSPENDED"
	UserStatusDeleted   UserStatus = "DELETED"
)

func (s UserStatus) String() string { return string(s) }

func (s UserStatus) IsValid() bool {
	switch s {
	case UserStatusActive, UserStatusSuspended, UserStatusDeleted:
		return true
	}
	return false
}

func (s UserStatus) IsTerminal() bool {
	return s == UserStatusDeleted
}

// EntityType identifies the kind of domain entity that owns an audit trail.
type EntityType string

const (
	EntityTypeUser        EntityType = "USER"
	EntityTypeGrievance   EntityType = "GRIEVANCE"
	EntityTypeOpportunity EntityType = "OPPORTUNITY"
	EntityTypeCourse      EntityType = "COURSE"
)

func (e EntityType) String() string { return string(e) }

func (e EntityType) IsValid() bool {
	switch e {
	case EntityTypeUser, EntityTypeGrievance, EntityTypeOpportunity, EntityTypeCourse:
		return true
	}
	return false
}

// AuditAction represents the kind of mutation recorded in an audit trail.
type AuditAction string

const (
	AuditActionUpdated       AuditAction = "UPDATED"
	AuditActionRoleChanged   AuditAction = "ROLE_CHANGED"
	AuditActionStatusChanged AuditAction = "STATUS_CHANGED"
	AuditActionPasswordReset AuditAction = "PASSWORD_RESET"
	AuditActionDeleted       AuditAction = "DELETED"
	AuditActionApproved      AuditAction = "APPROVED"
	AuditActionUnapproved    AuditAction = "UNAPPROVED"
	AuditActionEnrolled      AuditAction = "ENROLLED"
	AuditActionUnenrolled    AuditAction = "UNENROLLED"
	AuditActionEscalated     AuditAction = "ESCALATED"
)

func (a AuditAction) String() string { return string(a) }

func (a AuditAction) IsValid() bool {
	switch a {
	case AuditActionUpdated, AuditActionRoleChanged, AuditActionStatusChanged,
		AuditActionPasswordReset, AuditActionDeleted, AuditActionApproved,
		AuditActionUnapproved, AuditActionEnrolled, AuditActionUnenrolled,
		AuditActionEscalated:
		return true
	}
	return false
}

// GrievancePriority selects the SLA window applied to a grievance.
type GrievancePriority string

const (
	GrievancePriorityLow    GrievancePriority = "LOW"
	GrievancePriorityMedium GrievancePriority = "MEDIUM"
	GrievancePriorityHigh   GrievancePriority = "HIGH"
)

func (p GrievancePriority) String() string { return string(p) }

func (p GrievancePriority) IsValid() bool {
	switch p {
	case GrievancePriorityLow, GrievancePriorityMedium, GrievancePriorityHigh:
		return true
	}
	return false
}

// GrievanceStatus is the handling state of a grievance.
type GrievanceStatus string

const (
	GrievanceStatusOpen       GrievanceStatus = "OPEN"
	GrievanceStatusInProgress GrievanceStatus = "IN_PROGRESS"
	GrievanceStatusResolved   GrievanceStatus = "RESOLVED"
	GrievanceStatusClosed     GrievanceStatus = "CLOSED"
	GrievanceStatusRejected   GrievanceStatus = "REJECTED"
)

func (s GrievanceStatus) String() string { return string(s) }

func (s GrievanceStatus) IsValid() bool {
	switch s {
	case GrievanceStatusOpen, GrievanceStatusInProgress, GrievanceStatusResolved,
		GrievanceStatusClosed, GrievanceStatusRejected:
		return true
	}
	return false
}

// IsOpen reports whether the grievance still awaits handling and therefore
// counts against its SLA.
func (s GrievanceStatus) IsOpen() bool {
	return s == GrievanceStatusOpen || s == GrievanceStatusInProgress
}

// IsFinal reports whether no further transition is allowed.
func (s GrievanceStatus) IsFinal() bool {
	return s == GrievanceStatusClosed || s == GrievanceStatusRejected
}

// PolicySection names an independently stored configuration section.
type PolicySection string

const (
	PolicySectionBranding    PolicySection = "branding"
	PolicySectionAcademic    PolicySection = "academic"
	PolicySectionCalendar    PolicySection = "calendar"
	PolicySectionUserPolicy  PolicySection = "user-policy"
	PolicySectionGrievance   PolicySection = "grievance"
	PolicySectionOpportunity PolicySection = "opportunity"
)

// AllPolicySections lists every known section in display order.
var AllPolicySections = []PolicySection{
	PolicySectionBranding,
	PolicySectionAcademic,
	PolicySectionCalendar,
	PolicySectionUserPolicy,
	PolicySectionGrievance,
	PolicySectionOpportunity,
}

func (s PolicySection) String() string { return string(s) }

func (s PolicySection) IsValid() bool {
	switch s {
	case PolicySectionBranding, PolicySectionAcademic, PolicySectionCalendar,
		PolicySectionUserPolicy, PolicySectionGrievance, PolicySectionOpportunity:
		return true
	}
	return false
}
