package domain

import (
	"time"

	"github.com/google/uuid"
)

// UserFilter contains filtering/pagination parameters for user listings.
type UserFilter struct {
	Search     *string
	Role       *UserRole
	Status     *UserStatus
	Department *string
	// IncludeDeleted lists DELETED users too; they are hidden by default.
	IncludeDeleted bool
	Limit          int
	Offset         int
}

// GrievanceFilter contains filtering/pagination parameters for grievance listings.
type GrievanceFilter struct {
	Status   *GrievanceStatus
	Priority *GrievancePriority
	Category *string
	RaisedBy *uuid.UUID
	// OpenOnly restricts the listing to OPEN and IN_PROGRESS grievances.
	OpenOnly bool
	Limit    int
	Offset   int
}

// OpportunityFilter contains filtering/pagination parameters for opportunity listings.
type OpportunityFilter struct {
	Type     *string
	Approved *bool
	// PostedAfter hides postings at or before the given instant.
	PostedAfter *time.Time
	Limit       int
	Offset      int
}
