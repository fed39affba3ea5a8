package testhelper

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/campusdesk-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// Now returns the current time at the precision Postgres stores.
func Now() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

// SeedUser creates an ACTIVE user with the given role.
func SeedUser(t *testing.T, pool *pgxpool.Pool, role domain.UserRole) domain.User {
	t.Helper()

	suffix := uniqueSuffix()
	now := Now()
	u := domain.User{
		ID:         uuid.New(),
		Name:       "Test User " + suffix,
		Email:      "user-" + suffix + "@campus.edu",
		Role:       role,
		Status:     domain.UserStatusActive,
		Department: "CSE",
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if role == domain.UserRoleStudent {
		sem := 3
		u.Meta = domain.UserMeta{RollNo: "R-" + suffix, Semester: &sem}
	} else {
		u.Meta = domain.UserMeta{Designation: "Staff"}
	}

	meta, err := json.Marshal(u.Meta)
	if err != nil {
		t.Fatalf("testhelper: SeedUser marshal meta: %v", err)
	}

	_, err = pool.Exec(context.Background(),
		`INSERT INTO users (id, name, email, role, status, department, meta, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		u.ID, u.Name, u.Email, string(u.Role), string(u.Status), u.Department, meta, u.CreatedAt, u.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser insert: %v", err)
	}
	return u
}

// SeedGrievance creates a grievance raised by raisedBy.
func SeedGrievance(t *testing.T, pool *pgxpool.Pool, raisedBy uuid.UUID, priority domain.GrievancePriority, status domain.GrievanceStatus, createdAt time.Time) domain.Grievance {
	t.Helper()

	g := domain.Grievance{
		ID:          uuid.New(),
		Title:       "Grievance " + uniqueSuffix(),
		Description: "seeded",
		Category:    "Hostel",
		Priority:    priority,
		Status:      status,
		RaisedBy:    raisedBy,
		CreatedAt:   createdAt,
		UpdatedAt:   createdAt,
	}
	if status == domain.GrievanceStatusResolved || status == domain.GrievanceStatusClosed {
		resolved := createdAt.Add(24 * time.Hour)
		g.ResolvedAt = &resolved
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO grievances (id, title, description, category, priority, status, raised_by, created_at, updated_at, resolved_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		g.ID, g.Title, g.Description, g.Category, string(g.Priority), string(g.Status), g.RaisedBy, g.CreatedAt, g.UpdatedAt, g.ResolvedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedGrievance insert: %v", err)
	}
	return g
}

// SeedOpportunity creates an unapproved opportunity posted by postedBy.
func SeedOpportunity(t *testing.T, pool *pgxpool.Pool, postedBy uuid.UUID, postedAt time.Time) domain.Opportunity {
	t.Helper()

	o := domain.Opportunity{
		ID:        uuid.New(),
		Title:     "Opportunity " + uniqueSuffix(),
		Type:      "Internship",
		Tags:      []string{"AI", "Web"},
		PostedBy:  postedBy,
		PostedAt:  postedAt,
		UpdatedAt: postedAt,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO opportunities (id, title, type, tags, posted_by, approved, posted_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		o.ID, o.Title, o.Type, o.Tags, o.PostedBy, o.Approved, o.PostedAt, o.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedOpportunity insert: %v", err)
	}
	return o
}

// SeedCourse creates a course with the given capacity (0 = unlimited).
func SeedCourse(t *testing.T, pool *pgxpool.Pool, capacity int) domain.Course {
	t.Helper()

	c := domain.Course{
		ID:         uuid.New(),
		Code:       "C-" + uniqueSuffix(),
		Title:      "Seeded Course",
		Department: "CSE",
		Capacity:   capacity,
		UpdatedAt:  Now(),
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO courses (id, code, title, department, capacity, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		c.ID, c.Code, c.Title, c.Department, c.Capacity, c.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedCourse insert: %v", err)
	}
	return c
}
