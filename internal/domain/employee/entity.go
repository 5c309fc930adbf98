package employee

import (
	"strings"
	"time"
)

type Employee struct {
	ID               string
	UserID           *string
	EmployeeCode     string
	LegacyID         *string
	FirstName        string
	LastName         string
	Department       *string
	Position         *string
	Role             Role
	WorkShiftID      *string
	HireDate         time.Time
	EmploymentStatus EmploymentStatus
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func (e Employee) FullName() string {
	return strings.TrimSpace(e.FirstName + " " + e.LastName)
}

type Role string

const (
	RoleEmployee Role = "employee"
	RoleManager  Role = "manager"
	// RoleApplicant marks accounts without a working assignment; the absence
	// backfill never synthesizes records for them.
	RoleApplicant Role = "applicant"
)

type EmploymentStatus string

const (
	EmploymentStatusActive     EmploymentStatus = "active"
	EmploymentStatusResigned   EmploymentStatus = "resigned"
	EmploymentStatusTerminated EmploymentStatus = "terminated"
)

// NameQuery is the strict-equality directory query used by the name-fallback
// resolution step. The repository matches the full-name concatenations in all
// three orderings ("first last", "last first", "last, first") against Full,
// plus the exact and swapped (First, Last) token pairs; department/position
// hints further constrain the match when present. Full carries the
// whitespace-normalized display name so compound surnames survive the
// first/last token split.
type NameQuery struct {
	First      string
	Last       string
	Full       string
	Department *string
	Position   *string
}
