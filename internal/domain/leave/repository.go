package leave

import (
	"context"
	"time"
)

// LeaveRequestRepository is the read-only leave ledger collaborator.
type LeaveRequestRepository interface {
	// HasApprovedLeave reports whether an approved leave request spans the
	// given date for the employee.
	HasApprovedLeave(ctx context.Context, employeeID string, date time.Time) (bool, error)
}
