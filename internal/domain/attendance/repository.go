package attendance

import (
	"context"
	"time"
)

// AttendanceRepository defines data access for canonical attendance records.
type AttendanceRepository interface {
	// Upsert creates or fully replaces the record for (EmployeeID, Date).
	Upsert(ctx context.Context, record Record) (Record, error)

	// Exists reports whether a record is present for the employee-day.
	Exists(ctx context.Context, employeeID string, date time.Time) (bool, error)

	// GetByEmployeeAndDate returns nil when no record exists.
	GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*Record, error)

	// FindEmployeeIDByBiometricRef returns the employee already linked to a
	// biometric identifier in prior imports, or "" when none is linked.
	FindEmployeeIDByBiometricRef(ctx context.Context, ref string) (string, error)

	// List retrieves records with filters and pagination.
	List(ctx context.Context, filter ListFilter) ([]Record, int64, error)
}
