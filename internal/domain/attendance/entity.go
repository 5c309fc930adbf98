package attendance

import (
	"time"

	"github.com/shopspring/decimal"
)

// Record is the canonical daily attendance entity. At most one record exists
// per (EmployeeID, Date); the persister replaces the whole record on conflict.
type Record struct {
	ID             string
	EmployeeID     string
	Date           time.Time
	ClockIn        *time.Time
	ClockOut       *time.Time
	BreakOut       *time.Time
	BreakIn        *time.Time
	TotalHours     decimal.Decimal
	OvertimeHours  decimal.Decimal
	UndertimeHours decimal.Decimal
	Status         Status
	BiometricRef   *string
	Remarks        *string
	CreatedAt      time.Time
	UpdatedAt      time.Time

	// DTO
	EmployeeName *string
}

// MinBusinessDate is the earliest plausible attendance date. Records dated
// before it come from parse failures collapsing to an epoch timestamp and
// are silently discarded by the persist path.
var MinBusinessDate = time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)
