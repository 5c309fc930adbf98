package attendanceimport

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/ren-lyn/hrms-system-backup12-sub008/internal/domain/attendance"
	"github.com/ren-lyn/hrms-system-backup12-sub008/internal/pkg/timeparse"
)

// Fixed reference times for status derivation. The late and overtime cutoffs
// are inclusive; standard start/end are strict.
var (
	standardStart  = timeparse.Clock{Hour: 8}
	standardEnd    = timeparse.Clock{Hour: 17}
	lateCutoff     = timeparse.Clock{Hour: 9}
	overtimeCutoff = timeparse.Clock{Hour: 18}
)

var (
	fullDayHours   = decimal.NewFromInt(8)
	minutesPerHour = decimal.NewFromInt(60)
)

// classifyContext carries everything the status decision reads. All fields
// are inputs only; classification never mutates external state.
type classifyContext struct {
	StatusHint      string
	HolidayTypeHint string
	IsHoliday       bool
	OnApprovedLeave bool
	WorkingDay      bool
	ClockIn         *timeparse.Clock
	ClockOut        *timeparse.Clock
}

// classifyStatus assigns one attendance status per employee-day. Rules are
// evaluated in order; the first match wins.
func classifyStatus(c classifyContext) attendance.Status {
	if s, ok := attendance.ParseStatus(c.StatusHint); ok {
		return s
	}

	if strings.TrimSpace(c.HolidayTypeHint) != "" || c.IsHoliday {
		if c.ClockIn != nil {
			return attendance.StatusHolidayWorked
		}
		return attendance.StatusHolidayNoWork
	}

	if c.OnApprovedLeave {
		return attendance.StatusOnLeave
	}

	// A non-working day with no punch is not an anomaly, but it is still
	// recorded as Absent for reporting consistency.
	if !c.WorkingDay {
		return attendance.StatusAbsent
	}

	if c.ClockIn == nil || c.ClockOut == nil {
		return attendance.StatusAbsent
	}

	in, out := *c.ClockIn, *c.ClockOut
	isLate := in.After(standardStart)
	isEarlyOut := out.Before(standardEnd)
	isTooLate := !in.Before(lateCutoff)
	isOvertime := !out.Before(overtimeCutoff)

	switch {
	case isOvertime && !isLate && !isEarlyOut:
		return attendance.StatusOvertime
	case isTooLate || isEarlyOut:
		return attendance.StatusUndertime
	case isLate:
		return attendance.StatusLate
	default:
		return attendance.StatusPresent
	}
}

// computeHours derives total/overtime/undertime hours from clock times,
// subtracting the break interval when both break punches are present. All
// three are zero when either clock time is absent.
func computeHours(in, out, breakOut, breakIn *timeparse.Clock) (total, overtime, undertime decimal.Decimal) {
	total, overtime, undertime = decimal.Zero, decimal.Zero, decimal.Zero
	if in == nil || out == nil {
		return total, overtime, undertime
	}

	minutes := (out.Seconds() - in.Seconds()) / 60
	if breakOut != nil && breakIn != nil {
		if b := (breakIn.Seconds() - breakOut.Seconds()) / 60; b > 0 {
			minutes -= b
		}
	}
	if minutes < 0 {
		minutes = 0
	}

	total = decimal.NewFromInt(int64(minutes)).Div(minutesPerHour).Round(2)
	if total.GreaterThan(fullDayHours) {
		overtime = total.Sub(fullDayHours).Round(2)
	}
	if total.LessThan(fullDayHours) {
		undertime = fullDayHours.Sub(total).Round(2)
	}
	return total, overtime, undertime
}
