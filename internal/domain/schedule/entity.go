package schedule

import "time"

// WorkShift is a per-employee mapping from ISO weekday to working or
// non-working, used to decide whether an absence is meaningful.
type WorkShift struct {
	ID   string
	Name string
	// Days is keyed by ISO weekday, 1=Monday .. 7=Sunday.
	Days      map[int]bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsWorkingDay reports whether the ISO weekday is a working day.
func (s WorkShift) IsWorkingDay(isoWeekday int) bool {
	return s.Days[isoWeekday]
}

// DefaultShift is the Monday-to-Friday calendar applied to employees without
// an assigned shift.
func DefaultShift() WorkShift {
	return WorkShift{
		Name: "default",
		Days: map[int]bool{1: true, 2: true, 3: true, 4: true, 5: true},
	}
}

// ISOWeekday converts time.Weekday (Sunday=0) to ISO numbering (Monday=1).
func ISOWeekday(t time.Time) int {
	wd := int(t.Weekday())
	if wd == 0 {
		return 7
	}
	return wd
}
