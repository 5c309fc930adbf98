package attendance

import "errors"

// Attendance domain errors
var (
	ErrAttendanceNotFound = errors.New("attendance record not found")
	ErrFileUnreadable     = errors.New("import file is missing or unreadable")
	ErrPeriodOverlap      = errors.New("an import for an overlapping period has already been recorded")
	ErrInvalidPeriod      = errors.New("period start must not be after period end")
)
