package response

import (
	"errors"
	"net/http"

	"github.com/ren-lyn/hrms-system-backup12-sub008/internal/domain/attendance"
	"github.com/ren-lyn/hrms-system-backup12-sub008/internal/domain/employee"
	"github.com/ren-lyn/hrms-system-backup12-sub008/internal/domain/importjob"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	switch {
	// Attendance domain errors
	case errors.Is(err, attendance.ErrFileUnreadable):
		BadRequest(w, "File could not be read as a spreadsheet or CSV", nil)
	case errors.Is(err, attendance.ErrInvalidPeriod):
		BadRequest(w, "Period start must not be after period end", nil)
	case errors.Is(err, attendance.ErrPeriodOverlap):
		Conflict(w, "An import already covers part of this period")
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrAmbiguousName):
		Conflict(w, "Employee name matches more than one record")

	// Import job errors
	case errors.Is(err, importjob.ErrJobNotFound):
		NotFound(w, "Import job not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
