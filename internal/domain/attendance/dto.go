package attendance

import (
	"strings"
	"time"
)

// ========================================
// IMPORT DTOs
// ========================================

// ImportOptions describes one invocation of the import pipeline. PeriodStart
// and PeriodEnd are optional; the absence backfill only runs when both are
// supplied.
type ImportOptions struct {
	Filename    string
	PeriodStart *time.Time
	PeriodEnd   *time.Time
	ImportType  string
	ImportedBy  string
}

func (o *ImportOptions) Validate() error {
	if strings.TrimSpace(o.Filename) == "" {
		return ErrFileUnreadable
	}
	if o.PeriodStart != nil && o.PeriodEnd != nil && o.PeriodStart.After(*o.PeriodEnd) {
		return ErrInvalidPeriod
	}
	return nil
}

// ImportResult is returned to the caller even when some rows failed; a file
// is never rejected wholesale because of a subset of bad rows.
type ImportResult struct {
	JobID             string   `json:"job_id"`
	TotalRows         int      `json:"total_rows"`
	SuccessCount      int      `json:"success_count"`
	FailedCount       int      `json:"failed_count"`
	SkippedCount      int      `json:"skipped_count"`
	UnknownMergedRows int      `json:"unknown_merged_rows"`
	AbsentMarkedCount int      `json:"absent_marked_count"`
	Errors            []string `json:"errors"`
}

// PeriodDetection is the result of the lightweight date-column scan used for
// UI pre-fill before a full import.
type PeriodDetection struct {
	PeriodStart time.Time `json:"period_start"`
	PeriodEnd   time.Time `json:"period_end"`
	TotalDates  int       `json:"total_dates"`
}

// ========================================
// LISTING DTOs
// ========================================

type ListFilter struct {
	EmployeeID *string
	StartDate  *string
	EndDate    *string
	Status     *string
	Page       int
	Limit      int
}

type RecordResponse struct {
	ID             string  `json:"id"`
	EmployeeID     string  `json:"employee_id"`
	EmployeeName   *string `json:"employee_name,omitempty"`
	Date           string  `json:"date"`
	ClockIn        *string `json:"clock_in"`
	ClockOut       *string `json:"clock_out"`
	BreakOut       *string `json:"break_out"`
	BreakIn        *string `json:"break_in"`
	TotalHours     string  `json:"total_hours"`
	OvertimeHours  string  `json:"overtime_hours"`
	UndertimeHours string  `json:"undertime_hours"`
	Status         string  `json:"status"`
	BiometricRef   *string `json:"biometric_ref,omitempty"`
	Remarks        *string `json:"remarks,omitempty"`
}

type ListRecordsResponse struct {
	TotalCount int64            `json:"total_count"`
	Page       int              `json:"page"`
	Limit      int              `json:"limit"`
	Records    []RecordResponse `json:"records"`
}
