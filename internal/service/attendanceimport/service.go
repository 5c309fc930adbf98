package attendanceimport

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/ren-lyn/hrms-system-backup12-sub008/internal/domain/attendance"
	"github.com/ren-lyn/hrms-system-backup12-sub008/internal/domain/employee"
	"github.com/ren-lyn/hrms-system-backup12-sub008/internal/domain/holiday"
	"github.com/ren-lyn/hrms-system-backup12-sub008/internal/domain/importjob"
	"github.com/ren-lyn/hrms-system-backup12-sub008/internal/domain/leave"
	"github.com/ren-lyn/hrms-system-backup12-sub008/internal/domain/schedule"
	"github.com/ren-lyn/hrms-system-backup12-sub008/internal/domain/user"
	"github.com/ren-lyn/hrms-system-backup12-sub008/internal/pkg/tabular"
	"github.com/ren-lyn/hrms-system-backup12-sub008/internal/pkg/timeparse"
)

// errImplausibleDate marks records guarded out by the minimum plausible
// business date; they are dropped without being counted as failures.
var errImplausibleDate = errors.New("attendance date before minimum plausible business date")

type ImportServiceImpl struct {
	attendance.AttendanceRepository
	employee.EmployeeRepository
	holiday.HolidayRepository
	leave.LeaveRequestRepository
	schedule.WorkShiftRepository
	user.UserRepository
	importjob.ImportJobRepository
}

func NewImportService(
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
	holidayRepo holiday.HolidayRepository,
	leaveRepo leave.LeaveRequestRepository,
	shiftRepo schedule.WorkShiftRepository,
	userRepo user.UserRepository,
	jobRepo importjob.ImportJobRepository,
) attendance.ImportService {
	return &ImportServiceImpl{
		AttendanceRepository:   attendanceRepo,
		EmployeeRepository:     employeeRepo,
		HolidayRepository:      holidayRepo,
		LeaveRequestRepository: leaveRepo,
		WorkShiftRepository:    shiftRepo,
		UserRepository:         userRepo,
		ImportJobRepository:    jobRepo,
	}
}

// Import implements attendance.ImportService. One file in, one terminal
// import-job state out; row-level failures are accumulated, never thrown.
func (s *ImportServiceImpl) Import(ctx context.Context, file io.Reader, opts attendance.ImportOptions) (attendance.ImportResult, error) {
	if err := opts.Validate(); err != nil {
		return attendance.ImportResult{}, err
	}
	if file == nil {
		return attendance.ImportResult{}, attendance.ErrFileUnreadable
	}

	job := importjob.ImportJob{
		Filename:    opts.Filename,
		PeriodStart: opts.PeriodStart,
		PeriodEnd:   opts.PeriodEnd,
		ImportType:  opts.ImportType,
		Status:      importjob.StatusProcessing,
	}
	if job.ImportType == "" {
		job.ImportType = "biometric"
	}
	if opts.ImportedBy != "" {
		importedBy := opts.ImportedBy
		job.ImportedBy = &importedBy
	}

	job, err := s.ImportJobRepository.Create(ctx, job)
	if err != nil {
		return attendance.ImportResult{}, fmt.Errorf("create import job: %w", err)
	}

	rows, err := tabular.Read(file, opts.Filename)
	if err != nil {
		s.failJob(ctx, &job, err)
		return attendance.ImportResult{}, fmt.Errorf("%w: %v", attendance.ErrFileUnreadable, err)
	}

	headerIdx := tabular.ResolveHeaderRow(rows)
	data := tabular.MapRows(rows, headerIdx)

	groups, stats := aggregateRows(data)
	job.TotalRows = stats.Total
	job.SkippedRows = stats.Skipped
	job.FailedRows = stats.Failed
	for _, msg := range stats.Errors {
		job.AppendError(msg)
	}

	for _, g := range groups {
		err := s.processGroup(ctx, g)
		switch {
		case err == nil:
			job.SuccessfulRows++
		case errors.Is(err, errImplausibleDate):
			slog.Warn("dropping record with implausible date",
				"identifier", g.Identifier, "date", g.Date.Format("2006-01-02"))
			job.SkippedRows++
		default:
			job.FailedRows++
			job.AppendError(fmt.Sprintf("%s %s: %v", g.Identifier, g.Date.Format("2006-01-02"), err))
		}
	}

	if opts.PeriodStart != nil && opts.PeriodEnd != nil {
		s.backfillAbsences(ctx, &job, *opts.PeriodStart, *opts.PeriodEnd)
	}

	now := time.Now().UTC()
	job.Status = importjob.StatusCompleted
	job.CompletedAt = &now
	if err := s.ImportJobRepository.Finish(ctx, job); err != nil {
		slog.Error("failed to finalize import job", "job_id", job.ID, "error", err)
	}

	return attendance.ImportResult{
		JobID:             job.ID,
		TotalRows:         job.TotalRows,
		SuccessCount:      job.SuccessfulRows,
		FailedCount:       job.FailedRows,
		SkippedCount:      job.SkippedRows,
		UnknownMergedRows: stats.UnknownMerged,
		AbsentMarkedCount: job.AbsentMarked,
		Errors:            job.Errors,
	}, nil
}

// processGroup reduces, resolves, classifies and persists one employee-day.
func (s *ImportServiceImpl) processGroup(ctx context.Context, g *punchGroup) error {
	g.reduce()

	emp, err := s.resolveEmployee(ctx, g)
	if err != nil {
		return err
	}

	isHoliday, err := s.HolidayRepository.IsHoliday(ctx, g.Date)
	if err != nil {
		return fmt.Errorf("holiday lookup: %w", err)
	}

	onLeave, err := s.LeaveRequestRepository.HasApprovedLeave(ctx, emp.ID, g.Date)
	if err != nil {
		return fmt.Errorf("leave lookup: %w", err)
	}

	shift := s.shiftFor(ctx, emp)

	status := classifyStatus(classifyContext{
		StatusHint:      g.StatusHint,
		HolidayTypeHint: g.HolidayTypeHint,
		IsHoliday:       isHoliday,
		OnApprovedLeave: onLeave,
		WorkingDay:      shift.IsWorkingDay(schedule.ISOWeekday(g.Date)),
		ClockIn:         g.TimeIn,
		ClockOut:        g.TimeOut,
	})

	total, overtime, undertime := computeHours(g.TimeIn, g.TimeOut, g.BreakOut, g.BreakIn)

	record := attendance.Record{
		EmployeeID:     emp.ID,
		Date:           g.Date,
		ClockIn:        clockAt(g.TimeIn, g.Date),
		ClockOut:       clockAt(g.TimeOut, g.Date),
		BreakOut:       clockAt(g.BreakOut, g.Date),
		BreakIn:        clockAt(g.BreakIn, g.Date),
		TotalHours:     total,
		OvertimeHours:  overtime,
		UndertimeHours: undertime,
		Status:         status,
	}
	if g.Identifier != unknownIdentifier {
		ref := g.Identifier
		record.BiometricRef = &ref
	}

	return s.persistRecord(ctx, record)
}

// persistRecord upserts one record, guarding against dates produced by parse
// failures that collapsed to an epoch timestamp.
func (s *ImportServiceImpl) persistRecord(ctx context.Context, record attendance.Record) error {
	if record.Date.Before(attendance.MinBusinessDate) {
		return errImplausibleDate
	}
	if _, err := s.AttendanceRepository.Upsert(ctx, record); err != nil {
		return fmt.Errorf("persist attendance: %w", err)
	}
	return nil
}

// shiftFor loads the employee's shift calendar, falling back to the default
// Monday-to-Friday calendar when no shift is assigned or loadable.
func (s *ImportServiceImpl) shiftFor(ctx context.Context, emp employee.Employee) schedule.WorkShift {
	if emp.WorkShiftID == nil {
		return schedule.DefaultShift()
	}
	shift, err := s.WorkShiftRepository.GetByID(ctx, *emp.WorkShiftID)
	if err != nil {
		slog.Warn("work shift not loadable, using default calendar",
			"employee_id", emp.ID, "shift_id", *emp.WorkShiftID, "error", err)
		return schedule.DefaultShift()
	}
	return shift
}

func (s *ImportServiceImpl) failJob(ctx context.Context, job *importjob.ImportJob, cause error) {
	now := time.Now().UTC()
	job.Status = importjob.StatusFailed
	job.CompletedAt = &now
	job.AppendError(cause.Error())
	if err := s.ImportJobRepository.Finish(ctx, *job); err != nil {
		slog.Error("failed to record failed import job", "job_id", job.ID, "error", err)
	}
}

// CheckPeriodOverlap implements attendance.ImportService.
func (s *ImportServiceImpl) CheckPeriodOverlap(ctx context.Context, start, end *time.Time) error {
	if start == nil || end == nil {
		return nil
	}
	overlap, err := s.ImportJobRepository.HasOverlappingPeriod(ctx, *start, *end)
	if err != nil {
		return fmt.Errorf("check period overlap: %w", err)
	}
	if overlap {
		return attendance.ErrPeriodOverlap
	}
	return nil
}

// List implements attendance.ImportService.
func (s *ImportServiceImpl) List(ctx context.Context, filter attendance.ListFilter) (attendance.ListRecordsResponse, error) {
	if filter.Limit <= 0 {
		filter.Limit = 20
	}
	if filter.Page <= 0 {
		filter.Page = 1
	}

	records, total, err := s.AttendanceRepository.List(ctx, filter)
	if err != nil {
		return attendance.ListRecordsResponse{}, fmt.Errorf("list attendance: %w", err)
	}

	responses := make([]attendance.RecordResponse, 0, len(records))
	for _, rec := range records {
		responses = append(responses, mapRecordToResponse(rec))
	}

	return attendance.ListRecordsResponse{
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		Records:    responses,
	}, nil
}

func mapRecordToResponse(rec attendance.Record) attendance.RecordResponse {
	return attendance.RecordResponse{
		ID:             rec.ID,
		EmployeeID:     rec.EmployeeID,
		EmployeeName:   rec.EmployeeName,
		Date:           rec.Date.Format("2006-01-02"),
		ClockIn:        timeOfDayString(rec.ClockIn),
		ClockOut:       timeOfDayString(rec.ClockOut),
		BreakOut:       timeOfDayString(rec.BreakOut),
		BreakIn:        timeOfDayString(rec.BreakIn),
		TotalHours:     rec.TotalHours.StringFixed(2),
		OvertimeHours:  rec.OvertimeHours.StringFixed(2),
		UndertimeHours: rec.UndertimeHours.StringFixed(2),
		Status:         string(rec.Status),
		BiometricRef:   rec.BiometricRef,
		Remarks:        rec.Remarks,
	}
}

func timeOfDayString(t *time.Time) *string {
	if t == nil {
		return nil
	}
	formatted := t.Format("15:04:05")
	return &formatted
}

func clockAt(c *timeparse.Clock, date time.Time) *time.Time {
	if c == nil {
		return nil
	}
	t := c.At(date)
	return &t
}
