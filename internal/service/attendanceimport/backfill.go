package attendanceimport

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ren-lyn/hrms-system-backup12-sub008/internal/domain/attendance"
	"github.com/ren-lyn/hrms-system-backup12-sub008/internal/domain/importjob"
	"github.com/ren-lyn/hrms-system-backup12-sub008/internal/domain/schedule"
)

const absenceRemark = "Auto-marked absent (no attendance record)"

// backfillAbsences walks every active employee across every day of the
// declared period and fills the gaps the file left. Days outside the
// employee's shift calendar are not absences and are left alone. Errors on
// individual employee-days are recorded on the job without aborting the walk.
func (s *ImportServiceImpl) backfillAbsences(ctx context.Context, job *importjob.ImportJob, start, end time.Time) {
	employees, err := s.EmployeeRepository.ListActive(ctx)
	if err != nil {
		job.AppendError(fmt.Sprintf("absence backfill: list active employees: %v", err))
		return
	}

	start = startOfDayUTC(start)
	end = startOfDayUTC(end)

	for _, emp := range employees {
		shift := s.shiftFor(ctx, emp)

		for date := start; !date.After(end); date = date.AddDate(0, 0, 1) {
			if !shift.IsWorkingDay(schedule.ISOWeekday(date)) {
				continue
			}

			exists, err := s.AttendanceRepository.Exists(ctx, emp.ID, date)
			if err != nil {
				job.AppendError(fmt.Sprintf("absence backfill %s %s: %v", emp.ID, date.Format("2006-01-02"), err))
				continue
			}
			if exists {
				continue
			}

			status, err := s.absenceStatus(ctx, emp.ID, date)
			if err != nil {
				job.AppendError(fmt.Sprintf("absence backfill %s %s: %v", emp.ID, date.Format("2006-01-02"), err))
				continue
			}

			remark := absenceRemark
			record := attendance.Record{
				EmployeeID:     emp.ID,
				Date:           date,
				TotalHours:     decimal.Zero,
				OvertimeHours:  decimal.Zero,
				UndertimeHours: decimal.Zero,
				Status:         status,
				Remarks:        &remark,
			}
			if _, err := s.AttendanceRepository.Upsert(ctx, record); err != nil {
				job.AppendError(fmt.Sprintf("absence backfill %s %s: %v", emp.ID, date.Format("2006-01-02"), err))
				continue
			}
			job.AbsentMarked++
		}
	}

	slog.Info("absence backfill completed",
		"job_id", job.ID,
		"period_start", start.Format("2006-01-02"),
		"period_end", end.Format("2006-01-02"),
		"absent_marked", job.AbsentMarked)
}

// absenceStatus decides what a gap day means: a holiday is not an absence and
// an approved leave day is recorded as leave, not absence.
func (s *ImportServiceImpl) absenceStatus(ctx context.Context, employeeID string, date time.Time) (attendance.Status, error) {
	isHoliday, err := s.HolidayRepository.IsHoliday(ctx, date)
	if err != nil {
		return "", fmt.Errorf("holiday lookup: %w", err)
	}
	if isHoliday {
		return attendance.StatusHolidayNoWork, nil
	}

	onLeave, err := s.LeaveRequestRepository.HasApprovedLeave(ctx, employeeID, date)
	if err != nil {
		return "", fmt.Errorf("leave lookup: %w", err)
	}
	if onLeave {
		return attendance.StatusOnLeave, nil
	}

	return attendance.StatusAbsent, nil
}

func startOfDayUTC(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
