package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/ren-lyn/hrms-system-backup12-sub008/internal/domain/attendance"
	"github.com/ren-lyn/hrms-system-backup12-sub008/internal/pkg/database"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

const attendanceColumns = `
	a.id, a.employee_id, a.date,
	a.clock_in, a.clock_out, a.break_out, a.break_in,
	a.total_hours, a.overtime_hours, a.undertime_hours,
	a.status, a.biometric_ref, a.remarks,
	a.created_at, a.updated_at`

// Upsert implements attendance.AttendanceRepository. The (employee_id, date)
// pair is the natural key; a re-import fully replaces the existing row.
func (a *attendanceRepository) Upsert(ctx context.Context, record attendance.Record) (attendance.Record, error) {
	query := `
		INSERT INTO attendance_records (
			employee_id, date, clock_in, clock_out, break_out, break_in,
			total_hours, overtime_hours, undertime_hours,
			status, biometric_ref, remarks
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12
		)
		ON CONFLICT (employee_id, date) DO UPDATE SET
			clock_in = EXCLUDED.clock_in,
			clock_out = EXCLUDED.clock_out,
			break_out = EXCLUDED.break_out,
			break_in = EXCLUDED.break_in,
			total_hours = EXCLUDED.total_hours,
			overtime_hours = EXCLUDED.overtime_hours,
			undertime_hours = EXCLUDED.undertime_hours,
			status = EXCLUDED.status,
			biometric_ref = EXCLUDED.biometric_ref,
			remarks = EXCLUDED.remarks,
			updated_at = NOW()
		RETURNING id, created_at, updated_at
	`

	err := a.db.QueryRow(ctx, query,
		record.EmployeeID,
		record.Date,
		record.ClockIn,
		record.ClockOut,
		record.BreakOut,
		record.BreakIn,
		record.TotalHours,
		record.OvertimeHours,
		record.UndertimeHours,
		record.Status,
		record.BiometricRef,
		record.Remarks,
	).Scan(&record.ID, &record.CreatedAt, &record.UpdatedAt)

	if err != nil {
		return attendance.Record{}, fmt.Errorf("failed to upsert attendance record: %w", err)
	}

	return record, nil
}

// Exists implements attendance.AttendanceRepository.
func (a *attendanceRepository) Exists(ctx context.Context, employeeID string, date time.Time) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM attendance_records
			WHERE employee_id = $1 AND date = $2
		)
	`

	var exists bool
	if err := a.db.QueryRow(ctx, query, employeeID, date).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check attendance existence: %w", err)
	}
	return exists, nil
}

// GetByEmployeeAndDate implements attendance.AttendanceRepository.
func (a *attendanceRepository) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*attendance.Record, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM attendance_records a
		WHERE a.employee_id = $1 AND a.date = $2
		LIMIT 1
	`, attendanceColumns)

	var rec attendance.Record
	err := a.db.QueryRow(ctx, query, employeeID, date).Scan(
		&rec.ID, &rec.EmployeeID, &rec.Date,
		&rec.ClockIn, &rec.ClockOut, &rec.BreakOut, &rec.BreakIn,
		&rec.TotalHours, &rec.OvertimeHours, &rec.UndertimeHours,
		&rec.Status, &rec.BiometricRef, &rec.Remarks,
		&rec.CreatedAt, &rec.UpdatedAt,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get attendance record: %w", err)
	}

	return &rec, nil
}

// FindEmployeeIDByBiometricRef implements attendance.AttendanceRepository.
func (a *attendanceRepository) FindEmployeeIDByBiometricRef(ctx context.Context, ref string) (string, error) {
	query := `
		SELECT employee_id
		FROM attendance_records
		WHERE biometric_ref = $1
		ORDER BY date DESC
		LIMIT 1
	`

	var employeeID string
	err := a.db.QueryRow(ctx, query, ref).Scan(&employeeID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return "", nil
		}
		return "", fmt.Errorf("failed to look up biometric ref: %w", err)
	}

	return employeeID, nil
}

// List implements attendance.AttendanceRepository.
func (a *attendanceRepository) List(ctx context.Context, filter attendance.ListFilter) ([]attendance.Record, int64, error) {
	baseWhere := "WHERE 1=1"
	args := []interface{}{}
	argIdx := 1

	if filter.EmployeeID != nil {
		baseWhere += fmt.Sprintf(" AND a.employee_id = $%d", argIdx)
		args = append(args, *filter.EmployeeID)
		argIdx++
	}
	if filter.StartDate != nil {
		baseWhere += fmt.Sprintf(" AND a.date >= $%d", argIdx)
		args = append(args, *filter.StartDate)
		argIdx++
	}
	if filter.EndDate != nil {
		baseWhere += fmt.Sprintf(" AND a.date <= $%d", argIdx)
		args = append(args, *filter.EndDate)
		argIdx++
	}
	if filter.Status != nil {
		baseWhere += fmt.Sprintf(" AND a.status = $%d", argIdx)
		args = append(args, *filter.Status)
		argIdx++
	}

	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM attendance_records a %s`, baseWhere)

	var total int64
	if err := a.db.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count attendance records: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT %s,
			   TRIM(CONCAT(e.first_name, ' ', e.last_name)) AS employee_name
		FROM attendance_records a
		JOIN employees e ON e.id = a.employee_id
		%s
		ORDER BY a.date DESC, employee_name ASC
		LIMIT $%d OFFSET $%d
	`, attendanceColumns, baseWhere, argIdx, argIdx+1)

	offset := (filter.Page - 1) * filter.Limit
	args = append(args, filter.Limit, offset)

	rows, err := a.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list attendance records: %w", err)
	}
	defer rows.Close()

	records := []attendance.Record{}
	for rows.Next() {
		var rec attendance.Record
		err := rows.Scan(
			&rec.ID, &rec.EmployeeID, &rec.Date,
			&rec.ClockIn, &rec.ClockOut, &rec.BreakOut, &rec.BreakIn,
			&rec.TotalHours, &rec.OvertimeHours, &rec.UndertimeHours,
			&rec.Status, &rec.BiometricRef, &rec.Remarks,
			&rec.CreatedAt, &rec.UpdatedAt,
			&rec.EmployeeName,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan attendance record: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate attendance records: %w", err)
	}

	return records, total, nil
}
