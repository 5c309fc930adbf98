package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/ren-lyn/hrms-system-backup12-sub008/internal/domain/employee"
	"github.com/ren-lyn/hrms-system-backup12-sub008/internal/pkg/database"
)

type employeeRepository struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepository{db: db}
}

const employeeColumns = `
	e.id, e.user_id, e.employee_code, e.legacy_id,
	e.first_name, e.last_name, e.department, e.position,
	e.role, e.work_shift_id, e.hire_date, e.employment_status,
	e.created_at, e.updated_at`

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var e employee.Employee
	err := row.Scan(
		&e.ID, &e.UserID, &e.EmployeeCode, &e.LegacyID,
		&e.FirstName, &e.LastName, &e.Department, &e.Position,
		&e.Role, &e.WorkShiftID, &e.HireDate, &e.EmploymentStatus,
		&e.CreatedAt, &e.UpdatedAt,
	)
	return e, err
}

// GetByID implements employee.EmployeeRepository.
func (r *employeeRepository) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	query := fmt.Sprintf(`SELECT %s FROM employees e WHERE e.id = $1`, employeeColumns)

	e, err := scanEmployee(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee: %w", err)
	}
	return e, nil
}

// GetByCode implements employee.EmployeeRepository.
func (r *employeeRepository) GetByCode(ctx context.Context, code string) (*employee.Employee, error) {
	query := fmt.Sprintf(`SELECT %s FROM employees e WHERE e.employee_code = $1 LIMIT 1`, employeeColumns)

	e, err := scanEmployee(r.db.QueryRow(ctx, query, code))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get employee by code: %w", err)
	}
	return &e, nil
}

// GetByLegacyID implements employee.EmployeeRepository. The device-exported
// person id may match the legacy identifier exactly, as the trailing part of
// a prefixed value, or modulo zero padding.
func (r *employeeRepository) GetByLegacyID(ctx context.Context, legacyID string) (*employee.Employee, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM employees e
		WHERE e.legacy_id = $1
		   OR e.legacy_id LIKE '%%' || $1::text
		   OR TRIM(LEADING '0' FROM e.legacy_id) = TRIM(LEADING '0' FROM $1::text)
		ORDER BY e.created_at ASC
		LIMIT 1
	`, employeeColumns)

	e, err := scanEmployee(r.db.QueryRow(ctx, query, legacyID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get employee by legacy id: %w", err)
	}
	return &e, nil
}

// GetByUserID implements employee.EmployeeRepository.
func (r *employeeRepository) GetByUserID(ctx context.Context, userID string) (*employee.Employee, error) {
	query := fmt.Sprintf(`SELECT %s FROM employees e WHERE e.user_id = $1 LIMIT 1`, employeeColumns)

	e, err := scanEmployee(r.db.QueryRow(ctx, query, userID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get employee by user id: %w", err)
	}
	return &e, nil
}

// FindByName implements employee.EmployeeRepository. Strict equality on the
// full-name concatenations in all three orderings, or on the (first, last)
// pair in both orderings; case-insensitive. The concatenation arm is what
// resolves compound surnames that the token split cannot reassemble. Capped
// at two rows so the caller can tell "exactly one" from "ambiguous" without
// counting the whole table.
func (r *employeeRepository) FindByName(ctx context.Context, q employee.NameQuery) ([]employee.Employee, error) {
	baseWhere := `
		WHERE (
			(LOWER(e.first_name) = LOWER($1) AND LOWER(e.last_name) = LOWER($2))
			OR (LOWER(e.first_name) = LOWER($2) AND LOWER(e.last_name) = LOWER($1))
			OR LOWER(CONCAT(e.first_name, ' ', e.last_name)) = LOWER($3)
			OR LOWER(CONCAT(e.last_name, ' ', e.first_name)) = LOWER($3)
			OR LOWER(CONCAT(e.last_name, ', ', e.first_name)) = LOWER($3)
		)`
	args := []interface{}{q.First, q.Last, q.Full}
	argIdx := 4

	if q.Department != nil {
		baseWhere += fmt.Sprintf(" AND LOWER(e.department) = LOWER($%d)", argIdx)
		args = append(args, *q.Department)
		argIdx++
	}
	if q.Position != nil {
		baseWhere += fmt.Sprintf(" AND LOWER(e.position) = LOWER($%d)", argIdx)
		args = append(args, *q.Position)
		argIdx++
	}

	query := fmt.Sprintf(`
		SELECT %s FROM employees e
		%s
		ORDER BY e.created_at ASC
		LIMIT 2
	`, employeeColumns, baseWhere)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to find employees by name: %w", err)
	}
	defer rows.Close()

	var matches []employee.Employee
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		matches = append(matches, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate employees: %w", err)
	}

	return matches, nil
}

// Create implements employee.EmployeeRepository.
func (r *employeeRepository) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	query := `
		INSERT INTO employees (
			user_id, employee_code, legacy_id, first_name, last_name,
			department, position, role, work_shift_id, hire_date, employment_status
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11
		) RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query,
		emp.UserID,
		emp.EmployeeCode,
		emp.LegacyID,
		emp.FirstName,
		emp.LastName,
		emp.Department,
		emp.Position,
		emp.Role,
		emp.WorkShiftID,
		emp.HireDate,
		emp.EmploymentStatus,
	).Scan(&emp.ID, &emp.CreatedAt, &emp.UpdatedAt)

	if err != nil {
		return employee.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}

	return emp, nil
}

// ListActive implements employee.EmployeeRepository.
func (r *employeeRepository) ListActive(ctx context.Context) ([]employee.Employee, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM employees e
		WHERE e.employment_status = $1
		  AND e.role != $2
		ORDER BY e.last_name ASC, e.first_name ASC
	`, employeeColumns)

	rows, err := r.db.Query(ctx, query, employee.EmploymentStatusActive, employee.RoleApplicant)
	if err != nil {
		return nil, fmt.Errorf("failed to list active employees: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate employees: %w", err)
	}

	return employees, nil
}
