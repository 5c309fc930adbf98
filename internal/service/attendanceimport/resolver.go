package attendanceimport

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/ren-lyn/hrms-system-backup12-sub008/internal/domain/employee"
	"github.com/ren-lyn/hrms-system-backup12-sub008/internal/domain/user"
)

// materialized profiles get a hire date backdated this many days, matching
// the payroll cutover window used when biometric enrollment predates HR
// onboarding records.
const fallbackHireDateOffsetDays = 120

// resolveEmployee maps a punch group onto an employee record through a
// prioritized fallback chain, stopping at the first success. Ambiguous name
// matches are treated as not found, never guessed.
func (s *ImportServiceImpl) resolveEmployee(ctx context.Context, g *punchGroup) (employee.Employee, error) {
	if g.Identifier != unknownIdentifier {
		if emp, err := s.EmployeeRepository.GetByCode(ctx, g.Identifier); err != nil {
			return employee.Employee{}, fmt.Errorf("lookup employee code %q: %w", g.Identifier, err)
		} else if emp != nil {
			return *emp, nil
		}

		// A biometric id seen in a previous import inherits its employee
		// link.
		empID, err := s.AttendanceRepository.FindEmployeeIDByBiometricRef(ctx, g.Identifier)
		if err != nil {
			return employee.Employee{}, fmt.Errorf("lookup biometric ref %q: %w", g.Identifier, err)
		}
		if empID != "" {
			emp, err := s.EmployeeRepository.GetByID(ctx, empID)
			if err != nil {
				return employee.Employee{}, fmt.Errorf("load employee %s: %w", empID, err)
			}
			return emp, nil
		}

		if emp, err := s.EmployeeRepository.GetByLegacyID(ctx, g.Identifier); err != nil {
			return employee.Employee{}, fmt.Errorf("lookup legacy id %q: %w", g.Identifier, err)
		} else if emp != nil {
			return *emp, nil
		}
	}

	if g.Name != "" {
		first, last := splitName(g.Name)
		q := employee.NameQuery{First: first, Last: last, Full: normalizeName(g.Name)}
		if g.Department != "" {
			q.Department = &g.Department
		}
		if g.Position != "" {
			q.Position = &g.Position
		}

		matches, err := s.EmployeeRepository.FindByName(ctx, q)
		if err != nil {
			return employee.Employee{}, fmt.Errorf("lookup name %q: %w", g.Name, err)
		}
		switch len(matches) {
		case 1:
			return matches[0], nil
		case 0:
			// fall through to the account fallback
		default:
			slog.Warn("ambiguous employee name, refusing to guess", "name", g.Name, "matches", len(matches))
		}

		if len(matches) == 0 {
			account, err := s.UserRepository.FindUnlinkedByName(ctx, g.Name)
			if err != nil {
				return employee.Employee{}, fmt.Errorf("lookup user account %q: %w", g.Name, err)
			}
			if account != nil {
				return s.materializeProfile(ctx, account, g)
			}
		}
	}

	return employee.Employee{}, fmt.Errorf("employee not resolvable for identifier %q name %q", g.Identifier, g.Name)
}

// materializeProfile creates a minimal employee profile linked to a user
// account. It is idempotent: a profile already materialized for the account
// is returned as-is.
func (s *ImportServiceImpl) materializeProfile(ctx context.Context, account *user.User, g *punchGroup) (employee.Employee, error) {
	if existing, err := s.EmployeeRepository.GetByUserID(ctx, account.ID); err != nil {
		return employee.Employee{}, fmt.Errorf("check existing profile for account %s: %w", account.ID, err)
	} else if existing != nil {
		return *existing, nil
	}

	first, last := splitName(account.Name)
	userID := account.ID
	hireDate := time.Now().UTC().AddDate(0, 0, -fallbackHireDateOffsetDays)
	hireDate = time.Date(hireDate.Year(), hireDate.Month(), hireDate.Day(), 0, 0, 0, 0, time.UTC)

	emp := employee.Employee{
		UserID:           &userID,
		FirstName:        first,
		LastName:         last,
		Role:             employee.RoleEmployee,
		HireDate:         hireDate,
		EmploymentStatus: employee.EmploymentStatusActive,
	}
	if g.Department != "" {
		emp.Department = &g.Department
	}
	if g.Position != "" {
		emp.Position = &g.Position
	}

	created, err := s.EmployeeRepository.Create(ctx, emp)
	if err != nil {
		return employee.Employee{}, fmt.Errorf("materialize profile for account %s: %w", account.ID, err)
	}
	slog.Info("materialized employee profile from user account", "user_id", account.ID, "employee_id", created.ID)
	return created, nil
}

func normalizeName(name string) string {
	return strings.Join(strings.Fields(name), " ")
}

// splitName parses a display name into (first, last) tokens, supporting both
// "First [Middle] Last" and "Last, First [Middle]" conventions.
func splitName(name string) (first, last string) {
	name = normalizeName(name)
	if name == "" {
		return "", ""
	}

	if idx := strings.Index(name, ","); idx >= 0 {
		last = strings.TrimSpace(name[:idx])
		rest := strings.Fields(name[idx+1:])
		if len(rest) > 0 {
			first = rest[0]
		}
		return first, last
	}

	tokens := strings.Fields(name)
	first = tokens[0]
	if len(tokens) > 1 {
		last = tokens[len(tokens)-1]
	}
	return first, last
}
