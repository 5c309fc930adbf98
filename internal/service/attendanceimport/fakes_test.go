package attendanceimport

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/ren-lyn/hrms-system-backup12-sub008/internal/domain/attendance"
	"github.com/ren-lyn/hrms-system-backup12-sub008/internal/domain/employee"
	"github.com/ren-lyn/hrms-system-backup12-sub008/internal/domain/holiday"
	"github.com/ren-lyn/hrms-system-backup12-sub008/internal/domain/importjob"
	"github.com/ren-lyn/hrms-system-backup12-sub008/internal/domain/leave"
	"github.com/ren-lyn/hrms-system-backup12-sub008/internal/domain/schedule"
	"github.com/ren-lyn/hrms-system-backup12-sub008/internal/domain/user"
)

func dayKey(employeeID string, date time.Time) string {
	return employeeID + "|" + date.Format("2006-01-02")
}

type fakeAttendanceRepo struct {
	records map[string]attendance.Record
	seq     int
}

func newFakeAttendanceRepo() *fakeAttendanceRepo {
	return &fakeAttendanceRepo{records: make(map[string]attendance.Record)}
}

func (f *fakeAttendanceRepo) Upsert(_ context.Context, record attendance.Record) (attendance.Record, error) {
	key := dayKey(record.EmployeeID, record.Date)
	if existing, ok := f.records[key]; ok {
		record.ID = existing.ID
	} else {
		f.seq++
		record.ID = fmt.Sprintf("att-%d", f.seq)
	}
	f.records[key] = record
	return record, nil
}

func (f *fakeAttendanceRepo) Exists(_ context.Context, employeeID string, date time.Time) (bool, error) {
	_, ok := f.records[dayKey(employeeID, date)]
	return ok, nil
}

func (f *fakeAttendanceRepo) GetByEmployeeAndDate(_ context.Context, employeeID string, date time.Time) (*attendance.Record, error) {
	if rec, ok := f.records[dayKey(employeeID, date)]; ok {
		return &rec, nil
	}
	return nil, nil
}

func (f *fakeAttendanceRepo) FindEmployeeIDByBiometricRef(_ context.Context, ref string) (string, error) {
	for _, rec := range f.records {
		if rec.BiometricRef != nil && *rec.BiometricRef == ref {
			return rec.EmployeeID, nil
		}
	}
	return "", nil
}

func (f *fakeAttendanceRepo) List(_ context.Context, filter attendance.ListFilter) ([]attendance.Record, int64, error) {
	var out []attendance.Record
	for _, rec := range f.records {
		if filter.EmployeeID != nil && rec.EmployeeID != *filter.EmployeeID {
			continue
		}
		if filter.Status != nil && string(rec.Status) != *filter.Status {
			continue
		}
		out = append(out, rec)
	}
	return out, int64(len(out)), nil
}

type fakeEmployeeRepo struct {
	employees []employee.Employee
	seq       int
}

func (f *fakeEmployeeRepo) GetByID(_ context.Context, id string) (employee.Employee, error) {
	for _, e := range f.employees {
		if e.ID == id {
			return e, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) GetByCode(_ context.Context, code string) (*employee.Employee, error) {
	for i, e := range f.employees {
		if e.EmployeeCode == code {
			return &f.employees[i], nil
		}
	}
	return nil, nil
}

func (f *fakeEmployeeRepo) GetByLegacyID(_ context.Context, legacyID string) (*employee.Employee, error) {
	trimmed := strings.TrimLeft(legacyID, "0")
	for i, e := range f.employees {
		if e.LegacyID == nil {
			continue
		}
		stored := *e.LegacyID
		if stored == legacyID || strings.HasSuffix(stored, legacyID) || strings.TrimLeft(stored, "0") == trimmed {
			return &f.employees[i], nil
		}
	}
	return nil, nil
}

func (f *fakeEmployeeRepo) GetByUserID(_ context.Context, userID string) (*employee.Employee, error) {
	for i, e := range f.employees {
		if e.UserID != nil && *e.UserID == userID {
			return &f.employees[i], nil
		}
	}
	return nil, nil
}

func (f *fakeEmployeeRepo) FindByName(_ context.Context, q employee.NameQuery) ([]employee.Employee, error) {
	var matches []employee.Employee
	for _, e := range f.employees {
		if !nameMatches(e, q) {
			continue
		}
		if q.Department != nil && (e.Department == nil || !strings.EqualFold(*e.Department, *q.Department)) {
			continue
		}
		if q.Position != nil && (e.Position == nil || !strings.EqualFold(*e.Position, *q.Position)) {
			continue
		}
		matches = append(matches, e)
		if len(matches) == 2 {
			break
		}
	}
	return matches, nil
}

func nameMatches(e employee.Employee, q employee.NameQuery) bool {
	if strings.EqualFold(e.FirstName, q.First) && strings.EqualFold(e.LastName, q.Last) {
		return true
	}
	if strings.EqualFold(e.FirstName, q.Last) && strings.EqualFold(e.LastName, q.First) {
		return true
	}
	for _, full := range []string{
		e.FirstName + " " + e.LastName,
		e.LastName + " " + e.FirstName,
		e.LastName + ", " + e.FirstName,
	} {
		if strings.EqualFold(full, q.Full) {
			return true
		}
	}
	return false
}

func (f *fakeEmployeeRepo) Create(_ context.Context, emp employee.Employee) (employee.Employee, error) {
	f.seq++
	emp.ID = fmt.Sprintf("emp-%d", f.seq)
	f.employees = append(f.employees, emp)
	return emp, nil
}

func (f *fakeEmployeeRepo) ListActive(_ context.Context) ([]employee.Employee, error) {
	var out []employee.Employee
	for _, e := range f.employees {
		if e.EmploymentStatus == employee.EmploymentStatusActive && e.Role != employee.RoleApplicant {
			out = append(out, e)
		}
	}
	return out, nil
}

type fakeHolidayRepo struct {
	dates map[string]bool
}

func (f *fakeHolidayRepo) IsHoliday(_ context.Context, date time.Time) (bool, error) {
	return f.dates[date.Format("2006-01-02")], nil
}

type fakeLeaveRepo struct {
	approved map[string]bool
}

func (f *fakeLeaveRepo) HasApprovedLeave(_ context.Context, employeeID string, date time.Time) (bool, error) {
	return f.approved[dayKey(employeeID, date)], nil
}

type fakeShiftRepo struct {
	shifts map[string]schedule.WorkShift
}

func (f *fakeShiftRepo) GetByID(_ context.Context, id string) (schedule.WorkShift, error) {
	if s, ok := f.shifts[id]; ok {
		return s, nil
	}
	return schedule.WorkShift{}, fmt.Errorf("work shift %s not found", id)
}

type fakeUserRepo struct {
	unlinked []user.User
}

func (f *fakeUserRepo) FindUnlinkedByName(_ context.Context, name string) (*user.User, error) {
	for i, u := range f.unlinked {
		if strings.EqualFold(u.Name, name) {
			return &f.unlinked[i], nil
		}
	}
	return nil, nil
}

type fakeJobRepo struct {
	jobs    map[string]importjob.ImportJob
	overlap bool
	seq     int
}

func newFakeJobRepo() *fakeJobRepo {
	return &fakeJobRepo{jobs: make(map[string]importjob.ImportJob)}
}

func (f *fakeJobRepo) Create(_ context.Context, job importjob.ImportJob) (importjob.ImportJob, error) {
	f.seq++
	job.ID = fmt.Sprintf("job-%d", f.seq)
	job.CreatedAt = time.Now().UTC()
	f.jobs[job.ID] = job
	return job, nil
}

func (f *fakeJobRepo) Finish(_ context.Context, job importjob.ImportJob) error {
	f.jobs[job.ID] = job
	return nil
}

func (f *fakeJobRepo) GetByID(_ context.Context, id string) (importjob.ImportJob, error) {
	if job, ok := f.jobs[id]; ok {
		return job, nil
	}
	return importjob.ImportJob{}, importjob.ErrJobNotFound
}

func (f *fakeJobRepo) List(_ context.Context, _, _ int) ([]importjob.ImportJob, int64, error) {
	var out []importjob.ImportJob
	for _, job := range f.jobs {
		out = append(out, job)
	}
	return out, int64(len(out)), nil
}

func (f *fakeJobRepo) HasOverlappingPeriod(_ context.Context, _, _ time.Time) (bool, error) {
	return f.overlap, nil
}

type testRepos struct {
	attendance *fakeAttendanceRepo
	employees  *fakeEmployeeRepo
	holidays   *fakeHolidayRepo
	leaves     *fakeLeaveRepo
	shifts     *fakeShiftRepo
	users      *fakeUserRepo
	jobs       *fakeJobRepo
}

func newTestService() (*ImportServiceImpl, *testRepos) {
	repos := &testRepos{
		attendance: newFakeAttendanceRepo(),
		employees:  &fakeEmployeeRepo{},
		holidays:   &fakeHolidayRepo{dates: make(map[string]bool)},
		leaves:     &fakeLeaveRepo{approved: make(map[string]bool)},
		shifts:     &fakeShiftRepo{shifts: make(map[string]schedule.WorkShift)},
		users:      &fakeUserRepo{},
		jobs:       newFakeJobRepo(),
	}
	svc := &ImportServiceImpl{
		AttendanceRepository:   repos.attendance,
		EmployeeRepository:     repos.employees,
		HolidayRepository:      repos.holidays,
		LeaveRequestRepository: repos.leaves,
		WorkShiftRepository:    repos.shifts,
		UserRepository:         repos.users,
		ImportJobRepository:    repos.jobs,
	}
	return svc, repos
}

var (
	_ attendance.AttendanceRepository = (*fakeAttendanceRepo)(nil)
	_ employee.EmployeeRepository     = (*fakeEmployeeRepo)(nil)
	_ holiday.HolidayRepository       = (*fakeHolidayRepo)(nil)
	_ leave.LeaveRequestRepository    = (*fakeLeaveRepo)(nil)
	_ schedule.WorkShiftRepository    = (*fakeShiftRepo)(nil)
	_ user.UserRepository             = (*fakeUserRepo)(nil)
	_ importjob.ImportJobRepository   = (*fakeJobRepo)(nil)
)
