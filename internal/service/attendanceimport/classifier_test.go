package attendanceimport

import (
	"testing"

	"github.com/ren-lyn/hrms-system-backup12-sub008/internal/domain/attendance"
	"github.com/ren-lyn/hrms-system-backup12-sub008/internal/pkg/timeparse"
)

func clock(h, m int) *timeparse.Clock {
	return &timeparse.Clock{Hour: h, Minute: m}
}

func TestClassifyStatus(t *testing.T) {
	workday := func(in, out *timeparse.Clock) classifyContext {
		return classifyContext{WorkingDay: true, ClockIn: in, ClockOut: out}
	}

	tests := []struct {
		name string
		ctx  classifyContext
		want attendance.Status
	}{
		{"on time full day", workday(clock(8, 0), clock(17, 0)), attendance.StatusPresent},
		{"one minute late", workday(clock(8, 1), clock(17, 0)), attendance.StatusLate},
		{"late within grace", workday(clock(8, 59), clock(17, 30)), attendance.StatusLate},
		{"at late cutoff", workday(clock(9, 0), clock(17, 0)), attendance.StatusUndertime},
		{"past late cutoff with overtime out", workday(clock(9, 30), clock(19, 0)), attendance.StatusUndertime},
		{"early departure", workday(clock(8, 0), clock(16, 59)), attendance.StatusUndertime},
		{"overtime", workday(clock(8, 0), clock(18, 0)), attendance.StatusOvertime},
		{"late cancels overtime", workday(clock(8, 10), clock(18, 30)), attendance.StatusLate},
		{"missing clock out", workday(clock(8, 0), nil), attendance.StatusAbsent},
		{"missing both clocks", workday(nil, nil), attendance.StatusAbsent},
		{
			"explicit status hint wins",
			classifyContext{StatusHint: "OT", WorkingDay: true, ClockIn: clock(8, 0), ClockOut: clock(17, 0)},
			attendance.StatusOvertime,
		},
		{
			"rest day alias",
			classifyContext{StatusHint: "RD", WorkingDay: true},
			attendance.StatusHolidayNoWork,
		},
		{
			"holiday without punch",
			classifyContext{IsHoliday: true, WorkingDay: true},
			attendance.StatusHolidayNoWork,
		},
		{
			"holiday worked",
			classifyContext{IsHoliday: true, WorkingDay: true, ClockIn: clock(8, 0), ClockOut: clock(17, 0)},
			attendance.StatusHolidayWorked,
		},
		{
			"holiday type hint without punch",
			classifyContext{HolidayTypeHint: "Regular Holiday", WorkingDay: true},
			attendance.StatusHolidayNoWork,
		},
		{
			"approved leave",
			classifyContext{OnApprovedLeave: true, WorkingDay: true},
			attendance.StatusOnLeave,
		},
		{
			"leave outranked by holiday",
			classifyContext{IsHoliday: true, OnApprovedLeave: true, WorkingDay: true},
			attendance.StatusHolidayNoWork,
		},
		{
			"non-working day",
			classifyContext{WorkingDay: false, ClockIn: clock(8, 0), ClockOut: clock(17, 0)},
			attendance.StatusAbsent,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := classifyStatus(tt.ctx); got != tt.want {
				t.Errorf("classifyStatus() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestComputeHours(t *testing.T) {
	tests := []struct {
		name               string
		in, out            *timeparse.Clock
		breakOut, breakIn  *timeparse.Clock
		total, over, under string
	}{
		{"standard day", clock(8, 0), clock(17, 0), nil, nil, "9", "1", "0"},
		{"with lunch break", clock(8, 0), clock(17, 0), clock(12, 0), clock(13, 0), "8", "0", "0"},
		{"short day", clock(8, 0), clock(12, 0), nil, nil, "4", "0", "4"},
		{"half minutes", clock(8, 30), clock(17, 15), nil, nil, "8.75", "0.75", "0"},
		{"negative break ignored", clock(8, 0), clock(17, 0), clock(13, 0), clock(12, 0), "9", "1", "0"},
		{"inverted clocks clamp to zero", clock(17, 0), clock(8, 0), nil, nil, "0", "0", "8"},
		{"missing clock in", nil, clock(17, 0), nil, nil, "0", "0", "0"},
		{"missing clock out", clock(8, 0), nil, nil, nil, "0", "0", "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			total, over, under := computeHours(tt.in, tt.out, tt.breakOut, tt.breakIn)
			if total.String() != tt.total {
				t.Errorf("total = %s, want %s", total, tt.total)
			}
			if over.String() != tt.over {
				t.Errorf("overtime = %s, want %s", over, tt.over)
			}
			if under.String() != tt.under {
				t.Errorf("undertime = %s, want %s", under, tt.under)
			}
		})
	}
}
