package attendance

import "strings"

// Status is the derived attendance state for one employee-day.
type Status string

const (
	StatusPresent       Status = "Present"
	StatusAbsent        Status = "Absent"
	StatusLate          Status = "Late"
	StatusUndertime     Status = "Undertime"
	StatusOvertime      Status = "Overtime"
	StatusLateUndertime Status = "Late (Undertime)"
	StatusLateOvertime  Status = "Late (Overtime)"
	StatusOnLeave       Status = "On Leave"
	StatusHolidayNoWork Status = "Holiday (No Work)"
	StatusHolidayWorked Status = "Holiday (Worked)"
)

var canonicalStatuses = map[string]Status{
	"present":           StatusPresent,
	"absent":            StatusAbsent,
	"late":              StatusLate,
	"undertime":         StatusUndertime,
	"overtime":          StatusOvertime,
	"late (undertime)":  StatusLateUndertime,
	"late (overtime)":   StatusLateOvertime,
	"on leave":          StatusOnLeave,
	"holiday (no work)": StatusHolidayNoWork,
	"holiday (worked)":  StatusHolidayWorked,
}

// statusAliases maps shorthand codes used by HR clerks and terminal vendors
// onto canonical statuses.
var statusAliases = map[string]Status{
	"p":              StatusPresent,
	"a":              StatusAbsent,
	"abs":            StatusAbsent,
	"ut":             StatusUndertime,
	"ot":             StatusOvertime,
	"rd":             StatusHolidayNoWork,
	"restday":        StatusHolidayNoWork,
	"rest day":       StatusHolidayNoWork,
	"off":            StatusHolidayNoWork,
	"day off":        StatusHolidayNoWork,
	"holiday":        StatusHolidayNoWork,
	"worked holiday": StatusHolidayWorked,
	"sl":             StatusOnLeave,
	"vl":             StatusOnLeave,
	"leave":          StatusOnLeave,
	"sick leave":     StatusOnLeave,
	"vacation leave": StatusOnLeave,
}

// ParseStatus normalizes an explicit status string from the source file
// against the allow-list and common aliases. Unrecognized values return
// false and the classifier derives the status instead.
func ParseStatus(raw string) (Status, bool) {
	key := strings.ToLower(strings.TrimSpace(raw))
	if key == "" {
		return "", false
	}
	if s, ok := canonicalStatuses[key]; ok {
		return s, true
	}
	if s, ok := statusAliases[key]; ok {
		return s, true
	}
	return "", false
}
