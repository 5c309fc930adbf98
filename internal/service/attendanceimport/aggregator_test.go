package attendanceimport

import (
	"testing"

	"github.com/ren-lyn/hrms-system-backup12-sub008/internal/pkg/tabular"
)

func dataRow(number int, values map[string]string) tabular.Row {
	return tabular.Row{Number: number, Values: values}
}

func TestAggregateRowsPunchReduction(t *testing.T) {
	rows := []tabular.Row{
		dataRow(2, map[string]string{"person_id": "101", "date": "2023-01-02", "attendance_record": "13:05"}),
		dataRow(3, map[string]string{"person_id": "101", "date": "2023-01-02", "attendance_record": "08:02"}),
		dataRow(4, map[string]string{"person_id": "101", "date": "2023-01-02", "attendance_record": "17:47"}),
		dataRow(5, map[string]string{"person_id": "101", "date": "2023-01-02", "attendance_record": "08:02"}),
	}

	groups, stats := aggregateRows(rows)
	if len(groups) != 1 {
		t.Fatalf("expected 1 group, got %d", len(groups))
	}
	if stats.Total != 4 || stats.Skipped != 0 || stats.Failed != 0 {
		t.Errorf("unexpected stats: %+v", stats)
	}

	g := groups[0]
	g.reduce()
	if g.TimeIn == nil || g.TimeIn.String() != "08:02:00" {
		t.Errorf("expected time in 08:02:00, got %v", g.TimeIn)
	}
	if g.TimeOut == nil || g.TimeOut.String() != "17:47:00" {
		t.Errorf("expected time out 17:47:00, got %v", g.TimeOut)
	}
}

func TestAggregateRowsExplicitTimesWin(t *testing.T) {
	rows := []tabular.Row{
		dataRow(2, map[string]string{"person_id": "101", "date": "2023-01-02", "attendance_record": "06:00"}),
		dataRow(3, map[string]string{"person_id": "101", "date": "2023-01-02", "time_in": "08:00", "time_out": "17:00"}),
		dataRow(4, map[string]string{"person_id": "101", "date": "2023-01-02", "time_out": "18:30"}),
	}

	groups, _ := aggregateRows(rows)
	if len(groups) != 1 {
		t.Fatalf("expected 1 group, got %d", len(groups))
	}

	g := groups[0]
	g.reduce()
	if g.TimeIn == nil || g.TimeIn.String() != "08:00:00" {
		t.Errorf("expected explicit time in 08:00:00, got %v", g.TimeIn)
	}
	// The later row overwrites the field it carries.
	if g.TimeOut == nil || g.TimeOut.String() != "18:30:00" {
		t.Errorf("expected last-write time out 18:30:00, got %v", g.TimeOut)
	}
}

func TestAggregateRowsUnknownIdentifierMerge(t *testing.T) {
	rows := []tabular.Row{
		dataRow(2, map[string]string{"person_name": "Juan Cruz", "date": "2023-01-02", "attendance_record": "08:00"}),
		dataRow(3, map[string]string{"person_name": "Maria Santos", "date": "2023-01-02", "attendance_record": "09:00"}),
	}

	groups, stats := aggregateRows(rows)
	if len(groups) != 1 {
		t.Fatalf("expected unidentified rows to merge into 1 group, got %d", len(groups))
	}
	if groups[0].Identifier != unknownIdentifier {
		t.Errorf("expected sentinel identifier, got %q", groups[0].Identifier)
	}
	if stats.UnknownMerged != 2 {
		t.Errorf("expected 2 unknown-merged rows, got %d", stats.UnknownMerged)
	}
}

func TestAggregateRowsSkipsAndFailures(t *testing.T) {
	rows := []tabular.Row{
		// blank
		dataRow(2, map[string]string{"person_id": "", "date": "", "attendance_record": ""}),
		// repeated header
		dataRow(3, map[string]string{"person_id": "Person ID", "date": "Date", "attendance_record": "Attendance Record"}),
		// no date
		dataRow(4, map[string]string{"person_id": "101", "date": ""}),
		// unparsable date
		dataRow(5, map[string]string{"person_id": "101", "date": "not-a-date"}),
		// good
		dataRow(6, map[string]string{"person_id": "101", "date": "2023-01-02", "attendance_record": "08:00"}),
	}

	groups, stats := aggregateRows(rows)
	if len(groups) != 1 {
		t.Fatalf("expected 1 group, got %d", len(groups))
	}
	if stats.Total != 5 {
		t.Errorf("expected total 5, got %d", stats.Total)
	}
	if stats.Skipped != 3 {
		t.Errorf("expected 3 skipped, got %d", stats.Skipped)
	}
	if stats.Failed != 1 {
		t.Errorf("expected 1 failed, got %d", stats.Failed)
	}
	if len(stats.Errors) != 1 {
		t.Fatalf("expected 1 error, got %d", len(stats.Errors))
	}
	if want := `row 5: unparsable date "not-a-date"`; stats.Errors[0] != want {
		t.Errorf("expected error %q, got %q", want, stats.Errors[0])
	}
}

func TestAggregateRowsOrdering(t *testing.T) {
	rows := []tabular.Row{
		dataRow(2, map[string]string{"person_id": "202", "date": "2023-01-03", "attendance_record": "08:00"}),
		dataRow(3, map[string]string{"person_id": "101", "date": "2023-01-03", "attendance_record": "08:00"}),
		dataRow(4, map[string]string{"person_id": "303", "date": "2023-01-02", "attendance_record": "08:00"}),
	}

	groups, _ := aggregateRows(rows)
	if len(groups) != 3 {
		t.Fatalf("expected 3 groups, got %d", len(groups))
	}
	got := []string{groups[0].Identifier, groups[1].Identifier, groups[2].Identifier}
	want := []string{"303", "101", "202"}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("group %d: expected %s, got %s", i, want[i], got[i])
		}
	}
}

func TestReduceUnparsablePunchFallback(t *testing.T) {
	g := &punchGroup{Punches: []string{"zz-bad", "08:15", "17:40"}}
	g.reduce()

	// Lexicographic ordering: "08:15" < "17:40" < "zz-bad". The unusable
	// last punch leaves the out time unset instead of guessing.
	if g.TimeIn == nil || g.TimeIn.String() != "08:15:00" {
		t.Errorf("expected time in 08:15:00, got %v", g.TimeIn)
	}
	if g.TimeOut != nil {
		t.Errorf("expected nil time out for unusable last punch, got %v", g.TimeOut)
	}
}

func TestReduceSinglePunch(t *testing.T) {
	g := &punchGroup{Punches: []string{"08:30"}}
	g.reduce()

	if g.TimeIn == nil || g.TimeIn.String() != "08:30:00" {
		t.Errorf("expected time in 08:30:00, got %v", g.TimeIn)
	}
	if g.TimeOut == nil || g.TimeOut.String() != "08:30:00" {
		t.Errorf("expected single punch to set both endpoints, got %v", g.TimeOut)
	}
}
